package analyze

import (
	"math"
	"strings"

	"github.com/okhramov/harmonia/internal/lexicon"
	"github.com/okhramov/harmonia/internal/model"
)

// ESEP approval ceiling, owned by the orchestrator but published here with
// the analyzer whose score it bounds.
const ESEPApprovalMax = 0.7

// ESEP scores the balance between ethical and spiritual vocabulary density
// and penalizes negative-content density. Its composite score is inverted
// relative to the other analyzers: lower is better.
type ESEP struct {
	lex *lexicon.Set
}

// NewESEP creates an ESEP analyzer over the given lexicon
func NewESEP(lex *lexicon.Set) *ESEP {
	return &ESEP{lex: lex}
}

// Evaluate scores the text. It never fails: empty input returns the
// worst-case sentinel score of 1.0 rather than an error.
func (a *ESEP) Evaluate(text string) model.ESEPResult {
	words := splitWords(text)
	if len(words) == 0 {
		return model.ESEPResult{
			Score:    1.0,
			Feedback: []string{"empty input"},
		}
	}

	lowerText := strings.ToLower(text)
	wordCount := float64(len(words))

	// Density scores with a denominator floor to avoid division blowup on
	// short texts. Negative terms use a 0.05 denominator, making them twice
	// as sensitive as the positive dimensions.
	ethical := densityScore(countHits(lowerText, words, a.lex.Ethical), wordCount, 0.1)
	spiritual := densityScore(countHits(lowerText, words, a.lex.Spiritual), wordCount, 0.1)
	negative := densityScore(countHits(lowerText, words, a.lex.Negative), wordCount, 0.05)

	balance := 1 - math.Abs(ethical-spiritual)

	score := 0.4*(1-balance) +
		0.3*negative +
		0.3*math.Max(0, 0.3-0.15*(ethical+spiritual))

	return model.ESEPResult{
		Score:          score,
		EthicalScore:   ethical,
		SpiritualScore: spiritual,
		BalanceScore:   balance,
		NegativeScore:  negative,
		Feedback:       a.feedback(score, ethical, spiritual, balance, negative),
	}
}

// densityScore converts a raw hit count into a 0..1 density score against
// the given fraction of the word count.
func densityScore(hits int, wordCount, fraction float64) float64 {
	return math.Min(float64(hits)/math.Max(fraction*wordCount, 1), 1.0)
}

// feedback applies the threshold rules. Multiple rules may fire; callers
// treat the list as a set.
func (a *ESEP) feedback(score, ethical, spiritual, balance, negative float64) []string {
	var fb []string

	if ethical < 0.1 {
		fb = append(fb, "Consider weaving more ethical language (care, fairness, responsibility) into the ritual")
	}
	if spiritual < 0.1 {
		fb = append(fb, "Consider deepening the spiritual dimension (reverence, gratitude, the sacred)")
	}
	if negative > 0.3 {
		fb = append(fb, "Reduce negative or harmful language; the ritual reads as adversarial")
	}
	if balance < 0.5 {
		fb = append(fb, "Balance the ethical and spiritual dimensions; one currently dominates the other")
	}
	if score <= 0.3 && negative <= 0.1 {
		fb = append(fb, "Strong ethical-spiritual balance")
	}

	return fb
}
