package analyze

import (
	"fmt"
	"math"
	"strings"

	"github.com/okhramov/harmonia/internal/lexicon"
	"github.com/okhramov/harmonia/internal/model"
)

// NarrativeApprovalMin is the approval floor on the overall narrative
// score, owned by the orchestrator.
const NarrativeApprovalMin = 0.6

// Composite weights for the overall narrative score.
const (
	weightPolarization = 0.3
	weightBias         = 0.3
	weightHarmony      = 0.2
	weightFacts        = 0.2
)

// Narrative detects polarizing, biased, and unsubstantiated language and
// rewards community-harmony language. All sub-scores and the weighted
// composite are reported so that higher is better.
type Narrative struct {
	lex *lexicon.Set
}

// NewNarrative creates a narrative forensics analyzer over the given lexicon
func NewNarrative(lex *lexicon.Set) *Narrative {
	return &Narrative{lex: lex}
}

// Evaluate scores the text. It never fails: degenerate input yields a
// zero-claim, zero-issue result.
func (a *Narrative) Evaluate(text string) model.NarrativeResult {
	words := splitWords(text)
	sentences := splitSentences(text)
	lowerText := strings.ToLower(text)
	wordCount := float64(len(words))

	var issues []model.NarrativeIssue

	polarization := a.polarizationScore(lowerText, words, wordCount)
	bias := a.biasScore(lowerText, words, wordCount)
	issues = append(issues, a.sentenceIssues(sentences)...)

	harmony := densityScore(countHits(lowerText, words, a.lex.Harmony), math.Max(wordCount, 1), 0.1)

	facts, factIssues := a.factVerification(sentences)
	issues = append(issues, factIssues...)

	issues = append(issues, a.culturalSensitivity(sentences)...)

	overall := weightPolarization*polarization +
		weightBias*bias +
		weightHarmony*harmony +
		weightFacts*facts

	return model.NarrativeResult{
		PolarizationScore: polarization,
		BiasScore:         bias,
		HarmonyScore:      harmony,
		FactScore:         facts,
		OverallScore:      overall,
		Feedback:          a.feedback(overall, polarization, bias, harmony, facts),
		Issues:            issues,
		Recommendations:   recommendations(issues),
	}
}

// polarizationScore inverts the polarizing-term density: 1.0 means no
// polarizing vocabulary at all.
func (a *Narrative) polarizationScore(lowerText string, words []string, wordCount float64) float64 {
	if wordCount == 0 {
		return 1.0
	}
	density := densityScore(countHits(lowerText, words, a.lex.Polarizing), wordCount, 0.1)
	return 1 - density
}

// biasScore inverts biased-term density at a stricter 0.05 denominator.
// Only the biased table feeds the density; gender-coded and hierarchy terms
// surface as sentence-level issues, not as score input, so the overlapping
// entries ("primitive", "savage") are never counted twice.
func (a *Narrative) biasScore(lowerText string, words []string, wordCount float64) float64 {
	if wordCount == 0 {
		return 1.0
	}
	density := densityScore(countHits(lowerText, words, a.lex.Biased), wordCount, 0.05)
	return 1 - density
}

// sentenceIssues scans each sentence for structural red flags that emit
// issues independent of the numeric scores.
func (a *Narrative) sentenceIssues(sentences []string) []model.NarrativeIssue {
	var issues []model.NarrativeIssue

	for _, sentence := range sentences {
		lower := strings.ToLower(sentence)

		// In-group/out-group pronoun pairing in the same sentence signals
		// us-vs-them framing even when no polarizing term appears.
		if containsAny(lower, a.lex.InGroup) && containsAny(lower, a.lex.OutGroup) {
			issues = append(issues, model.NarrativeIssue{
				Category:    model.IssuePolarization,
				Severity:    model.SeverityMedium,
				Description: "In-group/out-group framing: the sentence contrasts \"we/our\" with \"they/their\"",
				Excerpt:     truncate(sentence, 140),
				Suggestion:  "Rephrase inclusively; name the shared community rather than contrasting groups",
			})
		}

		for _, term := range allMatches(lower, a.lex.Absolutes) {
			issues = append(issues, model.NarrativeIssue{
				Category:    model.IssuePolarization,
				Severity:    model.SeverityLow,
				Description: fmt.Sprintf("Absolute quantifier %q leaves no room for exceptions", term),
				Excerpt:     truncate(sentence, 140),
				Suggestion:  "Soften absolute claims (often, many, most)",
			})
		}

		for _, term := range allMatches(lower, a.lex.GenderCoded) {
			issues = append(issues, model.NarrativeIssue{
				Category:    model.IssueBias,
				Severity:    model.SeverityMedium,
				Description: fmt.Sprintf("Gender-coded term %q", term),
				Excerpt:     truncate(sentence, 140),
				Suggestion:  "Use neutral descriptive language",
			})
		}

		for _, term := range allMatches(lower, a.lex.Hierarchy) {
			issues = append(issues, model.NarrativeIssue{
				Category:    model.IssueBias,
				Severity:    model.SeverityHigh,
				Description: fmt.Sprintf("Civilization-hierarchy term %q ranks cultures against each other", term),
				Excerpt:     truncate(sentence, 140),
				Suggestion:  "Describe cultures on their own terms, without ranking",
			})
		}
	}

	return issues
}

// factVerification checks every sentence containing an evidentiary-claim
// cue for a hedging qualifier. The score is hedged/total claims, defined as
// 1.0 when there are no claims: making no claims incurs no penalty.
func (a *Narrative) factVerification(sentences []string) (float64, []model.NarrativeIssue) {
	var issues []model.NarrativeIssue
	claims := 0
	hedged := 0

	for _, sentence := range sentences {
		lower := strings.ToLower(sentence)
		if !containsAny(lower, a.lex.ClaimCues) {
			continue
		}
		claims++
		if containsAny(lower, a.lex.Hedges) {
			hedged++
			continue
		}
		issues = append(issues, model.NarrativeIssue{
			Category:    model.IssueFactual,
			Severity:    model.SeverityMedium,
			Description: "Evidentiary claim stated without a hedging qualifier",
			Excerpt:     truncate(sentence, 140),
			Suggestion:  "Hedge or cite the claim (may, might, suggests, according to ...)",
		})
	}

	if claims == 0 {
		return 1.0, issues
	}
	return float64(hedged) / float64(claims), issues
}

// culturalSensitivity flags sentences that invoke protected knowledge
// without a permission or consultation cue. These issues never feed a
// numeric sub-score.
func (a *Narrative) culturalSensitivity(sentences []string) []model.NarrativeIssue {
	var issues []model.NarrativeIssue

	for _, sentence := range sentences {
		lower := strings.ToLower(sentence)
		term := firstMatch(lower, a.lex.Sensitive)
		if term == "" || containsAny(lower, a.lex.PermissionCues) {
			continue
		}
		issues = append(issues, model.NarrativeIssue{
			Category:    model.IssueCultural,
			Severity:    model.SeverityHigh,
			Description: fmt.Sprintf("Reference to %q without a permission or consultation cue", term),
			Excerpt:     truncate(sentence, 140),
			Suggestion:  "Name the consent or consultation under which this knowledge is shared",
		})
	}

	return issues
}

func (a *Narrative) feedback(overall, polarization, bias, harmony, facts float64) []string {
	var fb []string

	if polarization < 0.6 {
		fb = append(fb, "Reduce divisive or polarizing language")
	}
	if bias < 0.6 {
		fb = append(fb, "Review wording for biased or coded terms")
	}
	if harmony < 0.3 {
		fb = append(fb, "Add community-building, inclusive language")
	}
	if facts < 0.7 {
		fb = append(fb, "Hedge or source evidentiary claims")
	}
	if overall > 0.8 {
		fb = append(fb, "Narrative promotes unity and balance - excellent work")
	}

	return fb
}

// recommendations derives one deduplicated recommendation per issue
// suggestion, preserving first-seen order.
func recommendations(issues []model.NarrativeIssue) []string {
	seen := make(map[string]bool)
	var recs []string
	for _, issue := range issues {
		if issue.Suggestion == "" || seen[issue.Suggestion] {
			continue
		}
		seen[issue.Suggestion] = true
		recs = append(recs, issue.Suggestion)
	}
	return recs
}
