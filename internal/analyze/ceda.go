package analyze

import (
	"fmt"
	"math"
	"regexp"
	"strings"

	"github.com/okhramov/harmonia/internal/lexicon"
	"github.com/okhramov/harmonia/internal/model"
)

// CEDAMinReferences is the approval floor on the reference count, owned by
// the orchestrator.
const CEDAMinReferences = 2

const (
	lexiconConfidence = 0.9 // Whole-word/phrase lexicon matches
	patternConfidence = 0.7 // Belief/custom sentence-pattern matches

	contextRadius = 30 // Bytes of surrounding context captured per reference
)

// CEDA detects cultural references by category and computes a diversity
// index and an authenticity index. Its score is the reference count:
// higher is better.
type CEDA struct {
	lex            *lexicon.Set
	beliefPatterns []*regexp.Regexp
	customPatterns []*regexp.Regexp
}

// NewCEDA creates a CEDA analyzer over the given lexicon. Patterns that do
// not compile are rejected; built-in tables always compile.
func NewCEDA(lex *lexicon.Set) (*CEDA, error) {
	belief, err := compilePatterns(lex.BeliefPatterns)
	if err != nil {
		return nil, fmt.Errorf("belief patterns: %w", err)
	}
	custom, err := compilePatterns(lex.CustomPatterns)
	if err != nil {
		return nil, fmt.Errorf("custom patterns: %w", err)
	}

	return &CEDA{
		lex:            lex,
		beliefPatterns: belief,
		customPatterns: custom,
	}, nil
}

func compilePatterns(patterns []string) ([]*regexp.Regexp, error) {
	compiled := make([]*regexp.Regexp, 0, len(patterns))
	for _, p := range patterns {
		re, err := regexp.Compile("(?i)" + p)
		if err != nil {
			return nil, fmt.Errorf("pattern %q: %w", p, err)
		}
		compiled = append(compiled, re)
	}
	return compiled, nil
}

// Evaluate detects cultural references in the text. It never fails: a text
// with no references yields a zero-count result with hard-requirement
// feedback.
func (a *CEDA) Evaluate(text string) model.CEDAResult {
	lowerText := strings.ToLower(text)
	words := splitWords(text)

	var refs []model.CulturalReference
	refs = append(refs, a.matchCategory(text, lowerText, model.CategoryTradition, a.lex.Traditions)...)
	refs = append(refs, a.matchCategory(text, lowerText, model.CategorySymbol, a.lex.Symbols)...)
	refs = append(refs, a.matchCategory(text, lowerText, model.CategoryPractice, a.lex.Practices)...)
	refs = append(refs, a.matchCategory(text, lowerText, model.CategoryLanguage, a.lex.Languages)...)
	refs = append(refs, a.matchPatterns(text, model.CategoryBelief, a.beliefPatterns)...)
	refs = append(refs, a.matchPatterns(text, model.CategoryCustom, a.customPatterns)...)

	diversity := diversityIndex(refs)
	authenticity := authenticityIndex(refs, len(words))

	return model.CEDAResult{
		Score:        len(refs),
		References:   refs,
		Diversity:    diversity,
		Authenticity: authenticity,
		Feedback:     a.feedback(len(refs), diversity, authenticity),
	}
}

// matchCategory finds distinct lexicon terms in the text. Every distinct
// matching term contributes exactly one reference, however often it repeats.
func (a *CEDA) matchCategory(text, lowerText string, category model.ReferenceCategory, terms []string) []model.CulturalReference {
	var refs []model.CulturalReference
	for _, term := range terms {
		idx := phraseIndex(lowerText, term)
		if idx < 0 {
			continue
		}
		refs = append(refs, model.CulturalReference{
			Category:    category,
			MatchedText: term,
			Confidence:  lexiconConfidence,
			Context:     snippet(text, idx, idx+len(term), contextRadius),
		})
	}
	return refs
}

// phraseIndex returns the byte offset of the first boundary-delimited
// occurrence of the lowercased phrase, or -1.
func phraseIndex(lowerText, phrase string) int {
	offset := 0
	for {
		i := strings.Index(lowerText[offset:], phrase)
		if i < 0 {
			return -1
		}
		start := offset + i
		end := start + len(phrase)
		startOK := start == 0 || isWordBoundary(lowerText[start-1])
		endOK := end == len(lowerText) || isWordBoundary(lowerText[end])
		if startOK && endOK {
			return start
		}
		offset = end
	}
}

// matchPatterns applies belief/custom sentence templates. Matches dedupe by
// lowercased matched text so a repeated phrase counts once.
func (a *CEDA) matchPatterns(text string, category model.ReferenceCategory, patterns []*regexp.Regexp) []model.CulturalReference {
	var refs []model.CulturalReference
	seen := make(map[string]bool)

	for _, sentence := range splitSentences(text) {
		for _, re := range patterns {
			match := re.FindString(sentence)
			if match == "" {
				continue
			}
			key := strings.ToLower(match)
			if seen[key] {
				continue
			}
			seen[key] = true
			refs = append(refs, model.CulturalReference{
				Category:    category,
				MatchedText: match,
				Confidence:  patternConfidence,
				Context:     sentence,
			})
		}
	}

	return refs
}

// diversityIndex computes Shannon entropy over the category distribution of
// the references, normalized into [0,1] by log(categories present).
// Categories with zero occurrences are excluded from the entropy base; with
// no references, or all references in a single category, the index is 0.
func diversityIndex(refs []model.CulturalReference) float64 {
	if len(refs) == 0 {
		return 0
	}

	counts := make(map[model.ReferenceCategory]int)
	for _, r := range refs {
		counts[r.Category]++
	}
	if len(counts) < 2 {
		return 0
	}

	total := float64(len(refs))
	entropy := 0.0
	for _, c := range counts {
		p := float64(c) / total
		entropy -= p * math.Log(p)
	}

	return entropy / math.Log(float64(len(counts)))
}

// authenticityIndex computes the confidence-weighted mean of the
// references, with a +0.1-weighted bonus for references carrying real
// surrounding context, then applies a 20% anti-listing penalty when the
// reference density exceeds 10 per 100 words.
func authenticityIndex(refs []model.CulturalReference, wordCount int) float64 {
	if len(refs) == 0 {
		return 0
	}

	sum := 0.0
	for _, r := range refs {
		weight := r.Confidence
		if len(r.Context) > 20 {
			weight += 0.1 * r.Confidence
		}
		sum += weight
	}
	score := sum / float64(len(refs))

	if wordCount > 0 {
		density := float64(len(refs)) / float64(wordCount) * 100
		if density > 10 {
			score *= 0.8
		}
	}

	return math.Min(score, 1.0)
}

func (a *CEDA) feedback(count int, diversity, authenticity float64) []string {
	var fb []string

	if count < CEDAMinReferences {
		fb = append(fb, fmt.Sprintf("At least %d cultural references are required for approval", CEDAMinReferences))
	}
	if count < 5 {
		fb = append(fb, "Consider enriching the ritual with additional cultural references")
	} else {
		fb = append(fb, fmt.Sprintf("Rich cultural grounding: %d references found", count))
	}

	if diversity < 0.3 {
		fb = append(fb, "Draw on a wider range of cultural categories (traditions, symbols, practices, language)")
	}
	if diversity > 0.7 {
		fb = append(fb, "Excellent diversity of cultural expression across categories")
	}

	if authenticity < 0.5 {
		fb = append(fb, "Cultural references should be used respectfully and woven into their context")
	}
	if authenticity > 0.8 {
		fb = append(fb, "Cultural references feel authentic and well contextualized")
	}

	return fb
}
