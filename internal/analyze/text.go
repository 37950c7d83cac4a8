// Package analyze implements the three ritual-text analyzers: the
// ethical-spiritual evaluation protocol (ESEP), the cultural expression
// detection algorithm (CEDA), and narrative forensics. All analyzers are
// pure functions of their input text: no I/O, no mutable state, identical
// input always yields identical output.
package analyze

import (
	"strings"
	"unicode"
)

// splitWords tokenizes text into whitespace-delimited words.
func splitWords(text string) []string {
	return strings.Fields(text)
}

// splitSentences splits text on sentence terminators (. ! ?).
func splitSentences(text string) []string {
	var sentences []string
	var current strings.Builder

	for _, r := range text {
		current.WriteRune(r)
		if r == '.' || r == '!' || r == '?' {
			if s := strings.TrimSpace(current.String()); s != "" {
				sentences = append(sentences, s)
			}
			current.Reset()
		}
	}

	if s := strings.TrimSpace(current.String()); s != "" {
		sentences = append(sentences, s)
	}

	return sentences
}

// normalizeToken lowercases a word and strips leading/trailing punctuation,
// so "Blessing," matches the term "blessing".
func normalizeToken(word string) string {
	return strings.ToLower(strings.TrimFunc(word, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsNumber(r)
	}))
}

// isWordBoundary reports whether the byte at the given edge of a match is a
// word boundary. Matching is word-boundary rather than substring so that a
// term like "us" never matches inside "household".
func isWordBoundary(b byte) bool {
	r := rune(b)
	return !unicode.IsLetter(r) && !unicode.IsNumber(r)
}

// countPhrase counts boundary-delimited occurrences of a lowercased phrase
// in lowercased text.
func countPhrase(lowerText, phrase string) int {
	count := 0
	offset := 0
	for {
		i := strings.Index(lowerText[offset:], phrase)
		if i < 0 {
			break
		}
		start := offset + i
		end := start + len(phrase)

		startOK := start == 0 || isWordBoundary(lowerText[start-1])
		endOK := end == len(lowerText) || isWordBoundary(lowerText[end])
		if startOK && endOK {
			count++
		}

		offset = end
	}
	return count
}

// containsPhrase reports whether the lowercased text contains the
// lowercased phrase at a word boundary.
func containsPhrase(lowerText, phrase string) bool {
	return countPhrase(lowerText, phrase) > 0
}

// countHits counts total occurrences of any term from the table. Single
// words are compared against normalized tokens; multi-word terms are matched
// as whole phrases against the lowercased text.
func countHits(lowerText string, tokens []string, terms []string) int {
	single := make(map[string]bool)
	var phrases []string
	for _, term := range terms {
		if strings.ContainsRune(term, ' ') {
			phrases = append(phrases, term)
		} else {
			single[term] = true
		}
	}

	hits := 0
	if len(single) > 0 {
		for _, tok := range tokens {
			if single[normalizeToken(tok)] {
				hits++
			}
		}
	}
	for _, phrase := range phrases {
		hits += countPhrase(lowerText, phrase)
	}

	return hits
}

// containsAny reports whether any term from the table occurs in the
// lowercased text at a word boundary.
func containsAny(lowerText string, terms []string) bool {
	for _, term := range terms {
		if containsPhrase(lowerText, term) {
			return true
		}
	}
	return false
}

// allMatches returns every term from the table that occurs in the
// lowercased text at a word boundary, in table order.
func allMatches(lowerText string, terms []string) []string {
	var found []string
	for _, term := range terms {
		if containsPhrase(lowerText, term) {
			found = append(found, term)
		}
	}
	return found
}

// firstMatch returns the first term from the table found in the lowercased
// text, or "" when none match.
func firstMatch(lowerText string, terms []string) string {
	for _, term := range terms {
		if containsPhrase(lowerText, term) {
			return term
		}
	}
	return ""
}

// snippet extracts a context window around the match at [start, end),
// trimmed to word boundaries where possible.
func snippet(text string, start, end, radius int) string {
	from := start - radius
	if from < 0 {
		from = 0
	}
	to := end + radius
	if to > len(text) {
		to = len(text)
	}
	return strings.TrimSpace(text[from:to])
}

// truncate shortens a string for use in issue excerpts.
func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return strings.TrimSpace(s[:max]) + "..."
}
