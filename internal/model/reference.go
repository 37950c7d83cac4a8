package model

// CulturalReference represents a detected cultural expression in the text
type CulturalReference struct {
	Category    ReferenceCategory `json:"category"`              // tradition, language, symbol, practice, belief, custom
	MatchedText string            `json:"matched_text"`          // The term or phrase that matched
	Confidence  float64           `json:"confidence"`            // 0.0-1.0, lexicon hits are 0.9, pattern hits 0.7
	Context     string            `json:"context,omitempty"`     // Surrounding text snippet
}

// ReferenceCategory classifies the kind of cultural reference
type ReferenceCategory string

const (
	CategoryTradition ReferenceCategory = "tradition" // Ceremonies, seasonal observances
	CategoryLanguage  ReferenceCategory = "language"  // Kinship and lineage vocabulary
	CategorySymbol    ReferenceCategory = "symbol"    // Sacred objects and motifs
	CategoryPractice  ReferenceCategory = "practice"  // Ritual activities
	CategoryBelief    ReferenceCategory = "belief"    // Belief-pattern sentence matches
	CategoryCustom    ReferenceCategory = "custom"    // Inherited custom patterns
)
