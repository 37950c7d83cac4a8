package model

import "time"

// Report represents a complete Harmonia validation report for one submission
type Report struct {
	Title       string    `json:"title"`                 // Submission title from the .grc header
	Bioregion   string    `json:"bioregion,omitempty"`   // Bioregion identifier
	SourcePath  string    `json:"source_path,omitempty"` // File the submission was read from
	ValidatedAt time.Time `json:"validated_at"`          // When the validation occurred
	Doc         DocMeta   `json:"doc_meta"`              // Submission metadata

	Result ValidationResult `json:"result"` // Analyzer scores, gates and decision

	Principles Principles `json:"principles"` // Core principles applied
}

// DocMeta contains metadata about the parsed submission
type DocMeta struct {
	Format    string   `json:"format"`               // grc, html, text
	Bytes     int64    `json:"bytes"`                // Raw size on disk
	WordCount int      `json:"word_count"`           // Whitespace-delimited words in the body
	Sections  []string `json:"sections,omitempty"`   // Section names from the .grc format
	FromCache bool     `json:"from_cache,omitempty"` // Whether the result was served from cache
}

// Principles documents which core principles were applied
type Principles struct {
	Deterministic bool `json:"deterministic"` // Identical input always yields identical output
	Transparent   bool `json:"transparent"`   // All scoring explainable via gates and feedback
	Gated         bool `json:"gated"`         // Approval is an AND over per-axis gates
}

// DefaultPrinciples returns the standard Harmonia principles
func DefaultPrinciples() Principles {
	return Principles{
		Deterministic: true,
		Transparent:   true,
		Gated:         true,
	}
}
