package model

// NarrativeIssue represents a problematic passage found by narrative forensics
type NarrativeIssue struct {
	Category    IssueCategory `json:"category"`             // polarization, bias, factual, harmony, cultural
	Severity    IssueSeverity `json:"severity"`             // low, medium, high, critical
	Description string        `json:"description"`          // Human-readable description
	Excerpt     string        `json:"excerpt,omitempty"`    // The offending sentence
	Suggestion  string        `json:"suggestion,omitempty"` // How to rephrase
}

// IssueCategory classifies the type of narrative issue
type IssueCategory string

const (
	IssuePolarization IssueCategory = "polarization"
	IssueBias         IssueCategory = "bias"
	IssueFactual      IssueCategory = "factual"
	IssueHarmony      IssueCategory = "harmony"
	IssueCultural     IssueCategory = "cultural"
)

// IssueSeverity indicates how serious an issue is
type IssueSeverity string

const (
	SeverityLow      IssueSeverity = "low"
	SeverityMedium   IssueSeverity = "medium"
	SeverityHigh     IssueSeverity = "high"
	SeverityCritical IssueSeverity = "critical"
)
