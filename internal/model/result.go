package model

// ESEPResult is the output of the ethical-spiritual evaluation protocol.
// Score is a composite where LOWER is better (0.0 = ideal), unlike the
// other two analyzers. Callers combining scores must respect this asymmetry.
type ESEPResult struct {
	Score          float64  `json:"score"`           // Composite, 0.0-1.0, lower is better
	EthicalScore   float64  `json:"ethical_score"`   // Ethical vocabulary density, 0.0-1.0
	SpiritualScore float64  `json:"spiritual_score"` // Spiritual vocabulary density, 0.0-1.0
	BalanceScore   float64  `json:"balance_score"`   // 1.0 = perfectly balanced dimensions
	NegativeScore  float64  `json:"negative_score"`  // Negative vocabulary density, 0.0-1.0
	Feedback       []string `json:"feedback"`
}

// CEDAResult is the output of the cultural expression detection algorithm.
// Score is the reference count; higher is better.
type CEDAResult struct {
	Score        int                 `json:"score"`        // Number of distinct cultural references
	References   []CulturalReference `json:"references"`   // The references found
	Diversity    float64             `json:"diversity"`    // Normalized Shannon entropy over categories, 0.0-1.0
	Authenticity float64             `json:"authenticity"` // Confidence-weighted authenticity index, 0.0-1.0
	Feedback     []string            `json:"feedback"`
}

// NarrativeResult is the output of narrative forensics.
// All sub-scores and the overall score are reported so that higher is better.
type NarrativeResult struct {
	PolarizationScore float64          `json:"polarization_score"` // 1.0 = no polarizing language
	BiasScore         float64          `json:"bias_score"`         // 1.0 = no biased language
	HarmonyScore      float64          `json:"harmony_score"`      // Density of community-harmony language
	FactScore         float64          `json:"fact_score"`         // Share of evidentiary claims that are hedged
	OverallScore      float64          `json:"overall_score"`      // Weighted composite, 0.0-1.0
	Feedback          []string         `json:"feedback"`
	Issues            []NarrativeIssue `json:"issues"`
	Recommendations   []string         `json:"recommendations"`
}

// ValidationResult aggregates the three analyzers and the approval decision.
// Created once per validation call and never mutated afterwards.
type ValidationResult struct {
	BioregionID        string           `json:"bioregion_id,omitempty"` // Threaded through for collaborators, never scored on
	ESEPScore          float64          `json:"esep_score"`             // 0.0-1.0, lower is better
	CEDAScore          int              `json:"ceda_score"`             // Reference count, higher is better
	NarrativeScore     float64          `json:"narrative_score"`        // 0.0-1.0, higher is better
	IsApproved         bool             `json:"is_approved"`
	Feedback           []string         `json:"feedback"`            // Merged in ESEP, CEDA, narrative order
	CulturalReferences []string         `json:"cultural_references"` // Flattened matched texts from CEDA
	Issues             []NarrativeIssue `json:"issues,omitempty"`
	Gates              []GateOutcome    `json:"gates"` // Transparent per-axis gate breakdown

	ESEP      ESEPResult      `json:"esep"`
	CEDA      CEDAResult      `json:"ceda"`
	Narrative NarrativeResult `json:"narrative"`

	ValidatedAt string `json:"validated_at,omitempty"` // ISO-8601, stamped by the caller side of the boundary
}

// GateOutcome records one approval gate with its transparent inputs.
// Approval is an AND over all gates, never a weighted blend.
type GateOutcome struct {
	Name      string  `json:"name"`      // esep, ceda, narrative
	Value     float64 `json:"value"`     // The measured value
	Threshold float64 `json:"threshold"` // The boundary it is compared against
	Rule      string  `json:"rule"`      // e.g. "esep_score <= 0.7"
	Passed    bool    `json:"passed"`
}
