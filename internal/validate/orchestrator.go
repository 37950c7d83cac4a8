// Package validate joins the three analyzers into a single approval
// decision. The orchestrator owns the per-axis thresholds: approval is a
// logical AND over independent gates, never a weighted blend, so no single
// strong axis can compensate for another axis failing its own gate.
package validate

import (
	"context"
	"fmt"
	"sync"

	"github.com/okhramov/harmonia/internal/analyze"
	"github.com/okhramov/harmonia/internal/lexicon"
	"github.com/okhramov/harmonia/internal/model"
)

// Orchestrator runs the three analyzers over the same input and merges
// their outputs into one ValidationResult. It is stateless and safe for
// concurrent use.
type Orchestrator struct {
	esep      *analyze.ESEP
	ceda      *analyze.CEDA
	narrative *analyze.Narrative
}

// NewOrchestrator creates an orchestrator over the given lexicon
func NewOrchestrator(lex *lexicon.Set) (*Orchestrator, error) {
	ceda, err := analyze.NewCEDA(lex)
	if err != nil {
		return nil, fmt.Errorf("build CEDA analyzer: %w", err)
	}

	return &Orchestrator{
		esep:      analyze.NewESEP(lex),
		ceda:      ceda,
		narrative: analyze.NewNarrative(lex),
	}, nil
}

// Validate runs the three analyzers concurrently over the text and applies
// the approval gates. The analyzers are pure and share no state, so the
// fan-out is observationally identical to sequential execution. bioregionID
// is threaded through to the result for collaborators and never consulted
// for scoring. Validate never fails for any string input: the worst case is
// a not-approved result with explanatory feedback.
func (o *Orchestrator) Validate(ctx context.Context, text, bioregionID string) *model.ValidationResult {
	var (
		wg        sync.WaitGroup
		esep      model.ESEPResult
		ceda      model.CEDAResult
		narrative model.NarrativeResult
	)

	wg.Add(3)
	go func() {
		defer wg.Done()
		esep = o.esep.Evaluate(text)
	}()
	go func() {
		defer wg.Done()
		ceda = o.ceda.Evaluate(text)
	}()
	go func() {
		defer wg.Done()
		narrative = o.narrative.Evaluate(text)
	}()
	wg.Wait()

	gates := Gates(esep.Score, ceda.Score, narrative.OverallScore)

	// Feedback merges in analyzer order with no deduplication.
	feedback := make([]string, 0, len(esep.Feedback)+len(ceda.Feedback)+len(narrative.Feedback))
	feedback = append(feedback, esep.Feedback...)
	feedback = append(feedback, ceda.Feedback...)
	feedback = append(feedback, narrative.Feedback...)

	refs := make([]string, 0, len(ceda.References))
	for _, r := range ceda.References {
		refs = append(refs, r.MatchedText)
	}

	return &model.ValidationResult{
		BioregionID:        bioregionID,
		ESEPScore:          esep.Score,
		CEDAScore:          ceda.Score,
		NarrativeScore:     narrative.OverallScore,
		IsApproved:         allPassed(gates),
		Feedback:           feedback,
		CulturalReferences: refs,
		Issues:             narrative.Issues,
		Gates:              gates,
		ESEP:               esep,
		CEDA:               ceda,
		Narrative:          narrative,
	}
}

// Gates evaluates the three approval gates for the given axis values. The
// ESEP and narrative boundaries are inclusive.
func Gates(esepScore float64, cedaCount int, narrativeScore float64) []model.GateOutcome {
	return []model.GateOutcome{
		{
			Name:      "esep",
			Value:     esepScore,
			Threshold: analyze.ESEPApprovalMax,
			Rule:      fmt.Sprintf("esep_score <= %g", analyze.ESEPApprovalMax),
			Passed:    esepScore <= analyze.ESEPApprovalMax,
		},
		{
			Name:      "ceda",
			Value:     float64(cedaCount),
			Threshold: analyze.CEDAMinReferences,
			Rule:      fmt.Sprintf("reference_count >= %d", analyze.CEDAMinReferences),
			Passed:    cedaCount >= analyze.CEDAMinReferences,
		},
		{
			Name:      "narrative",
			Value:     narrativeScore,
			Threshold: analyze.NarrativeApprovalMin,
			Rule:      fmt.Sprintf("overall_score >= %g", analyze.NarrativeApprovalMin),
			Passed:    narrativeScore >= analyze.NarrativeApprovalMin,
		},
	}
}

func allPassed(gates []model.GateOutcome) bool {
	for _, g := range gates {
		if !g.Passed {
			return false
		}
	}
	return true
}
