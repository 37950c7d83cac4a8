package pipeline

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/okhramov/harmonia/internal/model"
)

// Renderer writes validation reports as JSON, Markdown, and a stdout summary
type Renderer struct {
	includeFooter bool
}

// NewRenderer creates a new renderer
func NewRenderer(includeFooter bool) *Renderer {
	return &Renderer{includeFooter: includeFooter}
}

// RenderJSON writes the full report as indented JSON
func (r *Renderer) RenderJSON(report *model.Report, path string) error {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}

// RenderMarkdown writes a human-readable Markdown report
func (r *Renderer) RenderMarkdown(report *model.Report, path string) error {
	var b strings.Builder

	fmt.Fprintf(&b, "# Harmonia Validation: %s\n\n", report.Title)
	if report.Bioregion != "" {
		fmt.Fprintf(&b, "**Bioregion:** %s  \n", report.Bioregion)
	}
	fmt.Fprintf(&b, "**Validated:** %s  \n", report.ValidatedAt.Format("2006-01-02 15:04 UTC"))
	fmt.Fprintf(&b, "**Decision:** %s\n\n", decision(report.Result.IsApproved))

	b.WriteString("## Gates\n\n")
	b.WriteString("| Gate | Rule | Value | Result |\n")
	b.WriteString("|------|------|-------|--------|\n")
	for _, g := range report.Result.Gates {
		fmt.Fprintf(&b, "| %s | `%s` | %.4g | %s |\n", g.Name, g.Rule, g.Value, passFail(g.Passed))
	}
	b.WriteString("\n")

	res := report.Result
	b.WriteString("## Scores\n\n")
	fmt.Fprintf(&b, "- ESEP composite: %.3f (lower is better; ethical %.2f, spiritual %.2f, balance %.2f, negative %.2f)\n",
		res.ESEP.Score, res.ESEP.EthicalScore, res.ESEP.SpiritualScore, res.ESEP.BalanceScore, res.ESEP.NegativeScore)
	fmt.Fprintf(&b, "- CEDA references: %d (diversity %.2f, authenticity %.2f)\n",
		res.CEDA.Score, res.CEDA.Diversity, res.CEDA.Authenticity)
	fmt.Fprintf(&b, "- Narrative overall: %.3f (polarization %.2f, bias %.2f, harmony %.2f, facts %.2f)\n\n",
		res.Narrative.OverallScore, res.Narrative.PolarizationScore, res.Narrative.BiasScore,
		res.Narrative.HarmonyScore, res.Narrative.FactScore)

	if len(res.CulturalReferences) > 0 {
		b.WriteString("## Cultural References\n\n")
		for _, ref := range res.CEDA.References {
			fmt.Fprintf(&b, "- **%s** (%s, confidence %.1f): %s\n", ref.MatchedText, ref.Category, ref.Confidence, ref.Context)
		}
		b.WriteString("\n")
	}

	if len(res.Issues) > 0 {
		b.WriteString("## Issues\n\n")
		for _, issue := range res.Issues {
			fmt.Fprintf(&b, "- [%s/%s] %s\n", issue.Category, issue.Severity, issue.Description)
			if issue.Excerpt != "" {
				fmt.Fprintf(&b, "  > %s\n", issue.Excerpt)
			}
		}
		b.WriteString("\n")
	}

	if len(res.Feedback) > 0 {
		b.WriteString("## Feedback\n\n")
		for _, fb := range res.Feedback {
			fmt.Fprintf(&b, "- %s\n", fb)
		}
		b.WriteString("\n")
	}

	if r.includeFooter {
		b.WriteString("---\n")
		b.WriteString("Generated by Harmonia. Deterministic, transparent, gated: identical input always yields an identical result.\n")
	}

	if err := os.WriteFile(path, []byte(b.String()), 0644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}

// RenderSummary prints a short summary to stdout
func (r *Renderer) RenderSummary(report *model.Report) {
	res := report.Result

	fmt.Printf("\n%s: %s\n", report.Title, decision(res.IsApproved))
	fmt.Printf("  ESEP %.3f (<= 0.7)  |  CEDA %d refs (>= 2)  |  Narrative %.3f (>= 0.6)\n",
		res.ESEPScore, res.CEDAScore, res.NarrativeScore)
	if report.Doc.FromCache {
		fmt.Println("  (served from cache)")
	}
	for _, fb := range res.Feedback {
		fmt.Printf("  - %s\n", fb)
	}
}

func decision(approved bool) string {
	if approved {
		return "APPROVED"
	}
	return "NOT APPROVED"
}

func passFail(passed bool) string {
	if passed {
		return "pass"
	}
	return "fail"
}
