package validate

import (
	"context"
	"reflect"
	"strings"
	"testing"

	"github.com/okhramov/harmonia/internal/lexicon"
)

// ceremonyText is a well-formed sample submission: five-plus distinct
// cultural terms, harmony-positive language, no polarizing or absolute
// terms, no unhedged claims.
const ceremonyText = "In this ceremony of gratitude, the community gathers in a circle " +
	"beneath the cedar trees. Elders offer a blessing with sage and sweet smoke, " +
	"honoring the ancestors with respect and reverence. Each person brings an " +
	"offering of harvest bread, shared in kinship and humility. The drum sounds " +
	"in harmony, and the gathering closes in peace, unity, and mutual care."

func newOrchestrator(t *testing.T, lex *lexicon.Set) *Orchestrator {
	t.Helper()
	o, err := NewOrchestrator(lex)
	if err != nil {
		t.Fatalf("NewOrchestrator: %v", err)
	}
	return o
}

func TestOrchestrator_Deterministic(t *testing.T) {
	o := newOrchestrator(t, lexicon.Default())
	ctx := context.Background()

	first := o.Validate(ctx, ceremonyText, "cascadia-north")
	second := o.Validate(ctx, ceremonyText, "cascadia-north")

	if !reflect.DeepEqual(first, second) {
		t.Errorf("repeated validation differs:\n%+v\n%+v", first, second)
	}
}

func TestOrchestrator_EmptyText(t *testing.T) {
	o := newOrchestrator(t, lexicon.Default())

	result := o.Validate(context.Background(), "", "cascadia-north")

	if result.ESEPScore != 1.0 {
		t.Errorf("ESEPScore = %v, want sentinel 1.0", result.ESEPScore)
	}
	if result.CEDAScore != 0 {
		t.Errorf("CEDAScore = %d, want 0", result.CEDAScore)
	}
	if result.IsApproved {
		t.Error("empty text must not be approved")
	}
	if result.BioregionID != "cascadia-north" {
		t.Errorf("BioregionID = %q, want it threaded through", result.BioregionID)
	}
}

func TestOrchestrator_CeremonyApproved(t *testing.T) {
	o := newOrchestrator(t, lexicon.Default())

	result := o.Validate(context.Background(), ceremonyText, "cascadia-north")

	if result.CEDAScore < 5 {
		t.Errorf("CEDAScore = %d, want >= 5", result.CEDAScore)
	}
	if !result.IsApproved {
		t.Fatalf("expected approval, got gates %+v", result.Gates)
	}

	positive := false
	for _, fb := range result.Feedback {
		lower := strings.ToLower(fb)
		if strings.Contains(lower, "rich cultural grounding") || strings.Contains(lower, "excellent") {
			positive = true
		}
	}
	if !positive {
		t.Errorf("expected at least one positive affirmation, got %v", result.Feedback)
	}

	if len(result.CulturalReferences) != result.CEDAScore {
		t.Errorf("CulturalReferences length %d != CEDAScore %d",
			len(result.CulturalReferences), result.CEDAScore)
	}
}

func TestOrchestrator_FeedbackMergeOrder(t *testing.T) {
	o := newOrchestrator(t, lexicon.Default())

	result := o.Validate(context.Background(), ceremonyText, "")

	merged := append(append(append([]string{},
		result.ESEP.Feedback...),
		result.CEDA.Feedback...),
		result.Narrative.Feedback...)

	if !reflect.DeepEqual(result.Feedback, merged) {
		t.Errorf("Feedback = %v, want analyzer-order merge %v", result.Feedback, merged)
	}
}

func TestGates_InclusiveBoundaries(t *testing.T) {
	cases := []struct {
		name      string
		esep      float64
		ceda      int
		narrative float64
		approved  bool
	}{
		{"all at boundary", 0.7, 2, 0.6, true},
		{"esep just over", 0.7000001, 2, 0.6, false},
		{"ceda one short", 0.7, 1, 0.6, false},
		{"narrative just under", 0.7, 2, 0.5999999, false},
		{"comfortably inside", 0.1, 8, 0.95, true},
	}

	for _, tc := range cases {
		gates := Gates(tc.esep, tc.ceda, tc.narrative)
		if got := allPassed(gates); got != tc.approved {
			t.Errorf("%s: approved = %v, want %v (gates %+v)", tc.name, got, tc.approved, gates)
		}
	}
}

// TestOrchestrator_ANDGateIndependence proves that a perfect narrative
// score and a sufficient reference count cannot compensate for a failing
// ESEP gate. A synthetic lexicon makes the axes easy to steer.
func TestOrchestrator_ANDGateIndependence(t *testing.T) {
	lex := &lexicon.Set{
		Version:   "test",
		Ethical:   []string{"kind"},
		Spiritual: []string{"luminous"},
		Negative:  []string{"blight"},
		Harmony:   []string{"together"},
		Symbols:   []string{"cedar"},
		Practices: []string{"sage"},
	}
	o := newOrchestrator(t, lex)

	// Ten words: maximal ethical density, zero spiritual, maximal negative.
	// ESEP = 0.4*(1-0) + 0.3*1.0 + 0.3*max(0, 0.3-0.15) = 0.745 > 0.7.
	text := "kind blight kind blight cedar sage together circle feast gather"
	result := o.Validate(context.Background(), text, "b")

	if result.ESEPScore <= 0.7 {
		t.Fatalf("ESEPScore = %v, want > 0.7 for this synthetic text", result.ESEPScore)
	}
	if result.CEDAScore < 2 {
		t.Fatalf("CEDAScore = %d, want >= 2", result.CEDAScore)
	}
	if result.NarrativeScore < 0.6 {
		t.Fatalf("NarrativeScore = %v, want >= 0.6", result.NarrativeScore)
	}

	if result.IsApproved {
		t.Error("one failing gate must reject the submission regardless of the other axes")
	}
}

func TestOrchestrator_NeverErrors(t *testing.T) {
	o := newOrchestrator(t, lexicon.Default())
	ctx := context.Background()

	// Degenerate inputs must produce a result, never a panic.
	for _, text := range []string{"", ".", "!!!", "\x00", strings.Repeat("word ", 5000), "héllo wörld"} {
		result := o.Validate(ctx, text, "b")
		if result == nil {
			t.Fatalf("Validate(%.10q) returned nil", text)
		}
	}
}
