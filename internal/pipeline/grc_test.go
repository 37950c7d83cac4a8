package pipeline

import (
	"errors"
	"reflect"
	"strings"
	"testing"
)

func TestParseGRC_HeaderAndSections(t *testing.T) {
	content := `# Cedar Grove Equinox Ceremony | cascadia-north

## Opening
We gather in the circle as the light turns.

## Blessing
Elders offer sage and a blessing for the season ahead.
`

	sub, err := ParseGRC(content)
	if err != nil {
		t.Fatalf("ParseGRC: %v", err)
	}

	if sub.Title != "Cedar Grove Equinox Ceremony" {
		t.Errorf("Title = %q", sub.Title)
	}
	if sub.Bioregion != "cascadia-north" {
		t.Errorf("Bioregion = %q", sub.Bioregion)
	}
	if !reflect.DeepEqual(sub.Sections, []string{"Opening", "Blessing"}) {
		t.Errorf("Sections = %v", sub.Sections)
	}
	if sub.Format != "grc" {
		t.Errorf("Format = %q, want grc", sub.Format)
	}

	// Section names are part of the ritual text; the '#' markers are not.
	if !strings.Contains(sub.Body, "Blessing") {
		t.Errorf("Body should keep section names: %q", sub.Body)
	}
	if strings.Contains(sub.Body, "#") {
		t.Errorf("Body should not contain markup: %q", sub.Body)
	}
}

func TestParseGRC_TitleWithoutBioregion(t *testing.T) {
	sub, err := ParseGRC("# Winter Vigil\nThe lanterns are lit at dusk.\n")
	if err != nil {
		t.Fatalf("ParseGRC: %v", err)
	}
	if sub.Title != "Winter Vigil" || sub.Bioregion != "" {
		t.Errorf("Title = %q, Bioregion = %q", sub.Title, sub.Bioregion)
	}
}

func TestParseGRC_MissingHeader(t *testing.T) {
	_, err := ParseGRC("just a paragraph with no header at all\n")
	if !errors.Is(err, ErrMissingHeader) {
		t.Errorf("err = %v, want ErrMissingHeader", err)
	}
}

func TestParseGRC_PreambleTolerated(t *testing.T) {
	sub, err := ParseGRC("submitted 2026-03-01\n\n# Spring Sowing | river-delta\nSeeds are blessed.\n")
	if err != nil {
		t.Fatalf("ParseGRC: %v", err)
	}
	if strings.Contains(sub.Body, "submitted") {
		t.Errorf("preamble before the header must not be analyzed: %q", sub.Body)
	}
	if sub.Title != "Spring Sowing" {
		t.Errorf("Title = %q", sub.Title)
	}
}

func TestParseGRC_RepeatedTitleHeaderIsText(t *testing.T) {
	sub, err := ParseGRC("# First | b\nline one.\n# Second\nline two.\n")
	if err != nil {
		t.Fatalf("ParseGRC: %v", err)
	}
	if sub.Title != "First" {
		t.Errorf("Title = %q, want the first header", sub.Title)
	}
	if !strings.Contains(sub.Body, "Second") {
		t.Errorf("repeated header should be kept as text: %q", sub.Body)
	}
}
