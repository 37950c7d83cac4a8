// Package lexicon holds the versioned term tables the analyzers scan for.
// A Set is pure data: matching logic lives in the analyze package. Sets are
// immutable after construction and safe to share across concurrent calls.
package lexicon

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Set is one versioned collection of term tables. All terms are stored
// lowercased; multi-word entries are matched as whole phrases.
type Set struct {
	Version string `yaml:"version"`

	// ESEP tables
	Ethical   []string `yaml:"ethical"`
	Spiritual []string `yaml:"spiritual"`
	Negative  []string `yaml:"negative"`

	// Narrative forensics tables
	Polarizing     []string `yaml:"polarizing"`
	Biased         []string `yaml:"biased"`
	GenderCoded    []string `yaml:"gender_coded"`
	Hierarchy      []string `yaml:"hierarchy"`
	Harmony        []string `yaml:"harmony"`
	ClaimCues      []string `yaml:"claim_cues"`
	Hedges         []string `yaml:"hedges"`
	Absolutes      []string `yaml:"absolutes"`
	InGroup        []string `yaml:"in_group"`
	OutGroup       []string `yaml:"out_group"`
	Sensitive      []string `yaml:"sensitive"`
	PermissionCues []string `yaml:"permission_cues"`

	// CEDA tables
	Traditions []string `yaml:"traditions"`
	Symbols    []string `yaml:"symbols"`
	Practices  []string `yaml:"practices"`
	Languages  []string `yaml:"languages"`

	// Belief/custom sentence patterns (regular expressions)
	BeliefPatterns []string `yaml:"belief_patterns"`
	CustomPatterns []string `yaml:"custom_patterns"`
}

// Load reads a lexicon override file in YAML format. Tables omitted from
// the file fall back to the built-in defaults, so overrides can be partial.
func Load(path string) (*Set, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read lexicon: %w", err)
	}

	set := Default()
	if err := yaml.Unmarshal(data, set); err != nil {
		return nil, fmt.Errorf("parse lexicon: %w", err)
	}

	return set, nil
}
