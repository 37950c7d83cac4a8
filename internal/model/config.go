package model

import "time"

// Config holds the complete Harmonia configuration
type Config struct {
	Ingress     IngressConfig     `yaml:"ingress" mapstructure:"ingress"`
	Cache       CacheConfig       `yaml:"cache" mapstructure:"cache"`
	Concurrency ConcurrencyConfig `yaml:"concurrency" mapstructure:"concurrency"`
	Output      OutputConfig      `yaml:"output" mapstructure:"output"`
	LexiconPath string            `yaml:"lexicon_path" mapstructure:"lexicon_path"` // Optional YAML lexicon override
}

// IngressConfig controls submission intake limits.
// These limits belong to the ingress boundary; the analyzers themselves
// accept any string.
type IngressConfig struct {
	MaxBodyBytes int64 `yaml:"max_body_bytes" mapstructure:"max_body_bytes"` // Reject submissions larger than this
	MinChars     int   `yaml:"min_chars" mapstructure:"min_chars"`           // Reject bodies shorter than this
}

// CacheConfig controls validation result caching
type CacheConfig struct {
	Enabled   bool          `yaml:"enabled" mapstructure:"enabled"`
	Dir       string        `yaml:"dir" mapstructure:"dir"` // Empty disables the disk layer
	MemoryTTL time.Duration `yaml:"memory_ttl" mapstructure:"memory_ttl"`
	DiskTTL   time.Duration `yaml:"disk_ttl" mapstructure:"disk_ttl"`
}

// ConcurrencyConfig controls parallelism
type ConcurrencyConfig struct {
	BatchWorkers int `yaml:"batch_workers" mapstructure:"batch_workers"` // Worker pool size for batch runs
}

// OutputConfig controls report rendering
type OutputConfig struct {
	Verbose       bool `yaml:"verbose" mapstructure:"verbose"`
	IncludeFooter bool `yaml:"include_footer" mapstructure:"include_footer"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Ingress: IngressConfig{
			MaxBodyBytes: 10 * 1024 * 1024,
			MinChars:     100,
		},
		Cache: CacheConfig{
			Enabled:   true,
			MemoryTTL: 1 * time.Hour,
			DiskTTL:   24 * time.Hour,
		},
		Concurrency: ConcurrencyConfig{
			BatchWorkers: 4,
		},
		Output: OutputConfig{
			Verbose:       false,
			IncludeFooter: true,
		},
	}
}
