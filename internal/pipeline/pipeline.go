package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/okhramov/harmonia/internal/cache"
	"github.com/okhramov/harmonia/internal/lexicon"
	"github.com/okhramov/harmonia/internal/model"
	"github.com/okhramov/harmonia/internal/validate"
)

// Pipeline orchestrates the complete validation of a submission file:
// read, parse, cache lookup, analyze, report.
type Pipeline struct {
	reader       *Reader
	orchestrator *validate.Orchestrator
	results      cache.Cache // nil when caching is disabled
	renderer     *Renderer
	config       *model.Config
	lexVersion   string
}

// NewPipeline creates a pipeline from the given configuration. A lexicon
// override file, when configured, replaces the built-in term tables.
func NewPipeline(cfg *model.Config) (*Pipeline, error) {
	lex := lexicon.Default()
	if cfg.LexiconPath != "" {
		loaded, err := lexicon.Load(cfg.LexiconPath)
		if err != nil {
			return nil, fmt.Errorf("load lexicon: %w", err)
		}
		lex = loaded
	}

	orchestrator, err := validate.NewOrchestrator(lex)
	if err != nil {
		return nil, err
	}

	var results cache.Cache
	if cfg.Cache.Enabled {
		if cfg.Cache.Dir != "" {
			results = cache.NewLayeredCache(cfg.Cache.MemoryTTL, cfg.Cache.Dir, cfg.Cache.DiskTTL)
		} else {
			results = cache.NewMemoryCache(cfg.Cache.MemoryTTL, 10*time.Minute)
		}
	}

	return &Pipeline{
		reader:       NewReader(cfg.Ingress.MaxBodyBytes, cfg.Ingress.MinChars),
		orchestrator: orchestrator,
		results:      results,
		renderer:     NewRenderer(cfg.Output.IncludeFooter),
		config:       cfg,
		lexVersion:   lex.Version,
	}, nil
}

// ValidateFile validates the submission at path. A non-empty bioregion
// overrides the identifier from the .grc header.
func (p *Pipeline) ValidateFile(ctx context.Context, path, bioregion string) (*model.Report, error) {
	sub, err := p.reader.Read(path)
	if err != nil {
		return nil, fmt.Errorf("ingest %s: %w", path, err)
	}
	if bioregion != "" {
		sub.Bioregion = bioregion
	}

	result, fromCache := p.validateCached(ctx, sub.Body, sub.Bioregion)

	return &model.Report{
		Title:       sub.Title,
		Bioregion:   sub.Bioregion,
		SourcePath:  path,
		ValidatedAt: time.Now().UTC(),
		Doc: model.DocMeta{
			Format:    sub.Format,
			Bytes:     sub.Bytes,
			WordCount: len(strings.Fields(sub.Body)),
			Sections:  sub.Sections,
			FromCache: fromCache,
		},
		Result:     *result,
		Principles: model.DefaultPrinciples(),
	}, nil
}

// ValidateText validates raw text directly, bypassing ingress limits. Used
// by collaborators that have already decoded and bounded the content.
func (p *Pipeline) ValidateText(ctx context.Context, text, bioregion string) *model.ValidationResult {
	result, _ := p.validateCached(ctx, text, bioregion)
	return result
}

// validateCached serves deterministic results from the cache when enabled.
// Cached results keep their original timestamp so audits reproduce.
func (p *Pipeline) validateCached(ctx context.Context, text, bioregion string) (*model.ValidationResult, bool) {
	var key string
	if p.results != nil {
		key = cache.Key(p.lexVersion, bioregion, text)
		if data, found := p.results.Get(key); found {
			var cached model.ValidationResult
			if err := json.Unmarshal(data, &cached); err == nil {
				return &cached, true
			}
			// A corrupt entry falls through to a fresh validation.
		}
	}

	result := p.orchestrator.Validate(ctx, text, bioregion)
	result.ValidatedAt = time.Now().UTC().Format(time.RFC3339)

	if p.results != nil {
		if data, err := json.Marshal(result); err == nil {
			if err := p.results.Set(key, data, 0); err != nil && p.config.Output.Verbose {
				fmt.Fprintf(os.Stderr, "Warning: cache write failed: %v\n", err)
			}
		}
	}

	return result, false
}

// RenderReport renders the report to the configured outputs
func (p *Pipeline) RenderReport(report *model.Report, jsonPath, mdPath string, verbose bool) error {
	if jsonPath != "" {
		if err := p.renderer.RenderJSON(report, jsonPath); err != nil {
			return fmt.Errorf("render JSON: %w", err)
		}
		if verbose {
			fmt.Printf("✓ Wrote JSON: %s\n", jsonPath)
		}
	}

	if mdPath != "" {
		if err := p.renderer.RenderMarkdown(report, mdPath); err != nil {
			return fmt.Errorf("render markdown: %w", err)
		}
		if verbose {
			fmt.Printf("✓ Wrote Markdown: %s\n", mdPath)
		}
	}

	p.renderer.RenderSummary(report)
	return nil
}
