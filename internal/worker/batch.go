package worker

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/okhramov/harmonia/internal/model"
)

// Validator defines the interface for validating one submission file
type Validator interface {
	ValidateFile(ctx context.Context, path, bioregion string) (*model.Report, error)
}

// ValidateJob represents one submission file to validate
type ValidateJob struct {
	Path      string
	Bioregion string
	Validator Validator
}

// Execute executes the validation job
func (j *ValidateJob) Execute(ctx context.Context) Result {
	report, err := j.Validator.ValidateFile(ctx, j.Path, j.Bioregion)
	return &ValidateResult{
		Path:   j.Path,
		Report: report,
		Error:  err,
	}
}

// ValidateResult represents the result of a validation job
type ValidateResult struct {
	Path   string
	Report *model.Report
	Error  error
}

// GetError returns the error from the validation result
func (r *ValidateResult) GetError() error {
	return r.Error
}

// BatchProcessor validates multiple submission files concurrently
type BatchProcessor struct {
	validator   Validator
	concurrency int
}

// NewBatchProcessor creates a new batch processor
func NewBatchProcessor(validator Validator, concurrency int) *BatchProcessor {
	return &BatchProcessor{
		validator:   validator,
		concurrency: concurrency,
	}
}

// ProcessPaths validates multiple submission files concurrently. A
// non-empty bioregion overrides the identifier of every submission.
func (b *BatchProcessor) ProcessPaths(ctx context.Context, paths []string, bioregion string) []*ValidateResult {
	if len(paths) == 0 {
		return []*ValidateResult{}
	}

	pool := NewPool(ctx, b.concurrency)
	pool.Start()

	// Submit concurrently with the Wait drain below: the pool channels are
	// bounded, so submitting every path first would deadlock once the job
	// count outgrows the buffers.
	go func() {
		for _, path := range paths {
			pool.Submit(&ValidateJob{
				Path:      path,
				Bioregion: bioregion,
				Validator: b.validator,
			})
		}
		pool.Close()
	}()

	results := pool.Wait()

	validateResults := make([]*ValidateResult, len(results))
	for i, result := range results {
		validateResults[i] = result.(*ValidateResult)
	}

	return validateResults
}

// ProcessManifest reads submission paths from a manifest file and validates
// them concurrently.
func (b *BatchProcessor) ProcessManifest(ctx context.Context, manifestPath, bioregion string) ([]*ValidateResult, error) {
	paths, err := ReadPathsFromFile(manifestPath)
	if err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}

	return b.ProcessPaths(ctx, paths, bioregion), nil
}

// ReadPathsFromFile reads submission paths from a manifest (one per line).
// Blank lines and `//`-prefixed comment lines are skipped; duplicates are
// removed. `#` cannot mark comments here because it opens .grc headers.
func ReadPathsFromFile(manifestPath string) ([]string, error) {
	file, err := os.Open(manifestPath)
	if err != nil {
		return nil, fmt.Errorf("open manifest: %w", err)
	}
	defer func() { _ = file.Close() }()

	var paths []string
	seen := make(map[string]bool)

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		if line == "" || strings.HasPrefix(line, "//") {
			continue
		}

		if !seen[line] {
			seen[line] = true
			paths = append(paths, line)
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan manifest: %w", err)
	}

	return paths, nil
}
