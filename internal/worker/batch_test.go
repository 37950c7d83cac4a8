package worker

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/okhramov/harmonia/internal/model"
)

// fakeValidator records the files it was asked to validate and fails
// any path containing "broken".
type fakeValidator struct {
	mu    sync.Mutex
	calls []string
}

func (v *fakeValidator) ValidateFile(ctx context.Context, path, bioregion string) (*model.Report, error) {
	v.mu.Lock()
	v.calls = append(v.calls, path)
	v.mu.Unlock()

	if strings.Contains(path, "broken") {
		return nil, errors.New("missing header")
	}
	return &model.Report{
		Title:     filepath.Base(path),
		Bioregion: bioregion,
		Result:    model.ValidationResult{IsApproved: true},
	}, nil
}

func TestBatchProcessor_ProcessPaths(t *testing.T) {
	validator := &fakeValidator{}
	processor := NewBatchProcessor(validator, 4)

	paths := []string{"a.grc", "b.grc", "broken.grc", "c.grc"}
	results := processor.ProcessPaths(context.Background(), paths, "cascadia")

	if len(results) != 4 {
		t.Fatalf("got %d results, want 4", len(results))
	}

	var failures int
	for _, result := range results {
		if result.Error != nil {
			failures++
			if result.Path != "broken.grc" {
				t.Errorf("unexpected failure for %s: %v", result.Path, result.Error)
			}
			if result.Report != nil {
				t.Error("failed result should carry no report")
			}
			continue
		}
		if result.Report.Bioregion != "cascadia" {
			t.Errorf("Bioregion = %q, want the batch override", result.Report.Bioregion)
		}
	}
	if failures != 1 {
		t.Errorf("got %d failures, want 1", failures)
	}

	validator.mu.Lock()
	defer validator.mu.Unlock()
	if len(validator.calls) != 4 {
		t.Errorf("validator called %d times, want 4", len(validator.calls))
	}
}

func TestBatchProcessor_ManyPathsLowConcurrency(t *testing.T) {
	// A manifest far larger than the pool buffers at a single worker, the
	// shape that a batch run over a real submissions directory produces.
	paths := make([]string, 50)
	for i := range paths {
		paths[i] = fmt.Sprintf("submission-%02d.grc", i)
	}

	processor := NewBatchProcessor(&fakeValidator{}, 1)

	done := make(chan []*ValidateResult, 1)
	go func() { done <- processor.ProcessPaths(context.Background(), paths, "") }()

	select {
	case results := <-done:
		if len(results) != len(paths) {
			t.Errorf("got %d results, want %d", len(results), len(paths))
		}
	case <-time.After(5 * time.Second):
		t.Fatal("ProcessPaths did not return for a large manifest")
	}
}

func TestBatchProcessor_HonorsContextTimeout(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	processor := NewBatchProcessor(&slowValidator{}, 1)

	paths := make([]string, 20)
	for i := range paths {
		paths[i] = fmt.Sprintf("submission-%02d.grc", i)
	}

	done := make(chan []*ValidateResult, 1)
	go func() { done <- processor.ProcessPaths(ctx, paths, "") }()

	select {
	case results := <-done:
		if len(results) == len(paths) {
			t.Error("timeout should have cut the batch short")
		}
	case <-time.After(5 * time.Second):
		t.Fatal("ProcessPaths ignored the context deadline")
	}
}

// slowValidator blocks on each file until the context is cancelled or a
// fixed delay elapses.
type slowValidator struct{}

func (v *slowValidator) ValidateFile(ctx context.Context, path, bioregion string) (*model.Report, error) {
	select {
	case <-time.After(25 * time.Millisecond):
		return &model.Report{Title: path}, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func TestBatchProcessor_EmptyPaths(t *testing.T) {
	processor := NewBatchProcessor(&fakeValidator{}, 2)

	results := processor.ProcessPaths(context.Background(), nil, "")
	if len(results) != 0 {
		t.Errorf("got %d results for no paths, want 0", len(results))
	}
}

func TestBatchProcessor_ProcessManifest(t *testing.T) {
	manifest := filepath.Join(t.TempDir(), "manifest.txt")
	content := "// spring submissions\na.grc\n\nb.grc\na.grc\n"
	if err := os.WriteFile(manifest, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	validator := &fakeValidator{}
	processor := NewBatchProcessor(validator, 2)

	results, err := processor.ProcessManifest(context.Background(), manifest, "")
	if err != nil {
		t.Fatalf("ProcessManifest: %v", err)
	}
	if len(results) != 2 {
		t.Errorf("got %d results, want 2 (duplicates removed)", len(results))
	}
}

func TestReadPathsFromFile(t *testing.T) {
	manifest := filepath.Join(t.TempDir(), "manifest.txt")
	content := "// comment\nrituals/equinox.grc\n\n  rituals/harvest.grc  \nrituals/equinox.grc\n"
	if err := os.WriteFile(manifest, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	paths, err := ReadPathsFromFile(manifest)
	if err != nil {
		t.Fatalf("ReadPathsFromFile: %v", err)
	}

	want := []string{"rituals/equinox.grc", "rituals/harvest.grc"}
	if len(paths) != len(want) {
		t.Fatalf("got %d paths, want %d: %v", len(paths), len(want), paths)
	}
	for i, p := range paths {
		if p != want[i] {
			t.Errorf("paths[%d] = %q, want %q", i, p, want[i])
		}
	}
}

func TestReadPathsFromFile_Missing(t *testing.T) {
	if _, err := ReadPathsFromFile(filepath.Join(t.TempDir(), "absent.txt")); err == nil {
		t.Error("expected an error for a missing manifest")
	}
}
