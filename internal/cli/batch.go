package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/okhramov/harmonia/internal/pipeline"
	"github.com/okhramov/harmonia/internal/worker"
	"github.com/spf13/cobra"
)

var (
	concurrency  int
	outputDir    string
	batchTimeout time.Duration
	// bioregion, lexiconPath, noCache, cacheDir, noFooter are defined in
	// validate.go and shared here
)

// batchCmd represents the batch command
var batchCmd = &cobra.Command{
	Use:   "batch <manifest>",
	Short: "Validate multiple submissions from a manifest in parallel",
	Long: `Batch validates multiple ritual documents concurrently:
- Read submission paths from a manifest file (one per line, // comments)
- Validate submissions in parallel with a configurable worker count
- Generate individual JSON reports plus a summary table

Example:
  harmonia batch submissions.txt
  harmonia batch submissions.txt --concurrency 8 --output-dir ./reports
  harmonia batch submissions.txt --bioregion cascadia-north`,
	Args: cobra.ExactArgs(1),
	RunE: runBatch,
}

func init() {
	rootCmd.AddCommand(batchCmd)

	batchCmd.Flags().IntVar(&concurrency, "concurrency", runtime.NumCPU(), "number of concurrent workers")
	batchCmd.Flags().StringVar(&outputDir, "output-dir", "./harmonia-reports", "output directory for reports")
	batchCmd.Flags().DurationVar(&batchTimeout, "timeout", 5*time.Minute, "total timeout for batch processing")

	// Shared with the validate command
	batchCmd.Flags().StringVar(&bioregion, "bioregion", "", "bioregion identifier applied to every submission")
	batchCmd.Flags().StringVar(&lexiconPath, "lexicon", "", "YAML lexicon override file")
	batchCmd.Flags().BoolVar(&noCache, "no-cache", false, "disable result cache")
	batchCmd.Flags().StringVar(&cacheDir, "cache-dir", "", "persist results to this directory across runs")
	batchCmd.Flags().BoolVar(&noFooter, "no-footer", false, "disable footer in Markdown reports")
}

func runBatch(cmd *cobra.Command, args []string) error {
	manifest := args[0]
	ctx, cancel := context.WithTimeout(context.Background(), batchTimeout)
	defer cancel()

	cfg := buildConfig()
	cfg.Concurrency.BatchWorkers = concurrency

	p, err := pipeline.NewPipeline(cfg)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	processor := worker.NewBatchProcessor(p, concurrency)
	results, err := processor.ProcessManifest(ctx, manifest, bioregion)
	if err != nil {
		return err
	}

	approved := 0
	failed := 0
	renderer := pipeline.NewRenderer(!noFooter)

	for _, result := range results {
		if result.Error != nil {
			failed++
			fmt.Fprintf(os.Stderr, "✗ %s: %v\n", result.Path, result.Error)
			continue
		}

		jsonPath := filepath.Join(outputDir, reportName(result.Path))
		if err := renderer.RenderJSON(result.Report, jsonPath); err != nil {
			failed++
			fmt.Fprintf(os.Stderr, "✗ %s: %v\n", result.Path, err)
			continue
		}

		mark := "✗"
		if result.Report.Result.IsApproved {
			approved++
			mark = "✓"
		}
		fmt.Printf("%s %s: ESEP %.3f, CEDA %d, narrative %.3f (%s)\n",
			mark, result.Path,
			result.Report.Result.ESEPScore,
			result.Report.Result.CEDAScore,
			result.Report.Result.NarrativeScore,
			jsonPath)
	}

	fmt.Printf("\n%d submissions: %d approved, %d rejected, %d errors\n",
		len(results), approved, len(results)-approved-failed, failed)
	return nil
}

// reportName derives a report file name from a submission path
func reportName(path string) string {
	base := filepath.Base(path)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	return base + ".report.json"
}
