package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/okhramov/harmonia/internal/model"
	"github.com/okhramov/harmonia/internal/pipeline"
	"github.com/spf13/cobra"
)

var (
	outJSON     string
	outMD       string
	bioregion   string
	lexiconPath string
	timeout     time.Duration
	maxBytes    int64
	minChars    int
	noCache     bool
	cacheDir    string
	noFooter    bool
	strict      bool
)

// validateCmd represents the validate command
var validateCmd = &cobra.Command{
	Use:   "validate <file>",
	Short: "Validate a single ritual submission and generate a report",
	Long: `Validate analyzes one ritual document to:
- Score the balance between ethical and spiritual language (ESEP)
- Detect cultural references, their diversity and authenticity (CEDA)
- Flag polarizing, biased or unsubstantiated narrative patterns
- Apply the per-axis approval gates and merge feedback

Submissions may be .grc documents ('#' title/bioregion header with '##'
sections), HTML exports, or plain text.

Example:
  harmonia validate ceremony.grc
  harmonia validate ceremony.grc --json report.json --md report.md
  harmonia validate ceremony.grc --bioregion cascadia-north --strict`,
	Args: cobra.ExactArgs(1),
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)

	// Output flags
	validateCmd.Flags().StringVar(&outJSON, "json", "report.json", "output JSON path")
	validateCmd.Flags().StringVar(&outMD, "md", "", "output Markdown path (optional)")

	// Submission flags
	validateCmd.Flags().StringVar(&bioregion, "bioregion", "", "bioregion identifier (overrides the .grc header)")
	validateCmd.Flags().StringVar(&lexiconPath, "lexicon", "", "YAML lexicon override file")
	validateCmd.Flags().DurationVar(&timeout, "timeout", 30*time.Second, "overall validation timeout")
	validateCmd.Flags().Int64Var(&maxBytes, "max-bytes", 10*1024*1024, "max submission bytes to read")
	validateCmd.Flags().IntVar(&minChars, "min-chars", 100, "minimum body length in characters")
	validateCmd.Flags().BoolVar(&noCache, "no-cache", false, "disable result cache (force fresh validation)")
	validateCmd.Flags().StringVar(&cacheDir, "cache-dir", "", "persist results to this directory across runs")
	validateCmd.Flags().BoolVar(&noFooter, "no-footer", false, "disable footer in Markdown reports")
	validateCmd.Flags().BoolVar(&strict, "strict", false, "exit non-zero when the submission is not approved")
}

func runValidate(cmd *cobra.Command, args []string) error {
	path := args[0]
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if verbose {
		fmt.Fprintf(os.Stderr, "Validating: %s\n", path)
		fmt.Fprintf(os.Stderr, "Cache: %v\n", !noCache)
		fmt.Fprintln(os.Stderr)
	}

	cfg := buildConfig()

	p, err := pipeline.NewPipeline(cfg)
	if err != nil {
		return err
	}

	report, err := p.ValidateFile(ctx, path, bioregion)
	if err != nil {
		return err
	}

	if err := p.RenderReport(report, outJSON, outMD, verbose); err != nil {
		return err
	}

	if strict && !report.Result.IsApproved {
		return fmt.Errorf("submission not approved")
	}
	return nil
}

// buildConfig assembles the configuration from defaults and flags
func buildConfig() *model.Config {
	cfg := model.DefaultConfig()
	cfg.Ingress.MaxBodyBytes = maxBytes
	cfg.Ingress.MinChars = minChars
	cfg.Cache.Enabled = !noCache
	cfg.Cache.Dir = cacheDir
	cfg.LexiconPath = lexiconPath
	cfg.Output.Verbose = verbose
	cfg.Output.IncludeFooter = !noFooter
	return cfg
}
