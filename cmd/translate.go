// =============================================================================
// Usage Translator - Translate Command
// =============================================================================
//
// This file holds the translation run behind the root command. It
// orchestrates loading, the single translation pass and the output files.
//
// FLAGS:
//   --output-dir   : Directory for the output files (overrides OutputDir)
//   --usage-table  : YAML usage table (overrides UsageTable)
//   --dry-run      : Run the translation and print the summary, write nothing
//   --xlsx         : Also write usage-audit.xlsx
//
// PROCESSING PIPELINE:
//   1. Check the input files exist
//   2. Load settings and set up logging
//   3. Load the mapping and the usage table
//   4. Translate the usage report
//   5. Write all outputs (only after the pass succeeded)
//   6. Print summary
//
// =============================================================================

package cmd

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/ginjaninja78/usagetranslator/internal/config"
	"github.com/ginjaninja78/usagetranslator/internal/logging"
	"github.com/ginjaninja78/usagetranslator/internal/mapping"
	"github.com/ginjaninja78/usagetranslator/internal/pipeline"
	"github.com/ginjaninja78/usagetranslator/internal/report"
	"github.com/ginjaninja78/usagetranslator/internal/validation"
	"github.com/ginjaninja78/usagetranslator/pkg/utils"
)

// =============================================================================
// OUTPUT FILE NAMES
// =============================================================================

const (
	ChargeableFile = "insert-chargeable.sql"
	DomainsFile    = "insert-domains.sql"
	ErrorLogFile   = "log-errors.txt"
	SuccessLogFile = "log-success.txt"
	WorkbookFile   = "usage-audit.xlsx"
)

// =============================================================================
// COMMAND FLAGS
// =============================================================================

// translateOptions collects everything a run needs from the command line.
type translateOptions struct {
	CSVPath     string
	MappingPath string
	ConfigDir   string

	// OutputDir and UsageTable override the settings when non-empty.
	OutputDir  string
	UsageTable string

	Verbose  bool
	DryRun   bool
	Workbook bool
}

// flagOptions receives the local flags of the root command.
var flagOptions translateOptions

// init registers the translation flags with the root command.
func init() {
	rootCmd.Flags().StringVarP(
		&flagOptions.OutputDir,
		"output-dir",
		"o",
		"",
		"Directory for the output files (default from OutputDir setting)",
	)

	rootCmd.Flags().StringVar(
		&flagOptions.UsageTable,
		"usage-table",
		"",
		"YAML file with part number divisors (default: built-in table)",
	)

	rootCmd.Flags().BoolVar(
		&flagOptions.DryRun,
		"dry-run",
		false,
		"Run the translation without writing output files",
	)

	rootCmd.Flags().BoolVar(
		&flagOptions.Workbook,
		"xlsx",
		false,
		"Also write "+WorkbookFile+" with running totals and skipped rows",
	)
}

// =============================================================================
// MAIN PROCESSING FUNCTION
// =============================================================================

// runTranslate performs one translation run and prints progress to out.
func runTranslate(opts translateOptions, out io.Writer) error {
	startTime := time.Now()

	fmt.Fprintln(out, "Working...")

	// =========================================================================
	// STEP 1: CHECK INPUT FILES
	// =========================================================================

	if err := utils.RequireFile(opts.CSVPath); err != nil {
		return err
	}
	if err := utils.RequireFile(opts.MappingPath); err != nil {
		return err
	}

	// =========================================================================
	// STEP 2: LOAD SETTINGS AND SET UP LOGGING
	// =========================================================================

	settings, err := config.Load(opts.ConfigDir)
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}

	if opts.OutputDir != "" {
		settings.OutputDir = opts.OutputDir
	}
	if opts.UsageTable != "" {
		settings.UsageTable = opts.UsageTable
	}
	if opts.Verbose {
		settings.Logging.Level = "debug"
	}

	logger, err := logging.New(settings.Logging)
	if err != nil {
		return fmt.Errorf("failed to set up logging: %w", err)
	}
	defer logger.Sync() //nolint:errcheck

	exclusions := validation.NewExclusionSet(settings.ExcludePartnerIDs)

	logger.Debug("settings loaded",
		zap.String("environment", config.Environment()),
		zap.Int("excludedPartners", exclusions.Len()),
		zap.Ints("excludePartnerIds", settings.ExcludePartnerIDs),
		zap.String("outputDir", settings.OutputDir),
	)

	// =========================================================================
	// STEP 3: LOAD MAPPING AND USAGE TABLE
	// =========================================================================

	productMapping, err := mapping.Load(opts.MappingPath)
	if err != nil {
		return err
	}

	usage, err := config.LoadUsageTable(settings.UsageTable)
	if err != nil {
		return err
	}

	logger.Debug("mapping loaded",
		zap.Int("partNumbers", len(productMapping)),
		zap.Int("divisors", usage.Len()),
	)

	// =========================================================================
	// STEP 4: TRANSLATE
	// =========================================================================

	file, err := os.Open(opts.CSVPath)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", opts.CSVPath, err)
	}
	defer file.Close()

	translator := pipeline.New(pipeline.Options{
		Mapping:    productMapping,
		Exclusions: exclusions,
		Usage:      usage,
		Logger:     logger,
	})

	result, err := translator.Run(file)
	if err != nil {
		logger.Error("translation failed", zap.String("file", opts.CSVPath), zap.Error(err))
		return err
	}

	// =========================================================================
	// STEP 5: WRITE OUTPUTS
	// =========================================================================

	files, err := outputFiles(result, opts.Workbook)
	if err != nil {
		return err
	}

	fm := utils.NewFileManager(settings.OutputDir)

	if opts.DryRun {
		fmt.Fprintln(out, "Dry run: no files written.")
	} else {
		if _, err := fm.WriteAll(files); err != nil {
			return err
		}

		fmt.Fprintf(out, "Insert statements generated. Please see files %s and %s.\n",
			fm.Path(ChargeableFile), fm.Path(DomainsFile))
		fmt.Fprintf(out, "Please find error messages in %s\n", fm.Path(ErrorLogFile))
		fmt.Fprintf(out, "Please find success messages in %s\n", fm.Path(SuccessLogFile))
		if opts.Workbook {
			fmt.Fprintf(out, "Please find the audit workbook in %s\n", fm.Path(WorkbookFile))
		}
	}

	// =========================================================================
	// STEP 6: PRINT SUMMARY
	// =========================================================================

	printSummary(out, result.Stats, time.Since(startTime))

	return nil
}

// =============================================================================
// HELPER FUNCTIONS
// =============================================================================

// outputFiles renders the output set of a successful run.
func outputFiles(result *pipeline.Result, withWorkbook bool) ([]utils.OutputFile, error) {
	files := []utils.OutputFile{
		{Name: ChargeableFile, Data: []byte(result.ChargeableSQL)},
		{Name: DomainsFile, Data: []byte(result.DomainsSQL)},
		{Name: ErrorLogFile, Data: []byte(report.JoinLines(result.ErrorLog))},
		{Name: SuccessLogFile, Data: []byte(report.JoinLines(result.SuccessLog()))},
	}

	if withWorkbook {
		var buf bytes.Buffer
		if err := report.WriteWorkbook(&buf, result.RunningTotals, result.Skipped); err != nil {
			return nil, err
		}
		files = append(files, utils.OutputFile{Name: WorkbookFile, Data: buf.Bytes()})
	}

	return files, nil
}

// printSummary prints the row counts of a run.
func printSummary(out io.Writer, stats pipeline.Stats, elapsed time.Duration) {
	fmt.Fprintln(out, "\n=== Translation Complete ===")
	fmt.Fprintf(out, "Rows read:       %d\n", stats.RowsRead)
	fmt.Fprintf(out, "Accepted:        %d\n", stats.Accepted)
	fmt.Fprintf(out, "Skipped:         %d\n", stats.Skipped)
	fmt.Fprintf(out, "Excluded:        %d\n", stats.Excluded)
	fmt.Fprintf(out, "Domains:         %d\n", stats.Domains)
	fmt.Fprintf(out, "Time elapsed:    %s\n", elapsed)
}
