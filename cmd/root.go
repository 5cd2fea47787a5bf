// =============================================================================
// Usage Translator - Root Command
// =============================================================================
//
// This file defines the root command for the Cobra CLI. The root command
// itself performs the translation; 'version' is attached to it.
//
// COBRA CLI STRUCTURE:
//   rootCmd (usagetranslator <csv-file> <mapping-file>)
//   └── versionCmd (usagetranslator version)
//
// CONFIGURATION:
//   The root command is responsible for:
//   1. Setting up global flags (--config-dir, --verbose)
//   2. Loading appsettings*.json, .env and environment overrides
//   3. Setting up logging
//
// =============================================================================

package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

// =============================================================================
// GLOBAL VARIABLES
// =============================================================================

// configDir holds the directory searched for appsettings*.json and .env.
var configDir string

// verbose enables debug logging when set to true.
var verbose bool

// =============================================================================
// ROOT COMMAND DEFINITION
// =============================================================================

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use: "usagetranslator <path-to-csv-file> <path-to-mapping-json-file>",

	Short: "Usage Translator - Convert a usage report into two SQL INSERT statements",

	Long: `Usage Translator converts a partner usage report (CSV) into two SQL INSERT
statements using a part-number to product mapping (JSON).

Outputs (in the output directory):
  insert-chargeable.sql  one chargeable row per accepted report row
  insert-domains.sql     one row per distinct domain
  log-errors.txt         one line per skipped report row
  log-success.txt        running item count totals per product

Partners listed in ExcludePartnerIds (appsettings.json) are dropped silently.
Nothing is written when the run fails.

Example Usage:
  usagetranslator Sample_Report.csv typemap.json
  usagetranslator Sample_Report.csv typemap.json --output-dir ./out --xlsx
  usagetranslator Sample_Report.csv typemap.json --dry-run -v`,

	// Flags are parsed by Cobra; positional arguments are checked in RunE so
	// that "help" can be given as an argument.
	Args: cobra.ArbitraryArgs,

	SilenceUsage:  true,
	SilenceErrors: true,

	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 || strings.EqualFold(args[0], "help") {
			return cmd.Help()
		}

		if len(args) != 2 {
			return fmt.Errorf("expected 2 arguments (csv file, mapping file), got %d", len(args))
		}

		opts := flagOptions
		opts.CSVPath = args[0]
		opts.MappingPath = args[1]
		opts.ConfigDir = configDir
		opts.Verbose = verbose

		return runTranslate(opts, cmd.OutOrStdout())
	},
}

// =============================================================================
// EXECUTE FUNCTION
// =============================================================================

// Execute runs the root command. This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// =============================================================================
// INITIALIZATION
// =============================================================================

// init sets up the global flags.
func init() {
	// ==========================================================================
	// PERSISTENT FLAGS
	// ==========================================================================

	// --config-dir flag: Where appsettings.json, appsettings.<env>.json and
	// .env are looked up. All of them are optional.
	rootCmd.PersistentFlags().StringVar(
		&configDir,
		"config-dir",
		".",
		"Directory holding appsettings.json and .env",
	)

	// --verbose flag: Enables debug logging.
	rootCmd.PersistentFlags().BoolVarP(
		&verbose,
		"verbose",
		"v",
		false,
		"Enable debug logging (one entry per skipped row)",
	)
}
