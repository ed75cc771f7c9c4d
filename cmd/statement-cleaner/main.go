package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/example/statement-cleaner/internal/cleaner"
	"github.com/example/statement-cleaner/internal/config"
	"github.com/example/statement-cleaner/internal/logging"
	"github.com/example/statement-cleaner/pkg/statement"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var (
	configPath    string
	filterBlanks  bool
	sortOrder     string
	validateDates bool
	inPlace       bool
	verbose       bool
)

var rootCmd = &cobra.Command{
	Use:   "statement-cleaner <input> [<output>]",
	Short: "Normalize bank statement CSV exports",
	Long: `Statement Cleaner rewrites a bank statement CSV export into a clean,
sortable form: it finds the header row anywhere in the file, keeps the
Date, Description, Amount and Ref.# columns in that order, and converts
MM/DD/YYYY dates to YYYY-MM-DD.

With no output path the cleaned file is written next to the input with a
"-cleaned" suffix, or over the input itself with --in-place.`,
	Args:          cobra.RangeArgs(1, 2),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(configPath)
		if err != nil {
			return err
		}
		applyFlagOverrides(cmd, cfg)
		if err := cfg.Validate(); err != nil {
			return err
		}

		inputPath := args[0]
		outputPath := ""
		if len(args) > 1 {
			outputPath = args[1]
		}

		c := cleaner.New(cfg, logging.New(cfg.Verbose))
		if err := c.Run(inputPath, c.OutputPath(inputPath, outputPath)); err != nil {
			if errors.Is(err, statement.ErrMissingRequiredColumns) {
				return fmt.Errorf("%s is not a valid bank statement CSV file", inputPath)
			}
			return err
		}
		return nil
	},
}

func init() {
	rootCmd.Flags().StringVar(&configPath, "config", "", "path to a TOML config file")
	rootCmd.Flags().BoolVar(&filterBlanks, "filter-blanks", false, "drop rows whose key columns are all empty")
	rootCmd.Flags().StringVar(&sortOrder, "sort", "descending", `row ordering: "descending" or "input"`)
	rootCmd.Flags().BoolVar(&validateDates, "validate-dates", false, "reject dates that match MM/DD/YYYY but are not real calendar dates")
	rootCmd.Flags().BoolVar(&inPlace, "in-place", false, "rewrite the input file when no output path is given")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}

// applyFlagOverrides lets explicitly set flags win over config file values.
func applyFlagOverrides(cmd *cobra.Command, cfg *config.Config) {
	flags := cmd.Flags()
	if flags.Changed("filter-blanks") {
		cfg.FilterBlanks = filterBlanks
	}
	if flags.Changed("sort") {
		cfg.Sort = sortOrder
	}
	if flags.Changed("validate-dates") {
		cfg.ValidateDates = validateDates
	}
	if flags.Changed("in-place") {
		cfg.InPlace = inPlace
	}
	if flags.Changed("verbose") {
		cfg.Verbose = verbose
	}
}
