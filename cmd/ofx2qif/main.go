package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/yurifrl/ofx2qif/pkg/config"
	"github.com/yurifrl/ofx2qif/pkg/convert"
	"github.com/yurifrl/ofx2qif/pkg/service"
)

const version = "1.01"

var (
	cfgFile    string
	inputPath  string
	outputPath string
)

var rootCmd = &cobra.Command{
	Use:     "ofx2qif [flags] [directory]",
	Short:   "Convert QFX/OFX bank statements to QIF",
	Version: version,
	Args:    cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Build(cfgFile, cmd.Flags())
		if err != nil {
			return err
		}
		logger := newLogger(cmd.ErrOrStderr(), cfg.Verbosity)
		opts := convert.Options{IncludeMemos: cfg.IncludeMemos}
		processor := service.NewProcessor(cfg, logger)

		if len(args) == 1 {
			summaries, err := processor.ProcessDirectory(args[0], opts)
			if err != nil {
				return err
			}
			for _, s := range summaries {
				report(cmd.OutOrStdout(), cmd.ErrOrStderr(), cfg.Verbosity, s)
			}
			return nil
		}

		if inputPath == "" {
			_ = cmd.Usage()
		}
		s, err := processor.ProcessFile(inputPath, outputPath, opts)
		if err != nil {
			return err
		}
		report(cmd.OutOrStdout(), cmd.ErrOrStderr(), cfg.Verbosity, s)
		return nil
	},
}

func report(stdout, stderr io.Writer, verbosity int, s service.Summary) {
	if verbosity >= 1 {
		fmt.Fprintf(stdout, "Input File            : %s\n", s.Input)
		fmt.Fprintf(stdout, "Output File           : %s\n", s.Output)
		fmt.Fprintf(stdout, "Number of Transactions: %d\n", s.Transactions)
	}
	if s.MemoSuppressed {
		fmt.Fprintln(stderr, "Memos appear in input file but are excluded from output.")
		fmt.Fprintln(stderr, "Use -m to include memos in output.")
	}
}

func newLogger(w io.Writer, verbosity int) *log.Logger {
	level := log.InfoLevel
	switch {
	case verbosity <= 0:
		level = log.WarnLevel
	case verbosity >= 2:
		level = log.DebugLevel
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "ofx2qif",
		Level:           level,
	})
}

// exitCode keeps the historical statuses: 2 missing input name, 3 output
// name derivation, 4 read failure, 5 output open failure.
func exitCode(err error) int {
	switch {
	case errors.Is(err, service.ErrNoInput):
		return 2
	case errors.Is(err, service.ErrOutputName):
		return 3
	case errors.Is(err, service.ErrRead):
		return 4
	case errors.Is(err, service.ErrCreate):
		return 5
	}
	return 1
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "Config file (default is config.yaml)")
	rootCmd.PersistentFlags().BoolP("memo", "m", false, "Include memos")
	rootCmd.PersistentFlags().CountP("quiet", "q", "Quiet running (or decrease verbosity)")
	rootCmd.PersistentFlags().CountP("verbose", "v", "Increase verbosity")
	rootCmd.PersistentFlags().String("output-dir", "", "Directory for derived output files")
	rootCmd.PersistentFlags().Int("workers", 4, "Concurrent conversions for apply")

	// Flags of the converter itself
	rootCmd.Flags().StringVarP(&inputPath, "input", "i", "", "Input .qfx file; extension added if not provided")
	rootCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output .qif file; derived from the input if not provided")

	rootCmd.SilenceUsage = true
	rootCmd.SilenceErrors = true

	rootCmd.AddCommand(planCmd)
	rootCmd.AddCommand(applyCmd)
	rootCmd.AddCommand(checkCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitCode(err))
	}
}
