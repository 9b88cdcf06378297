package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// options carries flag values and shared state for one command tree
type options struct {
	configPath string
	count      int
	seed       uint64
	output     string
	xlsx       string
	archive    string
	progress   bool
	verbose    bool

	// logger is built in PersistentPreRunE unless already set
	logger *zap.Logger
}

func newRootCmd(o *options) *cobra.Command {
	root := &cobra.Command{
		Use:   "surveysynth",
		Short: "Generate a synthetic AI-in-education attitude survey dataset",
		Long: `surveysynth writes a synthetic survey dataset as CSV.

Each respondent's answers are drawn from fixed option lists, scale answers get
Gaussian noise, confidence is correlated with familiarity, and role-specific
rules override some answers. The same --seed always produces the same file.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if o.logger != nil {
				return nil
			}

			config := zap.NewProductionConfig()
			config.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
			if o.verbose {
				config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
			}
			logger, err := config.Build()
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			o.logger = logger
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if o.logger != nil {
				_ = o.logger.Sync()
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, o)
		},
	}

	flags := root.Flags()
	flags.IntVarP(&o.count, "count", "n", DefaultConfig().Count, "Number of respondents to generate")
	flags.Uint64Var(&o.seed, "seed", 0, "Random seed (random when unset)")
	flags.StringVarP(&o.output, "output", "o", DefaultOutput, "CSV output path")
	flags.StringVar(&o.xlsx, "xlsx", "", "Also write an XLSX workbook to this path")
	flags.BoolVar(&o.progress, "progress", false, "Show a progress bar on stderr")

	root.PersistentFlags().StringVarP(&o.configPath, "config", "c", "", "YAML file with run settings")
	root.PersistentFlags().StringVar(&o.archive, "archive", "", "Run archive database (bbolt)")
	root.PersistentFlags().BoolVarP(&o.verbose, "verbose", "v", false, "Enable debug logging")

	root.AddCommand(newHistoryCmd(o))

	return root
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := newRootCmd(&options{}).ExecuteContext(ctx)
	stop()

	if err != nil {
		os.Exit(1)
	}
}
