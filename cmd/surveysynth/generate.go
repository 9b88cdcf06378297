package main

import (
	"fmt"
	"math/rand/v2"
	"os"
	"path/filepath"

	"github.com/dustin/go-humanize"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"pkg.jsn.cam/surveysynth/internal/archive"
	"pkg.jsn.cam/surveysynth/internal/export"
	"pkg.jsn.cam/surveysynth/internal/survey"
)

// resolveConfig layers defaults, the config file and explicitly set flags
func (o *options) resolveConfig(cmd *cobra.Command) (Config, error) {
	cfg := DefaultConfig()

	if o.configPath != "" {
		var err error
		if cfg, err = LoadConfig(o.configPath, cfg); err != nil {
			return cfg, err
		}
	}

	flags := cmd.Flags()
	if flags.Changed("count") {
		cfg.Count = o.count
	}
	if flags.Changed("seed") {
		seed := o.seed
		cfg.Seed = &seed
	}
	if flags.Changed("output") {
		cfg.Output = o.output
	}
	if flags.Changed("xlsx") {
		cfg.XLSX = o.xlsx
	}
	if flags.Changed("archive") {
		cfg.Archive = o.archive
	}
	if flags.Changed("progress") {
		cfg.Progress = o.progress
	}

	if cfg.Seed == nil {
		seed := rand.Uint64()
		cfg.Seed = &seed
	}

	return cfg, cfg.Validate()
}

func runGenerate(cmd *cobra.Command, o *options) error {
	cfg, err := o.resolveConfig(cmd)
	if err != nil {
		return err
	}

	run := archive.NewRun(*cfg.Seed, cfg.Count)
	logger := o.logger.With(zap.String("run_id", run.ID))
	logger.Info("Starting run",
		zap.Uint64("seed", run.Seed),
		zap.Int("records", cfg.Count),
		zap.String("output", cfg.Output))

	var bar *progressbar.ProgressBar
	var onRecord func(int)
	if cfg.Progress {
		bar = progressbar.NewOptions(cfg.Count,
			progressbar.OptionSetWriter(cmd.ErrOrStderr()),
			progressbar.OptionSetDescription("generating"),
			progressbar.OptionClearOnFinish(),
		)
		onRecord = func(int) { _ = bar.Add(1) }
	}

	synth := survey.New(survey.Config{
		Seed:     run.Seed,
		Logger:   logger,
		OnRecord: onRecord,
	})

	data, err := synth.Generate(cmd.Context(), cfg.Count)
	if bar != nil {
		_ = bar.Finish()
	}
	if err != nil {
		return fmt.Errorf("generation failed: %w", err)
	}

	targets := []export.Target{{Format: export.FormatCSV, Path: cfg.Output}}
	if cfg.XLSX != "" {
		targets = append(targets, export.Target{Format: export.FormatXLSX, Path: cfg.XLSX})
	}

	results, err := export.NewExporter(logger).Export(cmd.Context(), data, targets)
	if err != nil {
		return err
	}

	for _, res := range results {
		run.Outputs = append(run.Outputs, archive.Output{
			Format: string(res.Format),
			Path:   res.Path,
			Bytes:  res.Bytes,
		})
	}

	if err := saveRun(cfg.Archive, run); err != nil {
		return err
	}
	logger.Debug("Run archived",
		zap.String("archive", cfg.Archive),
		zap.Any("outputs", run.Outputs))

	logger.Info("Run complete", zap.Int("files", len(results)))

	fmt.Fprintf(cmd.OutOrStdout(),
		"Synthetic survey data with noise, strong correlation, and group differences generated and saved to '%s' (%d records, %s, seed %d)\n",
		cfg.Output, len(data), humanize.Bytes(uint64(results[0].Bytes)), run.Seed)

	return nil
}

// openRunStore opens the bbolt archive at path, or an in-memory store that
// lives only for this run when path is empty
func openRunStore(path string) (archive.Store, error) {
	if path == "" {
		return archive.NewMemoryStore(), nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create archive directory: %w", err)
	}
	return archive.OpenBolt(path)
}

func saveRun(path string, run *archive.Run) error {
	store, err := openRunStore(path)
	if err != nil {
		return err
	}
	defer store.Close()

	if err := store.Save(run); err != nil {
		return fmt.Errorf("failed to archive run %s: %w", run.ID, err)
	}
	return nil
}
