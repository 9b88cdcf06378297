package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"pkg.jsn.cam/surveysynth/internal/archive"
)

var errArchiveRequired = errors.New("--archive (or archive in --config) is required")

// resolveArchive returns the archive path from --archive, else from the config file
func (o *options) resolveArchive(cmd *cobra.Command) (string, error) {
	if cmd.Flags().Changed("archive") {
		return o.archive, nil
	}
	if o.configPath != "" {
		cfg, err := LoadConfig(o.configPath, DefaultConfig())
		if err != nil {
			return "", err
		}
		if cfg.Archive != "" {
			return cfg.Archive, nil
		}
	}
	if o.archive == "" {
		return "", errArchiveRequired
	}
	return o.archive, nil
}

func newHistoryCmd(o *options) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history [run-id]",
		Short: "List archived runs, or show one run",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := o.resolveArchive(cmd)
			if err != nil {
				return err
			}

			store, err := archive.OpenBoltReadOnly(path)
			if err != nil {
				return err
			}
			defer store.Close()

			if len(args) == 1 {
				run, err := store.Get(args[0])
				if err != nil {
					return err
				}
				printRun(cmd.OutOrStdout(), run)
				return nil
			}

			runs, err := store.List()
			if err != nil {
				return err
			}
			if limit > 0 && len(runs) > limit {
				runs = runs[:limit]
			}
			printRuns(cmd.OutOrStdout(), runs)
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 0, "Show at most this many runs (0 for all)")

	return cmd
}

func printRuns(w io.Writer, runs []*archive.Run) {
	if len(runs) == 0 {
		fmt.Fprintln(w, "No runs archived")
		return
	}

	fmt.Fprintf(w, "%-36s %-20s %8s %10s %s\n", "RUN ID", "SEED", "RECORDS", "SIZE", "CREATED")
	fmt.Fprintln(w, strings.Repeat("─", 96))
	for _, run := range runs {
		fmt.Fprintf(w, "%-36s %-20d %8d %10s %s\n",
			run.ID,
			run.Seed,
			run.Records,
			humanize.Bytes(totalBytes(run)),
			humanize.Time(run.CreatedAt))
	}
}

func printRun(w io.Writer, run *archive.Run) {
	fmt.Fprintf(w, "Run Details:\n")
	fmt.Fprintf(w, "  ID:       %s\n", run.ID)
	fmt.Fprintf(w, "  Seed:     %d\n", run.Seed)
	fmt.Fprintf(w, "  Records:  %d\n", run.Records)
	fmt.Fprintf(w, "  Created:  %s (%s)\n", run.CreatedAt.Format("2006-01-02 15:04:05"), humanize.Time(run.CreatedAt))

	if len(run.Outputs) > 0 {
		fmt.Fprintf(w, "\nOutputs:\n")
		for _, out := range run.Outputs {
			fmt.Fprintf(w, "  %-5s %-10s %s\n", out.Format, humanize.Bytes(uint64(out.Bytes)), out.Path)
		}
	}
	fmt.Fprintf(w, "\nReproduce with: surveysynth --seed %d --count %d\n", run.Seed, run.Records)
}

func totalBytes(run *archive.Run) uint64 {
	var n int64
	for _, out := range run.Outputs {
		n += out.Bytes
	}
	return uint64(n)
}
