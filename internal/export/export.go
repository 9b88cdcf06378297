// Package export serializes survey datasets to delimited and spreadsheet files.
package export

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"pkg.jsn.cam/surveysynth/internal/survey"
)

// Format is an output file format
type Format string

const (
	FormatCSV  Format = "csv"
	FormatXLSX Format = "xlsx"
)

// ParseFormat resolves a format name, case-insensitively
func ParseFormat(name string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(name))); f {
	case FormatCSV, FormatXLSX:
		return f, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, name)
	}
}

// Write serializes data to w in format f
func Write(w io.Writer, f Format, data survey.Dataset) error {
	switch f {
	case FormatCSV:
		return WriteCSV(w, data)
	case FormatXLSX:
		return WriteXLSX(w, data)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, f)
	}
}

// Target is one file to produce
type Target struct {
	Format Format
	Path   string
}

// Result describes a written file
type Result struct {
	Target
	Bytes int64
}

// Exporter writes a finished dataset to one or more files
type Exporter struct {
	logger *zap.Logger
}

// NewExporter creates an exporter; a nil logger disables logging
func NewExporter(logger *zap.Logger) *Exporter {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Exporter{logger: logger.Named("export")}
}

// Export writes every target concurrently. The dataset must not change while
// Export runs. Results are returned in target order; the first failure aborts
// the remaining writes. Targets must not share a path.
func (e *Exporter) Export(ctx context.Context, data survey.Dataset, targets []Target) ([]Result, error) {
	if err := checkDistinct(targets); err != nil {
		return nil, err
	}

	results := make([]Result, len(targets))
	g, ctx := errgroup.WithContext(ctx)

	for i, t := range targets {
		g.Go(func() error {
			n, err := e.writeFile(ctx, t, data)
			if err != nil {
				return fmt.Errorf("failed to write %s: %w", t.Path, err)
			}
			results[i] = Result{Target: t, Bytes: n}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func checkDistinct(targets []Target) error {
	seen := make(map[string]bool, len(targets))
	for _, t := range targets {
		abs, err := filepath.Abs(t.Path)
		if err != nil {
			return fmt.Errorf("failed to resolve %s: %w", t.Path, err)
		}
		if seen[abs] {
			return fmt.Errorf("%w: %s", ErrDuplicateTarget, t.Path)
		}
		seen[abs] = true
	}
	return nil
}

// writeFile writes to a temporary sibling and renames it into place, so a
// failed run never leaves a truncated file at the target path.
func (e *Exporter) writeFile(ctx context.Context, t Target, data survey.Dataset) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	dir := filepath.Dir(t.Path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return 0, err
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(t.Path)+".*")
	if err != nil {
		return 0, err
	}
	defer os.Remove(tmp.Name()) // no-op after a successful rename

	if err := Write(tmp, t.Format, data); err != nil {
		tmp.Close()
		return 0, err
	}
	if err := tmp.Close(); err != nil {
		return 0, err
	}

	if err := ctx.Err(); err != nil {
		return 0, err
	}
	if err := os.Chmod(tmp.Name(), 0644); err != nil {
		return 0, err
	}
	if err := os.Rename(tmp.Name(), t.Path); err != nil {
		return 0, err
	}

	info, err := os.Stat(t.Path)
	if err != nil {
		return 0, err
	}

	e.logger.Debug("Wrote dataset",
		zap.String("path", t.Path),
		zap.String("format", string(t.Format)),
		zap.Int("records", len(data)),
		zap.Int64("bytes", info.Size()))

	return info.Size(), nil
}
