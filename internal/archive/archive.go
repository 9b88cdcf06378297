// Package archive records a manifest of every generation run.
package archive

import (
	"cmp"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/google/uuid"
)

var (
	ErrRunNotFound = errors.New("run not found")
	ErrInvalidRun  = errors.New("invalid run")

	ErrArchiveNotFound = errors.New("archive not found")
)

// runsBucket holds one JSON-encoded Run per run ID
var runsBucket = []byte("runs")

// Output is one file a run produced
type Output struct {
	Format string `json:"format"`
	Path   string `json:"path"`
	Bytes  int64  `json:"bytes"`
}

// Run is the manifest of one generation run
type Run struct {
	ID        string    `json:"id"`
	Seed      uint64    `json:"seed"`
	Records   int       `json:"records"`
	Outputs   []Output  `json:"outputs"`
	CreatedAt time.Time `json:"created_at"`
}

// NewRun creates a manifest with a fresh ID
func NewRun(seed uint64, records int) *Run {
	return &Run{
		ID:        uuid.New().String(),
		Seed:      seed,
		Records:   records,
		CreatedAt: time.Now().UTC(),
	}
}

// Store persists run manifests
type Store interface {
	// Save inserts or replaces run
	Save(run *Run) error

	// Get returns the run with id, or ErrRunNotFound
	Get(id string) (*Run, error)

	// List returns every run, newest first
	List() ([]*Run, error)

	Close() error
}

func encodeRun(run *Run) ([]byte, error) {
	if run == nil || run.ID == "" {
		return nil, fmt.Errorf("%w: missing ID", ErrInvalidRun)
	}
	data, err := json.Marshal(run)
	if err != nil {
		return nil, fmt.Errorf("failed to encode run %s: %w", run.ID, err)
	}
	return data, nil
}

func decodeRun(data []byte) (*Run, error) {
	var run Run
	if err := json.Unmarshal(data, &run); err != nil {
		return nil, fmt.Errorf("failed to decode run: %w", err)
	}
	return &run, nil
}

// sortNewestFirst orders runs by creation time, newest first, ties by ID
func sortNewestFirst(runs []*Run) {
	slices.SortFunc(runs, func(a, b *Run) int {
		if c := b.CreatedAt.Compare(a.CreatedAt); c != 0 {
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	})
}
