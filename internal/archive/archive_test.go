package archive

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// storeTestSuite runs the same checks against any Store implementation
func storeTestSuite(t *testing.T, newStore func(t *testing.T) Store) {
	t.Run("SaveAndGet", func(t *testing.T) {
		s := newStore(t)

		run := NewRun(42, 100)
		run.Outputs = []Output{{Format: "csv", Path: "synthetic_survey_data.csv", Bytes: 31337}}
		require.NoError(t, s.Save(run))

		got, err := s.Get(run.ID)
		require.NoError(t, err)
		assert.Equal(t, run.ID, got.ID)
		assert.Equal(t, uint64(42), got.Seed)
		assert.Equal(t, 100, got.Records)
		assert.Equal(t, run.Outputs, got.Outputs)
		assert.True(t, run.CreatedAt.Equal(got.CreatedAt))
	})

	t.Run("GetMissing", func(t *testing.T) {
		s := newStore(t)

		_, err := s.Get("nope")
		assert.ErrorIs(t, err, ErrRunNotFound)
	})

	t.Run("SaveRejectsMissingID", func(t *testing.T) {
		s := newStore(t)

		assert.ErrorIs(t, s.Save(&Run{}), ErrInvalidRun)
		assert.ErrorIs(t, s.Save(nil), ErrInvalidRun)
	})

	t.Run("SaveReplaces", func(t *testing.T) {
		s := newStore(t)

		run := NewRun(1, 10)
		require.NoError(t, s.Save(run))
		run.Records = 20
		require.NoError(t, s.Save(run))

		got, err := s.Get(run.ID)
		require.NoError(t, err)
		assert.Equal(t, 20, got.Records)

		runs, err := s.List()
		require.NoError(t, err)
		assert.Len(t, runs, 1)
	})

	t.Run("ListNewestFirst", func(t *testing.T) {
		s := newStore(t)

		base := time.Date(2026, 10, 1, 12, 0, 0, 0, time.UTC)
		var ids []string
		for i := 0; i < 3; i++ {
			run := NewRun(uint64(i), 5)
			run.CreatedAt = base.Add(time.Duration(i) * time.Hour)
			require.NoError(t, s.Save(run))
			ids = append(ids, run.ID)
		}

		runs, err := s.List()
		require.NoError(t, err)
		require.Len(t, runs, 3)
		assert.Equal(t, ids[2], runs[0].ID)
		assert.Equal(t, ids[1], runs[1].ID)
		assert.Equal(t, ids[0], runs[2].ID)
	})

	t.Run("ListEmpty", func(t *testing.T) {
		s := newStore(t)

		runs, err := s.List()
		require.NoError(t, err)
		assert.Empty(t, runs)
	})
}

func TestMemoryStore(t *testing.T) {
	storeTestSuite(t, func(t *testing.T) Store {
		s := NewMemoryStore()
		t.Cleanup(func() { s.Close() })
		return s
	})
}

func TestBoltStore(t *testing.T) {
	storeTestSuite(t, func(t *testing.T) Store {
		s, err := OpenBolt(filepath.Join(t.TempDir(), "runs.db"))
		require.NoError(t, err)
		t.Cleanup(func() { s.Close() })
		return s
	})
}

func TestBoltStore_Persists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "runs.db")

	s, err := OpenBolt(path)
	require.NoError(t, err)
	run := NewRun(7, 3)
	require.NoError(t, s.Save(run))
	require.NoError(t, s.Close())

	reopened, err := OpenBolt(path)
	require.NoError(t, err)
	defer reopened.Close()

	got, err := reopened.Get(run.ID)
	require.NoError(t, err)
	assert.Equal(t, uint64(7), got.Seed)
}

func TestNewRun_UniqueIDs(t *testing.T) {
	assert.NotEqual(t, NewRun(1, 1).ID, NewRun(1, 1).ID)
}

func TestOpenBoltReadOnly(t *testing.T) {
	path := filepath.Join(t.TempDir(), "runs.db")

	_, err := OpenBoltReadOnly(path)
	assert.ErrorIs(t, err, ErrArchiveNotFound)
	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr), "read-only open must not create the file")

	s, err := OpenBolt(path)
	require.NoError(t, err)
	run := NewRun(3, 2)
	require.NoError(t, s.Save(run))
	require.NoError(t, s.Close())

	ro, err := OpenBoltReadOnly(path)
	require.NoError(t, err)
	defer ro.Close()

	runs, err := ro.List()
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, run.ID, runs[0].ID)
	assert.Error(t, ro.Save(NewRun(4, 1)))
}
