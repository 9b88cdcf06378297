package archive

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	bolt "go.etcd.io/bbolt"
)

// BoltStore implements Store on a bbolt database file
type BoltStore struct {
	db *bolt.DB
}

// OpenBolt opens or creates the archive at path
func OpenBolt(path string) (*BoltStore, error) {
	db, err := bolt.Open(path, 0600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("failed to open archive %s: %w", path, err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(runsBucket)
		return err
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create runs bucket: %w", err)
	}

	return &BoltStore{db: db}, nil
}

// OpenBoltReadOnly opens an existing archive without creating or modifying it.
// A missing file is ErrArchiveNotFound.
func OpenBoltReadOnly(path string) (*BoltStore, error) {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrArchiveNotFound, path)
		}
		return nil, fmt.Errorf("failed to open archive %s: %w", path, err)
	}

	db, err := bolt.Open(path, 0600, &bolt.Options{Timeout: time.Second, ReadOnly: true})
	if err != nil {
		return nil, fmt.Errorf("failed to open archive %s: %w", path, err)
	}

	return &BoltStore{db: db}, nil
}

// Save stores run under its ID
func (b *BoltStore) Save(run *Run) error {
	data, err := encodeRun(run)
	if err != nil {
		return err
	}

	return b.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(runsBucket).Put([]byte(run.ID), data)
	})
}

// Get loads one run
func (b *BoltStore) Get(id string) (*Run, error) {
	var run *Run
	err := b.db.View(func(tx *bolt.Tx) error {
		bkt := tx.Bucket(runsBucket)
		if bkt == nil {
			return fmt.Errorf("%w: %s", ErrRunNotFound, id)
		}
		v := bkt.Get([]byte(id))
		if v == nil {
			return fmt.Errorf("%w: %s", ErrRunNotFound, id)
		}
		// v is only valid inside the transaction; decoding copies it
		var err error
		run, err = decodeRun(v)
		return err
	})
	return run, err
}

// List loads every run, newest first
func (b *BoltStore) List() ([]*Run, error) {
	var runs []*Run
	err := b.db.View(func(tx *bolt.Tx) error {
		bkt := tx.Bucket(runsBucket)
		if bkt == nil {
			return nil
		}
		return bkt.ForEach(func(k, v []byte) error {
			run, err := decodeRun(v)
			if err != nil {
				return fmt.Errorf("run %s: %w", k, err)
			}
			runs = append(runs, run)
			return nil
		})
	})
	if err != nil {
		return nil, err
	}

	sortNewestFirst(runs)
	return runs, nil
}

// Close closes the database
func (b *BoltStore) Close() error {
	return b.db.Close()
}
