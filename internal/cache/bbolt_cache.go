package cache

import (
	"encoding/json"
	"fmt"
	"time"

	"go.etcd.io/bbolt"

	"cgol/internal/engine"
)

var resultsBucket = []byte("GameResults")

// BoltCache is the reference ResultCache implementation: a single bbolt
// file, one bucket keyed by word, values JSON-encoded GameResults.
type BoltCache struct {
	db *bbolt.DB
}

// NewBoltCache opens (creating if absent) the bbolt file at path and
// ensures the results bucket exists.
func NewBoltCache(path string) (*BoltCache, error) {
	db, err := bbolt.Open(path, 0600, &bbolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("failed to open result cache: %w", err)
	}

	err = db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(resultsBucket)
		return err
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create result bucket: %w", err)
	}

	return &BoltCache{db: db}, nil
}

// Get implements ResultCache.
func (c *BoltCache) Get(word string) (engine.GameResult, bool, error) {
	var result engine.GameResult
	var found bool

	err := c.db.View(func(tx *bbolt.Tx) error {
		b := tx.Bucket(resultsBucket)
		v := b.Get([]byte(word))
		if v == nil {
			return nil
		}
		found = true
		return json.Unmarshal(v, &result)
	})
	if err != nil {
		return engine.GameResult{}, false, fmt.Errorf("result cache get failed: %w", err)
	}
	return result, found, nil
}

// Put implements ResultCache. Insert-if-absent: if word is already present,
// the existing entry is left untouched and Put returns nil.
func (c *BoltCache) Put(word string, result engine.GameResult) error {
	return c.db.Update(func(tx *bbolt.Tx) error {
		b := tx.Bucket(resultsBucket)
		if b.Get([]byte(word)) != nil {
			return nil
		}
		data, err := json.Marshal(result)
		if err != nil {
			return fmt.Errorf("failed to marshal result: %w", err)
		}
		return b.Put([]byte(word), data)
	})
}

// Close implements ResultCache.
func (c *BoltCache) Close() error {
	return c.db.Close()
}

// OpenReadOnly opens the bbolt file at path in read-only mode. bbolt takes a
// shared file lock for this, so the open fails after a one-second wait while
// another process (a running server) holds the file open for writing, and
// while the returned handle is open no other process can open the file for
// writing. Returns an error if the file doesn't exist yet; a file without
// the results bucket opens fine and All reports it as empty.
func OpenReadOnly(path string) (*BoltCache, error) {
	db, err := bbolt.Open(path, 0600, &bbolt.Options{ReadOnly: true, Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("failed to open result cache read-only: %w", err)
	}
	return &BoltCache{db: db}, nil
}

// All returns every word/result pair currently in the cache as a map keyed
// by word (a map, so the pairs carry no order). Each call runs its own read
// transaction and is safe to repeat against a read-only handle.
func (c *BoltCache) All() (map[string]engine.GameResult, error) {
	entries := make(map[string]engine.GameResult)
	err := c.db.View(func(tx *bbolt.Tx) error {
		b := tx.Bucket(resultsBucket)
		if b == nil {
			return nil
		}
		return b.ForEach(func(k, v []byte) error {
			var result engine.GameResult
			if err := json.Unmarshal(v, &result); err != nil {
				return err
			}
			entries[string(k)] = result
			return nil
		})
	})
	if err != nil {
		return nil, fmt.Errorf("result cache scan failed: %w", err)
	}
	return entries, nil
}
