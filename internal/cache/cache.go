// Package cache provides a persistent, write-once mapping from word to
// GameResult, backed by a single-file embedded database (bbolt), the same
// way the teacher's checkpoint store tracked "have we already processed
// this key" across restarts.
package cache

import "cgol/internal/engine"

// ResultCache is the read-through/write-through contract the request
// handler consults before invoking the simulation engine.
type ResultCache interface {
	// Get returns the stored result for word, or ok=false if absent. It
	// never returns an error for a missing key.
	Get(word string) (result engine.GameResult, ok bool, err error)

	// Put inserts result for word if absent. A second Put for the same
	// word is a silent no-op: the first write wins.
	Put(word string, result engine.GameResult) error

	// Close releases the underlying store.
	Close() error
}
