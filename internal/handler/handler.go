// Package handler implements the validate -> cache -> compute -> store
// request discipline described as RequestHandler in the specification.
package handler

import (
	"log"

	"cgol/internal/cache"
	"cgol/internal/engine"
)

// Handler validates a word, consults the cache, and falls back to a fresh
// engine on a miss. Each invocation of HandleWord gets its own engine —
// engines are never shared or reused across requests.
type Handler struct {
	store  cache.ResultCache
	params engine.Params
}

// New constructs a Handler bound to store, using params for any engine it
// constructs on a cache miss.
func New(store cache.ResultCache, params engine.Params) *Handler {
	return &Handler{store: store, params: params}
}

// HandleWord runs the full request discipline for word: validate, then
// cache-before-compute.
func (h *Handler) HandleWord(word string) (engine.GameResult, error) {
	if err := validate(word); err != nil {
		return engine.GameResult{}, err
	}

	if h.store != nil {
		if result, ok, err := h.store.Get(word); err != nil {
			log.Printf("cache get failed for %q, falling through to compute: %v", word, err)
		} else if ok {
			return result, nil
		}
	}

	runner := engine.NewRunner(h.params)
	result, err := runner.RunFromWord(word)
	if err != nil {
		if engErr, ok := err.(*engine.Error); ok && engErr.Kind == engine.ErrSeedTooLarge {
			return engine.GameResult{}, &Error{Kind: ErrSeedTooLarge, Message: engErr.Message}
		}
		return engine.GameResult{}, &Error{Kind: ErrEngineInternal, Message: err.Error()}
	}

	if h.store != nil {
		// A put failure must not mask a successful computation: the result
		// is still returned, the failure only logged (degraded mode).
		if err := h.store.Put(word, result); err != nil {
			log.Printf("cache put failed for %q, returning uncached result: %v", word, err)
		}
	}

	return result, nil
}

// validate applies the spec's checks in order, first failure wins. BadType
// (word is a string) is enforced by the transport layer's JSON binding,
// since a Go handler signature already guarantees a string argument here.
func validate(word string) error {
	if word == "" {
		return &Error{Kind: ErrEmptyWord, Message: "word must have at least one character"}
	}
	for i := 0; i < len(word); i++ {
		if word[i] > 0x7F {
			return &Error{Kind: ErrNonAscii, Message: "word must contain only ASCII characters"}
		}
	}
	return nil
}
