// Cinequiz - Movie Recommendation Quiz
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinequiz

package catalog

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/cinequiz/internal/metrics"
)

// State is the load state of a Holder.
type State int32

const (
	StatePending State = iota
	StateReady
	StateFailed
)

func (s State) String() string {
	switch s {
	case StatePending:
		return "pending"
	case StateReady:
		return "ready"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Status is a point-in-time view of the holder, served by the catalog endpoint.
type Status struct {
	State      string     `json:"state"`
	Source     string     `json:"source,omitempty"`
	Movies     int        `json:"movies"`
	Duplicates int        `json:"duplicates,omitempty"`
	Error      string     `json:"error,omitempty"`
	LoadedAt   *time.Time `json:"loaded_at,omitempty"`
}

// Holder owns the session catalog. It performs exactly one load.
type Holder struct {
	catalog atomic.Pointer[Catalog]
	state   atomic.Int32
	started atomic.Bool
	done    chan struct{}

	mu       sync.RWMutex
	source   string
	err      error
	loadedAt time.Time

	logger zerolog.Logger
}

// NewHolder creates a holder serving the empty catalog.
//
//nolint:gocritic // hugeParam: zerolog.Logger is designed to be passed by value
func NewHolder(logger zerolog.Logger) *Holder {
	h := &Holder{
		done:   make(chan struct{}),
		logger: logger.With().Str("component", "catalog").Logger(),
	}
	h.catalog.Store(Empty())
	return h
}

// Load fetches the catalog from src. Only the first call does any work;
// later calls return ErrAlreadyLoaded. On failure the holder keeps the
// empty catalog and reports StateFailed; the returned error wraps
// ErrLoadFailed.
func (h *Holder) Load(ctx context.Context, src Source) error {
	if !h.started.CompareAndSwap(false, true) {
		return ErrAlreadyLoaded
	}
	defer close(h.done)

	start := time.Now()
	h.mu.Lock()
	h.source = src.Name()
	h.mu.Unlock()

	movies, err := src.Fetch(ctx)
	var cat *Catalog
	if err == nil {
		cat, err = New(movies)
	}
	duration := time.Since(start)

	if err != nil {
		err = fmt.Errorf("%w: %s: %w", ErrLoadFailed, src.Name(), err)
		h.mu.Lock()
		h.err = err
		h.mu.Unlock()
		h.state.Store(int32(StateFailed))

		metrics.RecordCatalogLoad(src.Name(), 0, duration, err)
		h.logger.Error().Err(err).Str("source", src.Name()).Dur("duration", duration).Msg("Catalog load failed")
		return err
	}

	h.catalog.Store(cat)
	h.mu.Lock()
	h.loadedAt = time.Now()
	h.mu.Unlock()
	h.state.Store(int32(StateReady))

	metrics.RecordCatalogLoad(src.Name(), cat.Len(), duration, nil)
	event := h.logger.Info().
		Str("source", src.Name()).
		Int("movies", cat.Len()).
		Dur("duration", duration)
	if dup := cat.Duplicates(); dup > 0 {
		event = event.Int("duplicate_titles", dup)
	}
	event.Msg("Catalog loaded")
	return nil
}

// State returns the current load state.
func (h *Holder) State() State {
	return State(h.state.Load())
}

// Done is closed once the load has finished, successfully or not.
func (h *Holder) Done() <-chan struct{} {
	return h.done
}

// Catalog returns the loaded catalog, or the empty catalog if the load is
// pending or failed. Never nil.
func (h *Holder) Catalog() *Catalog {
	return h.catalog.Load()
}

// Ready returns the catalog when loaded. Otherwise it returns ErrNotLoaded
// (pending) or the load error (failed).
func (h *Holder) Ready() (*Catalog, error) {
	switch h.State() {
	case StateReady:
		return h.catalog.Load(), nil
	case StateFailed:
		h.mu.RLock()
		defer h.mu.RUnlock()
		return nil, h.err
	default:
		return nil, ErrNotLoaded
	}
}

// Status reports the holder state.
func (h *Holder) Status() Status {
	h.mu.RLock()
	defer h.mu.RUnlock()

	cat := h.catalog.Load()
	st := Status{
		State:      h.State().String(),
		Source:     h.source,
		Movies:     cat.Len(),
		Duplicates: cat.Duplicates(),
	}
	if h.err != nil {
		st.Error = h.err.Error()
	}
	if !h.loadedAt.IsZero() {
		loadedAt := h.loadedAt
		st.LoadedAt = &loadedAt
	}
	return st
}
