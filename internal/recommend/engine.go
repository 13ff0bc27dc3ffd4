// Cinequiz - Movie Recommendation Quiz
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinequiz

package recommend

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	gocache "github.com/patrickmn/go-cache"
	"github.com/rs/zerolog"

	"github.com/tomtom215/cinequiz/internal/catalog"
	"github.com/tomtom215/cinequiz/internal/metrics"
)

// ErrCatalogUnavailable is returned while the catalog is pending or after
// it failed to load.
var ErrCatalogUnavailable = errors.New("catalog unavailable")

// Outcome labels recorded on metrics.RecommendationsTotal.
const (
	OutcomeOK                 = "ok"
	OutcomeEmpty              = "empty"
	OutcomeCatalogUnavailable = "catalog_unavailable"
)

// CatalogProvider supplies the loaded catalog. *catalog.Holder implements it.
type CatalogProvider interface {
	Ready() (*catalog.Catalog, error)
}

// Engine serves recommendations from the current catalog.
type Engine struct {
	config   *Config
	logger   zerolog.Logger
	catalogs CatalogProvider

	// nil when caching is disabled
	cache *gocache.Cache

	requestCount atomic.Int64
	cacheHits    atomic.Int64
	cacheMisses  atomic.Int64
	errorCount   atomic.Int64
}

// NewEngine creates an engine. A nil cfg means DefaultConfig.
func NewEngine(cfg *Config, catalogs CatalogProvider, logger zerolog.Logger) (*Engine, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	if catalogs == nil {
		return nil, errors.New("catalog provider is required")
	}

	e := &Engine{
		config:   cfg.Clone(),
		logger:   logger.With().Str("component", "recommend").Logger(),
		catalogs: catalogs,
	}
	if cfg.Cache.Enabled {
		e.cache = gocache.New(cfg.Cache.TTL, cfg.Cache.CleanupInterval)
	}
	return e, nil
}

// Config returns a copy of the engine configuration.
func (e *Engine) Config() *Config {
	return e.config.Clone()
}

// Recommend scores the catalog against req.Answers and returns the top
// matches. A response with no items is a valid result when the catalog is
// loaded but empty.
//
//nolint:gocritic // hugeParam: Request is passed by value to keep callers simple
func (e *Engine) Recommend(ctx context.Context, req Request) (*Response, error) {
	start := time.Now()
	e.requestCount.Add(1)

	if err := ctx.Err(); err != nil {
		e.errorCount.Add(1)
		return nil, err
	}

	if req.RequestID == "" {
		req.RequestID = uuid.New().String()
	}
	limit := e.resolveLimit(req.Limit)
	logger := e.logger.With().Str("request_id", req.RequestID).Logger()

	cat, err := e.catalogs.Ready()
	if err != nil {
		e.errorCount.Add(1)
		metrics.RecordRecommendation(OutcomeCatalogUnavailable, 0, 0)
		logger.Debug().Err(err).Msg("catalog not ready")
		return nil, fmt.Errorf("%w: %w", ErrCatalogUnavailable, err)
	}

	key := req.Answers.Fingerprint() + "|n=" + strconv.Itoa(limit)
	if resp := e.tryGetCached(key, req.RequestID, start); resp != nil {
		logger.Debug().Int("items", len(resp.Items)).Msg("recommendation served from cache")
		return resp, nil
	}

	scoring := Evaluate(cat, &req.Answers)
	items := scoring.Top(cat, limit)

	resp := &Response{
		Items:           items,
		TotalCandidates: cat.Len(),
		Metadata: ResponseMetadata{
			RequestID: req.RequestID,
			Limit:     limit,
			Vetoed:    scoring.Vetoed,
			LatencyMS: float64(time.Since(start).Microseconds()) / 1000,
			Timestamp: time.Now().UTC(),
		},
	}

	outcome := OutcomeOK
	if resp.Empty() {
		outcome = OutcomeEmpty
	}
	metrics.RecordRecommendation(outcome, time.Since(start), scoring.Vetoed)

	if e.cache != nil {
		e.cache.Set(key, resp, gocache.DefaultExpiration)
	}

	logger.Debug().
		Int("candidates", resp.TotalCandidates).
		Int("items", len(items)).
		Int("vetoed", scoring.Vetoed).
		Float64("latency_ms", resp.Metadata.LatencyMS).
		Msg("recommendation complete")

	return resp, nil
}

func (e *Engine) resolveLimit(requested int) int {
	if requested <= 0 {
		return e.config.Limits.TopN
	}
	return min(requested, e.config.Limits.MaxTopN)
}

// tryGetCached returns a copy of the cached response stamped for this
// request, or nil on a miss.
func (e *Engine) tryGetCached(key, requestID string, start time.Time) *Response {
	if e.cache == nil {
		return nil
	}
	cached, ok := e.cache.Get(key)
	metrics.RecordCacheLookup(ok)
	if !ok {
		e.cacheMisses.Add(1)
		return nil
	}
	e.cacheHits.Add(1)

	resp := *cached.(*Response)
	resp.Metadata.RequestID = requestID
	resp.Metadata.CacheHit = true
	resp.Metadata.LatencyMS = float64(time.Since(start).Microseconds()) / 1000
	resp.Metadata.Timestamp = time.Now().UTC()
	return &resp
}

// InvalidateCache drops every cached response.
func (e *Engine) InvalidateCache() {
	if e.cache != nil {
		e.cache.Flush()
	}
}

// Stats returns the engine counters.
func (e *Engine) Stats() Stats {
	st := Stats{
		Requests:    e.requestCount.Load(),
		CacheHits:   e.cacheHits.Load(),
		CacheMisses: e.cacheMisses.Load(),
		Errors:      e.errorCount.Load(),
	}
	if e.cache != nil {
		st.CachedItems = e.cache.ItemCount()
	}
	return st
}
