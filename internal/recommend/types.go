// Cinequiz - Movie Recommendation Quiz
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinequiz

package recommend

import (
	"time"

	"github.com/tomtom215/cinequiz/internal/models"
)

// Request is one recommendation request.
type Request struct {
	Answers models.Answers

	// Limit overrides Config.Limits.TopN when positive.
	Limit int

	// RequestID correlates logs. Generated when empty.
	RequestID string
}

// Response is the ranked result.
type Response struct {
	Items []models.Recommendation `json:"items"`

	// TotalCandidates is the catalog size scored.
	TotalCandidates int `json:"total_candidates"`

	Metadata ResponseMetadata `json:"metadata"`
}

// ResponseMetadata describes how a response was produced.
type ResponseMetadata struct {
	RequestID string    `json:"request_id"`
	Limit     int       `json:"limit"`
	Vetoed    int       `json:"vetoed"`
	LatencyMS float64   `json:"latency_ms"`
	CacheHit  bool      `json:"cache_hit"`
	Timestamp time.Time `json:"timestamp"`
}

// Empty reports whether no movie was recommended.
func (r *Response) Empty() bool {
	return len(r.Items) == 0
}

// Stats are cumulative engine counters.
type Stats struct {
	Requests    int64 `json:"requests"`
	CacheHits   int64 `json:"cache_hits"`
	CacheMisses int64 `json:"cache_misses"`
	Errors      int64 `json:"errors"`
	CachedItems int   `json:"cached_items"`
}
