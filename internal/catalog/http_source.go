// Cinequiz - Movie Recommendation Quiz
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinequiz

package catalog

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/tomtom215/cinequiz/internal/logging"
	"github.com/tomtom215/cinequiz/internal/metrics"
	"github.com/tomtom215/cinequiz/internal/models"
)

// maxCatalogBytes bounds the response body read from a remote catalog.
const maxCatalogBytes = 64 << 20

// HTTPSourceConfig configures a remote catalog source.
type HTTPSourceConfig struct {
	URL     string
	Timeout time.Duration

	// FailureThreshold is the number of consecutive failures that opens the breaker.
	FailureThreshold uint32

	// OpenTimeout is how long the breaker stays open before a trial request.
	OpenTimeout time.Duration

	// Client overrides the HTTP client. Optional.
	Client *http.Client
}

// HTTPSource fetches movies.json over HTTP through a circuit breaker.
//
// The breaker does not retry; it only stops hammering a dead endpoint when
// the same source is fetched repeatedly (terminal quiz sessions, readiness
// checks).
type HTTPSource struct {
	url    string
	client *http.Client
	cb     *gobreaker.CircuitBreaker[[]models.Movie]
	name   string
}

// NewHTTPSource creates a remote catalog source.
func NewHTTPSource(cfg HTTPSourceConfig) *HTTPSource {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}
	if cfg.FailureThreshold == 0 {
		cfg.FailureThreshold = 3
	}
	if cfg.OpenTimeout <= 0 {
		cfg.OpenTimeout = time.Minute
	}

	client := cfg.Client
	if client == nil {
		client = &http.Client{Timeout: cfg.Timeout}
	}

	cbName := "catalog-http"
	metrics.CircuitBreakerState.WithLabelValues(cbName).Set(0)

	threshold := cfg.FailureThreshold
	cb := gobreaker.NewCircuitBreaker[[]models.Movie](gobreaker.Settings{
		Name:        cbName,
		MaxRequests: 1,
		Interval:    0, // never clear counts while closed
		Timeout:     cfg.OpenTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= threshold
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			fromStr := stateToString(from)
			toStr := stateToString(to)

			logging.Warn().Str("breaker", name).Str("from", fromStr).Str("to", toStr).Msg("Circuit breaker state transition")

			metrics.CircuitBreakerState.WithLabelValues(name).Set(stateToFloat(to))
			metrics.CircuitBreakerTransitions.WithLabelValues(name, fromStr, toStr).Inc()
		},
	})

	return &HTTPSource{
		url:    cfg.URL,
		client: client,
		cb:     cb,
		name:   cbName,
	}
}

// Name implements Source.
func (s *HTTPSource) Name() string { return "http" }

// Fetch implements Source.
func (s *HTTPSource) Fetch(ctx context.Context) ([]models.Movie, error) {
	movies, err := s.cb.Execute(func() ([]models.Movie, error) {
		return s.fetch(ctx)
	})

	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			metrics.CircuitBreakerRequests.WithLabelValues(s.name, "rejected").Inc()
			return nil, fmt.Errorf("%w: %w", ErrSourceUnavailable, err)
		}
		metrics.CircuitBreakerRequests.WithLabelValues(s.name, "failure").Inc()
		return nil, err
	}

	metrics.CircuitBreakerRequests.WithLabelValues(s.name, "success").Inc()
	return movies, nil
}

// State returns the breaker state as a string.
func (s *HTTPSource) State() string {
	return stateToString(s.cb.State())
}

func (s *HTTPSource) fetch(ctx context.Context) ([]models.Movie, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSourceUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// Drain so the connection can be reused.
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		return nil, fmt.Errorf("%w: unexpected status %d", ErrSourceUnavailable, resp.StatusCode)
	}

	return Decode(io.LimitReader(resp.Body, maxCatalogBytes))
}

func stateToString(state gobreaker.State) string {
	switch state {
	case gobreaker.StateClosed:
		return "closed"
	case gobreaker.StateHalfOpen:
		return "half-open"
	case gobreaker.StateOpen:
		return "open"
	default:
		return "unknown"
	}
}

func stateToFloat(state gobreaker.State) float64 {
	switch state {
	case gobreaker.StateClosed:
		return 0
	case gobreaker.StateHalfOpen:
		return 1
	case gobreaker.StateOpen:
		return 2
	default:
		return -1
	}
}
