// Cinequiz - Movie Recommendation Quiz
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinequiz

package middleware

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/tomtom215/cinequiz/internal/logging"
	"github.com/tomtom215/cinequiz/internal/metrics"
)

func TestRequestID_GeneratesNewID(t *testing.T) {
	t.Parallel()

	var capturedID, loggingID string
	handler := RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		capturedID = GetRequestID(r.Context())
		loggingID = logging.RequestIDFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	responseID := rec.Header().Get(RequestIDHeader)
	if _, err := uuid.Parse(responseID); err != nil {
		t.Errorf("Response X-Request-ID is not a valid UUID: %v", err)
	}
	if capturedID != responseID {
		t.Errorf("Context ID (%s) doesn't match response header ID (%s)", capturedID, responseID)
	}
	if loggingID != responseID {
		t.Errorf("logging context ID = %q, want %q", loggingID, responseID)
	}
}

func TestRequestID_PreservesExistingID(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		incoming string
		keep     bool
	}{
		{"upstream id", "proxy-generated-id-123", true},
		{"oversized id", strings.Repeat("x", maxRequestIDLength+1), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var capturedID string
			handler := RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				capturedID = GetRequestID(r.Context())
			}))

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.Header.Set(RequestIDHeader, tt.incoming)
			handler.ServeHTTP(httptest.NewRecorder(), req)

			if (capturedID == tt.incoming) != tt.keep {
				t.Errorf("captured %q, keep incoming = %v", capturedID, tt.keep)
			}
		})
	}
}

func TestGetRequestID_Empty(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if got := GetRequestID(req.Context()); got != "" {
		t.Errorf("GetRequestID() = %q, want empty", got)
	}
}

func TestPrometheusMetrics_UsesRoutePattern(t *testing.T) {
	t.Parallel()

	r := chi.NewRouter()
	r.Use(PrometheusMetrics)
	r.Get("/test/movies/{title}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})

	counter := metrics.APIRequestsTotal.WithLabelValues(http.MethodGet, "/test/movies/{title}", "418")
	before := testutil.ToFloat64(counter)

	for _, title := range []string{"up", "inception"} {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/test/movies/"+title, nil))
		if rec.Code != http.StatusTeapot {
			t.Fatalf("status = %d", rec.Code)
		}
	}

	if got := testutil.ToFloat64(counter) - before; got != 2 {
		t.Errorf("counter delta = %v, want 2", got)
	}
}

func TestPrometheusMetrics_UnmatchedRoute(t *testing.T) {
	t.Parallel()

	handler := PrometheusMetrics(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("ok"))
	}))

	counter := metrics.APIRequestsTotal.WithLabelValues(http.MethodPut, unmatchedRoute, "200")
	before := testutil.ToFloat64(counter)

	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPut, "/nowhere", nil))

	if got := testutil.ToFloat64(counter) - before; got != 1 {
		t.Errorf("counter delta = %v, want 1", got)
	}
}

func TestStatusRecorder(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	sr := newStatusRecorder(rec)
	sr.WriteHeader(http.StatusNotFound)
	sr.WriteHeader(http.StatusOK) // second call keeps the first status
	n, _ := sr.Write([]byte("missing"))

	if sr.statusCode != http.StatusNotFound {
		t.Errorf("statusCode = %d, want 404", sr.statusCode)
	}
	if sr.bytes != n || n != len("missing") {
		t.Errorf("bytes = %d, want %d", sr.bytes, n)
	}
	if sr.Unwrap() != rec {
		t.Error("Unwrap() should return the wrapped writer")
	}
}

// syncBuffer guards a bytes.Buffer shared with the logger.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func withLogger(buf *syncBuffer, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := logging.ContextWithLogger(r.Context(), logging.NewTestLogger(buf))
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func TestAccessLog(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		status    int
		sleep     time.Duration
		wantLevel string
		wantSlow  bool
	}{
		{"server error", http.StatusInternalServerError, 0, `"level":"error"`, false},
		{"slow request", http.StatusOK, 20 * time.Millisecond, `"level":"warn"`, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			buf := &syncBuffer{}
			inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				time.Sleep(tt.sleep)
				w.WriteHeader(tt.status)
			})
			handler := withLogger(buf, RequestID(AccessLog(5*time.Millisecond)(inner)))

			handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/recommend", nil))

			out := buf.String()
			if !strings.Contains(out, `"message":"HTTP request"`) || !strings.Contains(out, tt.wantLevel) {
				t.Errorf("log output = %s", out)
			}
			if strings.Contains(out, `"slow":true`) != tt.wantSlow {
				t.Errorf("slow flag mismatch in %s", out)
			}
			if !strings.Contains(out, `"request_id"`) {
				t.Errorf("log line should carry the request id: %s", out)
			}
		})
	}
}
