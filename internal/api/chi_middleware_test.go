// Cinequiz - Movie Recommendation Quiz
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinequiz

package api

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/goccy/go-json"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestDefaultChiMiddlewareConfig(t *testing.T) {
	t.Parallel()

	cfg := DefaultChiMiddlewareConfig()
	if len(cfg.CORSAllowedOrigins) != 0 {
		t.Errorf("CORSAllowedOrigins = %v, want empty", cfg.CORSAllowedOrigins)
	}
	if cfg.RateLimitRequests != 60 || cfg.RateLimitWindow != time.Minute || cfg.RateLimitDisabled {
		t.Errorf("rate limit defaults = %+v", cfg)
	}
}

func TestChiMiddleware_CORS(t *testing.T) {
	t.Parallel()

	m := NewChiMiddlewareFromSecurity([]string{"https://allowed.example"}, 10, time.Minute, false)
	handler := m.CORS()(okHandler())

	tests := []struct {
		name       string
		method     string
		origin     string
		wantOrigin string
	}{
		{"allowed origin", http.MethodGet, "https://allowed.example", "https://allowed.example"},
		{"disallowed origin", http.MethodGet, "https://evil.example", ""},
		{"no origin", http.MethodGet, "", ""},
		{"preflight", http.MethodOptions, "https://allowed.example", "https://allowed.example"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			req := httptest.NewRequest(tt.method, "/api/v1/recommendations", nil)
			if tt.origin != "" {
				req.Header.Set("Origin", tt.origin)
			}
			if tt.method == http.MethodOptions {
				req.Header.Set("Access-Control-Request-Method", http.MethodPost)
			}
			w := httptest.NewRecorder()
			handler.ServeHTTP(w, req)

			if got := w.Header().Get("Access-Control-Allow-Origin"); got != tt.wantOrigin {
				t.Errorf("Access-Control-Allow-Origin = %q, want %q", got, tt.wantOrigin)
			}
		})
	}
}

func TestChiMiddleware_RateLimit(t *testing.T) {
	t.Parallel()

	m := NewChiMiddlewareFromSecurity(nil, 3, time.Minute, false)
	handler := m.RateLimit()(okHandler())

	var ok, limited int
	var last *httptest.ResponseRecorder
	for i := 0; i < 5; i++ {
		req := httptest.NewRequest(http.MethodPost, "/recommend", nil)
		req.RemoteAddr = "192.168.1.1:12345"
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)

		switch w.Code {
		case http.StatusOK:
			ok++
		case http.StatusTooManyRequests:
			limited++
			last = w
		}
	}

	if ok != 3 || limited != 2 {
		t.Errorf("ok = %d, limited = %d, want 3 and 2", ok, limited)
	}

	var env APIResponse
	if err := json.Unmarshal(last.Body.Bytes(), &env); err != nil {
		t.Fatalf("limit response is not the JSON envelope: %v", err)
	}
	if env.Success || env.Error == nil || env.Error.Code != ErrCodeTooManyRequests {
		t.Errorf("limit response = %+v", env)
	}
}

func TestChiMiddleware_RateLimit_DifferentIPs(t *testing.T) {
	t.Parallel()

	m := NewChiMiddlewareFromSecurity(nil, 1, time.Minute, false)
	handler := m.RateLimit()(okHandler())

	for _, ip := range []string{"10.0.0.1:1000", "10.0.0.2:1000"} {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = ip
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)
		if w.Code != http.StatusOK {
			t.Errorf("first request from %s: status = %d", ip, w.Code)
		}
	}
}

func TestChiMiddleware_RateLimit_Disabled(t *testing.T) {
	t.Parallel()

	m := NewChiMiddlewareFromSecurity(nil, 1, time.Minute, true)
	for _, mw := range []func(http.Handler) http.Handler{m.RateLimit(), m.RateLimitHealth()} {
		handler := mw(okHandler())
		for i := 0; i < 5; i++ {
			w := httptest.NewRecorder()
			handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
			if w.Code != http.StatusOK {
				t.Fatalf("request %d: status = %d", i, w.Code)
			}
		}
	}
}

func TestResponseWriter(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		write    func(*ResponseWriter)
		status   int
		success  bool
		wantCode string
	}{
		{"success", func(rw *ResponseWriter) { rw.Success(map[string]string{"k": "v"}) }, http.StatusOK, true, ""},
		{"bad request", func(rw *ResponseWriter) { rw.BadRequest("nope") }, http.StatusBadRequest, false, ErrCodeBadRequest},
		{"not found", func(rw *ResponseWriter) { rw.NotFound("gone") }, http.StatusNotFound, false, ErrCodeNotFound},
		{"internal", func(rw *ResponseWriter) { rw.InternalError("boom") }, http.StatusInternalServerError, false, ErrCodeInternalError},
		{"unavailable", func(rw *ResponseWriter) { rw.ServiceUnavailable(ErrCodeCatalogUnavailable, "later") }, http.StatusServiceUnavailable, false, ErrCodeCatalogUnavailable},
		{"validation", func(rw *ResponseWriter) { rw.ValidationError("bad mood", map[string]string{"field": "mood"}) }, http.StatusBadRequest, false, ErrCodeValidationFailed},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			w := httptest.NewRecorder()
			tt.write(NewResponseWriter(w, httptest.NewRequest(http.MethodGet, "/", nil)))

			if w.Code != tt.status {
				t.Errorf("status = %d, want %d", w.Code, tt.status)
			}
			if ct := w.Header().Get("Content-Type"); ct != "application/json; charset=utf-8" {
				t.Errorf("Content-Type = %q", ct)
			}

			var env APIResponse
			if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
				t.Fatal(err)
			}
			if env.Success != tt.success {
				t.Errorf("Success = %v, want %v", env.Success, tt.success)
			}
			if env.Meta == nil || env.Meta.Timestamp.IsZero() {
				t.Error("Meta.Timestamp should be set")
			}
			if !tt.success && (env.Error == nil || env.Error.Code != tt.wantCode) {
				t.Errorf("Error = %+v, want code %s", env.Error, tt.wantCode)
			}
		})
	}
}
