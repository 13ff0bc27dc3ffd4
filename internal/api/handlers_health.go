// Cinequiz - Movie Recommendation Quiz
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinequiz

package api

import (
	"net/http"
	"time"

	"github.com/tomtom215/cinequiz/internal/catalog"
)

// HealthStatus is the payload of the health endpoints.
type HealthStatus struct {
	Status  string  `json:"status"`
	Catalog string  `json:"catalog,omitempty"`
	Movies  int     `json:"movies,omitempty"`
	Uptime  float64 `json:"uptime_seconds"`
}

// HealthLive handles GET /api/v1/health/live
// The process is alive as long as it can answer.
func (h *Handler) HealthLive(w http.ResponseWriter, r *http.Request) {
	WriteSuccess(w, r, &HealthStatus{
		Status: "alive",
		Uptime: time.Since(h.startTime).Seconds(),
	})
}

// HealthReady handles GET /api/v1/health/ready
//
// The server is ready once the catalog load has finished. A failed load is
// still ready: the quiz then answers with the catalog-unavailable message,
// and retrying the probe would not change that.
func (h *Handler) HealthReady(w http.ResponseWriter, r *http.Request) {
	status := h.catalog.Status()
	health := &HealthStatus{
		Status:  "ready",
		Catalog: status.State,
		Movies:  status.Movies,
		Uptime:  time.Since(h.startTime).Seconds(),
	}

	if h.catalog.State() == catalog.StatePending {
		NewResponseWriter(w, r).ErrorWithDetails(http.StatusServiceUnavailable,
			ErrCodeServiceUnavailable, "catalog is still loading", health)
		return
	}

	WriteSuccess(w, r, health)
}
