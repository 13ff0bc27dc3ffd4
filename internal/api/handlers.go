// Cinequiz - Movie Recommendation Quiz
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinequiz

package api

import (
	"context"
	"errors"
	"time"

	"github.com/tomtom215/cinequiz/internal/catalog"
	"github.com/tomtom215/cinequiz/internal/present"
	"github.com/tomtom215/cinequiz/internal/quiz"
	"github.com/tomtom215/cinequiz/internal/recommend"
)

// ErrMissingDependency is returned by NewHandler when a collaborator is nil.
var ErrMissingDependency = errors.New("api: missing handler dependency")

// maxFormBytes bounds form submissions.
const maxFormBytes = 64 << 10

// Recommender produces ranked recommendations.
type Recommender interface {
	Recommend(ctx context.Context, req recommend.Request) (*recommend.Response, error)
}

// CatalogStatus reports the state of the session catalog.
type CatalogStatus interface {
	State() catalog.State
	Status() catalog.Status
}

// HandlerConfig wires the handler's collaborators.
type HandlerConfig struct {
	Engine    Recommender
	Catalog   CatalogStatus
	Collector *quiz.Collector
	Renderer  *present.HTMLRenderer

	// Timeout bounds a single recommendation. Zero means 10s.
	Timeout time.Duration
}

// Handler serves the quiz page and the JSON API.
type Handler struct {
	engine    Recommender
	catalog   CatalogStatus
	collector *quiz.Collector
	renderer  *present.HTMLRenderer
	timeout   time.Duration
	startTime time.Time
}

// NewHandler creates a handler.
func NewHandler(cfg HandlerConfig) (*Handler, error) {
	if cfg.Engine == nil || cfg.Catalog == nil || cfg.Renderer == nil {
		return nil, ErrMissingDependency
	}
	collector := cfg.Collector
	if collector == nil {
		collector = quiz.NewCollector(false)
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	return &Handler{
		engine:    cfg.Engine,
		catalog:   cfg.Catalog,
		collector: collector,
		renderer:  cfg.Renderer,
		timeout:   timeout,
		startTime: time.Now(),
	}, nil
}
