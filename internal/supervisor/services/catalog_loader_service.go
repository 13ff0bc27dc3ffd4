// Cinequiz - Movie Recommendation Quiz
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinequiz

package services

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"
	"github.com/thejerf/suture/v4"

	"github.com/tomtom215/cinequiz/internal/catalog"
)

// CatalogLoader loads a catalog from a source exactly once.
// Satisfied by *catalog.Holder.
type CatalogLoader interface {
	Load(ctx context.Context, src catalog.Source) error
}

// CatalogLoaderService performs the one-time catalog load under supervision.
//
// It always returns suture.ErrDoNotRestart: the holder refuses a second
// load, and a failed load is reported through the holder's state rather
// than retried.
type CatalogLoaderService struct {
	loader  CatalogLoader
	source  catalog.Source
	timeout time.Duration
	logger  zerolog.Logger
	name    string
}

// NewCatalogLoaderService creates the loader service. A positive timeout
// bounds the load; zero leaves it to the source.
//
//nolint:gocritic // hugeParam: zerolog.Logger is designed to be passed by value
func NewCatalogLoaderService(loader CatalogLoader, source catalog.Source, timeout time.Duration, logger zerolog.Logger) *CatalogLoaderService {
	return &CatalogLoaderService{
		loader:  loader,
		source:  source,
		timeout: timeout,
		logger:  logger.With().Str("service", "catalog-loader").Logger(),
		name:    "catalog-loader",
	}
}

// Serve implements suture.Service.
func (s *CatalogLoaderService) Serve(ctx context.Context) error {
	loadCtx := ctx
	if s.timeout > 0 {
		var cancel context.CancelFunc
		loadCtx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	s.logger.Info().Str("source", s.source.Name()).Msg("loading catalog")

	err := s.loader.Load(loadCtx, s.source)
	switch {
	case err == nil:
	case errors.Is(err, catalog.ErrAlreadyLoaded):
		s.logger.Debug().Msg("catalog already loaded")
	default:
		// The holder has logged the failure; the service only stops here.
		s.logger.Warn().Err(err).Msg("catalog loader finished without a catalog")
	}
	return suture.ErrDoNotRestart
}

// String implements fmt.Stringer for supervisor events.
func (s *CatalogLoaderService) String() string {
	return s.name
}
