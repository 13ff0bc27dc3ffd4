// Cinequiz - Movie Recommendation Quiz
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinequiz

package main

import (
	"fmt"

	"github.com/tomtom215/cinequiz/internal/catalog"
	"github.com/tomtom215/cinequiz/internal/config"
)

// newCatalogSource builds the source selected by catalog.source. The returned
// close function releases whatever the source holds open and is never nil.
func newCatalogSource(cfg *config.Config) (catalog.Source, func() error, error) {
	noop := func() error { return nil }

	switch cfg.Catalog.Source {
	case config.SourceFile:
		return catalog.NewFileSource(cfg.Catalog.Path), noop, nil

	case config.SourceHTTP:
		return catalog.NewHTTPSource(cfg.HTTPSourceSettings()), noop, nil

	case config.SourceBadger:
		store, err := catalog.OpenStore(cfg.Catalog.BadgerPath)
		if err != nil {
			return nil, noop, fmt.Errorf("open catalog store: %w", err)
		}
		return catalog.NewBadgerSource(store), store.Close, nil

	default:
		return nil, noop, fmt.Errorf("unknown catalog source %q", cfg.Catalog.Source)
	}
}
