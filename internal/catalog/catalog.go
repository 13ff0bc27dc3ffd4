// Cinequiz - Movie Recommendation Quiz
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinequiz

// Package catalog loads the movie catalog once at startup and serves it,
// read-only, to the scorer.
//
// # Architecture
//
// A Source produces the ordered list of movies (a JSON file, a JSON URL
// behind a circuit breaker, or a Badger snapshot written by
// prepare-catalog). The Holder runs exactly one load, records whether it
// succeeded, and publishes an immutable *Catalog through an atomic pointer.
//
// Loads fail atomically: a catalog with any invalid record is rejected as a
// whole and the Holder keeps serving the empty catalog. There is no retry.
//
// # Thread Safety
//
// *Catalog is immutable after New returns and may be shared freely. Scores
// are never stored on the catalog; each scoring pass allocates its own table.
package catalog

import (
	"errors"
	"fmt"
	"strings"

	"github.com/tomtom215/cinequiz/internal/models"
)

var (
	// ErrNotLoaded is returned when the catalog is requested before a successful load.
	ErrNotLoaded = errors.New("catalog not loaded")

	// ErrAlreadyLoaded is returned by Holder.Load on every call after the first.
	ErrAlreadyLoaded = errors.New("catalog already loaded")

	// ErrLoadFailed wraps any fetch, decode or validation failure.
	ErrLoadFailed = errors.New("catalog load failed")

	// ErrSourceUnavailable is returned when a remote source cannot be reached
	// or its circuit breaker is open.
	ErrSourceUnavailable = errors.New("catalog source unavailable")

	// ErrEmptyTitle is returned for a record without a title.
	ErrEmptyTitle = errors.New("movie has empty title")
)

// Catalog is an immutable, ordered collection of movies.
type Catalog struct {
	movies []models.Movie

	// byTitle and byLowerTitle map to the first occurrence.
	byTitle      map[string]int
	byLowerTitle map[string]int

	duplicates int
}

// New validates movies and builds a catalog. The slice is copied.
func New(movies []models.Movie) (*Catalog, error) {
	c := &Catalog{
		movies:       make([]models.Movie, len(movies)),
		byTitle:      make(map[string]int, len(movies)),
		byLowerTitle: make(map[string]int, len(movies)),
	}

	for i := range movies {
		m := movies[i]
		if strings.TrimSpace(m.Title) == "" {
			return nil, fmt.Errorf("record %d: %w", i, ErrEmptyTitle)
		}
		if m.SimilarMovies != nil {
			m.SimilarMovies = append([]string(nil), m.SimilarMovies...)
		}
		c.movies[i] = m

		if _, ok := c.byTitle[m.Title]; ok {
			c.duplicates++
		} else {
			c.byTitle[m.Title] = i
		}
		lower := strings.ToLower(m.Title)
		if _, ok := c.byLowerTitle[lower]; !ok {
			c.byLowerTitle[lower] = i
		}
	}

	return c, nil
}

// Empty returns a catalog with no movies.
func Empty() *Catalog {
	c, _ := New(nil)
	return c
}

// Len returns the number of movies.
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.movies)
}

// At returns a pointer to the i-th movie. Callers must not modify it.
func (c *Catalog) At(i int) *models.Movie {
	return &c.movies[i]
}

// Movies returns a copy of the movies in catalog order.
func (c *Catalog) Movies() []models.Movie {
	if c == nil {
		return nil
	}
	out := make([]models.Movie, len(c.movies))
	copy(out, c.movies)
	return out
}

// IndexByTitle returns the index of the first movie titled exactly title, or -1.
func (c *Catalog) IndexByTitle(title string) int {
	if c == nil {
		return -1
	}
	if i, ok := c.byTitle[title]; ok {
		return i
	}
	return -1
}

// IndexByLowerTitle returns the index of the first movie whose lower-cased
// title equals lower, or -1. lower must already be lower-case.
func (c *Catalog) IndexByLowerTitle(lower string) int {
	if c == nil {
		return -1
	}
	if i, ok := c.byLowerTitle[lower]; ok {
		return i
	}
	return -1
}

// Duplicates returns how many records repeat an earlier title. Lookups
// resolve to the first occurrence.
func (c *Catalog) Duplicates() int {
	if c == nil {
		return 0
	}
	return c.duplicates
}

// Titles returns every title in catalog order.
func (c *Catalog) Titles() []string {
	titles := make([]string, c.Len())
	for i := range titles {
		titles[i] = c.movies[i].Title
	}
	return titles
}
