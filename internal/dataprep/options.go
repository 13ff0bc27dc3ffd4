// Cinequiz - Movie Recommendation Quiz
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinequiz

// Package dataprep builds the movie catalog from a raw IMDb-style CSV export.
//
// The pipeline has three stages:
//
//  1. Ingest (DuckDB, in memory): drop incomplete rows, parse votes and
//     ratings, keep the most-voted titles and compute the vote-weighted
//     rating v/(v+m)*R + m/(v+m)*C, where C is the mean rating and m the
//     90th percentile of votes.
//  2. Similarity: TF-IDF vectors over the plot text (English stop words
//     removed, vocabulary capped by corpus frequency, smooth idf, L2 norm)
//     and cosine nearest neighbours computed by a bounded worker pool.
//  3. Output: models.Movie records with similar_movies filled in, written
//     as JSON or into a badger snapshot.
//
// The CSV must have the columns "Movie Name", "Genre", "Plot", "Rating"
// and "Votes". Votes may contain thousands separators.
package dataprep

import (
	"errors"
	"fmt"
	"runtime"
)

var (
	// ErrNoRows is returned when no CSV row survives cleaning.
	ErrNoRows = errors.New("no usable rows in input")

	// ErrInvalidOptions wraps every Options.Validate failure.
	ErrInvalidOptions = errors.New("invalid prepare options")
)

// Options controls Prepare.
type Options struct {
	// CSVPath is the input file.
	CSVPath string

	// MinVotes drops titles with fewer votes.
	MinVotes int64

	// Limit keeps at most this many titles, most-voted first.
	Limit int

	// Neighbours is the length of each similar_movies list.
	Neighbours int

	// MaxFeatures caps the TF-IDF vocabulary.
	MaxFeatures int

	// Workers bounds the similarity worker pool. Zero means GOMAXPROCS.
	Workers int
}

// DefaultOptions returns the catalog build defaults.
func DefaultOptions() Options {
	return Options{
		MinVotes:    1000,
		Limit:       5000,
		Neighbours:  5,
		MaxFeatures: 5000,
	}
}

// Validate checks the options.
func (o *Options) Validate() error {
	switch {
	case o.CSVPath == "":
		return fmt.Errorf("%w: csv path is required", ErrInvalidOptions)
	case o.MinVotes < 0:
		return fmt.Errorf("%w: min votes must not be negative, got %d", ErrInvalidOptions, o.MinVotes)
	case o.Limit <= 0:
		return fmt.Errorf("%w: limit must be positive, got %d", ErrInvalidOptions, o.Limit)
	case o.Neighbours < 0:
		return fmt.Errorf("%w: neighbours must not be negative, got %d", ErrInvalidOptions, o.Neighbours)
	case o.MaxFeatures <= 0:
		return fmt.Errorf("%w: max features must be positive, got %d", ErrInvalidOptions, o.MaxFeatures)
	case o.Workers < 0:
		return fmt.Errorf("%w: workers must not be negative, got %d", ErrInvalidOptions, o.Workers)
	}
	return nil
}

func (o *Options) workers() int {
	if o.Workers > 0 {
		return o.Workers
	}
	return runtime.GOMAXPROCS(0)
}
