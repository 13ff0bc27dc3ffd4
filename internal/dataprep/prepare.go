// Cinequiz - Movie Recommendation Quiz
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinequiz

package dataprep

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/goccy/go-json"

	"github.com/tomtom215/cinequiz/internal/logging"
	"github.com/tomtom215/cinequiz/internal/models"
)

// UnknownYear is written to every movie because the input has no year column.
const UnknownYear = "N/A"

// Prepare runs the full pipeline and returns the catalog in output order
// (most-voted first).
func Prepare(ctx context.Context, opts Options) ([]models.Movie, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	start := time.Now()

	records, err := ingest(ctx, &opts)
	if err != nil {
		return nil, err
	}

	plots := make([]string, len(records))
	for i := range records {
		plots[i] = records[i].Plot
	}
	vectors := tfidf(plots, opts.MaxFeatures)

	neighbours, err := nearest(ctx, vectors, opts.Neighbours, opts.workers())
	if err != nil {
		return nil, fmt.Errorf("similarity: %w", err)
	}

	movies := make([]models.Movie, len(records))
	for i := range records {
		r := &records[i]
		similar := make([]string, len(neighbours[i]))
		for n, j := range neighbours[i] {
			similar[n] = records[j].Title
		}
		movies[i] = models.Movie{
			Title:          r.Title,
			Genre:          r.Genre,
			IMDbRating:     r.Rating,
			Description:    r.Plot,
			SimilarMovies:  similar,
			WeightedRating: r.WeightedRating,
			Year:           UnknownYear,
		}
	}

	logging.Info().
		Int("movies", len(movies)).
		Int("neighbours", opts.Neighbours).
		Dur("duration", time.Since(start)).
		Msg("Catalog prepared")

	return movies, nil
}

// EncodeJSON writes movies as indented JSON without HTML escaping.
func EncodeJSON(w io.Writer, movies []models.Movie) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "    ")
	return enc.Encode(movies)
}

// WriteJSON writes movies to path, replacing it atomically.
func WriteJSON(path string, movies []models.Movie) (err error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return fmt.Errorf("failed to create output directory %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, ".movies-*.json")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmp.Name())
		}
	}()

	if err := EncodeJSON(tmp, movies); err != nil {
		return fmt.Errorf("failed to encode catalog: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("failed to replace %s: %w", path, err)
	}
	return nil
}
