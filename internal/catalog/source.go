// Cinequiz - Movie Recommendation Quiz
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinequiz

package catalog

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/goccy/go-json"

	"github.com/tomtom215/cinequiz/internal/models"
)

// Source produces the ordered movie list. Implementations either return the
// complete list or an error; they never return a partial result.
type Source interface {
	// Name identifies the source in logs and metrics ("file", "http", "badger").
	Name() string

	// Fetch returns every movie in catalog order.
	Fetch(ctx context.Context) ([]models.Movie, error)
}

// Decode reads a JSON array of movies.
func Decode(r io.Reader) ([]models.Movie, error) {
	var movies []models.Movie
	if err := json.NewDecoder(r).Decode(&movies); err != nil {
		return nil, fmt.Errorf("decode movies: %w", err)
	}
	return movies, nil
}

// FileSource reads movies.json from the local filesystem.
type FileSource struct {
	Path string
}

// NewFileSource creates a source for the JSON file at path.
func NewFileSource(path string) *FileSource {
	return &FileSource{Path: path}
}

// Name implements Source.
func (s *FileSource) Name() string { return "file" }

// Fetch implements Source.
func (s *FileSource) Fetch(ctx context.Context) ([]models.Movie, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := os.Open(s.Path)
	if err != nil {
		return nil, fmt.Errorf("open catalog file: %w", err)
	}
	defer f.Close()

	return Decode(f)
}

// StaticSource serves a fixed list, or fails with Err.
type StaticSource struct {
	Movies []models.Movie
	Err    error
}

// Name implements Source.
func (s *StaticSource) Name() string { return "static" }

// Fetch implements Source.
func (s *StaticSource) Fetch(_ context.Context) ([]models.Movie, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	return s.Movies, nil
}
