// Cinequiz - Movie Recommendation Quiz
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinequiz

package catalog

import (
	"errors"
	"testing"

	"github.com/tomtom215/cinequiz/internal/models"
)

func sampleMovies() []models.Movie {
	return []models.Movie{
		{Title: "Inception", Genre: "Action/Sci-Fi", Runtime: 148, IMDbRating: 8.8, SimilarMovies: []string{"Interstellar"}},
		{Title: "Interstellar", Genre: "Adventure/Drama/Sci-Fi", Runtime: 169, IMDbRating: 8.7},
		{Title: "Up", Genre: "Animation/Family", Runtime: 96, IMDbRating: 8.3},
	}
}

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("indexes titles", func(t *testing.T) {
		t.Parallel()

		c, err := New(sampleMovies())
		if err != nil {
			t.Fatalf("New() error = %v", err)
		}
		if c.Len() != 3 {
			t.Errorf("Len() = %d, want 3", c.Len())
		}
		if got := c.IndexByTitle("Interstellar"); got != 1 {
			t.Errorf("IndexByTitle(Interstellar) = %d, want 1", got)
		}
		if got := c.IndexByTitle("interstellar"); got != -1 {
			t.Errorf("exact lookup must be case-sensitive, got %d", got)
		}
		if got := c.IndexByLowerTitle("interstellar"); got != 1 {
			t.Errorf("IndexByLowerTitle(interstellar) = %d, want 1", got)
		}
		if got := c.IndexByLowerTitle("missing"); got != -1 {
			t.Errorf("IndexByLowerTitle(missing) = %d, want -1", got)
		}
	})

	t.Run("rejects empty title", func(t *testing.T) {
		t.Parallel()

		movies := sampleMovies()
		movies[2].Title = "  "
		_, err := New(movies)
		if !errors.Is(err, ErrEmptyTitle) {
			t.Errorf("New() error = %v, want ErrEmptyTitle", err)
		}
	})

	t.Run("duplicates resolve to first occurrence", func(t *testing.T) {
		t.Parallel()

		movies := append(sampleMovies(), models.Movie{Title: "Up", Genre: "Drama"})
		c, err := New(movies)
		if err != nil {
			t.Fatalf("New() error = %v", err)
		}
		if got := c.IndexByTitle("Up"); got != 2 {
			t.Errorf("IndexByTitle(Up) = %d, want 2", got)
		}
		if c.Duplicates() != 1 {
			t.Errorf("Duplicates() = %d, want 1", c.Duplicates())
		}
	})

	t.Run("copies input", func(t *testing.T) {
		t.Parallel()

		movies := sampleMovies()
		c, err := New(movies)
		if err != nil {
			t.Fatalf("New() error = %v", err)
		}
		movies[0].Title = "Changed"
		movies[0].SimilarMovies[0] = "Changed"

		if c.At(0).Title != "Inception" {
			t.Errorf("catalog title mutated through input slice: %q", c.At(0).Title)
		}
		if c.At(0).SimilarMovies[0] != "Interstellar" {
			t.Errorf("catalog similar_movies mutated through input slice: %q", c.At(0).SimilarMovies[0])
		}
	})
}

func TestCatalog_Movies(t *testing.T) {
	t.Parallel()

	c, err := New(sampleMovies())
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	out := c.Movies()
	out[0].Title = "Mutated"
	if c.At(0).Title != "Inception" {
		t.Error("Movies() must return a copy")
	}

	titles := c.Titles()
	want := []string{"Inception", "Interstellar", "Up"}
	for i := range want {
		if titles[i] != want[i] {
			t.Errorf("Titles()[%d] = %q, want %q", i, titles[i], want[i])
		}
	}
}

func TestCatalog_NilAndEmpty(t *testing.T) {
	t.Parallel()

	var c *Catalog
	if c.Len() != 0 {
		t.Error("nil catalog should have length 0")
	}
	if c.IndexByTitle("x") != -1 || c.IndexByLowerTitle("x") != -1 {
		t.Error("nil catalog lookups should return -1")
	}
	if Empty().Len() != 0 {
		t.Error("Empty() should have length 0")
	}
}
