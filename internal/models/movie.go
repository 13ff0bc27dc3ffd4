// Cinequiz - Movie Recommendation Quiz
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinequiz

package models

import "strings"

// Movie is a single catalog entry.
type Movie struct {
	// Title is the unique catalog key. SimilarMovies references it by exact match.
	Title string `json:"title"`

	// Genre is free text and may name several genres ("Action/Comedy").
	Genre string `json:"genre"`

	// Runtime is the length in minutes. Zero means the catalog has no value.
	Runtime int `json:"runtime,omitempty"`

	// IMDbRating is the rating out of 10.
	IMDbRating float64 `json:"imdb_rating"`

	// Description is a short plot summary.
	Description string `json:"description"`

	// SimilarMovies lists titles of other catalog entries, most similar first.
	SimilarMovies []string `json:"similar_movies,omitempty"`

	// WeightedRating is the vote-weighted rating computed by prepare-catalog.
	WeightedRating float64 `json:"weighted_rating,omitempty"`

	// Year is the release year, or "N/A" when unknown.
	Year string `json:"year,omitempty"`
}

// LowerGenre returns the genre string lower-cased for containment checks.
func (m *Movie) LowerGenre() string {
	return strings.ToLower(m.Genre)
}

// HasRuntime reports whether the catalog supplied a runtime.
func (m *Movie) HasRuntime() bool {
	return m.Runtime > 0
}

// Recommendation is a movie selected by the scorer.
type Recommendation struct {
	Movie Movie `json:"movie"`

	// Score is the final heuristic score. Vetoed movies sit at or above -1000.
	Score int `json:"score"`

	// Rank is the 1-based position in the result.
	Rank int `json:"rank"`
}
