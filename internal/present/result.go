// Cinequiz - Movie Recommendation Quiz
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinequiz

// Package present renders recommendations and the two user-facing failure
// messages. It holds no scoring logic.
//
// result.go - view models shared by the HTML, text and JSON outputs.
package present

import (
	"fmt"
	"strconv"

	"github.com/tomtom215/cinequiz/internal/models"
)

// Fixed user-facing text.
const (
	// MsgCatalogUnavailable is shown when the catalog failed to load.
	MsgCatalogUnavailable = "Film verileri yüklenemedi. Lütfen sayfayı yenileyin."

	// MsgNoMatches is shown when the result is empty.
	MsgNoMatches = "Bu kriterlere uygun film bulunamadı. Lütfen seçimlerinizi değiştirip tekrar deneyin."

	// ResultsHeader titles a non-empty result.
	ResultsHeader = "Size Özel Film Tavsiyeleri"
)

// Card is one rendered movie.
type Card struct {
	Title       string `json:"title"`
	Rating      string `json:"rating"`
	Genre       string `json:"genre"`
	Description string `json:"description"`

	// Runtime is empty when the catalog has no runtime for the movie.
	Runtime string `json:"runtime,omitempty"`
}

// NewCard builds the card for rec.
//
//nolint:gocritic // hugeParam: Recommendation is read-only here
func NewCard(rec models.Recommendation) Card {
	m := &rec.Movie
	c := Card{
		Title:       m.Title,
		Rating:      FormatRating(m.IMDbRating),
		Genre:       m.Genre,
		Description: m.Description,
	}
	if m.HasRuntime() {
		c.Runtime = FormatRuntime(m.Runtime)
	}
	return c
}

// FormatRating renders a rating as "⭐ 8.5/10", with the shortest decimal
// form of the value.
func FormatRating(rating float64) string {
	return "⭐ " + strconv.FormatFloat(rating, 'f', -1, 64) + "/10"
}

// FormatRuntime renders "Süre: N dakika".
func FormatRuntime(minutes int) string {
	return fmt.Sprintf("Süre: %d dakika", minutes)
}

// Result is the presentation of one recommendation request. Exactly one of
// Cards and Message is set.
type Result struct {
	Header  string `json:"header,omitempty"`
	Cards   []Card `json:"cards"`
	Message string `json:"message,omitempty"`
}

// NewResult presents recs, or the no-matches message when recs is empty.
func NewResult(recs []models.Recommendation) Result {
	if len(recs) == 0 {
		return Result{Cards: []Card{}, Message: MsgNoMatches}
	}
	cards := make([]Card, len(recs))
	for i := range recs {
		cards[i] = NewCard(recs[i])
	}
	return Result{Header: ResultsHeader, Cards: cards}
}

// UnavailableResult is the presentation used when the catalog failed to load.
func UnavailableResult() Result {
	return Result{Cards: []Card{}, Message: MsgCatalogUnavailable}
}

// Empty reports whether the result carries no cards.
func (r *Result) Empty() bool {
	return len(r.Cards) == 0
}
