// Cinequiz - Movie Recommendation Quiz
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinequiz

package models

import (
	"sort"
	"strings"

	"github.com/goccy/go-json"
)

// AvoidNone is the avoid-list sentinel meaning "nothing to avoid".
const AvoidNone = "none"

// Answers is one completed quiz.
type Answers struct {
	// Genres are the selected genres. Order is irrelevant.
	Genres []string

	Mood     Mood
	Duration Duration
	Focus    Focus
	Company  Company

	// Complexity uses the Focus vocabulary.
	Complexity Focus

	// Avoid are genres to veto. May contain AvoidNone.
	Avoid []string

	// FavoriteMovie is trimmed and lower-cased; empty when unset.
	FavoriteMovie string
}

// fingerprint is the canonical form of Answers. Sets are lower-cased and
// sorted; the JSON encoding quotes every element, so no entry can spill into
// a neighbouring one.
type fingerprint struct {
	Genres     []string `json:"g"`
	Mood       string   `json:"m"`
	Duration   string   `json:"d"`
	Focus      string   `json:"f"`
	Company    string   `json:"c"`
	Complexity string   `json:"x"`
	Avoid      []string `json:"a"`
	Favorite   string   `json:"fav"`
}

// Fingerprint returns a canonical key for the answers. Two answer sets with
// the same fingerprint always score identically.
func (a *Answers) Fingerprint() string {
	data, err := json.Marshal(fingerprint{
		Genres:     canonicalSet(a.Genres),
		Mood:       a.Mood.String(),
		Duration:   a.Duration.String(),
		Focus:      a.Focus.String(),
		Company:    a.Company.String(),
		Complexity: a.Complexity.String(),
		Avoid:      canonicalSet(a.Avoid),
		Favorite:   strings.ToLower(a.FavoriteMovie),
	})
	if err != nil {
		// strings and string slices always encode
		panic("models: encode answers fingerprint: " + err.Error())
	}
	return string(data)
}

func canonicalSet(values []string) []string {
	sorted := make([]string, len(values))
	for i, v := range values {
		sorted[i] = strings.ToLower(v)
	}
	sort.Strings(sorted)
	return sorted
}
