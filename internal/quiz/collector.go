// Cinequiz - Movie Recommendation Quiz
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinequiz

// Package quiz turns submitted quiz input into a models.Answers record.
//
// Input arrives either as form values (the HTML page, the terminal quiz
// flags) or as a JSON body (the API). Both are first captured as a Request
// and then normalised:
//
//   - single-choice fields are parsed into their enumerations; an unknown
//     value becomes the Unmapped member and never matches anything
//   - multi-choice fields are trimmed, de-duplicated and stripped of empty
//     entries
//   - the favourite movie is trimmed and lower-cased
//
// Validation is off by default, matching the behaviour of the quiz page.
// A Collector with Strict set rejects unknown choices instead of
// silently ignoring them; the scorer contract is the same either way.
package quiz

import (
	"errors"
	"fmt"
	"io"
	"net/url"
	"strings"

	"github.com/goccy/go-json"

	"github.com/tomtom215/cinequiz/internal/models"
	"github.com/tomtom215/cinequiz/internal/validation"
)

// Form field names.
const (
	FieldGenre         = "genre"
	FieldMood          = "mood"
	FieldDuration      = "duration"
	FieldFocus         = "focus"
	FieldCompany       = "company"
	FieldComplexity    = "complexity"
	FieldAvoid         = "avoid"
	FieldFavoriteMovie = "favorite_movie"
)

// ErrMalformedRequest is returned when a JSON body cannot be decoded.
var ErrMalformedRequest = errors.New("malformed quiz request")

// maxBodyBytes bounds JSON request bodies.
const maxBodyBytes = 64 << 10

// Request is the raw quiz submission.
type Request struct {
	Genres        []string `json:"genre" validate:"max=32,dive,max=64"`
	Mood          string   `json:"mood" validate:"quiz_mood"`
	Duration      string   `json:"duration" validate:"quiz_duration"`
	Focus         string   `json:"focus" validate:"quiz_focus"`
	Company       string   `json:"company" validate:"max=64"`
	Complexity    string   `json:"complexity" validate:"quiz_focus"`
	Avoid         []string `json:"avoid" validate:"max=32,dive,max=64"`
	FavoriteMovie string   `json:"favorite_movie" validate:"max=256"`
}

// FromValues captures a form submission. Single-choice fields take the
// first value; multi-choice fields take every value.
func FromValues(v url.Values) *Request {
	favorite := v.Get(FieldFavoriteMovie)
	if favorite == "" {
		favorite = v.Get("favorite-movie")
	}

	return &Request{
		Genres:        v[FieldGenre],
		Mood:          v.Get(FieldMood),
		Duration:      v.Get(FieldDuration),
		Focus:         v.Get(FieldFocus),
		Company:       v.Get(FieldCompany),
		Complexity:    v.Get(FieldComplexity),
		Avoid:         v[FieldAvoid],
		FavoriteMovie: favorite,
	}
}

// DecodeJSON reads a JSON Request from r.
func DecodeJSON(r io.Reader) (*Request, error) {
	var req Request
	dec := json.NewDecoder(io.LimitReader(r, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedRequest, err)
	}
	return &req, nil
}

// Answers normalises the request. It never fails.
func (r *Request) Answers() models.Answers {
	return models.Answers{
		Genres:        normaliseSet(r.Genres),
		Mood:          models.ParseMood(r.Mood),
		Duration:      models.ParseDuration(r.Duration),
		Focus:         models.ParseFocus(r.Focus),
		Company:       models.ParseCompany(r.Company),
		Complexity:    models.ParseFocus(r.Complexity),
		Avoid:         normaliseSet(r.Avoid),
		FavoriteMovie: strings.ToLower(strings.TrimSpace(r.FavoriteMovie)),
	}
}

// normaliseSet trims, drops empty entries and removes case-insensitive
// duplicates, keeping first-seen order.
func normaliseSet(values []string) []string {
	if len(values) == 0 {
		return nil
	}
	seen := make(map[string]struct{}, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		key := strings.ToLower(v)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, v)
	}
	return out
}

// Collector converts requests into answers.
type Collector struct {
	// Strict enables validation of every field before normalising.
	Strict bool
}

// NewCollector creates a collector.
func NewCollector(strict bool) *Collector {
	return &Collector{Strict: strict}
}

// Collect validates (when strict) and normalises req. A validation failure
// is returned as *validation.RequestValidationError.
func (c *Collector) Collect(req *Request) (models.Answers, error) {
	if req == nil {
		req = &Request{}
	}
	if c.Strict {
		if verr := validation.ValidateStruct(req); verr != nil {
			return models.Answers{}, verr
		}
	}
	return req.Answers(), nil
}
