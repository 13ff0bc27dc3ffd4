// Cinequiz - Movie Recommendation Quiz
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinequiz

package api

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/tomtom215/cinequiz/internal/logging"
	"github.com/tomtom215/cinequiz/internal/present"
	"github.com/tomtom215/cinequiz/internal/quiz"
	"github.com/tomtom215/cinequiz/internal/recommend"
	"github.com/tomtom215/cinequiz/internal/validation"
)

// ScoredTitle is the ranking detail returned next to the cards.
type ScoredTitle struct {
	Rank  int    `json:"rank"`
	Title string `json:"title"`
	Score int    `json:"score"`
}

// RecommendationsResponse is the data payload of POST /api/v1/recommendations.
type RecommendationsResponse struct {
	Result          present.Result             `json:"result"`
	Ranking         []ScoredTitle              `json:"ranking"`
	TotalCandidates int                        `json:"total_candidates"`
	Metadata        recommend.ResponseMetadata `json:"metadata"`
}

// Recommendations handles POST /api/v1/recommendations
//
// The body is a quiz.Request. An optional ?limit=N query parameter overrides
// the configured number of results.
func (h *Handler) Recommendations(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	limit := 0
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		parsed, err := strconv.Atoi(limitStr)
		if err != nil || parsed <= 0 {
			rw.BadRequest("limit must be a positive integer")
			return
		}
		limit = parsed
	}

	req, err := quiz.DecodeJSON(r.Body)
	if err != nil {
		rw.BadRequest(err.Error())
		return
	}

	answers, err := h.collector.Collect(req)
	if err != nil {
		var verr *validation.RequestValidationError
		if errors.As(err, &verr) {
			apiErr := verr.ToAPIError()
			rw.ValidationError(apiErr.Message, apiErr.Details)
			return
		}
		rw.BadRequest(err.Error())
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	resp, err := h.engine.Recommend(ctx, recommend.Request{
		Answers:   answers,
		Limit:     limit,
		RequestID: logging.RequestIDFromContext(r.Context()),
	})
	if err != nil {
		if errors.Is(err, recommend.ErrCatalogUnavailable) {
			rw.ServiceUnavailable(ErrCodeCatalogUnavailable, present.MsgCatalogUnavailable)
			return
		}
		logging.Ctx(r.Context()).Error().Err(err).Msg("Recommendation failed")
		rw.InternalError("Failed to generate recommendations")
		return
	}

	ranking := make([]ScoredTitle, len(resp.Items))
	for i := range resp.Items {
		ranking[i] = ScoredTitle{
			Rank:  resp.Items[i].Rank,
			Title: resp.Items[i].Movie.Title,
			Score: resp.Items[i].Score,
		}
	}

	rw.Success(&RecommendationsResponse{
		Result:          present.NewResult(resp.Items),
		Ranking:         ranking,
		TotalCandidates: resp.TotalCandidates,
		Metadata:        resp.Metadata,
	})
}

// CatalogInfo handles GET /api/v1/catalog
func (h *Handler) CatalogInfo(w http.ResponseWriter, r *http.Request) {
	WriteSuccess(w, r, h.catalog.Status())
}

// Questions handles GET /api/v1/questions
// It returns the quiz questions and their options for non-HTML clients.
func (h *Handler) Questions(w http.ResponseWriter, r *http.Request) {
	WriteSuccess(w, r, present.Questions())
}
