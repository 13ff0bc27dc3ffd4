// Cinequiz - Movie Recommendation Quiz
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinequiz

package api

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"

	"github.com/tomtom215/cinequiz/internal/logging"
	"github.com/tomtom215/cinequiz/internal/present"
	"github.com/tomtom215/cinequiz/internal/quiz"
	"github.com/tomtom215/cinequiz/internal/recommend"
	"github.com/tomtom215/cinequiz/internal/validation"
)

// QuizPage handles GET /
func (h *Handler) QuizPage(w http.ResponseWriter, r *http.Request) {
	h.writeHTML(w, r, http.StatusOK, h.renderer.RenderQuiz)
}

// SubmitQuiz handles POST /recommend.
// The page is rendered again with the answers kept and the results below.
func (h *Handler) SubmitQuiz(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxFormBytes)
	if err := r.ParseForm(); err != nil {
		h.writeHTML(w, r, http.StatusBadRequest, func(w io.Writer) error {
			return h.renderer.RenderError(w, nil, "Form okunamadı.")
		})
		return
	}
	selected := r.PostForm

	answers, err := h.collector.Collect(quiz.FromValues(selected))
	if err != nil {
		msg := err.Error()
		var verr *validation.RequestValidationError
		if errors.As(err, &verr) {
			msg = verr.ToAPIError().Message
		}
		h.writeHTML(w, r, http.StatusBadRequest, func(w io.Writer) error {
			return h.renderer.RenderError(w, selected, msg)
		})
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	resp, err := h.engine.Recommend(ctx, recommend.Request{
		Answers:   answers,
		RequestID: logging.RequestIDFromContext(r.Context()),
	})
	if err != nil {
		status, msg := http.StatusInternalServerError, present.MsgCatalogUnavailable
		if !errors.Is(err, recommend.ErrCatalogUnavailable) {
			logging.Ctx(r.Context()).Error().Err(err).Msg("Recommendation failed")
		} else {
			status = http.StatusServiceUnavailable
		}
		h.writeHTML(w, r, status, func(w io.Writer) error {
			return h.renderer.RenderError(w, selected, msg)
		})
		return
	}

	h.writeHTML(w, r, http.StatusOK, func(w io.Writer) error {
		return h.renderer.RenderResults(w, selected, resp.Items)
	})
}

// writeHTML renders into a buffer so a template failure can still become a
// clean 500.
func (h *Handler) writeHTML(w http.ResponseWriter, r *http.Request, status int, render func(io.Writer) error) {
	var buf bytes.Buffer
	if err := render(&buf); err != nil {
		logging.Ctx(r.Context()).Error().Err(err).Msg("Failed to render page")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		logging.Ctx(r.Context()).Debug().Err(err).Msg("Client went away while writing page")
	}
}
