// Cinequiz - Movie Recommendation Quiz
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinequiz

package present

import (
	"io"

	"github.com/fatih/color"

	"github.com/tomtom215/cinequiz/internal/models"
)

// TextRenderer writes results for a terminal.
type TextRenderer struct {
	w io.Writer

	header *color.Color
	title  *color.Color
	rating *color.Color
	faint  *color.Color
	errMsg *color.Color
}

// NewTextRenderer creates a renderer writing to w. Colour is also disabled
// when w is not a terminal (see color.NoColor).
func NewTextRenderer(w io.Writer, noColor bool) *TextRenderer {
	r := &TextRenderer{
		w:      w,
		header: color.New(color.FgCyan, color.Bold),
		title:  color.New(color.FgWhite, color.Bold),
		rating: color.New(color.FgYellow),
		faint:  color.New(color.Faint),
		errMsg: color.New(color.FgRed),
	}
	if noColor {
		for _, c := range []*color.Color{r.header, r.title, r.rating, r.faint, r.errMsg} {
			c.DisableColor()
		}
	}
	return r
}

// RenderResults writes the cards, or the no-matches message.
func (r *TextRenderer) RenderResults(recs []models.Recommendation) error {
	return r.RenderResult(NewResult(recs))
}

// RenderResult writes an already-built result.
//
//nolint:gocritic // hugeParam: Result is small and read-only
func (r *TextRenderer) RenderResult(res Result) error {
	if res.Empty() {
		return r.RenderError(res.Message)
	}

	if _, err := r.header.Fprintf(r.w, "%s\n\n", res.Header); err != nil {
		return err
	}
	for i, c := range res.Cards {
		if _, err := r.title.Fprintf(r.w, "%d. %s\n", i+1, c.Title); err != nil {
			return err
		}
		if _, err := r.rating.Fprintf(r.w, "   %s\n", c.Rating); err != nil {
			return err
		}
		if _, err := r.faint.Fprintf(r.w, "   %s\n", c.Genre); err != nil {
			return err
		}
		if _, err := io.WriteString(r.w, "   "+c.Description+"\n"); err != nil {
			return err
		}
		if c.Runtime != "" {
			if _, err := r.faint.Fprintf(r.w, "   %s\n", c.Runtime); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(r.w, "\n"); err != nil {
			return err
		}
	}
	return nil
}

// RenderError writes msg as an error line.
func (r *TextRenderer) RenderError(msg string) error {
	_, err := r.errMsg.Fprintln(r.w, msg)
	return err
}
