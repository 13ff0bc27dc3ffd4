// Cinequiz - Movie Recommendation Quiz
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinequiz

package present

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"
	"net/url"

	"github.com/tomtom215/cinequiz/internal/models"
)

//go:embed templates/*.html
var templateFS embed.FS

// PageTitle is the quiz page heading.
const PageTitle = "Film Tavsiye Testi"

// QuizPage is the data rendered by the page template.
type QuizPage struct {
	Title     string
	Action    string
	Questions []Question

	// Selected re-checks the submitted answers.
	Selected url.Values

	// At most one of Result and Error is shown.
	Result *Result
	Error  string
}

// questionView is the per-question template data.
type questionView struct {
	Index    int
	Question Question
	Value    string
	selected map[string]struct{}
}

// IsChecked reports whether value was submitted for the question.
func (q *questionView) IsChecked(value string) bool {
	_, ok := q.selected[value]
	return ok
}

func newQuestionView(i int, q Question, selected url.Values) *questionView {
	values := selected[q.Field]
	v := &questionView{Index: i, Question: q, selected: make(map[string]struct{}, len(values))}
	for _, s := range values {
		v.selected[s] = struct{}{}
	}
	if len(values) > 0 {
		v.Value = values[0]
	}
	return v
}

// HTMLRenderer renders the quiz page.
type HTMLRenderer struct {
	tmpl   *template.Template
	action string
}

// NewHTMLRenderer parses the embedded templates. action is the form target.
func NewHTMLRenderer(action string) (*HTMLRenderer, error) {
	funcMap := template.FuncMap{
		"add":      func(a, b int) int { return a + b },
		"question": newQuestionView,
	}
	tmpl, err := template.New("cinequiz").Funcs(funcMap).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	return &HTMLRenderer{tmpl: tmpl, action: action}, nil
}

func (r *HTMLRenderer) page() *QuizPage {
	return &QuizPage{
		Title:     PageTitle,
		Action:    r.action,
		Questions: Questions(),
	}
}

// Render executes the page template into w. The page is rendered to a
// buffer first so a template error never leaves a half-written response.
func (r *HTMLRenderer) Render(w io.Writer, page *QuizPage) error {
	var buf bytes.Buffer
	if err := r.tmpl.ExecuteTemplate(&buf, "page", page); err != nil {
		return fmt.Errorf("render page: %w", err)
	}
	_, err := buf.WriteTo(w)
	return err
}

// RenderQuiz writes the empty quiz.
func (r *HTMLRenderer) RenderQuiz(w io.Writer) error {
	return r.Render(w, r.page())
}

// RenderResults writes the quiz with the submitted answers checked and the
// recommendation cards, or the no-matches message, below it.
func (r *HTMLRenderer) RenderResults(w io.Writer, selected url.Values, recs []models.Recommendation) error {
	page := r.page()
	page.Selected = selected
	result := NewResult(recs)
	page.Result = &result
	return r.Render(w, page)
}

// RenderError writes the quiz with msg in place of results.
func (r *HTMLRenderer) RenderError(w io.Writer, selected url.Values, msg string) error {
	page := r.page()
	page.Selected = selected
	page.Error = msg
	return r.Render(w, page)
}
