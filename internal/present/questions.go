// Cinequiz - Movie Recommendation Quiz
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinequiz

package present

import (
	"github.com/tomtom215/cinequiz/internal/models"
	"github.com/tomtom215/cinequiz/internal/quiz"
)

// Option is one selectable answer.
type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// Question is one quiz field.
type Question struct {
	Field string `json:"field"`
	Title string `json:"title"`

	// Multi marks checkbox fields. Single-choice fields render as radios.
	Multi bool `json:"multi"`

	// Options is empty for free-text fields.
	Options []Option `json:"options,omitempty"`
}

// InputType returns the HTML input type for the question.
func (q Question) InputType() string {
	switch {
	case len(q.Options) == 0:
		return "text"
	case q.Multi:
		return "checkbox"
	default:
		return "radio"
	}
}

var genreOptions = []Option{
	{"action", "Aksiyon"},
	{"adventure", "Macera"},
	{"animation", "Animasyon"},
	{"comedy", "Komedi"},
	{"crime", "Suç"},
	{"drama", "Dram"},
	{"fantasy", "Fantastik"},
	{"horror", "Korku"},
	{"mystery", "Gizem"},
	{"romance", "Romantik"},
	{"sci-fi", "Bilim Kurgu"},
	{"thriller", "Gerilim"},
}

var moodLabels = map[models.Mood]string{
	models.MoodHappy:      "Mutlu, gülmek istiyorum",
	models.MoodThoughtful: "Düşünceli",
	models.MoodSad:        "Hüzünlü",
	models.MoodExcited:    "Heyecanlı",
	models.MoodCalm:       "Sakin ve romantik",
	models.MoodThrilling:  "Gerilim arıyorum",
}

var durationLabels = map[models.Duration]string{
	models.DurationShort:    "Kısa (90 dakikadan az)",
	models.DurationMedium:   "Orta (90-110 dakika)",
	models.DurationLong:     "Uzun (111-135 dakika)",
	models.DurationVeryLong: "Çok uzun (135 dakikadan fazla)",
	models.DurationAny:      "Fark etmez",
}

var focusLabels = map[models.Focus]string{
	models.FocusCharacter:   "Karakterler ve ilişkiler",
	models.FocusAction:      "Aksiyon sahneleri",
	models.FocusBalanced:    "Dengeli bir macera",
	models.FocusMindBending: "Zihin bükücü bir kurgu",
	models.FocusEmotional:   "Duygusal derinlik",
	models.FocusLight:       "Hafif ve eğlenceli",
}

var companyOptions = []Option{
	{"alone", "Yalnız"},
	{"partner", "Partnerimle"},
	{"friends", "Arkadaşlarımla"},
	{models.CompanyFamily.String(), "Ailemle"},
	{models.CompanyChildren.String(), "Çocuklarla"},
}

// Questions returns the quiz in display order.
func Questions() []Question {
	moods := make([]Option, 0, len(moodLabels))
	for _, m := range models.MoodValues() {
		moods = append(moods, Option{m.String(), moodLabels[m]})
	}
	durations := make([]Option, 0, len(durationLabels))
	for _, d := range models.DurationValues() {
		durations = append(durations, Option{d.String(), durationLabels[d]})
	}
	focuses := make([]Option, 0, len(focusLabels))
	for _, f := range models.FocusValues() {
		focuses = append(focuses, Option{f.String(), focusLabels[f]})
	}
	avoid := append([]Option{{models.AvoidNone, "Hiçbiri"}}, genreOptions...)

	return []Question{
		{Field: quiz.FieldGenre, Title: "Hangi türleri seversiniz?", Multi: true, Options: genreOptions},
		{Field: quiz.FieldMood, Title: "Bu akşam nasıl hissediyorsunuz?", Options: moods},
		{Field: quiz.FieldDuration, Title: "Ne kadar uzun bir film istersiniz?", Options: durations},
		{Field: quiz.FieldFocus, Title: "Bir filmde en çok neye dikkat edersiniz?", Options: focuses},
		{Field: quiz.FieldCompany, Title: "Filmi kiminle izleyeceksiniz?", Options: companyOptions},
		{Field: quiz.FieldComplexity, Title: "Nasıl bir hikaye tercih edersiniz?", Options: focuses},
		{Field: quiz.FieldAvoid, Title: "Kaçınmak istediğiniz türler var mı?", Multi: true, Options: avoid},
		{Field: quiz.FieldFavoriteMovie, Title: "En sevdiğiniz film hangisi?"},
	}
}
