// Cinequiz - Movie Recommendation Quiz
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinequiz

package recommend

import (
	"sort"
	"strings"

	"github.com/tomtom215/cinequiz/internal/catalog"
	"github.com/tomtom215/cinequiz/internal/models"
)

// Score weights.
const (
	GenreMatchBonus      = 40
	MoodMatchBonus       = 35
	DurationMatchBonus   = 20
	FocusMatchBonus      = 25
	ComplexityMatchBonus = 25
	YoungAudiencePenalty = 100
	YoungAudienceBonus   = 40
	VetoScore            = -1000
	SimilarMovieBonus    = 200
)

// DefaultTopN is the number of recommendations shown by the quiz.
const DefaultTopN = 3

// Genres penalised and rewarded when the company is family or children.
var (
	youngAudienceAvoid  = []string{"horror", "thriller"}
	youngAudiencePrefer = []string{"animation", "family"}
)

// MoodGenre returns the genre a mood maps to. ok is false for unset and
// unrecognised moods.
func MoodGenre(m models.Mood) (genre string, ok bool) {
	switch m {
	case models.MoodHappy:
		return "comedy", true
	case models.MoodThoughtful, models.MoodSad:
		return "drama", true
	case models.MoodExcited:
		return "action", true
	case models.MoodCalm:
		return "romance", true
	case models.MoodThrilling:
		return "thriller", true
	default:
		return "", false
	}
}

// FocusGenre returns the genre a focus (or complexity) answer maps to.
func FocusGenre(f models.Focus) (genre string, ok bool) {
	switch f {
	case models.FocusCharacter, models.FocusEmotional:
		return "drama", true
	case models.FocusAction:
		return "action", true
	case models.FocusBalanced:
		return "adventure", true
	case models.FocusMindBending:
		return "sci-fi", true
	case models.FocusLight:
		return "comedy", true
	default:
		return "", false
	}
}

// DurationRange returns the inclusive runtime bounds in minutes for a
// duration bucket. "any", unset and unrecognised durations have no range.
func DurationRange(d models.Duration) (minMinutes, maxMinutes int, ok bool) {
	switch d {
	case models.DurationShort:
		return 0, 89, true
	case models.DurationMedium:
		return 90, 110, true
	case models.DurationLong:
		return 111, 135, true
	case models.DurationVeryLong:
		return 136, 500, true
	default:
		return 0, 0, false
	}
}

// Scoring is the outcome of scoring one answer set against a catalog.
// Scores is parallel to the catalog.
type Scoring struct {
	Scores []int

	// Vetoed counts movies that matched the avoid list.
	Vetoed int
}

// criteria is an answer set resolved into the values the scoring loop
// compares against.
type criteria struct {
	genres        []string
	avoid         []string
	moodGenre     string
	hasMood       bool
	minRuntime    int
	maxRuntime    int
	hasDuration   bool
	focusGenre    string
	hasFocus      bool
	complexGenre  string
	hasComplexity bool
	youngAudience bool
	favorite      string
}

func resolve(a *models.Answers) criteria {
	c := criteria{
		genres:        lowerAll(a.Genres),
		youngAudience: a.Company.IsYoungAudience(),
		favorite:      strings.ToLower(a.FavoriteMovie),
	}
	for _, g := range a.Avoid {
		g = strings.ToLower(g)
		if g == models.AvoidNone {
			continue
		}
		c.avoid = append(c.avoid, g)
	}
	c.moodGenre, c.hasMood = MoodGenre(a.Mood)
	c.minRuntime, c.maxRuntime, c.hasDuration = DurationRange(a.Duration)
	c.focusGenre, c.hasFocus = FocusGenre(a.Focus)
	c.complexGenre, c.hasComplexity = FocusGenre(a.Complexity)
	return c
}

func lowerAll(values []string) []string {
	if len(values) == 0 {
		return nil
	}
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = strings.ToLower(v)
	}
	return out
}

// scoreMovie computes the pre-favourite score for one movie and reports
// whether the avoid list vetoed it.
func (c *criteria) scoreMovie(m *models.Movie) (score int, vetoed bool) {
	genre := m.LowerGenre()

	for _, g := range c.genres {
		if strings.Contains(genre, g) {
			score += GenreMatchBonus
		}
	}

	if c.hasMood && strings.Contains(genre, c.moodGenre) {
		score += MoodMatchBonus
	}

	if c.hasDuration && m.HasRuntime() && m.Runtime >= c.minRuntime && m.Runtime <= c.maxRuntime {
		score += DurationMatchBonus
	}

	if c.hasFocus && strings.Contains(genre, c.focusGenre) {
		score += FocusMatchBonus
	}
	if c.hasComplexity && strings.Contains(genre, c.complexGenre) {
		score += ComplexityMatchBonus
	}

	if c.youngAudience {
		for _, g := range youngAudienceAvoid {
			if strings.Contains(genre, g) {
				score -= YoungAudiencePenalty
			}
		}
		for _, g := range youngAudiencePrefer {
			if strings.Contains(genre, g) {
				score += YoungAudienceBonus
			}
		}
	}

	for _, g := range c.avoid {
		if strings.Contains(genre, g) {
			return VetoScore, true
		}
	}

	return score, false
}

// Evaluate scores every movie in cat against a. The catalog is not modified
// and every call starts from a zeroed table.
func Evaluate(cat *catalog.Catalog, a *models.Answers) *Scoring {
	crit := resolve(a)
	s := &Scoring{Scores: make([]int, cat.Len())}

	for i := range s.Scores {
		score, vetoed := crit.scoreMovie(cat.At(i))
		s.Scores[i] = score
		if vetoed {
			s.Vetoed++
		}
	}

	applySimilarBonus(cat, crit.favorite, s.Scores)
	return s
}

// applySimilarBonus adds SimilarMovieBonus to every catalog movie named in
// the favourite's similar list. A title listed twice earns the bonus twice.
func applySimilarBonus(cat *catalog.Catalog, favorite string, scores []int) {
	if favorite == "" {
		return
	}
	fav := cat.IndexByLowerTitle(favorite)
	if fav < 0 {
		return
	}
	for _, title := range cat.At(fav).SimilarMovies {
		if j := cat.IndexByTitle(title); j >= 0 {
			scores[j] += SimilarMovieBonus
		}
	}
}

// Score returns the final score of every movie in catalog order.
func Score(cat *catalog.Catalog, a *models.Answers) []int {
	return Evaluate(cat, a).Scores
}

// Top returns the limit highest-scoring movies, highest first. Ties keep
// catalog order. A non-positive limit means DefaultTopN.
func (s *Scoring) Top(cat *catalog.Catalog, limit int) []models.Recommendation {
	if limit <= 0 {
		limit = DefaultTopN
	}

	order := make([]int, len(s.Scores))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(x, y int) bool {
		return s.Scores[order[x]] > s.Scores[order[y]]
	})

	n := min(limit, len(order))
	out := make([]models.Recommendation, n)
	for rank := 0; rank < n; rank++ {
		idx := order[rank]
		movie := *cat.At(idx)
		if movie.SimilarMovies != nil {
			movie.SimilarMovies = append([]string(nil), movie.SimilarMovies...)
		}
		out[rank] = models.Recommendation{
			Movie: movie,
			Score: s.Scores[idx],
			Rank:  rank + 1,
		}
	}
	return out
}

// Rank scores cat against a and returns the top limit recommendations.
func Rank(cat *catalog.Catalog, a *models.Answers, limit int) []models.Recommendation {
	return Evaluate(cat, a).Top(cat, limit)
}
