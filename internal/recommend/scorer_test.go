// Cinequiz - Movie Recommendation Quiz
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinequiz

package recommend

import (
	"reflect"
	"testing"

	"github.com/tomtom215/cinequiz/internal/catalog"
	"github.com/tomtom215/cinequiz/internal/models"
)

func mustCatalog(t *testing.T, movies ...models.Movie) *catalog.Catalog {
	t.Helper()

	c, err := catalog.New(movies)
	if err != nil {
		t.Fatalf("catalog.New() error = %v", err)
	}
	return c
}

func titles(recs []models.Recommendation) []string {
	out := make([]string, len(recs))
	for i, r := range recs {
		out[i] = r.Movie.Title
	}
	return out
}

func TestMappingsAreTotal(t *testing.T) {
	t.Parallel()

	for _, m := range models.MoodValues() {
		if _, ok := MoodGenre(m); !ok {
			t.Errorf("MoodGenre(%v) has no genre", m)
		}
	}
	for _, m := range []models.Mood{models.MoodUnset, models.MoodUnmapped, models.Mood(99)} {
		if g, ok := MoodGenre(m); ok || g != "" {
			t.Errorf("MoodGenre(%v) = %q, %v; want no match", m, g, ok)
		}
	}

	for _, f := range models.FocusValues() {
		if _, ok := FocusGenre(f); !ok {
			t.Errorf("FocusGenre(%v) has no genre", f)
		}
	}
	if _, ok := FocusGenre(models.FocusUnmapped); ok {
		t.Error("FocusGenre(unmapped) should not match")
	}

	for _, d := range []models.Duration{models.DurationShort, models.DurationMedium, models.DurationLong, models.DurationVeryLong} {
		lo, hi, ok := DurationRange(d)
		if !ok || lo > hi {
			t.Errorf("DurationRange(%v) = %d, %d, %v", d, lo, hi, ok)
		}
	}
	for _, d := range []models.Duration{models.DurationUnset, models.DurationAny, models.DurationUnmapped} {
		if _, _, ok := DurationRange(d); ok {
			t.Errorf("DurationRange(%v) should have no range", d)
		}
	}
}

func TestScore_Rules(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		movie   models.Movie
		answers models.Answers
		want    int
	}{
		{
			name:    "no answers",
			movie:   models.Movie{Title: "X", Genre: "Drama", Runtime: 100},
			answers: models.Answers{},
			want:    0,
		},
		{
			name:    "two genre matches are additive",
			movie:   models.Movie{Title: "X", Genre: "Action/Comedy"},
			answers: models.Answers{Genres: []string{"action", "comedy"}},
			want:    80,
		},
		{
			name:    "genre match is case-insensitive substring",
			movie:   models.Movie{Title: "X", Genre: "Romantic COMEDY"},
			answers: models.Answers{Genres: []string{"Comedy"}},
			want:    40,
		},
		{
			name:    "mood",
			movie:   models.Movie{Title: "X", Genre: "Drama"},
			answers: models.Answers{Mood: models.MoodSad},
			want:    35,
		},
		{
			name:    "unmapped mood never fires",
			movie:   models.Movie{Title: "X", Genre: "Drama"},
			answers: models.Answers{Mood: models.MoodUnmapped},
			want:    0,
		},
		{
			name:    "duration inclusive lower bound",
			movie:   models.Movie{Title: "X", Runtime: 90},
			answers: models.Answers{Duration: models.DurationMedium},
			want:    20,
		},
		{
			name:    "duration inclusive upper bound",
			movie:   models.Movie{Title: "X", Runtime: 135},
			answers: models.Answers{Duration: models.DurationLong},
			want:    20,
		},
		{
			name:    "duration outside range",
			movie:   models.Movie{Title: "X", Runtime: 136},
			answers: models.Answers{Duration: models.DurationLong},
			want:    0,
		},
		{
			name:    "missing runtime never matches short",
			movie:   models.Movie{Title: "X"},
			answers: models.Answers{Duration: models.DurationShort},
			want:    0,
		},
		{
			name:    "any duration",
			movie:   models.Movie{Title: "X", Runtime: 100},
			answers: models.Answers{Duration: models.DurationAny},
			want:    0,
		},
		{
			name:    "focus and complexity fire independently",
			movie:   models.Movie{Title: "X", Genre: "Drama"},
			answers: models.Answers{Focus: models.FocusCharacter, Complexity: models.FocusEmotional},
			want:    50,
		},
		{
			name:    "mind bending maps to sci-fi",
			movie:   models.Movie{Title: "X", Genre: "Action/Sci-Fi"},
			answers: models.Answers{Complexity: models.FocusMindBending},
			want:    25,
		},
		{
			name:    "family penalises horror",
			movie:   models.Movie{Title: "X", Genre: "Horror"},
			answers: models.Answers{Company: models.CompanyFamily},
			want:    -100,
		},
		{
			name:    "children reward animation",
			movie:   models.Movie{Title: "X", Genre: "Animation"},
			answers: models.Answers{Company: models.CompanyChildren},
			want:    40,
		},
		{
			name:    "family horror animation nets -60",
			movie:   models.Movie{Title: "X", Genre: "Horror Animation"},
			answers: models.Answers{Company: models.CompanyFamily},
			want:    -60,
		},
		{
			name:    "horror and thriller penalised separately",
			movie:   models.Movie{Title: "X", Genre: "Horror/Thriller"},
			answers: models.Answers{Company: models.CompanyFamily},
			want:    -200,
		},
		{
			name:    "animation and family rewarded separately",
			movie:   models.Movie{Title: "X", Genre: "Animation/Family"},
			answers: models.Answers{Company: models.CompanyChildren},
			want:    80,
		},
		{
			name:    "other company has no effect",
			movie:   models.Movie{Title: "X", Genre: "Horror"},
			answers: models.Answers{Company: models.CompanyOther},
			want:    0,
		},
		{
			name:  "veto replaces accumulated score",
			movie: models.Movie{Title: "X", Genre: "Romantic Comedy", Runtime: 100},
			answers: models.Answers{
				Genres:   []string{"romantic", "comedy"},
				Mood:     models.MoodHappy,
				Duration: models.DurationMedium,
				Avoid:    []string{"comedy"},
			},
			want: VetoScore,
		},
		{
			name:    "veto replaces negative score",
			movie:   models.Movie{Title: "X", Genre: "Horror/Thriller"},
			answers: models.Answers{Company: models.CompanyFamily, Avoid: []string{"horror", "thriller"}},
			want:    VetoScore,
		},
		{
			name:    "none sentinel is skipped",
			movie:   models.Movie{Title: "X", Genre: "None Of The Above"},
			answers: models.Answers{Avoid: []string{"none"}},
			want:    0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			c := mustCatalog(t, tt.movie)
			got := Score(c, &tt.answers)
			if got[0] != tt.want {
				t.Errorf("Score() = %d, want %d", got[0], tt.want)
			}
		})
	}
}

func TestRank_GenreAndDurationScenario(t *testing.T) {
	t.Parallel()

	c := mustCatalog(t,
		models.Movie{Title: "A", Genre: "Action", Runtime: 100},
		models.Movie{Title: "B", Genre: "Comedy", Runtime: 95},
	)
	answers := models.Answers{Genres: []string{"action"}, Duration: models.DurationMedium}

	// B runs 95 minutes, inside the medium bucket, so it earns the duration bonus.
	if got := Score(c, &answers); !reflect.DeepEqual(got, []int{60, 20}) {
		t.Errorf("Score() = %v, want [60 20]", got)
	}

	recs := Rank(c, &answers, DefaultTopN)
	if got := titles(recs); !reflect.DeepEqual(got, []string{"A", "B"}) {
		t.Errorf("Rank() = %v, want [A B]", got)
	}
	if recs[0].Rank != 1 || recs[1].Rank != 2 {
		t.Errorf("ranks = %d, %d", recs[0].Rank, recs[1].Rank)
	}
}

func TestRank_GenreOnlyScenario(t *testing.T) {
	t.Parallel()

	c := mustCatalog(t,
		models.Movie{Title: "A", Genre: "Action", Runtime: 100},
		models.Movie{Title: "B", Genre: "Comedy", Runtime: 80},
	)
	answers := models.Answers{Genres: []string{"action"}, Duration: models.DurationMedium}

	if got := Score(c, &answers); !reflect.DeepEqual(got, []int{60, 0}) {
		t.Errorf("Score() = %v, want [60 0]", got)
	}
}

func TestScore_SimilarMovieBonus(t *testing.T) {
	t.Parallel()

	t.Run("similar movie gains bonus", func(t *testing.T) {
		t.Parallel()

		c := mustCatalog(t,
			models.Movie{Title: "A", Genre: "Action", SimilarMovies: []string{"B"}},
			models.Movie{Title: "B", Genre: "Comedy"},
		)
		got := Score(c, &models.Answers{FavoriteMovie: "a"})
		if !reflect.DeepEqual(got, []int{0, SimilarMovieBonus}) {
			t.Errorf("Score() = %v", got)
		}
	})

	t.Run("applies on top of veto", func(t *testing.T) {
		t.Parallel()

		c := mustCatalog(t,
			models.Movie{Title: "A", Genre: "Action", SimilarMovies: []string{"C"}},
			models.Movie{Title: "B", Genre: "Comedy"},
			models.Movie{Title: "C", Genre: "Comedy"},
		)
		answers := models.Answers{FavoriteMovie: "a", Avoid: []string{"comedy"}}
		got := Score(c, &answers)
		if !reflect.DeepEqual(got, []int{0, VetoScore, VetoScore + SimilarMovieBonus}) {
			t.Errorf("Score() = %v", got)
		}
		if got := titles(Rank(c, &answers, 3)); !reflect.DeepEqual(got, []string{"A", "C", "B"}) {
			t.Errorf("Rank() = %v, want [A C B]", got)
		}
	})

	t.Run("duplicate similar entry counts twice", func(t *testing.T) {
		t.Parallel()

		c := mustCatalog(t,
			models.Movie{Title: "A", SimilarMovies: []string{"B", "B"}},
			models.Movie{Title: "B"},
		)
		if got := Score(c, &models.Answers{FavoriteMovie: "a"})[1]; got != 2*SimilarMovieBonus {
			t.Errorf("Score(B) = %d, want %d", got, 2*SimilarMovieBonus)
		}
	})

	t.Run("similar titles match exactly", func(t *testing.T) {
		t.Parallel()

		c := mustCatalog(t,
			models.Movie{Title: "A", SimilarMovies: []string{"b", "Missing"}},
			models.Movie{Title: "B"},
		)
		if got := Score(c, &models.Answers{FavoriteMovie: "a"}); !reflect.DeepEqual(got, []int{0, 0}) {
			t.Errorf("Score() = %v, want no bonus", got)
		}
	})

	t.Run("favourite matched case-insensitively", func(t *testing.T) {
		t.Parallel()

		c := mustCatalog(t,
			models.Movie{Title: "The Matrix", SimilarMovies: []string{"Inception"}},
			models.Movie{Title: "Inception"},
		)
		if got := Score(c, &models.Answers{FavoriteMovie: "THE MATRIX"})[1]; got != SimilarMovieBonus {
			t.Errorf("Score(Inception) = %d", got)
		}
	})

	t.Run("unknown favourite", func(t *testing.T) {
		t.Parallel()

		c := mustCatalog(t, models.Movie{Title: "A", SimilarMovies: []string{"A"}})
		if got := Score(c, &models.Answers{FavoriteMovie: "zzz"})[0]; got != 0 {
			t.Errorf("Score() = %d, want 0", got)
		}
	})

	t.Run("duplicate titles resolve to first occurrence", func(t *testing.T) {
		t.Parallel()

		c := mustCatalog(t,
			models.Movie{Title: "A", SimilarMovies: []string{"B"}},
			models.Movie{Title: "B"},
			models.Movie{Title: "B"},
		)
		if got := Score(c, &models.Answers{FavoriteMovie: "a"}); !reflect.DeepEqual(got, []int{0, SimilarMovieBonus, 0}) {
			t.Errorf("Score() = %v", got)
		}
	})
}

func TestRank_StableTies(t *testing.T) {
	t.Parallel()

	c := mustCatalog(t,
		models.Movie{Title: "First", Genre: "Drama"},
		models.Movie{Title: "Second", Genre: "Comedy"},
		models.Movie{Title: "Third", Genre: "Drama"},
		models.Movie{Title: "Fourth", Genre: "Drama"},
	)
	got := titles(Rank(c, &models.Answers{Genres: []string{"drama"}}, 4))
	want := []string{"First", "Third", "Fourth", "Second"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Rank() = %v, want %v", got, want)
	}
}

func TestRank_Length(t *testing.T) {
	t.Parallel()

	movies := []models.Movie{{Title: "A"}, {Title: "B"}, {Title: "C"}, {Title: "D"}, {Title: "E"}}
	for size := 0; size <= len(movies); size++ {
		c := mustCatalog(t, movies[:size]...)
		if got := len(Rank(c, &models.Answers{}, DefaultTopN)); got != min(DefaultTopN, size) {
			t.Errorf("catalog of %d: len = %d, want %d", size, got, min(DefaultTopN, size))
		}
	}

	c := mustCatalog(t, movies...)
	if got := len(Rank(c, &models.Answers{}, 0)); got != DefaultTopN {
		t.Errorf("limit 0 should mean DefaultTopN, got %d", got)
	}
}

func TestRank_AllVetoed(t *testing.T) {
	t.Parallel()

	c := mustCatalog(t,
		models.Movie{Title: "A", Genre: "Horror", SimilarMovies: []string{"D"}},
		models.Movie{Title: "B", Genre: "Horror/Comedy"},
		models.Movie{Title: "C", Genre: "Comedy Horror"},
		models.Movie{Title: "D", Genre: "horror"},
		models.Movie{Title: "E", Genre: "Drama/Horror"},
	)

	t.Run("ties keep catalog order", func(t *testing.T) {
		t.Parallel()

		recs := Rank(c, &models.Answers{Genres: []string{"horror"}, Avoid: []string{"horror"}}, DefaultTopN)
		if got := titles(recs); !reflect.DeepEqual(got, []string{"A", "B", "C"}) {
			t.Errorf("Rank() = %v, want [A B C]", got)
		}
		for _, r := range recs {
			if r.Score != VetoScore {
				t.Errorf("%s score = %d, want %d", r.Movie.Title, r.Score, VetoScore)
			}
		}
	})

	t.Run("similar bonus lifts a vetoed movie", func(t *testing.T) {
		t.Parallel()

		recs := Rank(c, &models.Answers{Avoid: []string{"HORROR"}, FavoriteMovie: "a"}, DefaultTopN)
		if got := titles(recs); !reflect.DeepEqual(got, []string{"D", "A", "B"}) {
			t.Errorf("Rank() = %v, want [D A B]", got)
		}
		want := []int{VetoScore + SimilarMovieBonus, VetoScore, VetoScore}
		for i, r := range recs {
			if r.Score != want[i] {
				t.Errorf("%s score = %d, want %d", r.Movie.Title, r.Score, want[i])
			}
		}
	})

	t.Run("none sentinel ignores case", func(t *testing.T) {
		t.Parallel()

		recs := Rank(c, &models.Answers{Avoid: []string{"None"}}, DefaultTopN)
		for _, r := range recs {
			if r.Score != 0 {
				t.Errorf("%s score = %d, want 0", r.Movie.Title, r.Score)
			}
		}
	})
}

func TestScore_FreshTablePerRun(t *testing.T) {
	t.Parallel()

	c := mustCatalog(t,
		models.Movie{Title: "A", Genre: "Action", SimilarMovies: []string{"B"}},
		models.Movie{Title: "B", Genre: "Comedy"},
	)
	first := models.Answers{Genres: []string{"action", "comedy"}, FavoriteMovie: "a"}
	for i := 0; i < 3; i++ {
		if got := Score(c, &first); !reflect.DeepEqual(got, []int{40, 240}) {
			t.Fatalf("run %d: Score() = %v", i, got)
		}
	}
	if got := Score(c, &models.Answers{}); !reflect.DeepEqual(got, []int{0, 0}) {
		t.Errorf("scores leaked between runs: %v", got)
	}
}

func TestEvaluate_VetoCount(t *testing.T) {
	t.Parallel()

	c := mustCatalog(t,
		models.Movie{Title: "A", Genre: "Horror"},
		models.Movie{Title: "B", Genre: "Comedy Horror"},
		models.Movie{Title: "C", Genre: "Drama"},
	)
	s := Evaluate(c, &models.Answers{Avoid: []string{"none", "HORROR"}})
	if s.Vetoed != 2 {
		t.Errorf("Vetoed = %d, want 2", s.Vetoed)
	}
}

func TestRank_DoesNotShareCatalogSlices(t *testing.T) {
	t.Parallel()

	c := mustCatalog(t, models.Movie{Title: "A", SimilarMovies: []string{"B"}}, models.Movie{Title: "B"})
	recs := Rank(c, &models.Answers{}, 1)
	recs[0].Movie.SimilarMovies[0] = "mutated"

	if c.At(0).SimilarMovies[0] != "B" {
		t.Error("mutating a recommendation changed the catalog")
	}
}
