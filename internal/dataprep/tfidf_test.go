// Cinequiz - Movie Recommendation Quiz
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinequiz

package dataprep

import (
	"math"
	"reflect"
	"testing"
)

func TestTokenize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want []string
	}{
		{"The Dark Knight rises", []string{"dark", "knight", "rises"}},
		{"A man, a plan: Panama!", []string{"man", "plan", "panama"}},
		{"x y 42 is ok", []string{"42", "ok"}},
		{"Amélie's café", []string{"amélie", "café"}},
		{"", []string{}},
	}
	for _, tt := range tests {
		got := tokenize(tt.in)
		if len(got) == 0 && len(tt.want) == 0 {
			continue
		}
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("tokenize(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestStopWords(t *testing.T) {
	t.Parallel()

	for _, w := range []string{"the", "and", "yourselves", "amoungst"} {
		if _, ok := englishStopWords[w]; !ok {
			t.Errorf("%q should be a stop word", w)
		}
	}
	if _, ok := englishStopWords["space"]; ok {
		t.Error("space should not be a stop word")
	}
}

func TestBuildVocabulary(t *testing.T) {
	t.Parallel()

	docs := [][]string{
		{"space", "space", "war"},
		{"space", "love"},
		{"love", "war", "zebra"},
	}

	t.Run("idf is smoothed", func(t *testing.T) {
		t.Parallel()

		v := buildVocabulary(docs, 10)
		if len(v.idf) != 4 {
			t.Fatalf("vocabulary size = %d, want 4", len(v.idf))
		}
		// "zebra" appears in one of three documents
		want := math.Log(4.0/2.0) + 1
		if got := v.idf[v.index["zebra"]]; math.Abs(got-want) > 1e-12 {
			t.Errorf("idf(zebra) = %v, want %v", got, want)
		}
		// "space" appears in two of three documents
		want = math.Log(4.0/3.0) + 1
		if got := v.idf[v.index["space"]]; math.Abs(got-want) > 1e-12 {
			t.Errorf("idf(space) = %v, want %v", got, want)
		}
	})

	t.Run("max features keeps most frequent", func(t *testing.T) {
		t.Parallel()

		v := buildVocabulary(docs, 2)
		if _, ok := v.index["space"]; !ok {
			t.Error("space (3 occurrences) should be kept")
		}
		// love and war tie on 2; alphabetical order keeps love
		if _, ok := v.index["love"]; !ok {
			t.Error("love should win the tie with war")
		}
		if len(v.index) != 2 {
			t.Errorf("vocabulary size = %d, want 2", len(v.index))
		}
	})
}

func TestTransformIsUnitLength(t *testing.T) {
	t.Parallel()

	vectors := tfidf([]string{
		"Space pilots fight aliens in deep space",
		"A chef cooks pasta",
		"the and of",
	}, 100)

	for i, vec := range vectors[:2] {
		if got := vec.dot(vec); math.Abs(got-1) > 1e-9 {
			t.Errorf("vector %d has squared norm %v, want 1", i, got)
		}
	}
	if len(vectors[2]) != 0 {
		t.Errorf("stop-word-only document should be empty, got %v", vectors[2])
	}
	if got := vectors[0].dot(vectors[1]); got != 0 {
		t.Errorf("disjoint documents have similarity %v, want 0", got)
	}
}
