// Cinequiz - Movie Recommendation Quiz
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinequiz

package dataprep

import (
	"math"
	"regexp"
	"sort"
	"strings"
)

// tokenPattern matches runs of two or more word characters.
var tokenPattern = regexp.MustCompile(`[\p{L}\p{M}\p{N}_]{2,}`)

// tokenize lower-cases text and splits it into tokens, dropping stop words.
func tokenize(text string) []string {
	raw := tokenPattern.FindAllString(strings.ToLower(text), -1)
	out := raw[:0]
	for _, tok := range raw {
		if _, stop := englishStopWords[tok]; stop {
			continue
		}
		out = append(out, tok)
	}
	return out
}

// weight is one non-zero component of a sparse vector.
type weight struct {
	term  int
	value float64
}

// vector is a sparse L2-normalised TF-IDF vector sorted by term.
type vector []weight

// dot returns the inner product of two sparse vectors. Both are unit
// length, so this is their cosine similarity.
func (v vector) dot(o vector) float64 {
	var sum float64
	i, j := 0, 0
	for i < len(v) && j < len(o) {
		switch {
		case v[i].term == o[j].term:
			sum += v[i].value * o[j].value
			i++
			j++
		case v[i].term < o[j].term:
			i++
		default:
			j++
		}
	}
	return sum
}

// vocabulary maps kept terms to feature indices and their idf.
type vocabulary struct {
	index map[string]int
	idf   []float64
}

// buildVocabulary keeps the maxFeatures terms with the highest corpus
// frequency (ties broken alphabetically) and computes the smoothed idf
// ln((1+n)/(1+df)) + 1 for each.
func buildVocabulary(docs [][]string, maxFeatures int) *vocabulary {
	total := make(map[string]int)
	df := make(map[string]int)
	for _, doc := range docs {
		seen := make(map[string]struct{}, len(doc))
		for _, tok := range doc {
			total[tok]++
			if _, ok := seen[tok]; !ok {
				seen[tok] = struct{}{}
				df[tok]++
			}
		}
	}

	terms := make([]string, 0, len(total))
	for t := range total {
		terms = append(terms, t)
	}
	sort.Slice(terms, func(a, b int) bool {
		if total[terms[a]] != total[terms[b]] {
			return total[terms[a]] > total[terms[b]]
		}
		return terms[a] < terms[b]
	})
	if len(terms) > maxFeatures {
		terms = terms[:maxFeatures]
	}
	// feature order does not affect similarity; sort for stable output
	sort.Strings(terms)

	n := float64(len(docs))
	v := &vocabulary{index: make(map[string]int, len(terms)), idf: make([]float64, len(terms))}
	for i, t := range terms {
		v.index[t] = i
		v.idf[i] = math.Log((1+n)/(1+float64(df[t]))) + 1
	}
	return v
}

// transform returns the normalised TF-IDF vector of one tokenised document.
// A document with no kept terms yields an empty vector.
func (v *vocabulary) transform(doc []string) vector {
	counts := make(map[int]int)
	for _, tok := range doc {
		if idx, ok := v.index[tok]; ok {
			counts[idx]++
		}
	}
	if len(counts) == 0 {
		return nil
	}

	vec := make(vector, 0, len(counts))
	var norm float64
	for idx, c := range counts {
		w := float64(c) * v.idf[idx]
		vec = append(vec, weight{term: idx, value: w})
		norm += w * w
	}
	norm = math.Sqrt(norm)
	for i := range vec {
		vec[i].value /= norm
	}
	sort.Slice(vec, func(a, b int) bool { return vec[a].term < vec[b].term })
	return vec
}

// tfidf vectorises every text.
func tfidf(texts []string, maxFeatures int) []vector {
	docs := make([][]string, len(texts))
	for i, t := range texts {
		docs[i] = tokenize(t)
	}
	vocab := buildVocabulary(docs, maxFeatures)

	vectors := make([]vector, len(docs))
	for i, doc := range docs {
		vectors[i] = vocab.transform(doc)
	}
	return vectors
}
