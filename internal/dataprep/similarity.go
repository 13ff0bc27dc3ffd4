// Cinequiz - Movie Recommendation Quiz
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinequiz

package dataprep

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// neighbour is a candidate in a top-k list.
type neighbour struct {
	index int
	score float64
}

// topK keeps the k best neighbours, highest score first. Equal scores keep
// insertion order, so scanning candidates in catalog order breaks ties by
// catalog position.
type topK struct {
	k     int
	items []neighbour
}

func (t *topK) offer(n neighbour) {
	if t.k == 0 {
		return
	}
	if len(t.items) == t.k && n.score <= t.items[len(t.items)-1].score {
		return
	}
	pos := len(t.items)
	for pos > 0 && t.items[pos-1].score < n.score {
		pos--
	}
	if len(t.items) < t.k {
		t.items = append(t.items, neighbour{})
	}
	copy(t.items[pos+1:], t.items[pos:len(t.items)-1])
	t.items[pos] = n
}

// nearest returns, for every vector, the indices of its k most similar
// other vectors. Rows are computed by a pool of at most workers goroutines.
func nearest(ctx context.Context, vectors []vector, k, workers int) ([][]int, error) {
	out := make([][]int, len(vectors))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i := range vectors {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			best := topK{k: min(k, len(vectors)-1), items: make([]neighbour, 0, k)}
			for j := range vectors {
				if j == i {
					continue
				}
				best.offer(neighbour{index: j, score: vectors[i].dot(vectors[j])})
			}
			row := make([]int, len(best.items))
			for n, item := range best.items {
				row[n] = item.index
			}
			out[i] = row
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
