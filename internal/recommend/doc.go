// Cinequiz - Movie Recommendation Quiz
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinequiz

/*
Package recommend scores every catalog movie against one completed quiz and
returns the best matches.

# Scoring

Each movie starts at zero in a score table created for the request. The
catalog is never written to, so concurrent requests cannot observe each
other's scores. Genre matching is case-insensitive substring containment
against the movie's genre string, which lets "Action/Comedy" match both
"action" and "comedy".

	+40   per selected genre contained in the movie genre
	+35   mood maps to a genre the movie contains
	+20   runtime falls inside the chosen duration bucket
	+25   focus maps to a genre the movie contains
	+25   complexity maps to a genre the movie contains
	-100  horror, and separately thriller, when watching with family or children
	+40   animation, and separately family, when watching with family or children
	-1000 any avoided genre contained in the movie genre (replaces the score)
	+200  per appearance in the favourite movie's similar list

The favourite bonus is applied after every movie has been scored, so a
vetoed movie that is similar to the favourite ends at -800.

Movies are then ordered by score descending with a stable sort, keeping
catalog order for ties, and the first TopN are returned.

# Engine

Engine wraps the scorer with the serving concerns: it waits for the catalog
holder, caches results by answer fingerprint with go-cache, and records
Prometheus metrics.

	engine, err := recommend.NewEngine(recommend.DefaultConfig(), holder, logger)
	resp, err := engine.Recommend(ctx, recommend.Request{Answers: answers})
*/
package recommend
