// Cinequiz - Movie Recommendation Quiz
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinequiz

package dataprep

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"strings"

	_ "github.com/duckdb/duckdb-go/v2"

	"github.com/tomtom215/cinequiz/internal/logging"
)

// record is one cleaned CSV row.
type record struct {
	Title          string
	Genre          string
	Plot           string
	Rating         float64
	Votes          int64
	WeightedRating float64
}

// ingestQuery selects the cleaned, ranked rows. %s is the quoted CSV path.
//
// Rows are ordered by votes, then by position in the file. The weighted
// rating statistics are computed over the kept rows only.
const ingestQuery = `
WITH raw AS (
	SELECT
		row_number() OVER () AS ord,
		"Movie Name" AS title,
		"Genre" AS genre,
		"Plot" AS plot,
		TRY_CAST("Rating" AS DOUBLE) AS rating,
		CAST(trunc(TRY_CAST(replace("Votes", ',', '') AS DOUBLE)) AS BIGINT) AS votes
	FROM read_csv(%s, header = true, all_varchar = true, ignore_errors = true)
	WHERE "Movie Name" IS NOT NULL
		AND "Genre" IS NOT NULL
		AND "Plot" IS NOT NULL
		AND "Rating" IS NOT NULL
		AND "Votes" IS NOT NULL
),
kept AS (
	SELECT * FROM raw
	WHERE rating IS NOT NULL AND votes IS NOT NULL AND votes >= ?
	ORDER BY votes DESC, ord
	LIMIT ?
),
stats AS (
	SELECT avg(rating) AS c, quantile_cont(votes, 0.9) AS m FROM kept
)
SELECT
	k.title,
	k.genre,
	k.plot,
	k.rating,
	k.votes,
	round(k.votes / (k.votes + s.m) * k.rating + s.m / (k.votes + s.m) * s.c, 2) AS weighted
FROM kept k, stats s
ORDER BY k.votes DESC, k.ord`

// quoteLiteral quotes s as a SQL string literal.
func quoteLiteral(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}

// openDuckDB opens a private in-memory database.
func openDuckDB() (*sql.DB, error) {
	conn, err := sql.Open("duckdb", ":memory:?autoinstall_known_extensions=false&autoload_known_extensions=false")
	if err != nil {
		return nil, fmt.Errorf("failed to open duckdb: %w", err)
	}
	return conn, nil
}

// ingest loads and cleans the CSV.
func ingest(ctx context.Context, opts *Options) ([]record, error) {
	if _, err := os.Stat(opts.CSVPath); err != nil {
		return nil, fmt.Errorf("input csv: %w", err)
	}

	conn, err := openDuckDB()
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := conn.Close(); cerr != nil {
			logging.Warn().Err(cerr).Msg("Failed to close duckdb")
		}
	}()

	query := fmt.Sprintf(ingestQuery, quoteLiteral(opts.CSVPath))
	rows, err := conn.QueryContext(ctx, query, opts.MinVotes, opts.Limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query csv: %w", err)
	}
	defer rows.Close()

	records := make([]record, 0, opts.Limit)
	for rows.Next() {
		var r record
		if err := rows.Scan(&r.Title, &r.Genre, &r.Plot, &r.Rating, &r.Votes, &r.WeightedRating); err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}
		records = append(records, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read rows: %w", err)
	}

	if len(records) == 0 {
		return nil, ErrNoRows
	}

	logging.Debug().
		Str("csv", opts.CSVPath).
		Int("rows", len(records)).
		Msg("CSV ingested")

	return records, nil
}
