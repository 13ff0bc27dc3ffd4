// Cinequiz - Movie Recommendation Quiz
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinequiz

// Command prepare-catalog builds movies.json (and optionally a badger
// snapshot) from an IMDb-style CSV export.
//
//	prepare-catalog -csv imdb_movies.csv -out movies.json -badger data/catalog
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/tomtom215/cinequiz/internal/catalog"
	"github.com/tomtom215/cinequiz/internal/dataprep"
	"github.com/tomtom215/cinequiz/internal/logging"
	"github.com/tomtom215/cinequiz/internal/models"
)

// config holds the parsed command line.
type config struct {
	Prepare    dataprep.Options
	Out        string
	BadgerPath string
	LogLevel   string
}

func parseFlags(fs *flag.FlagSet, args []string) (*config, error) {
	cfg := config{Prepare: dataprep.DefaultOptions()}

	fs.StringVar(&cfg.Prepare.CSVPath, "csv", "", "Input CSV (columns: Movie Name, Genre, Plot, Rating, Votes)")
	fs.Int64Var(&cfg.Prepare.MinVotes, "min-votes", cfg.Prepare.MinVotes, "Drop titles with fewer votes")
	fs.IntVar(&cfg.Prepare.Limit, "limit", cfg.Prepare.Limit, "Keep at most this many titles, most-voted first")
	fs.IntVar(&cfg.Prepare.Neighbours, "neighbours", cfg.Prepare.Neighbours, "Length of each similar_movies list")
	fs.IntVar(&cfg.Prepare.MaxFeatures, "max-features", cfg.Prepare.MaxFeatures, "TF-IDF vocabulary size")
	fs.IntVar(&cfg.Prepare.Workers, "workers", 0, "Similarity workers (0 = GOMAXPROCS)")
	fs.StringVar(&cfg.Out, "out", "movies.json", "Output JSON path (empty to skip)")
	fs.StringVar(&cfg.BadgerPath, "badger", "", "Also write a badger snapshot to this directory")
	fs.StringVar(&cfg.LogLevel, "log-level", "info", "Log level (debug, info, warn, error)")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if cfg.Out == "" && cfg.BadgerPath == "" {
		return nil, errors.New("nothing to write: set -out and/or -badger")
	}
	if err := cfg.Prepare.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func run(ctx context.Context, cfg *config) error {
	movies, err := dataprep.Prepare(ctx, cfg.Prepare)
	if err != nil {
		return fmt.Errorf("prepare catalog: %w", err)
	}

	if cfg.Out != "" {
		if err := dataprep.WriteJSON(cfg.Out, movies); err != nil {
			return err
		}
		logging.Info().Str("path", cfg.Out).Int("movies", len(movies)).Msg("Wrote catalog JSON")
	}

	if cfg.BadgerPath != "" {
		if err := saveSnapshot(ctx, cfg.BadgerPath, movies); err != nil {
			return err
		}
		logging.Info().Str("path", cfg.BadgerPath).Int("movies", len(movies)).Msg("Wrote catalog snapshot")
	}
	return nil
}

func saveSnapshot(ctx context.Context, path string, movies []models.Movie) (err error) {
	store, err := catalog.OpenStore(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := store.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close catalog store: %w", cerr)
		}
	}()
	return store.Save(ctx, movies)
}

func main() {
	fs := flag.NewFlagSet("prepare-catalog", flag.ExitOnError)
	cfg, err := parseFlags(fs, os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		fs.Usage()
		os.Exit(2)
	}

	logCfg := logging.DefaultConfig()
	logCfg.Level = cfg.LogLevel
	logCfg.Format = "console"
	logging.Init(logCfg)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg); err != nil {
		logging.Error().Err(err).Msg("Catalog preparation failed")
		stop()
		os.Exit(1)
	}
}
