// Cinequiz - Movie Recommendation Quiz
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinequiz

// Command quiz answers the movie quiz from the command line and prints the
// recommendations.
//
//	quiz -catalog movies.json -genre sci-fi -mood thoughtful -favorite Inception
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"net/url"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/tomtom215/cinequiz/internal/catalog"
	"github.com/tomtom215/cinequiz/internal/logging"
	"github.com/tomtom215/cinequiz/internal/present"
	"github.com/tomtom215/cinequiz/internal/quiz"
	"github.com/tomtom215/cinequiz/internal/recommend"
)

// options holds the parsed command line.
type options struct {
	CatalogPath string
	CatalogURL  string
	Timeout     time.Duration
	Top         int
	Strict      bool
	NoColor     bool
	LogLevel    string

	Genres     stringList
	Mood       string
	Duration   string
	Focus      string
	Company    string
	Complexity string
	Avoid      stringList
	Favorite   string
}

// stringList is a repeatable flag. Each value may also hold a comma
// separated list.
type stringList []string

func (s *stringList) String() string {
	return strings.Join(*s, ",")
}

func (s *stringList) Set(v string) error {
	for _, part := range strings.Split(v, ",") {
		*s = append(*s, part)
	}
	return nil
}

func parseFlags(fs *flag.FlagSet, args []string) (*options, error) {
	var opts options

	fs.StringVar(&opts.CatalogPath, "catalog", "movies.json", "Path to movies.json")
	fs.StringVar(&opts.CatalogURL, "url", "", "Fetch movies.json from this URL instead of -catalog")
	fs.DurationVar(&opts.Timeout, "timeout", 10*time.Second, "Catalog load timeout")
	fs.IntVar(&opts.Top, "top", recommend.DefaultTopN, "Number of recommendations")
	fs.BoolVar(&opts.Strict, "strict", false, "Reject unrecognised answers")
	fs.BoolVar(&opts.NoColor, "no-color", false, "Disable coloured output")
	fs.StringVar(&opts.LogLevel, "log-level", "warn", "Log level (debug, info, warn, error)")

	fs.Var(&opts.Genres, "genre", "Preferred genre, repeatable: "+choices(quiz.FieldGenre))
	fs.StringVar(&opts.Mood, "mood", "", choices(quiz.FieldMood))
	fs.StringVar(&opts.Duration, "duration", "", choices(quiz.FieldDuration))
	fs.StringVar(&opts.Focus, "focus", "", choices(quiz.FieldFocus))
	fs.StringVar(&opts.Company, "company", "", choices(quiz.FieldCompany))
	fs.StringVar(&opts.Complexity, "complexity", "", choices(quiz.FieldComplexity))
	fs.Var(&opts.Avoid, "avoid", "Genre to avoid, repeatable: "+choices(quiz.FieldAvoid))
	fs.StringVar(&opts.Favorite, "favorite", "", "A favorite movie title from the catalog")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if opts.Top < 1 {
		return nil, fmt.Errorf("-top must be at least 1, got %d", opts.Top)
	}
	return &opts, nil
}

// choices lists the option values of a quiz field for flag usage.
func choices(field string) string {
	for _, q := range present.Questions() {
		if q.Field != field {
			continue
		}
		values := make([]string, len(q.Options))
		for i, o := range q.Options {
			values[i] = o.Value
		}
		return strings.Join(values, ", ")
	}
	return ""
}

// values encodes the answers the way the quiz form submits them.
func (o *options) values() url.Values {
	v := url.Values{}
	v[quiz.FieldGenre] = o.Genres
	v[quiz.FieldAvoid] = o.Avoid
	v.Set(quiz.FieldMood, o.Mood)
	v.Set(quiz.FieldDuration, o.Duration)
	v.Set(quiz.FieldFocus, o.Focus)
	v.Set(quiz.FieldCompany, o.Company)
	v.Set(quiz.FieldComplexity, o.Complexity)
	v.Set(quiz.FieldFavoriteMovie, o.Favorite)
	return v
}

func (o *options) source() catalog.Source {
	if o.CatalogURL != "" {
		return catalog.NewHTTPSource(catalog.HTTPSourceConfig{URL: o.CatalogURL, Timeout: o.Timeout})
	}
	return catalog.NewFileSource(o.CatalogPath)
}

// errCatalogUnavailable is returned by run after the unavailable message has
// been printed.
var errCatalogUnavailable = errors.New("catalog unavailable")

func run(ctx context.Context, opts *options, stdout io.Writer) error {
	answers, err := quiz.NewCollector(opts.Strict).Collect(quiz.FromValues(opts.values()))
	if err != nil {
		return err
	}

	out := present.NewTextRenderer(stdout, opts.NoColor)

	holder := catalog.NewHolder(logging.WithComponent("quiz"))
	loadCtx, cancel := context.WithTimeout(ctx, opts.Timeout)
	defer cancel()
	if err := holder.Load(loadCtx, opts.source()); err != nil {
		if renderErr := out.RenderError(present.MsgCatalogUnavailable); renderErr != nil {
			return renderErr
		}
		return fmt.Errorf("%w: %w", errCatalogUnavailable, err)
	}

	cat, err := holder.Ready()
	if err != nil {
		return err
	}
	return out.RenderResults(recommend.Rank(cat, &answers, opts.Top))
}

func main() {
	fs := flag.NewFlagSet("quiz", flag.ExitOnError)
	opts, err := parseFlags(fs, os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		fs.Usage()
		os.Exit(2)
	}

	cfg := logging.DefaultConfig()
	cfg.Level = opts.LogLevel
	cfg.Format = "console"
	logging.Init(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, opts, os.Stdout); err != nil {
		if !errors.Is(err, errCatalogUnavailable) {
			fmt.Fprintln(os.Stderr, "error:", err)
		}
		logging.Debug().Err(err).Msg("quiz failed")
		stop()
		os.Exit(1)
	}
}
