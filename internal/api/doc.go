// Cinequiz - Movie Recommendation Quiz
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinequiz

/*
Package api provides the HTTP layer for Cinequiz: the quiz page, the JSON
recommendation API, health probes and the metrics endpoint.

Routes:

	GET  /                            quiz page
	POST /recommend                   form submission, page with results
	POST /api/v1/recommendations      JSON quiz.Request, ranked cards
	GET  /api/v1/questions            questions and options
	GET  /api/v1/catalog              catalog load status
	GET  /api/v1/health/live          liveness
	GET  /api/v1/health/ready         readiness (catalog load finished)
	GET  /metrics                     Prometheus metrics

JSON endpoints answer with the APIResponse envelope:

	{
	  "success": true,
	  "data": {
	    "result": {"header": "Size Özel Film Tavsiyeleri", "cards": [...]},
	    "ranking": [{"rank": 1, "title": "Interstellar", "score": 240}],
	    "total_candidates": 5000,
	    "metadata": {"request_id": "...", "limit": 3, "cache_hit": false}
	  },
	  "meta": {"request_id": "...", "timestamp": "..."}
	}

A catalog that failed to load turns the recommendation endpoints into 503
responses carrying present.MsgCatalogUnavailable; the HTML page shows the
same message in place of the results.

Usage Example:

	handler, err := api.NewHandler(api.HandlerConfig{
	    Engine:    engine,
	    Catalog:   holder,
	    Collector: quiz.NewCollector(cfg.Quiz.StrictValidation),
	    Renderer:  renderer,
	})
	if err != nil {
	    return err
	}
	router := api.NewRouter(handler, api.NewChiMiddlewareFromSecurity(
	    cfg.Security.CORSOrigins, cfg.Security.RateLimitReqs,
	    cfg.Security.RateLimitWindow, cfg.Security.RateLimitDisabled))
	srv := &http.Server{Addr: cfg.Server.Addr(), Handler: router.Setup()}
*/
package api
