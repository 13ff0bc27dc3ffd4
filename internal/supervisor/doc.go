// Cinequiz - Movie Recommendation Quiz
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinequiz

/*
Package supervisor runs the long-lived parts of the Cinequiz server under a
suture v4 supervisor tree.

	RootSupervisor ("cinequiz")
	├── DataSupervisor ("data-layer")
	│   └── CatalogLoaderService (runs once)
	└── APISupervisor ("api-layer")
	    └── HTTPServerService

The catalog loader returns suture.ErrDoNotRestart whether or not the load
succeeded: a failed load leaves the catalog empty and the quiz answers with
the catalog-unavailable message until the process is restarted.

Supervisor events are logged through sutureslog, fed by the zerolog slog
bridge in internal/logging.

# Usage Example

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.DefaultTreeConfig())
	if err != nil {
	    return err
	}
	tree.AddDataService(services.NewCatalogLoaderService(holder, source, logger))
	tree.AddAPIService(services.NewHTTPServerService(server, 10*time.Second))

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()
	if err := tree.Serve(ctx); err != nil && !errors.Is(err, context.Canceled) {
	    logging.Error().Err(err).Msg("supervisor stopped")
	}
*/
package supervisor
