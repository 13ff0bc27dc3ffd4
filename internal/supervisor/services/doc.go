// Cinequiz - Movie Recommendation Quiz
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinequiz

/*
Package services provides suture.Service wrappers for Cinequiz components.

Each wrapper translates a component's own lifecycle into suture's
context-aware Serve method and implements fmt.Stringer so supervisor events
name the service.

HTTP Server (HTTPServerService):
  - Wraps *http.Server with graceful shutdown
  - Converts ListenAndServe pattern to Serve

Catalog Loader (CatalogLoaderService):
  - Loads the movie catalog exactly once
  - Returns suture.ErrDoNotRestart on success and on failure
*/
package services
