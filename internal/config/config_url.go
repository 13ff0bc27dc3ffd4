// Cinequiz - Movie Recommendation Quiz
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinequiz

package config

import (
	"fmt"
	"net/url"
)

// validateHTTPURL validates that a URL points at a file served over HTTP/HTTPS.
// Validates: scheme (http/https), host present, no fragment.
func validateHTTPURL(rawURL, fieldName string) error {
	parsedURL, err := url.Parse(rawURL)
	if err != nil {
		return fmt.Errorf("%s failed to parse URL: %w", fieldName, err)
	}

	if parsedURL.Scheme != "http" && parsedURL.Scheme != "https" {
		return fmt.Errorf("%s scheme must be http or https, got: %s", fieldName, parsedURL.Scheme)
	}

	if parsedURL.Host == "" {
		return fmt.Errorf("%s host is required", fieldName)
	}

	if parsedURL.Fragment != "" {
		return fmt.Errorf("%s should not contain a fragment, remove: #%s", fieldName, parsedURL.Fragment)
	}

	return nil
}
