// Package tmdb provides a client for The Movie Database REST API.
package tmdb

import "time"

const (
	// DefaultBaseURL is the v3 REST root.
	DefaultBaseURL = "https://api.themoviedb.org/3"
	// DefaultTimeout bounds a single upstream request.
	DefaultTimeout = 10 * time.Second
)

// Config holds configuration for the TMDB API client.
type Config struct {
	APIKey  string        // v3 API key, sent as the api_key query parameter
	BaseURL string        // Base URL for the API (e.g., "https://api.themoviedb.org/3")
	Timeout time.Duration // HTTP request timeout
}
