package tmdb

import (
	"errors"
	"fmt"
)

// ErrUpstream is wrapped by every error that carries a non-success upstream status.
var ErrUpstream = errors.New("tmdb request failed")

// APIError reports a 4xx/5xx response from TMDB.
type APIError struct {
	Path          string // Request path without query (e.g. "/movie/550")
	StatusCode    int    // HTTP status returned by TMDB
	StatusMessage string // TMDB's status_message, when the body carried one
}

func (e *APIError) Error() string {
	if e.StatusMessage != "" {
		return fmt.Sprintf("tmdb http %d on %s: %s", e.StatusCode, e.Path, e.StatusMessage)
	}
	return fmt.Sprintf("tmdb http %d on %s", e.StatusCode, e.Path)
}

// Unwrap lets callers match any upstream failure with errors.Is(err, ErrUpstream).
func (e *APIError) Unwrap() error {
	return ErrUpstream
}
