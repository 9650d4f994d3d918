// Package di provides dependency injection factories for creating application components.
package di

import (
	"movie_backend/internal/app/config"
	"movie_backend/internal/platform/externalapi/tmdb"
	infrahttp "movie_backend/internal/platform/http"
	"movie_backend/internal/platform/metrics"
)

// NewTMDBClient creates a TMDB client whose HTTP transport reports to m.
func NewTMDBClient(cfg config.Config, m *metrics.Metrics) *tmdb.Client {
	tc := cfg.TMDBClient()
	httpClient := infrahttp.NewHTTPClient(tc.Timeout, m.InstrumentRoundTripper)
	return tmdb.NewClient(tc, httpClient)
}
