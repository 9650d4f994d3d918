package di

import (
	"github.com/graphql-go/graphql"

	"movie_backend/internal/app/config"
	"movie_backend/internal/feature/movies/transport/handler"
	"movie_backend/internal/feature/movies/transport/schema"
	"movie_backend/internal/feature/movies/usecase"
	"movie_backend/internal/platform/metrics"
)

// NewMoviesUsecase creates the movies usecase on top of repo.
func NewMoviesUsecase(cfg config.Config, repo usecase.MovieRepository) *usecase.MoviesUsecase {
	return usecase.NewMoviesUsecase(repo, usecase.Options{
		Language: cfg.TMDB.Language,
		Logo:     cfg.LogoPreference(),
	})
}

// NewMoviesSchema builds the GraphQL schema over uc, reporting resolutions to m.
func NewMoviesSchema(cfg config.Config, uc schema.MoviesUsecase, m *metrics.Metrics) (graphql.Schema, error) {
	return schema.New(uc, schema.Options{
		ImageBaseURL: cfg.TMDB.ImageBaseURL,
		Observer:     m,
	})
}

// NewGraphQLHandler wires the whole movies feature into an HTTP handler.
func NewGraphQLHandler(cfg config.Config, m *metrics.Metrics) (*handler.GraphQLHandler, error) {
	uc := NewMoviesUsecase(cfg, NewTMDBClient(cfg, m))
	s, err := NewMoviesSchema(cfg, uc, m)
	if err != nil {
		return nil, err
	}
	return handler.NewGraphQLHandler(s), nil
}
