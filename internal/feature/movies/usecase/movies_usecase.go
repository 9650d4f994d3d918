// Package usecase implements the business logic of the movies feature.
package usecase

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"golang.org/x/sync/errgroup"

	"movie_backend/internal/feature/movies/domain/entity"
	"movie_backend/internal/feature/movies/domain/logo"
)

// DefaultLanguage is sent to localized endpoints when no language is configured.
const DefaultLanguage = "es-ES"

// MovieRepository abstracts the upstream movie data API.
// Following Go convention, the interface is defined by the consumer (usecase).
type MovieRepository interface {
	// Get issues a GET to path with query and returns the decoded JSON object.
	Get(ctx context.Context, path string, query url.Values) (entity.Payload, error)
	// GetImages returns every image asset of a movie.
	GetImages(ctx context.Context, movieID string) (entity.MovieImages, error)
}

// Options tunes a MoviesUsecase.
type Options struct {
	Language string          // value of the language parameter, e.g. "es-ES"
	Logo     logo.Preference // logo language preference
}

// MoviesUsecase forwards GraphQL fields to the upstream API.
type MoviesUsecase struct {
	repo      MovieRepository
	language  string
	pref      logo.Preference
	endpoints map[string]Endpoint
}

// NewMoviesUsecase creates a MoviesUsecase over the Endpoints table.
// Zero options fall back to DefaultLanguage and logo.DefaultPreference.
func NewMoviesUsecase(repo MovieRepository, opts Options) *MoviesUsecase {
	if opts.Language == "" {
		opts.Language = DefaultLanguage
	}
	if opts.Logo.Primary == "" {
		opts.Logo = logo.DefaultPreference
	}
	endpoints := make(map[string]Endpoint, len(Endpoints))
	for _, ep := range Endpoints {
		endpoints[ep.Field] = ep
	}
	return &MoviesUsecase{
		repo:      repo,
		language:  opts.Language,
		pref:      opts.Logo,
		endpoints: endpoints,
	}
}

// Forward resolves field by issuing its upstream request and extracting the result.
func (u *MoviesUsecase) Forward(ctx context.Context, field string, args map[string]string) (any, error) {
	ep, ok := u.endpoints[field]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownField, field)
	}

	path, query, err := u.request(ep, args)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", field, err)
	}

	body, err := u.repo.Get(ctx, path, query)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", field, err)
	}
	return ep.Extract(body), nil
}

// request builds the upstream path and query for ep.
func (u *MoviesUsecase) request(ep Endpoint, args map[string]string) (string, url.Values, error) {
	path := ep.Path
	q := url.Values{}
	for _, a := range ep.Args {
		v, ok := args[a.Name]
		if !ok {
			return "", nil, fmt.Errorf("%w: %s", ErrMissingArgument, a.Name)
		}
		switch a.In {
		case InPath:
			if v == "" {
				return "", nil, fmt.Errorf("%w: %s", ErrMissingArgument, a.Name)
			}
			path = strings.ReplaceAll(path, "{"+a.Name+"}", url.PathEscape(v))
		case InQuery:
			q.Set(a.Name, v)
		}
	}
	if ep.Localized {
		q.Set("language", u.language)
	}
	for k, vs := range ep.Static {
		q[k] = append([]string(nil), vs...)
	}
	return path, q, nil
}

// MovieWithLogo returns the movie details with its best logo under the "logo" key.
// Details and images are fetched concurrently; if either fails the whole call fails.
func (u *MoviesUsecase) MovieWithLogo(ctx context.Context, id string) (entity.Payload, error) {
	if id == "" {
		return nil, fmt.Errorf("%s: %w: id", FieldMovieByID, ErrMissingArgument)
	}

	var (
		details any
		images  entity.MovieImages
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		details, err = u.Forward(gctx, FieldMovieByID, map[string]string{"id": id})
		return err
	})
	g.Go(func() error {
		var err error
		images, err = u.repo.GetImages(gctx, id)
		if err != nil {
			return fmt.Errorf("movie images: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	payload, _ := details.(entity.Payload)
	if payload == nil {
		return nil, nil
	}
	if best, ok := u.pref.SelectBest(images.Logos); ok {
		payload["logo"] = best
	} else {
		payload["logo"] = nil
	}
	return payload, nil
}

// MovieImages returns every image asset of a movie.
func (u *MoviesUsecase) MovieImages(ctx context.Context, id string) (entity.MovieImages, error) {
	if id == "" {
		return entity.MovieImages{}, fmt.Errorf("movie images: %w: id", ErrMissingArgument)
	}
	images, err := u.repo.GetImages(ctx, id)
	if err != nil {
		return entity.MovieImages{}, fmt.Errorf("movie images: %w", err)
	}
	return images, nil
}

// MovieLogos returns the logos in the primary language, or all logos when there are none.
func (u *MoviesUsecase) MovieLogos(ctx context.Context, id string) ([]entity.ImageMetadata, error) {
	images, err := u.MovieImages(ctx, id)
	if err != nil {
		return nil, err
	}
	return u.pref.FilterWithFallback(images.Logos), nil
}

// BestLogo returns the single preferred logo; false means the movie has none.
func (u *MoviesUsecase) BestLogo(ctx context.Context, id string) (entity.ImageMetadata, bool, error) {
	images, err := u.MovieImages(ctx, id)
	if err != nil {
		return entity.ImageMetadata{}, false, err
	}
	best, ok := u.pref.SelectBest(images.Logos)
	return best, ok, nil
}
