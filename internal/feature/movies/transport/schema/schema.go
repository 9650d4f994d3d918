// Package schema builds the GraphQL schema of the movies feature.
//
// Every entry of the forwarding table becomes one Query field; the
// image-related fields are added on top of it.
package schema

import (
	"context"
	"fmt"

	"github.com/graphql-go/graphql"

	"movie_backend/internal/feature/movies/domain/entity"
	"movie_backend/internal/feature/movies/usecase"
)

// MoviesUsecase is what the resolvers need from the movies feature.
// Following Go convention, the interface is defined by the consumer.
type MoviesUsecase interface {
	Forward(ctx context.Context, field string, args map[string]string) (any, error)
	MovieWithLogo(ctx context.Context, id string) (entity.Payload, error)
	MovieImages(ctx context.Context, id string) (entity.MovieImages, error)
	MovieLogos(ctx context.Context, id string) ([]entity.ImageMetadata, error)
	BestLogo(ctx context.Context, id string) (entity.ImageMetadata, bool, error)
}

// Observer is notified after every root field resolution.
type Observer interface {
	ObserveResolution(field string, err error)
}

// Options configures New.
type Options struct {
	ImageBaseURL string   // CDN root used by Image.url; empty means the public TMDB CDN
	Observer     Observer // optional
}

// New builds the schema over uc.
func New(uc MoviesUsecase, opts Options) (graphql.Schema, error) {
	t := newTypes(opts.ImageBaseURL)

	outputs := map[string]graphql.Output{
		usecase.FieldMovieByID:        t.movieDetails,
		usecase.FieldMovieGenres:      graphql.NewList(t.genre),
		usecase.FieldPopularMovies:    graphql.NewList(t.movie),
		usecase.FieldNowPlayingMovies: graphql.NewList(t.movie),
		usecase.FieldTopRatedMovies:   graphql.NewList(t.movie),
		usecase.FieldUpcomingMovies:   graphql.NewList(t.movie),
		usecase.FieldSearchMovies:     graphql.NewList(t.movie),
		usecase.FieldMovieVideos:      graphql.NewList(t.movieVideo),
		usecase.FieldMovieCredits:     t.movieCredits,
	}

	fields := graphql.Fields{}
	for _, ep := range usecase.Endpoints {
		out, ok := outputs[ep.Field]
		if !ok {
			return graphql.Schema{}, fmt.Errorf("schema: no output type for field %s", ep.Field)
		}
		fields[ep.Field] = &graphql.Field{
			Type:    out,
			Args:    arguments(ep.Args),
			Resolve: observe(opts.Observer, ep.Field, forward(uc, ep)),
		}
	}

	// movieById also carries the best logo, fetched alongside the details.
	fields[usecase.FieldMovieByID].Resolve = observe(opts.Observer, usecase.FieldMovieByID,
		func(p graphql.ResolveParams) (any, error) {
			payload, err := uc.MovieWithLogo(p.Context, stringArg(p.Args, "id"))
			if err != nil || payload == nil {
				return nil, err
			}
			return payload, nil
		})

	idArg := graphql.FieldConfigArgument{
		"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
	}
	fields["movieImages"] = &graphql.Field{
		Type:        t.movieImages,
		Description: "Backdrops, posters and logos of a movie in every language.",
		Args:        idArg,
		Resolve: observe(opts.Observer, "movieImages", func(p graphql.ResolveParams) (any, error) {
			images, err := uc.MovieImages(p.Context, stringArg(p.Args, "id"))
			if err != nil {
				return nil, err
			}
			return images, nil
		}),
	}
	fields["movieLogos"] = &graphql.Field{
		Type:        graphql.NewList(t.image),
		Description: "Logos in the preferred language, or every logo when there is none.",
		Args:        idArg,
		Resolve: observe(opts.Observer, "movieLogos", func(p graphql.ResolveParams) (any, error) {
			logos, err := uc.MovieLogos(p.Context, stringArg(p.Args, "id"))
			if err != nil {
				return nil, err
			}
			return logos, nil
		}),
	}
	fields["movieLogo"] = &graphql.Field{
		Type:        t.image,
		Description: "The single preferred logo of a movie.",
		Args:        idArg,
		Resolve: observe(opts.Observer, "movieLogo", func(p graphql.ResolveParams) (any, error) {
			best, ok, err := uc.BestLogo(p.Context, stringArg(p.Args, "id"))
			if err != nil || !ok {
				return nil, err
			}
			return best, nil
		}),
	}

	return graphql.NewSchema(graphql.SchemaConfig{
		Query: graphql.NewObject(graphql.ObjectConfig{
			Name:   "Query",
			Fields: fields,
		}),
	})
}

// arguments declares path arguments as ID! and query arguments as String!.
func arguments(args []usecase.Arg) graphql.FieldConfigArgument {
	if len(args) == 0 {
		return nil
	}
	out := graphql.FieldConfigArgument{}
	for _, a := range args {
		var t graphql.Input = graphql.String
		if a.In == usecase.InPath {
			t = graphql.ID
		}
		out[a.Name] = &graphql.ArgumentConfig{Type: graphql.NewNonNull(t)}
	}
	return out
}

func forward(uc MoviesUsecase, ep usecase.Endpoint) graphql.FieldResolveFn {
	return func(p graphql.ResolveParams) (any, error) {
		args := make(map[string]string, len(ep.Args))
		for _, a := range ep.Args {
			if _, ok := p.Args[a.Name]; ok {
				args[a.Name] = stringArg(p.Args, a.Name)
			}
		}
		return uc.Forward(p.Context, ep.Field, args)
	}
}

func observe(o Observer, field string, next graphql.FieldResolveFn) graphql.FieldResolveFn {
	if o == nil {
		return next
	}
	return func(p graphql.ResolveParams) (any, error) {
		v, err := next(p)
		o.ObserveResolution(field, err)
		return v, err
	}
}

func stringArg(args map[string]any, name string) string {
	switch v := args[name].(type) {
	case nil:
		return ""
	case string:
		return v
	default:
		return fmt.Sprint(v)
	}
}
