package schema

import (
	"fmt"
	"strconv"

	"github.com/graphql-go/graphql"

	"movie_backend/internal/feature/movies/domain/entity"
	"movie_backend/internal/feature/movies/domain/logo"
)

// idField exposes a numeric upstream id as an ID without float formatting artefacts.
var idField = &graphql.Field{
	Type: graphql.ID,
	Resolve: func(p graphql.ResolveParams) (any, error) {
		src, _ := p.Source.(map[string]any)
		switch v := src[p.Info.FieldName].(type) {
		case nil:
			return nil, nil
		case float64:
			return strconv.FormatFloat(v, 'f', -1, 64), nil
		default:
			return fmt.Sprint(v), nil
		}
	},
}

func scalar(t graphql.Output) *graphql.Field {
	return &graphql.Field{Type: t}
}

// types holds the object types of the schema.
type types struct {
	genre        *graphql.Object
	movie        *graphql.Object
	movieDetails *graphql.Object
	movieVideo   *graphql.Object
	movieCredits *graphql.Object
	image        *graphql.Object
	movieImages  *graphql.Object
}

func newTypes(imageBaseURL string) *types {
	t := &types{}

	t.genre = graphql.NewObject(graphql.ObjectConfig{
		Name: "Genre",
		Fields: graphql.Fields{
			"id":   scalar(graphql.Int),
			"name": scalar(graphql.String),
		},
	})

	t.movie = graphql.NewObject(graphql.ObjectConfig{
		Name: "Movie",
		Fields: graphql.Fields{
			"id":                idField,
			"title":             scalar(graphql.String),
			"original_title":    scalar(graphql.String),
			"original_language": scalar(graphql.String),
			"overview":          scalar(graphql.String),
			"release_date":      scalar(graphql.String),
			"poster_path":       scalar(graphql.String),
			"backdrop_path":     scalar(graphql.String),
			"genre_ids":         scalar(graphql.NewList(graphql.Int)),
			"vote_average":      scalar(graphql.Float),
			"vote_count":        scalar(graphql.Int),
			"popularity":        scalar(graphql.Float),
			"adult":             scalar(graphql.Boolean),
			"video":             scalar(graphql.Boolean),
		},
	})

	castMember := graphql.NewObject(graphql.ObjectConfig{
		Name: "CastMember",
		Fields: graphql.Fields{
			"id":           idField,
			"name":         scalar(graphql.String),
			"character":    scalar(graphql.String),
			"profile_path": scalar(graphql.String),
		},
	})

	crewMember := graphql.NewObject(graphql.ObjectConfig{
		Name: "CrewMember",
		Fields: graphql.Fields{
			"id":         idField,
			"name":       scalar(graphql.String),
			"job":        scalar(graphql.String),
			"department": scalar(graphql.String),
		},
	})

	t.movieVideo = graphql.NewObject(graphql.ObjectConfig{
		Name: "MovieVideo",
		Fields: graphql.Fields{
			"key":  scalar(graphql.String),
			"name": scalar(graphql.String),
			"site": scalar(graphql.String),
			"type": scalar(graphql.String),
		},
	})

	productionCompany := graphql.NewObject(graphql.ObjectConfig{
		Name: "ProductionCompany",
		Fields: graphql.Fields{
			"id":             scalar(graphql.Int),
			"name":           scalar(graphql.String),
			"logo_path":      scalar(graphql.String),
			"origin_country": scalar(graphql.String),
		},
	})

	productionCountry := graphql.NewObject(graphql.ObjectConfig{
		Name: "ProductionCountry",
		Fields: graphql.Fields{
			"iso_3166_1": scalar(graphql.String),
			"name":       scalar(graphql.String),
		},
	})

	spokenLanguage := graphql.NewObject(graphql.ObjectConfig{
		Name: "SpokenLanguage",
		Fields: graphql.Fields{
			"iso_639_1": scalar(graphql.String),
			"name":      scalar(graphql.String),
		},
	})

	t.movieCredits = graphql.NewObject(graphql.ObjectConfig{
		Name: "MovieCredits",
		Fields: graphql.Fields{
			"cast": scalar(graphql.NewList(castMember)),
			"crew": scalar(graphql.NewList(crewMember)),
		},
	})

	movieVideos := graphql.NewObject(graphql.ObjectConfig{
		Name: "MovieVideos",
		Fields: graphql.Fields{
			"results": scalar(graphql.NewList(t.movieVideo)),
		},
	})

	t.image = newImageType(imageBaseURL)

	t.movieImages = graphql.NewObject(graphql.ObjectConfig{
		Name: "MovieImages",
		Fields: graphql.Fields{
			"id": &graphql.Field{Type: graphql.Int, Resolve: movieImagesField(func(m entity.MovieImages) any { return m.ID })},
			"backdrops": &graphql.Field{Type: graphql.NewList(t.image),
				Resolve: movieImagesField(func(m entity.MovieImages) any { return m.Backdrops })},
			"posters": &graphql.Field{Type: graphql.NewList(t.image),
				Resolve: movieImagesField(func(m entity.MovieImages) any { return m.Posters })},
			"logos": &graphql.Field{Type: graphql.NewList(t.image),
				Resolve: movieImagesField(func(m entity.MovieImages) any { return m.Logos })},
		},
	})

	// budget and revenue routinely exceed 32 bits, hence Float.
	t.movieDetails = graphql.NewObject(graphql.ObjectConfig{
		Name: "MovieDetails",
		Fields: graphql.Fields{
			"id":                   &graphql.Field{Type: graphql.NewNonNull(graphql.ID), Resolve: idField.Resolve},
			"imdb_id":              scalar(graphql.String),
			"title":                scalar(graphql.String),
			"original_title":       scalar(graphql.String),
			"original_language":    scalar(graphql.String),
			"overview":             scalar(graphql.String),
			"release_date":         scalar(graphql.String),
			"runtime":              scalar(graphql.Int),
			"budget":               scalar(graphql.Float),
			"revenue":              scalar(graphql.Float),
			"status":               scalar(graphql.String),
			"tagline":              scalar(graphql.String),
			"poster_path":          scalar(graphql.String),
			"backdrop_path":        scalar(graphql.String),
			"genres":               scalar(graphql.NewList(t.genre)),
			"vote_average":         scalar(graphql.Float),
			"vote_count":           scalar(graphql.Int),
			"popularity":           scalar(graphql.Float),
			"homepage":             scalar(graphql.String),
			"production_companies": scalar(graphql.NewList(productionCompany)),
			"production_countries": scalar(graphql.NewList(productionCountry)),
			"spoken_languages":     scalar(graphql.NewList(spokenLanguage)),
			"credits":              scalar(t.movieCredits),
			"videos":               scalar(movieVideos),
			"logo":                 scalar(t.image),
		},
	})

	return t
}

func newImageType(imageBaseURL string) *graphql.Object {
	return graphql.NewObject(graphql.ObjectConfig{
		Name:        "Image",
		Description: "An image asset of a movie.",
		Fields: graphql.Fields{
			"file_path": &graphql.Field{Type: graphql.String, Resolve: imageField(func(m entity.ImageMetadata) any { return m.FilePath })},
			"iso_639_1": &graphql.Field{Type: graphql.String, Resolve: imageField(func(m entity.ImageMetadata) any {
				if m.Language == nil {
					return nil
				}
				return *m.Language
			})},
			"vote_average": &graphql.Field{Type: graphql.Float, Resolve: imageField(func(m entity.ImageMetadata) any {
				if m.VoteAverage == nil {
					return nil
				}
				return *m.VoteAverage
			})},
			"vote_count":   &graphql.Field{Type: graphql.Int, Resolve: imageField(func(m entity.ImageMetadata) any { return m.VoteCount })},
			"width":        &graphql.Field{Type: graphql.Int, Resolve: imageField(func(m entity.ImageMetadata) any { return m.Width })},
			"height":       &graphql.Field{Type: graphql.Int, Resolve: imageField(func(m entity.ImageMetadata) any { return m.Height })},
			"aspect_ratio": &graphql.Field{Type: graphql.Float, Resolve: imageField(func(m entity.ImageMetadata) any { return m.AspectRatio })},
			"url": &graphql.Field{
				Type:        graphql.String,
				Description: "Full CDN URL of the asset.",
				Args: graphql.FieldConfigArgument{
					"size": &graphql.ArgumentConfig{
						Type:         graphql.String,
						DefaultValue: logo.DefaultSize,
						Description:  `Rendition such as "w300" or "original".`,
					},
				},
				Resolve: func(p graphql.ResolveParams) (any, error) {
					m, ok := asImage(p.Source)
					if !ok {
						return nil, nil
					}
					size, _ := p.Args["size"].(string)
					u := logo.URL(imageBaseURL, size, m.FilePath)
					if u == "" {
						return nil, nil
					}
					return u, nil
				},
			},
		},
	})
}

func asImage(src any) (entity.ImageMetadata, bool) {
	switch v := src.(type) {
	case entity.ImageMetadata:
		return v, true
	case *entity.ImageMetadata:
		if v == nil {
			return entity.ImageMetadata{}, false
		}
		return *v, true
	}
	return entity.ImageMetadata{}, false
}

func imageField(get func(entity.ImageMetadata) any) graphql.FieldResolveFn {
	return func(p graphql.ResolveParams) (any, error) {
		m, ok := asImage(p.Source)
		if !ok {
			return nil, nil
		}
		return get(m), nil
	}
}

func movieImagesField(get func(entity.MovieImages) any) graphql.FieldResolveFn {
	return func(p graphql.ResolveParams) (any, error) {
		m, ok := p.Source.(entity.MovieImages)
		if !ok {
			return nil, nil
		}
		return get(m), nil
	}
}
