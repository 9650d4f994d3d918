package usecase

import (
	"net/url"

	"movie_backend/internal/feature/movies/domain/entity"
)

// GraphQL field names served by the forwarding table.
const (
	FieldPopularMovies    = "popularMovies"
	FieldNowPlayingMovies = "nowPlayingMovies"
	FieldTopRatedMovies   = "topRatedMovies"
	FieldUpcomingMovies   = "upcomingMovies"
	FieldSearchMovies     = "searchMovies"
	FieldMovieByID        = "movieById"
	FieldMovieGenres      = "movieGenres"
	FieldMovieVideos      = "movieVideos"
	FieldMovieCredits     = "movieCredits"
)

// ArgLocation says where an argument goes in the upstream request.
type ArgLocation int

const (
	// InPath replaces the {name} placeholder of the path template.
	InPath ArgLocation = iota
	// InQuery is sent as a query parameter of the same name.
	InQuery
)

// Arg is one required field argument.
type Arg struct {
	Name string
	In   ArgLocation
}

// Extraction picks the part of the upstream body a field returns.
type Extraction func(body entity.Payload) any

// Key returns the value under name, or nil when the body lacks it.
func Key(name string) Extraction {
	return func(body entity.Payload) any {
		return body[name]
	}
}

// WholeBody returns the upstream object itself.
func WholeBody(body entity.Payload) any {
	if body == nil {
		return nil
	}
	return body
}

// Endpoint maps one GraphQL field to one upstream GET.
type Endpoint struct {
	Field     string     // GraphQL field name
	Path      string     // upstream path template, e.g. "/movie/{id}"
	Args      []Arg      // required arguments
	Localized bool       // adds the configured language parameter
	Static    url.Values // fixed query parameters
	Extract   Extraction // part of the body returned to the caller
}

// Endpoints is the forwarding table, in schema order.
var Endpoints = []Endpoint{
	{Field: FieldMovieByID, Path: "/movie/{id}", Args: []Arg{{Name: "id", In: InPath}}, Localized: true,
		Static: url.Values{"append_to_response": {"credits,videos"}}, Extract: WholeBody},
	{Field: FieldMovieGenres, Path: "/genre/movie/list", Localized: true, Extract: Key("genres")},
	{Field: FieldPopularMovies, Path: "/movie/popular", Localized: true, Extract: Key("results")},
	{Field: FieldNowPlayingMovies, Path: "/movie/now_playing", Localized: true, Extract: Key("results")},
	{Field: FieldTopRatedMovies, Path: "/movie/top_rated", Localized: true, Extract: Key("results")},
	{Field: FieldUpcomingMovies, Path: "/movie/upcoming", Localized: true, Extract: Key("results")},
	{Field: FieldSearchMovies, Path: "/search/movie", Args: []Arg{{Name: "query", In: InQuery}}, Localized: true,
		Extract: Key("results")},
	{Field: FieldMovieVideos, Path: "/movie/{movieId}/videos", Args: []Arg{{Name: "movieId", In: InPath}},
		Extract: Key("results")},
	{Field: FieldMovieCredits, Path: "/movie/{id}/credits", Args: []Arg{{Name: "id", In: InPath}}, Localized: true,
		Extract: WholeBody},
}
