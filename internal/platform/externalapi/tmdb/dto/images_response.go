// Package dto defines data transfer objects for the TMDB API responses.
package dto

// ImagesResponse represents the JSON response from the /movie/{id}/images endpoint.
type ImagesResponse struct {
	ID        int     `json:"id"`
	Backdrops []Image `json:"backdrops"`
	Posters   []Image `json:"posters"`
	Logos     []Image `json:"logos"`
}

// Image is one entry of the backdrops, posters or logos arrays.
type Image struct {
	AspectRatio float64  `json:"aspect_ratio"`
	Height      int      `json:"height"`
	Width       int      `json:"width"`
	Iso6391     *string  `json:"iso_639_1"`
	FilePath    string   `json:"file_path"`
	VoteAverage *float64 `json:"vote_average"`
	VoteCount   int      `json:"vote_count"`
}

// ErrorResponse is the body TMDB sends alongside 4xx/5xx statuses.
type ErrorResponse struct {
	Success       bool   `json:"success"`
	StatusCode    int    `json:"status_code"`
	StatusMessage string `json:"status_message"`
}
