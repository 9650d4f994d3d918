// Package entity defines the domain models for the movies feature.
package entity

import "math"

// ImageMetadata describes one image asset (logo, poster or backdrop) of a movie.
// Values are built fresh from the upstream response on every request.
type ImageMetadata struct {
	FilePath    string   // Upstream path of the asset (e.g. "/abc.png")
	Language    *string  // ISO 639-1 code; nil when the asset has no language
	VoteAverage *float64 // Upstream quality score; nil when absent
	VoteCount   int      // Number of votes behind VoteAverage
	Width       int      // Pixel width
	Height      int      // Pixel height
	AspectRatio float64  // Width / Height as reported upstream
}

// Score returns the quality score, ranking a missing score below every real one.
func (m ImageMetadata) Score() float64 {
	if m.VoteAverage == nil {
		return math.Inf(-1)
	}
	return *m.VoteAverage
}

// HasLanguage reports whether the asset is tagged with exactly the given code.
// Codes are compared verbatim; "ES" and "es-MX" do not match "es".
func (m ImageMetadata) HasLanguage(code string) bool {
	return m.Language != nil && *m.Language == code
}

// MovieImages groups the image assets the upstream returns for one movie.
type MovieImages struct {
	ID        int
	Backdrops []ImageMetadata
	Posters   []ImageMetadata
	Logos     []ImageMetadata
}
