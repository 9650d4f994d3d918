// Package logo picks the logo asset shown for a movie.
//
// Selection is a strict preference chain, not a weighted score: a logo in
// the primary language always wins over a better rated one in any other
// language.
package logo

import "movie_backend/internal/feature/movies/domain/entity"

// Preference holds the language codes the chain looks for, in order.
type Preference struct {
	Primary  string // e.g. "es"
	Fallback string // e.g. "en"
}

// DefaultPreference prefers Spanish logos, then English ones.
var DefaultPreference = Preference{Primary: "es", Fallback: "en"}

// stage inspects the candidates and reports whether it produced a pick.
type stage func(candidates []entity.ImageMetadata) (entity.ImageMetadata, bool)

// stages returns the chain in evaluation order.
func (p Preference) stages() []stage {
	return []stage{
		firstWithLanguage(p.Primary),
		firstWithLanguage(p.Fallback),
		highestScore,
	}
}

// SelectBest returns the preferred logo, or false when there are no candidates.
//
//  1. the first candidate tagged with the primary language
//  2. the first candidate tagged with the fallback language
//  3. the candidate with the highest score; ties go to the earliest one
func (p Preference) SelectBest(candidates []entity.ImageMetadata) (entity.ImageMetadata, bool) {
	if len(candidates) == 0 {
		return entity.ImageMetadata{}, false
	}
	for _, s := range p.stages() {
		if m, ok := s(candidates); ok {
			return m, true
		}
	}
	return entity.ImageMetadata{}, false
}

// FilterWithFallback returns the candidates tagged with the primary language.
// When there are none, the input is returned unchanged.
func (p Preference) FilterWithFallback(candidates []entity.ImageMetadata) []entity.ImageMetadata {
	var matched []entity.ImageMetadata
	for _, c := range candidates {
		if c.HasLanguage(p.Primary) {
			matched = append(matched, c)
		}
	}
	if len(matched) == 0 {
		return candidates
	}
	return matched
}

// SelectBest applies DefaultPreference.
func SelectBest(candidates []entity.ImageMetadata) (entity.ImageMetadata, bool) {
	return DefaultPreference.SelectBest(candidates)
}

// FilterWithFallback applies DefaultPreference.
func FilterWithFallback(candidates []entity.ImageMetadata) []entity.ImageMetadata {
	return DefaultPreference.FilterWithFallback(candidates)
}

func firstWithLanguage(code string) stage {
	return func(candidates []entity.ImageMetadata) (entity.ImageMetadata, bool) {
		if code == "" {
			return entity.ImageMetadata{}, false
		}
		for _, c := range candidates {
			if c.HasLanguage(code) {
				return c, true
			}
		}
		return entity.ImageMetadata{}, false
	}
}

// highestScore keeps the first of several equal maxima.
func highestScore(candidates []entity.ImageMetadata) (entity.ImageMetadata, bool) {
	if len(candidates) == 0 {
		return entity.ImageMetadata{}, false
	}
	best := candidates[0]
	for _, c := range candidates[1:] {
		if c.Score() > best.Score() {
			best = c
		}
	}
	return best, true
}
