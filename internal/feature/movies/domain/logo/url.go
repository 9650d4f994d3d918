package logo

import (
	"fmt"
	"strings"
)

const (
	// DefaultImageBaseURL is the upstream CDN root for image assets.
	DefaultImageBaseURL = "https://image.tmdb.org/t/p"
	// DefaultSize serves the asset at its uploaded resolution.
	DefaultSize = "original"
)

// URL builds a full image URL from a file path and a size such as "w500".
// An empty path yields an empty URL.
func URL(base, size, path string) string {
	if path == "" {
		return ""
	}
	if base == "" {
		base = DefaultImageBaseURL
	}
	if size == "" {
		size = DefaultSize
	}
	return fmt.Sprintf("%s/%s/%s", strings.TrimSuffix(base, "/"), size, strings.TrimPrefix(path, "/"))
}
