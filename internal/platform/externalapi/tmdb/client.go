package tmdb

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"movie_backend/internal/feature/movies/domain/entity"
	"movie_backend/internal/feature/movies/usecase"
	"movie_backend/internal/platform/externalapi/tmdb/dto"
)

// maxErrorBody caps how much of a failed response is read for its status_message.
const maxErrorBody = 4 << 10

// Client is the MovieRepository implementation backed by the TMDB REST API.
type Client struct {
	cfg    Config
	client *http.Client
}

// Client must satisfy MovieRepository.
var _ usecase.MovieRepository = (*Client)(nil)

// NewClient creates a Client with the given configuration and HTTP client.
func NewClient(cfg Config, client *http.Client) *Client {
	return &Client{cfg: cfg, client: client}
}

// Get issues a GET to path and returns the decoded JSON object.
// The API key is added to query; the caller's values are not modified.
func (c *Client) Get(ctx context.Context, path string, query url.Values) (entity.Payload, error) {
	var body entity.Payload
	if err := c.do(ctx, path, query, &body); err != nil {
		return nil, err
	}
	return body, nil
}

// GetImages fetches the backdrops, posters and logos of a movie in every language.
func (c *Client) GetImages(ctx context.Context, movieID string) (entity.MovieImages, error) {
	var body dto.ImagesResponse
	if err := c.do(ctx, "/movie/"+url.PathEscape(movieID)+"/images", nil, &body); err != nil {
		return entity.MovieImages{}, err
	}

	return entity.MovieImages{
		ID:        body.ID,
		Backdrops: toEntities(body.Backdrops),
		Posters:   toEntities(body.Posters),
		Logos:     toEntities(body.Logos),
	}, nil
}

func (c *Client) do(ctx context.Context, path string, query url.Values, out any) error {
	q := url.Values{}
	for k, vs := range query {
		q[k] = append([]string(nil), vs...)
	}
	q.Set("api_key", c.cfg.APIKey)

	u := fmt.Sprintf("%s%s?%s", strings.TrimSuffix(c.cfg.BaseURL, "/"), path, q.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")

	res, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("tmdb get %s: %w", path, err)
	}
	defer func() {
		if err := res.Body.Close(); err != nil {
			slog.Warn("failed to close response body", "error", err)
		}
	}()

	if res.StatusCode >= 400 {
		apiErr := &APIError{Path: path, StatusCode: res.StatusCode}
		var body dto.ErrorResponse
		if err := json.NewDecoder(io.LimitReader(res.Body, maxErrorBody)).Decode(&body); err == nil {
			apiErr.StatusMessage = body.StatusMessage
		}
		slog.Warn("tmdb non-success status", "path", path, "status", res.StatusCode, "message", apiErr.StatusMessage)
		return apiErr
	}

	if err := json.NewDecoder(res.Body).Decode(out); err != nil {
		return fmt.Errorf("tmdb decode %s: %w", path, err)
	}
	return nil
}

func toEntities(in []dto.Image) []entity.ImageMetadata {
	out := make([]entity.ImageMetadata, 0, len(in))
	for _, v := range in {
		out = append(out, entity.ImageMetadata{
			FilePath:    v.FilePath,
			Language:    v.Iso6391,
			VoteAverage: v.VoteAverage,
			VoteCount:   v.VoteCount,
			Width:       v.Width,
			Height:      v.Height,
			AspectRatio: v.AspectRatio,
		})
	}
	return out
}
