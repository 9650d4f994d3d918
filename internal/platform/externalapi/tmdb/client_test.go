package tmdb

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, h http.HandlerFunc) *Client {
	t.Helper()

	server := httptest.NewServer(h)
	t.Cleanup(server.Close)

	cfg := Config{
		APIKey:  "test-key",
		BaseURL: server.URL,
		Timeout: time.Second,
	}
	return NewClient(cfg, server.Client())
}

func TestNewClient(t *testing.T) {
	t.Parallel()

	cfg := Config{APIKey: "k", BaseURL: "https://api.test.com"}
	c := NewClient(cfg, &http.Client{})

	require.NotNil(t, c)
	assert.Equal(t, cfg, c.cfg)
}

func TestClient_Get_Success(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/movie/popular", r.URL.Path)
		assert.Equal(t, "test-key", r.URL.Query().Get("api_key"))
		assert.Equal(t, "es-ES", r.URL.Query().Get("language"))
		assert.Equal(t, "application/json", r.Header.Get("Accept"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"page":1,"results":[{"id":550,"title":"El club de la lucha"}]}`))
	})

	query := url.Values{"language": {"es-ES"}}
	body, err := c.Get(context.Background(), "/movie/popular", query)

	require.NoError(t, err)
	assert.Equal(t, float64(1), body["page"])
	results, ok := body["results"].([]any)
	require.True(t, ok)
	require.Len(t, results, 1)
	assert.Equal(t, "El club de la lucha", results[0].(map[string]any)["title"])

	// the caller's query is left untouched
	assert.Empty(t, query.Get("api_key"))
}

func TestClient_Get_NullBody(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`null`))
	})

	body, err := c.Get(context.Background(), "/genre/movie/list", nil)

	require.NoError(t, err)
	assert.Nil(t, body)
}

func TestClient_Get_HTTPError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		statusCode  int
		body        string
		wantMessage string
	}{
		{"unauthorized", http.StatusUnauthorized, `{"success":false,"status_code":7,"status_message":"Invalid API key: You must be granted a valid key."}`, "Invalid API key: You must be granted a valid key."},
		{"not found", http.StatusNotFound, `{"success":false,"status_code":34,"status_message":"The resource you requested could not be found."}`, "The resource you requested could not be found."},
		{"too many requests", http.StatusTooManyRequests, ``, ""},
		{"internal server error", http.StatusInternalServerError, `<html>oops</html>`, ""},
		{"service unavailable", http.StatusServiceUnavailable, ``, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.statusCode)
				_, _ = w.Write([]byte(tt.body))
			})

			_, err := c.Get(context.Background(), "/movie/1", nil)

			require.Error(t, err)
			assert.ErrorIs(t, err, ErrUpstream)

			var apiErr *APIError
			require.True(t, errors.As(err, &apiErr))
			assert.Equal(t, tt.statusCode, apiErr.StatusCode)
			assert.Equal(t, "/movie/1", apiErr.Path)
			assert.Equal(t, tt.wantMessage, apiErr.StatusMessage)
			assert.True(t, strings.HasPrefix(err.Error(), "tmdb http"))
		})
	}
}

func TestClient_Get_InvalidJSON(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{invalid json`))
	})

	_, err := c.Get(context.Background(), "/movie/popular", nil)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "tmdb decode /movie/popular")
	assert.NotErrorIs(t, err, ErrUpstream)
}

func TestClient_Get_ContextCanceled(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{}`))
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := c.Get(ctx, "/movie/popular", nil)

	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Contains(t, err.Error(), "tmdb get /movie/popular")
}

func TestClient_GetImages(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/movie/550/images", r.URL.Path)
		assert.Equal(t, "test-key", r.URL.Query().Get("api_key"))
		// every language is requested
		assert.Empty(t, r.URL.Query().Get("language"))
		assert.Empty(t, r.URL.Query().Get("include_image_language"))

		_, _ = w.Write([]byte(`{
			"id": 550,
			"backdrops": [{"aspect_ratio":1.778,"height":1080,"width":1920,"iso_639_1":null,"file_path":"/b.jpg","vote_average":5.2,"vote_count":4}],
			"posters": [],
			"logos": [
				{"aspect_ratio":2.5,"height":200,"width":500,"iso_639_1":"en","file_path":"/en.png","vote_average":5.5,"vote_count":3},
				{"aspect_ratio":2.5,"height":200,"width":500,"iso_639_1":"es","file_path":"/es.png","vote_count":0}
			]
		}`))
	})

	images, err := c.GetImages(context.Background(), "550")

	require.NoError(t, err)
	assert.Equal(t, 550, images.ID)
	require.Len(t, images.Backdrops, 1)
	assert.Nil(t, images.Backdrops[0].Language)
	assert.Equal(t, 1920, images.Backdrops[0].Width)
	assert.Empty(t, images.Posters)
	require.Len(t, images.Logos, 2)

	en := images.Logos[0]
	require.NotNil(t, en.Language)
	assert.Equal(t, "en", *en.Language)
	require.NotNil(t, en.VoteAverage)
	assert.InDelta(t, 5.5, *en.VoteAverage, 1e-9)
	assert.Equal(t, "/en.png", en.FilePath)

	es := images.Logos[1]
	assert.True(t, es.HasLanguage("es"))
	assert.Nil(t, es.VoteAverage)
}

func TestClient_GetImages_EscapesID(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/movie/a%2Fb/images", r.URL.EscapedPath())
		_, _ = w.Write([]byte(`{"id":0}`))
	})

	_, err := c.GetImages(context.Background(), "a/b")

	require.NoError(t, err)
}

func TestClient_GetImages_HTTPError(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	_, err := c.GetImages(context.Background(), "0")

	assert.ErrorIs(t, err, ErrUpstream)
}

func TestAPIError_Error(t *testing.T) {
	t.Parallel()

	withMsg := &APIError{Path: "/movie/1", StatusCode: 401, StatusMessage: "Invalid API key"}
	assert.Equal(t, "tmdb http 401 on /movie/1: Invalid API key", withMsg.Error())

	bare := &APIError{Path: "/movie/1", StatusCode: 502}
	assert.Equal(t, "tmdb http 502 on /movie/1", bare.Error())
}
