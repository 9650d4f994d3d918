package router

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/graphql-go/graphql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"movie_backend/internal/app/config"
	movieshandler "movie_backend/internal/feature/movies/transport/handler"
	platformhandler "movie_backend/internal/platform/http/handler"
	"movie_backend/internal/platform/metrics"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	s, err := graphql.NewSchema(graphql.SchemaConfig{
		Query: graphql.NewObject(graphql.ObjectConfig{
			Name: "Query",
			Fields: graphql.Fields{
				"ping": &graphql.Field{
					Type:    graphql.String,
					Resolve: func(graphql.ResolveParams) (any, error) { return "pong", nil },
				},
			},
		}),
	})
	require.NoError(t, err)

	cfg := config.Default()
	log := slog.New(slog.NewTextHandler(io.Discard, nil))

	return NewRouter(cfg, log, movieshandler.NewGraphQLHandler(s),
		platformhandler.NewHealthHandler(time.Now()), metrics.New())
}

func TestNewRouter_Routes(t *testing.T) {
	r := newTestRouter(t)

	tests := []struct {
		name   string
		method string
		url    string
		body   string
		status int
		want   string
	}{
		{"health", http.MethodGet, "/healthz", "", http.StatusOK, `"status":"ok"`},
		{"metrics", http.MethodGet, "/metrics", "", http.StatusOK, "go_goroutines"},
		{"graphql get", http.MethodGet, "/graphql?query=%7Bping%7D", "", http.StatusOK, `{"data":{"ping":"pong"}}`},
		{"graphql post", http.MethodPost, "/graphql", `{"query":"{ping}"}`, http.StatusOK, `{"data":{"ping":"pong"}}`},
		{"unknown route", http.MethodGet, "/nope", "", http.StatusNotFound, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(tt.method, tt.url, strings.NewReader(tt.body))
			if tt.body != "" {
				req.Header.Set("Content-Type", "application/json")
			}

			r.ServeHTTP(w, req)

			assert.Equal(t, tt.status, w.Code)
			assert.Contains(t, w.Body.String(), tt.want)
		})
	}
}

func TestNewRouter_CORS(t *testing.T) {
	r := newTestRouter(t)

	t.Run("allowed origin preflight", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodOptions, "/graphql", nil)
		req.Header.Set("Origin", "http://localhost:5173")
		req.Header.Set("Access-Control-Request-Method", http.MethodPost)

		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Equal(t, "http://localhost:5173", w.Header().Get("Access-Control-Allow-Origin"))
		assert.Equal(t, "true", w.Header().Get("Access-Control-Allow-Credentials"))
	})

	t.Run("foreign origin is rejected", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
		req.Header.Set("Origin", "https://evil.example.com")

		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
	})
}
