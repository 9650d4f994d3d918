package metrics

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_ObserveResolution(t *testing.T) {
	t.Parallel()

	m := New()
	m.ObserveResolution("movieById", nil)
	m.ObserveResolution("movieById", nil)
	m.ObserveResolution("movieById", errors.New("boom"))

	assert.Equal(t, 2.0, testutil.ToFloat64(m.resolutions.WithLabelValues("movieById", "ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.resolutions.WithLabelValues("movieById", "error")))
}

func TestMetrics_InstrumentRoundTripper(t *testing.T) {
	t.Parallel()

	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer upstream.Close()

	m := New()
	client := &http.Client{Transport: m.InstrumentRoundTripper(http.DefaultTransport)}

	res, err := client.Get(upstream.URL)
	require.NoError(t, err)
	require.NoError(t, res.Body.Close())

	assert.Equal(t, 1.0, testutil.ToFloat64(m.upstreamRequests.WithLabelValues("404", "get")))
}

func TestMetrics_Handler(t *testing.T) {
	t.Parallel()

	m := New()
	m.ObserveResolution("movieGenres", nil)

	w := httptest.NewRecorder()
	m.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.True(t, strings.Contains(body, `movie_backend_graphql_resolutions_total{field="movieGenres",outcome="ok"} 1`))
	assert.True(t, strings.Contains(body, "go_goroutines"))
}
