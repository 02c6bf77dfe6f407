package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func serve(r chi.Router, method, path string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(method, path, nil))
	return rec
}

func TestMiddleware_LabelsByRoutePattern(t *testing.T) {
	r := chi.NewRouter()
	r.Use(Middleware)
	r.Get("/trees/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	counter := HTTPRequestsTotal.WithLabelValues(http.MethodGet, "/trees/{id}", "404")
	before := testutil.ToFloat64(counter)

	serve(r, http.MethodGet, "/trees/1")
	serve(r, http.MethodGet, "/trees/2")

	assert.Equal(t, before+2, testutil.ToFloat64(counter))
}

func TestMiddleware_ImplicitStatus(t *testing.T) {
	r := chi.NewRouter()
	r.Use(Middleware)
	r.Get("/plain", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("ok"))
	})

	counter := HTTPRequestsTotal.WithLabelValues(http.MethodGet, "/plain", "200")
	before := testutil.ToFloat64(counter)

	rec := serve(r, http.MethodGet, "/plain")

	assert.Equal(t, "ok", rec.Body.String())
	assert.Equal(t, before+1, testutil.ToFloat64(counter))
}

func TestMiddleware_StreamsSkipLatency(t *testing.T) {
	r := chi.NewRouter()
	r.Use(Middleware)
	r.Get("/stream", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", eventStreamType)
		_, _ = w.Write([]byte(": hi\n\n"))
		w.(http.Flusher).Flush()
	})

	rec := serve(r, http.MethodGet, "/stream")

	assert.True(t, rec.Flushed)
	assert.Equal(t, 1.0, testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues(http.MethodGet, "/stream", "200")))
	assert.False(t, HTTPRequestDuration.DeleteLabelValues(http.MethodGet, "/stream"), "stream latency recorded")
}
