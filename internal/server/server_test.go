package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/GreenMap_Go/internal/domain"
	"github.com/osse101/GreenMap_Go/internal/geometry"
	"github.com/osse101/GreenMap_Go/internal/handler"
	"github.com/osse101/GreenMap_Go/internal/placement"
	"github.com/osse101/GreenMap_Go/internal/sse"
	"github.com/osse101/GreenMap_Go/mocks"
)

type stubPinger struct{ err error }

func (s stubPinger) Ping(context.Context) error { return s.err }

func newTestServer(t *testing.T, store handler.Pinger) (*Server, *mocks.MockTreeService) {
	t.Helper()
	trees := mocks.NewMockTreeService(t)
	trees.EXPECT().Boundary().Return(geometry.DefaultRegion()).Maybe()
	admitter := mocks.NewMockAdmissionAdmitter(t)

	hub := sse.NewHub()
	hub.Start()
	t.Cleanup(hub.Stop)

	srv := NewServer(0, Deps{
		Store:       store,
		StoreDriver: "memory",
		Trees:       trees,
		Admitter:    admitter,
		Sessions:    placement.NewManager(trees, admitter, placement.ManagerConfig{}),
		Hub:         hub,
		Canvas:      handler.Canvas{Width: 800, Height: 600},
	})
	return srv, trees
}

func do(t *testing.T, srv *Server, method, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, nil)
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)
	return rec
}

func TestRouter_HealthAndVersion(t *testing.T) {
	srv, _ := newTestServer(t, stubPinger{})

	assert.Equal(t, http.StatusOK, do(t, srv, "GET", "/healthz").Code)
	assert.Equal(t, http.StatusOK, do(t, srv, "GET", "/readyz").Code)
	assert.Equal(t, http.StatusOK, do(t, srv, "GET", "/metrics").Code)

	rec := do(t, srv, "GET", "/version")
	require.Equal(t, http.StatusOK, rec.Code)
	var info handler.VersionInfo
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &info))
	assert.Equal(t, "memory", info.Store)
	assert.False(t, info.Classifier)
}

func TestRouter_ReadyzStoreDown(t *testing.T) {
	srv, _ := newTestServer(t, stubPinger{err: errors.New("connection refused")})

	rec := do(t, srv, "GET", "/readyz")

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.NotContains(t, rec.Body.String(), "connection refused")
}

func TestRouter_TreesAndHeaders(t *testing.T) {
	srv, trees := newTestServer(t, stubPinger{})
	trees.EXPECT().List(mock.Anything).Return([]domain.Tree{{ID: 1, Name: "Oak", X: 400, Y: 300}}, nil).Once()

	rec := do(t, srv, "GET", "/api/v1/trees")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"Oak"`)
	assert.Equal(t, HeaderValueNoSniff, rec.Header().Get(HeaderContentType))
	assert.NotEmpty(t, rec.Header().Get(HeaderRequestID))
}

func TestRouter_SessionLifecycle(t *testing.T) {
	srv, _ := newTestServer(t, stubPinger{})

	rec := do(t, srv, "POST", "/api/v1/sessions")
	require.Equal(t, http.StatusCreated, rec.Code)
	var snap placement.Snapshot
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &snap))

	rec = do(t, srv, "GET", "/api/v1/sessions/"+snap.ID)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = do(t, srv, "POST", "/api/v1/sessions/"+snap.ID+"/drag")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = do(t, srv, "GET", "/api/v1/sessions/unknown")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRouter_UnknownRoute(t *testing.T) {
	srv, _ := newTestServer(t, stubPinger{})

	assert.Equal(t, http.StatusNotFound, do(t, srv, "GET", "/api/v1/nothing").Code)
	assert.Equal(t, http.StatusMethodNotAllowed, do(t, srv, "PATCH", "/api/v1/trees").Code)
}
