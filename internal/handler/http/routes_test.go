package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/Sigi3012/Midnight/internal/logger"
)

func TestRoutes_Healthz(t *testing.T) {
	tests := []struct {
		name       string
		pingErr    error
		wantStatus int
	}{
		{name: "store reachable", wantStatus: http.StatusOK},
		{name: "store down", pingErr: assert.AnError, wantStatus: http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newHandlerFixture(t)
			f.health.EXPECT().PingContext(gomock.Any()).Return(tt.pingErr)

			rec := httptest.NewRecorder()
			f.h.Init().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestRoutes_Metrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	counter := prometheus.NewCounter(prometheus.CounterOpts{Name: "midnight_test_total", Help: "test"})
	reg.MustRegister(counter)
	counter.Add(3)

	h := NewHandler(Dependencies{Gatherer: reg}, logger.Nop())

	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "midnight_test_total 3")
}

func TestRoutes_OptionalEndpoints(t *testing.T) {
	h := NewHandler(Dependencies{}, logger.Nop())
	router := h.Init()

	for _, path := range []string{"/healthz", "/metrics"} {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusNotFound, rec.Code, path)
	}
}

func TestRoutes_Version(t *testing.T) {
	f := newHandlerFixture(t)

	rec := httptest.NewRecorder()
	f.h.Init().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/version", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"version":"1.4.0","date":"2026-05-01","commit":"abc123"}`, rec.Body.String())
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
}

func TestRoutes_MethodNotServed(t *testing.T) {
	tests := []struct {
		method string
		path   string
	}{
		{method: http.MethodGet, path: "/interactions"},
		{method: http.MethodPut, path: "/interactions"},
		{method: http.MethodPost, path: "/version"},
		{method: http.MethodDelete, path: "/healthz"},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			f := newHandlerFixture(t)

			rec := httptest.NewRecorder()
			f.h.Init().ServeHTTP(rec, httptest.NewRequest(tt.method, tt.path, nil))

			assert.Equal(t, http.StatusNotFound, rec.Code)
		})
	}
}

func TestParsePublicKey(t *testing.T) {
	valid := "e7d0e6fc7c1cbb0e8c0a9b7b1ac0bdf9a1b1b4a7e9e4c2f3d6a1b0c9d8e7f6a5"

	key, err := ParsePublicKey(valid)
	require.NoError(t, err)
	assert.Len(t, key, 32)

	_, err = ParsePublicKey("not-hex")
	assert.ErrorIs(t, err, ErrInvalidPublicKey)

	_, err = ParsePublicKey("abcd")
	assert.ErrorIs(t, err, ErrInvalidPublicKey)
}
