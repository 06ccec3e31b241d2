package http_test

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	httpadapter "github.com/treehub/storm-monitor/internal/adapter/http"
	"github.com/treehub/storm-monitor/internal/scanner"
)

type stubSweeps struct {
	status scanner.SweepStatus
	swept  bool
}

func (s *stubSweeps) LastSweep() (scanner.SweepStatus, bool) { return s.status, s.swept }

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func doRequest(t *testing.T, srv *httpadapter.Server, path string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func TestHealthz(t *testing.T) {
	srv := httpadapter.NewServer(":0", &stubSweeps{}, testLogger())

	rec := doRequest(t, srv, "/healthz")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "healthy", body["status"])
	assert.Equal(t, "storm-monitor", body["service"])
}

func TestReadyzBeforeFirstSweep(t *testing.T) {
	srv := httpadapter.NewServer(":0", &stubSweeps{}, testLogger())

	rec := doRequest(t, srv, "/readyz")

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "not ready", body["status"])
	assert.Equal(t, "no completed sweep yet", body["reason"])
	assert.NotContains(t, body, "last_sweep")
}

func TestReadyzCarriesSweepSummary(t *testing.T) {
	completed := time.Date(2026, 4, 12, 18, 30, 0, 0, time.UTC)
	srv := httpadapter.NewServer(":0", &stubSweeps{
		status: scanner.SweepStatus{
			CompletedAt:     completed,
			Locations:       50,
			StormEvents:     3,
			FailedLocations: 1,
		},
		swept: true,
	}, testLogger())

	rec := doRequest(t, srv, "/readyz")

	assert.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Status string `json:"status"`
		Sweep  struct {
			CompletedAt     time.Time `json:"completed_at"`
			Locations       int       `json:"locations_scanned"`
			StormEvents     int       `json:"storm_events"`
			FailedLocations int       `json:"failed_locations"`
		} `json:"last_sweep"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "ready", body.Status)
	assert.True(t, completed.Equal(body.Sweep.CompletedAt))
	assert.Equal(t, 50, body.Sweep.Locations)
	assert.Equal(t, 3, body.Sweep.StormEvents)
	assert.Equal(t, 1, body.Sweep.FailedLocations)
}

func TestReadyzReportsCalmSweep(t *testing.T) {
	// Zero events is still ready: a calm forecast must not flap the probe.
	srv := httpadapter.NewServer(":0", &stubSweeps{
		status: scanner.SweepStatus{CompletedAt: time.Now().UTC(), Locations: 50},
		swept:  true,
	}, testLogger())

	rec := doRequest(t, srv, "/readyz")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"storm_events":0`)
}

func TestMetricsEndpoint(t *testing.T) {
	srv := httpadapter.NewServer(":0", &stubSweeps{}, testLogger())

	rec := doRequest(t, srv, "/metrics")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "go_goroutines")
}

func TestUnknownMethodRejected(t *testing.T) {
	srv := httpadapter.NewServer(":0", &stubSweeps{}, testLogger())

	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/healthz", nil))

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}
