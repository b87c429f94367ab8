package http_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	httpadapter "github.com/couchcryptid/satcom-forecast/internal/adapter/http"
	"github.com/couchcryptid/satcom-forecast/internal/domain"
	"github.com/couchcryptid/satcom-forecast/internal/observability"
	"github.com/couchcryptid/satcom-forecast/internal/pipeline"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockReadiness struct {
	err error
}

func (m *mockReadiness) CheckReadiness(_ context.Context) error { return m.err }

type failingRenderer struct{}

func (failingRenderer) Render(_ context.Context, _ domain.RenderRequest) (domain.RenderReply, error) {
	return domain.RenderReply{}, errors.New("decode nws forecast: unexpected end of JSON input")
}

func newTestServer(readyErr error) *httpadapter.Server {
	renderer := pipeline.NewRenderer(pipeline.Options{}, slog.Default(), observability.NewMetricsForTesting())
	return httpadapter.NewServer(":0", &mockReadiness{err: readyErr}, renderer, slog.Default())
}

func TestHealthzReturns200(t *testing.T) {
	srv := newTestServer(nil)
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)

	srv.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestReadyzReturns200WhenReady(t *testing.T) {
	srv := newTestServer(nil)
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/readyz", nil)

	srv.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestReadyzReturns503WhenNotReady(t *testing.T) {
	srv := newTestServer(fmt.Errorf("not ready yet"))
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/readyz", nil)

	srv.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestMetricsEndpoint(t *testing.T) {
	srv := newTestServer(nil)
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)

	srv.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "go_goroutines")
}

func TestRenderReturnsSegments(t *testing.T) {
	srv := newTestServer(nil)
	body := `{"id":"req-1","mode":"compact","device":"inreach","forecast_text":"This Afternoon: A chance of showers. Mostly cloudy, with a high near 50. Southeast wind around 10 mph. Chance of precipitation is 40%."}`
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/render", strings.NewReader(body))

	srv.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var reply domain.RenderReply
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &reply))
	assert.Equal(t, "req-1", reply.RequestID)
	assert.Equal(t, "compact", reply.Mode)
	assert.Equal(t, 160, reply.Limit)
	assert.Equal(t, []string{"This Afternoon: Rain(40%) (H:50, SE10mph) - A chance of showers"}, reply.Segments)
}

func TestRenderRejectsInvalidRequests(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"malformed json", `{"forecast_text":`},
		{"missing forecast", `{"id":"req-2","mode":"summary"}`},
		{"bad sender", `{"sender":"not-an-email","forecast_text":"Today: Sunny."}`},
		{"negative days", `{"days":-1,"forecast_text":"Today: Sunny."}`},
		{"latitude out of range", `{"lat":123.4,"forecast_text":"Today: Sunny."}`},
	}
	srv := newTestServer(nil)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/render", strings.NewReader(tt.body))

			srv.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			var body map[string]string
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.NotEmpty(t, body["error"])
		})
	}
}

func TestRenderReturns422WhenRenderFails(t *testing.T) {
	srv := httpadapter.NewServer(":0", &mockReadiness{}, failingRenderer{}, slog.Default())
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/render", strings.NewReader(`{"forecast":{"properties":{}}}`))

	srv.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestRenderRejectsGet(t *testing.T) {
	srv := newTestServer(nil)
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/render", nil)

	srv.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}
