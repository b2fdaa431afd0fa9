package http

import (
	"context"
	stdErrors "errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/itinerary-service/internal/config"
	"github.com/itinerary-service/internal/delivery/http/handler"
	"github.com/itinerary-service/internal/pkg/metrics"
	"github.com/itinerary-service/internal/usecase/dto"
)

type pinger struct{ err error }

func (p pinger) Health(context.Context) error { return p.err }

type panicPreviewer struct{}

func (panicPreviewer) Preview(context.Context, string, string, []byte) *dto.PreviewOutcome {
	panic("boom")
}

func newTestServer(deps map[string]handler.Pinger) *Server {
	metrics.Register()
	cfg := &config.Config{Auth: config.AuthConfig{JWTSecret: "s", UserClaim: "sub"}}
	return NewServer(cfg, zap.NewNop(),
		handler.NewRoutePreviewHandler(panicPreviewer{}, zap.NewNop()),
		handler.NewHealthHandler(deps, zap.NewNop()),
	)
}

func TestServer_Health(t *testing.T) {
	s := newTestServer(nil)

	resp, err := s.App().Test(httptest.NewRequest(http.MethodGet, "/api/v1/health", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestServer_Ready(t *testing.T) {
	t.Run("all dependencies up", func(t *testing.T) {
		s := newTestServer(map[string]handler.Pinger{"postgres": pinger{}, "redis": nil})

		resp, err := s.App().Test(httptest.NewRequest(http.MethodGet, "/api/v1/ready", nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		body, _ := io.ReadAll(resp.Body)
		assert.Contains(t, string(body), `"postgres":"ok"`)
		assert.Contains(t, string(body), `"total":1`)
	})

	t.Run("dependency down", func(t *testing.T) {
		s := newTestServer(map[string]handler.Pinger{
			"postgres": pinger{},
			"redis":    pinger{err: stdErrors.New("connection refused")},
		})

		resp, err := s.App().Test(httptest.NewRequest(http.MethodGet, "/api/v1/ready", nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)

		body, _ := io.ReadAll(resp.Body)
		assert.Contains(t, string(body), `"redis":"unavailable"`)
	})
}

func TestServer_Metrics(t *testing.T) {
	s := newTestServer(nil)

	_, err := s.App().Test(httptest.NewRequest(http.MethodGet, "/api/v1/health", nil))
	require.NoError(t, err)

	resp, err := s.App().Test(httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "http_requests_total")
}

func TestServer_UnknownRoute(t *testing.T) {
	s := newTestServer(nil)

	resp, err := s.App().Test(httptest.NewRequest(http.MethodGet, "/nope", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), `"code":"NOT_FOUND"`)
}

func TestServer_PanicIsInternalError(t *testing.T) {
	s := newTestServer(nil)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/lists/x/route-preview", nil)
	resp, err := s.App().Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), `"code":"INTERNAL_SERVER_ERROR"`)
}
