package controller

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hugohenrick/chat-offline/internal/mock"
	"github.com/hugohenrick/chat-offline/pkg/logger"
)

func newGatewayEngine(t *testing.T, upstreamURL string) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	router := mock.NewRouter(logger.NewNopLogger())
	router.Handle("settings", mock.On(http.MethodGet, mock.Exact("/api/v1/users/settings")),
		func(ctx context.Context, req *mock.Request) (mock.Response, error) {
			return mock.OK(map[string]bool{"mocked": true}), nil
		})

	gateway, err := NewGatewayController(router, upstreamURL, logger.NewNopLogger())
	require.NoError(t, err)

	engine := gin.New()
	engine.NoRoute(gateway.Serve)
	return engine
}

func TestGateway_WithoutUpstream(t *testing.T) {
	engine := newGatewayEngine(t, "")

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/users/settings", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"mocked":true}`, w.Body.String())

	w = httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/index.html", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"detail":"Not Found"}`, w.Body.String())
}

func TestGateway_WithUpstream(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{
			"upstream": r.Method + " " + r.URL.Path,
			"body":     string(body),
		})
	}))
	defer upstream.Close()

	engine := newGatewayEngine(t, upstream.URL)

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/users/settings", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"mocked":true}`, w.Body.String())

	w = httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/index.html", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"upstream":"GET /index.html","body":""}`, w.Body.String())

	w = httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/auths/signin", strings.NewReader(`{"email":"a"}`)))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"upstream":"POST /api/auths/signin","body":"{\"email\":\"a\"}"}`, w.Body.String())
}

func TestGateway_UnreachableUpstream(t *testing.T) {
	upstream := httptest.NewServer(http.NotFoundHandler())
	address := upstream.URL
	upstream.Close()

	engine := newGatewayEngine(t, address)

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/index.html", nil))
	assert.Equal(t, http.StatusBadGateway, w.Code)
	assert.JSONEq(t, `{"detail":"Bad Gateway"}`, w.Body.String())
}

func TestNewGatewayController_InvalidUpstream(t *testing.T) {
	_, err := NewGatewayController(mock.NewRouter(nil), "localhost", logger.NewNopLogger())
	assert.Error(t, err)
}
