package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/deppfellow/resource-api/internal/config"
	"github.com/deppfellow/resource-api/internal/server"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeChecker struct {
	pingErr    error
	version    string
	versionErr error
}

func (f fakeChecker) Ping(context.Context) error { return f.pingErr }
func (f fakeChecker) ServerVersion(context.Context) (string, error) {
	return f.version, f.versionErr
}

func testServer() *server.Server {
	log := zerolog.Nop()
	return &server.Server{Config: config.Defaults(), Logger: &log}
}

func serve(h echo.HandlerFunc, method, target string) *httptest.ResponseRecorder {
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(method, target, nil), rec)
	if err := h(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	return rec
}

func TestCheckHealth(t *testing.T) {
	tests := []struct {
		name        string
		checker     fakeChecker
		wantStatus  int
		wantOverall string
		wantVersion interface{}
	}{
		{
			name:        "healthy",
			checker:     fakeChecker{version: "7.0.12"},
			wantStatus:  http.StatusOK,
			wantOverall: "healthy",
			wantVersion: "7.0.12",
		},
		{
			name:        "version unavailable",
			checker:     fakeChecker{versionErr: errors.New("unauthorized")},
			wantStatus:  http.StatusOK,
			wantOverall: "healthy",
			wantVersion: "unknown",
		},
		{
			name:        "unreachable",
			checker:     fakeChecker{pingErr: errors.New("server selection timeout")},
			wantStatus:  http.StatusServiceUnavailable,
			wantOverall: "unhealthy",
			wantVersion: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHealthHandler(testServer(), tt.checker)
			rec := serve(h.CheckHealth, http.MethodGet, "/api/health")

			assert.Equal(t, tt.wantStatus, rec.Code)

			var body map[string]interface{}
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.wantOverall, body["status"])
			assert.Equal(t, "development", body["environment"])

			database, ok := body["database"].(map[string]interface{})
			require.True(t, ok)
			assert.Equal(t, tt.wantVersion, database["version"])
		})
	}
}

func TestServeOpenAPIUI(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "openapi.html"), []byte("<html>docs</html>"), 0o644))

	rec := serve(NewOpenAPIHandler(testServer(), dir).ServeOpenAPIUI, http.MethodGet, "/api/docs")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "no-cache", rec.Header().Get("Cache-Control"))
	assert.Contains(t, rec.Body.String(), "docs")
}

func TestServeOpenAPIUI_Missing(t *testing.T) {
	h := NewOpenAPIHandler(testServer(), t.TempDir())

	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/api/docs", nil), httptest.NewRecorder())
	err := h.ServeOpenAPIUI(c)

	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestGreeting(t *testing.T) {
	rec := serve(Greeting, http.MethodGet, "/")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"Hello World"}`, rec.Body.String())
}
