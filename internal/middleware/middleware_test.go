package middleware

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/deppfellow/resource-api/internal/config"
	"github.com/deppfellow/resource-api/internal/errs"
	"github.com/deppfellow/resource-api/internal/server"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"
)

func testServer() *server.Server {
	log := zerolog.Nop()
	return &server.Server{Config: config.Defaults(), Logger: &log}
}

func TestRequestID(t *testing.T) {
	e := echo.New()
	e.Use(RequestID())
	e.GET("/", func(c echo.Context) error {
		return c.String(http.StatusOK, GetRequestID(c))
	})

	t.Run("generated", func(t *testing.T) {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		id := rec.Header().Get(RequestIDHeader)
		assert.Len(t, id, 36)
		assert.Equal(t, id, rec.Body.String())
	})

	t.Run("propagated", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(RequestIDHeader, "abc-123")
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, "abc-123", rec.Header().Get(RequestIDHeader))
		assert.Equal(t, "abc-123", rec.Body.String())
	})
}

func TestEnhanceContext(t *testing.T) {
	var buf bytes.Buffer
	log := zerolog.New(&buf)
	s := &server.Server{Config: config.Defaults(), Logger: &log}

	e := echo.New()
	e.Use(RequestID(), NewContextEnhancer(s).EnhanceContext())

	var fromEcho *zerolog.Logger
	e.GET("/resources/:id", func(c echo.Context) error {
		fromEcho = GetLogger(c)
		// What a service sees: only the request's context.Context.
		zerolog.Ctx(c.Request().Context()).Info().Msg("from service")
		return c.NoContent(http.StatusNoContent)
	})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/resources/42", nil))

	require.NotNil(t, fromEcho)
	assert.NotEqual(t, zerolog.Disabled, fromEcho.GetLevel())

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry))
	assert.Equal(t, "from service", entry["message"])
	assert.Equal(t, rec.Header().Get(RequestIDHeader), entry["request_id"])
	assert.Equal(t, "/resources/:id", entry["path"])
	assert.Equal(t, http.MethodGet, entry["method"])
}

func TestGetLogger_WithoutEnhancer(t *testing.T) {
	c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
	assert.Equal(t, zerolog.Disabled, GetLogger(c).GetLevel())
}

func TestGlobalErrorHandler(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
		wantMsg    string
	}{
		{
			name:       "application error",
			err:        errs.NewBadRequestError("Validation failed", true, nil, []errs.FieldError{{Field: "title", Error: "is required"}}),
			wantStatus: http.StatusBadRequest,
			wantCode:   "BAD_REQUEST",
			wantMsg:    "Validation failed",
		},
		{
			name:       "missing document",
			err:        fmt.Errorf("find resource x: %w", mongo.ErrNoDocuments),
			wantStatus: http.StatusNotFound,
			wantCode:   "NOT_FOUND",
			wantMsg:    "Resource not found",
		},
		{
			name:       "unknown route",
			err:        echo.ErrNotFound,
			wantStatus: http.StatusNotFound,
			wantCode:   "NOT_FOUND",
			wantMsg:    "Route not found",
		},
		{
			name:       "wrong method",
			err:        echo.ErrMethodNotAllowed,
			wantStatus: http.StatusMethodNotAllowed,
			wantCode:   "METHOD_NOT_ALLOWED",
			wantMsg:    "Method Not Allowed",
		},
		{
			name:       "infrastructure",
			err:        errors.New("connection refused to 10.0.0.1"),
			wantStatus: http.StatusInternalServerError,
			wantCode:   "INTERNAL_SERVER_ERROR",
			wantMsg:    "Internal Server Error",
		},
	}

	global := NewGlobalMiddlewares(testServer())

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			rec := httptest.NewRecorder()
			c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

			global.GlobalErrorHandler(tt.err, c)

			assert.Equal(t, tt.wantStatus, rec.Code)

			var body errs.HTTPError
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.wantStatus, body.Status)
			assert.Equal(t, tt.wantCode, body.Code)
			assert.Equal(t, tt.wantMsg, body.Message)
			assert.NotContains(t, rec.Body.String(), "10.0.0.1")
		})
	}
}

func TestStatusFromError(t *testing.T) {
	assert.Equal(t, http.StatusOK, StatusFromError(http.StatusOK, nil))
	assert.Equal(t, http.StatusNotFound, StatusFromError(http.StatusOK, mongo.ErrNoDocuments))
	assert.Equal(t, http.StatusBadRequest, StatusFromError(http.StatusOK, errs.NewBadRequestError("x", false, nil, nil)))
	assert.Equal(t, http.StatusMethodNotAllowed, StatusFromError(http.StatusOK, echo.ErrMethodNotAllowed))
	assert.Equal(t, http.StatusInternalServerError, StatusFromError(http.StatusOK, errors.New("boom")))
}

func TestGlobalErrorHandler_LogsErrorClass(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		wantClass string
	}{
		{name: "timeout", err: fmt.Errorf("find resources: %w", context.DeadlineExceeded), wantClass: "timeout"},
		{name: "missing document", err: mongo.ErrNoDocuments, wantClass: "not_found"},
		{name: "unclassified", err: errors.New("boom"), wantClass: "other"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			log := zerolog.New(&buf)
			global := NewGlobalMiddlewares(&server.Server{Config: config.Defaults(), Logger: &log})

			e := echo.New()
			c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
			c.Set(LoggerKey, &log)

			global.GlobalErrorHandler(tt.err, c)

			var entry map[string]interface{}
			require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry))
			assert.Equal(t, tt.wantClass, entry["error_class"])
		})
	}

	t.Run("application errors carry no class", func(t *testing.T) {
		var buf bytes.Buffer
		log := zerolog.New(&buf)
		global := NewGlobalMiddlewares(&server.Server{Config: config.Defaults(), Logger: &log})

		c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
		c.Set(LoggerKey, &log)

		global.GlobalErrorHandler(errs.NewBadRequestError("x", false, nil, nil), c)
		assert.NotContains(t, buf.String(), "error_class")
	})
}
