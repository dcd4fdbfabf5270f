package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/deppfellow/resource-api/internal/middleware"
	"github.com/deppfellow/resource-api/internal/server"
	"github.com/labstack/echo/v4"
)

// DatabaseChecker is the part of database.Database the health check uses.
type DatabaseChecker interface {
	Ping(ctx context.Context) error
	ServerVersion(ctx context.Context) (string, error)
}

// HealthHandler reports whether the service can reach its database.
type HealthHandler struct {
	Handler
	db DatabaseChecker
}

func NewHealthHandler(s *server.Server, db DatabaseChecker) *HealthHandler {
	return &HealthHandler{
		Handler: NewHandler(s),
		db:      db,
	}
}

// CheckHealth pings the database and reads its version.
//
// It returns:
//   - 200 OK when the ping succeeds
//   - 503 Service Unavailable otherwise
//
// A failing version lookup is reported but does not make the service unhealthy.
func (h *HealthHandler) CheckHealth(c echo.Context) error {
	start := time.Now()

	logger := middleware.GetLogger(c).With().
		Str("operation", "health_check").
		Logger()

	response := map[string]interface{}{
		"status":      "healthy",
		"timestamp":   time.Now().UTC(),
		"environment": h.server.Config.Primary.Env,
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.server.Config.Health.Timeout)
	defer cancel()

	dbStart := time.Now()
	database := map[string]interface{}{}
	response["database"] = database

	if err := h.db.Ping(ctx); err != nil {
		database["status"] = "unhealthy"
		database["error"] = err.Error()
		database["response_time"] = time.Since(dbStart).String()

		response["status"] = "unhealthy"

		logger.Error().
			Err(err).
			Dur("response_time", time.Since(dbStart)).
			Msg("database health check failed")

		return c.JSON(http.StatusServiceUnavailable, response)
	}

	database["status"] = "healthy"

	version, err := h.db.ServerVersion(ctx)
	if err != nil {
		logger.Warn().Err(err).Msg("could not read database version")
		version = "unknown"
	}
	database["version"] = version
	database["response_time"] = time.Since(dbStart).String()

	logger.Debug().
		Dur("total_duration", time.Since(start)).
		Msg("health check passed")

	return c.JSON(http.StatusOK, response)
}
