package router

import (
	"github.com/deppfellow/resource-api/internal/handler"
	"github.com/labstack/echo/v4"
)

// registerSystemRoutes registers endpoints that are not part of the
// resource API: health, the docs page and its static assets.
func registerSystemRoutes(r *echo.Echo, h *handler.Handlers) {
	r.GET("/api/health", h.Health.CheckHealth)

	// openapi.json and anything else the docs page loads.
	r.Static("/static", handler.StaticDir)

	r.GET("/api/docs", h.OpenAPI.ServeOpenAPIUI)
}
