// Package router builds the echo instance: global middleware, the error
// handler and the route table.
package router

import (
	"net/http"

	"github.com/deppfellow/resource-api/internal/handler"
	"github.com/deppfellow/resource-api/internal/middleware"
	"github.com/deppfellow/resource-api/internal/server"
	"github.com/labstack/echo/v4"
)

// NewRouter returns a ready echo instance.
//
// Middleware order matters: RequestID runs before ContextEnhancer so the
// request logger carries the id, and RequestLogger runs after both so the
// "API" line is written through that logger.
func NewRouter(s *server.Server, h *handler.Handlers) *echo.Echo {
	middlewares := middleware.NewMiddlewares(s)

	router := echo.New()
	router.HideBanner = true
	router.HidePort = true
	router.HTTPErrorHandler = middlewares.Global.GlobalErrorHandler

	router.Use(
		middlewares.Global.CORS(),
		middlewares.Global.Secure(),
		middleware.RequestID(),
		middlewares.ContextEnhancer.EnhanceContext(),
		middlewares.Global.RequestLogger(),
		middlewares.Global.Recover(),
	)

	router.GET("/", handler.Greeting)

	registerSystemRoutes(router, h)

	api := router.Group("/api")
	registerResourceRoutes(api, h)

	return router
}

func registerResourceRoutes(api *echo.Group, h *handler.Handlers) {
	resources := api.Group("/resources")

	resources.GET("", handler.Handle(
		h.Resource.ListResources,
		http.StatusOK,
		handler.NewRequest[handler.ListResourcesRequest](),
	))

	resources.POST("", handler.Handle(
		h.Resource.CreateResource,
		http.StatusCreated,
		handler.NewRequest[handler.CreateResourceRequest](),
	))

	resources.GET("/:id", handler.Handle(
		h.Resource.GetResource,
		http.StatusOK,
		handler.NewRequest[handler.ResourceIDRequest](),
	))

	resources.PUT("/:id", handler.Handle(
		h.Resource.UpdateResource,
		http.StatusOK,
		handler.NewRequest[handler.UpdateResourceRequest](),
	))

	resources.DELETE("/:id", handler.Handle(
		h.Resource.DeleteResource,
		http.StatusOK,
		handler.NewRequest[handler.ResourceIDRequest](),
	))
}
