package handler

import (
	"github.com/deppfellow/resource-api/internal/server"
	"github.com/deppfellow/resource-api/internal/service"
)

// StaticDir is where the docs page and other static assets live, relative
// to the working directory.
const StaticDir = "static"

// Handlers groups every HTTP handler so the router receives one value.
type Handlers struct {
	Resource *ResourceHandler
	Health   *HealthHandler
	OpenAPI  *OpenAPIHandler
}

func NewHandlers(s *server.Server, services *service.Services) *Handlers {
	return &Handlers{
		Resource: NewResourceHandler(s, services.Resources),
		Health:   NewHealthHandler(s, s.DB),
		OpenAPI:  NewOpenAPIHandler(s, StaticDir),
	}
}
