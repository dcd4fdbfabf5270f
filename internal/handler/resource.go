package handler

import (
	"github.com/deppfellow/resource-api/internal/model"
	"github.com/deppfellow/resource-api/internal/server"
	"github.com/deppfellow/resource-api/internal/service"
	"github.com/labstack/echo/v4"
)

// MessageResponse is the body of endpoints that only report an outcome.
type MessageResponse struct {
	Message string `json:"message"`
}

// ResourceHandler serves /api/resources.
type ResourceHandler struct {
	Handler
	resources *service.ResourceService
}

func NewResourceHandler(s *server.Server, resources *service.ResourceService) *ResourceHandler {
	return &ResourceHandler{
		Handler:   NewHandler(s),
		resources: resources,
	}
}

func (h *ResourceHandler) ListResources(c echo.Context, req *ListResourcesRequest) ([]model.Resource, error) {
	return h.resources.List(c.Request().Context(), model.ResourceFilter{Type: req.Type})
}

func (h *ResourceHandler) GetResource(c echo.Context, req *ResourceIDRequest) (model.Resource, error) {
	return h.resources.Get(c.Request().Context(), req.ID)
}

func (h *ResourceHandler) CreateResource(c echo.Context, req *CreateResourceRequest) (model.Resource, error) {
	return h.resources.Create(c.Request().Context(), req.ResourceFields)
}

func (h *ResourceHandler) UpdateResource(c echo.Context, req *UpdateResourceRequest) (model.Resource, error) {
	return h.resources.Update(c.Request().Context(), req.ID, req.ResourceFields)
}

func (h *ResourceHandler) DeleteResource(c echo.Context, req *ResourceIDRequest) (MessageResponse, error) {
	if err := h.resources.Delete(c.Request().Context(), req.ID); err != nil {
		return MessageResponse{}, err
	}
	return MessageResponse{Message: "Resource deleted successfully"}, nil
}
