package handler

import (
	"github.com/deppfellow/resource-api/internal/model"
)

// NewRequest returns a constructor for *T, the form Handle expects.
func NewRequest[T any]() func() *T {
	return func() *T { return new(T) }
}

// ListResourcesRequest is GET /api/resources. An empty Type lists everything.
type ListResourcesRequest struct {
	Type string `query:"type"`
}

func (r *ListResourcesRequest) Validate() error {
	return nil
}

// ResourceIDRequest is any route addressing a single resource by path id.
// The id is not checked here: a malformed id is reported as not found by
// the repository.
type ResourceIDRequest struct {
	ID string `param:"id"`
}

func (r *ResourceIDRequest) Validate() error {
	return nil
}

// CreateResourceRequest is the POST body. An "id" in the body is ignored.
type CreateResourceRequest struct {
	model.ResourceFields
}

func (r *CreateResourceRequest) Validate() error {
	return r.ResourceFields.Validate()
}

// UpdateResourceRequest is the PUT body plus the path id. The path id
// always wins over any "id" in the body.
type UpdateResourceRequest struct {
	ID string `param:"id" json:"-"`
	model.ResourceFields
}

func (r *UpdateResourceRequest) Validate() error {
	return r.ResourceFields.Validate()
}
