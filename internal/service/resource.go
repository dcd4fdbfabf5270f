package service

import (
	"context"

	"github.com/deppfellow/resource-api/internal/model"
	"github.com/rs/zerolog"
)

// ResourceStore is the persistence contract the service needs.
// repository.ResourceRepository implements it against MongoDB; tests use
// an in-memory version.
type ResourceStore interface {
	InsertOne(ctx context.Context, fields model.ResourceFields) (model.Resource, error)
	FindMany(ctx context.Context, filter model.ResourceFilter) ([]model.Resource, error)
	FindOneByID(ctx context.Context, id string) (model.Resource, error)
	ReplaceOneByID(ctx context.Context, id string, fields model.ResourceFields) (model.Resource, error)
	DeleteOneByID(ctx context.Context, id string) error
}

// ResourceService exposes the Resource operations. Successful writes are
// logged through the request logger carried by ctx (zerolog.Ctx).
type ResourceService struct {
	store ResourceStore
}

func NewResourceService(store ResourceStore) *ResourceService {
	return &ResourceService{store: store}
}

// List returns resources matching filter. The slice is never nil.
func (s *ResourceService) List(ctx context.Context, filter model.ResourceFilter) ([]model.Resource, error) {
	resources, err := s.store.FindMany(ctx, filter)
	if err != nil {
		return nil, err
	}
	if resources == nil {
		resources = []model.Resource{}
	}
	return resources, nil
}

func (s *ResourceService) Get(ctx context.Context, id string) (model.Resource, error) {
	return s.store.FindOneByID(ctx, id)
}

func (s *ResourceService) Create(ctx context.Context, fields model.ResourceFields) (model.Resource, error) {
	created, err := s.store.InsertOne(ctx, fields)
	if err != nil {
		return model.Resource{}, err
	}

	zerolog.Ctx(ctx).Info().
		Str("resource_id", created.ID.Hex()).
		Str("type", created.Type).
		Msg("resource created")
	return created, nil
}

// Update replaces every mutable field of the resource with id.
func (s *ResourceService) Update(ctx context.Context, id string, fields model.ResourceFields) (model.Resource, error) {
	updated, err := s.store.ReplaceOneByID(ctx, id, fields)
	if err != nil {
		return model.Resource{}, err
	}

	zerolog.Ctx(ctx).Info().Str("resource_id", id).Msg("resource replaced")
	return updated, nil
}

func (s *ResourceService) Delete(ctx context.Context, id string) error {
	if err := s.store.DeleteOneByID(ctx, id); err != nil {
		return err
	}

	zerolog.Ctx(ctx).Info().Str("resource_id", id).Msg("resource deleted")
	return nil
}
