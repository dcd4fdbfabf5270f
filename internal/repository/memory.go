package repository

import (
	"context"
	"fmt"
	"sync"

	"github.com/deppfellow/resource-api/internal/model"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// MemoryResourceRepository keeps Resources in process memory.
//
// It reports the same errors as ResourceRepository (mongo.ErrNoDocuments
// for a missing document, primitive.ErrInvalidHex for a malformed id), so
// code above the repository cannot tell the two apart. Used by tests that
// need a working store without a MongoDB deployment.
type MemoryResourceRepository struct {
	mu    sync.RWMutex
	order []primitive.ObjectID
	docs  map[primitive.ObjectID]model.ResourceFields
}

func NewMemoryResourceRepository() *MemoryResourceRepository {
	return &MemoryResourceRepository{docs: make(map[primitive.ObjectID]model.ResourceFields)}
}

func (r *MemoryResourceRepository) InsertOne(_ context.Context, fields model.ResourceFields) (model.Resource, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	id := primitive.NewObjectID()
	r.docs[id] = fields
	r.order = append(r.order, id)
	return model.NewResource(id, fields), nil
}

func (r *MemoryResourceRepository) FindMany(_ context.Context, filter model.ResourceFilter) ([]model.Resource, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	results := make([]model.Resource, 0, len(r.order))
	for _, id := range r.order {
		fields := r.docs[id]
		if filter.Type != "" && fields.Type != filter.Type {
			continue
		}
		results = append(results, model.NewResource(id, fields))
	}
	return results, nil
}

func (r *MemoryResourceRepository) FindOneByID(_ context.Context, id string) (model.Resource, error) {
	oid, err := parseID(id)
	if err != nil {
		return model.Resource{}, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	fields, ok := r.docs[oid]
	if !ok {
		return model.Resource{}, fmt.Errorf("find resource %s: %w", id, mongo.ErrNoDocuments)
	}
	return model.NewResource(oid, fields), nil
}

func (r *MemoryResourceRepository) ReplaceOneByID(_ context.Context, id string, fields model.ResourceFields) (model.Resource, error) {
	oid, err := parseID(id)
	if err != nil {
		return model.Resource{}, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.docs[oid]; !ok {
		return model.Resource{}, fmt.Errorf("replace resource %s: %w", id, mongo.ErrNoDocuments)
	}
	r.docs[oid] = fields
	return model.NewResource(oid, fields), nil
}

func (r *MemoryResourceRepository) DeleteOneByID(_ context.Context, id string) error {
	oid, err := parseID(id)
	if err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.docs[oid]; !ok {
		return fmt.Errorf("delete resource %s: %w", id, mongo.ErrNoDocuments)
	}
	delete(r.docs, oid)
	for i, existing := range r.order {
		if existing == oid {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

func (r *MemoryResourceRepository) DeleteAll(_ context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	n := int64(len(r.order))
	r.order = nil
	r.docs = make(map[primitive.ObjectID]model.ResourceFields)
	return n, nil
}

func (r *MemoryResourceRepository) InsertMany(ctx context.Context, fields []model.ResourceFields) ([]model.Resource, error) {
	created := make([]model.Resource, 0, len(fields))
	for _, f := range fields {
		res, err := r.InsertOne(ctx, f)
		if err != nil {
			return nil, err
		}
		created = append(created, res)
	}
	return created, nil
}
