package repository

import (
	"context"
	"fmt"

	"github.com/deppfellow/resource-api/internal/model"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// ResourceRepository persists Resources in a single collection.
type ResourceRepository struct {
	coll *mongo.Collection
}

// NewResourceRepository wraps coll.
func NewResourceRepository(coll *mongo.Collection) *ResourceRepository {
	return &ResourceRepository{coll: coll}
}

// parseID converts a hex id into an ObjectID. Any malformed input is
// reported as primitive.ErrInvalidHex, since it cannot name a document.
func parseID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("resource id %q: %w", id, primitive.ErrInvalidHex)
	}
	return oid, nil
}

func filterDocument(filter model.ResourceFilter) bson.M {
	doc := bson.M{}
	if filter.Type != "" {
		doc["type"] = filter.Type
	}
	return doc
}

// InsertOne stores a new resource and returns it with the id the driver
// generated.
func (r *ResourceRepository) InsertOne(ctx context.Context, fields model.ResourceFields) (model.Resource, error) {
	res, err := r.coll.InsertOne(ctx, model.Resource{ResourceFields: fields})
	if err != nil {
		return model.Resource{}, fmt.Errorf("insert resource: %w", err)
	}

	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return model.Resource{}, fmt.Errorf("insert resource: unexpected id type %T", res.InsertedID)
	}

	return model.NewResource(oid, fields), nil
}

// FindMany returns every resource matching filter in store order.
// The result is never nil.
func (r *ResourceRepository) FindMany(ctx context.Context, filter model.ResourceFilter) ([]model.Resource, error) {
	cursor, err := r.coll.Find(ctx, filterDocument(filter))
	if err != nil {
		return nil, fmt.Errorf("find resources: %w", err)
	}

	results := make([]model.Resource, 0)
	if err := cursor.All(ctx, &results); err != nil {
		return nil, fmt.Errorf("decode resources: %w", err)
	}

	return results, nil
}

// FindOneByID returns the resource with the given id.
func (r *ResourceRepository) FindOneByID(ctx context.Context, id string) (model.Resource, error) {
	oid, err := parseID(id)
	if err != nil {
		return model.Resource{}, err
	}

	var resource model.Resource
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&resource); err != nil {
		return model.Resource{}, fmt.Errorf("find resource %s: %w", id, err)
	}

	return resource, nil
}

// ReplaceOneByID replaces every mutable field of the resource; the id is kept.
func (r *ResourceRepository) ReplaceOneByID(ctx context.Context, id string, fields model.ResourceFields) (model.Resource, error) {
	oid, err := parseID(id)
	if err != nil {
		return model.Resource{}, err
	}

	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": oid}, model.Resource{ResourceFields: fields})
	if err != nil {
		return model.Resource{}, fmt.Errorf("replace resource %s: %w", id, err)
	}
	if res.MatchedCount == 0 {
		return model.Resource{}, fmt.Errorf("replace resource %s: %w", id, mongo.ErrNoDocuments)
	}

	return model.NewResource(oid, fields), nil
}

// DeleteOneByID removes the resource with the given id.
func (r *ResourceRepository) DeleteOneByID(ctx context.Context, id string) error {
	oid, err := parseID(id)
	if err != nil {
		return err
	}

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete resource %s: %w", id, err)
	}
	if res.DeletedCount == 0 {
		return fmt.Errorf("delete resource %s: %w", id, mongo.ErrNoDocuments)
	}

	return nil
}

// DeleteAll empties the collection and reports how many documents went.
func (r *ResourceRepository) DeleteAll(ctx context.Context) (int64, error) {
	res, err := r.coll.DeleteMany(ctx, bson.D{})
	if err != nil {
		return 0, fmt.Errorf("delete all resources: %w", err)
	}
	return res.DeletedCount, nil
}

// InsertMany stores all resources in one ordered batch.
func (r *ResourceRepository) InsertMany(ctx context.Context, fields []model.ResourceFields) ([]model.Resource, error) {
	if len(fields) == 0 {
		return []model.Resource{}, nil
	}

	docs := make([]interface{}, len(fields))
	for i, f := range fields {
		docs[i] = model.Resource{ResourceFields: f}
	}

	res, err := r.coll.InsertMany(ctx, docs)
	if err != nil {
		return nil, fmt.Errorf("insert resources: %w", err)
	}

	created := make([]model.Resource, 0, len(res.InsertedIDs))
	for i, insertedID := range res.InsertedIDs {
		oid, ok := insertedID.(primitive.ObjectID)
		if !ok {
			return nil, fmt.Errorf("insert resources: unexpected id type %T", insertedID)
		}
		created = append(created, model.NewResource(oid, fields[i]))
	}

	return created, nil
}
