package database

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ResourceIndexes are created on startup. The type index backs the list
// filter; none of them is unique, so _id stays the only uniqueness rule.
func ResourceIndexes() []mongo.IndexModel {
	return []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "type", Value: 1}},
			Options: options.Index().SetName("type_1"),
		},
	}
}

// EnsureIndexes creates the resource indexes. Creating an index that
// already exists with the same definition is a no-op on the server.
func EnsureIndexes(ctx context.Context, logger *zerolog.Logger, coll *mongo.Collection) error {
	names, err := coll.Indexes().CreateMany(ctx, ResourceIndexes())
	if err != nil {
		return fmt.Errorf("creating resource indexes: %w", err)
	}

	logger.Info().
		Str("collection", coll.Name()).
		Strs("indexes", names).
		Msg("resource indexes up to date")
	return nil
}
