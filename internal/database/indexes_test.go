package database

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func TestResourceIndexes(t *testing.T) {
	indexes := ResourceIndexes()
	require.Len(t, indexes, 1)

	assert.Equal(t, bson.D{{Key: "type", Value: 1}}, indexes[0].Keys)
	require.NotNil(t, indexes[0].Options)
	assert.Nil(t, indexes[0].Options.Unique)
}

func TestEnsureIndexes(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
	log := zerolog.Nop()

	mt.Run("success", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		err := EnsureIndexes(context.Background(), &log, mt.Coll)
		require.NoError(mt, err)
	})

	mt.Run("command error", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(mtest.CommandError{
			Code:    13,
			Name:    "Unauthorized",
			Message: "not authorized",
		}))

		err := EnsureIndexes(context.Background(), &log, mt.Coll)
		require.Error(mt, err)
		assert.Contains(mt, err.Error(), "creating resource indexes")
	})
}
