package model

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func validFields() ResourceFields {
	return ResourceFields{
		Title:       "A",
		Content:     "c",
		Description: "d",
		Type:        "doc",
		Icon:        "i",
	}
}

func TestResourceFields_Validate(t *testing.T) {
	fields := validFields()
	require.NoError(t, fields.Validate())

	fields.Title = ""
	fields.Icon = ""
	err := fields.Validate()
	require.Error(t, err)

	var verrs validator.ValidationErrors
	require.True(t, errors.As(err, &verrs))

	var names []string
	for _, fe := range verrs {
		names = append(names, fe.Field())
	}
	assert.ElementsMatch(t, []string{"title", "icon"}, names)
}

func TestResource_JSONShape(t *testing.T) {
	id := primitive.NewObjectID()
	r := NewResource(id, validFields())

	raw, err := json.Marshal(r)
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, json.Unmarshal(raw, &got))

	assert.Equal(t, id.Hex(), got["id"])
	assert.Equal(t, "doc", got["type"])
	assert.NotContains(t, got, "long_description")
	assert.NotContains(t, got, "path")
}

func TestResource_BSONOmitsZeroID(t *testing.T) {
	raw, err := bson.Marshal(Resource{ResourceFields: validFields()})
	require.NoError(t, err)

	_, lookupErr := bson.Raw(raw).LookupErr("_id")
	assert.Error(t, lookupErr)

	title, lookupErr := bson.Raw(raw).LookupErr("title")
	require.NoError(t, lookupErr)
	assert.Equal(t, "A", title.StringValue())
}
