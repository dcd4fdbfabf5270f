// Package model holds the persisted entity and its field rules.
package model

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// validate is shared; validator caches struct metadata and is safe for
// concurrent use.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Report JSON names ("long_description") instead of Go names.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return v
}

// ResourceFields are the mutable fields of a Resource: everything a client
// sends on create and replaces on update.
type ResourceFields struct {
	Title       string `json:"title" bson:"title" yaml:"title" validate:"required"`
	Content     string `json:"content" bson:"content" yaml:"content" validate:"required"`
	Description string `json:"description" bson:"description" yaml:"description" validate:"required"`
	Type        string `json:"type" bson:"type" yaml:"type" validate:"required"`
	Icon        string `json:"icon" bson:"icon" yaml:"icon" validate:"required"`

	LongDescription string `json:"long_description,omitempty" bson:"long_description,omitempty" yaml:"long_description"`
	Path            string `json:"path,omitempty" bson:"path,omitempty" yaml:"path"`
}

// Validate checks the struct tags. On failure it returns
// validator.ValidationErrors.
func (f *ResourceFields) Validate() error {
	return validate.Struct(f)
}

// Resource is the single entity managed by the API.
//
// ID is assigned by the store on insert and never changes afterwards.
// On the wire it is the 24 character hex form of the ObjectID.
type Resource struct {
	ID             primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	ResourceFields `bson:",inline" yaml:",inline"`
}

// NewResource builds a Resource with the given id.
func NewResource(id primitive.ObjectID, fields ResourceFields) Resource {
	return Resource{ID: id, ResourceFields: fields}
}

// ResourceFilter restricts a list query. The zero value matches everything.
type ResourceFilter struct {
	Type string
}
