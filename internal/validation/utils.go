// Package validation binds request data and turns validation failures
// into 400 responses.
//
// Request types carry `validator` struct tags and implement Validatable;
// BindAndValidate is called once per request at the handler boundary,
// so nothing below the handler sees unvalidated input.
package validation

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/deppfellow/resource-api/internal/errs"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// Validatable is implemented by request payload types that know how to
// validate themselves. Validate returns validator.ValidationErrors.
type Validatable interface {
	Validate() error
}

// BindAndValidate binds path, query and body into payload and validates it.
//
// payload must be a pointer. Every failure comes back as a 400
// *errs.HTTPError:
//   - a JSON value of the wrong type names the field ("must be a string")
//   - any other malformed body is a plain BAD_REQUEST
//   - validation failures list every offending field
func BindAndValidate(c echo.Context, payload Validatable) error {
	if err := c.Bind(payload); err != nil {
		return bindError(err)
	}

	if msg, fieldErrors := validateStruct(payload); fieldErrors != nil {
		return errs.NewBadRequestError(msg, true, nil, fieldErrors)
	}

	return nil
}

// bindError inspects the error echo wraps around encoding/json failures.
func bindError(err error) error {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		if typeErr.Field == "" {
			return errs.NewBadRequestError("Request body must be a JSON object", true, nil, nil)
		}
		return errs.NewBadRequestError("Validation failed", true, nil, []errs.FieldError{{
			Field: jsonFieldName(typeErr.Field),
			Error: fmt.Sprintf("must be a %s", jsonTypeName(typeErr.Type)),
		}})
	}

	var syntaxErr *json.SyntaxError
	if errors.As(err, &syntaxErr) {
		return errs.NewBadRequestError("Malformed JSON request body", true, nil, nil)
	}

	var echoErr *echo.HTTPError
	if errors.As(err, &echoErr) {
		if msg, ok := echoErr.Message.(string); ok {
			return errs.NewBadRequestError(msg, false, nil, nil)
		}
	}

	return errs.NewBadRequestError("Invalid request", false, nil, nil)
}

// jsonFieldName returns the field the client sent. encoding/json reports
// the full Go path, which includes embedded struct names
// ("ResourceFields.type"); request bodies are flat, so the last segment is
// the JSON key.
func jsonFieldName(path string) string {
	if i := strings.LastIndex(path, "."); i >= 0 {
		return path[i+1:]
	}
	return path
}

// jsonTypeName names a Go type the way a JSON client thinks of it.
func jsonTypeName(t reflect.Type) string {
	if t == nil {
		return "valid value"
	}

	switch t.Kind() {
	case reflect.String:
		return "string"
	case reflect.Bool:
		return "boolean"
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return "number"
	case reflect.Slice, reflect.Array:
		return "list"
	default:
		return "object"
	}
}

// validateStruct calls v.Validate() and extracts field errors if validation fails.
func validateStruct(v Validatable) (string, []errs.FieldError) {
	if err := v.Validate(); err != nil {
		return extractValidationError(err)
	}
	return "", nil
}

func extractValidationError(err error) (string, []errs.FieldError) {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		// Not a tag failure; report it without field detail.
		return "Validation failed", []errs.FieldError{}
	}

	fieldErrors := make([]errs.FieldError, 0, len(validationErrors))
	for _, e := range validationErrors {
		field := strings.ToLower(e.Field())

		msg := "is required"
		if e.Tag() != "required" {
			msg = fmt.Sprintf("%s: %s", field, e.Tag())
		}

		fieldErrors = append(fieldErrors, errs.FieldError{
			Field: field,
			Error: msg,
		})
	}

	return "Validation failed", fieldErrors
}
