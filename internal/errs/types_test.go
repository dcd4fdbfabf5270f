package errs

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMakeUpperCaseWithUnderscores(t *testing.T) {
	assert.Equal(t, "BAD_REQUEST", MakeUpperCaseWithUnderscores("Bad Request"))
	assert.Equal(t, "NOT_FOUND", MakeUpperCaseWithUnderscores(http.StatusText(http.StatusNotFound)))
}

func TestNewBadRequestError(t *testing.T) {
	fields := []FieldError{{Field: "title", Error: "is required"}}

	err := NewBadRequestError("Validation failed", true, nil, fields)
	assert.Equal(t, "BAD_REQUEST", err.Code)
	assert.Equal(t, http.StatusBadRequest, err.Status)
	assert.Equal(t, fields, err.Errors)
	assert.True(t, err.Override)

	code := "RESOURCE_ALREADY_EXISTS"
	err = NewBadRequestError("exists", false, &code, nil)
	assert.Equal(t, code, err.Code)
}

func TestNewNotFoundError(t *testing.T) {
	err := NewNotFoundError("Resource not found", false, nil)
	assert.Equal(t, "NOT_FOUND", err.Code)
	assert.Equal(t, http.StatusNotFound, err.Status)
	assert.Equal(t, "Resource not found", err.Error())
}

func TestNewInternalServerError(t *testing.T) {
	err := NewInternalServerError()
	assert.Equal(t, "INTERNAL_SERVER_ERROR", err.Code)
	assert.Equal(t, http.StatusText(http.StatusInternalServerError), err.Message)
	assert.False(t, err.Override)
}

func TestHTTPError_IsAndAs(t *testing.T) {
	wrapped := fmt.Errorf("get resource: %w", NewNotFoundError("Resource not found", false, nil))

	assert.True(t, errors.Is(wrapped, &HTTPError{}))
	assert.False(t, errors.Is(errors.New("plain"), &HTTPError{}))

	var httpErr *HTTPError
	if assert.True(t, errors.As(wrapped, &httpErr)) {
		assert.Equal(t, http.StatusNotFound, httpErr.Status)
	}
}
