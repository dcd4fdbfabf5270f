package mongoerr

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/deppfellow/resource-api/internal/errs"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Code is a coarse classification of a driver error.
type Code int

const (
	// Other is anything not listed below; it maps to a 500.
	Other Code = iota
	// NotFound means the filter matched no document.
	NotFound
	// InvalidID means the id cannot be a stored ObjectID.
	InvalidID
	// DuplicateKey means a unique index rejected the write.
	DuplicateKey
	// Timeout covers client-side and server-side timeouts.
	Timeout
	// Network means the server could not be reached.
	Network
)

func (c Code) String() string {
	switch c {
	case NotFound:
		return "not_found"
	case InvalidID:
		return "invalid_id"
	case DuplicateKey:
		return "duplicate_key"
	case Timeout:
		return "timeout"
	case Network:
		return "network"
	default:
		return "other"
	}
}

// Classify maps a driver error to a Code.
func Classify(err error) Code {
	switch {
	case err == nil:
		return Other
	case errors.Is(err, mongo.ErrNoDocuments):
		return NotFound
	case errors.Is(err, primitive.ErrInvalidHex):
		return InvalidID
	case mongo.IsDuplicateKeyError(err):
		return DuplicateKey
	case mongo.IsTimeout(err):
		return Timeout
	case mongo.IsNetworkError(err):
		return Network
	default:
		return Other
	}
}

// dupKeyIndexRe pulls the index name out of an E11000 message:
//
//	E11000 duplicate key error collection: cfc_db.resources index: title_1 dup key: { title: "x" }
var dupKeyIndexRe = regexp.MustCompile(`index: (\S+) dup key`)

// extractFieldForDuplicateKey infers the field from an index name following
// the driver's default "<field>_<direction>" naming.
//
//	title_1 -> "title", long_description_-1 -> "long_description"
func extractFieldForDuplicateKey(message string) string {
	matches := dupKeyIndexRe.FindStringSubmatch(message)
	if len(matches) < 2 {
		return ""
	}

	index := matches[1]
	if index == "_id_" {
		return "id"
	}

	// Compound indexes are left alone; there is no single field to blame.
	parts := strings.Split(index, "_")
	if len(parts) < 2 || strings.Count(index, "_1")+strings.Count(index, "_-1") > 1 {
		return ""
	}
	return strings.Join(parts[:len(parts)-1], "_")
}

// humanizeText converts snake_case into Title Case.
//
//	"long_description" -> "Long Description"
func humanizeText(text string) string {
	if text == "" {
		return ""
	}
	return cases.Title(language.English).String(strings.ReplaceAll(text, "_", " "))
}

// HandleError converts a low-level driver error into an application error.
//
//   - *errs.HTTPError: returned unchanged
//   - no documents, malformed id: 404 "Resource not found"
//   - duplicate key: 400 RESOURCE_ALREADY_EXISTS, with the field when it can be inferred
//   - anything else: 500 with a generic message
func HandleError(err error) error {
	var httpErr *errs.HTTPError
	if errors.As(err, &httpErr) {
		return err
	}

	switch Classify(err) {
	case NotFound, InvalidID:
		return errs.NewNotFoundError("Resource not found", false, nil)

	case DuplicateKey:
		code := "RESOURCE_ALREADY_EXISTS"
		message := "A resource with this identifier already exists"

		var fieldErrors []errs.FieldError
		if field := extractFieldForDuplicateKey(err.Error()); field != "" {
			message = fmt.Sprintf("A resource with this %s already exists", humanizeText(field))
			fieldErrors = []errs.FieldError{{Field: field, Error: "already exists"}}
		}
		return errs.NewBadRequestError(message, true, &code, fieldErrors)

	default:
		return errs.NewInternalServerError()
	}
}
