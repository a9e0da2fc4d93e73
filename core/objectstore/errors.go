package objectstore

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"r2-client/core/storage"
)

// Sentinel error codes synthesized by this package.
const (
	CodeInternalServerError = "InternalServerError"
	CodeNotFound            = "NotFound"
)

// innerCauseMessage marks a failure whose useful description is carried by
// its inner cause. Matched literally.
const innerCauseMessage = "An error occurred while saving the entity changes. See the inner exception for details."

var (
	// ErrInvalidArgument reports a missing bucket, key, path or stream.
	ErrInvalidArgument = errors.New("objectstore: invalid argument")
	// ErrClosed is returned by operations on a closed Client.
	ErrClosed = errors.New("objectstore: client is closed")
	// ErrExistenceUnknown is returned by deletes when the existence check
	// failed for a reason other than a missing bucket or object.
	ErrExistenceUnknown = errors.New("objectstore: object existence unknown")
)

// ExistenceError is the fault returned when the pre-delete existence check
// could not tell whether the object exists. The delete was not attempted.
type ExistenceError struct {
	Bucket string
	Key    string
	Err    error
}

func (e *ExistenceError) Error() string {
	return fmt.Sprintf("objectstore: existence check %s/%s: %v", e.Bucket, e.Key, e.Err)
}

// Unwrap exposes both ErrExistenceUnknown and the underlying failure.
func (e *ExistenceError) Unwrap() []error {
	return []error{ErrExistenceUnknown, e.Err}
}

// MapError converts a transport failure into normalized errors. Provider
// failures keep their HTTP status as the code; anything else is reported as
// InternalServerError.
func MapError(err error) []Error {
	if err == nil {
		return FailErrors()
	}

	var perr *storage.ProviderError
	if errors.As(err, &perr) {
		return []Error{{
			Code:        statusName(perr.StatusCode),
			Description: describe(perr.Message, perr.Cause),
		}}
	}

	return []Error{{
		Code:        CodeInternalServerError,
		Description: describe(err.Error(), errors.Unwrap(err)),
	}}
}

// FailErrors is the generic internal failure.
func FailErrors() []Error {
	return []Error{{Code: CodeInternalServerError, Description: "Internal Server Error"}}
}

// NotFoundErrors reports a missing object.
func NotFoundErrors() []Error {
	return []Error{{Code: CodeNotFound, Description: "File not found."}}
}

func describe(message string, cause error) string {
	if message == innerCauseMessage && cause != nil {
		return cause.Error()
	}
	return message
}

// statusName renders an HTTP status as its name without spaces
// (404 -> NotFound). Unknown statuses render as their number.
func statusName(status int) string {
	text := http.StatusText(status)
	if text == "" {
		return strconv.Itoa(status)
	}
	return strings.Map(func(r rune) rune {
		switch r {
		case ' ', '-', '\'':
			return -1
		}
		return r
	}, text)
}
