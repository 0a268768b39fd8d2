package domain

import (
	"errors"
	"fmt"
)

// ErrTypeMismatch is returned by constructors when an argument's type or shape
// violates the data model (unsupported value type, invalid field element).
var ErrTypeMismatch = errors.New("type mismatch")

// ErrKeyNotFound is returned by Get when the key is absent from a container.
var ErrKeyNotFound = errors.New("key not found")

// ErrInvalidKeys is returned by LookupAction when the keys argument is neither
// a string nor a sequence of strings and integers.
var ErrInvalidKeys = errors.New("invalid keys")

// ErrLinkLookup is returned by LookupAction when a key path fails to resolve
// to an Action.
var ErrLinkLookup = errors.New("link lookup failed")

// ErrNotFound is returned by document stores when no document exists under
// the requested key.
var ErrNotFound = errors.New("document not found")

// ErrorMessage is raised by transports when the service responds with an
// Error document instead of data.
type ErrorMessage struct {
	Doc *Error
}

func (e *ErrorMessage) Error() string {
	if e.Doc == nil {
		return "error message"
	}
	if title := e.Doc.Title(); title != "" {
		return fmt.Sprintf("error message: %s", title)
	}
	return "error message"
}
