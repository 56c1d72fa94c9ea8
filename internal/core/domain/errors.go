package domain

import (
	"errors"
	"fmt"
)

// ErrObjectNotFound is an error thrown when a stored object does not exist
var ErrObjectNotFound = errors.New("object not found")

// ErrObjectForbidden is an error thrown when the storage backend denies access to an object
var ErrObjectForbidden = errors.New("object access denied")

// ErrObjectBusy is an error thrown when an object is locked or in use
var ErrObjectBusy = errors.New("object in use or locked")

// ErrInvalidPath is an error thrown when a relative path escapes the upload root
var ErrInvalidPath = errors.New("invalid file path")

// ErrCategoryNotFound is an error thrown when category is not found
var ErrCategoryNotFound = errors.New("category not found")

// ErrProductNotFound is an error thrown when product is not found
var ErrProductNotFound = errors.New("product not found")

// ErrInvalidID is an error thrown when an identifier is malformed
var ErrInvalidID = errors.New("invalid id")

// UpstreamError is an error returned when a remote api answers with a non success status
type UpstreamError struct {
	StatusCode int
	Status     string
	Body       string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("upstream returned %d: %s", e.StatusCode, e.Body)
}
