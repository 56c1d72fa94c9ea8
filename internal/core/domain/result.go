package domain

import (
	"fmt"
	"net/http"
)

// ErrorKind classifies the failure of an operation
type ErrorKind int

const (
	KindNone ErrorKind = iota
	KindBadRequest
	KindNotFound
	KindAlreadyExist
	KindConflict
	KindInternalServerError
	KindUnsupportedMediaType
	KindForbidden
)

// AllErrorKinds lists every ErrorKind value
var AllErrorKinds = []ErrorKind{
	KindNone,
	KindBadRequest,
	KindNotFound,
	KindAlreadyExist,
	KindConflict,
	KindInternalServerError,
	KindUnsupportedMediaType,
	KindForbidden,
}

// Status returns the http status bound to the kind.
// It panics on a value outside of the enumeration.
func (k ErrorKind) Status() int {
	switch k {
	case KindNone:
		return http.StatusOK
	case KindBadRequest:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	case KindAlreadyExist, KindConflict:
		return http.StatusConflict
	case KindUnsupportedMediaType:
		return http.StatusUnsupportedMediaType
	case KindForbidden:
		return http.StatusForbidden
	case KindInternalServerError:
		return http.StatusInternalServerError
	}
	panic(fmt.Sprintf("unmapped error kind %d", int(k)))
}

// DefaultMessage returns the message used when a producer gives none
func (k ErrorKind) DefaultMessage() string {
	switch k {
	case KindNone:
		return "Ok"
	case KindBadRequest:
		return "Bad request!"
	case KindNotFound:
		return "Data not found!"
	case KindAlreadyExist:
		return "Already exist!"
	case KindConflict:
		return "Conflict!"
	case KindUnsupportedMediaType:
		return "Unsupported Media Type!"
	case KindForbidden:
		return "Access Denied!"
	case KindInternalServerError:
		return "Internal server error!"
	}
	panic(fmt.Sprintf("unmapped error kind %d", int(k)))
}

func (k ErrorKind) String() string {
	switch k {
	case KindNone:
		return "None"
	case KindBadRequest:
		return "BadRequest"
	case KindNotFound:
		return "NotFound"
	case KindAlreadyExist:
		return "AlreadyExist"
	case KindConflict:
		return "Conflict"
	case KindUnsupportedMediaType:
		return "UnsupportedMediaType"
	case KindForbidden:
		return "Forbidden"
	case KindInternalServerError:
		return "InternalServerError"
	}
	return fmt.Sprintf("ErrorKind(%d)", int(k))
}

// MarshalText encodes the kind by name
func (k ErrorKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText decodes a kind name
func (k *ErrorKind) UnmarshalText(text []byte) error {
	for _, kind := range AllErrorKinds {
		if kind.String() == string(text) {
			*k = kind
			return nil
		}
	}
	return fmt.Errorf("unknown error kind: %s", text)
}

// KindFromStatus maps a status returned by an upstream api to a kind
func KindFromStatus(status int) ErrorKind {
	switch {
	case status >= 200 && status < 300:
		return KindNone
	case status == http.StatusUnsupportedMediaType:
		return KindUnsupportedMediaType
	case status == http.StatusBadRequest:
		return KindBadRequest
	case status == http.StatusNotFound:
		return KindNotFound
	case status == http.StatusConflict:
		return KindConflict
	default:
		return KindInternalServerError
	}
}

// ResultError describes why an operation failed.
// Code always equals Kind.Status().
type ResultError struct {
	Code    int       `json:"code"`
	Message string    `json:"message"`
	Kind    ErrorKind `json:"kind"`
}

// NewResultError builds a ResultError, an empty message falls back to the kind default
func NewResultError(kind ErrorKind, message string) ResultError {
	if message == "" {
		message = kind.DefaultMessage()
	}
	return ResultError{Code: kind.Status(), Message: message, Kind: kind}
}

func (e ResultError) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// NoError is the error carried by successful results
func NoError() ResultError { return NewResultError(KindNone, "") }

func BadRequest(message string) ResultError { return NewResultError(KindBadRequest, message) }

func NotFound(message string) ResultError { return NewResultError(KindNotFound, message) }

func AlreadyExist(message string) ResultError { return NewResultError(KindAlreadyExist, message) }

func Conflict(message string) ResultError { return NewResultError(KindConflict, message) }

func InternalServerError(message string) ResultError {
	return NewResultError(KindInternalServerError, message)
}

func UnsupportedMediaType(message string) ResultError {
	return NewResultError(KindUnsupportedMediaType, message)
}

func Forbidden(message string) ResultError { return NewResultError(KindForbidden, message) }

// Result is the outcome of an operation returning a value
type Result[T any] struct {
	value    T
	err      ResultError
	success  bool
	hasValue bool
}

// Success wraps a value in a successful result
func Success[T any](value T) Result[T] {
	return Result[T]{value: value, err: NoError(), success: true, hasValue: true}
}

// Failure builds a failed result. err.Kind must not be KindNone.
func Failure[T any](err ResultError) Result[T] {
	mustBeFailure(err)
	return Result[T]{err: err}
}

// FailureWithValue builds a failed result that still reports a best-effort value
func FailureWithValue[T any](err ResultError, value T) Result[T] {
	mustBeFailure(err)
	return Result[T]{err: err, value: value, hasValue: true}
}

// FailureFrom forwards the error of another result
func FailureFrom[T, U any](r Result[U]) Result[T] {
	return Failure[T](r.err)
}

func (r Result[T]) IsSuccess() bool { return r.success }

// Value should only be read after IsSuccess
func (r Result[T]) Value() T { return r.value }

// HasValue reports whether a value was given when the result was built
func (r Result[T]) HasValue() bool { return r.hasValue }

func (r Result[T]) Err() ResultError { return r.err }

// BaseResult is the outcome of an operation without value
type BaseResult struct {
	err     ResultError
	success bool
}

// Ok builds a successful BaseResult
func Ok() BaseResult {
	return BaseResult{err: NoError(), success: true}
}

// Fail builds a failed BaseResult. err.Kind must not be KindNone.
func Fail(err ResultError) BaseResult {
	mustBeFailure(err)
	return BaseResult{err: err}
}

func (r BaseResult) IsSuccess() bool { return r.success }

func (r BaseResult) Err() ResultError { return r.err }

func mustBeFailure(err ResultError) {
	if err.Kind == KindNone {
		panic("failure result built with KindNone")
	}
}
