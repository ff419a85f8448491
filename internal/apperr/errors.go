package apperr

import (
	"errors"
	"net/http"
)

type Code string

const (
	CodeValidation  Code = "invalid"
	CodeNotFound    Code = "not_found"
	CodeConflict    Code = "conflict"
	CodeRateLimited Code = "rate_limited"
	CodeInternal    Code = "internal"
)

// Error is the service-level error carried across layer boundaries. Services
// return it for every anticipated failure; controllers map Code to an HTTP
// status and never expose internal detail for CodeInternal.
type Error struct {
	Code    Code
	Message string
}

func (e *Error) Error() string { return e.Message }

func NewValidation(msg string) error  { return &Error{Code: CodeValidation, Message: msg} }
func NewNotFound(msg string) error    { return &Error{Code: CodeNotFound, Message: msg} }
func NewConflict(msg string) error    { return &Error{Code: CodeConflict, Message: msg} }
func NewRateLimited(msg string) error { return &Error{Code: CodeRateLimited, Message: msg} }
func NewInternal(msg string) error    { return &Error{Code: CodeInternal, Message: msg} }

// As unwraps err into an *Error if one is in the chain.
func As(err error) (*Error, bool) {
	var ae *Error
	if errors.As(err, &ae) {
		return ae, true
	}
	return nil, false
}

// IsCode reports whether err carries the given code.
func IsCode(err error, code Code) bool {
	ae, ok := As(err)
	return ok && ae.Code == code
}

// HTTPStatus maps an error code to its response status.
func HTTPStatus(code Code) int {
	switch code {
	case CodeValidation:
		return http.StatusBadRequest
	case CodeNotFound:
		return http.StatusNotFound
	case CodeConflict:
		return http.StatusConflict
	case CodeRateLimited:
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}
