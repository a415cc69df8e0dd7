package apperr

import (
	"errors"
	"net/http"

	"github.com/saulo-duarte/vicinato-api/internal/config"
)

var (
	ErrValidation      = errors.New("validation failed")
	ErrBadRequest      = errors.New("bad request")
	ErrUnauthenticated = errors.New("unauthenticated")
	ErrNotFound        = errors.New("not found")
	ErrConflict        = errors.New("conflict")
	ErrUpstream        = errors.New("upstream failure")
	ErrNotImplemented  = errors.New("not implemented")
)

// Error carries a kind for status mapping, a client-facing message and
// the underlying cause, if any.
type Error struct {
	Kind    error
	Message string
	Details interface{}
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() []error {
	if e.Err != nil {
		return []error{e.Kind, e.Err}
	}
	return []error{e.Kind}
}

func New(kind error, msg string) *Error {
	return &Error{Kind: kind, Message: msg}
}

func Wrap(kind error, msg string, err error) *Error {
	return &Error{Kind: kind, Message: msg, Err: err}
}

func NotFound(msg string) *Error { return New(ErrNotFound, msg) }

func Conflict(msg string) *Error { return New(ErrConflict, msg) }

func BadRequest(msg string) *Error { return New(ErrBadRequest, msg) }

func Upstream(msg string, err error) *Error { return Wrap(ErrUpstream, msg, err) }

func Status(err error) int {
	switch {
	case errors.Is(err, ErrValidation), errors.Is(err, ErrBadRequest):
		return http.StatusBadRequest
	case errors.Is(err, ErrUnauthenticated):
		return http.StatusUnauthorized
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrConflict):
		return http.StatusConflict
	case errors.Is(err, ErrNotImplemented):
		return http.StatusNotImplemented
	default:
		return http.StatusInternalServerError
	}
}

type body struct {
	Error   string      `json:"error"`
	Details interface{} `json:"details,omitempty"`
}

// Write renders err as {"error": ..., "details": ...}. Errors without a
// kind are reported with fallback so internals never leak.
func Write(w http.ResponseWriter, err error, fallback string) {
	var appErr *Error
	if !errors.As(err, &appErr) {
		config.JSON(w, http.StatusInternalServerError, body{Error: fallback})
		return
	}

	msg := appErr.Message
	status := Status(appErr)
	if status == http.StatusInternalServerError && fallback != "" {
		msg = fallback
	}
	config.JSON(w, status, body{Error: msg, Details: appErr.Details})
}

func Message(w http.ResponseWriter, status int, msg string) {
	config.JSON(w, status, body{Error: msg})
}
