// Package apperr defines the error taxonomy shared by services and handlers.
// Every error that reaches a handler is classified by Kind, which decides
// the HTTP status of the response.
package apperr

import (
	"errors"
	"net/http"
	"sort"
	"strings"
)

// Kind classifies an application error.
type Kind int

const (
	KindInternal Kind = iota
	KindValidation
	KindNotFound
	KindUnauthorized
	KindRateLimited
	KindUploadRejected
)

// HTTPStatus maps k to the response status code.
func (k Kind) HTTPStatus() int {
	switch k {
	case KindValidation, KindUploadRejected:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	case KindUnauthorized:
		return http.StatusUnauthorized
	case KindRateLimited:
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindNotFound:
		return "not_found"
	case KindUnauthorized:
		return "unauthorized"
	case KindRateLimited:
		return "rate_limited"
	case KindUploadRejected:
		return "upload_rejected"
	default:
		return "internal"
	}
}

// Error is a classified application error. Fields carries per-field
// messages for validation failures.
type Error struct {
	Kind    Kind
	Message string
	Fields  map[string][]string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil && e.Message == "" {
		return e.Err.Error()
	}
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Validation reports rejected input. The message is built from fields when
// msg is empty.
func Validation(msg string, fields map[string][]string) *Error {
	if msg == "" {
		msg = joinFields(fields)
	}
	return &Error{Kind: KindValidation, Message: msg, Fields: fields}
}

// NotFound reports an unknown record.
func NotFound(msg string) *Error {
	return &Error{Kind: KindNotFound, Message: msg}
}

// Unauthorized reports a missing, unknown or expired credential.
func Unauthorized(msg string) *Error {
	return &Error{Kind: KindUnauthorized, Message: msg}
}

// RateLimited reports a client that exceeded its request budget.
func RateLimited(msg string) *Error {
	return &Error{Kind: KindRateLimited, Message: msg}
}

// UploadRejected reports a file that failed type, size or count checks.
func UploadRejected(err error) *Error {
	return &Error{Kind: KindUploadRejected, Err: err}
}

// Internal wraps an unexpected failure.
func Internal(msg string, err error) *Error {
	return &Error{Kind: KindInternal, Message: msg, Err: err}
}

// KindOf returns the kind of err, KindInternal when unclassified.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}

// joinFields renders field messages in a stable order.
func joinFields(fields map[string][]string) string {
	if len(fields) == 0 {
		return "Validation failed"
	}
	names := make([]string, 0, len(fields))
	for name := range fields {
		names = append(names, name)
	}
	sort.Strings(names)
	var msgs []string
	for _, name := range names {
		msgs = append(msgs, fields[name]...)
	}
	return strings.Join(msgs, "; ")
}
