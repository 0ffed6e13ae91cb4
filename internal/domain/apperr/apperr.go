// Package apperr defines the closed set of failure categories the API can
// report. Handlers translate a Kind to an HTTP status in exactly one place,
// so no layer ever discriminates errors by message text.
package apperr

import "errors"

type Kind int

const (
	KindUnknown Kind = iota
	KindBadRequest
	KindValidation
	KindNotFound
	KindConflict
	KindAuth
	KindForbidden
)

// Error carries a kind plus a caller-safe message. The wrapped cause, if any,
// is for logs only and never leaves the process.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

func New(kind Kind, message string) error {
	return &Error{Kind: kind, Message: message}
}

func Wrap(kind Kind, message string, err error) error {
	return &Error{Kind: kind, Message: message, Err: err}
}

func BadRequest(message string) error { return New(KindBadRequest, message) }
func Validation(message string) error { return New(KindValidation, message) }
func NotFound(message string) error   { return New(KindNotFound, message) }
func Conflict(message string) error   { return New(KindConflict, message) }
func Auth(message string) error       { return New(KindAuth, message) }
func Forbidden(message string) error  { return New(KindForbidden, message) }

// Unknown wraps an uncategorized internal error.
func Unknown(err error) error {
	return &Error{Kind: KindUnknown, Message: "unknown error", Err: err}
}

// KindOf classifies any error; non-apperr errors are KindUnknown.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

// MessageOf returns the caller-safe message for an error. Uncategorized
// errors get a generic message so internal detail never reaches the client.
func MessageOf(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return "unknown error"
}
