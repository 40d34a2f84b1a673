package errors

import (
	stderrors "errors"
	"fmt"
)

var (
	ErrWorkerPanic        = fmt.Errorf("worker panic")
	ErrInvalidPayload     = fmt.Errorf("invalid event payload")
	ErrEmptyWords         = fmt.Errorf("no words have been found")
	ErrCatalogUnavailable = fmt.Errorf("catalog unavailable")
	ErrEmptyCatalog       = fmt.Errorf("catalog returned no playable cards")
	ErrArchiveClosed      = fmt.Errorf("archive is closed")
	ErrSlowConnection     = fmt.Errorf("connection buffer is full")
)

// Kind classifies an expected failure so callers can react without parsing messages.
type Kind string

const (
	KindValidation   Kind = "Validation"
	KindNotFound     Kind = "NotFound"
	KindConflict     Kind = "Conflict"
	KindBusinessRule Kind = "BusinessRule"
	KindUnauthorized Kind = "Unauthorized"
	KindInternal     Kind = "Internal"
)

// Error is a typed failure value. It is returned, never panicked.
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// Is matches any *Error of the same kind, so errors.Is(err, ErrConflict) works
// whatever the message is.
func (e *Error) Is(target error) bool {
	var t *Error
	if !stderrors.As(target, &t) {
		return false
	}
	return t.Message == "" && t.Kind == e.Kind
}

// Kind sentinels, for use with errors.Is.
var (
	ErrValidation   = &Error{Kind: KindValidation}
	ErrNotFound     = &Error{Kind: KindNotFound}
	ErrConflict     = &Error{Kind: KindConflict}
	ErrBusinessRule = &Error{Kind: KindBusinessRule}
	ErrUnauthorized = &Error{Kind: KindUnauthorized}
)

func Validation(format string, args ...any) *Error {
	return newError(KindValidation, format, args...)
}

func NotFound(format string, args ...any) *Error {
	return newError(KindNotFound, format, args...)
}

func Conflict(format string, args ...any) *Error {
	return newError(KindConflict, format, args...)
}

func BusinessRule(format string, args ...any) *Error {
	return newError(KindBusinessRule, format, args...)
}

func Unauthorized(format string, args ...any) *Error {
	return newError(KindUnauthorized, format, args...)
}

func newError(kind Kind, format string, args ...any) *Error {
	msg := format
	if len(args) > 0 {
		msg = fmt.Sprintf(format, args...)
	}
	return &Error{Kind: kind, Message: msg}
}

// KindOf returns the kind carried by err, or KindInternal for anything untyped.
func KindOf(err error) Kind {
	var e *Error
	if stderrors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}

// Message returns the client-facing message of a typed error.
func Message(err error) string {
	var e *Error
	if stderrors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}

func Is(err, target error) bool { return stderrors.Is(err, target) }

func As(err error, target any) bool { return stderrors.As(err, target) }
