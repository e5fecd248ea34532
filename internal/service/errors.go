package service

import (
	"errors"
	"fmt"
)

// Kind is the stable, machine-checkable classification of a business-rule
// failure. Handlers translate kinds into HTTP status codes; the message is
// for humans.
type Kind string

const (
	KindNotFound         Kind = "not_found"
	KindForbidden        Kind = "forbidden"
	KindInvalidState     Kind = "invalid_state"
	KindConflict         Kind = "conflict"
	KindCapacityExceeded Kind = "capacity_exceeded"
	KindValidation       Kind = "validation_error"
	KindAlreadyFinalized Kind = "already_finalized"
	KindAlreadySubmitted Kind = "already_submitted"
)

type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func errf(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

func notFound(format string, args ...any) *Error {
	return errf(KindNotFound, format, args...)
}

func forbidden(format string, args ...any) *Error {
	return errf(KindForbidden, format, args...)
}

func invalidState(format string, args ...any) *Error {
	return errf(KindInvalidState, format, args...)
}

func conflict(format string, args ...any) *Error {
	return errf(KindConflict, format, args...)
}

func capacityExceeded(format string, args ...any) *Error {
	return errf(KindCapacityExceeded, format, args...)
}

func validation(format string, args ...any) *Error {
	return errf(KindValidation, format, args...)
}

func alreadyFinalized(format string, args ...any) *Error {
	return errf(KindAlreadyFinalized, format, args...)
}

func alreadySubmitted(format string, args ...any) *Error {
	return errf(KindAlreadySubmitted, format, args...)
}

// KindOf returns the kind of a service error, or "" for any other error.
func KindOf(err error) Kind {
	var serr *Error
	if errors.As(err, &serr) {
		return serr.Kind
	}
	return ""
}
