package apperr

import (
	"errors"
	"fmt"
)

type Kind uint8

const (
	KindInternal Kind = iota
	KindValidation
	KindConflict
	KindNotFound
	KindProcessing
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindConflict:
		return "conflict"
	case KindNotFound:
		return "not_found"
	case KindProcessing:
		return "processing"
	default:
		return "internal"
	}
}

// Error carries a Kind so transports can pick a status without string matching.
type Error struct {
	Kind Kind
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil && e.Msg == "" {
		return e.Err.Error()
	}
	return e.Msg
}

func (e *Error) Unwrap() error { return e.Err }

func Validation(msg string) *Error { return &Error{Kind: KindValidation, Msg: msg} }
func Conflict(msg string) *Error { return &Error{Kind: KindConflict, Msg: msg} }
func NotFound(msg string) *Error { return &Error{Kind: KindNotFound, Msg: msg} }
func Processing(msg string) *Error { return &Error{Kind: KindProcessing, Msg: msg} }

func Validationf(format string, args ...any) *Error {
	return Validation(fmt.Sprintf(format, args...))
}

func Processingf(format string, args ...any) *Error {
	return Processing(fmt.Sprintf(format, args...))
}

// Wrap keeps err reachable through errors.Is while tagging it with kind.
func Wrap(kind Kind, msg string, err error) *Error {
	return &Error{Kind: kind, Msg: msg, Err: err}
}

// KindOf reports KindInternal for nil-kind and foreign errors.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}
