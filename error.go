package glide

import (
	"errors"
	"fmt"
)

var (
	ErrSchema           = errors.New("invalid markup")
	ErrFormat           = errors.New("bad format")
	ErrResourceNotFound = errors.New("resource not found")
	ErrPopupOpen        = errors.New("popup already open")
	ErrArgument         = errors.New("bad argument")
)

// SchemaError is returned when markup misses required elements or has unknown ones.
type SchemaError struct {
	Tag string // offending element, if any
	Msg string
}

func (e *SchemaError) Error() string {
	if e.Tag != "" {
		return fmt.Sprintf("%s: %s", e.Tag, e.Msg)
	}
	return e.Msg
}

func (e *SchemaError) Unwrap() error {
	return ErrSchema
}

// errorHandler returns check, which panics with a wrapped error when it is
// non-nil, and handle, to be deferred, which recovers that panic and passes the
// error to fn. Other panics are propagated.
func errorHandler(fn func(xerr error)) (func(error, string), func()) {
	type localError struct {
		err error
	}

	check := func(err error, msg string) {
		if err != nil {
			panic(&localError{fmt.Errorf("%s: %w", msg, err)})
		}
	}
	handle := func() {
		e := recover()
		if e == nil {
			return
		}
		if le, ok := e.(*localError); ok {
			fn(le.err)
		} else {
			panic(e)
		}
	}
	return check, handle
}
