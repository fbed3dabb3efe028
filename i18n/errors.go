package i18n

import (
	"errors"
	"fmt"

	"golang.org/x/text/language"
)

// TranslatableError represents an error whose message is resolved from the Bundle
type TranslatableError interface {
	error
	Key() string
	Args() []interface{}
	Unwrap() error
	Translate(lang language.Tag) string
}

// TrError is a keyed error with optional formatting arguments and an optional wrapped cause.
// Errors derived through WithArgs or Wrap compare equal (errors.Is) to the error they were derived
// from. An error created with NewChildError additionally compares equal to its parent kind.
//
// Example usage:
//
//	var ErrInvalidValue = NewError("commando.error.invalid_value")
//	err := ErrInvalidValue.WithArgs("x", "-f")
//	errors.Is(err, ErrInvalidValue) // true
type TrError struct {
	// sentinel is shared by every error derived from the same kind
	sentinel error
	parent   *TrError
	key      string
	args     []interface{}
	wrapped  error
}

// NewError creates a new translatable error kind
func NewError(key string) *TrError {
	return &TrError{
		sentinel: errors.New(key),
		key:      key,
	}
}

// NewChildError creates a new error kind which is also considered a parent error by errors.Is
func NewChildError(parent *TrError, key string) *TrError {
	e := NewError(key)
	e.parent = parent

	return e
}

// Key returns the message key
func (e *TrError) Key() string {
	return e.key
}

// Args returns the formatting arguments
func (e *TrError) Args() []interface{} {
	return e.args
}

// Error returns the message in the default language
func (e *TrError) Error() string {
	return e.Translate(Default().DefaultLanguage())
}

// Translate returns the message in lang
func (e *TrError) Translate(lang language.Tag) string {
	msg := Default().TL(lang, e.key, e.args...)
	if e.wrapped == nil {
		return msg
	}
	var tr TranslatableError
	if errors.As(e.wrapped, &tr) {
		return fmt.Sprintf("%s: %s", msg, tr.Translate(lang))
	}

	return fmt.Sprintf("%s: %v", msg, e.wrapped)
}

// WithArgs returns a copy of the error with format arguments
func (e *TrError) WithArgs(args ...interface{}) *TrError {
	return &TrError{
		sentinel: e.sentinel,
		parent:   e.parent,
		key:      e.key,
		args:     args,
		wrapped:  e.wrapped,
	}
}

// Wrap returns a copy of the error wrapping err
func (e *TrError) Wrap(err error) *TrError {
	return &TrError{
		sentinel: e.sentinel,
		parent:   e.parent,
		key:      e.key,
		args:     e.args,
		wrapped:  err,
	}
}

// Unwrap returns the wrapped error
func (e *TrError) Unwrap() error {
	return e.wrapped
}

// Is implements errors.Is: an error matches its own kind and every ancestor kind
func (e *TrError) Is(target error) bool {
	t, ok := target.(*TrError)
	if !ok {
		return target == e.sentinel
	}
	for kind := e; kind != nil; kind = kind.parent {
		if kind.sentinel == t.sentinel {
			return true
		}
	}

	return false
}
