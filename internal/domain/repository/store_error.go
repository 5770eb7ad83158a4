package repository

import (
	"fmt"

	"tasker/internal/errors"
)

// StoreErrorKind is the store-agnostic failure classification.
type StoreErrorKind int

const (
	KindInfrastructure StoreErrorKind = iota
	KindNotFound
	KindConstraintViolation
)

func (k StoreErrorKind) String() string {
	switch k {
	case KindNotFound:
		return "not_found"
	case KindConstraintViolation:
		return "constraint_violation"
	default:
		return "infrastructure"
	}
}

// StoreError is returned by every AccountRepository implementation so callers
// never inspect driver error types.
type StoreError struct {
	Kind  StoreErrorKind
	Op    string
	Field AccountField // set for ConstraintViolation when the violated field is known
	Err   error
}

func (e *StoreError) Error() string {
	msg := fmt.Sprintf("%s: %s", e.Op, e.Kind)
	if e.Field != "" {
		msg += " on " + string(e.Field)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}

	return msg
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

// NotFound builds a NotFound store error.
func NotFound(op string) error {
	return errors.WithStack(&StoreError{Kind: KindNotFound, Op: op})
}

// ConstraintViolation builds a unique constraint failure for field.
func ConstraintViolation(op string, field AccountField, err error) error {
	return errors.WithStack(&StoreError{Kind: KindConstraintViolation, Op: op, Field: field, Err: err})
}

// Infrastructure wraps a timeout, connectivity or unknown driver failure.
func Infrastructure(op string, err error) error {
	return errors.WithStack(&StoreError{Kind: KindInfrastructure, Op: op, Err: err})
}

// KindOf classifies err. Errors that are not StoreErrors count as infrastructure failures.
func KindOf(err error) StoreErrorKind {
	if storeErr, ok := errors.Find[*StoreError](err); ok {
		return storeErr.Kind
	}

	return KindInfrastructure
}

// IsNotFound reports whether err is a NotFound store error.
func IsNotFound(err error) bool {
	return err != nil && KindOf(err) == KindNotFound
}

// IsConstraintViolation reports whether err is a ConstraintViolation store error.
func IsConstraintViolation(err error) bool {
	return err != nil && KindOf(err) == KindConstraintViolation
}
