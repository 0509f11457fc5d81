// Package fault defines the error taxonomy shared by the core components.
// Validation and not-found errors carry messages safe to show to callers;
// data-access errors wrap the backing-store cause and are only logged.
package fault

import (
	"errors"
	"fmt"
)

type ValidationError struct {
	Msg string
}

func (e ValidationError) Error() string { return e.Msg }

func Validation(format string, args ...any) error {
	return ValidationError{Msg: fmt.Sprintf(format, args...)}
}

type NotFoundError struct {
	Entity string
}

func (e NotFoundError) Error() string { return e.Entity + " not found" }

func NotFound(entity string) error {
	return NotFoundError{Entity: entity}
}

type DataAccessError struct {
	Op  string
	Err error
}

func (e DataAccessError) Error() string {
	return fmt.Sprintf("data access failed: %s: %v", e.Op, e.Err)
}

func (e DataAccessError) Unwrap() error { return e.Err }

func DataAccess(op string, err error) error {
	return DataAccessError{Op: op, Err: err}
}

func IsValidation(err error) bool {
	var ve ValidationError
	return errors.As(err, &ve)
}

func IsNotFound(err error) bool {
	var ne NotFoundError
	return errors.As(err, &ne)
}

func IsDataAccess(err error) bool {
	var de DataAccessError
	return errors.As(err, &de)
}
