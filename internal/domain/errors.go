package domain

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("not found")
	ErrDB           = errors.New("database error")
)

// InvalidInputf returns an error classified as ErrInvalidInput
func InvalidInputf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, fmt.Sprintf(format, args...))
}

// NotFoundf returns an error classified as ErrNotFound
func NotFoundf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrNotFound, fmt.Sprintf(format, args...))
}

// DBError wraps a storage failure as ErrDB. Errors that are already
// classified (invalid input, not found) pass through unchanged.
func DBError(op string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, ErrInvalidInput) || errors.Is(err, ErrNotFound) || errors.Is(err, ErrDB) {
		return err
	}
	return fmt.Errorf("%w: %s: %w", ErrDB, op, err)
}

// MissingIDsError builds the NotFound error used by bulk operations,
// naming every id that does not exist.
func MissingIDsError(entity string, ids []int64) error {
	if len(ids) == 1 {
		return NotFoundf("%s %d not found", entity, ids[0])
	}
	return NotFoundf("%ss not found: %s", entity, FormatIDs(ids))
}
