package services

import (
	"errors"
	"fmt"

	"inventory/internal/repositories"
)

// ErrNotFound is wrapped by the BusinessError of a missing row.
var ErrNotFound = repositories.ErrNotFound

// BusinessError is an error the client caused or can act on. Its message is
// safe to return as is.
type BusinessError struct {
	Message string
	Err     error
}

func (e *BusinessError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *BusinessError) Unwrap() error {
	return e.Err
}

func businessError(format string, args ...interface{}) *BusinessError {
	return &BusinessError{Message: fmt.Sprintf(format, args...)}
}

func notFound(entity string) *BusinessError {
	return &BusinessError{Message: entity + " not found", Err: ErrNotFound}
}

// lookupError turns a missing row into a not found BusinessError and wraps
// anything else.
func lookupError(entity string, err error) error {
	if errors.Is(err, repositories.ErrNotFound) {
		return notFound(entity)
	}
	return fmt.Errorf("failed to get %s: %w", entity, err)
}

// deleteError reports ids that were requested but not deleted.
func deleteError(plural string, requested int, deleted int64) error {
	if int64(requested) == deleted {
		return nil
	}
	return businessError("%d %s not deleted. Please try again", int64(requested)-deleted, plural)
}

// updateError reports an update that matched no row.
func updateError(entity string, err error) error {
	if errors.Is(err, repositories.ErrNotFound) {
		return &BusinessError{Message: entity + " not updated. Please try again", Err: err}
	}
	return fmt.Errorf("failed to update %s: %w", entity, err)
}
