package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors surfaced to callers of the core services
var (
	ErrRotationNotFound   = errors.New("rotation not found")
	ErrAssignmentNotFound = errors.New("assignment not found")
	ErrAlreadySkipped     = errors.New("assignment was already skipped")
)

// SkipNotAllowedError is a user-facing rejection of a skip request.
// It is an expected outcome, not a bug the caller should log as one.
type SkipNotAllowedError struct {
	Reason string
}

func (e *SkipNotAllowedError) Error() string {
	return fmt.Sprintf("skip not allowed: %s", e.Reason)
}

// DeliveryFailedError is returned once all delivery attempts for a
// notification are exhausted. It carries the last underlying error.
type DeliveryFailedError struct {
	Attempts int
	Err      error
}

func (e *DeliveryFailedError) Error() string {
	return fmt.Sprintf("delivery failed after %d attempts: %v", e.Attempts, e.Err)
}

func (e *DeliveryFailedError) Unwrap() error {
	return e.Err
}

// ValidationError reports an invalid rotation definition or user input.
type ValidationError struct {
	Field string
	Msg   string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Msg)
}
