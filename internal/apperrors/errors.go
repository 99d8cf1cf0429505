package apperrors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel and typed errors shared by every service. Handlers translate these
// into HTTP statuses; services never touch status codes themselves.

var (
	ErrNotFound           = errors.New("record not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// ConflictError reports a duplicate value for a unique field.
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string {
	return e.Message
}

func Conflict(message string) error {
	return &ConflictError{Message: message}
}

// ValidationError lists the required fields missing from a request.
type ValidationError struct {
	Missing []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("missing required fields: %s", strings.Join(e.Missing, ", "))
}

func MissingFields(fields ...string) error {
	return &ValidationError{Missing: fields}
}

// UploadError wraps a media host failure so the boundary can report the
// failing step distinctly from a store fault.
type UploadError struct {
	Err error
}

func (e *UploadError) Error() string {
	return fmt.Sprintf("media upload failed: %v", e.Err)
}

func (e *UploadError) Unwrap() error {
	return e.Err
}
