// Package errors provides consistent error types for the daygrid CLI.
// It defines three main categories: UserError (fixable by user), SystemError (system issues),
// and RecoverableError (can be automatically retried).
package errors

import (
	"errors"
	"fmt"
)

// Standard sentinel errors for common conditions.
var (
	ErrOutOfRange        = errors.New("slot index out of range")
	ErrNothingToExport   = errors.New("no data to export")
	ErrNoFilledSlot      = errors.New("no latest field with text found")
	ErrInvalidTime       = errors.New("invalid time of day")
	ErrInvalidLevel      = errors.New("invalid productivity level")
	ErrInvalidEntry      = errors.New("invalid journal entry")
	ErrInvalidCSV        = errors.New("invalid journal export")
	ErrInvalidEvents     = errors.New("invalid calendar events file")
	ErrExportNotFound    = errors.New("export record not found")
	ErrUnknownSetting    = errors.New("unknown setting")
	ErrDatabaseCorrupted = errors.New("database corrupted")
	ErrPermissionDenied  = errors.New("permission denied")
	ErrDiskFull          = errors.New("disk full")
	ErrLockHeld          = errors.New("database locked by another process")
)

// UserError represents an error that the user can fix.
// Examples: invalid input, missing required arguments, incorrect format.
type UserError struct {
	Message    string // What happened
	Suggestion string // How to fix it
	Field      string // The field/input that caused the error (optional)
	Value      string // The invalid value (optional)
	Cause      error  // Sentinel or underlying error (optional)
}

func (e *UserError) Error() string {
	msg := e.Message
	if e.Field != "" && e.Value != "" {
		msg = fmt.Sprintf("%s: '%s'", e.Message, e.Value)
	}
	return msg
}

func (e *UserError) Unwrap() error {
	return e.Cause
}

// NewUserError creates a new UserError.
func NewUserError(message, suggestion string) *UserError {
	return &UserError{
		Message:    message,
		Suggestion: suggestion,
	}
}

// NewUserErrorWithField creates a new UserError with field context.
func NewUserErrorWithField(field, value, message, suggestion string) *UserError {
	return &UserError{
		Message:    message,
		Field:      field,
		Value:      value,
		Suggestion: suggestion,
	}
}

// NewFieldError creates a UserError whose message comes from a sentinel, keeping the
// sentinel matchable with errors.Is.
func NewFieldError(cause error, field, value string) *UserError {
	return &UserError{
		Message:    cause.Error(),
		Field:      field,
		Value:      value,
		Suggestion: Suggestions[cause],
		Cause:      cause,
	}
}

// SystemError represents a system-level error that the user cannot directly fix.
// Examples: disk full, database corruption.
type SystemError struct {
	Message string // What happened
	Cause   error  // The underlying error
	Op      string // The operation that failed (optional)
}

func (e *SystemError) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("%s during %s", e.Message, e.Op)
	}
	return e.Message
}

func (e *SystemError) Unwrap() error {
	return e.Cause
}

// NewSystemError creates a new SystemError.
func NewSystemError(message string, cause error) *SystemError {
	return &SystemError{
		Message: message,
		Cause:   cause,
	}
}

// NewSystemErrorWithOp creates a new SystemError with operation context.
func NewSystemErrorWithOp(op, message string, cause error) *SystemError {
	return &SystemError{
		Message: message,
		Cause:   cause,
		Op:      op,
	}
}

// RecoverableError represents an error that can be retried.
// Example: the database directory is locked by a running session.
type RecoverableError struct {
	Message string
	Cause   error
}

func (e *RecoverableError) Error() string {
	return e.Message
}

func (e *RecoverableError) Unwrap() error {
	return e.Cause
}

// NewRecoverableError creates a new RecoverableError.
func NewRecoverableError(message string, cause error) *RecoverableError {
	return &RecoverableError{
		Message: message,
		Cause:   cause,
	}
}

// IsUserError checks if an error is a UserError.
func IsUserError(err error) bool {
	var ue *UserError
	return errors.As(err, &ue)
}

// IsSystemError checks if an error is a SystemError.
func IsSystemError(err error) bool {
	var se *SystemError
	return errors.As(err, &se)
}

// IsRecoverableError checks if an error is a RecoverableError.
func IsRecoverableError(err error) bool {
	var re *RecoverableError
	return errors.As(err, &re)
}

// AsUserError extracts a UserError from an error chain.
func AsUserError(err error) (*UserError, bool) {
	var ue *UserError
	ok := errors.As(err, &ue)
	return ue, ok
}

// Wrap wraps an error with additional context.
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// Wrapf wraps an error with formatted additional context.
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), err)
}

// Is reports whether any error in err's tree matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's tree that matches target.
func As(err error, target any) bool {
	return errors.As(err, target)
}

// New is re-exported so callers need only one errors import.
func New(text string) error {
	return errors.New(text)
}
