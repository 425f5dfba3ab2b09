package errors

import (
	"errors"
	"os"
	"syscall"
)

// Category represents the type of error for display and handling purposes.
type Category int

const (
	// CategoryUnknown is the default for unclassified errors.
	CategoryUnknown Category = iota
	// CategoryUser indicates an error the user can fix (bad input, missing args).
	CategoryUser
	// CategorySystem indicates a system-level error (disk full, permissions).
	CategorySystem
	// CategoryRecoverable indicates an error that can be retried.
	CategoryRecoverable
)

// String returns the string representation of the category.
func (c Category) String() string {
	switch c {
	case CategoryUser:
		return "user"
	case CategorySystem:
		return "system"
	case CategoryRecoverable:
		return "recoverable"
	default:
		return "unknown"
	}
}

// Classify determines the category of an error.
func Classify(err error) Category {
	if err == nil {
		return CategoryUnknown
	}

	if IsUserError(err) {
		return CategoryUser
	}
	if IsSystemError(err) {
		return CategorySystem
	}
	if IsRecoverableError(err) || errors.Is(err, ErrLockHeld) {
		return CategoryRecoverable
	}
	if isSystemLevel(err) {
		return CategorySystem
	}

	return CategoryUnknown
}

// isSystemLevel checks if an error is a system-level error.
func isSystemLevel(err error) bool {
	var errno syscall.Errno
	if errors.As(err, &errno) {
		switch errno {
		case syscall.ENOSPC, syscall.EACCES, syscall.EPERM, syscall.EIO, syscall.EROFS:
			return true
		}
	}

	if errors.Is(err, os.ErrPermission) {
		return true
	}

	return errors.Is(err, ErrDiskFull) ||
		errors.Is(err, ErrDatabaseCorrupted) ||
		errors.Is(err, ErrPermissionDenied)
}

// FormatByCategory returns a user-appropriate error message based on category.
func FormatByCategory(err error) string {
	if err == nil {
		return ""
	}

	msg := err.Error()
	suggestion := GetSuggestion(err)

	switch Classify(err) {
	case CategoryUser:
		if suggestion != "" {
			return msg + "\n" + suggestion
		}
		return msg

	case CategorySystem:
		if suggestion != "" {
			return "System error: " + msg + "\n" + suggestion
		}
		return "System error: " + msg

	case CategoryRecoverable:
		if suggestion != "" {
			return msg + " (try again)\n" + suggestion
		}
		return msg + " (try again)"

	default:
		return msg
	}
}
