package errors

import (
	"errors"
	"fmt"
	"runtime"
	"strings"
)

// StackFrame represents a single frame in a stack trace.
type StackFrame struct {
	Function string
	File     string
	Line     int
}

// String returns a formatted string representation of the stack frame.
func (f StackFrame) String() string {
	return fmt.Sprintf("%s\n\t%s:%d", f.Function, f.File, f.Line)
}

// ContextError wraps an error with additional context and optional stack trace.
type ContextError struct {
	Message string
	Cause   error
	Stack   []StackFrame
}

func (e *ContextError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *ContextError) Unwrap() error {
	return e.Cause
}

// WithStack wraps an error with context and captures the current stack trace.
// Used by the storage layer so --debug can show where a write failed.
func WithStack(err error, message string) error {
	if err == nil {
		return nil
	}

	var contextErr *ContextError
	if errors.As(err, &contextErr) && len(contextErr.Stack) > 0 {
		return err
	}

	return &ContextError{
		Message: message,
		Cause:   err,
		Stack:   captureStack(2),
	}
}

// captureStack captures the current stack trace, skipping the specified number of frames.
func captureStack(skip int) []StackFrame {
	const maxDepth = 32
	var pcs [maxDepth]uintptr
	n := runtime.Callers(skip+1, pcs[:])

	frames := runtime.CallersFrames(pcs[:n])
	stack := make([]StackFrame, 0, n)

	for {
		frame, more := frames.Next()
		if !strings.HasPrefix(frame.Function, "runtime.") &&
			!strings.HasPrefix(frame.Function, "testing.") {
			stack = append(stack, StackFrame{
				Function: frame.Function,
				File:     frame.File,
				Line:     frame.Line,
			})
		}
		if !more {
			break
		}
	}

	return stack
}

// GetStack extracts the stack trace from an error if available.
func GetStack(err error) []StackFrame {
	var contextErr *ContextError
	if errors.As(err, &contextErr) {
		return contextErr.Stack
	}
	return nil
}

// Chain returns the full error chain as a slice of error messages.
func Chain(err error) []string {
	var chain []string
	for err != nil {
		chain = append(chain, err.Error())
		err = errors.Unwrap(err)
	}
	return chain
}

// FormatDebugError formats an error with full debug information.
// This includes the error chain, category and stack trace if available.
func FormatDebugError(err error) string {
	if err == nil {
		return ""
	}

	var sb strings.Builder
	sb.WriteString("Error: ")
	sb.WriteString(err.Error())
	sb.WriteString("\n")

	if chain := Chain(err); len(chain) > 1 {
		sb.WriteString("\nError chain:\n")
		for i, msg := range chain {
			fmt.Fprintf(&sb, "  %d. %s\n", i+1, msg)
		}
	}

	fmt.Fprintf(&sb, "\nCategory: %s\n", Classify(err))

	if suggestion := GetSuggestion(err); suggestion != "" {
		fmt.Fprintf(&sb, "\nSuggestion: %s\n", suggestion)
	}

	if stack := GetStack(err); len(stack) > 0 {
		sb.WriteString("\nStack trace:\n")
		for i, frame := range stack {
			fmt.Fprintf(&sb, "  %d. %s\n       at %s:%d\n", i+1, frame.Function, frame.File, frame.Line)
		}
	}

	return sb.String()
}
