package parser

import (
	"fmt"
	"strings"

	"github.com/manav03panchal/daygrid/internal/errors"
)

// TimeParseError represents a time parsing error with helpful suggestions.
type TimeParseError struct {
	Input      string
	Field      string
	Message    string
	Examples   []string
	Suggestion string
}

func (e *TimeParseError) Error() string {
	return fmt.Sprintf("invalid %s '%s': %s", e.Field, e.Input, e.Message)
}

// Unwrap lets callers match the error against errors.ErrInvalidTime.
func (e *TimeParseError) Unwrap() error {
	return errors.ErrInvalidTime
}

// FormatWithExamples returns the error message with example suggestions.
func (e *TimeParseError) FormatWithExamples() string {
	var sb strings.Builder
	sb.WriteString(e.Error())

	if len(e.Examples) > 0 {
		sb.WriteString("\n\nValid examples:\n")
		for _, ex := range e.Examples {
			sb.WriteString("  - ")
			sb.WriteString(ex)
			sb.WriteString("\n")
		}
	}

	if e.Suggestion != "" {
		sb.WriteString("\n")
		sb.WriteString(e.Suggestion)
	}

	return sb.String()
}

// TimeOfDayExamples provides example time-of-day formats.
var TimeOfDayExamples = []string{
	"9am",
	"5:30pm",
	"14:30",
	"09:05 AM",
	"noon",
	"now",
}

// NewTimeOfDayError creates a time-of-day parse error with standard examples.
func NewTimeOfDayError(input string) *TimeParseError {
	return &TimeParseError{
		Input:      input,
		Field:      "time",
		Message:    "could not parse time of day",
		Examples:   TimeOfDayExamples,
		Suggestion: "Times are rounded down to the 5-minute slot that contains them.",
	}
}

// ToUserError converts a TimeParseError to a UserError. The TimeParseError
// stays in the chain so its examples can be printed.
func (e *TimeParseError) ToUserError() *errors.UserError {
	suggestion := e.Suggestion
	if len(e.Examples) > 0 && suggestion == "" {
		suggestion = fmt.Sprintf("Try: %s", strings.Join(e.Examples[:min(3, len(e.Examples))], ", "))
	}

	ue := errors.NewUserErrorWithField(e.Field, e.Input, e.Message, suggestion)
	ue.Cause = e
	return ue
}
