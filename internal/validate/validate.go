// Package validate checks and cleans free-form input before it reaches the journal.
package validate

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/manav03panchal/daygrid/internal/errors"
)

const (
	// MaxTextLength is the maximum length of a slot's text.
	MaxTextLength = 1024
	// MaxLabelLength is the maximum length of a calendar event label.
	MaxLabelLength = 256
	// MaxPathLength is the maximum length of a configured directory.
	MaxPathLength = 4096
	// MaxPrefixLength is the maximum length of an export filename prefix.
	MaxPrefixLength = 64
)

// Text validates slot text after sanitizing.
func Text(text string) error {
	if utf8.RuneCountInString(text) > MaxTextLength {
		return errors.NewUserErrorWithField("text", TruncateString(text, 20),
			"Slot text too long",
			fmt.Sprintf("Slot text must be %d characters or fewer", MaxTextLength))
	}
	return nil
}

// Label validates a calendar event label.
func Label(label string) error {
	if strings.TrimSpace(label) == "" {
		return errors.NewUserError("Event label cannot be empty", "Give every event a label")
	}
	if utf8.RuneCountInString(label) > MaxLabelLength {
		return errors.NewUserErrorWithField("label", TruncateString(label, 20),
			"Event label too long",
			fmt.Sprintf("Event labels must be %d characters or fewer", MaxLabelLength))
	}
	return nil
}

// Directory validates a directory setting. Empty means the default.
func Directory(dir string) error {
	if dir == "" {
		return nil
	}
	if len(dir) > MaxPathLength {
		return errors.NewUserErrorWithField("dir", TruncateString(dir, 20),
			"Directory path too long",
			"Use a shorter path")
	}
	if StripControlChars(dir) != dir {
		return errors.NewUserErrorWithField("dir", dir,
			"Directory path contains control characters",
			"Use a plain directory path like ~/journal")
	}
	return nil
}
