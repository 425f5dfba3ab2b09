package parser

import (
	"strings"

	"github.com/manav03panchal/daygrid/internal/errors"
	"github.com/manav03panchal/daygrid/internal/journal"
	"github.com/manav03panchal/daygrid/internal/validate"
)

// ParseEntry parses a journal entry of the form "TIME=TEXT" or
// "TIME=TEXT@LEVEL", for example "9am=standup@1". The level defaults to 0.
// Only the last '@' separates the level, so text may contain '@'.
func ParseEntry(input string) (journal.Entry, error) {
	timePart, rest, ok := strings.Cut(input, "=")
	if !ok || strings.TrimSpace(timePart) == "" {
		return journal.Entry{}, errors.NewFieldError(errors.ErrInvalidEntry, "entry", input)
	}

	index, err := ParseSlot(timePart)
	if err != nil {
		return journal.Entry{}, err
	}

	text := rest
	level := journal.Level(0)
	if at := strings.LastIndex(rest, "@"); at >= 0 {
		if parsed, err := journal.ParseLevel(strings.TrimSpace(rest[at+1:])); err == nil {
			text = rest[:at]
			level = parsed
		}
	}

	text = validate.SanitizeText(text)
	if text == "" {
		return journal.Entry{}, errors.NewFieldError(errors.ErrInvalidEntry, "entry", input)
	}
	if err := validate.Text(text); err != nil {
		return journal.Entry{}, err
	}

	return journal.Entry{Index: index, Text: text, Level: level}, nil
}

// ApplyEntries parses every entry and fills j with them. Later entries for
// the same slot replace earlier ones.
func ApplyEntries(j *journal.Journal, inputs []string) error {
	for _, in := range inputs {
		e, err := ParseEntry(in)
		if err != nil {
			return err
		}
		if _, err := j.Fill(e.Index, e.Text, e.Level); err != nil {
			return err
		}
	}
	return nil
}
