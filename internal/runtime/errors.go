package runtime

import (
	"strings"

	"github.com/manav03panchal/daygrid/internal/errors"
	"github.com/manav03panchal/daygrid/internal/parser"
)

// FormatError formats an error with its suggestion and, for input errors,
// example commands. Unparseable times also list valid time formats. In debug mode the chain and stack are included.
func FormatError(err error, debug bool) string {
	if err == nil {
		return ""
	}
	if debug {
		return strings.TrimRight(errors.FormatDebugError(err), "\n")
	}

	msg := errors.FormatByCategory(err)
	var tpe *parser.TimeParseError
	if errors.As(err, &tpe) {
		msg = tpe.FormatWithExamples()
	}
	if examples := errors.GetExamples(err); len(examples) > 0 {
		msg += "\nExamples:"
		for _, ex := range examples {
			msg += "\n  " + ex
		}
	}
	return msg
}

// ErrorStatus returns the JSON status for an error: its category.
func ErrorStatus(err error) string {
	return errors.Classify(err).String() + "_error"
}
