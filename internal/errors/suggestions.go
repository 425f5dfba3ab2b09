package errors

import "errors"

// Suggestions maps common errors to helpful suggestions.
var Suggestions = map[error]string{
	// User input errors
	ErrOutOfRange:      "Slots start on 5-minute boundaries between 00:00 and 23:55.",
	ErrNothingToExport: "Fill in at least one slot before exporting.",
	ErrNoFilledSlot:    "Type some text into a slot first.",
	ErrInvalidTime:     "Try formats like '9am', '5:30pm', '14:30' or 'noon'.",
	ErrInvalidLevel:    "Productivity levels are whole numbers from -2 to 2.",
	ErrInvalidEntry:    "Entries look like 'TIME=TEXT' or 'TIME=TEXT@LEVEL', e.g. '9am=standup@1'.",
	ErrInvalidCSV:      "Use a file produced by 'daygrid export' (header Time,Text,Duration,Productivity).",
	ErrInvalidEvents:   "Events need a start time and a label, e.g. '- {start: \"9:00\", label: standup}'.",
	ErrExportNotFound:  "Use 'daygrid history' to see recorded exports.",
	ErrUnknownSetting:  "Known settings: export_dir, format.",

	// System errors
	ErrDatabaseCorrupted: "Remove the database directory (~/.local/share/daygrid/db) to start fresh.",
	ErrPermissionDenied:  "Check file permissions in your data directory (~/.local/share/daygrid/).",
	ErrDiskFull:          "Free up disk space and try again. The open journal is kept in memory.",
	ErrLockHeld:          "Another daygrid process holds the database. Close it and try again.",
}

// GetSuggestion returns a suggestion for an error, if available.
// It walks the error chain to find matching suggestions.
func GetSuggestion(err error) string {
	if err == nil {
		return ""
	}

	if ue, ok := AsUserError(err); ok && ue.Suggestion != "" {
		return ue.Suggestion
	}

	for knownErr, suggestion := range Suggestions {
		if errors.Is(err, knownErr) {
			return suggestion
		}
	}

	return ""
}

// CommandExamples provides example commands for common errors.
var CommandExamples = map[error][]string{
	ErrInvalidTime: {
		"daygrid slot 9am",
		"daygrid export --entry '14:30=review@1'",
	},
	ErrInvalidEntry: {
		"daygrid stats --entry '9am=standup@1' --entry '9:15am=email@-1'",
		"daygrid export --entry 'noon=lunch'",
	},
}

// GetExamples returns example commands for an error.
func GetExamples(err error) []string {
	for knownErr, examples := range CommandExamples {
		if errors.Is(err, knownErr) {
			return examples
		}
	}
	return nil
}
