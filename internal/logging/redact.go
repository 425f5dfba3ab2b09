package logging

import (
	"fmt"
	"log/slog"
	"strings"
)

const (
	// MaskChar is the character used for masking.
	MaskChar = "*"
	// ShowChars is how many leading characters of journal text stay visible.
	ShowChars = 3
)

// PrivateFields are attribute keys whose string values hold journal text.
var PrivateFields = map[string]bool{
	KeyText: true,
	"label": true,
	"entry": true,
}

// IsPrivateField checks if a field name carries journal text.
func IsPrivateField(fieldName string) bool {
	return PrivateFields[strings.ToLower(fieldName)]
}

// MaskText hides journal text, keeping the first few characters and the length.
func MaskText(text string) string {
	if text == "" {
		return ""
	}
	r := []rune(text)
	if len(r) <= ShowChars {
		return strings.Repeat(MaskChar, len(r))
	}
	return fmt.Sprintf("%s%s (%d chars)", string(r[:ShowChars]), strings.Repeat(MaskChar, 3), len(r))
}

// MaskArgs masks private values in a slice of logging arguments.
// Arguments are expected in key-value pairs: key1, value1, key2, value2, ...
func MaskArgs(args []any) []any {
	if len(args) < 2 {
		return args
	}

	result := make([]any, len(args))
	copy(result, args)

	for i := 0; i < len(result)-1; i += 2 {
		key, ok := result[i].(string)
		if !ok || !IsPrivateField(key) {
			continue
		}
		if strVal, ok := result[i+1].(string); ok {
			result[i+1] = MaskText(strVal)
		}
	}

	return result
}

// ReplaceAttr is a slog.HandlerOptions hook that masks private attributes.
func ReplaceAttr(_ []string, a slog.Attr) slog.Attr {
	if IsPrivateField(a.Key) && a.Value.Kind() == slog.KindString {
		return slog.String(a.Key, MaskText(a.Value.String()))
	}
	return a
}
