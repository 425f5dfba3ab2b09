package validate

import (
	"strings"
	"unicode"
)

// SanitizeText cleans slot text or an event label: control characters are
// dropped, line breaks and tabs become spaces and the ends are trimmed.
func SanitizeText(s string) string {
	s = strings.ReplaceAll(s, "\r\n", " ")
	var sb strings.Builder
	sb.Grow(len(s))
	for _, r := range s {
		switch {
		case r == '\n' || r == '\r' || r == '\t':
			sb.WriteRune(' ')
		case unicode.IsControl(r):
		default:
			sb.WriteRune(r)
		}
	}
	return strings.TrimSpace(sb.String())
}

// StripControlChars removes all control characters from a string.
func StripControlChars(s string) string {
	var sb strings.Builder
	for _, r := range s {
		if !unicode.IsControl(r) {
			sb.WriteRune(r)
		}
	}
	return sb.String()
}

// TruncateString truncates a string to maxLen runes, adding "..." if truncated.
func TruncateString(s string, maxLen int) string {
	r := []rune(s)
	if len(r) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return string(r[:maxLen])
	}
	return string(r[:maxLen-3]) + "..."
}

// SafeFilename converts a string to a safe filename fragment.
func SafeFilename(s string) string {
	// Replace unsafe characters
	replacer := strings.NewReplacer(
		"/", "_",
		"\\", "_",
		":", "_",
		"*", "_",
		"?", "_",
		"\"", "_",
		"<", "_",
		">", "_",
		"|", "_",
	)
	s = replacer.Replace(StripControlChars(s))

	// Trim whitespace and leading dots
	s = strings.TrimSpace(s)
	s = strings.TrimLeft(s, ".")

	if len(s) > MaxPrefixLength {
		s = TruncateString(s, MaxPrefixLength)
		s = strings.TrimSuffix(s, "...")
	}

	return s
}
