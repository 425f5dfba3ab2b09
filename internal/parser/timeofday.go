// Package parser turns user input into slot positions: clock times, natural
// language times of day and journal entries.
package parser

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/markusmobius/go-dateparser"

	"github.com/manav03panchal/daygrid/internal/journal"
	"github.com/manav03panchal/daygrid/internal/logging"
)

// clockRegex matches "9", "9am", "9:05", "09:05 PM", "21:30".
var clockRegex = regexp.MustCompile(`(?i)^(\d{1,2})(?::(\d{2}))?\s*(am|pm)?$`)

// Now returns the current time. Tests replace it.
var Now = time.Now

// ParseTimeOfDay parses a time of day and returns minutes since midnight.
// Plain clock forms are handled directly; anything else goes to go-dateparser,
// whose result contributes only its hour and minute.
func ParseTimeOfDay(input string) (int, error) {
	input = strings.TrimSpace(input)
	switch strings.ToLower(input) {
	case "", "now":
		t := Now()
		return t.Hour()*60 + t.Minute(), nil
	case "midnight":
		return 0, nil
	case "noon", "midday":
		return 12 * 60, nil
	}

	if match := clockRegex.FindStringSubmatch(input); match != nil {
		if minutes, ok := clockMinutes(match[1], match[2], match[3]); ok {
			return minutes, nil
		}
		return 0, NewTimeOfDayError(input).ToUserError()
	}

	cfg := &dateparser.Configuration{
		CurrentTime: Now(),
	}
	result, err := dateparser.Parse(cfg, input)
	if err != nil || result.Time.IsZero() {
		return 0, NewTimeOfDayError(input).ToUserError()
	}
	logging.DebugLog("time parsed by dateparser", "input", input, "time", result.Time.Format("15:04"))
	return result.Time.Hour()*60 + result.Time.Minute(), nil
}

// clockMinutes validates the captured pieces of clockRegex.
func clockMinutes(hourStr, minuteStr, meridiem string) (int, bool) {
	hour, _ := strconv.Atoi(hourStr)
	minute := 0
	if minuteStr != "" {
		minute, _ = strconv.Atoi(minuteStr)
	}
	if minute > 59 {
		return 0, false
	}

	switch strings.ToLower(meridiem) {
	case "am":
		if hour < 1 || hour > 12 {
			return 0, false
		}
		if hour == 12 {
			hour = 0
		}
	case "pm":
		if hour < 1 || hour > 12 {
			return 0, false
		}
		if hour != 12 {
			hour += 12
		}
	default:
		if hour > 23 {
			return 0, false
		}
	}
	return hour*60 + minute, true
}

// ParseSlot parses a time of day and returns the index of the slot containing it.
func ParseSlot(input string) (int, error) {
	minutes, err := ParseTimeOfDay(input)
	if err != nil {
		return 0, err
	}
	return journal.SlotForMinutes(minutes)
}
