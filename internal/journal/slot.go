// Package journal implements the single-day time journal: a fixed grid of
// five-minute slots with text and a productivity level, the carry-forward
// propagation of levels, scoring, gaps between entries and the CSV export.
//
// A Journal is owned by a single session and is not safe for concurrent use.
package journal

import (
	"strconv"
	"time"

	"github.com/manav03panchal/daygrid/internal/errors"
)

const (
	// SlotMinutes is the width of one slot.
	SlotMinutes = 5
	// MinutesPerDay is 24 hours * 60 minutes.
	MinutesPerDay = 24 * 60
	// SlotsPerDay is the number of slots in a journal.
	SlotsPerDay = MinutesPerDay / SlotMinutes
	// LastIndex is the index of the 23:55 slot.
	LastIndex = MinutesPerDay - SlotMinutes
)

// Level is a productivity rating in [MinLevel, MaxLevel].
type Level int

const (
	MinLevel Level = -2
	MaxLevel Level = 2
)

// Levels lists every level in ascending order.
var Levels = []Level{-2, -1, 0, 1, 2}

// Valid reports whether l is within range.
func (l Level) Valid() bool {
	return l >= MinLevel && l <= MaxLevel
}

// Clamp limits l to [MinLevel, MaxLevel].
func (l Level) Clamp() Level {
	if l < MinLevel {
		return MinLevel
	}
	if l > MaxLevel {
		return MaxLevel
	}
	return l
}

func (l Level) String() string {
	return strconv.Itoa(int(l))
}

// ParseLevel parses a level such as "-1", "2" or "+1".
func ParseLevel(s string) (Level, error) {
	n, err := strconv.Atoi(s)
	if err != nil || !Level(n).Valid() {
		return 0, errors.NewFieldError(errors.ErrInvalidLevel, "level", s)
	}
	return Level(n), nil
}

// Slot is one five-minute interval of the day.
type Slot struct {
	// Index is minutes since midnight, a multiple of SlotMinutes.
	Index int
	// Text is trimmed; empty means the slot is unset.
	Text string
	// Level is the slot's productivity. For unset slots it is the level
	// carried forward from the nearest preceding filled slot.
	Level Level
}

// IsSet reports whether the slot has text.
func (s Slot) IsSet() bool {
	return s.Text != ""
}

// Label returns the slot's time label, e.g. "09:05 AM".
func (s Slot) Label() string {
	return TimeLabel(s.Index)
}

// Score returns the slot's signed score.
func (s Slot) Score() int {
	return Score(s.Level)
}

// ValidIndex reports whether index is on a five-minute boundary within the day.
func ValidIndex(index int) bool {
	return index >= 0 && index <= LastIndex && index%SlotMinutes == 0
}

// position converts a slot index into its position in the grid.
func position(index int) (int, error) {
	if !ValidIndex(index) {
		return 0, errors.NewFieldError(errors.ErrOutOfRange, "index", strconv.Itoa(index))
	}
	return index / SlotMinutes, nil
}

// labelBase anchors time labels; any date works since only the clock is printed.
var labelBase = time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC)

// TimeLabel renders minutes since midnight as a 12-hour label with a
// two-digit hour: 0 -> "12:00 AM", 545 -> "09:05 AM", 810 -> "01:30 PM".
func TimeLabel(index int) string {
	return labelBase.Add(time.Duration(index) * time.Minute).Format("03:04 PM")
}

// ParseTimeLabel is the inverse of TimeLabel. It also accepts the 24-hour
// "15:04" form and single-digit hours.
func ParseTimeLabel(label string) (int, error) {
	for _, layout := range []string{"03:04 PM", "3:04 PM", "15:04"} {
		t, err := time.Parse(layout, label)
		if err == nil {
			return SlotForMinutes(t.Hour()*60 + t.Minute())
		}
	}
	return 0, errors.NewFieldError(errors.ErrInvalidTime, "time", label)
}

// SlotForMinutes maps minutes since midnight to the slot containing it.
func SlotForMinutes(minutes int) (int, error) {
	if minutes < 0 || minutes >= MinutesPerDay {
		return 0, errors.NewFieldError(errors.ErrOutOfRange, "minutes", strconv.Itoa(minutes))
	}
	return minutes / SlotMinutes * SlotMinutes, nil
}

// SlotFor maps a wall-clock time to the slot containing it. The time's own
// location is used as-is.
func SlotFor(t time.Time) int {
	return (t.Hour()*60 + t.Minute()) / SlotMinutes * SlotMinutes
}
