// Package calendar places calendar events onto the journal grid. Events are
// read from YAML or CSV files; only their start time of day matters, and it
// is used as written without timezone conversion.
package calendar

import (
	"encoding/csv"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/manav03panchal/daygrid/internal/errors"
	"github.com/manav03panchal/daygrid/internal/journal"
	"github.com/manav03panchal/daygrid/internal/parser"
	"github.com/manav03panchal/daygrid/internal/validate"
)

// Event is an external calendar entry.
type Event struct {
	Start string `yaml:"start" json:"start"`
	Label string `yaml:"label" json:"label"`
}

// Placement is an event mapped to the slot containing its start.
type Placement struct {
	Event
	Index int `json:"index"`
}

// Format identifies an events file encoding.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatCSV  Format = "csv"
)

// FormatFromPath picks the format from a file extension, defaulting to YAML.
func FormatFromPath(path string) Format {
	if strings.EqualFold(filepath.Ext(path), ".csv") {
		return FormatCSV
	}
	return FormatYAML
}

// LoadFile reads events from path.
func LoadFile(path string) ([]Event, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Read(f, FormatFromPath(path))
}

// Read decodes events. YAML input is a list of {start, label} maps; CSV input
// has a "start,label" header.
func Read(r io.Reader, format Format) ([]Event, error) {
	switch format {
	case FormatCSV:
		return readCSV(r)
	default:
		return readYAML(r)
	}
}

func readYAML(r io.Reader) ([]Event, error) {
	var events []Event
	if err := yaml.NewDecoder(r).Decode(&events); err != nil {
		if err == io.EOF {
			return nil, nil
		}
		return nil, errors.Wrap(errors.ErrInvalidEvents, err.Error())
	}
	return events, nil
}

func readCSV(r io.Reader) ([]Event, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = 2
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, errors.Wrap(errors.ErrInvalidEvents, err.Error())
	}
	if len(records) == 0 {
		return nil, nil
	}
	if !strings.EqualFold(records[0][0], "start") || !strings.EqualFold(records[0][1], "label") {
		return nil, errors.Wrap(errors.ErrInvalidEvents, "missing start,label header")
	}

	events := make([]Event, 0, len(records)-1)
	for _, rec := range records[1:] {
		events = append(events, Event{Start: rec[0], Label: rec[1]})
	}
	return events, nil
}

// Place maps each event to its slot: floor(minutesSinceMidnight / 5) * 5.
// Starts may be RFC 3339 timestamps or any time of day the parser accepts.
// Events that cannot be placed are returned separately rather than failing
// the whole import.
func Place(events []Event) (placed []Placement, skipped []Event) {
	for _, e := range events {
		label := validate.SanitizeText(e.Label)
		index, err := slotForStart(e.Start)
		if err != nil || validate.Label(label) != nil {
			skipped = append(skipped, e)
			continue
		}
		e.Label = label
		placed = append(placed, Placement{Event: e, Index: index})
	}
	sort.SliceStable(placed, func(a, b int) bool {
		return placed[a].Index < placed[b].Index
	})
	return placed, skipped
}

func slotForStart(start string) (int, error) {
	start = strings.TrimSpace(start)
	if start == "" {
		return 0, errors.NewFieldError(errors.ErrInvalidTime, "start", start)
	}
	if t, err := time.Parse(time.RFC3339, start); err == nil {
		return journal.SlotFor(t), nil
	}
	return parser.ParseSlot(start)
}

// Apply writes event labels into unset slots and returns how many slots were
// filled. Filled slots keep their text unless overwrite is set.
func Apply(j *journal.Journal, placed []Placement, overwrite bool) (int, error) {
	filled := 0
	for _, p := range placed {
		s, err := j.Slot(p.Index)
		if err != nil {
			return filled, err
		}
		if s.IsSet() && !overwrite {
			continue
		}
		if _, err := j.SetText(p.Index, p.Label); err != nil {
			return filled, err
		}
		filled++
	}
	return filled, nil
}
