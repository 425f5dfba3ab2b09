package journal

import (
	"regexp"
	"strings"

	"github.com/manav03panchal/daygrid/internal/errors"
)

// lineBreak matches a newline and any carriage returns before it.
var lineBreak = regexp.MustCompile(`\r+\n`)

// cleanText turns CRLF line breaks into LF and trims the result. CSV readers
// fold CRLF inside quoted fields to LF, so stored text must already be in
// that form for an export to read back unchanged.
func cleanText(text string) string {
	return strings.TrimSpace(lineBreak.ReplaceAllString(text, "\n"))
}

// Journal is the ordered set of all slots for one day.
type Journal struct {
	slots [SlotsPerDay]Slot
}

// New creates a journal with every slot unset at level 0.
func New() *Journal {
	j := &Journal{}
	for i := range j.slots {
		j.slots[i].Index = i * SlotMinutes
	}
	return j
}

// Slot returns the slot at index with its effective level.
func (j *Journal) Slot(index int) (Slot, error) {
	pos, err := position(index)
	if err != nil {
		return Slot{}, err
	}
	s := j.slots[pos]
	if !s.IsSet() {
		s.Level = j.carried(pos)
	}
	return s, nil
}

// Slots returns a copy of all slots in index order, with unset slots
// reporting their propagated level.
func (j *Journal) Slots() []Slot {
	out := make([]Slot, SlotsPerDay)
	copy(out, j.slots[:])
	levels := Propagate(out)
	for i := range out {
		out[i].Level = levels[i]
	}
	return out
}

// Filled returns the slots that have text, in index order.
func (j *Journal) Filled() []Slot {
	var out []Slot
	for _, s := range j.slots {
		if s.IsSet() {
			out = append(out, s)
		}
	}
	return out
}

// Latest returns the index of the latest filled slot.
func (j *Journal) Latest() (int, bool) {
	for pos := SlotsPerDay - 1; pos >= 0; pos-- {
		if j.slots[pos].IsSet() {
			return j.slots[pos].Index, true
		}
	}
	return 0, false
}

// SetText sets the slot's text after trimming it and turning CRLF line breaks
// into LF. Empty text clears the slot
// but leaves its stored level untouched. A slot that becomes filled starts at
// the level carried into it.
func (j *Journal) SetText(index int, text string) (Summary, error) {
	pos, err := position(index)
	if err != nil {
		return Summary{}, err
	}
	text = cleanText(text)
	s := &j.slots[pos]
	if !s.IsSet() && text != "" {
		s.Level = j.carried(pos)
	}
	s.Text = text
	return j.Summary(), nil
}

// Clear removes the slot's text.
func (j *Journal) Clear(index int) (Summary, error) {
	return j.SetText(index, "")
}

// AdjustLevel moves a filled slot's level by delta, clamped to the valid
// range. On an unset slot it changes nothing, since unset levels follow
// propagation.
func (j *Journal) AdjustLevel(index, delta int) (Summary, error) {
	pos, err := position(index)
	if err != nil {
		return Summary{}, err
	}
	s := &j.slots[pos]
	if s.IsSet() {
		s.Level = (s.Level + Level(delta)).Clamp()
	}
	return j.Summary(), nil
}

// Fill sets text and level together, cleaning text like SetText. It is used
// when rebuilding a journal from entries or a previous export.
func (j *Journal) Fill(index int, text string, level Level) (Summary, error) {
	pos, err := position(index)
	if err != nil {
		return Summary{}, err
	}
	if !level.Valid() {
		return Summary{}, errors.NewFieldError(errors.ErrInvalidLevel, "level", level.String())
	}
	j.slots[pos].Text = cleanText(text)
	j.slots[pos].Level = level
	return j.Summary(), nil
}

// Summary scores the journal in a full pass.
func (j *Journal) Summary() Summary {
	return Summarize(j.slots[:])
}

// Gaps returns the gap for every slot in index order.
func (j *Journal) Gaps() []Gap {
	return Gaps(j.slots[:])
}

// Gap returns the gap for the slot at index.
func (j *Journal) Gap(index int) (Gap, error) {
	pos, err := position(index)
	if err != nil {
		return Gap{}, err
	}
	return j.Gaps()[pos], nil
}

// carried returns the level of the nearest filled slot before pos, or 0.
func (j *Journal) carried(pos int) Level {
	for p := pos - 1; p >= 0; p-- {
		if j.slots[p].IsSet() {
			return j.slots[p].Level
		}
	}
	return 0
}
