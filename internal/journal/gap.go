package journal

import "strconv"

// Gap is the number of minutes from a filled slot to the next filled slot.
// Valid is false for unset slots and for the latest filled slot.
type Gap struct {
	Minutes int
	Valid   bool
}

// String renders the gap in minutes, or "" when there is none.
func (g Gap) String() string {
	if !g.Valid {
		return ""
	}
	return strconv.Itoa(g.Minutes)
}

// Gaps computes the gap of every slot, scanning from the latest slot back to
// the earliest. slots must be in ascending index order.
func Gaps(slots []Slot) []Gap {
	gaps := make([]Gap, len(slots))
	next := -1
	for i := len(slots) - 1; i >= 0; i-- {
		s := slots[i]
		if !s.IsSet() {
			continue
		}
		if next >= 0 {
			gaps[i] = Gap{Minutes: next - s.Index, Valid: true}
		}
		next = s.Index
	}
	return gaps
}
