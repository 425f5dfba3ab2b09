package journal

// Propagate returns the effective level of each slot. Filled slots keep their
// own level; unset slots take the level of the nearest preceding filled slot,
// or 0 when none exists. slots must be in ascending index order.
//
// The stored level of unset slots is ignored, so applying the result back and
// propagating again yields the same levels.
func Propagate(slots []Slot) []Level {
	levels := make([]Level, len(slots))
	var carry Level
	for i, s := range slots {
		if s.IsSet() {
			carry = s.Level
		}
		levels[i] = carry
	}
	return levels
}
