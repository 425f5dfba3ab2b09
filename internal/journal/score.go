package journal

// scores maps a level to its signed score. The extremes are amplified.
var scores = map[Level]int{
	-2: -10,
	-1: -1,
	0:  0,
	1:  1,
	2:  10,
}

// Score returns the signed score for a level. Out-of-range levels score 0.
func Score(l Level) int {
	return scores[l]
}

// Totals holds minutes attributed to each level, indexed by level+2.
type Totals [5]int

// Minutes returns the minutes recorded at level l.
func (t Totals) Minutes(l Level) int {
	if !l.Valid() {
		return 0
	}
	return t[l-MinLevel]
}

// Map returns the totals keyed by level.
func (t Totals) Map() map[Level]int {
	m := make(map[Level]int, len(Levels))
	for _, l := range Levels {
		m[l] = t.Minutes(l)
	}
	return m
}

// Summary is the aggregate state of a journal.
type Summary struct {
	Totals     Totals
	TotalScore int
	Filled     int
}

// Summarize aggregates filled slots. Every filled slot counts as exactly
// SlotMinutes regardless of the gap to the next entry.
func Summarize(slots []Slot) Summary {
	var sum Summary
	for _, s := range slots {
		if !s.IsSet() || !s.Level.Valid() {
			continue
		}
		sum.Filled++
		sum.Totals[s.Level-MinLevel] += SlotMinutes
		sum.TotalScore += SlotMinutes * Score(s.Level)
	}
	return sum
}
