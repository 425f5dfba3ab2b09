package journal

import (
	"testing"
	"time"

	"github.com/manav03panchal/daygrid/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// =============================================================================
// Slot Tests
// =============================================================================

func TestNewJournal(t *testing.T) {
	j := New()
	slots := j.Slots()

	require.Len(t, slots, SlotsPerDay)
	assert.Equal(t, 288, SlotsPerDay)
	for i, s := range slots {
		assert.Equal(t, i*SlotMinutes, s.Index)
		assert.False(t, s.IsSet())
		assert.Equal(t, Level(0), s.Level)
	}
	assert.Equal(t, 1435, slots[len(slots)-1].Index)
}

func TestSlotOutOfRange(t *testing.T) {
	j := New()

	for _, index := range []int{-5, 1, 7, 1436, 1440, 2000} {
		_, err := j.Slot(index)
		assert.ErrorIs(t, err, errors.ErrOutOfRange, "index %d", index)

		_, err = j.SetText(index, "x")
		assert.ErrorIs(t, err, errors.ErrOutOfRange)

		_, err = j.AdjustLevel(index, 1)
		assert.ErrorIs(t, err, errors.ErrOutOfRange)
	}

	for _, index := range []int{0, 5, 720, 1435} {
		s, err := j.Slot(index)
		require.NoError(t, err)
		assert.Equal(t, index, s.Index)
	}
}

func TestSetTextTrims(t *testing.T) {
	j := New()

	_, err := j.SetText(30, "  write report \t")
	require.NoError(t, err)

	s, err := j.Slot(30)
	require.NoError(t, err)
	assert.Equal(t, "write report", s.Text)
	assert.True(t, s.IsSet())

	t.Run("crlf_becomes_lf", func(t *testing.T) {
		_, err := j.SetText(35, "first\r\nsecond\r\n")
		require.NoError(t, err)
		s, _ := j.Slot(35)
		assert.Equal(t, "first\nsecond", s.Text)
	})

	t.Run("whitespace_clears", func(t *testing.T) {
		_, err := j.SetText(30, "   ")
		require.NoError(t, err)
		s, _ := j.Slot(30)
		assert.False(t, s.IsSet())
	})
}

func TestClearKeepsStoredLevel(t *testing.T) {
	j := New()
	_, _ = j.SetText(100, "deep work")
	_, _ = j.AdjustLevel(100, 1)
	_, _ = j.AdjustLevel(100, 1)

	sum, err := j.Clear(100)
	require.NoError(t, err)
	assert.Equal(t, 0, sum.TotalScore)
	assert.Equal(t, 0, sum.Filled)

	// The stored value survives; only the effective level is propagated.
	assert.Equal(t, Level(2), j.slots[100/SlotMinutes].Level)
	s, _ := j.Slot(100)
	assert.Equal(t, Level(0), s.Level)
}

func TestAdjustLevelClamps(t *testing.T) {
	j := New()
	_, _ = j.SetText(0, "plan")

	t.Run("upper_bound", func(t *testing.T) {
		for i := 0; i < 5; i++ {
			_, err := j.AdjustLevel(0, +1)
			require.NoError(t, err)
		}
		s, _ := j.Slot(0)
		assert.Equal(t, MaxLevel, s.Level)

		_, err := j.AdjustLevel(0, +1)
		require.NoError(t, err)
		s, _ = j.Slot(0)
		assert.Equal(t, Level(2), s.Level)
	})

	t.Run("lower_bound", func(t *testing.T) {
		for i := 0; i < 10; i++ {
			_, _ = j.AdjustLevel(0, -1)
		}
		s, _ := j.Slot(0)
		assert.Equal(t, Level(-2), s.Level)

		_, err := j.AdjustLevel(0, -1)
		require.NoError(t, err)
		s, _ = j.Slot(0)
		assert.Equal(t, MinLevel, s.Level)
	})
}

func TestAdjustLevelOnUnsetSlot(t *testing.T) {
	j := New()
	_, _ = j.SetText(0, "plan")
	_, _ = j.AdjustLevel(0, 1)

	sum, err := j.AdjustLevel(10, -1)
	require.NoError(t, err)
	assert.Equal(t, 5, sum.TotalScore)

	s, _ := j.Slot(10)
	assert.Equal(t, Level(1), s.Level, "unset slot follows propagation")
}

func TestNewlyFilledSlotStartsAtCarriedLevel(t *testing.T) {
	j := New()
	_, _ = j.SetText(0, "plan")
	_, _ = j.AdjustLevel(0, 2)

	_, err := j.SetText(15, "build")
	require.NoError(t, err)

	s, _ := j.Slot(15)
	assert.Equal(t, Level(2), s.Level)
}

func TestFill(t *testing.T) {
	j := New()

	sum, err := j.Fill(60, " review ", -1)
	require.NoError(t, err)
	assert.Equal(t, -5, sum.TotalScore)

	s, _ := j.Slot(60)
	assert.Equal(t, "review", s.Text)
	assert.Equal(t, Level(-1), s.Level)

	_, err = j.Fill(60, "x", 3)
	assert.ErrorIs(t, err, errors.ErrInvalidLevel)

	_, err = j.Fill(61, "x", 0)
	assert.ErrorIs(t, err, errors.ErrOutOfRange)
}

func TestFilledAndLatest(t *testing.T) {
	j := New()

	_, ok := j.Latest()
	assert.False(t, ok)
	assert.Empty(t, j.Filled())

	_, _ = j.SetText(600, "b")
	_, _ = j.SetText(30, "a")
	_, _ = j.SetText(1435, "c")

	latest, ok := j.Latest()
	require.True(t, ok)
	assert.Equal(t, 1435, latest)

	filled := j.Filled()
	require.Len(t, filled, 3)
	assert.Equal(t, []int{30, 600, 1435}, []int{filled[0].Index, filled[1].Index, filled[2].Index})
}

func TestSlotsReturnsCopy(t *testing.T) {
	j := New()
	slots := j.Slots()
	slots[0].Text = "mutated"
	slots[0].Index = 999

	s, _ := j.Slot(0)
	assert.False(t, s.IsSet())
	assert.Equal(t, 0, s.Index)
}

// =============================================================================
// Level Tests
// =============================================================================

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input   string
		want    Level
		wantErr bool
	}{
		{"-2", -2, false},
		{"-1", -1, false},
		{"0", 0, false},
		{"+1", 1, false},
		{"2", 2, false},
		{"3", 0, true},
		{"-3", 0, true},
		{"high", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseLevel(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, errors.ErrInvalidLevel)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLevelClamp(t *testing.T) {
	assert.Equal(t, Level(2), Level(7).Clamp())
	assert.Equal(t, Level(-2), Level(-3).Clamp())
	assert.Equal(t, Level(1), Level(1).Clamp())
}

// =============================================================================
// Time Mapping Tests
// =============================================================================

func TestTimeLabel(t *testing.T) {
	tests := map[int]string{
		0:    "12:00 AM",
		15:   "12:15 AM",
		545:  "09:05 AM",
		720:  "12:00 PM",
		810:  "01:30 PM",
		1435: "11:55 PM",
	}
	for index, want := range tests {
		assert.Equal(t, want, TimeLabel(index))
	}
}

func TestParseTimeLabel(t *testing.T) {
	for _, index := range []int{0, 15, 545, 720, 810, 1435} {
		got, err := ParseTimeLabel(TimeLabel(index))
		require.NoError(t, err)
		assert.Equal(t, index, got)
	}

	got, err := ParseTimeLabel("14:32")
	require.NoError(t, err)
	assert.Equal(t, 870, got)

	_, err = ParseTimeLabel("tea time")
	assert.ErrorIs(t, err, errors.ErrInvalidTime)
}

func TestSlotFor(t *testing.T) {
	at := func(h, m int) time.Time {
		return time.Date(2026, 10, 19, h, m, 42, 0, time.UTC)
	}

	assert.Equal(t, 0, SlotFor(at(0, 0)))
	assert.Equal(t, 540, SlotFor(at(9, 4)))
	assert.Equal(t, 545, SlotFor(at(9, 5)))
	assert.Equal(t, 1435, SlotFor(at(23, 59)))

	idx, err := SlotForMinutes(1439)
	require.NoError(t, err)
	assert.Equal(t, 1435, idx)

	_, err = SlotForMinutes(1440)
	assert.ErrorIs(t, err, errors.ErrOutOfRange)
	_, err = SlotForMinutes(-1)
	assert.ErrorIs(t, err, errors.ErrOutOfRange)
}
