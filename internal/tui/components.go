package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/manav03panchal/daygrid/internal/journal"
	"github.com/manav03panchal/daygrid/internal/output"
)

// Column widths of a grid row.
const (
	markerWidth = 2
	timeWidth   = 8
	gapWidth    = 7
	levelWidth  = 2
	eventWidth  = 18
)

// RowComponent renders one slot of the grid.
type RowComponent struct {
	Slot    journal.Slot
	Gap     journal.Gap
	Cursor  bool
	Now     bool
	Editing bool
	// Buffer is the text being typed; shown instead of Slot.Text while editing.
	Buffer string
	Events []string
	Width  int
}

// View renders the row.
func (rc *RowComponent) View() string {
	marker := "  "
	switch {
	case rc.Cursor:
		marker = "> "
	case rc.Now:
		marker = "• "
	}

	label := TimeStyle(rc.Slot.Index).Render(journal.TimeLabel(rc.Slot.Index))

	textWidth := rc.Width - markerWidth - timeWidth - gapWidth - levelWidth - 4
	if len(rc.Events) > 0 {
		textWidth -= eventWidth + 1
	}
	if textWidth < 8 {
		textWidth = 8
	}

	text := rc.Slot.Text
	if rc.Editing {
		text = rc.Buffer + "▏"
	}
	levelStyle := LevelStyle(rc.Slot.Level)
	textCell := pad(truncate(text, textWidth), textWidth)
	if rc.Slot.IsSet() || rc.Editing {
		textCell = levelStyle.Render(textCell)
	} else {
		textCell = StyleMuted.Render(textCell)
	}

	gap := pad(output.FormatGap(rc.Gap), gapWidth)
	level := levelStyle.Render(fmt.Sprintf("%*s", levelWidth, output.FormatLevel(rc.Slot.Level)))

	parts := []string{marker + label, textCell, StyleMuted.Render(gap), level}
	if len(rc.Events) > 0 {
		ev := truncate(strings.Join(rc.Events, ", "), eventWidth)
		parts = append(parts, StyleEvent.Render(pad(ev, eventWidth)))
	}

	row := strings.Join(parts, " ")
	if rc.Cursor {
		return StyleCursorRow.Render(row)
	}
	return row
}

// SummaryComponent renders per-level minutes and the total score.
type SummaryComponent struct {
	Summary journal.Summary
	Width   int
}

// View renders the summary.
func (sc *SummaryComponent) View() string {
	parts := make([]string, 0, len(journal.Levels)+1)
	for _, l := range journal.Levels {
		parts = append(parts, LevelStyle(l).Render(fmt.Sprintf("%s: %d minutes", l, sc.Summary.Totals.Minutes(l))))
	}
	parts = append(parts, StyleTitle.Render(fmt.Sprintf("Total Score: %d", sc.Summary.TotalScore)))

	box := StyleSummaryBox
	if sc.Width > 4 {
		box = box.Width(sc.Width - 4)
	}
	return box.Render(strings.Join(parts, "  "))
}

// HelpBar renders the help bar at the bottom.
func HelpBar() string {
	keys := []struct {
		key  string
		desc string
	}{
		{"↑/↓", "move"},
		{"←/→", "productivity"},
		{"type", "edit"},
		{"ctrl+e", "export"},
		{"ctrl+l", "latest"},
		{"ctrl+n", "now"},
		{"ctrl+c", "quit"},
	}

	var parts []string
	for _, k := range keys {
		part := StyleHelpKey.Render(k.key) + " " + StyleHelpDesc.Render(k.desc)
		parts = append(parts, part)
	}

	return StyleHelp.Render(strings.Join(parts, "  •  "))
}

// truncate shortens s to at most width cells, ending with an ellipsis.
func truncate(s string, width int) string {
	if lipgloss.Width(s) <= width {
		return s
	}
	r := []rune(s)
	for len(r) > 0 && lipgloss.Width(string(r))+1 > width {
		r = r[:len(r)-1]
	}
	return string(r) + "…"
}

// pad right-pads s to width cells.
func pad(s string, width int) string {
	if n := lipgloss.Width(s); n < width {
		return s + strings.Repeat(" ", width-n)
	}
	return s
}
