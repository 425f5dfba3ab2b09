package output

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/manav03panchal/daygrid/internal/calendar"
	"github.com/manav03panchal/daygrid/internal/journal"
	"github.com/manav03panchal/daygrid/internal/model"
)

// Styles for CLI output.
var (
	// Colors
	colorPrimary = lipgloss.Color("#7C3AED") // Purple
	colorMuted   = lipgloss.Color("#6B7280") // Gray
	colorWarning = lipgloss.Color("#F59E0B") // Yellow
	colorError   = lipgloss.Color("#EF4444") // Red
	colorSuccess = lipgloss.Color("#10B981") // Green

	// Styles
	styleTitle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary)

	styleSuccess = lipgloss.NewStyle().
			Foreground(colorSuccess)

	styleWarning = lipgloss.NewStyle().
			Foreground(colorWarning)

	styleError = lipgloss.NewStyle().
			Foreground(colorError)

	styleMuted = lipgloss.NewStyle().
			Foreground(colorMuted)

	styleBold = lipgloss.NewStyle().
			Bold(true)

	styleTime = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary)
)

// levelColors are the row colors for each productivity level.
var levelColors = map[journal.Level]lipgloss.Color{
	-2: lipgloss.Color("#EF4444"), // Red
	-1: lipgloss.Color("#F97316"), // Orange
	0:  lipgloss.Color("#F9FAFB"), // White
	1:  lipgloss.Color("#10B981"), // Green
	2:  lipgloss.Color("#3B82F6"), // Blue
}

// LevelColor returns the display color for a level.
func LevelColor(l journal.Level) lipgloss.Color {
	if c, ok := levelColors[l.Clamp()]; ok {
		return c
	}
	return colorMuted
}

// LevelStyle returns a foreground style in the level's color.
func LevelStyle(l journal.Level) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(LevelColor(l))
}

// FormatLevel renders a level with an explicit sign: "+2", "0", "-1".
func FormatLevel(l journal.Level) string {
	if l > 0 {
		return "+" + l.String()
	}
	return l.String()
}

// FormatGap renders a gap the way the grid shows it, e.g. "15 min".
func FormatGap(g journal.Gap) string {
	if !g.Valid {
		return ""
	}
	return g.String() + " min"
}

// SummaryLine renders per-level minutes and the total score on one line:
// "-2: 0 minutes  -1: 5 minutes  0: 0 minutes  1: 0 minutes  2: 10 minutes  Total Score: 95".
func SummaryLine(sum journal.Summary) string {
	parts := make([]string, 0, len(journal.Levels)+1)
	for _, l := range journal.Levels {
		parts = append(parts, fmt.Sprintf("%s: %d minutes", l, sum.Totals.Minutes(l)))
	}
	parts = append(parts, fmt.Sprintf("Total Score: %d", sum.TotalScore))
	return strings.Join(parts, "  ")
}

// CLIFormatter provides CLI-specific formatting.
type CLIFormatter struct {
	*Formatter
}

// NewCLIFormatter creates a new CLI formatter.
func NewCLIFormatter(f *Formatter) *CLIFormatter {
	return &CLIFormatter{Formatter: f}
}

// Title prints a title.
func (c *CLIFormatter) Title(text string) {
	if c.IsColorEnabled() {
		c.Println(styleTitle.Render(text))
	} else {
		c.Println(text)
	}
}

// Success prints a success message.
func (c *CLIFormatter) Success(text string) {
	if c.IsColorEnabled() {
		c.Println(styleSuccess.Render("✓ " + text))
	} else {
		c.Println("✓ " + text)
	}
}

// Warning prints a warning message.
func (c *CLIFormatter) Warning(text string) {
	if c.IsColorEnabled() {
		c.Println(styleWarning.Render("⚠ " + text))
	} else {
		c.Println("⚠ " + text)
	}
}

// Error prints an error message.
func (c *CLIFormatter) Error(text string) {
	if c.IsColorEnabled() {
		c.Println(styleError.Render("✗ " + text))
	} else {
		c.Println("✗ " + text)
	}
}

// Muted prints muted text.
func (c *CLIFormatter) Muted(text string) {
	if c.IsColorEnabled() {
		c.Println(styleMuted.Render(text))
	} else {
		c.Println(text)
	}
}

// Level formats a level in its color.
func (c *CLIFormatter) Level(l journal.Level) string {
	if c.IsColorEnabled() {
		return LevelStyle(l).Render(FormatLevel(l))
	}
	return FormatLevel(l)
}

// TimeLabel formats a slot time label.
func (c *CLIFormatter) TimeLabel(index int) string {
	if c.IsColorEnabled() {
		return styleTime.Render(journal.TimeLabel(index))
	}
	return journal.TimeLabel(index)
}

// PrintSlot prints one slot with its gap.
func (c *CLIFormatter) PrintSlot(s journal.Slot, gap journal.Gap) {
	c.Printf("%s  %s\n", c.TimeLabel(s.Index), c.Level(s.Level))
	if s.IsSet() {
		c.Printf("  Text: %s\n", s.Text)
	} else {
		c.Printf("  Text: %s\n", styleOrPlain(c, styleMuted, "(empty)"))
	}
	if gap.Valid {
		c.Printf("  Next entry in: %s\n", FormatGap(gap))
	}
	if s.IsSet() {
		c.Printf("  Score: %d\n", s.Score()*journal.SlotMinutes)
	}
}

// PrintSlots prints filled slots as a table.
func (c *CLIFormatter) PrintSlots(slots []journal.Slot, gaps []journal.Gap) {
	rows := make([]TableRow, 0, len(slots))
	for i, s := range slots {
		if !s.IsSet() {
			continue
		}
		rows = append(rows, TableRow{Columns: []string{
			journal.TimeLabel(s.Index),
			s.Text,
			FormatGap(gaps[i]),
			FormatLevel(s.Level),
		}})
	}
	c.PrintTable([]string{"TIME", "TEXT", "GAP", "LEVEL"}, rows)
}

// PrintSummary prints per-level minutes as a bar chart sized to the terminal,
// followed by the total score.
func (c *CLIFormatter) PrintSummary(sum journal.Summary) {
	total := sum.Filled * journal.SlotMinutes
	barWidth := c.Width() - 24
	if barWidth > 40 {
		barWidth = 40
	}
	if barWidth < 10 {
		barWidth = 10
	}

	for _, l := range journal.Levels {
		minutes := sum.Totals.Minutes(l)
		pct := 0.0
		if total > 0 {
			pct = float64(minutes) / float64(total) * 100
		}
		bar := ProgressBar(pct, barWidth)
		if c.IsColorEnabled() {
			bar = LevelStyle(l).Render(bar)
		}
		c.Printf("%3s  %s  %s\n", FormatLevel(l), bar, FormatMinutes(minutes))
	}
	c.Println()
	c.Printf("Filled: %d slots (%s)\n", sum.Filled, FormatMinutes(total))
	c.Printf("Total Score: %s\n", styleOrPlain(c, styleBold, fmt.Sprint(sum.TotalScore)))
}

// PrintExported prints the result of writing an export file.
func (c *CLIFormatter) PrintExported(path string, rows int, sum journal.Summary) {
	c.Success(fmt.Sprintf("Exported %d entries to %s", rows, path))
	c.Muted(SummaryLine(sum))
}

// PrintNothingToExport prints the notice shown when no slot has text.
func (c *CLIFormatter) PrintNothingToExport() {
	c.Warning("No data to export.")
}

// PrintPlacements prints where calendar events land on the grid.
func (c *CLIFormatter) PrintPlacements(placed []calendar.Placement, skipped []calendar.Event) {
	rows := make([]TableRow, 0, len(placed))
	for _, p := range placed {
		rows = append(rows, TableRow{Columns: []string{
			journal.TimeLabel(p.Index),
			p.Label,
			p.Start,
		}})
	}
	c.PrintTable([]string{"SLOT", "LABEL", "START"}, rows)

	for _, e := range skipped {
		c.Warning(fmt.Sprintf("Skipped event %q: cannot place start %q", e.Label, e.Start))
	}
}

// PrintHistory prints recorded exports, newest first.
func (c *CLIFormatter) PrintHistory(recs []*model.ExportRecord) {
	if len(recs) == 0 {
		c.Muted("No exports recorded.")
		return
	}
	rows := make([]TableRow, 0, len(recs))
	for _, r := range recs {
		rows = append(rows, TableRow{Columns: []string{
			FormatTime(r.ExportedAt),
			fmt.Sprint(r.Rows),
			fmt.Sprint(r.TotalScore),
			r.Path,
		}})
	}
	c.PrintTable([]string{"EXPORTED", "ROWS", "SCORE", "PATH"}, rows)
}

// PrintSettings prints user settings.
func (c *CLIFormatter) PrintSettings(cfg *model.Config) {
	for _, kv := range cfg.Settings() {
		value := kv[1]
		if value == "" {
			value = styleOrPlain(c, styleMuted, "(default)")
		}
		c.Printf("%-12s %s\n", kv[0], value)
	}
}

func styleOrPlain(c *CLIFormatter, style lipgloss.Style, text string) string {
	if c.IsColorEnabled() {
		return style.Render(text)
	}
	return text
}

// ProgressBar creates a simple progress bar.
func ProgressBar(percentage float64, width int) string {
	if percentage > 100 {
		percentage = 100
	}
	if percentage < 0 {
		percentage = 0
	}

	filled := int(float64(width) * percentage / 100)
	empty := width - filled

	bar := strings.Repeat("█", filled) + strings.Repeat("░", empty)
	return bar
}

// Table helpers for CLI output.
type TableRow struct {
	Columns []string
}

// PrintTable prints a simple table.
func (c *CLIFormatter) PrintTable(headers []string, rows []TableRow) {
	if len(rows) == 0 {
		return
	}

	// Calculate column widths
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range rows {
		for i, col := range row.Columns {
			if i < len(widths) && lipgloss.Width(col) > widths[i] {
				widths[i] = lipgloss.Width(col)
			}
		}
	}

	// Print headers
	var headerLine strings.Builder
	for i, h := range headers {
		headerLine.WriteString(pad(h, widths[i]) + "  ")
	}
	c.Println(styleOrPlain(c, styleBold, strings.TrimRight(headerLine.String(), " ")))

	// Print separator
	var sep strings.Builder
	for _, w := range widths {
		sep.WriteString(strings.Repeat("─", w) + "  ")
	}
	c.Println(strings.TrimRight(sep.String(), " "))

	// Print rows
	for _, row := range rows {
		var rowLine strings.Builder
		for i, col := range row.Columns {
			if i < len(widths) {
				rowLine.WriteString(pad(col, widths[i]) + "  ")
			}
		}
		c.Println(strings.TrimRight(rowLine.String(), " "))
	}
}

// pad right-pads s to width display cells.
func pad(s string, width int) string {
	if n := lipgloss.Width(s); n < width {
		return s + strings.Repeat(" ", width-n)
	}
	return s
}
