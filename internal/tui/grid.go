package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/robfig/cron/v3"

	"github.com/manav03panchal/daygrid/internal/calendar"
	"github.com/manav03panchal/daygrid/internal/errors"
	"github.com/manav03panchal/daygrid/internal/journal"
)

// tickMsg is sent every refresh interval to follow the current slot.
type tickMsg time.Time

// clearMessageMsg is sent when a status message may have expired.
type clearMessageMsg struct{}

// messageKind selects the status message style.
type messageKind int

const (
	messageInfo messageKind = iota
	messageSuccess
	messageWarning
	messageError
)

// chromeLines is the number of lines used by everything except the rows.
const chromeLines = 7

// Exported describes a written export file.
type Exported struct {
	Path string
	// Warnings are problems that did not stop the export.
	Warnings []string
}

// ExportFunc writes an export of j.
type ExportFunc func(j *journal.Journal) (Exported, error)

// GridModel is the bubbletea model for a journal session.
type GridModel struct {
	// Data
	journal *journal.Journal
	events  map[int][]string
	export  ExportFunc
	now     func() time.Time

	// Cursor and scrolling, as slot positions (index / 5)
	cursor int
	offset int
	// follow keeps the cursor on the current slot until the user moves it.
	follow bool

	// Editing
	editing bool
	buffer  []rune

	// UI state
	width      int
	height     int
	message    string
	kind       messageKind
	messageExp time.Time

	// Configuration
	schedule     cron.Schedule
	scrollMargin int
}

// GridConfig holds configuration for the grid.
type GridConfig struct {
	Journal *journal.Journal
	// Export is called on ctrl+e. Nil disables exporting.
	Export ExportFunc
	// Events are shown beside the slots they start in.
	Events          []calendar.Placement
	Now             func() time.Time
	RefreshInterval time.Duration
	// Schedule decides when to re-check the current slot. It defaults to
	// every RefreshInterval.
	Schedule     cron.Schedule
	ScrollMargin int
}

// NewGridModel creates a new grid model with the cursor on the current slot.
func NewGridModel(config GridConfig) *GridModel {
	if config.Journal == nil {
		config.Journal = journal.New()
	}
	if config.Now == nil {
		config.Now = time.Now
	}
	if config.RefreshInterval <= 0 {
		config.RefreshInterval = time.Minute
	}
	if config.Schedule == nil {
		config.Schedule = cron.Every(config.RefreshInterval)
	}
	if config.ScrollMargin < 0 {
		config.ScrollMargin = 0
	}

	events := make(map[int][]string)
	for _, p := range config.Events {
		events[p.Index] = append(events[p.Index], p.Label)
	}

	m := &GridModel{
		journal:      config.Journal,
		events:       events,
		export:       config.Export,
		now:          config.Now,
		follow:       true,
		schedule:     config.Schedule,
		scrollMargin: config.ScrollMargin,
	}
	m.cursor = journal.SlotFor(m.now()) / journal.SlotMinutes
	return m
}

// Init initializes the model.
func (m *GridModel) Init() tea.Cmd {
	return m.tickCmd()
}

// Update handles messages and updates the model.
func (m *GridModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.centerCursor()
		return m, nil

	case tickMsg:
		if m.follow && !m.editing {
			m.cursor = journal.SlotFor(m.now()) / journal.SlotMinutes
			m.scrollToCursor()
		}
		return m, m.tickCmd()

	case clearMessageMsg:
		if !m.messageExp.IsZero() && !m.now().Before(m.messageExp) {
			m.message = ""
			m.messageExp = time.Time{}
		}
		return m, nil
	}

	return m, nil
}

// handleKeyPress handles keyboard input.
func (m *GridModel) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC, tea.KeyCtrlQ:
		return m, tea.Quit

	case tea.KeyUp:
		m.moveCursor(-1)
		return m, nil

	case tea.KeyDown:
		m.moveCursor(1)
		return m, nil

	case tea.KeyPgUp:
		m.moveCursor(-m.visibleRows())
		return m, nil

	case tea.KeyPgDown:
		m.moveCursor(m.visibleRows())
		return m, nil

	case tea.KeyLeft:
		return m, m.adjustLevel(-1)

	case tea.KeyRight:
		return m, m.adjustLevel(1)

	case tea.KeyEnter, tea.KeyEsc:
		m.stopEditing()
		return m, nil

	case tea.KeyBackspace:
		m.startEditing()
		if len(m.buffer) > 0 {
			m.buffer = m.buffer[:len(m.buffer)-1]
		}
		return m, m.applyBuffer()

	case tea.KeyCtrlU:
		m.startEditing()
		m.buffer = m.buffer[:0]
		return m, m.applyBuffer()

	case tea.KeyCtrlE:
		m.stopEditing()
		return m, m.exportJournal()

	case tea.KeyCtrlL:
		return m, m.jumpToLatest()

	case tea.KeyCtrlN:
		m.stopEditing()
		m.follow = true
		m.cursor = journal.SlotFor(m.now()) / journal.SlotMinutes
		m.scrollToCursor()
		return m, nil

	case tea.KeyRunes, tea.KeySpace:
		m.startEditing()
		m.buffer = append(m.buffer, msg.Runes...)
		if msg.Type == tea.KeySpace && len(msg.Runes) == 0 {
			m.buffer = append(m.buffer, ' ')
		}
		return m, m.applyBuffer()
	}

	return m, nil
}

// moveCursor moves by delta rows, ends editing and stops following now.
func (m *GridModel) moveCursor(delta int) {
	m.stopEditing()
	m.follow = false
	m.cursor += delta
	if m.cursor < 0 {
		m.cursor = 0
	}
	if m.cursor >= journal.SlotsPerDay {
		m.cursor = journal.SlotsPerDay - 1
	}
	m.scrollToCursor()
}

// cursorIndex returns the slot index under the cursor.
func (m *GridModel) cursorIndex() int {
	return m.cursor * journal.SlotMinutes
}

func (m *GridModel) startEditing() {
	if m.editing {
		return
	}
	s, err := m.journal.Slot(m.cursorIndex())
	if err != nil {
		return
	}
	m.editing = true
	m.buffer = []rune(s.Text)
}

func (m *GridModel) stopEditing() {
	m.editing = false
	m.buffer = nil
}

// applyBuffer stores the edit buffer as the slot's text.
func (m *GridModel) applyBuffer() tea.Cmd {
	if _, err := m.journal.SetText(m.cursorIndex(), string(m.buffer)); err != nil {
		return m.setMessage(err.Error(), messageError, 3*time.Second)
	}
	return nil
}

func (m *GridModel) adjustLevel(delta int) tea.Cmd {
	s, err := m.journal.Slot(m.cursorIndex())
	if err != nil {
		return m.setMessage(err.Error(), messageError, 3*time.Second)
	}
	if !s.IsSet() {
		return m.setMessage("Empty slots follow the level above. Type something first.", messageInfo, 2*time.Second)
	}
	if _, err := m.journal.AdjustLevel(m.cursorIndex(), delta); err != nil {
		return m.setMessage(err.Error(), messageError, 3*time.Second)
	}
	return nil
}

func (m *GridModel) jumpToLatest() tea.Cmd {
	m.stopEditing()
	index, ok := m.journal.Latest()
	if !ok {
		return m.setMessage("No latest field with text found.", messageWarning, 3*time.Second)
	}
	m.follow = false
	m.cursor = index / journal.SlotMinutes
	m.centerCursor()
	return nil
}

func (m *GridModel) exportJournal() tea.Cmd {
	if m.export == nil {
		return m.setMessage("Export is not available in this session.", messageWarning, 3*time.Second)
	}
	out, err := m.export(m.journal)
	if err != nil {
		if errors.Is(err, errors.ErrNothingToExport) {
			return m.setMessage("No data to export.", messageWarning, 3*time.Second)
		}
		return m.setMessage("Export failed: "+err.Error(), messageError, 5*time.Second)
	}
	if len(out.Warnings) > 0 {
		msg := fmt.Sprintf("Exported to %s (%s)", out.Path, strings.Join(out.Warnings, "; "))
		return m.setMessage(msg, messageWarning, 8*time.Second)
	}
	return m.setMessage("Exported to "+out.Path, messageSuccess, 5*time.Second)
}

// visibleRows is how many slot rows fit on screen.
func (m *GridModel) visibleRows() int {
	rows := m.height - chromeLines
	if rows < 1 {
		rows = 1
	}
	return rows
}

// scrollToCursor keeps the cursor at least scrollMargin rows from either edge.
func (m *GridModel) scrollToCursor() {
	rows := m.visibleRows()
	margin := m.scrollMargin
	if margin*2 >= rows {
		margin = (rows - 1) / 2
	}
	if m.cursor-margin < m.offset {
		m.offset = m.cursor - margin
	}
	if m.cursor+margin >= m.offset+rows {
		m.offset = m.cursor + margin - rows + 1
	}
	m.clampOffset()
}

// centerCursor scrolls so the cursor is in the middle of the screen.
func (m *GridModel) centerCursor() {
	m.offset = m.cursor - m.visibleRows()/2
	m.clampOffset()
}

func (m *GridModel) clampOffset() {
	maxOffset := journal.SlotsPerDay - m.visibleRows()
	if maxOffset < 0 {
		maxOffset = 0
	}
	if m.offset > maxOffset {
		m.offset = maxOffset
	}
	if m.offset < 0 {
		m.offset = 0
	}
}

// View renders the grid.
func (m *GridModel) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	var sections []string

	sections = append(sections, m.renderHeader())

	slots := m.journal.Slots()
	gaps := m.journal.Gaps()
	nowPos := journal.SlotFor(m.now()) / journal.SlotMinutes

	end := m.offset + m.visibleRows()
	if end > journal.SlotsPerDay {
		end = journal.SlotsPerDay
	}
	rows := make([]string, 0, end-m.offset)
	for pos := m.offset; pos < end; pos++ {
		row := &RowComponent{
			Slot:    slots[pos],
			Gap:     gaps[pos],
			Cursor:  pos == m.cursor,
			Now:     pos == nowPos,
			Editing: m.editing && pos == m.cursor,
			Events:  m.events[slots[pos].Index],
			Width:   m.width,
		}
		if row.Editing {
			row.Buffer = string(m.buffer)
		}
		rows = append(rows, row.View())
	}
	sections = append(sections, strings.Join(rows, "\n"))

	summary := &SummaryComponent{Summary: m.journal.Summary(), Width: m.width}
	sections = append(sections, summary.View())

	sections = append(sections, m.renderMessage())
	sections = append(sections, HelpBar())

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// renderHeader renders the title, date and follow state.
func (m *GridModel) renderHeader() string {
	title := StyleTitle.Render("daygrid")
	date := StyleSubtitle.Render(m.now().Format("Mon Jan 2, 15:04"))
	state := ""
	if m.follow {
		state = StyleSubtitle.Render("following now")
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, title, "  ", date, "  ", state)
}

func (m *GridModel) renderMessage() string {
	switch m.kind {
	case messageSuccess:
		return StyleSuccess.Render(m.message)
	case messageWarning:
		return StyleWarning.Render(m.message)
	case messageError:
		return StyleError.Render(m.message)
	default:
		return StyleSubtitle.Render(m.message)
	}
}

// setMessage shows a temporary message and schedules its removal.
func (m *GridModel) setMessage(msg string, kind messageKind, duration time.Duration) tea.Cmd {
	m.message = msg
	m.kind = kind
	m.messageExp = m.now().Add(duration)
	return tea.Tick(duration, func(time.Time) tea.Msg {
		return clearMessageMsg{}
	})
}

// tickCmd returns a command that sends a tick message at the next scheduled time.
func (m *GridModel) tickCmd() tea.Cmd {
	now := m.now()
	wait := m.schedule.Next(now).Sub(now)
	if wait <= 0 {
		wait = time.Second
	}
	return tea.Tick(wait, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Cursor returns the slot index under the cursor.
func (m *GridModel) Cursor() int {
	return m.cursorIndex()
}

// Message returns the current status message.
func (m *GridModel) Message() string {
	return m.message
}

// Run starts an interactive session and returns when the user quits.
func Run(config GridConfig) error {
	model := NewGridModel(config)
	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err := p.Run()
	if err != nil {
		return fmt.Errorf("session: %w", err)
	}
	return nil
}
