package output

import (
	"time"

	"github.com/manav03panchal/daygrid/internal/calendar"
	"github.com/manav03panchal/daygrid/internal/journal"
	"github.com/manav03panchal/daygrid/internal/model"
)

// JSONFormatter provides JSON-specific formatting.
type JSONFormatter struct {
	*Formatter
}

// NewJSONFormatter creates a new JSON formatter.
func NewJSONFormatter(f *Formatter) *JSONFormatter {
	return &JSONFormatter{Formatter: f}
}

// SlotOutput represents a slot in JSON output.
type SlotOutput struct {
	Index      int    `json:"index"`
	Time       string `json:"time"`
	Text       string `json:"text"`
	Level      int    `json:"level"`
	Filled     bool   `json:"filled"`
	GapMinutes *int   `json:"gap_minutes,omitempty"`
	Score      int    `json:"score"`
}

// NewSlotOutput creates a SlotOutput from a slot and its gap.
func NewSlotOutput(s journal.Slot, gap journal.Gap) *SlotOutput {
	out := &SlotOutput{
		Index:  s.Index,
		Time:   journal.TimeLabel(s.Index),
		Text:   s.Text,
		Level:  int(s.Level),
		Filled: s.IsSet(),
	}
	if s.IsSet() {
		out.Score = s.Score() * journal.SlotMinutes
	}
	if gap.Valid {
		minutes := gap.Minutes
		out.GapMinutes = &minutes
	}
	return out
}

// SummaryOutput represents a journal summary.
type SummaryOutput struct {
	MinutesByLevel map[string]int `json:"minutes_by_level"`
	FilledSlots    int            `json:"filled_slots"`
	FilledMinutes  int            `json:"filled_minutes"`
	TotalScore     int            `json:"total_score"`
}

// NewSummaryOutput creates a SummaryOutput from a summary.
func NewSummaryOutput(sum journal.Summary) *SummaryOutput {
	minutes := sum.Totals.Map()
	byLevel := make(map[string]int, len(minutes))
	for l, m := range minutes {
		byLevel[l.String()] = m
	}
	return &SummaryOutput{
		MinutesByLevel: byLevel,
		FilledSlots:    sum.Filled,
		FilledMinutes:  sum.Filled * journal.SlotMinutes,
		TotalScore:     sum.TotalScore,
	}
}

// StatsResponse represents the stats command output in JSON.
type StatsResponse struct {
	Summary *SummaryOutput `json:"summary"`
	Slots   []*SlotOutput  `json:"slots"`
}

// ExportResponse represents the export command output in JSON.
type ExportResponse struct {
	Status  string         `json:"status"`
	Path    string         `json:"path,omitempty"`
	Rows    []journal.Row  `json:"rows"`
	Summary *SummaryOutput `json:"summary"`
}

// PlacementsResponse represents the import command output in JSON.
type PlacementsResponse struct {
	Placed  []calendar.Placement `json:"placed"`
	Skipped []calendar.Event     `json:"skipped"`
	Filled  int                  `json:"filled"`
}

// ExportRecordOutput represents a recorded export in JSON.
type ExportRecordOutput struct {
	Key        string `json:"key"`
	Path       string `json:"path"`
	Date       string `json:"date"`
	ExportedAt string `json:"exported_at"`
	Rows       int    `json:"rows"`
	TotalScore int    `json:"total_score"`
}

// NewExportRecordOutput creates an ExportRecordOutput from a record.
func NewExportRecordOutput(r *model.ExportRecord) *ExportRecordOutput {
	return &ExportRecordOutput{
		Key:        r.Key,
		Path:       r.Path,
		Date:       r.Date,
		ExportedAt: r.ExportedAt.Format(time.RFC3339),
		Rows:       r.Rows,
		TotalScore: r.TotalScore,
	}
}

// HistoryResponse represents the history command output in JSON.
type HistoryResponse struct {
	Exports []*ExportRecordOutput `json:"exports"`
	Count   int                   `json:"count"`
}

// ErrorResponse represents an error in JSON.
type ErrorResponse struct {
	Status  string `json:"status"`
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// PrintSlot outputs a single slot in JSON format.
func (j *JSONFormatter) PrintSlot(s journal.Slot, gap journal.Gap) error {
	return j.JSON(NewSlotOutput(s, gap))
}

// PrintStats outputs the summary and filled slots in JSON format.
func (j *JSONFormatter) PrintStats(sum journal.Summary, slots []journal.Slot, gaps []journal.Gap) error {
	resp := StatsResponse{
		Summary: NewSummaryOutput(sum),
		Slots:   []*SlotOutput{},
	}
	for i, s := range slots {
		if s.IsSet() {
			resp.Slots = append(resp.Slots, NewSlotOutput(s, gaps[i]))
		}
	}
	return j.JSON(resp)
}

// PrintExport outputs export rows in JSON format. An empty path means
// nothing was written.
func (j *JSONFormatter) PrintExport(path string, rows []journal.Row, sum journal.Summary) error {
	resp := ExportResponse{
		Status:  "exported",
		Path:    path,
		Rows:    rows,
		Summary: NewSummaryOutput(sum),
	}
	if len(rows) == 0 {
		resp.Status = "empty"
		resp.Rows = []journal.Row{}
	}
	return j.JSON(resp)
}

// PrintPlacements outputs calendar placements in JSON format.
func (j *JSONFormatter) PrintPlacements(placed []calendar.Placement, skipped []calendar.Event, filled int) error {
	if placed == nil {
		placed = []calendar.Placement{}
	}
	if skipped == nil {
		skipped = []calendar.Event{}
	}
	return j.JSON(PlacementsResponse{Placed: placed, Skipped: skipped, Filled: filled})
}

// PrintHistory outputs recorded exports in JSON format.
func (j *JSONFormatter) PrintHistory(recs []*model.ExportRecord) error {
	outputs := make([]*ExportRecordOutput, len(recs))
	for i, r := range recs {
		outputs[i] = NewExportRecordOutput(r)
	}
	return j.JSON(HistoryResponse{Exports: outputs, Count: len(recs)})
}

// PrintSettings outputs user settings in JSON format.
func (j *JSONFormatter) PrintSettings(cfg *model.Config) error {
	settings := make(map[string]string)
	for _, kv := range cfg.Settings() {
		settings[kv[0]] = kv[1]
	}
	return j.JSON(settings)
}

// PrintError outputs an error in JSON format.
func (j *JSONFormatter) PrintError(status, errMsg, message string) error {
	resp := ErrorResponse{
		Status:  status,
		Error:   errMsg,
		Message: message,
	}
	return j.JSON(resp)
}
