package journal

import (
	"encoding/csv"
	"io"
	"strings"
	"time"

	"github.com/manav03panchal/daygrid/internal/errors"
)

const (
	// FallbackDuration is exported for the latest filled slot, which has no gap.
	FallbackDuration = "5"
	// FilenamePrefix starts every export filename.
	FilenamePrefix = "journal_export_"
)

// Header is the first row of every export.
var Header = Row{Time: "Time", Text: "Text", Duration: "Duration", Productivity: "Productivity"}

// Row is one exported slot.
type Row struct {
	Time         string `json:"time"`
	Text         string `json:"text"`
	Duration     string `json:"duration"`
	Productivity string `json:"productivity"`
}

// Fields returns the row's cells in column order.
func (r Row) Fields() []string {
	return []string{r.Time, r.Text, r.Duration, r.Productivity}
}

// Entry is a row decoded back into slot terms.
type Entry struct {
	Index int
	Text  string
	Level Level
}

// Entry decodes the row's time label and productivity.
func (r Row) Entry() (Entry, error) {
	index, err := ParseTimeLabel(r.Time)
	if err != nil {
		return Entry{}, err
	}
	level, err := ParseLevel(r.Productivity)
	if err != nil {
		return Entry{}, err
	}
	return Entry{Index: index, Text: r.Text, Level: level}, nil
}

// Rows builds one row per filled slot in ascending index order.
func Rows(slots []Slot) []Row {
	gaps := Gaps(slots)
	var rows []Row
	for i, s := range slots {
		if !s.IsSet() {
			continue
		}
		duration := gaps[i].String()
		if duration == "" {
			duration = FallbackDuration
		}
		rows = append(rows, Row{
			Time:         s.Label(),
			Text:         s.Text,
			Duration:     duration,
			Productivity: s.Level.String(),
		})
	}
	return rows
}

// Export returns the export rows, or ErrNothingToExport when no slot is filled.
func (j *Journal) Export() ([]Row, error) {
	rows := Rows(j.slots[:])
	if len(rows) == 0 {
		return nil, errors.NewFieldError(errors.ErrNothingToExport, "", "")
	}
	return rows, nil
}

// WriteCSV writes the header and rows. Every field is quoted, quotes are
// doubled and rows are joined by CRLF with no trailing line break.
func WriteCSV(w io.Writer, rows []Row) error {
	var sb strings.Builder
	writeRecord(&sb, Header.Fields())
	for _, r := range rows {
		sb.WriteString("\r\n")
		writeRecord(&sb, r.Fields())
	}
	_, err := io.WriteString(w, sb.String())
	return err
}

func writeRecord(sb *strings.Builder, fields []string) {
	for i, f := range fields {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteByte('"')
		sb.WriteString(strings.ReplaceAll(f, `"`, `""`))
		sb.WriteByte('"')
	}
}

// ReadCSV parses an export produced by WriteCSV.
func ReadCSV(r io.Reader) ([]Row, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = len(Header.Fields())

	records, err := reader.ReadAll()
	if err != nil {
		return nil, errors.Wrap(errors.ErrInvalidCSV, err.Error())
	}
	if len(records) == 0 {
		return nil, errors.Wrap(errors.ErrInvalidCSV, "missing header")
	}
	for i, want := range Header.Fields() {
		if records[0][i] != want {
			return nil, errors.Wrapf(errors.ErrInvalidCSV, "unexpected column %q", records[0][i])
		}
	}

	rows := make([]Row, 0, len(records)-1)
	for _, rec := range records[1:] {
		rows = append(rows, Row{Time: rec[0], Text: rec[1], Duration: rec[2], Productivity: rec[3]})
	}
	return rows, nil
}

// Load builds a journal from exported rows.
func Load(rows []Row) (*Journal, error) {
	j := New()
	for n, r := range rows {
		e, err := r.Entry()
		if err != nil {
			return nil, errors.Wrapf(err, "row %d", n+1)
		}
		if _, err := j.Fill(e.Index, e.Text, e.Level); err != nil {
			return nil, err
		}
	}
	return j, nil
}

// Filename returns the export filename for date, using its UTC calendar day.
func Filename(date time.Time) string {
	return FilenameWithPrefix(FilenamePrefix, date)
}

// FilenameWithPrefix is Filename with a caller-chosen prefix.
func FilenameWithPrefix(prefix string, date time.Time) string {
	return prefix + date.UTC().Format("2006-01-02") + ".csv"
}
