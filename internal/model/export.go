package model

import (
	"fmt"
	"time"
)

// ExportRecord describes one export file written to disk. It never holds
// journal content.
type ExportRecord struct {
	Key        string    `json:"key"`
	OwnerKey   string    `json:"owner_key"`
	Path       string    `json:"path"`
	Date       string    `json:"date"` // YYYY-MM-DD of the export
	ExportedAt time.Time `json:"exported_at"`
	Rows       int       `json:"rows"`
	TotalScore int       `json:"total_score"`
}

// SetKey sets the database key for this record.
func (e *ExportRecord) SetKey(key string) {
	e.Key = key
}

// GetKey returns the database key for this record.
func (e *ExportRecord) GetKey() string {
	return e.Key
}

// GenerateExportKey generates a database key for an export record.
func GenerateExportKey(uuid string) string {
	return fmt.Sprintf("%s:%s", PrefixExport, uuid)
}

// NewExportRecord creates a record for a file written at exportedAt.
func NewExportRecord(ownerKey, path string, exportedAt time.Time, rows, totalScore int) *ExportRecord {
	return &ExportRecord{
		OwnerKey:   ownerKey,
		Path:       path,
		Date:       exportedAt.UTC().Format("2006-01-02"),
		ExportedAt: exportedAt,
		Rows:       rows,
		TotalScore: totalScore,
	}
}
