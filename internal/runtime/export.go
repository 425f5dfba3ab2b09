package runtime

import (
	"bytes"
	"path/filepath"
	"time"

	"github.com/manav03panchal/daygrid/internal/config"
	"github.com/manav03panchal/daygrid/internal/journal"
	"github.com/manav03panchal/daygrid/internal/logging"
	"github.com/manav03panchal/daygrid/internal/model"
	"github.com/manav03panchal/daygrid/internal/storage"
)

// ExportDir returns where export files are written: the saved export_dir
// setting, then DAYGRID_EXPORT_DIR, then the working directory.
func (c *Context) ExportDir() string {
	if c.Config != nil && c.Config.ExportDir != "" {
		return c.Config.ExportDir
	}
	if config.Global.Export.Dir != "" {
		return config.Global.Export.Dir
	}
	return "."
}

// ExportPath returns the default export file path for an export made at now.
func (c *Context) ExportPath(now time.Time) string {
	return filepath.Join(c.ExportDir(), journal.FilenameWithPrefix(config.Global.Export.FilenamePrefix, now))
}

// ExportResult is a written export plus problems that did not stop it.
type ExportResult struct {
	*model.ExportRecord
	Warnings []string
}

// WriteExport writes the journal's CSV export to path and records it in the
// export history. A journal with no filled slot returns ErrNothingToExport
// and writes nothing. Low disk space and failing to record history are
// returned as warnings.
func (c *Context) WriteExport(j *journal.Journal, path string, now time.Time) (*ExportResult, error) {
	start := time.Now()

	rows, err := j.Export()
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := journal.WriteCSV(&buf, rows); err != nil {
		return nil, err
	}

	dir := filepath.Dir(path)
	if dir != "." {
		if err := storage.EnsureDirectory(dir); err != nil {
			return nil, err
		}
	}
	var warnings []string
	if warning := storage.CheckDiskSpaceWarning(dir); warning != "" {
		warnings = append(warnings, warning)
	}
	if err := storage.SafeWrite(path, buf.Bytes(), 0644); err != nil {
		return nil, err
	}

	if abs, err := filepath.Abs(path); err == nil {
		path = abs
	}

	owner := ""
	if c.Config != nil {
		owner = c.Config.UserKey
	}
	rec := model.NewExportRecord(owner, path, now, len(rows), j.Summary().TotalScore)
	if err := c.ExportRepo.Create(rec); err != nil {
		c.Log.Debug("failed to record export", logging.KeyPath, path, logging.KeyError, err)
		warnings = append(warnings, "Export not added to history: "+err.Error())
	}

	logging.LogOperation("export", start, logging.KeyPath, path, logging.KeyCount, len(rows))
	return &ExportResult{ExportRecord: rec, Warnings: warnings}, nil
}
