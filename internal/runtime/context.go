// Package runtime provides application runtime context for daygrid.
package runtime

import (
	"context"

	"github.com/manav03panchal/daygrid/internal/config"
	"github.com/manav03panchal/daygrid/internal/logging"
	"github.com/manav03panchal/daygrid/internal/model"
	"github.com/manav03panchal/daygrid/internal/output"
	"github.com/manav03panchal/daygrid/internal/storage"
)

// Context holds the application runtime context.
type Context struct {
	DB        *storage.DB
	Formatter *output.Formatter

	// Repositories
	ConfigRepo *storage.ConfigRepo
	ExportRepo *storage.ExportRepo

	// Config is the persisted user preferences, loaded once per invocation.
	Config *model.Config

	// Ctx carries the request ID for this invocation.
	Ctx context.Context
	Log *logging.ContextLogger

	// Debug mode
	Debug bool
}

// Options configures the runtime context.
type Options struct {
	// DBPath is the database directory; config.InMemoryDB selects in-memory mode.
	DBPath   string
	InMemory bool
	// Format overrides the saved format preference when set.
	Format    output.Format
	ColorMode output.ColorMode
	Debug     bool
}

// DefaultOptions returns default runtime options.
func DefaultOptions() Options {
	dbPath := config.Global.Storage.DBPath
	if dbPath == "" {
		dbPath = storage.DefaultPath()
	}
	return Options{
		DBPath:    dbPath,
		InMemory:  false,
		Format:    "",
		ColorMode: output.ColorAuto,
		Debug:     false,
	}
}

// New creates a new runtime context.
func New(opts Options) (*Context, error) {
	if opts.DBPath == config.InMemoryDB {
		opts.InMemory = true
	}

	reqCtx := logging.NewRequestContext()
	log := logging.FromContext(reqCtx)

	// Open database
	db, err := storage.Open(storage.Options{
		Path:     opts.DBPath,
		InMemory: opts.InMemory,
	})
	if err != nil {
		return nil, err
	}
	log.Debug("database opened", logging.KeyPath, db.Path())

	// Create repositories
	configRepo := storage.NewConfigRepo(db)
	exportRepo := storage.NewExportRepo(db)

	cfg, err := configRepo.Get()
	if err != nil {
		db.Close()
		return nil, err
	}

	// Create formatter
	formatter := output.NewFormatter()
	formatter.Format = resolveFormat(opts.Format, cfg.Format)
	formatter.ColorMode = opts.ColorMode
	if formatter.ColorMode == "" {
		formatter.ColorMode = output.ColorAuto
	}

	return &Context{
		DB:         db,
		Formatter:  formatter,
		ConfigRepo: configRepo,
		ExportRepo: exportRepo,
		Config:     cfg,
		Ctx:        reqCtx,
		Log:        log,
		Debug:      opts.Debug,
	}, nil
}

// resolveFormat prefers the flag, then the saved preference, then cli.
func resolveFormat(flag output.Format, saved string) output.Format {
	if flag != "" {
		return flag
	}
	switch output.Format(saved) {
	case output.FormatJSON, output.FormatPlain:
		return output.Format(saved)
	default:
		return output.FormatCLI
	}
}

// Close closes the runtime context.
func (c *Context) Close() error {
	if c.DB != nil {
		return c.DB.Close()
	}
	return nil
}

// CLIFormatter returns a CLI formatter.
func (c *Context) CLIFormatter() *output.CLIFormatter {
	return output.NewCLIFormatter(c.Formatter)
}

// JSONFormatter returns a JSON formatter.
func (c *Context) JSONFormatter() *output.JSONFormatter {
	return output.NewJSONFormatter(c.Formatter)
}

// IsJSON returns true if output format is JSON.
func (c *Context) IsJSON() bool {
	return c.Formatter.Format == output.FormatJSON
}
