// Package config provides centralized configuration for daygrid runtime values.
package config

import (
	"os"
	"strconv"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/manav03panchal/daygrid/internal/validate"
)

// RuntimeConfig holds runtime configuration values that are not user
// preferences. Preferences live in the database (model.Config).
type RuntimeConfig struct {
	// Interactive session configuration
	Session SessionConfig

	// Export file configuration
	Export ExportConfig

	// Storage configuration
	Storage StorageConfig
}

// SessionConfig holds interactive session configuration.
type SessionConfig struct {
	// NowRefreshInterval is how often the session re-checks the current slot.
	// Default: 60s
	NowRefreshInterval time.Duration

	// ScrollMargin is how many rows stay visible above and below the cursor.
	// Default: 3
	ScrollMargin int

	// FollowSchedule is a cron expression for re-checking the current slot,
	// e.g. "*/5 * * * *" to move exactly on slot boundaries. It replaces
	// NowRefreshInterval when set.
	// Default: ""
	FollowSchedule string
}

// ExportConfig holds export file configuration.
type ExportConfig struct {
	// Dir is the directory export files are written to. A directory set with
	// `daygrid config set export_dir` takes precedence over the default.
	// Default: "" (current directory)
	Dir string

	// FilenamePrefix starts every export filename.
	// Default: "journal_export_"
	FilenamePrefix string
}

// StorageConfig holds storage-related configuration.
type StorageConfig struct {
	// DBPath overrides the database directory. ":memory:" opens an in-memory database.
	// Default: "" (XDG data home)
	DBPath string

	// MinFreeSpace is the minimum free space required for write operations.
	// Default: 10MB (10 * 1024 * 1024 bytes)
	MinFreeSpace uint64

	// MinFreeSpaceWarning is the threshold for warning about low disk space.
	// Default: 50MB (50 * 1024 * 1024 bytes)
	MinFreeSpaceWarning uint64
}

// InMemoryDB is the DBPath value that selects an in-memory database.
const InMemoryDB = ":memory:"

// DefaultRuntimeConfig returns the default runtime configuration.
func DefaultRuntimeConfig() *RuntimeConfig {
	return &RuntimeConfig{
		Session: SessionConfig{
			NowRefreshInterval: 60 * time.Second,
			ScrollMargin:       3,
		},
		Export: ExportConfig{
			Dir:            "",
			FilenamePrefix: "journal_export_",
		},
		Storage: StorageConfig{
			DBPath:              "",
			MinFreeSpace:        10 * 1024 * 1024, // 10MB
			MinFreeSpaceWarning: 50 * 1024 * 1024, // 50MB
		},
	}
}

// Global holds the global runtime configuration instance.
// It is initialized with defaults and can be overridden via environment variables.
var Global = initGlobal()

// initGlobal initializes the global config with defaults and environment overrides.
func initGlobal() *RuntimeConfig {
	cfg := DefaultRuntimeConfig()
	cfg.loadFromEnv()
	return cfg
}

// loadFromEnv loads configuration overrides from environment variables.
func (c *RuntimeConfig) loadFromEnv() {
	// Session configuration
	if v := os.Getenv("DAYGRID_NOW_REFRESH_INTERVAL"); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			c.Session.NowRefreshInterval = d
		}
	}
	if v := os.Getenv("DAYGRID_SCROLL_MARGIN"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			c.Session.ScrollMargin = n
		}
	}
	if v := os.Getenv("DAYGRID_FOLLOW_SCHEDULE"); v != "" {
		if _, err := cron.ParseStandard(v); err == nil {
			c.Session.FollowSchedule = v
		}
	}

	// Export configuration
	if v := os.Getenv("DAYGRID_EXPORT_DIR"); v != "" {
		c.Export.Dir = v
	}
	if v := validate.SafeFilename(os.Getenv("DAYGRID_EXPORT_PREFIX")); v != "" {
		c.Export.FilenamePrefix = v
	}

	// Storage configuration
	if v := os.Getenv("DAYGRID_DATABASE"); v != "" {
		c.Storage.DBPath = v
	}
	if v := os.Getenv("DAYGRID_MIN_FREE_SPACE"); v != "" {
		if n, err := strconv.ParseUint(v, 10, 64); err == nil {
			c.Storage.MinFreeSpace = n
		}
	}
	if v := os.Getenv("DAYGRID_MIN_FREE_SPACE_WARNING"); v != "" {
		if n, err := strconv.ParseUint(v, 10, 64); err == nil {
			c.Storage.MinFreeSpaceWarning = n
		}
	}
}

// Reset resets the configuration to defaults.
// This is primarily useful for testing.
func (c *RuntimeConfig) Reset() {
	defaults := DefaultRuntimeConfig()
	*c = *defaults
}
