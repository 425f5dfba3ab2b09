package config

import (
	"testing"
	"time"
)

func TestDefaultRuntimeConfig(t *testing.T) {
	cfg := DefaultRuntimeConfig()

	// Test session defaults
	if cfg.Session.NowRefreshInterval != 60*time.Second {
		t.Errorf("expected Session.NowRefreshInterval = 60s, got %v", cfg.Session.NowRefreshInterval)
	}
	if cfg.Session.ScrollMargin != 3 {
		t.Errorf("expected Session.ScrollMargin = 3, got %d", cfg.Session.ScrollMargin)
	}

	// Test export defaults
	if cfg.Export.Dir != "" {
		t.Errorf("expected Export.Dir to be empty, got %q", cfg.Export.Dir)
	}
	if cfg.Export.FilenamePrefix != "journal_export_" {
		t.Errorf("expected Export.FilenamePrefix = journal_export_, got %q", cfg.Export.FilenamePrefix)
	}

	// Test storage defaults
	if cfg.Storage.DBPath != "" {
		t.Errorf("expected Storage.DBPath to be empty, got %q", cfg.Storage.DBPath)
	}
	if cfg.Storage.MinFreeSpace != 10*1024*1024 {
		t.Errorf("expected Storage.MinFreeSpace = 10MB, got %d", cfg.Storage.MinFreeSpace)
	}
	if cfg.Storage.MinFreeSpaceWarning != 50*1024*1024 {
		t.Errorf("expected Storage.MinFreeSpaceWarning = 50MB, got %d", cfg.Storage.MinFreeSpaceWarning)
	}
}

func TestGlobalConfigExists(t *testing.T) {
	if Global == nil {
		t.Fatal("Global config should not be nil")
	}
}

func TestConfigReset(t *testing.T) {
	// Modify global config
	Global.Session.NowRefreshInterval = 1 * time.Second

	// Reset
	Global.Reset()

	// Verify it's back to defaults
	if Global.Session.NowRefreshInterval != 60*time.Second {
		t.Errorf("expected Session.NowRefreshInterval = 60s after reset, got %v", Global.Session.NowRefreshInterval)
	}
}

func TestConfigLoadFromEnv(t *testing.T) {
	t.Setenv("DAYGRID_NOW_REFRESH_INTERVAL", "30s")
	t.Setenv("DAYGRID_SCROLL_MARGIN", "5")
	t.Setenv("DAYGRID_EXPORT_DIR", "/tmp/exports")
	t.Setenv("DAYGRID_EXPORT_PREFIX", "day_")
	t.Setenv("DAYGRID_DATABASE", InMemoryDB)
	t.Setenv("DAYGRID_MIN_FREE_SPACE", "1024")
	t.Setenv("DAYGRID_FOLLOW_SCHEDULE", "*/5 * * * *")

	// Create new config with env overrides
	cfg := DefaultRuntimeConfig()
	cfg.loadFromEnv()

	// Verify env overrides
	if cfg.Session.NowRefreshInterval != 30*time.Second {
		t.Errorf("expected Session.NowRefreshInterval = 30s from env, got %v", cfg.Session.NowRefreshInterval)
	}
	if cfg.Session.ScrollMargin != 5 {
		t.Errorf("expected Session.ScrollMargin = 5 from env, got %d", cfg.Session.ScrollMargin)
	}
	if cfg.Session.FollowSchedule != "*/5 * * * *" {
		t.Errorf("expected Session.FollowSchedule = */5 * * * * from env, got %q", cfg.Session.FollowSchedule)
	}
	if cfg.Export.Dir != "/tmp/exports" {
		t.Errorf("expected Export.Dir = /tmp/exports from env, got %q", cfg.Export.Dir)
	}
	if cfg.Export.FilenamePrefix != "day_" {
		t.Errorf("expected Export.FilenamePrefix = day_ from env, got %q", cfg.Export.FilenamePrefix)
	}
	if cfg.Storage.DBPath != InMemoryDB {
		t.Errorf("expected Storage.DBPath = %s from env, got %q", InMemoryDB, cfg.Storage.DBPath)
	}
	if cfg.Storage.MinFreeSpace != 1024 {
		t.Errorf("expected Storage.MinFreeSpace = 1024 from env, got %d", cfg.Storage.MinFreeSpace)
	}
}

func TestConfigLoadFromEnvInvalidValues(t *testing.T) {
	t.Setenv("DAYGRID_NOW_REFRESH_INTERVAL", "invalid")
	t.Setenv("DAYGRID_SCROLL_MARGIN", "not-a-number")
	t.Setenv("DAYGRID_MIN_FREE_SPACE", "-1")
	t.Setenv("DAYGRID_FOLLOW_SCHEDULE", "every now and then")
	t.Setenv("DAYGRID_EXPORT_PREFIX", "...")

	// Create new config with invalid env - should keep defaults
	cfg := DefaultRuntimeConfig()
	cfg.loadFromEnv()

	// Verify defaults are kept when env values are invalid
	if cfg.Session.NowRefreshInterval != 60*time.Second {
		t.Errorf("expected Session.NowRefreshInterval = 60s (default), got %v", cfg.Session.NowRefreshInterval)
	}
	if cfg.Session.ScrollMargin != 3 {
		t.Errorf("expected Session.ScrollMargin = 3 (default), got %d", cfg.Session.ScrollMargin)
	}
	if cfg.Storage.MinFreeSpace != 10*1024*1024 {
		t.Errorf("expected Storage.MinFreeSpace = 10MB (default), got %d", cfg.Storage.MinFreeSpace)
	}
	if cfg.Session.FollowSchedule != "" {
		t.Errorf("expected Session.FollowSchedule to stay empty, got %q", cfg.Session.FollowSchedule)
	}
	if cfg.Export.FilenamePrefix != "journal_export_" {
		t.Errorf("expected Export.FilenamePrefix = journal_export_ (default), got %q", cfg.Export.FilenamePrefix)
	}
}

func TestConfigLoadFromEnvSanitizesPrefix(t *testing.T) {
	t.Setenv("DAYGRID_EXPORT_PREFIX", "work/day_")

	cfg := DefaultRuntimeConfig()
	cfg.loadFromEnv()

	if cfg.Export.FilenamePrefix != "work_day_" {
		t.Errorf("expected Export.FilenamePrefix = work_day_, got %q", cfg.Export.FilenamePrefix)
	}
}

func TestConfigLoadFromEnvRejectsZeroInterval(t *testing.T) {
	t.Setenv("DAYGRID_NOW_REFRESH_INTERVAL", "0s")

	cfg := DefaultRuntimeConfig()
	cfg.loadFromEnv()

	if cfg.Session.NowRefreshInterval != 60*time.Second {
		t.Errorf("expected Session.NowRefreshInterval = 60s (default), got %v", cfg.Session.NowRefreshInterval)
	}
}
