package model

import "strings"

// Setting names accepted by Config.Set.
const (
	SettingExportDir = "export_dir"
	SettingFormat    = "format"
)

// Config holds user preferences (singleton).
type Config struct {
	Key     string `json:"key"`
	UserKey string `json:"user_key"`
	// ExportDir is where export files are written; empty means the working directory.
	ExportDir string `json:"export_dir,omitempty"`
	// Format is the default output format (cli, json, plain); empty means cli.
	Format string `json:"format,omitempty"`
}

// SetKey sets the database key for this config.
func (c *Config) SetKey(key string) {
	c.Key = key
}

// GetKey returns the database key for this config.
func (c *Config) GetKey() string {
	return c.Key
}

// Set updates a setting by name. It reports false for unknown names or values.
func (c *Config) Set(name, value string) bool {
	switch strings.ToLower(name) {
	case SettingExportDir:
		c.ExportDir = strings.TrimSpace(value)
	case SettingFormat:
		switch value {
		case "", "cli", "json", "plain":
			c.Format = value
		default:
			return false
		}
	default:
		return false
	}
	return true
}

// Settings returns the user-editable settings in display order.
func (c *Config) Settings() [][2]string {
	return [][2]string{
		{SettingExportDir, c.ExportDir},
		{SettingFormat, c.Format},
	}
}

// NewConfig creates a new config with the given user key.
func NewConfig(userKey string) *Config {
	return &Config{
		Key:     KeyConfig,
		UserKey: userKey,
	}
}
