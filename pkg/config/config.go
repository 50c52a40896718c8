// Package config provides configuration management for ibupdater.
//
// This package has no I/O dependencies (no file operations, no network calls).
// Validation functions may write user-facing warnings via gn.Warn().
//
// # Configuration Sources
//
// Precedence (highest to lowest): CLI flags > env vars > defaults
//
// The settings document itself (settings.xml with information bases) is not
// part of Config. It is loaded by internal/iosettings, Config only tells
// where to find it.
//
// # Design Principles
//
// - Default config (from New()) is always valid - no validation needed
// - All mutations go through Option functions - the only way to modify Config
// - Invalid options are rejected with gn.Warn() - config remains in valid state
//
// # Environment Variables
//
// Use IBUPDATER_ prefix with underscores for nesting:
//
//	IBUPDATER_LOG_LEVEL=debug
//	IBUPDATER_LOG_FORMAT=json
//	IBUPDATER_LOG_DESTINATION=file
//	IBUPDATER_WORK_DIR=/srv/updater
//	IBUPDATER_SETTINGS_FILE=/srv/updater/settings.xml
package config

// Config represents the complete ibupdater configuration.
type Config struct {
	Log LogConfig `mapstructure:"log" yaml:"log"`

	// WorkDir is the directory where settings.xml and the updater log file
	// reside. It must be set by CLI during init, there is no default value
	// for it.
	WorkDir string `mapstructure:"work_dir" yaml:"work_dir"`

	// SettingsFile overrides the location of the settings document.
	// If empty, settings.xml inside WorkDir is used.
	SettingsFile string `mapstructure:"settings_file" yaml:"settings_file"`
}

// LogConfig provides typical settings for application logs.
type LogConfig struct {
	// Format can be 'json', 'text' or 'tint' (user-facing and colored).
	Format string `mapstructure:"format"      yaml:"format"`
	// Level of logging -- 'error', 'warn', 'info', 'debug'
	Level string `mapstructure:"level"       yaml:"level"`
	// Destination can be the updater log file, STDERR or STDOUT
	Destination string `mapstructure:"destination" yaml:"destination"`
}

// New creates a Config with sensible default values.
// The returned config is always valid and ready to use.
// Default values can be overridden using Option functions via Update().
func New() *Config {
	res := &Config{
		Log: LogConfig{
			Format:      "text",
			Level:       "info",
			Destination: "stderr",
		},
	}

	return res
}

// SettingsPath returns the path to the settings document.
func (c *Config) SettingsPath() string {
	if c.SettingsFile != "" {
		return c.SettingsFile
	}
	return SettingsFilePath(c.WorkDir)
}

// LogPath returns the path to the updater log file.
func (c *Config) LogPath() string {
	return LogFilePath(c.WorkDir)
}
