package config

import (
	"path/filepath"
)

var (
	// AppName is used in env variables and messages.
	AppName = "ibupdater"

	// SettingsFileName is the name of the settings document.
	SettingsFileName = "settings.xml"

	// LogFileName is the name of the updater log file. It keeps the name
	// used by the previous generation of the updater so that existing
	// collaborators find the log where they expect it.
	LogFileName = "1CSimpleUpdater.log"
)

// SettingsFilePath returns the full path to settings.xml.
// Returns <workDir>/settings.xml.
func SettingsFilePath(workDir string) string {
	return filepath.Join(workDir, SettingsFileName)
}

// LogFilePath returns the full path to the updater log file.
// Returns <workDir>/1CSimpleUpdater.log.
func LogFilePath(workDir string) string {
	return filepath.Join(workDir, LogFileName)
}
