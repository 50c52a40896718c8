// Package iosettings loads and validates the settings document.
// This is an impure package, all file system access goes through afero.Fs.
package iosettings

import (
	"log/slog"

	"github.com/gnames/ibupdater/internal/iofs"
	"github.com/gnames/ibupdater/pkg/config"
	"github.com/gnames/ibupdater/pkg/settings"
	"github.com/spf13/afero"
)

type iosettings struct {
	cfg *config.Config
	fs  afero.Fs
}

// New returns settings.Manager working with the real file system.
func New(cfg *config.Config) settings.Manager {
	return NewWithFs(cfg, afero.NewOsFs())
}

// NewWithFs returns settings.Manager working with the given file system.
func NewWithFs(cfg *config.Config, fs afero.Fs) settings.Manager {
	res := iosettings{cfg: cfg, fs: fs}
	return &res
}

// Load reads the settings document. If the document does not exist, it
// writes a template and returns SettingsFileCreatedError.
func (s *iosettings) Load() (*settings.Settings, error) {
	path := s.cfg.SettingsPath()

	exists, err := iofs.FileExists(s.fs, path)
	if err != nil {
		return nil, iofs.ReadFileError(path, err)
	}
	if !exists {
		if err = s.writeTemplate(path); err != nil {
			return nil, err
		}
		slog.Warn("Settings template created", "path", path)
		return nil, SettingsFileCreatedError(path)
	}

	data, err := iofs.ReadFile(s.fs, path)
	if err != nil {
		return nil, err
	}

	res, err := settings.Decode(data)
	if err != nil {
		return nil, SettingsDecodeError(path, err)
	}

	res.LogFilePath = s.cfg.LogPath()
	if res.OverwriteLogFile {
		s.removeLog(res.LogFilePath)
	}

	slog.Info("Settings loaded",
		"path", path,
		"bases", len(res.Bases),
	)
	return res, nil
}

func (s *iosettings) writeTemplate(path string) error {
	data, err := settings.Encode(settings.Template())
	if err != nil {
		return iofs.WriteFileError(path, err)
	}
	return iofs.WriteFile(s.fs, path, data)
}

// removeLog deletes the previous log file. Failure is not fatal.
func (s *iosettings) removeLog(path string) {
	if err := iofs.RemoveFile(s.fs, path); err != nil {
		slog.Warn("Cannot remove old log file", "path", path, "error", err)
		return
	}
	slog.Debug("Old log file removed", "path", path)
}
