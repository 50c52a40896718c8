package iosettings

import (
	"log/slog"

	"github.com/gnames/gnuuid"
	"github.com/gnames/ibupdater/internal/iofs"
	"github.com/gnames/ibupdater/pkg/connstr"
	"github.com/gnames/ibupdater/pkg/settings"
)

// Validate checks settings and returns a copy with derived fields of
// information bases populated. It stops at the first problem, checks go in
// this order:
//
//  1. every information base: backups count, connection string, directory
//     of a file base;
//  2. templates directory exists;
//  3. there is at least one information base;
//  4. backups directory, if given, exists or can be created.
func (s *iosettings) Validate(
	stg *settings.Settings,
) (*settings.Settings, error) {
	res := stg.Clone()

	for i := range res.Bases {
		if err := s.deriveBase(&res.Bases[i]); err != nil {
			return nil, err
		}
	}

	if !iofs.DirExists(s.fs, res.TemplatesDirectory) {
		return nil, MissingTemplatesDirError(res.TemplatesDirectory)
	}

	if len(res.Bases) == 0 {
		return nil, NoBasesError(s.cfg.SettingsPath())
	}

	if res.BackupsDirectory != "" {
		if err := iofs.TouchDir(s.fs, res.BackupsDirectory); err != nil {
			return nil, err
		}
	}

	for _, v := range res.Bases {
		slog.Debug("Information base is valid",
			"description", v.Description,
			"mode", v.Mode.String(),
			"path", v.FilePath,
			"id", v.ID,
		)
	}
	return res, nil
}

func (s *iosettings) deriveBase(b *settings.InfoBase) error {
	if b.BackupsCount < 0 {
		return NegativeBackupsCountError(b.BackupsCount, b.Description)
	}

	info, err := connstr.Parse(b.ConnectionString)
	if err != nil {
		return err
	}

	if info.Mode == connstr.File && !iofs.DirExists(s.fs, info.Path) {
		return MissingFilePathError(info.Path, b.Description)
	}

	b.Mode = info.Mode
	b.FilePath = info.Path
	b.ID = gnuuid.New(b.ConnectionString).String()
	return nil
}
