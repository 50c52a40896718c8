package iosettings

import (
	"errors"
	"fmt"
	"runtime"

	"github.com/gnames/gn"
	"github.com/gnames/ibupdater/pkg/errcode"
)

// SettingsFileCreatedError signals the first run: settings file did not
// exist and a template was written in its place. It is an expected
// condition, the user has to fill the template and start again.
func SettingsFileCreatedError(path string) error {
	msg := `Settings file is created at <em>%s</em>

Fill the settings and run the updater again.
Создан файл настроек. Заполните настройки и запустите заново!`
	vars := []any{path}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.SettingsFileCreatedError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: settings template written to %s", fn.Name(), path),
	}
}

// IsSettingsFileCreated returns true if err reports the first run.
func IsSettingsFileCreated(err error) bool {
	var gnErr *gn.Error
	if !errors.As(err, &gnErr) {
		return false
	}
	return gnErr.Code == errcode.SettingsFileCreatedError
}

// SettingsDecodeError creates an error for a settings file that exists but
// cannot be parsed.
func SettingsDecodeError(path string, err error) error {
	msg := `Cannot parse settings file <em>%s</em>

<em>Possible causes:</em>
  - Invalid XML
  - Text instead of a number in <em>BackupsCount</em>
  - Text other than true/false in a flag

<em>How to fix:</em>
  1. Check XML syntax
  2. Remove the file to get a fresh template: <em>rm %s</em>`
	vars := []any{path, path}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.SettingsDecodeError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: cannot parse %s: %w", fn.Name(), path, err),
	}
}

// MissingFilePathError is returned when a directory of a file information
// base does not exist.
func MissingFilePathError(path, description string) error {
	msg := "Directory of file information base does not exist: <em>%s</em> (%s)"
	vars := []any{path, description}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.MissingFilePathError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: directory %q of %q does not exist",
			fn.Name(), path, description),
	}
}

// MissingTemplatesDirError is returned when the update templates directory
// does not exist.
func MissingTemplatesDirError(dir string) error {
	msg := "Updates templates directory does not exist: <em>%s</em>"
	vars := []any{dir}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.MissingTemplatesDirError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: templates directory %q does not exist",
			fn.Name(), dir),
	}
}

// NoBasesError is returned when the settings contain no information bases.
func NoBasesError(path string) error {
	msg := `No information bases to update

Add <em>Base1C</em> entries to <em>Bases1C</em> in <em>%s</em>`
	vars := []any{path}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.NoBasesError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: empty list of information bases", fn.Name()),
	}
}

// NegativeBackupsCountError is returned for an information base that
// requests a negative number of backups.
func NegativeBackupsCountError(count int, description string) error {
	msg := "Number of backups cannot be negative: <em>%d</em> (%s)"
	vars := []any{count, description}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.NegativeBackupsCountError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: negative backups count %d for %q",
			fn.Name(), count, description),
	}
}
