// Package iofs provides file system helpers shared by impure packages.
// All functions work with afero.Fs, so callers can run against an in-memory
// file system in tests.
package iofs

import (
	"os"

	"github.com/spf13/afero"
)

// DirExists returns true if dir exists and is a directory.
// Any error during the check is treated as absence of the directory.
func DirExists(fs afero.Fs, dir string) bool {
	ok, err := afero.DirExists(fs, dir)
	return err == nil && ok
}

// FileExists returns true if path exists. Errors other than "not exist"
// are returned to the caller.
func FileExists(fs afero.Fs, path string) (bool, error) {
	_, err := fs.Stat(path)
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, err
}

// TouchDir creates dir with all its parents if it does not exist yet.
func TouchDir(fs afero.Fs, dir string) error {
	if DirExists(fs, dir) {
		return nil
	}

	if err := fs.MkdirAll(dir, 0755); err != nil {
		return CreateDirError(dir, err)
	}

	return nil
}

// WriteFile writes data to path, creating or truncating the file.
func WriteFile(fs afero.Fs, path string, data []byte) error {
	if err := afero.WriteFile(fs, path, data, 0644); err != nil {
		return WriteFileError(path, err)
	}
	return nil
}

// ReadFile reads the whole file.
func ReadFile(fs afero.Fs, path string) ([]byte, error) {
	res, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, ReadFileError(path, err)
	}
	return res, nil
}

// RemoveFile deletes path. A missing file is not an error.
func RemoveFile(fs afero.Fs, path string) error {
	err := fs.Remove(path)
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
