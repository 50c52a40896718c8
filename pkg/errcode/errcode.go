package errcode

import (
	"github.com/gnames/gn"
)

const (
	UnknownError gn.ErrorCode = iota

	// File System errors
	CreateDirError
	ReadFileError
	WriteFileError

	// Logging errors
	CreateLogFileError

	// Settings document errors
	SettingsFileCreatedError
	SettingsDecodeError

	// Validation errors
	MalformedConnStrError
	MissingFilePathError
	MissingTemplatesDirError
	NoBasesError
	NegativeBackupsCountError
)
