// Package connstr parses 1C connection strings (connector descriptors).
//
// A connection string is a semicolon-delimited list of key=value pairs, for
// example `Srvr="localhost";Ref="Accounting";` for a server information base
// or `File="D:\DB\base1";` for a file one.
//
// Classification and path extraction deliberately use different rules.
// A string is classified as file-based when it contains "FILE" anywhere
// (case-insensitive), while the path is taken only from a well-formed
// FILE=value pair. A string like `Srvr="fileserver";Ref="db"` is therefore
// classified as file-based and fails with MalformedConnStrError. Existing
// settings files rely on this behavior, so it is kept as is.
//
// The package does not touch the file system, checking that the path exists
// is up to the caller.
package connstr

import (
	"strings"
)

// Mode tells how an information base is reached.
type Mode int

const (
	// Server information base is accessed through a 1C cluster.
	Server Mode = iota
	// File information base resides in a directory on a file system.
	File
)

// String implements fmt.Stringer.
func (m Mode) String() string {
	switch m {
	case Server:
		return "server"
	case File:
		return "file"
	default:
		return "unknown"
	}
}

// MarshalText makes YAML and JSON output show mode names.
func (m Mode) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// Info is the result of parsing a connection string.
type Info struct {
	// Mode is Server or File.
	Mode Mode
	// Path is the directory of a File information base with quotes removed.
	// It is empty for Server mode, and can be empty for File mode if the
	// connection string has `File="";`.
	Path string
}

const fileKey = "FILE"

// Classify returns File if connection string mentions "FILE" in any
// position and letter case, Server otherwise.
func Classify(s string) Mode {
	if strings.Contains(strings.ToUpper(s), fileKey) {
		return File
	}
	return Server
}

// FilePath finds the first `FILE=value` segment and returns its value
// without double quotes. A segment is split on its first "=", so the value
// may contain "=" itself. Segments without "=" are skipped. The second
// return value is false if there is no such segment.
func FilePath(s string) (string, bool) {
	for _, seg := range strings.Split(s, ";") {
		key, val, ok := strings.Cut(seg, "=")
		if !ok {
			continue
		}
		if strings.ToUpper(key) != fileKey {
			continue
		}
		return strings.ReplaceAll(val, `"`, ""), true
	}
	return "", false
}

// Parse classifies a connection string and, for file information bases,
// extracts the path. It returns MalformedConnStrError if the string is
// classified as File but contains no FILE=value pair.
func Parse(s string) (Info, error) {
	if Classify(s) == Server {
		return Info{Mode: Server}, nil
	}

	path, ok := FilePath(s)
	if !ok {
		return Info{}, MalformedConnStrError(s)
	}
	return Info{Mode: File, Path: path}, nil
}
