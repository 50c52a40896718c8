package connstr_test

import (
	"errors"
	"testing"

	"github.com/gnames/gn"
	"github.com/gnames/ibupdater/pkg/connstr"
	"github.com/gnames/ibupdater/pkg/errcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		msg  string
		in   string
		mode connstr.Mode
		path string
	}{
		{
			msg:  "server",
			in:   `Srvr="x";Ref="y"`,
			mode: connstr.Server,
			path: "",
		},
		{
			msg:  "file with quotes",
			in:   `File="D:\DB\base1";`,
			mode: connstr.File,
			path: `D:\DB\base1`,
		},
		{
			msg:  "file lowercase key, no quotes",
			in:   `file=/srv/1c/base`,
			mode: connstr.File,
			path: "/srv/1c/base",
		},
		{
			msg:  "file pair is not first",
			in:   `Usr="admin";FILE="/srv/1c/base";Locale=ru`,
			mode: connstr.File,
			path: "/srv/1c/base",
		},
		{
			msg:  "first file pair wins",
			in:   `File="/a";File="/b"`,
			mode: connstr.File,
			path: "/a",
		},
		{
			msg:  "empty file path",
			in:   `File="";`,
			mode: connstr.File,
			path: "",
		},
		{
			msg:  "empty string is server",
			in:   "",
			mode: connstr.Server,
			path: "",
		},
	}

	for _, v := range tests {
		res, err := connstr.Parse(v.in)
		require.NoError(t, err, v.msg)
		assert.Equal(t, v.mode, res.Mode, v.msg)
		assert.Equal(t, v.path, res.Path, v.msg)
	}
}

// A segment is split on its first "=", the rest of it belongs to the path.
func TestParseEqualSignInPath(t *testing.T) {
	tests := []struct {
		msg  string
		in   string
		path string
	}{
		{"unquoted", `File=a=b;`, "a=b"},
		{"quoted windows path", `File="D:\1C\a=b";`, `D:\1C\a=b`},
		{"in the middle", `Srvr="x";File="/srv/x=y";Ref="z"`, "/srv/x=y"},
		{"several equal signs", `FILE="/srv/a=b=c"`, "/srv/a=b=c"},
	}

	for _, v := range tests {
		path, ok := connstr.FilePath(v.in)
		require.True(t, ok, v.msg)
		assert.Equal(t, v.path, path, v.msg)

		res, err := connstr.Parse(v.in)
		require.NoError(t, err, v.msg)
		assert.Equal(t, connstr.File, res.Mode, v.msg)
		assert.Equal(t, v.path, res.Path, v.msg)
	}
}

// Classification only looks for a FILE substring, extraction needs a
// well-formed pair. Mismatch between the two is reported as an error.
func TestParseMalformed(t *testing.T) {
	tests := []struct {
		msg string
		in  string
	}{
		{"file word in server name", `Srvr="fileserver";Ref="db"`},
		{"file key without value", `File;Ref=db`},
		{"space before key", ` File="/srv/base"`},
		{"profile key", `Profile="/srv/base"`},
	}

	for _, v := range tests {
		assert.Equal(t, connstr.File, connstr.Classify(v.in), v.msg)

		_, err := connstr.Parse(v.in)
		require.Error(t, err, v.msg)

		var gnErr *gn.Error
		require.True(t, errors.As(err, &gnErr), v.msg)
		assert.Equal(t, errcode.MalformedConnStrError, gnErr.Code, v.msg)
		require.Len(t, gnErr.Vars, 1)
		assert.Equal(t, v.in, gnErr.Vars[0], v.msg)
	}
}

func TestFilePath(t *testing.T) {
	path, ok := connstr.FilePath(`Srvr="x";Ref="y"`)
	assert.False(t, ok)
	assert.Empty(t, path)

	path, ok = connstr.FilePath(`fIlE="C:\Bases\Trade"`)
	assert.True(t, ok)
	assert.Equal(t, `C:\Bases\Trade`, path)
}

func TestModeString(t *testing.T) {
	assert.Equal(t, "server", connstr.Server.String())
	assert.Equal(t, "file", connstr.File.String())
	assert.Equal(t, "unknown", connstr.Mode(42).String())

	txt, err := connstr.File.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "file", string(txt))
}

func TestMalformedConnStrError(t *testing.T) {
	err := connstr.MalformedConnStrError(`Srvr="files"`)
	gnErr, ok := err.(*gn.Error)
	require.True(t, ok, "Error should be of type *gn.Error")

	assert.Equal(t, errcode.MalformedConnStrError, gnErr.Code)
	assert.Contains(t, gnErr.Msg, "%s")
	assert.Contains(t, gnErr.Err.Error(), "from")
	assert.Contains(t, gnErr.Err.Error(), `Srvr=\"files\"`)
}
