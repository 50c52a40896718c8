package connstr

import (
	"fmt"
	"runtime"

	"github.com/gnames/gn"
	"github.com/gnames/ibupdater/pkg/errcode"
)

// MalformedConnStrError is returned when a connection string mentions FILE,
// but there is no FILE=value pair to take the path from.
func MalformedConnStrError(connStr string) error {
	msg := `Cannot get information base directory from connection string
<em>%s</em>

Use <em>File="path\to\base";</em> for file information bases.`
	vars := []any{connStr}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.MalformedConnStrError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: no FILE=value pair in %q",
			fn.Name(), connStr),
	}
}
