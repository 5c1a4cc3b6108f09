package media

import (
	"errors"
	"fmt"
)

// PathAccessError reports a stat/open/create failure on an input or target
// path. Err is the underlying OS error.
type PathAccessError struct {
	Op   string
	Path string
	Err  error
}

func (e *PathAccessError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *PathAccessError) Unwrap() error { return e.Err }

// IsPathAccess reports whether err is (or wraps) a *PathAccessError.
func IsPathAccess(err error) bool {
	var pe *PathAccessError
	return errors.As(err, &pe)
}
