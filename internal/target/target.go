// Package target validates the destination of a cp/ln run before any input
// is touched.
package target

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"golang.org/x/sys/unix"

	"github.com/backmassage/avcp/internal/media"
)

// DirMode is the permission for directories created on the way to the
// target: read/write/search for owner and group.
const DirMode fs.FileMode = 0o770

// Target is the result of a successful Prepare.
type Target struct {
	Path    string
	Stat    os.FileInfo // Nil when the target does not exist yet.
	Created []string    // Directories created, outermost first.
}

// Exists reports whether the target itself was already present.
func (t *Target) Exists() bool { return t.Stat != nil }

// access is unix.Access; replaced in tests that run as root.
var access = unix.Access

// Prepare checks that path can be written. An existing path must be
// writable by the caller. A missing path has its parent directories
// created, walking down from the first existing ancestor; the target
// itself is not created. Every failure is a *media.PathAccessError.
func Prepare(path string) (*Target, error) {
	t := &Target{Path: path}

	fi, err := os.Stat(path)
	switch {
	case err == nil:
		if err := access(path, unix.W_OK); err != nil {
			return nil, &media.PathAccessError{Op: "access", Path: path, Err: err}
		}
		t.Stat = fi
		return t, nil
	case !errors.Is(err, fs.ErrNotExist):
		return nil, &media.PathAccessError{Op: "stat", Path: path, Err: unwrap(err)}
	}

	created, err := MkdirParents(filepath.Dir(path))
	t.Created = created
	if err != nil {
		return nil, err
	}
	return t, nil
}

// MkdirParents creates dir and any missing ancestors with DirMode and
// returns the directories it created. It finds the deepest existing
// ancestor first, then creates the missing components in order.
func MkdirParents(dir string) ([]string, error) {
	dir = filepath.Clean(dir)

	var missing []string
	for p := dir; ; p = filepath.Dir(p) {
		fi, err := os.Stat(p)
		if err == nil {
			if !fi.IsDir() {
				return nil, &media.PathAccessError{Op: "mkdir", Path: p, Err: unix.ENOTDIR}
			}
			break
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, &media.PathAccessError{Op: "stat", Path: p, Err: unwrap(err)}
		}
		missing = append(missing, p)
		if parent := filepath.Dir(p); parent == p {
			break
		}
	}

	created := make([]string, 0, len(missing))
	for i := len(missing) - 1; i >= 0; i-- {
		p := missing[i]
		if err := os.Mkdir(p, DirMode); err != nil && !errors.Is(err, fs.ErrExist) {
			return created, &media.PathAccessError{Op: "mkdir", Path: p, Err: unwrap(err)}
		}
		created = append(created, p)
	}
	return created, nil
}

func unwrap(err error) error {
	var pathErr *fs.PathError
	if errors.As(err, &pathErr) {
		return pathErr.Err
	}
	return err
}
