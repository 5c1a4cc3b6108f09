package pipeline

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/backmassage/avcp/internal/media"
)

// Media file extensions picked up when walking a directory (lowercase,
// with leading dot). Explicit file arguments are never filtered.
var mediaExtensions = map[string]bool{
	".mkv":  true,
	".mka":  true,
	".mp4":  true,
	".m4v":  true,
	".m4a":  true,
	".avi":  true,
	".mov":  true,
	".wmv":  true,
	".flv":  true,
	".webm": true,
	".ts":   true,
	".m2ts": true,
	".mpg":  true,
	".mpeg": true,
	".vob":  true,
	".ogv":  true,
	".mp3":  true,
	".aac":  true,
	".ac3":  true,
	".eac3": true,
	".dts":  true,
	".thd":  true,
}

// ExpandInputs returns the paths to classify, in argument order. Without
// recursive every argument is kept as given, directories included, so that
// each one produces a report line. With recursive a directory argument is
// replaced by the media files found beneath it.
//
// Directories that cannot be read stay in the list at their walk position
// and are returned in unreadable with a *media.PathAccessError, so one bad
// directory never stops the rest of the expansion.
func ExpandInputs(args []string, recursive bool) (paths []string, unreadable map[string]error) {
	paths = make([]string, 0, len(args))
	for _, arg := range args {
		if !recursive {
			paths = append(paths, arg)
			continue
		}
		fi, err := os.Stat(arg)
		if err != nil || !fi.IsDir() {
			paths = append(paths, arg)
			continue
		}
		files, bad := Discover(arg)
		paths = append(paths, files...)
		for p, err := range bad {
			if unreadable == nil {
				unreadable = make(map[string]error)
			}
			unreadable[p] = err
		}
	}
	return paths, unreadable
}

// Discover walks dir, collects files with media extensions, prunes hidden
// directories, and returns the paths sorted lexicographically for a
// deterministic processing order. Entries the walk cannot read, dir
// itself included, are listed in files and reported in unreadable.
func Discover(dir string) (files []string, unreadable map[string]error) {
	_ = filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if unreadable == nil {
				unreadable = make(map[string]error)
			}
			if _, seen := unreadable[path]; !seen {
				files = append(files, path)
			}
			unreadable[path] = &media.PathAccessError{Op: "open", Path: path, Err: unwrapPathError(err)}
			if d == nil || d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			if path != dir && strings.HasPrefix(d.Name(), ".") {
				return filepath.SkipDir
			}
			return nil
		}
		if !d.Type().IsRegular() {
			return nil
		}
		if mediaExtensions[strings.ToLower(filepath.Ext(path))] {
			files = append(files, path)
		}
		return nil
	})
	sort.Strings(files)
	return files, unreadable
}

func unwrapPathError(err error) error {
	var pathErr *fs.PathError
	if errors.As(err, &pathErr) {
		return pathErr.Err
	}
	return err
}
