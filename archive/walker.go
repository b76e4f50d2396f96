// Package archive walks stylesheets packed into zip archives.
package archive

import (
	"archive/zip"
	"fmt"
	"path"
	"slices"
	"strings"
)

// WalkFunc is called for every matching file. The archive argument is the
// path passed to Walk. Returned error stops processing.
type WalkFunc func(archive string, file *zip.File) error

// MatchFunc decides whether entry with slash separated name is visited.
type MatchFunc func(name string) bool

// IsArchive reports whether file at name is a readable zip archive.
func IsArchive(name string) bool {
	r, err := zip.OpenReader(name)
	if err != nil {
		return false
	}
	r.Close()
	return true
}

// Walk visits regular files in the archive in stored order, directories are
// never passed to match. Entries with absolute names or ".." components make
// the whole archive invalid.
func Walk(archive string, match MatchFunc, walkFn WalkFunc) error {
	r, err := zip.OpenReader(archive)
	if err != nil {
		return err
	}
	defer r.Close()

	for _, f := range r.File {
		name := f.Name
		if !isSafePath(name) {
			return fmt.Errorf("zip entry %q: unsafe path (absolute or contains path traversal)", name)
		}
		if f.FileInfo().IsDir() || (match != nil && !match(name)) {
			continue
		}
		if err := walkFn(archive, f); err != nil {
			return err
		}
	}
	return nil
}

func isSafePath(name string) bool {
	if path.IsAbs(name) || strings.HasPrefix(name, `\`) {
		return false
	}
	return !slices.Contains(strings.Split(name, "/"), "..")
}
