package extract

import (
	"fmt"
	"io/fs"
	"path"
	"path/filepath"
	"slices"

	"github.com/bmatcuk/doublestar/v4"
)

// DefaultIncludes matches every stylesheet under the root.
var DefaultIncludes = []string{"**/*.css"}

// Matcher selects stylesheets by slash separated path relative to the
// scanned root. Patterns are doublestar globs.
type Matcher struct {
	includes []string
	excludes []string
}

// NewMatcher validates patterns, empty includes select every stylesheet.
func NewMatcher(includes, excludes []string) (*Matcher, error) {
	for _, pattern := range slices.Concat(includes, excludes) {
		if !doublestar.ValidatePattern(pattern) {
			return nil, fmt.Errorf("invalid glob pattern %q", pattern)
		}
	}
	if len(includes) == 0 {
		includes = DefaultIncludes
	}
	return &Matcher{includes: includes, excludes: excludes}, nil
}

// Excluded reports whether file or directory itself matches one of excludes.
func (m *Matcher) Excluded(rel string) bool {
	return matchAny(m.excludes, rel)
}

// Match reports whether file should be harvested: it matches one of
// includes while neither it nor any of its parent directories is excluded.
func (m *Matcher) Match(rel string) bool {
	for dir := path.Dir(rel); dir != "." && dir != "/"; dir = path.Dir(dir) {
		if m.Excluded(dir) {
			return false
		}
	}
	return !m.Excluded(rel) && matchAny(m.includes, rel)
}

// DiscoverCSSFiles walks root and returns absolute paths of files matching
// one of includes and none of excludes. Excluded directories are not
// descended into. Result is sorted.
func DiscoverCSSFiles(root string, includes, excludes []string) ([]string, error) {
	m, err := NewMatcher(includes, excludes)
	if err != nil {
		return nil, err
	}

	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("unable to resolve root path: %w", err)
	}

	var files []string
	err = filepath.WalkDir(absRoot, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(absRoot, path)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)
		if rel == "." {
			return nil
		}

		if m.Excluded(rel) {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() || !d.Type().IsRegular() {
			return nil
		}
		if matchAny(m.includes, rel) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("unable to walk %s: %w", root, err)
	}

	slices.Sort(files)
	return files, nil
}

func matchAny(patterns []string, rel string) bool {
	for _, pattern := range patterns {
		if matched, _ := doublestar.Match(pattern, rel); matched {
			return true
		}
	}
	return false
}
