package corpus

import (
	"path/filepath"
	"strings"
)

// Filter decides which Markdown files belong to the corpus.
type Filter struct {
	// ExcludeSegments drops files with any path component containing one of these.
	ExcludeSegments []string
	// ExcludeNames drops files with exactly one of these base names.
	ExcludeNames []string
}

// DefaultFilter skips "_meta" trees and index pages.
func DefaultFilter() Filter {
	return Filter{
		ExcludeSegments: []string{"_meta"},
		ExcludeNames:    []string{"index.md"},
	}
}

// Excluded reports whether rel (relative to the content root) is outside the corpus.
func (f Filter) Excluded(rel string) bool {
	if !strings.HasSuffix(rel, ".md") {
		return true
	}
	base := filepath.Base(rel)
	for _, name := range f.ExcludeNames {
		if base == name {
			return true
		}
	}
	for _, part := range strings.Split(filepath.ToSlash(rel), "/") {
		for _, seg := range f.ExcludeSegments {
			if seg != "" && strings.Contains(part, seg) {
				return true
			}
		}
	}
	return false
}
