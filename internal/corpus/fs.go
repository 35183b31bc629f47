package corpus

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/starford/lessonfmt/internal/apperr"
	"github.com/starford/lessonfmt/internal/checksum"
	"github.com/starford/lessonfmt/internal/models"
)

// FS implements Provider backed by the local file system.
type FS struct {
	root    string // absolute path to the content root
	display string // root as configured, used in console output
	filter  Filter
}

// NewFS creates a new FS provider rooted at the given directory.
// The directory must already exist.
func NewFS(root string, filter Filter) (*FS, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("corpus: resolve root: %w", err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return nil, fmt.Errorf("corpus: stat root: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("corpus: root is not a directory: %s", abs)
	}
	return &FS{root: abs, display: root, filter: filter}, nil
}

// Root returns the absolute content root.
func (f *FS) Root() string { return f.root }

// Excluded reports whether rel is outside the corpus.
func (f *FS) Excluded(rel string) bool { return f.filter.Excluded(rel) }

// Display joins path onto the root as configured.
func (f *FS) Display(path string) string {
	return filepath.Join(f.display, path)
}

// safePath resolves a relative path against the root and rejects any result
// that escapes it or falls outside the corpus filter.
func (f *FS) safePath(rel string) (string, error) {
	cleaned := filepath.Clean(rel)
	if filepath.IsAbs(cleaned) {
		return "", fmt.Errorf("corpus: absolute paths not allowed: %s", rel)
	}
	abs, err := filepath.Abs(filepath.Join(f.root, cleaned))
	if err != nil {
		return "", fmt.Errorf("corpus: resolve path: %w", err)
	}
	if !strings.HasPrefix(abs, f.root+string(os.PathSeparator)) {
		return "", fmt.Errorf("corpus: path escapes content root: %s", rel)
	}
	if f.filter.Excluded(cleaned) {
		return "", fmt.Errorf("corpus: %s: %w", rel, apperr.ErrExcluded)
	}
	return abs, nil
}

// List walks the root and returns metadata for every lesson file, sorted by path.
func (f *FS) List() ([]models.Lesson, error) {
	var out []models.Lesson
	err := filepath.WalkDir(f.root, func(p string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if d.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(f.root, p)
		if err != nil {
			return err
		}
		if f.filter.Excluded(rel) {
			return nil
		}
		data, err := os.ReadFile(p)
		if err != nil {
			return err
		}
		out = append(out, models.Lesson{
			Path:     rel,
			Checksum: checksum.Sum(data),
		})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("corpus: list: %w", err)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Path < out[j].Path })
	return out, nil
}

// Read returns the raw bytes of a lesson file.
func (f *FS) Read(path string) ([]byte, error) {
	abs, err := f.safePath(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(abs)
	if err != nil {
		return nil, fmt.Errorf("corpus: read %s: %w", path, err)
	}
	return data, nil
}

// Write atomically writes content: tmp file → fsync → rename. The existing
// file mode is preserved.
func (f *FS) Write(path string, content []byte) error {
	abs, err := f.safePath(path)
	if err != nil {
		return err
	}
	dir := filepath.Dir(abs)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("corpus: mkdir: %w", err)
	}

	mode := fs.FileMode(0o644)
	if info, err := os.Stat(abs); err == nil {
		mode = info.Mode().Perm()
	}

	tmp, err := os.CreateTemp(dir, ".lessonfmt-tmp-*")
	if err != nil {
		return fmt.Errorf("corpus: create temp: %w", err)
	}
	tmpName := tmp.Name()

	// Clean up on any failure path.
	success := false
	defer func() {
		if !success {
			_ = tmp.Close()
			_ = os.Remove(tmpName)
		}
	}()

	if _, err := tmp.Write(content); err != nil {
		return fmt.Errorf("corpus: write temp: %w", err)
	}
	if err := tmp.Chmod(mode); err != nil {
		return fmt.Errorf("corpus: chmod temp: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		return fmt.Errorf("corpus: fsync: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("corpus: close temp: %w", err)
	}
	if err := os.Rename(tmpName, abs); err != nil {
		return fmt.Errorf("corpus: rename: %w", err)
	}
	success = true
	return nil
}
