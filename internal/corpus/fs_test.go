package corpus

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/starford/lessonfmt/internal/apperr"
)

func tempCorpus(t *testing.T) (string, *FS) {
	t.Helper()
	dir := t.TempDir()
	fs, err := NewFS(dir, DefaultFilter())
	if err != nil {
		t.Fatalf("NewFS: %v", err)
	}
	return dir, fs
}

func writeFile(t *testing.T, root, rel, content string) {
	t.Helper()
	p := filepath.Join(root, rel)
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(p, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestWriteAndRead(t *testing.T) {
	_, s := tempCorpus(t)
	content := []byte("# Hello\nWorld\n")
	if err := s.Write("lesson.md", content); err != nil {
		t.Fatalf("Write: %v", err)
	}
	got, err := s.Read("lesson.md")
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if string(got) != string(content) {
		t.Errorf("content mismatch: got %q", got)
	}
}

func TestWritePreservesMode(t *testing.T) {
	dir, s := tempCorpus(t)
	writeFile(t, dir, "mode.md", "old")
	if err := os.Chmod(filepath.Join(dir, "mode.md"), 0o640); err != nil {
		t.Fatal(err)
	}
	if err := s.Write("mode.md", []byte("new")); err != nil {
		t.Fatalf("Write: %v", err)
	}
	info, err := os.Stat(filepath.Join(dir, "mode.md"))
	if err != nil {
		t.Fatal(err)
	}
	if info.Mode().Perm() != 0o640 {
		t.Errorf("mode = %v, want 0640", info.Mode().Perm())
	}
}

func TestList_SortedWithExclusions(t *testing.T) {
	dir, s := tempCorpus(t)
	writeFile(t, dir, "b/lesson.md", "b")
	writeFile(t, dir, "a.md", "a")
	writeFile(t, dir, "index.md", "index")
	writeFile(t, dir, "b/index.md", "index")
	writeFile(t, dir, "_meta/info.md", "meta")
	writeFile(t, dir, "module_meta_x/c.md", "meta")
	writeFile(t, dir, "b/notes_meta.md", "meta")
	writeFile(t, dir, "readme.txt", "not md")

	items, err := s.List()
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	var paths []string
	for _, it := range items {
		paths = append(paths, filepath.ToSlash(it.Path))
		if it.Checksum == "" {
			t.Errorf("%s: empty checksum", it.Path)
		}
	}
	if len(paths) != 2 || paths[0] != "a.md" || paths[1] != "b/lesson.md" {
		t.Errorf("paths = %v, want [a.md b/lesson.md]", paths)
	}
}

func TestExcludedPathsNeverReadOrWritten(t *testing.T) {
	dir, s := tempCorpus(t)
	writeFile(t, dir, "_meta/info.md", "meta")
	writeFile(t, dir, "index.md", "index")

	for _, p := range []string{"_meta/info.md", "index.md", "notes.txt"} {
		if _, err := s.Read(p); !errors.Is(err, apperr.ErrExcluded) {
			t.Errorf("Read(%q) error = %v, want ErrExcluded", p, err)
		}
		if err := s.Write(p, []byte("x")); !errors.Is(err, apperr.ErrExcluded) {
			t.Errorf("Write(%q) error = %v, want ErrExcluded", p, err)
		}
	}
	got, _ := os.ReadFile(filepath.Join(dir, "index.md"))
	if string(got) != "index" {
		t.Errorf("index.md modified: %q", got)
	}
}

func TestTraversalBlocked(t *testing.T) {
	_, s := tempCorpus(t)

	cases := []string{
		"../../etc/passwd.md",
		"../outside.md",
		"/etc/shadow.md",
		"",
	}
	for _, p := range cases {
		if _, err := s.Read(p); err == nil {
			t.Errorf("expected error for path %q", p)
		}
		if err := s.Write(p, []byte("x")); err == nil {
			t.Errorf("expected error for write to %q", p)
		}
	}
}

func TestAtomicWriteNoLeftovers(t *testing.T) {
	_, s := tempCorpus(t)
	_ = s.Write("atomic.md", []byte("original content"))

	updated := []byte("updated content")
	if err := s.Write("atomic.md", updated); err != nil {
		t.Fatalf("Write: %v", err)
	}
	got, _ := s.Read("atomic.md")
	if string(got) != string(updated) {
		t.Errorf("expected updated content, got %q", got)
	}

	matches, _ := filepath.Glob(filepath.Join(s.root, ".lessonfmt-tmp-*"))
	if len(matches) != 0 {
		t.Errorf("leftover temp files: %v", matches)
	}
}

func TestDisplay(t *testing.T) {
	dir := t.TempDir()
	s, err := NewFS(dir, DefaultFilter())
	if err != nil {
		t.Fatal(err)
	}
	if got := s.Display("a/b.md"); got != filepath.Join(dir, "a", "b.md") {
		t.Errorf("Display = %q", got)
	}
}

func TestNewFS_NonExistentDir(t *testing.T) {
	_, err := NewFS("/tmp/lessonfmt-does-not-exist-"+t.Name(), DefaultFilter())
	if err == nil {
		t.Error("expected error for non-existent dir")
	}
}

func TestNewFS_FileNotDir(t *testing.T) {
	f, _ := os.CreateTemp("", "lessonfmt-test-*")
	_ = f.Close()
	defer os.Remove(f.Name())
	_, err := NewFS(f.Name(), DefaultFilter())
	if err == nil {
		t.Error("expected error when root is a file")
	}
}
