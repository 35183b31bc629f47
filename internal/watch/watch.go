// Package watch re-applies the lesson transforms to files as they change.
package watch

import (
	"context"
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/starford/lessonfmt/internal/batch"
	"github.com/starford/lessonfmt/internal/checksum"
	"github.com/starford/lessonfmt/internal/corpus"
	"github.com/starford/lessonfmt/internal/models"
)

// DefaultDebounce is how long the watcher waits for writes to settle.
const DefaultDebounce = 300 * time.Millisecond

// Processor applies steps to one lesson file. *batch.Runner satisfies it.
type Processor interface {
	ProcessFile(path string, steps ...batch.Step) (bool, error)
}

// EventCallback is called after each processed file with whether it was rewritten.
type EventCallback func(path string, changed bool)

// Options configures Watch.
type Options struct {
	Root     string
	Filter   corpus.Filter
	Steps    []batch.Step
	Debounce time.Duration
	// Known seeds the checksums of files already processed, keyed by path
	// relative to Root. Events on a file still matching its entry are ignored.
	Known []models.Lesson
}

// Watch starts an fsnotify watcher on the content root and processes
// created or written lesson files until ctx is cancelled. Events are
// debounced so an editor's burst of writes triggers one pass per file.
//
// New directories created at runtime are automatically added to the watch
// list and any lessons already inside them are processed.
func Watch(ctx context.Context, proc Processor, opts Options, logger *slog.Logger, cb EventCallback) error {
	if opts.Debounce <= 0 {
		opts.Debounce = DefaultDebounce
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Close()

	if err := addDirsRecursive(w, opts.Root); err != nil {
		return err
	}

	logger.Info("watcher: started", slog.String("root", opts.Root))

	pending := make(map[string]struct{})
	// Checksums of files as last left by the watcher; our own writes fire
	// events too and must not trigger another pass.
	sums := make(map[string]string, len(opts.Known))
	for _, l := range opts.Known {
		sums[l.Path] = l.Checksum
	}
	var timer *time.Timer
	var fire <-chan time.Time

	schedule := func(rel string) {
		pending[rel] = struct{}{}
		if timer == nil {
			timer = time.NewTimer(opts.Debounce)
			fire = timer.C
		} else {
			timer.Reset(opts.Debounce)
		}
	}

	for {
		select {
		case <-ctx.Done():
			if timer != nil {
				timer.Stop()
			}
			logger.Info("watcher: stopped")
			return nil

		case <-fire:
			timer, fire = nil, nil
			paths := make([]string, 0, len(pending))
			for p := range pending {
				paths = append(paths, p)
			}
			clear(pending)
			sort.Strings(paths)
			for _, p := range paths {
				abs := filepath.Join(opts.Root, p)
				if sum, ok := fileSum(abs); ok && sums[p] == sum {
					continue
				}
				process(proc, opts.Steps, p, logger, cb)
				if sum, ok := fileSum(abs); ok {
					sums[p] = sum
				} else {
					delete(sums, p)
				}
			}

		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if ev.Op&(fsnotify.Create|fsnotify.Write) == 0 {
				continue
			}

			absPath := ev.Name

			if ev.Op&fsnotify.Create != 0 {
				if info, statErr := os.Stat(absPath); statErr == nil && info.IsDir() {
					if addErr := addDirsRecursive(w, absPath); addErr != nil {
						logger.Warn("watcher: add new dir failed",
							slog.String("path", absPath),
							slog.String("error", addErr.Error()))
					} else {
						logger.Debug("watcher: watching new dir", slog.String("path", absPath))
					}
					for _, rel := range lessonsIn(opts.Root, absPath, opts.Filter) {
						schedule(rel)
					}
					continue
				}
			}

			rel, relErr := filepath.Rel(opts.Root, absPath)
			if relErr != nil || opts.Filter.Excluded(rel) {
				continue
			}
			schedule(rel)

		case watchErr, ok := <-w.Errors:
			if !ok {
				return nil
			}
			logger.Error("watcher: error", slog.String("error", watchErr.Error()))
		}
	}
}

func process(proc Processor, steps []batch.Step, rel string, logger *slog.Logger, cb EventCallback) {
	changed, err := proc.ProcessFile(rel, steps...)
	if err != nil {
		// Removed before the pass ran.
		if !errors.Is(err, fs.ErrNotExist) {
			logger.Warn("watcher: process failed", slog.String("path", rel), slog.String("error", err.Error()))
		}
		return
	}
	if changed {
		logger.Info("watcher: rewritten", slog.String("path", rel))
	}
	if cb != nil {
		cb(rel, changed)
	}
}

func fileSum(path string) (string, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", false
	}
	return checksum.Sum(data), true
}

// lessonsIn returns the corpus files found under dir, relative to root.
func lessonsIn(root, dir string, filter corpus.Filter) []string {
	var out []string
	_ = filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return nil
		}
		rel, relErr := filepath.Rel(root, path)
		if relErr != nil || filter.Excluded(rel) {
			return nil
		}
		out = append(out, rel)
		return nil
	})
	return out
}

// addDirsRecursive adds root and all its subdirectories to the watcher.
func addDirsRecursive(w *fsnotify.Watcher, root string) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return w.Add(path)
		}
		return nil
	})
}
