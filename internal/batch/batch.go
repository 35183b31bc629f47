// Package batch applies document transforms across the lesson corpus.
package batch

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/starford/lessonfmt/internal/checksum"
	"github.com/starford/lessonfmt/internal/corpus"
)

// Transformer rewrites one document. changed is false when nothing needs writing.
type Transformer interface {
	Name() string
	Transform(content string) (out string, changed bool)
}

// Step is a Transformer plus the words used to report it.
type Step struct {
	Transformer
	// Verb prefixes each modified path, e.g. "Modified".
	Verb string
	// Tally completes the summary line, e.g. "modified".
	Tally string
	// Found names what the pass counts in its opening "Found N <Found> to
	// process" line, e.g. "lesson files". Empty omits the line.
	Found string
}

// Report holds the outcome of one pass over the corpus.
type Report struct {
	Found    int
	Modified int
	Failed   int
}

// Runner applies steps to lesson files.
type Runner struct {
	store  corpus.Provider
	logger *slog.Logger
	out    io.Writer
	errOut io.Writer
	dryRun bool
}

// NewRunner creates a Runner. Console output goes to out, per-file errors to errOut.
func NewRunner(store corpus.Provider, logger *slog.Logger, out, errOut io.Writer, dryRun bool) *Runner {
	return &Runner{store: store, logger: logger, out: out, errOut: errOut, dryRun: dryRun}
}

// Run makes one pass of step over the corpus. Per-file failures are reported
// and counted; only a failed scan or a cancelled context aborts the pass.
func (r *Runner) Run(ctx context.Context, step Step) (Report, error) {
	lessons, err := r.store.List()
	if err != nil {
		return Report{}, fmt.Errorf("batch: %s: %w", step.Name(), err)
	}

	rep := Report{Found: len(lessons)}
	if step.Found != "" {
		fmt.Fprintf(r.out, "Found %d %s to process\n", rep.Found, step.Found)
	}

	for _, l := range lessons {
		if err := ctx.Err(); err != nil {
			return rep, err
		}
		changed, err := r.ProcessFile(l.Path, step)
		if err != nil {
			rep.Failed++
			r.logger.Warn("process failed",
				slog.String("step", step.Name()),
				slog.String("path", l.Path),
				slog.String("error", err.Error()))
			fmt.Fprintf(r.errOut, "Error processing %s: %v\n", r.store.Display(l.Path), err)
			continue
		}
		if !changed {
			continue
		}
		rep.Modified++
		fmt.Fprintf(r.out, "%s: %s%s\n", step.Verb, r.store.Display(l.Path), r.dryRunSuffix())
	}

	fmt.Fprintf(r.out, "\nProcessed %d files, %s %d files\n", rep.Found, step.Tally, rep.Modified)
	r.logger.Info("pass complete",
		slog.String("step", step.Name()),
		slog.Int("found", rep.Found),
		slog.Int("modified", rep.Modified),
		slog.Int("failed", rep.Failed),
		slog.Bool("dry_run", r.dryRun))
	return rep, nil
}

// ProcessFile reads path, applies steps in order, and writes the result back
// once if it differs from what was read.
func (r *Runner) ProcessFile(path string, steps ...Step) (bool, error) {
	data, err := r.store.Read(path)
	if err != nil {
		return false, err
	}
	original := string(data)

	content := original
	var applied []string
	for _, step := range steps {
		out, changed := step.Transform(content)
		if changed && out != content {
			content = out
			applied = append(applied, step.Name())
		}
	}
	if content == original {
		return false, nil
	}

	if !r.dryRun {
		if err := r.store.Write(path, []byte(content)); err != nil {
			return false, err
		}
	}
	r.logger.Debug("lesson rewritten",
		slog.String("path", path),
		slog.Any("steps", applied),
		slog.String("checksum", checksum.String(content)))
	return true, nil
}

func (r *Runner) dryRunSuffix() string {
	if r.dryRun {
		return " (dry run)"
	}
	return ""
}
