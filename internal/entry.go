// Package internal provides the main application initialization and runtime logic.
package internal

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"slices"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/starford/lessonfmt/internal/apperr"
	"github.com/starford/lessonfmt/internal/batch"
	"github.com/starford/lessonfmt/internal/casefix"
	"github.com/starford/lessonfmt/internal/convert"
	"github.com/starford/lessonfmt/internal/corpus"
	"github.com/starford/lessonfmt/internal/refine"
	"github.com/starford/lessonfmt/internal/watch"
)

// Run executes the selected steps over the lesson corpus with the given options.
func Run(ctx context.Context, opts ...Option) error {
	app := &application{
		out:    os.Stdout,
		errOut: os.Stderr,
	}

	for _, opt := range opts {
		opt(app)
	}

	if app.config == nil {
		return fmt.Errorf("config is required")
	}

	cfg := app.config
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}

	// Console output owns stdout, so structured logs go to stderr.
	logger := slog.New(slog.NewJSONHandler(app.errOut, &slog.HandlerOptions{
		Level: cfg.App.LogLevel,
	}))
	slog.SetDefault(logger)

	names := app.steps
	if len(names) == 0 {
		names = cfg.Pipeline.Steps
	}
	steps, err := BuildSteps(cfg, names)
	if err != nil {
		return err
	}

	logger.Debug("Configuration loaded",
		slog.String("content_root", cfg.Content.Root),
		slog.Any("steps", names),
		slog.Bool("dry_run", app.dryRun),
		slog.String("log_level", cfg.App.LogLevel.String()))

	store, err := corpus.NewFS(cfg.Content.Root, cfg.Content.Filter())
	if err != nil {
		return fmt.Errorf("init corpus: %w", err)
	}

	runner := batch.NewRunner(store, logger, app.out, app.errOut, app.dryRun)

	for _, step := range steps {
		if _, err := runner.Run(ctx, step); err != nil {
			return fmt.Errorf("%s: %w", step.Name(), err)
		}
	}

	if !app.watch {
		return nil
	}

	known, err := store.List()
	if err != nil {
		return fmt.Errorf("list corpus: %w", err)
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		defer cancel()
		return watch.Watch(gCtx, runner, watch.Options{
			Root:     store.Root(),
			Filter:   cfg.Content.Filter(),
			Steps:    steps,
			Debounce: cfg.Watch.Debounce,
			Known:    known,
		}, logger, func(path string, changed bool) {
			if changed {
				fmt.Fprintf(app.out, "Updated: %s\n", store.Display(path))
			}
		})
	})

	// Handle shutdown signals.
	g.Go(func() error {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		defer signal.Stop(quit)

		select {
		case sig := <-quit:
			logger.Info("Received shutdown signal", slog.String("signal", sig.String()))
		case <-gCtx.Done():
			logger.Info("Context cancelled, stopping watcher")
		}
		cancel()
		return nil
	})

	if err := g.Wait(); err != nil {
		logger.Error("Watcher error", slog.String("error", err.Error()))
		return err
	}

	logger.Info("Watcher stopped")
	return nil
}

// BuildSteps resolves step names to batch steps configured from cfg.
func BuildSteps(cfg *Config, names []string) ([]batch.Step, error) {
	steps := make([]batch.Step, 0, len(names))
	for _, name := range names {
		switch name {
		case StepConvert:
			c := convert.New()
			c.Sections = cfg.Sections
			if !slices.Contains(cfg.Sections, c.Learn) {
				c.Learn = ""
			}
			steps = append(steps, batch.Step{Transformer: c, Verb: "Modified", Tally: "modified", Found: "lesson files"})
		case StepFixCase:
			policy, err := casefix.ParsePolicy(cfg.Case.Policy)
			if err != nil {
				return nil, err
			}
			n := casefix.New(policy)
			n.Sections = cfg.Sections
			steps = append(steps, batch.Step{Transformer: n, Verb: "Fixed", Tally: "changed"})
		case StepRefine:
			r := refine.New(cfg.Bullets.MaxLength)
			r.Sections = cfg.Sections
			steps = append(steps, batch.Step{Transformer: r, Verb: "Refined", Tally: "refined", Found: "files"})
		default:
			return nil, fmt.Errorf("step %q: %w", name, apperr.ErrUnknownStep)
		}
	}
	return steps, nil
}
