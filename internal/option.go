package internal

import "io"

// Option is a functional option for configuring the application.
type Option func(*application)

type application struct {
	config *Config
	steps  []string
	dryRun bool
	watch  bool
	out    io.Writer
	errOut io.Writer
}

// WithConfig sets the application configuration.
func WithConfig(cfg *Config) Option {
	return func(a *application) {
		a.config = cfg
	}
}

// WithSteps sets the steps to run, in order. Without it the configured
// pipeline is used.
func WithSteps(steps ...string) Option {
	return func(a *application) {
		a.steps = steps
	}
}

// WithDryRun reports changes without writing them.
func WithDryRun(dryRun bool) Option {
	return func(a *application) {
		a.dryRun = dryRun
	}
}

// WithWatch keeps running after the first pass and re-applies the steps to
// lesson files as they change.
func WithWatch(watch bool) Option {
	return func(a *application) {
		a.watch = watch
	}
}

// WithOutput redirects console output and per-file errors.
func WithOutput(out, errOut io.Writer) Option {
	return func(a *application) {
		a.out = out
		a.errOut = errOut
	}
}
