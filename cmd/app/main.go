package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	_ "github.com/joho/godotenv/autoload"
	"github.com/urfave/cli/v3"

	"github.com/starford/lessonfmt/internal"
	pkgconfig "github.com/starford/lessonfmt/pkg/config"
)

// loadConfig reads the optional config file and applies flag overrides.
func loadConfig(cmd *cli.Command) (*internal.Config, error) {
	configPath := cmd.String("config")

	cfg := internal.NewDefaultConfig()
	if _, err := pkgconfig.LoadIfExists(configPath, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if cmd.IsSet("root") {
		cfg.Content.Root = cmd.String("root")
	}
	if cmd.IsSet("policy") {
		cfg.Case.Policy = cmd.String("policy")
	}
	if cmd.IsSet("max-length") {
		cfg.Bullets.MaxLength = int(cmd.Int("max-length"))
	}
	if cmd.IsSet("steps") {
		cfg.Pipeline.Steps = cmd.StringSlice("steps")
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return cfg, nil
}

// action runs the given steps; with no steps the configured pipeline runs.
func action(watch bool, steps ...string) cli.ActionFunc {
	return func(ctx context.Context, cmd *cli.Command) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		opts := []internal.Option{
			internal.WithConfig(cfg),
			internal.WithSteps(steps...),
			internal.WithDryRun(cmd.Bool("dry-run")),
			internal.WithWatch(watch),
		}

		if err := internal.Run(ctx, opts...); err != nil {
			return fmt.Errorf("app run error: %w", err)
		}

		return nil
	}
}

func main() {
	cmd := &cli.Command{
		Name:  "lessonfmt",
		Usage: "Reformat the bullet sections of Markdown lessons",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "config",
				Aliases:     []string{"c"},
				Usage:       "Path to config file (optional)",
				DefaultText: "config/config.yaml",
				Value:       "config/config.yaml",
				Sources:     cli.EnvVars("APP_CONFIG_FILE"),
			},
			&cli.StringFlag{
				Name:  "root",
				Usage: "Lesson content root",
			},
			&cli.BoolFlag{
				Name:  "dry-run",
				Usage: "Report changes without writing files",
			},
		},
		Commands: []*cli.Command{
			{
				Name:   internal.StepConvert,
				Usage:  "Convert prose learning sections to bullet lists",
				Action: action(false, internal.StepConvert),
			},
			{
				Name:  internal.StepFixCase,
				Usage: "Normalize the case of bullets in learning sections",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "policy",
						Usage: "Case policy: sentence or lower",
					},
				},
				Action: action(false, internal.StepFixCase),
			},
			{
				Name:  internal.StepRefine,
				Usage: "Split or shorten bullets over the length limit",
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:  "max-length",
						Usage: "Maximum bullet length in characters",
					},
				},
				Action: action(false, internal.StepRefine),
			},
			{
				Name:   "run",
				Usage:  "Run the configured pipeline, one pass per step",
				Flags:  pipelineFlags(),
				Action: action(false),
			},
			{
				Name:   "watch",
				Usage:  "Run the pipeline, then re-apply it to lessons as they change",
				Flags:  pipelineFlags(),
				Action: action(true),
			},
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		slog.Error("application error", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func pipelineFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringSliceFlag{
			Name:  "steps",
			Usage: "Steps to run in order (convert, refine, fix-case)",
		},
		&cli.StringFlag{
			Name:  "policy",
			Usage: "Case policy: sentence or lower",
		},
		&cli.IntFlag{
			Name:  "max-length",
			Usage: "Maximum bullet length in characters",
		},
	}
}
