package internal

import (
	"log/slog"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/starford/lessonfmt/internal/casefix"
	"github.com/starford/lessonfmt/internal/corpus"
	"github.com/starford/lessonfmt/internal/lesson"
	"github.com/starford/lessonfmt/internal/refine"
	"github.com/starford/lessonfmt/internal/watch"
)

// Pipeline step names.
const (
	StepConvert = "convert"
	StepFixCase = "fix-case"
	StepRefine  = "refine"
)

// Config represents the application configuration.
type Config struct {
	App      ApplicationConfig `yaml:"app"`
	Content  ContentConfig     `yaml:"content"`
	Sections []string          `yaml:"sections"`
	Bullets  BulletsConfig     `yaml:"bullets"`
	Case     CaseConfig        `yaml:"case"`
	Pipeline PipelineConfig    `yaml:"pipeline"`
	Watch    WatchConfig       `yaml:"watch"`
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if err := c.Content.Validate(); err != nil {
		return err
	}
	if err := validation.Validate(c.Sections,
		validation.Required,
		validation.Each(validation.Required),
	); err != nil {
		return err
	}
	if err := c.Bullets.Validate(); err != nil {
		return err
	}
	if err := c.Case.Validate(); err != nil {
		return err
	}
	if err := c.Pipeline.Validate(); err != nil {
		return err
	}
	return c.Watch.Validate()
}

// ApplicationConfig holds application-level configuration.
type ApplicationConfig struct {
	LogLevel slog.Level `yaml:"log_level"`
}

// ContentConfig locates the lesson corpus.
type ContentConfig struct {
	Root            string   `yaml:"root"`
	ExcludeSegments []string `yaml:"exclude_segments"`
	ExcludeNames    []string `yaml:"exclude_names"`
}

// Validate validates the content configuration.
func (c *ContentConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Root, validation.Required),
	)
}

// Filter returns the corpus filter described by the configuration.
func (c *ContentConfig) Filter() corpus.Filter {
	return corpus.Filter{
		ExcludeSegments: c.ExcludeSegments,
		ExcludeNames:    c.ExcludeNames,
	}
}

// BulletsConfig holds bullet length limits.
type BulletsConfig struct {
	MaxLength int `yaml:"max_length"`
}

// Validate validates the bullets configuration.
func (c *BulletsConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.MaxLength, validation.Required, validation.Min(40), validation.Max(500)),
	)
}

// CaseConfig selects the bullet case convention.
//
// Policy is one of:
//   - "sentence" (default): capitalize the first letter and drop duplicate bullets.
//   - "lower": lowercase the first letter, keep duplicates.
type CaseConfig struct {
	Policy string `yaml:"policy"`
}

// Validate validates the case configuration.
func (c *CaseConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Policy, validation.Required,
			validation.In(string(casefix.PolicySentence), string(casefix.PolicyLower))),
	)
}

// PipelineConfig lists the steps run by the run and watch commands, in order.
type PipelineConfig struct {
	Steps []string `yaml:"steps"`
}

// Validate validates the pipeline configuration.
func (c *PipelineConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Steps, validation.Required,
			validation.Each(validation.In(StepConvert, StepFixCase, StepRefine))),
	)
}

// WatchConfig holds watcher configuration.
type WatchConfig struct {
	Debounce time.Duration `yaml:"debounce"`
}

// Validate validates the watch configuration.
func (c *WatchConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Debounce, validation.Min(time.Duration(0))),
	)
}

// NewDefaultConfig returns a new Config with sensible default values.
func NewDefaultConfig() *Config {
	filter := corpus.DefaultFilter()
	return &Config{
		App: ApplicationConfig{
			LogLevel: slog.LevelInfo,
		},
		Content: ContentConfig{
			Root:            "content/course",
			ExcludeSegments: filter.ExcludeSegments,
			ExcludeNames:    filter.ExcludeNames,
		},
		Sections: []string{lesson.LearnSection, lesson.TakeawaysSection},
		Bullets: BulletsConfig{
			MaxLength: refine.DefaultMaxLength,
		},
		Case: CaseConfig{
			Policy: string(casefix.PolicySentence),
		},
		Pipeline: PipelineConfig{
			Steps: []string{StepConvert, StepRefine, StepFixCase},
		},
		Watch: WatchConfig{
			Debounce: watch.DefaultDebounce,
		},
	}
}
