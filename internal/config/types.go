package config

import (
	"errors"
	"os"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/go-playground/validator/v10"
	"github.com/samber/oops"
)

const (
	DefaultOutput        = "songbook"
	DefaultLinesPerSlide = 2
	DefaultListLimit     = 50
	maxLinesPerSlide     = 12
)

func DefaultPatterns() []string {
	return []string{"**/*.txt"}
}

func DefaultListFields() []string {
	return []string{"id", "title", "artist", "key", "sections"}
}

type Config struct {
	Output    string        `koanf:"output"`
	Slides    SlidesConfig  `koanf:"slides"`
	Import    ImportConfig  `koanf:"import"`
	Display   DisplayConfig `koanf:"display"`
	ConfigDir string        `koanf:"-"`
}

type SlidesConfig struct {
	LinesPerSlide int `koanf:"lines_per_slide" validate:"omitempty,min=1,max=12"`
}

type ImportConfig struct {
	Patterns    []string `koanf:"patterns" validate:"omitempty,dive,glob"`
	Exclude     []string `koanf:"exclude"  validate:"omitempty,dive,glob"`
	CleanLyrics bool     `koanf:"clean_lyrics"`
}

type DisplayConfig struct {
	Format     string   `koanf:"format" validate:"omitempty,oneof=table json csv"`
	Limit      int      `koanf:"limit"  validate:"omitempty,min=0"`
	ListFields []string `koanf:"fields" validate:"omitempty,dive,oneof=id title artist key ccli link sections file source imported"`
}

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	_ = v.RegisterValidation("glob", func(fl validator.FieldLevel) bool {
		return doublestar.ValidatePattern(fl.Field().String())
	})

	return v
}

func (c *Config) ApplyDefaults() {
	if c.Output == "" {
		c.Output = DefaultOutput
	}
	if c.Slides.LinesPerSlide == 0 {
		c.Slides.LinesPerSlide = DefaultLinesPerSlide
	}
	if len(c.Import.Patterns) == 0 {
		c.Import.Patterns = DefaultPatterns()
	}
	if c.Display.Format == "" {
		c.Display.Format = "table"
	}
	if c.Display.Limit == 0 {
		c.Display.Limit = DefaultListLimit
	}
	if len(c.Display.ListFields) == 0 {
		c.Display.ListFields = DefaultListFields()
	}
}

func (c *Config) Validate() error {
	// The output directory is created on first import, so a missing path
	// is fine. Only an existing non-directory is rejected.
	if c.Output != "" {
		if info, statErr := os.Stat(c.Output); statErr == nil && !info.IsDir() {
			return oops.
				Code("CONFIG_INVALID").
				With("field", "output").
				With("path", c.Output).
				Hint("Point output at a directory, not a file").
				Errorf("output path %q is not a directory", c.Output)
		}
	}

	v := newValidator()

	valErr := v.Struct(c)
	if valErr == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(valErr, &validationErrors) {
		return oops.
			Code("CONFIG_INVALID").
			Wrapf(valErr, "validating config")
	}

	for _, fe := range validationErrors {
		return mapValidationError(fe)
	}

	return nil
}

func mapValidationError(fe validator.FieldError) error {
	field := strings.ToLower(fe.Field())

	switch {
	case fe.Tag() == "glob":
		return oops.
			Code("CONFIG_INVALID").
			With("field", field).
			With("pattern", fe.Value()).
			Hint("Use doublestar glob syntax, e.g. songs/**/*.txt").
			Errorf("invalid glob pattern %q", fe.Value())

	case fe.Tag() == "oneof" && field == "format":
		return oops.
			Code("CONFIG_INVALID").
			With("field", "display.format").
			With("value", fe.Value()).
			Hint("Supported formats: table, json, csv").
			Errorf("unknown display format %q", fe.Value())

	case fe.Tag() == "oneof":
		return oops.
			Code("CONFIG_INVALID").
			With("field", field).
			With("value", fe.Value()).
			Hint("Valid fields: id, title, artist, key, ccli, link, sections, file, source, imported").
			Errorf("unknown list field %q", fe.Value())

	case field == "linesperslide":
		return oops.
			Code("CONFIG_INVALID").
			With("field", "slides.lines_per_slide").
			With("value", fe.Value()).
			Hint("Set lines_per_slide between 1 and 12").
			Errorf("lines_per_slide must be between 1 and %d", maxLinesPerSlide)

	default:
		return oops.
			Code("CONFIG_INVALID").
			With("field", field).
			With("tag", fe.Tag()).
			Errorf("validation failed for field %q", field)
	}
}
