// SPDX-License-Identifier: MIT

// Package config loads and validates run settings for the eulerian CLI.
//
// Settings come from three layers applied in order: Default(), an optional
// YAML file (Load), then command-line flags set by the caller. Validate is
// called once after the last layer.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig wraps every validation or parse failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

var validate = validator.New()

// Config is the complete set of run settings.
type Config struct {
	// Vertices and Edges size the random instance.
	Vertices int `yaml:"vertices" validate:"min=1"`
	Edges    int `yaml:"edges" validate:"min=1"`

	// Seed fixes the random source; nil means "derive from the clock".
	Seed *int64 `yaml:"seed,omitempty"`

	Repair  string `yaml:"repair" validate:"oneof=none single pair"`
	Connect bool   `yaml:"connect"`
	Output  string `yaml:"output" validate:"oneof=text json"`

	// RepairSet is true when a loaded file names repair explicitly.
	RepairSet bool `yaml:"-"`

	Log   LogConfig   `yaml:"log"`
	Batch BatchConfig `yaml:"batch"`

	// MetricsFile, when set, receives a Prometheus text dump after a run.
	MetricsFile string `yaml:"metrics_file,omitempty"`
}

// LogConfig selects zap level and encoding.
type LogConfig struct {
	Level  string `yaml:"level" validate:"oneof=debug info warn error"`
	Format string `yaml:"format" validate:"oneof=auto console json"`
}

// BatchConfig sizes the batch command.
type BatchConfig struct {
	Trials  int `yaml:"trials" validate:"min=1"`
	Workers int `yaml:"workers" validate:"min=1,max=1024"`
}

// Default returns the built-in settings. Vertices and Edges are zero and
// must be supplied by a file or flags.
func Default() Config {
	return Config{
		Repair: "pair",
		Output: "text",
		Log: LogConfig{
			Level:  "warn",
			Format: "auto",
		},
		Batch: BatchConfig{
			Trials:  100,
			Workers: 4,
		},
	}
}

// Load reads a YAML file over Default(). Unknown keys are rejected. The
// result is not validated; flags may still override it.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config: open %s: %w", path, err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	// an empty document decodes as io.EOF and keeps the defaults
	if err = dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return cfg, fmt.Errorf("%w: parse %s: %w", ErrInvalidConfig, path, err)
	}

	var set struct {
		Repair *string `yaml:"repair"`
	}
	if err = yaml.Unmarshal(data, &set); err != nil {
		return cfg, fmt.Errorf("%w: parse %s: %w", ErrInvalidConfig, path, err)
	}
	cfg.RepairSet = set.Repair != nil

	return cfg, nil
}

// Validate checks every field against its tag rules and reports all
// violations in one error wrapping ErrInvalidConfig.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, formatValidationError(err))
	}

	return nil
}

// ValidateExcept is Validate without the named top-level fields, e.g.
// "Vertices" and "Edges" when the graph comes from a file.
func (c Config) ValidateExcept(fields ...string) error {
	if err := validate.StructExcept(c, fields...); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, formatValidationError(err))
	}

	return nil
}

// formatValidationError joins field errors into "field: reason; ..." form.
func formatValidationError(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}

	msgs := make([]string, 0, len(verrs))
	for _, e := range verrs {
		msgs = append(msgs, formatFieldError(e))
	}

	return strings.Join(msgs, "; ")
}

func formatFieldError(e validator.FieldError) string {
	field := strings.ToLower(e.Namespace())
	// drop the root struct name
	if i := strings.IndexByte(field, '.'); i >= 0 {
		field = field[i+1:]
	}

	switch e.Tag() {
	case "min":
		return fmt.Sprintf("%s must be at least %s, got %v", field, e.Param(), e.Value())
	case "max":
		return fmt.Sprintf("%s must be at most %s, got %v", field, e.Param(), e.Value())
	case "oneof":
		return fmt.Sprintf("%s must be one of [%s], got %q", field, e.Param(), e.Value())
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}
