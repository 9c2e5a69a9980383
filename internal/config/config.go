// Package config holds the scriptclean configuration and its validation.
package config

//go:generate go run ../../tools/schema-generator

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"

	"github.com/jmylchreest/scriptclean/pkg/cleaner"
)

// Config is the top-level configuration for scriptclean.
// It is read from the config file, SCRIPTCLEAN_* environment variables and flags.
type Config struct {
	// Strategy selects the cleaner: "extract" (default), "strip" or "noop".
	Strategy string `mapstructure:"strategy" yaml:"strategy,omitempty" json:"strategy,omitempty" validate:"required,oneof=strip extract noop" jsonschema:"enum=extract,enum=strip,enum=noop,default=extract"`

	// Format controls how results are printed: "text" prints only the cleaned
	// script, the others print a full report.
	Format string `mapstructure:"format" yaml:"format,omitempty" json:"format,omitempty" validate:"required,oneof=text json jsonl yaml" jsonschema:"enum=text,enum=json,enum=jsonl,enum=yaml,default=text"`

	// MaxInputSize caps the input size, e.g. "10MB". "0" disables the limit.
	MaxInputSize string `mapstructure:"max_input_size" yaml:"max_input_size,omitempty" json:"max_input_size,omitempty" validate:"bytesize" jsonschema:"default=10MB"`

	// SaveDir is the directory used by --save.
	SaveDir string `mapstructure:"save_dir" yaml:"save_dir,omitempty" json:"save_dir,omitempty" validate:"required" jsonschema:"default=."`

	// Stats prints a word count summary to stderr after cleaning.
	Stats bool `mapstructure:"stats" yaml:"stats,omitempty" json:"stats,omitempty"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Strategy:     string(cleaner.StrategyExtract),
		Format:       "text",
		MaxInputSize: "10MB",
		SaveDir:      ".",
	}
}

// SetDefaults registers the built-in values on v so that unset keys fall back to them.
func SetDefaults(v *viper.Viper) {
	d := Default()
	v.SetDefault("strategy", d.Strategy)
	v.SetDefault("format", d.Format)
	v.SetDefault("max_input_size", d.MaxInputSize)
	v.SetDefault("save_dir", d.SaveDir)
	v.SetDefault("stats", d.Stats)
}

// FromViper decodes and validates the configuration held by v.
func FromViper(v *viper.Viper) (*Config, error) {
	cfg := Default()
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// MaxInputBytes returns the parsed input limit; 0 means unlimited.
func (c *Config) MaxInputBytes() (int64, error) {
	s := strings.TrimSpace(c.MaxInputSize)
	if s == "" || s == "0" {
		return 0, nil
	}
	n, err := humanize.ParseBytes(s)
	if err != nil {
		return 0, fmt.Errorf("invalid max_input_size %q: %w", c.MaxInputSize, err)
	}
	return int64(n), nil
}

// ValidationError describes one invalid field.
type ValidationError struct {
	Field   string
	Message string
	Value   any
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s %s (got %v)", e.Field, e.Message, e.Value)
}

// ValidationErrors collects every invalid field of a Config.
type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	parts := make([]string, len(e))
	for i, ve := range e {
		parts[i] = ve.Error()
	}
	return "invalid config: " + strings.Join(parts, "; ")
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("bytesize", func(fl validator.FieldLevel) bool {
		s := strings.TrimSpace(fl.Field().String())
		if s == "" || s == "0" {
			return true
		}
		_, err := humanize.ParseBytes(s)
		return err == nil
	})
	// Report mapstructure key names rather than Go field names.
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("mapstructure"), ",", 2)[0]
		if name == "" || name == "-" {
			return f.Name
		}
		return name
	})
	return v
}

// Validate checks the configuration and returns ValidationErrors on failure.
func (c *Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	out := make(ValidationErrors, 0, len(fieldErrs))
	for _, e := range fieldErrs {
		out = append(out, ValidationError{
			Field:   e.Field(),
			Message: formatValidationError(e),
			Value:   e.Value(),
		})
	}
	return out
}

// formatValidationError creates a human-readable error message.
func formatValidationError(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "is required"
	case "oneof":
		return fmt.Sprintf("must be one of: %s", strings.ReplaceAll(e.Param(), " ", ", "))
	case "bytesize":
		return "must be a byte size such as 512KB or 10MB"
	default:
		return fmt.Sprintf("failed validation '%s'", e.Tag())
	}
}
