// SPDX-License-Identifier: MIT

// Package config loads the YAML settings of the tabview CLI: default
// display formats and logging.
//
//	formats:
//	  numeric: "%9.0g"
//	  string:  "%11s"
//	  matrix:  "%10.0g"
//	logging:
//	  level:  info
//	  format: text
//
// Fields left out keep their defaults. Unknown fields are an error.
package config

import (
	"errors"
	"fmt"
	"io"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/tabview/errs"
	"github.com/katalvlaran/tabview/format"
	"github.com/katalvlaran/tabview/logging"
	"github.com/katalvlaran/tabview/matrix"
	"github.com/katalvlaran/tabview/view"
)

// Config is the whole settings document.
type Config struct {
	Formats Formats `yaml:"formats"`
	Logging Logging `yaml:"logging"`
}

// Formats holds the display formats views and matrices start with.
type Formats struct {
	Numeric string `yaml:"numeric" validate:"required,numfmt"`
	String  string `yaml:"string"  validate:"required,strfmt"`
	Matrix  string `yaml:"matrix"  validate:"required,numfmt"`
}

// Logging configures the slog logger of the CLI.
type Logging struct {
	Level  string `yaml:"level"  validate:"omitempty,oneof=debug info warn warning error"`
	Format string `yaml:"format" validate:"omitempty,oneof=text json"`
}

// cfgValidate carries the format-grammar tags next to the built-in ones.
var cfgValidate *validator.Validate

func init() {
	cfgValidate = validator.New()
	_ = cfgValidate.RegisterValidation("numfmt", func(fl validator.FieldLevel) bool {
		return format.IsNumFmt(fl.Field().String())
	})
	_ = cfgValidate.RegisterValidation("strfmt", func(fl validator.FieldLevel) bool {
		return format.IsStrFmt(fl.Field().String())
	})
}

// Default returns the documented defaults.
func Default() Config {
	return Config{
		Formats: Formats{
			Numeric: view.DefaultNumericFormat,
			String:  view.DefaultStringFormat,
			Matrix:  matrix.DefaultFormat,
		},
		Logging: Logging{Level: "info", Format: logging.FormatText},
	}
}

// Load reads a YAML document over the defaults and validates the result.
// An empty document yields Default().
// Errors: errs.ErrValue for malformed YAML, unknown fields or values that
// fail validation.
func Load(r io.Reader) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("config: decode: %v: %w", err, errs.ErrValue)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks every field; the error names the first failing one.
func (c Config) Validate() error {
	err := cfgValidate.Struct(c)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		return fmt.Errorf("config: %s %q fails %q: %w", fe.Namespace(), fmt.Sprint(fe.Value()), fe.Tag(), errs.ErrValue)
	}

	return fmt.Errorf("config: %v: %w", err, errs.ErrValue)
}

// LoggerConfig converts the logging section for logging.New.
func (c Config) LoggerConfig(out io.Writer) logging.Config {
	return logging.Config{Level: c.Logging.Level, Format: c.Logging.Format, Output: out}
}

// ViewOptions returns the view options carrying the configured formats.
// c must have passed Validate; the options panic on malformed formats.
func (c Config) ViewOptions() []view.Option {
	return []view.Option{
		view.WithNumericFormat(c.Formats.Numeric),
		view.WithStringFormat(c.Formats.String),
	}
}

// MatrixOptions returns the matrix options carrying the configured format.
func (c Config) MatrixOptions() []matrix.Option {
	return []matrix.Option{matrix.WithFormat(c.Formats.Matrix)}
}
