// Package config provides option defaults and validation for the CLI.
package config

import (
	"github.com/go-playground/validator/v10"

	"github.com/jonathan/wage-report/internal/titles"
)

// DefaultInputPath is read when no --inputfile is given
const DefaultInputPath = "./City_of_Seattle_Wage_Data.csv"

// Options represents one wage_report invocation.
// An empty OutputPath (or "-") means standard output.
type Options struct {
	InputPath  string `validate:"required"`
	OutputPath string
	Strict     bool
}

// Default returns Options with every default applied
func Default() Options {
	return Options{InputPath: DefaultInputPath}
}

// WithDefaults returns a copy with empty fields filled from Default.
func (o Options) WithDefaults() Options {
	if o.InputPath == "" {
		o.InputPath = DefaultInputPath
	}
	return o
}

// Validate validates the Options using the validator.
func (o *Options) Validate() error {
	validate := validator.New()
	return validate.Struct(o)
}

// Mode returns the title normalization mode selected by Strict.
func (o *Options) Mode() titles.Mode {
	return titles.ParseMode(o.Strict)
}
