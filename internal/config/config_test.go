package config

import (
	"errors"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/wage-report/internal/titles"
)

func TestDefault(t *testing.T) {
	opts := Default()
	assert.Equal(t, DefaultInputPath, opts.InputPath)
	assert.Empty(t, opts.OutputPath)
	assert.False(t, opts.Strict)
	assert.NoError(t, opts.Validate())
}

func TestWithDefaults(t *testing.T) {
	opts := Options{OutputPath: "out.json", Strict: true}.WithDefaults()
	assert.Equal(t, DefaultInputPath, opts.InputPath)
	assert.Equal(t, "out.json", opts.OutputPath)
	assert.True(t, opts.Strict)

	opts = Options{InputPath: "wages.csv"}.WithDefaults()
	assert.Equal(t, "wages.csv", opts.InputPath)
}

func TestValidate_MissingInput(t *testing.T) {
	opts := Options{}
	err := opts.Validate()
	require.Error(t, err)

	var validationErrs validator.ValidationErrors
	require.True(t, errors.As(err, &validationErrs))
	require.Len(t, validationErrs, 1)
	assert.Equal(t, "InputPath", validationErrs[0].Field())
	assert.Equal(t, "required", validationErrs[0].Tag())
}

func TestMode(t *testing.T) {
	opts := Options{InputPath: "in.csv"}
	assert.Equal(t, titles.Suffix, opts.Mode())

	opts.Strict = true
	assert.Equal(t, titles.Strict, opts.Mode())
}
