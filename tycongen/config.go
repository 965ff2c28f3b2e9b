package tycongen

import (
	"errors"
	"fmt"
	"go/token"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Config controls a generation run.
type Config struct {
	// OutDir is the directory generated files are written to.
	OutDir string `validate:"required"`

	// Package overrides the package name declared by the inputs. Must be
	// a valid Go identifier when set.
	Package string

	// Header lines are added to the generated-code comment block.
	Header []string

	// Types restricts source-mode extraction to the named types.
	Types []string

	// Overwrite controls whether existing output files are replaced.
	// Defaults to true.
	Overwrite bool

	// RuntimeImport overrides the runtime package import path in
	// generated code. Used by tests.
	RuntimeImport string
}

func (c *Config) validate() error {
	if err := validate.Struct(c); err != nil {
		var valErrs validator.ValidationErrors
		if errors.As(err, &valErrs) {
			messages := make([]string, 0, len(valErrs))
			for _, ve := range valErrs {
				messages = append(messages, ve.Field()+": "+formatValidationError(ve))
			}
			return fmt.Errorf("invalid config: %s", strings.Join(messages, "; "))
		}
		return fmt.Errorf("invalid config: %w", err)
	}

	if c.Package != "" && !token.IsIdentifier(c.Package) {
		return fmt.Errorf("invalid config: Package: %q is not a valid Go identifier", c.Package)
	}
	return nil
}

// formatValidationError converts a validator.FieldError to a human-readable
// message.
func formatValidationError(ve validator.FieldError) string {
	switch ve.Tag() {
	case "required":
		return "required"
	case "min":
		return fmt.Sprintf("must be at least %s", ve.Param())
	case "max":
		return fmt.Sprintf("must be at most %s", ve.Param())
	case "oneof":
		return fmt.Sprintf("must be one of: %s", ve.Param())
	default:
		if ve.Param() != "" {
			return fmt.Sprintf("failed %s=%s validation", ve.Tag(), ve.Param())
		}
		return fmt.Sprintf("failed %s validation", ve.Tag())
	}
}
