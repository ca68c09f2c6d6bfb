// Package validator wraps go-playground/validator with the tags the
// application's configuration needs and a standardized error format.
//
// Besides the built-in tags (required, oneof, eth_addr, url, ...) it registers:
//
//	ws_url   a ws:// or wss:// URL with a host
package validator

import (
	"errors"
	"fmt"
	"net/url"

	gvalidator "github.com/go-playground/validator/v10"
)

// ErrValidationFailed is returned as the first error in a multi-error chain when validation fails.
var ErrValidationFailed = errors.New("struct validation failed")

// validator is the singleton instance, initialized on package load.
var validator *gvalidator.Validate

// errStringFormat describes one field error.
//
// Example: "'URL': value 'http://x' does not meet the requirements for the 'ws_url' validation"
const errStringFormat = "'%s': value '%v' does not meet the requirements for the '%s' validation"

func init() {
	validator = gvalidator.New(gvalidator.WithRequiredStructEnabled())

	if err := validator.RegisterValidation("ws_url", isWebSocketURL); err != nil {
		panic(err)
	}
}

// isWebSocketURL reports whether the field is a ws:// or wss:// URL with a host.
func isWebSocketURL(fl gvalidator.FieldLevel) bool {
	u, err := url.Parse(fl.Field().String())
	if err != nil {
		return false
	}

	return (u.Scheme == "ws" || u.Scheme == "wss") && u.Host != ""
}

// formatError turns validation errors into a multi-error chain rooted at
// ErrValidationFailed, one message per field. Other errors are returned
// unchanged.
func formatError(err error) error {
	var validationErrors gvalidator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return err
	}

	errs := []error{ErrValidationFailed}
	for _, validationErr := range validationErrors {
		err := fmt.Errorf(errStringFormat,
			validationErr.Field(),
			validationErr.Value(),
			validationErr.Tag(),
		)

		errs = append(errs, err)
	}

	return errors.Join(errs...)
}

// Validate checks if the given struct satisfies its validation tags.
//
//	if err := validator.Validate(cfg); errors.Is(err, validator.ErrValidationFailed) {
//	    // Handle validation failure
//	}
func Validate(v any) error {
	if err := validator.Struct(v); err != nil {
		return formatError(err)
	}

	return nil
}

// Var validates a single value against tag (e.g., "required,eth_addr").
func Var(v any, tag string) error {
	if err := validator.Var(v, tag); err != nil {
		return formatError(err)
	}

	return nil
}
