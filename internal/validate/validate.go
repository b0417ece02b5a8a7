// SPDX-License-Identifier: MIT

// Package validate provides configuration validation utilities for chairlink.
package validate

import (
	"fmt"
	"strings"

	pnet "github.com/ManuGH/chairlink/internal/platform/net"
)

// Error represents a validation error
type Error struct {
	Field   string      // Field name that failed validation
	Value   interface{} // The invalid value
	Message string      // Human-readable error message
}

// Error implements the error interface
func (e Error) Error() string {
	return fmt.Sprintf("validation failed for %s: %s", e.Field, e.Message)
}

// Validator accumulates validation errors and can produce a ValidationError when invalid.
type Validator struct {
	errors []Error
}

// ValidationError bundles multiple validation errors into a single error value.
type ValidationError struct {
	errors []Error
}

// New creates a new validator
func New() *Validator {
	return &Validator{
		errors: make([]Error, 0),
	}
}

// AddError adds a validation error
func (v *Validator) AddError(field, message string, value interface{}) {
	v.errors = append(v.errors, Error{
		Field:   field,
		Value:   value,
		Message: message,
	})
}

// IsValid returns true if no errors have been accumulated
func (v *Validator) IsValid() bool {
	return len(v.errors) == 0
}

// Errors returns all accumulated validation errors
func (v *Validator) Errors() []Error {
	return v.errors
}

// Err converts the accumulated validation errors into an error value.
func (v *Validator) Err() error {
	if len(v.errors) == 0 {
		return nil
	}

	copied := make([]Error, len(v.errors))
	copy(copied, v.errors)

	return ValidationError{errors: copied}
}

// Errors returns the individual validation errors making up the validation failure.
func (e ValidationError) Errors() []Error {
	return e.errors
}

// Fields returns the names of the fields that failed, in report order.
func (e ValidationError) Fields() []string {
	fields := make([]string, len(e.errors))
	for i, err := range e.errors {
		fields[i] = err.Field
	}
	return fields
}

// Error implements the error interface for ValidationError.
func (e ValidationError) Error() string {
	if len(e.errors) == 0 {
		return ""
	}

	if len(e.errors) == 1 {
		return e.errors[0].Error()
	}

	msgs := make([]string, len(e.errors))
	for i, err := range e.errors {
		msgs[i] = err.Error()
	}
	return strings.Join(msgs, "; ")
}

// NotEmpty validates that a string is not empty or whitespace-only
func (v *Validator) NotEmpty(field, value string) {
	if strings.TrimSpace(value) == "" {
		v.AddError(field, "value cannot be empty", value)
	}
}

// MaxBytes validates that a string is at most maxLen bytes long.
func (v *Validator) MaxBytes(field, value string, maxLen int) {
	if len(value) > maxLen {
		v.AddError(field,
			fmt.Sprintf("value must be at most %d bytes, got %d", maxLen, len(value)),
			value)
	}
}

// OneOf validates that a value is one of the allowed values
func (v *Validator) OneOf(field, value string, allowed []string) {
	for _, a := range allowed {
		if value == a {
			return
		}
	}
	v.AddError(field,
		fmt.Sprintf("value must be one of %v, got %q", allowed, value),
		value)
}

// HostAddress validates a "host" or "host:port" network address.
// The host must be an IP literal or a valid DNS name.
func (v *Validator) HostAddress(field, value string) {
	if value == "" {
		v.AddError(field, "address cannot be empty", value)
		return
	}

	host, _, err := pnet.SplitAddress(value, 1)
	if err != nil {
		v.AddError(field, err.Error(), value)
		return
	}
	if _, err := pnet.NormalizeHost(host); err != nil {
		v.AddError(field, err.Error(), value)
	}
}
