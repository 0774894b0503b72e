package errors

import (
	"fmt"
	"net/url"
	"strings"
	"time"
)

// ValidationError collects messages per field. Fields keep the order they
// were first reported in so the rendered message is stable.
type ValidationError struct {
	Fields map[string][]string `json:"fields"`
	order  []string
}

// Error implements the error interface
func (v *ValidationError) Error() string {
	if len(v.order) == 0 {
		return "validation failed"
	}

	parts := make([]string, 0, len(v.order))
	for _, field := range v.order {
		parts = append(parts, field+": "+strings.Join(v.Fields[field], ", "))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// NewValidationError creates an empty validation error
func NewValidationError() *ValidationError {
	return &ValidationError{Fields: make(map[string][]string)}
}

// AddFieldError adds a message for a field
func (v *ValidationError) AddFieldError(field, message string) {
	if _, ok := v.Fields[field]; !ok {
		v.order = append(v.order, field)
	}
	v.Fields[field] = append(v.Fields[field], message)
}

// HasErrors reports whether any field failed
func (v *ValidationError) HasErrors() bool {
	return len(v.order) > 0
}

// FieldNames lists the failed fields in the order they were reported
func (v *ValidationError) FieldNames() []string {
	return append([]string(nil), v.order...)
}

// ToError converts to an InvalidArgument error carrying the field messages
// under the "validation_errors" meta key
func (v *ValidationError) ToError() *Error {
	if !v.HasErrors() {
		return nil
	}
	return InvalidArgument(v.Error()).WithMeta("validation_errors", v.Fields)
}

// ValidationBuilder accumulates field errors for a Config.Validate. Build
// returns nil when nothing failed.
type ValidationBuilder struct {
	err *ValidationError
}

// NewValidationBuilder creates a new validation builder
func NewValidationBuilder() *ValidationBuilder {
	return &ValidationBuilder{err: NewValidationError()}
}

// Field adds a validation error for a field
func (vb *ValidationBuilder) Field(field, message string) *ValidationBuilder {
	vb.err.AddFieldError(field, message)
	return vb
}

// RequiredField marks a missing dependency or setting
func (vb *ValidationBuilder) RequiredField(field string) *ValidationBuilder {
	return vb.Field(field, "is required")
}

// InvalidField marks a present but unusable value
func (vb *ValidationBuilder) InvalidField(field, reason string) *ValidationBuilder {
	return vb.Field(field, "is invalid: "+reason)
}

// Build returns the collected error, or nil
func (vb *ValidationBuilder) Build() error {
	if vb.err.HasErrors() {
		return vb.err.ToError()
	}
	return nil
}

// ValidateRequired flags a blank string setting
func ValidateRequired(field, value string, vb *ValidationBuilder) {
	if strings.TrimSpace(value) == "" {
		vb.RequiredField(field)
	}
}

// ValidateRange flags an int outside [minValue, maxValue]
func ValidateRange(field string, value, minValue, maxValue int, vb *ValidationBuilder) {
	if value < minValue || value > maxValue {
		vb.Field(field, fmt.Sprintf("must be between %d and %d", minValue, maxValue))
	}
}

// ValidateEnum flags a value not in allowed
func ValidateEnum(field, value string, allowed []string, vb *ValidationBuilder) {
	for _, a := range allowed {
		if value == a {
			return
		}
	}
	vb.Field(field, "must be one of: "+strings.Join(allowed, ", "))
}

// ValidateNonNegative flags a negative timeout or TTL. Zero means "use the
// default" or "no expiry" depending on the setting.
func ValidateNonNegative(field string, d time.Duration, vb *ValidationBuilder) {
	if d < 0 {
		vb.Field(field, "must not be negative")
	}
}

// ValidateAbsoluteURL flags a URL without a scheme and host
func ValidateAbsoluteURL(field, raw string, vb *ValidationBuilder) {
	if u, err := url.Parse(raw); err != nil || u.Scheme == "" || u.Host == "" {
		vb.InvalidField(field, "must be an absolute URL")
	}
}
