package validator

import (
	"strings"
)

// Result holds a validation outcome. Missing flags each required field that
// failed the presence check, keyed by its form label.
type Result struct {
	Valid   bool
	Missing map[string]bool
}

// Validator performs required-field presence checks on form drafts
type Validator struct {
	required []string
}

// NewValidator creates a validator for the given required field labels
func NewValidator(required ...string) *Validator {
	return &Validator{required: required}
}

// Validate checks that every required field has a non-blank value. values
// maps field labels to the draft's current values.
func (v *Validator) Validate(values map[string]string) Result {
	result := Result{Valid: true, Missing: make(map[string]bool)}

	for _, field := range v.required {
		if strings.TrimSpace(values[field]) == "" {
			result.Valid = false
			result.Missing[field] = true
		}
	}

	return result
}
