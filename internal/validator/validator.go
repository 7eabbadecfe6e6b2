// Package validator checks generated records against the numeric and
// structural bounds declared as struct tags on the models.
package validator

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Validator is a wrapper around the validator library.
type Validator struct {
	validate *validator.Validate
}

// New creates a new Validator instance.
func New() *Validator {
	return &Validator{
		validate: validator.New(),
	}
}

// ValidateStruct validates a single record based on its tags.
func (v *Validator) ValidateStruct(s interface{}) error {
	if err := v.validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}
	return nil
}

// ValidateBatch validates every record in a generated batch and
// reports the first violation with its index.
func ValidateBatch[T any](v *Validator, batch []T) error {
	for i := range batch {
		if err := v.ValidateStruct(batch[i]); err != nil {
			return fmt.Errorf("record %d: %w", i, err)
		}
	}
	return nil
}
