package validators

import (
	"github.com/go-playground/validator/v10"
)

// Validate is the validator instance type used for config and payload checks.
type Validate = validator.Validate

// ValidationErrors aggregates per-field failures from a struct validation.
type ValidationErrors = validator.ValidationErrors

// FieldError describes a single failed field constraint.
type FieldError = validator.FieldError

// New returns a validator that also enforces required on nested structs.
func New() *Validate {
	return validator.New(validator.WithRequiredStructEnabled())
}
