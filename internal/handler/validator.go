package handler

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/sharonsgarden/garden-api/internal/domain"
)

// Validator wraps the validator instance
type Validator struct {
	validate *validator.Validate
}

// Global validator instance
var validate *Validator

// InitValidator initializes the global validator
func InitValidator() {
	v := validator.New()

	// Register custom validation for seed kind
	_ = v.RegisterValidation("seedkind", validateSeedKind)

	validate = &Validator{validate: v}
}

// GetValidator returns the global validator instance
func GetValidator() *Validator {
	if validate == nil {
		InitValidator()
	}
	return validate
}

// ValidateStruct validates a struct using tags
func (v *Validator) ValidateStruct(s interface{}) error {
	return v.validate.Struct(s)
}

// FormatValidationError formats validation errors into a user-friendly map.
// This prevents leaking internal struct names and provides cleaner error messages.
func FormatValidationError(err error) map[string]string {
	if err == nil {
		return nil
	}

	errs := make(map[string]string)

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		errs["error"] = "Invalid request format"
		return errs
	}

	for _, e := range validationErrors {
		field := strings.ToLower(e.Field())
		switch e.Tag() {
		case "required":
			errs[field] = "This field is required"
		case "seedkind":
			errs[field] = "Unknown seed kind"
		case "max":
			errs[field] = fmt.Sprintf("Must be at most %s characters", e.Param())
		case "min":
			errs[field] = fmt.Sprintf("Must be at least %s characters", e.Param())
		case "hexcolor":
			errs[field] = "Must be a hex color like #a1b2c3"
		default:
			errs[field] = "Invalid value"
		}
	}

	return errs
}

// validateSeedKind checks the value against the known seed kinds
func validateSeedKind(fl validator.FieldLevel) bool {
	kind := fl.Field().String()
	if kind == "" {
		return true
	}
	return domain.ValidSeedKind(domain.SeedKind(strings.ToLower(kind)))
}
