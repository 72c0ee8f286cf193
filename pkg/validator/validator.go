package validator

import (
	"errors"
	"regexp"

	"github.com/go-playground/validator/v10"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var (
	// codes are matched in any case and passed on unchanged
	iataAirportPattern = regexp.MustCompile(`(?i)^[A-Z]{3}$`)
	carrierPattern     = regexp.MustCompile(`(?i)^[A-Z0-9]{2}$`)
	countryPattern     = regexp.MustCompile(`(?i)^[A-Z]{2}$`)
	timeOfDayPattern   = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)
	pricePattern       = regexp.MustCompile(`(?i)^[A-Z]{3}[0-9]+(\.[0-9]+)?$`)
)

// Validator defines the interface for validation operations
type Validator interface {
	ValidateStruct(s any) map[string]string
}

// validatorImpl implements the Validator interface
type validatorImpl struct {
	validate *validator.Validate
}

// NewValidator creates a go-playground validator with the flight-search tags registered:
// iata (airport code), carrier (airline designator), country, hhmm (time of day) and
// price (currency-prefixed amount, e.g. EUR200).
func NewValidator() Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	mustRegister(v, "iata", iataAirportPattern)
	mustRegister(v, "carrier", carrierPattern)
	mustRegister(v, "country", countryPattern)
	mustRegister(v, "hhmm", timeOfDayPattern)
	mustRegister(v, "price", pricePattern)
	return &validatorImpl{validate: v}
}

func mustRegister(v *validator.Validate, tag string, pattern *regexp.Regexp) {
	err := v.RegisterValidation(tag, func(fl validator.FieldLevel) bool {
		return pattern.MatchString(fl.Field().String())
	})
	if err != nil {
		panic(err)
	}
}

// ValidateStruct validates a struct and returns field-specific errors
func (v *validatorImpl) ValidateStruct(s any) map[string]string {
	err := v.validate.Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return map[string]string{"": err.Error()}
	}

	validationErrors := make(map[string]string, len(fieldErrs))
	for _, fieldErr := range fieldErrs {
		fieldName := prettifyFieldName(fieldErr.Field())
		validationErrors[fieldErr.Field()] = formatValidationError(fieldErr, fieldName)
	}

	return validationErrors
}

// formatValidationError returns a more descriptive error message based on the validation tag
func formatValidationError(err validator.FieldError, fieldName string) string {
	switch err.Tag() {
	case "required":
		return fieldName + " is required"
	case "iata":
		return fieldName + " must be a 3-letter IATA airport code"
	case "carrier":
		return fieldName + " must be a 2-character IATA airline designator"
	case "country":
		return fieldName + " must be a 2-letter country code"
	case "hhmm":
		return fieldName + " must be a time of day in HH:MM format"
	case "price":
		return fieldName + " must be a currency-prefixed amount such as EUR200"
	case "min":
		return fieldName + " must be at least " + err.Param()
	case "max":
		return fieldName + " must be at most " + err.Param()
	case "gte":
		return fieldName + " must be greater than or equal to " + err.Param()
	case "lte":
		return fieldName + " must be less than or equal to " + err.Param()
	case "gt":
		return fieldName + " must be greater than " + err.Param()
	case "oneof":
		return fieldName + " must be one of the following: " + err.Param()
	case "excluded_with":
		return fieldName + " cannot be combined with " + prettifyFieldName(err.Param())
	default:
		return fieldName + " is invalid"
	}
}

// prettifyFieldName turns a camelCase or PascalCase field into a human-readable string
func prettifyFieldName(field string) string {
	var result []rune
	for i, r := range field {
		if i > 0 && r >= 'A' && r <= 'Z' && field[i-1] >= 'a' && field[i-1] <= 'z' {
			result = append(result, ' ')
		}
		result = append(result, r)
	}
	return cases.Title(language.Und, cases.NoLower).String(string(result))
}
