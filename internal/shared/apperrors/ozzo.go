package apperrors

import (
	"fmt"
	"sort"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// FromValidation converts an ozzo-validation result into a
// VALIDATION_FAILED error carrying every violation. Field order is
// alphabetical (ozzo errors are a map); nil passes through.
func FromValidation(err error) error {
	if err == nil {
		return nil
	}

	errs, ok := err.(validation.Errors)
	if !ok {
		return NewValidationFailed([]string{err.Error()})
	}

	fields := make([]string, 0, len(errs))
	for field := range errs {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	violations := make([]string, 0, len(errs))
	for _, field := range fields {
		violations = append(violations, fmt.Sprintf("%s: %v", field, errs[field]))
	}

	return NewValidationFailed(violations)
}
