package request

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/shoplane/admin-backend/internal/pkg/apperror"
)

// BindingError converts a gin binding failure into a structured validation
// error. validator.ValidationErrors carries every violated field, so the
// client learns about all problems in one round trip.
func BindingError(err error) error {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		violations := make([]apperror.FieldViolation, 0, len(verrs))
		for _, fe := range verrs {
			violations = append(violations, apperror.FieldViolation{
				Field:   fieldName(fe),
				Message: violationMessage(fe),
			})
		}
		return apperror.NewValidation(violations)
	}

	return apperror.Wrap(err, 400, "invalid request payload")
}

func fieldName(fe validator.FieldError) string {
	// StructNamespace is "CreateRequest.Name"; keep the leaf in snake-ish form.
	parts := strings.Split(fe.StructNamespace(), ".")
	return toSnake(parts[len(parts)-1])
}

func violationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "uuid":
		return "must be a valid UUID"
	case "min":
		if fe.Kind().String() == "string" {
			return fmt.Sprintf("must be at least %s characters", fe.Param())
		}
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max":
		if fe.Kind().String() == "string" {
			return fmt.Sprintf("must be at most %s characters", fe.Param())
		}
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "gt":
		return fmt.Sprintf("must be greater than %s", fe.Param())
	case "gte":
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "oneof":
		return fmt.Sprintf("must be one of: %s", strings.ReplaceAll(fe.Param(), " ", ", "))
	case "dive":
		return "contains an invalid element"
	default:
		return fmt.Sprintf("failed %q validation", fe.Tag())
	}
}

func toSnake(s string) string {
	var b strings.Builder
	for i, r := range s {
		if r >= 'A' && r <= 'Z' {
			if i > 0 {
				b.WriteByte('_')
			}
			b.WriteRune(r + ('a' - 'A'))
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}
