// Package validator adapts go-playground/validator to echo and turns rule
// failures into the field-level issue list returned to clients.
package validator

import (
	"fmt"
	"reflect"
	"strings"

	domainerrors "studio/internal/domain/errors"
	"studio/internal/errors"
	"studio/internal/usecase"

	playground "github.com/go-playground/validator/v10"
)

// Validator implements echo.Validator.
type Validator struct {
	validate *playground.Validate
}

// New creates a validator that reports fields by their JSON (or form) names.
func New() *Validator {
	v := playground.New(playground.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(fieldName)

	return &Validator{validate: v}
}

// Validate normalizes the input when it knows how, then checks every rule.
// All failing fields are reported, not only the first one.
func (v *Validator) Validate(i any) error {
	if n, ok := i.(usecase.Normalizer); ok {
		n.Normalize()
	}

	err := v.validate.Struct(i)
	if err == nil {
		return nil
	}

	var fieldErrs playground.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return errors.Wrap(err, "validate struct")
	}

	issues := make([]domainerrors.ValidationIssue, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		issues = append(issues, domainerrors.ValidationIssue{
			Field:   fieldPath(fe.Namespace()),
			Code:    fe.Tag(),
			Message: issueMessage(fe),
		})
	}

	return domainerrors.NewValidationError(issues...)
}

func fieldName(fld reflect.StructField) string {
	for _, tag := range []string{"json", "form"} {
		name := strings.SplitN(fld.Tag.Get(tag), ",", 2)[0]
		if name != "" && name != "-" {
			return name
		}
	}

	return ""
}

// fieldPath drops the root struct name: "SubmitContactInput.email" -> "email".
func fieldPath(namespace string) string {
	if _, rest, ok := strings.Cut(namespace, "."); ok {
		return rest
	}

	return namespace
}

func issueMessage(fe playground.FieldError) string {
	isString := fe.Kind() == reflect.String

	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "min":
		if isString {
			return fmt.Sprintf("must be at least %s characters long", fe.Param())
		}

		return "must be at least " + fe.Param()
	case "max":
		if isString {
			return fmt.Sprintf("must be at most %s characters long", fe.Param())
		}

		return "must be at most " + fe.Param()
	case "datetime":
		return "must match the format " + fe.Param()
	default:
		return fmt.Sprintf("failed the %q rule", fe.Tag())
	}
}
