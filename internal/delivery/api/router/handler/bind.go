package handler

import (
	"bytes"
	"encoding/json"
	"io"
	"reflect"
	"slices"
	"strings"

	domainerrors "studio/internal/domain/errors"
	"studio/internal/errors"

	"github.com/labstack/echo/v4"
)

// bindAndValidate decodes the request into dst, then normalizes and validates it.
// Wrong-typed JSON fields are reported as issues next to the rule failures;
// a body that is not JSON at all is ErrInvalidInput.
func bindAndValidate(c echo.Context, dst any) error {
	body, err := bufferJSONBody(c)
	if err != nil {
		return domainerrors.ErrInvalidInput.WithDetails(err.Error())
	}

	bindErr := c.Bind(dst)
	if bindErr == nil {
		return c.Validate(dst)
	}

	var typeErr *json.UnmarshalTypeError
	if !errors.As(bindErr, &typeErr) {
		return domainerrors.ErrInvalidInput.WithDetails(bindErr.Error())
	}

	issues := typeIssues(body, dst)
	if len(issues) == 0 {
		issues = append(issues, domainerrors.ValidationIssue{
			Field:   typeErr.Field,
			Code:    "type",
			Message: typeMessage(typeErr.Type),
		})
	}

	var vErr *domainerrors.ValidationError
	if errors.As(c.Validate(dst), &vErr) {
		for _, issue := range vErr.Issues {
			if !slices.ContainsFunc(issues, func(i domainerrors.ValidationIssue) bool { return i.Field == issue.Field }) {
				issues = append(issues, issue)
			}
		}
	}

	return domainerrors.NewValidationError(issues...)
}

// bufferJSONBody reads a JSON body so it can be inspected after binding.
func bufferJSONBody(c echo.Context) ([]byte, error) {
	req := c.Request()
	if req.Body == nil || !strings.HasPrefix(req.Header.Get(echo.HeaderContentType), echo.MIMEApplicationJSON) {
		return nil, nil
	}

	body, err := io.ReadAll(req.Body)
	if err != nil {
		return nil, errors.Wrap(err, "read request body")
	}
	req.Body = io.NopCloser(bytes.NewReader(body))

	return body, nil
}

// typeIssues checks every top-level field of body against the type of the
// matching json-tagged field of dst, in struct field order.
func typeIssues(body []byte, dst any) []domainerrors.ValidationIssue {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil
	}

	t := reflect.TypeOf(dst)
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return nil
	}

	var issues []domainerrors.ValidationIssue
	for i := range t.NumField() {
		field := t.Field(i)
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "" || name == "-" || !field.IsExported() {
			continue
		}

		value, ok := raw[name]
		if !ok {
			continue
		}
		if err := json.Unmarshal(value, reflect.New(field.Type).Interface()); err != nil {
			issues = append(issues, domainerrors.ValidationIssue{
				Field:   name,
				Code:    "type",
				Message: typeMessage(field.Type),
			})
		}
	}

	return issues
}

func typeMessage(t reflect.Type) string {
	if t == nil {
		return "has the wrong type"
	}
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}

	switch t.Kind() {
	case reflect.String:
		return "must be a string"
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return "must be an integer"
	case reflect.Float32, reflect.Float64:
		return "must be a number"
	case reflect.Bool:
		return "must be a boolean"
	default:
		return "has the wrong type"
	}
}
