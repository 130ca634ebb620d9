// Package response writes the JSON bodies returned by the studio API.
//
// Successful responses carry the resource itself (an object or an array).
// Failures carry {"error": ..., "code": ...}, where error is a short message,
// or the list of failing fields for validation errors.
package response

import (
	"net/http"

	domainerrors "studio/internal/domain/errors"

	"github.com/labstack/echo/v4"
)

// ErrorResponse defines the structure for error responses
type ErrorResponse struct {
	Error any    `json:"error"`
	Code  string `json:"code"`
}

// Success writes data as the whole response body.
func Success(c echo.Context, statusCode int, data any) error {
	return c.JSON(statusCode, data)
}

// OK returns a 200 response with data as the body
func OK(c echo.Context, data any) error {
	return Success(c, http.StatusOK, data)
}

// Created returns a 201 response with the new resource as the body
func Created(c echo.Context, data any) error {
	return Success(c, http.StatusCreated, data)
}

// Error returns an error response
func Error(c echo.Context, statusCode int, errorCode string, message string) error {
	return c.JSON(statusCode, ErrorResponse{
		Error: message,
		Code:  errorCode,
	})
}

// ValidationFailed returns a 400 listing every failing field.
func ValidationFailed(c echo.Context, vErr *domainerrors.ValidationError) error {
	issues := vErr.Issues
	if issues == nil {
		issues = []domainerrors.ValidationIssue{}
	}

	return c.JSON(vErr.HTTPCode(), ErrorResponse{
		Error: issues,
		Code:  vErr.ErrorCode(),
	})
}
