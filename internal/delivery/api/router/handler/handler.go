// Package handler contains the echo handlers of the studio API.
package handler

import (
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"

	"studio/internal/delivery/api/response"
	domainerrors "studio/internal/domain/errors"
	"studio/internal/errors"
	"studio/internal/usecase"

	"github.com/labstack/echo/v4"
)

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.OK(c, map[string]string{"status": "ok"})
}

// parseID reads a positive integer path parameter.
func parseID(c echo.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id < 1 {
		return 0, domainerrors.ErrInvalidID.WithDetails(name + "=" + c.Param(name))
	}

	return id, nil
}

// optionalForm returns nil for an absent or blank form field.
func optionalForm(c echo.Context, name string) *string {
	value := c.FormValue(name)
	if strings.TrimSpace(value) == "" {
		return nil
	}

	return &value
}

// openFormFile opens the named multipart file. A missing file, or a request
// that is not multipart at all, returns no attachment and no error.
// The caller closes the returned file.
func openFormFile(c echo.Context, name string) (*usecase.Attachment, multipart.File, error) {
	header, err := c.FormFile(name)
	if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
		return nil, nil, nil
	}
	if err != nil {
		return nil, nil, domainerrors.ErrInvalidInput.WithDetails(err.Error())
	}

	file, err := header.Open()
	if err != nil {
		return nil, nil, errors.Wrapf(err, "open form file %s", name)
	}

	contentType := header.Header.Get(echo.HeaderContentType)
	if contentType == "" {
		contentType = echo.MIMEOctetStream
	}

	return &usecase.Attachment{
		FileName:    header.Filename,
		ContentType: contentType,
		Body:        file,
	}, file, nil
}
