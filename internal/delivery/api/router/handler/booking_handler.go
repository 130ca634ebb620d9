package handler

import (
	"studio/internal/delivery/api/response"
	"studio/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// BookingHandlerParams holds dependencies for BookingHandler, injected by Fx.
type BookingHandlerParams struct {
	fx.In

	BookingUC usecase.BookingUsecase
}

// BookingHandler serves the booking form.
type BookingHandler struct {
	bookingUC usecase.BookingUsecase
}

// NewBookingHandler is the constructor for BookingHandler
func NewBookingHandler(params BookingHandlerParams) *BookingHandler {
	return &BookingHandler{bookingUC: params.BookingUC}
}

// Create handles POST /api/bookings. Fields come from a multipart or urlencoded form;
// the optional payment confirmation is the "confirmation" file.
func (h *BookingHandler) Create(c echo.Context) error {
	input := &usecase.CreateBookingInput{
		Name:     c.FormValue("name"),
		Email:    c.FormValue("email"),
		Phone:    c.FormValue("phone"),
		Date:     c.FormValue("date"),
		Time:     c.FormValue("time"),
		Location: c.FormValue("location"),
		Service:  c.FormValue("service"),
		Notes:    optionalForm(c, "notes"),
	}
	if err := c.Validate(input); err != nil {
		return err
	}

	attachment, file, err := openFormFile(c, "confirmation")
	if err != nil {
		return err
	}
	if file != nil {
		defer file.Close()
	}
	input.Confirmation = attachment

	booking, err := h.bookingUC.Create(c.Request().Context(), input)
	if err != nil {
		return err
	}

	return response.Created(c, booking)
}

// List returns every booking for staff.
func (h *BookingHandler) List(c echo.Context) error {
	bookings, err := h.bookingUC.List(c.Request().Context())
	if err != nil {
		return err
	}

	return response.OK(c, bookings)
}
