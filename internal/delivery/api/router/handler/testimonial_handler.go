package handler

import (
	"studio/internal/delivery/api/response"
	"studio/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// TestimonialHandlerParams holds dependencies for TestimonialHandler, injected by Fx.
type TestimonialHandlerParams struct {
	fx.In

	TestimonialUC usecase.TestimonialUsecase
}

// TestimonialHandler serves client reviews and their moderation.
type TestimonialHandler struct {
	testimonialUC usecase.TestimonialUsecase
}

// NewTestimonialHandler is the constructor for TestimonialHandler
func NewTestimonialHandler(params TestimonialHandlerParams) *TestimonialHandler {
	return &TestimonialHandler{testimonialUC: params.TestimonialUC}
}

// ListApproved handles GET /api/testimonials; unapproved reviews are never listed.
func (h *TestimonialHandler) ListApproved(c echo.Context) error {
	testimonials, err := h.testimonialUC.ListApproved(c.Request().Context())
	if err != nil {
		return err
	}

	return response.OK(c, testimonials)
}

// Submit handles POST /api/testimonials
func (h *TestimonialHandler) Submit(c echo.Context) error {
	var input usecase.SubmitTestimonialInput
	if err := bindAndValidate(c, &input); err != nil {
		return err
	}

	testimonial, err := h.testimonialUC.Submit(c.Request().Context(), &input)
	if err != nil {
		return err
	}

	return response.Created(c, testimonial)
}

// ListAll returns approved and pending reviews for staff.
func (h *TestimonialHandler) ListAll(c echo.Context) error {
	testimonials, err := h.testimonialUC.ListAll(c.Request().Context())
	if err != nil {
		return err
	}

	return response.OK(c, testimonials)
}

// SetApproval handles PATCH /api/admin/testimonials/:id/approval
func (h *TestimonialHandler) SetApproval(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	var input usecase.SetApprovalInput
	if err := bindAndValidate(c, &input); err != nil {
		return err
	}

	testimonial, err := h.testimonialUC.SetApproval(c.Request().Context(), id, *input.IsApproved)
	if err != nil {
		return err
	}

	return response.OK(c, testimonial)
}
