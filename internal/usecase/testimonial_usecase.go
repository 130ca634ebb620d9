package usecase

import (
	"context"
	"strings"

	"studio/internal/domain/entity"
)

// SubmitTestimonialInput defines the public testimonial body. Approval is never accepted from input.
type SubmitTestimonialInput struct {
	Name    string  `json:"name" validate:"required,max=200"`
	Service *string `json:"service" validate:"omitempty,max=200"`
	Quote   string  `json:"quote" validate:"required,max=2000"`
	Rating  *int    `json:"rating" validate:"required,min=1,max=5"`
}

func (in *SubmitTestimonialInput) Normalize() {
	in.Name = strings.TrimSpace(in.Name)
	in.Service = trimPtr(in.Service)
	in.Quote = strings.TrimSpace(in.Quote)
}

// SetApprovalInput defines a moderation decision.
type SetApprovalInput struct {
	IsApproved *bool `json:"is_approved" validate:"required"`
}

// TestimonialUsecase defines the testimonial operations.
type TestimonialUsecase interface {
	ListApproved(ctx context.Context) ([]*entity.Testimonial, error)
	ListAll(ctx context.Context) ([]*entity.Testimonial, error)
	Submit(ctx context.Context, input *SubmitTestimonialInput) (*entity.Testimonial, error)
	SetApproval(ctx context.Context, id int64, approved bool) (*entity.Testimonial, error)
}
