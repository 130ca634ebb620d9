package repository

import (
	"context"

	"studio/internal/domain/entity"

	"github.com/pkg/errors"
)

// ErrTestimonialNotFound is returned when a testimonial is not found.
var ErrTestimonialNotFound = errors.New("testimonial not found")

// TestimonialFilter narrows List. A nil Approved returns every testimonial.
type TestimonialFilter struct {
	Approved *bool
}

// TestimonialRepository defines the interface for testimonial persistence.
type TestimonialRepository interface {
	// Create persists a new testimonial. It is always stored unapproved.
	Create(ctx context.Context, testimonial *entity.Testimonial) error
	FindByID(ctx context.Context, id int64) (*entity.Testimonial, error)
	List(ctx context.Context, filter TestimonialFilter) ([]*entity.Testimonial, error)

	// SetApproved is the moderation path; it is the only way IsApproved changes.
	SetApproved(ctx context.Context, id int64, approved bool) (*entity.Testimonial, error)
}
