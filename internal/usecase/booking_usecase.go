package usecase

import (
	"context"
	"io"
	"strings"

	"studio/internal/domain/entity"
)

// Attachment is an uploaded file carried by a form.
type Attachment struct {
	FileName    string
	ContentType string
	Body        io.Reader
}

// CreateBookingInput defines the booking form.
type CreateBookingInput struct {
	Name     string  `json:"name" form:"name" validate:"required,max=200"`
	Email    string  `json:"email" form:"email" validate:"required,email"`
	Phone    string  `json:"phone" form:"phone" validate:"required,min=10,max=50"`
	Date     string  `json:"date" form:"date" validate:"required,datetime=2006-01-02"`
	Time     string  `json:"time" form:"time" validate:"required,max=50"`
	Location string  `json:"location" form:"location" validate:"required,max=200"`
	Service  string  `json:"service" form:"service" validate:"required,max=200"`
	Notes    *string `json:"notes" form:"notes" validate:"omitempty,max=5000"`

	// Confirmation is the optional payment confirmation file.
	Confirmation *Attachment `json:"-" form:"-"`
}

func (in *CreateBookingInput) Normalize() {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.TrimSpace(in.Email)
	in.Phone = strings.TrimSpace(in.Phone)
	in.Date = strings.TrimSpace(in.Date)
	in.Time = strings.TrimSpace(in.Time)
	in.Location = strings.TrimSpace(in.Location)
	in.Service = strings.TrimSpace(in.Service)
	in.Notes = trimPtr(in.Notes)
}

// BookingUsecase defines the booking form operations.
type BookingUsecase interface {
	Create(ctx context.Context, input *CreateBookingInput) (*entity.Booking, error)
	List(ctx context.Context) ([]*entity.Booking, error)
}
