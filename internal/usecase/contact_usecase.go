package usecase

import (
	"context"
	"strings"

	"studio/internal/domain/entity"
)

// SubmitContactInput defines the contact form body.
type SubmitContactInput struct {
	Name    string  `json:"name" validate:"required,min=2,max=200"`
	Email   string  `json:"email" validate:"required,email"`
	Phone   *string `json:"phone" validate:"omitempty,max=50"`
	Service *string `json:"service" validate:"omitempty,max=200"`
	Message string  `json:"message" validate:"required,max=5000"`
}

func (in *SubmitContactInput) Normalize() {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.TrimSpace(in.Email)
	in.Phone = trimPtr(in.Phone)
	in.Service = trimPtr(in.Service)
	in.Message = strings.TrimSpace(in.Message)
}

// ContactUsecase defines the contact form operations.
type ContactUsecase interface {
	Submit(ctx context.Context, input *SubmitContactInput) (*entity.ContactSubmission, error)
	ListSubmissions(ctx context.Context) ([]*entity.ContactSubmission, error)

	// WhatsAppQR renders the studio chat link as a PNG QR code.
	WhatsAppQR(ctx context.Context) ([]byte, error)
}
