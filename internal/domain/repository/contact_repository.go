package repository

import (
	"context"

	"studio/internal/domain/entity"

	"github.com/pkg/errors"
)

// ErrContactSubmissionNotFound is returned when a contact submission is not found.
var ErrContactSubmissionNotFound = errors.New("contact submission not found")

// ContactRepository defines the interface for contact form persistence.
type ContactRepository interface {
	Create(ctx context.Context, submission *entity.ContactSubmission) error
	FindByID(ctx context.Context, id int64) (*entity.ContactSubmission, error)
	List(ctx context.Context) ([]*entity.ContactSubmission, error)
}
