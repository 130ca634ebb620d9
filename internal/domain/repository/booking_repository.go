package repository

import (
	"context"

	"studio/internal/domain/entity"

	"github.com/pkg/errors"
)

// ErrBookingNotFound is returned when a booking is not found.
var ErrBookingNotFound = errors.New("booking not found")

// BookingRepository defines the interface for booking persistence.
type BookingRepository interface {
	Create(ctx context.Context, booking *entity.Booking) error
	FindByID(ctx context.Context, id int64) (*entity.Booking, error)
	List(ctx context.Context) ([]*entity.Booking, error)
}
