package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "studio/internal/delivery/context"
	"studio/internal/domain/entity"
	domainerrors "studio/internal/domain/errors"
	"studio/internal/domain/repository"
	"studio/internal/domain/service"
	"studio/internal/errors"
	"studio/internal/usecase"

	"go.uber.org/fx"
)

type bookingService struct {
	bookingRepo repository.BookingRepository
	storage     service.ObjectStorage
	events      eventEmitter
	logger      *slog.Logger
	now         func() time.Time
}

// BookingServiceParams holds dependencies for BookingService, injected by Fx.
type BookingServiceParams struct {
	fx.In

	BookingRepo repository.BookingRepository
	Storage     service.ObjectStorage
	Publisher   service.EventPublisher
	Logger      *slog.Logger
}

// NewBookingService creates the booking usecase.
func NewBookingService(params BookingServiceParams) usecase.BookingUsecase {
	return &bookingService{
		bookingRepo: params.BookingRepo,
		storage:     params.Storage,
		events:      newEventEmitter(params.Publisher, params.Logger),
		logger:      params.Logger,
		now:         time.Now,
	}
}

// Create uploads the optional confirmation before inserting; a failed upload inserts nothing.
func (s *bookingService) Create(ctx context.Context, input *usecase.CreateBookingInput) (*entity.Booking, error) {
	booking := &entity.Booking{
		Name:     input.Name,
		Email:    input.Email,
		Phone:    input.Phone,
		Date:     input.Date,
		Time:     input.Time,
		Location: input.Location,
		Service:  input.Service,
		Notes:    input.Notes,
	}

	if input.Confirmation != nil {
		key := confirmationObjectKey(s.now(), input.Confirmation.FileName)

		stored, err := s.storage.Upload(ctx, key, input.Confirmation.ContentType, input.Confirmation.Body)
		if err != nil {
			deliverycontext.LoggerFrom(ctx, s.logger).Error("Confirmation upload failed", slog.String("key", key), slog.Any("error", err))

			return nil, errors.Wrap(domainerrors.ErrUploadFailed.WithDetails(err.Error()), "upload payment confirmation")
		}
		booking.FileURL = &stored.PublicURL
	}

	if err := s.bookingRepo.Create(ctx, booking); err != nil {
		return nil, errors.Wrap(err, "failed to create booking")
	}

	s.events.emit(ctx, service.EventBookingCreated, booking.ID, booking.Service+" on "+booking.Date+" "+booking.Time)

	return booking, nil
}

func (s *bookingService) List(ctx context.Context) ([]*entity.Booking, error) {
	bookings, err := s.bookingRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list bookings")
	}

	return bookings, nil
}
