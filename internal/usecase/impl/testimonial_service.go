package impl

import (
	"context"
	"log/slog"

	"studio/internal/domain/entity"
	domainerrors "studio/internal/domain/errors"
	"studio/internal/domain/repository"
	"studio/internal/domain/service"
	"studio/internal/errors"
	"studio/internal/usecase"
)

type testimonialService struct {
	testimonialRepo repository.TestimonialRepository
	events          eventEmitter
}

// NewTestimonialService creates the testimonial usecase.
func NewTestimonialService(
	testimonialRepo repository.TestimonialRepository,
	publisher service.EventPublisher,
	logger *slog.Logger,
) usecase.TestimonialUsecase {
	return &testimonialService{
		testimonialRepo: testimonialRepo,
		events:          newEventEmitter(publisher, logger),
	}
}

func (s *testimonialService) ListApproved(ctx context.Context) ([]*entity.Testimonial, error) {
	approved := true

	testimonials, err := s.testimonialRepo.List(ctx, repository.TestimonialFilter{Approved: &approved})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list approved testimonials")
	}

	return testimonials, nil
}

func (s *testimonialService) ListAll(ctx context.Context) ([]*entity.Testimonial, error) {
	testimonials, err := s.testimonialRepo.List(ctx, repository.TestimonialFilter{})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list testimonials")
	}

	return testimonials, nil
}

// Submit stores a new testimonial awaiting moderation.
func (s *testimonialService) Submit(ctx context.Context, input *usecase.SubmitTestimonialInput) (*entity.Testimonial, error) {
	testimonial := &entity.Testimonial{
		Name:    input.Name,
		Service: input.Service,
		Quote:   input.Quote,
		Rating:  *input.Rating,
	}

	if err := s.testimonialRepo.Create(ctx, testimonial); err != nil {
		return nil, errors.Wrap(err, "failed to create testimonial")
	}

	s.events.emit(ctx, service.EventTestimonialSubmitted, testimonial.ID, testimonial.Name)

	return testimonial, nil
}

func (s *testimonialService) SetApproval(ctx context.Context, id int64, approved bool) (*entity.Testimonial, error) {
	testimonial, err := s.testimonialRepo.SetApproved(ctx, id, approved)
	if errors.Is(err, repository.ErrTestimonialNotFound) {
		return nil, errors.Wrapf(domainerrors.ErrTestimonialNotFound, "testimonial %d", id)
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to set testimonial approval")
	}

	return testimonial, nil
}
