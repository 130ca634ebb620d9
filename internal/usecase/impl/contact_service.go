package impl

import (
	"context"
	"log/slog"

	"studio/config"
	"studio/internal/domain/entity"
	domainerrors "studio/internal/domain/errors"
	"studio/internal/domain/repository"
	"studio/internal/domain/service"
	"studio/internal/errors"
	"studio/internal/usecase"

	"go.uber.org/fx"
)

type contactService struct {
	contactRepo repository.ContactRepository
	qrcode      service.QRCodeService
	events      eventEmitter
	whatsAppURL string
}

// ContactServiceParams holds dependencies for ContactService, injected by Fx.
type ContactServiceParams struct {
	fx.In

	ContactRepo repository.ContactRepository
	QRCode      service.QRCodeService
	Publisher   service.EventPublisher
	Config      *config.Config
	Logger      *slog.Logger
}

// NewContactService creates the contact form usecase.
func NewContactService(params ContactServiceParams) usecase.ContactUsecase {
	return &contactService{
		contactRepo: params.ContactRepo,
		qrcode:      params.QRCode,
		events:      newEventEmitter(params.Publisher, params.Logger),
		whatsAppURL: params.Config.Contact.WhatsAppURL,
	}
}

func (s *contactService) Submit(ctx context.Context, input *usecase.SubmitContactInput) (*entity.ContactSubmission, error) {
	submission := &entity.ContactSubmission{
		Name:    input.Name,
		Email:   input.Email,
		Phone:   input.Phone,
		Service: input.Service,
		Message: input.Message,
	}

	if err := s.contactRepo.Create(ctx, submission); err != nil {
		return nil, errors.Wrap(err, "failed to create contact submission")
	}

	s.events.emit(ctx, service.EventContactSubmitted, submission.ID, submission.Name+" <"+submission.Email+">")

	return submission, nil
}

func (s *contactService) ListSubmissions(ctx context.Context) ([]*entity.ContactSubmission, error) {
	submissions, err := s.contactRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list contact submissions")
	}

	return submissions, nil
}

func (s *contactService) WhatsAppQR(_ context.Context) ([]byte, error) {
	if s.whatsAppURL == "" {
		return nil, errors.Wrap(domainerrors.ErrNotFound, "no whatsapp link configured")
	}

	png, err := s.qrcode.GenerateLinkQR(s.whatsAppURL)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrQRCodeFailed.WithDetails(err.Error()), "generate whatsapp qr")
	}

	return png, nil
}
