package postgres

import (
	"context"

	"studio/internal/domain/entity"
	domainerrors "studio/internal/domain/errors"
	"studio/internal/domain/repository"
	"studio/internal/errors"
	"studio/internal/infra/persistence/model"

	"gorm.io/gorm"
)

type contactRepository struct {
	db *gorm.DB
}

// NewContactRepository creates a new contact submission repository.
func NewContactRepository(db *gorm.DB) repository.ContactRepository {
	return &contactRepository{db: db}
}

func (repo *contactRepository) Create(ctx context.Context, submission *entity.ContactSubmission) error {
	submissionM := fromContactDomain(submission)
	if err := repo.db.WithContext(ctx).Create(submissionM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create contact submission")
	}

	submission.ID = submissionM.ID
	submission.CreatedAt = submissionM.CreatedAt

	return nil
}

func (repo *contactRepository) FindByID(ctx context.Context, id int64) (*entity.ContactSubmission, error) {
	var submissionM model.ContactSubmissionModel
	if err := repo.db.WithContext(ctx).First(&submissionM, id).Error; err != nil {
		if isRecordNotFound(err) {
			return nil, errors.WithStack(repository.ErrContactSubmissionNotFound)
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find contact submission")
	}

	return toContactDomain(&submissionM), nil
}

func (repo *contactRepository) List(ctx context.Context) ([]*entity.ContactSubmission, error) {
	var submissions []model.ContactSubmissionModel
	if err := repo.db.WithContext(ctx).Order("id ASC").Find(&submissions).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list contact submissions")
	}

	result := make([]*entity.ContactSubmission, 0, len(submissions))
	for i := range submissions {
		result = append(result, toContactDomain(&submissions[i]))
	}

	return result, nil
}

type testimonialRepository struct {
	db *gorm.DB
}

// NewTestimonialRepository creates a new testimonial repository.
func NewTestimonialRepository(db *gorm.DB) repository.TestimonialRepository {
	return &testimonialRepository{db: db}
}

func (repo *testimonialRepository) Create(ctx context.Context, testimonial *entity.Testimonial) error {
	testimonialM := fromTestimonialDomain(testimonial)
	testimonialM.IsApproved = false

	if err := repo.db.WithContext(ctx).Create(testimonialM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create testimonial")
	}

	testimonial.ID = testimonialM.ID
	testimonial.IsApproved = false
	testimonial.CreatedAt = testimonialM.CreatedAt

	return nil
}

func (repo *testimonialRepository) FindByID(ctx context.Context, id int64) (*entity.Testimonial, error) {
	var testimonialM model.TestimonialModel
	if err := repo.db.WithContext(ctx).First(&testimonialM, id).Error; err != nil {
		if isRecordNotFound(err) {
			return nil, errors.WithStack(repository.ErrTestimonialNotFound)
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find testimonial")
	}

	return toTestimonialDomain(&testimonialM), nil
}

func (repo *testimonialRepository) List(ctx context.Context, filter repository.TestimonialFilter) ([]*entity.Testimonial, error) {
	query := repo.db.WithContext(ctx).Order("id ASC")
	if filter.Approved != nil {
		query = query.Where("is_approved = ?", *filter.Approved)
	}

	var testimonials []model.TestimonialModel
	if err := query.Find(&testimonials).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list testimonials")
	}

	result := make([]*entity.Testimonial, 0, len(testimonials))
	for i := range testimonials {
		result = append(result, toTestimonialDomain(&testimonials[i]))
	}

	return result, nil
}

func (repo *testimonialRepository) SetApproved(ctx context.Context, id int64, approved bool) (*entity.Testimonial, error) {
	res := repo.db.WithContext(ctx).
		Model(&model.TestimonialModel{}).
		Where("id = ?", id).
		Update("is_approved", approved)
	if res.Error != nil {
		return nil, domainerrors.NewDatabaseExecuteError(res.Error, "failed to update testimonial approval")
	}
	if res.RowsAffected == 0 {
		return nil, errors.WithStack(repository.ErrTestimonialNotFound)
	}

	return repo.FindByID(ctx, id)
}

type bookingRepository struct {
	db *gorm.DB
}

// NewBookingRepository creates a new booking repository.
func NewBookingRepository(db *gorm.DB) repository.BookingRepository {
	return &bookingRepository{db: db}
}

func (repo *bookingRepository) Create(ctx context.Context, booking *entity.Booking) error {
	bookingM := fromBookingDomain(booking)
	if err := repo.db.WithContext(ctx).Create(bookingM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create booking")
	}

	booking.ID = bookingM.ID
	booking.CreatedAt = bookingM.CreatedAt

	return nil
}

func (repo *bookingRepository) FindByID(ctx context.Context, id int64) (*entity.Booking, error) {
	var bookingM model.BookingModel
	if err := repo.db.WithContext(ctx).First(&bookingM, id).Error; err != nil {
		if isRecordNotFound(err) {
			return nil, errors.WithStack(repository.ErrBookingNotFound)
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find booking")
	}

	return toBookingDomain(&bookingM), nil
}

func (repo *bookingRepository) List(ctx context.Context) ([]*entity.Booking, error) {
	var bookings []model.BookingModel
	if err := repo.db.WithContext(ctx).Order("id ASC").Find(&bookings).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list bookings")
	}

	result := make([]*entity.Booking, 0, len(bookings))
	for i := range bookings {
		result = append(result, toBookingDomain(&bookings[i]))
	}

	return result, nil
}

// --- Mapper Functions ---

func toContactDomain(data *model.ContactSubmissionModel) *entity.ContactSubmission {
	return &entity.ContactSubmission{
		ID:        data.ID,
		Name:      data.Name,
		Email:     data.Email,
		Phone:     data.Phone,
		Service:   data.Service,
		Message:   data.Message,
		CreatedAt: data.CreatedAt,
	}
}

func fromContactDomain(data *entity.ContactSubmission) *model.ContactSubmissionModel {
	return &model.ContactSubmissionModel{
		ID:      data.ID,
		Name:    data.Name,
		Email:   data.Email,
		Phone:   data.Phone,
		Service: data.Service,
		Message: data.Message,
	}
}

func toTestimonialDomain(data *model.TestimonialModel) *entity.Testimonial {
	return &entity.Testimonial{
		ID:         data.ID,
		Name:       data.Name,
		Service:    data.Service,
		Quote:      data.Quote,
		Rating:     data.Rating,
		IsApproved: data.IsApproved,
		CreatedAt:  data.CreatedAt,
	}
}

func fromTestimonialDomain(data *entity.Testimonial) *model.TestimonialModel {
	return &model.TestimonialModel{
		ID:         data.ID,
		Name:       data.Name,
		Service:    data.Service,
		Quote:      data.Quote,
		Rating:     data.Rating,
		IsApproved: data.IsApproved,
	}
}

func toBookingDomain(data *model.BookingModel) *entity.Booking {
	return &entity.Booking{
		ID:        data.ID,
		Name:      data.Name,
		Email:     data.Email,
		Phone:     data.Phone,
		Date:      data.Date,
		Time:      data.Time,
		Location:  data.Location,
		Service:   data.Service,
		Notes:     data.Notes,
		FileURL:   data.FileURL,
		CreatedAt: data.CreatedAt,
	}
}

func fromBookingDomain(data *entity.Booking) *model.BookingModel {
	return &model.BookingModel{
		ID:       data.ID,
		Name:     data.Name,
		Email:    data.Email,
		Phone:    data.Phone,
		Date:     data.Date,
		Time:     data.Time,
		Location: data.Location,
		Service:  data.Service,
		Notes:    data.Notes,
		FileURL:  data.FileURL,
	}
}
