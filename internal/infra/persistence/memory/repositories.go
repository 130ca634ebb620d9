package memory

import (
	"bytes"
	"context"
	"time"

	"studio/internal/domain/entity"
	"studio/internal/domain/repository"
	"studio/internal/errors"
)

type userRepository struct {
	users *table[entity.User]
}

// NewUserRepository creates an empty in-memory user store.
func NewUserRepository() repository.UserRepository {
	return &userRepository{users: newTable(func(u *entity.User) *entity.User {
		c := *u
		c.Name = clonePtr(u.Name)

		return &c
	})}
}

func (r *userRepository) Create(_ context.Context, user *entity.User) error {
	r.users.mu.Lock()
	defer r.users.mu.Unlock()

	for _, existing := range r.users.rows {
		if existing.Username == user.Username {
			return errors.WithStack(repository.ErrDuplicateUsername)
		}
	}

	r.users.insertLocked(user, func(u *entity.User, id int64, createdAt time.Time) {
		u.ID, u.CreatedAt = id, createdAt
	})

	return nil
}

func (r *userRepository) FindByID(_ context.Context, id int64) (*entity.User, error) {
	user, ok := r.users.get(id)
	if !ok {
		return nil, errors.WithStack(repository.ErrUserNotFound)
	}

	return user, nil
}

func (r *userRepository) FindByUsername(_ context.Context, username string) (*entity.User, error) {
	user, ok := r.users.find(func(u *entity.User) bool { return u.Username == username })
	if !ok {
		return nil, errors.WithStack(repository.ErrUserNotFound)
	}

	return user, nil
}

type galleryRepository struct {
	images *table[entity.GalleryImage]
}

// NewGalleryRepository creates an empty in-memory gallery store.
func NewGalleryRepository() repository.GalleryRepository {
	return &galleryRepository{images: newTable(func(g *entity.GalleryImage) *entity.GalleryImage {
		c := *g
		c.Description = clonePtr(g.Description)

		return &c
	})}
}

func (r *galleryRepository) Create(_ context.Context, image *entity.GalleryImage) error {
	r.images.insert(image, func(g *entity.GalleryImage, id int64, createdAt time.Time) {
		g.ID, g.CreatedAt = id, createdAt
	})

	return nil
}

func (r *galleryRepository) FindByID(_ context.Context, id int64) (*entity.GalleryImage, error) {
	image, ok := r.images.get(id)
	if !ok {
		return nil, errors.WithStack(repository.ErrGalleryImageNotFound)
	}

	return image, nil
}

func (r *galleryRepository) List(_ context.Context, filter repository.GalleryFilter) ([]*entity.GalleryImage, error) {
	if filter.Category == nil {
		return r.images.list(nil), nil
	}
	category := *filter.Category

	return r.images.list(func(g *entity.GalleryImage) bool { return g.Category == category }), nil
}

type serviceRepository struct {
	services *table[entity.Service]
}

// NewServiceRepository creates an empty in-memory service package store.
func NewServiceRepository() repository.ServiceRepository {
	return &serviceRepository{services: newTable(func(s *entity.Service) *entity.Service {
		c := *s
		c.Description = clonePtr(s.Description)
		c.Duration = clonePtr(s.Duration)
		if s.Details != nil {
			c.Details = bytes.Clone(s.Details)
		}

		return &c
	})}
}

func (r *serviceRepository) Create(_ context.Context, service *entity.Service) error {
	r.services.insert(service, func(s *entity.Service, id int64, _ time.Time) {
		s.ID = id
	})

	return nil
}

func (r *serviceRepository) FindByID(_ context.Context, id int64) (*entity.Service, error) {
	service, ok := r.services.get(id)
	if !ok {
		return nil, errors.WithStack(repository.ErrServiceNotFound)
	}

	return service, nil
}

func (r *serviceRepository) List(_ context.Context) ([]*entity.Service, error) {
	return r.services.list(nil), nil
}

type contactRepository struct {
	submissions *table[entity.ContactSubmission]
}

// NewContactRepository creates an empty in-memory contact form store.
func NewContactRepository() repository.ContactRepository {
	return &contactRepository{submissions: newTable(func(s *entity.ContactSubmission) *entity.ContactSubmission {
		c := *s
		c.Phone = clonePtr(s.Phone)
		c.Service = clonePtr(s.Service)

		return &c
	})}
}

func (r *contactRepository) Create(_ context.Context, submission *entity.ContactSubmission) error {
	r.submissions.insert(submission, func(s *entity.ContactSubmission, id int64, createdAt time.Time) {
		s.ID, s.CreatedAt = id, createdAt
	})

	return nil
}

func (r *contactRepository) FindByID(_ context.Context, id int64) (*entity.ContactSubmission, error) {
	submission, ok := r.submissions.get(id)
	if !ok {
		return nil, errors.WithStack(repository.ErrContactSubmissionNotFound)
	}

	return submission, nil
}

func (r *contactRepository) List(_ context.Context) ([]*entity.ContactSubmission, error) {
	return r.submissions.list(nil), nil
}

type orderRepository struct {
	orders *table[entity.Order]
}

// NewOrderRepository creates an empty in-memory order store.
func NewOrderRepository() repository.OrderRepository {
	return &orderRepository{orders: newTable(func(o *entity.Order) *entity.Order {
		c := *o
		c.UserID = clonePtr(o.UserID)
		c.ServiceID = clonePtr(o.ServiceID)
		c.SessionDate = clonePtr(o.SessionDate)
		c.Amount = clonePtr(o.Amount)

		return &c
	})}
}

func (r *orderRepository) Create(_ context.Context, order *entity.Order) error {
	r.orders.insert(order, func(o *entity.Order, id int64, createdAt time.Time) {
		o.ID, o.CreatedAt = id, createdAt
		if o.Status == "" {
			o.Status = entity.OrderStatusPending
		}
		if o.PaymentStatus == "" {
			o.PaymentStatus = entity.PaymentStatusUnpaid
		}
	})

	return nil
}

func (r *orderRepository) FindByID(_ context.Context, id int64) (*entity.Order, error) {
	order, ok := r.orders.get(id)
	if !ok {
		return nil, errors.WithStack(repository.ErrOrderNotFound)
	}

	return order, nil
}

func (r *orderRepository) List(_ context.Context, filter repository.OrderFilter) ([]*entity.Order, error) {
	if filter.UserID == nil {
		return r.orders.list(nil), nil
	}
	userID := *filter.UserID

	return r.orders.list(func(o *entity.Order) bool { return o.UserID != nil && *o.UserID == userID }), nil
}

func (r *orderRepository) UpdateStatus(_ context.Context, id int64, status string) (*entity.Order, error) {
	order, ok := r.orders.update(id, func(o *entity.Order) { o.Status = status })
	if !ok {
		return nil, errors.WithStack(repository.ErrOrderNotFound)
	}

	return order, nil
}

type testimonialRepository struct {
	testimonials *table[entity.Testimonial]
}

// NewTestimonialRepository creates an empty in-memory testimonial store.
func NewTestimonialRepository() repository.TestimonialRepository {
	return &testimonialRepository{testimonials: newTable(func(t *entity.Testimonial) *entity.Testimonial {
		c := *t
		c.Service = clonePtr(t.Service)

		return &c
	})}
}

func (r *testimonialRepository) Create(_ context.Context, testimonial *entity.Testimonial) error {
	r.testimonials.insert(testimonial, func(t *entity.Testimonial, id int64, createdAt time.Time) {
		t.ID, t.CreatedAt = id, createdAt
		t.IsApproved = false
	})

	return nil
}

func (r *testimonialRepository) FindByID(_ context.Context, id int64) (*entity.Testimonial, error) {
	testimonial, ok := r.testimonials.get(id)
	if !ok {
		return nil, errors.WithStack(repository.ErrTestimonialNotFound)
	}

	return testimonial, nil
}

func (r *testimonialRepository) List(_ context.Context, filter repository.TestimonialFilter) ([]*entity.Testimonial, error) {
	if filter.Approved == nil {
		return r.testimonials.list(nil), nil
	}
	approved := *filter.Approved

	return r.testimonials.list(func(t *entity.Testimonial) bool { return t.IsApproved == approved }), nil
}

func (r *testimonialRepository) SetApproved(_ context.Context, id int64, approved bool) (*entity.Testimonial, error) {
	testimonial, ok := r.testimonials.update(id, func(t *entity.Testimonial) { t.IsApproved = approved })
	if !ok {
		return nil, errors.WithStack(repository.ErrTestimonialNotFound)
	}

	return testimonial, nil
}

type bookingRepository struct {
	bookings *table[entity.Booking]
}

// NewBookingRepository creates an empty in-memory booking store.
func NewBookingRepository() repository.BookingRepository {
	return &bookingRepository{bookings: newTable(func(b *entity.Booking) *entity.Booking {
		c := *b
		c.Notes = clonePtr(b.Notes)
		c.FileURL = clonePtr(b.FileURL)

		return &c
	})}
}

func (r *bookingRepository) Create(_ context.Context, booking *entity.Booking) error {
	r.bookings.insert(booking, func(b *entity.Booking, id int64, createdAt time.Time) {
		b.ID, b.CreatedAt = id, createdAt
	})

	return nil
}

func (r *bookingRepository) FindByID(_ context.Context, id int64) (*entity.Booking, error) {
	booking, ok := r.bookings.get(id)
	if !ok {
		return nil, errors.WithStack(repository.ErrBookingNotFound)
	}

	return booking, nil
}

func (r *bookingRepository) List(_ context.Context) ([]*entity.Booking, error) {
	return r.bookings.list(nil), nil
}
