// Package seed loads the fixed sample catalog and testimonials into a fresh store.
package seed

import (
	"context"
	"log/slog"

	"studio/config"
	"studio/internal/domain/entity"
	"studio/internal/domain/lifecycle"
	"studio/internal/domain/repository"
	"studio/internal/errors"
	"studio/internal/util"

	"go.uber.org/fx"
)

type sampleService struct {
	name        string
	description string
	price       int64
	duration    string
}

var sampleServices = []sampleService{
	{"Birthday Photo Shoot - Package 1", "Basic birthday photography package", 14000, "2 hours"},
	{"Birthday Photo Shoot - Package 2", "Premium birthday photography package with free photo frame", 17500, "3 hours"},
	{"Couple Photo Shoot - Package 1", "Basic couple photography session", 15000, "2 hours"},
	{"Couple Photo Shoot - Package 2", "Premium couple photography with two photo frames", 19500, "3 hours"},
	{"Wedding Full Day", "Complete wedding day coverage", 30000, "Full day"},
	{"Wedding Pre-Shoot", "Pre-wedding photoshoot", 15000, "3 hours"},
	{"Wedding Pre + Full Day", "Pre-wedding shoot and complete wedding day coverage", 40000, "Multiple days"},
	{"Event Photography - Package 1", "Basic event coverage", 20000, "3 hours"},
	{"Event Photography - Package 2", "Standard event coverage", 25000, "4 hours"},
	{"Event Photography - Package 3", "Premium event coverage", 30000, "6 hours"},
}

type sampleTestimonial struct {
	name    string
	service string
	quote   string
	rating  int
}

var sampleTestimonials = []sampleTestimonial{
	{
		name:    "Priya & Arun",
		service: "Wedding Photography",
		quote:   "Suraj captured our wedding day beautifully. The photos are stunning and we couldn't be happier with the results!",
		rating:  5,
	},
	{
		name:    "Chamara & Dilini",
		service: "Couple Photoshoot",
		quote:   "The pre-wedding photoshoot exceeded our expectations. Suraj made us feel comfortable and the photos look so natural!",
		rating:  5,
	},
	{
		name:    "Malini Fernando",
		service: "Birthday Photography",
		quote:   "My daughter's birthday photos are perfect! Mr. DarkLense has a special talent for capturing genuine emotions.",
		rating:  5,
	},
}

// Result reports what a seeding run inserted.
type Result struct {
	Services     int
	Testimonials int
	Skipped      bool
}

// Seed inserts the sample services and testimonials. The testimonials go through
// the moderation path so they are publicly listed. A store that already holds
// services is left untouched.
func Seed(ctx context.Context, services repository.ServiceRepository, testimonials repository.TestimonialRepository) (Result, error) {
	existing, err := services.List(ctx)
	if err != nil {
		return Result{}, errors.Wrap(err, "failed to inspect services")
	}
	if len(existing) > 0 {
		return Result{Skipped: true}, nil
	}

	var result Result
	for _, s := range sampleServices {
		svc := &entity.Service{
			Name:        s.name,
			Description: util.Ptr(s.description),
			Price:       s.price,
			Duration:    util.Ptr(s.duration),
		}
		if err := services.Create(ctx, svc); err != nil {
			return result, errors.Wrapf(err, "failed to seed service %q", s.name)
		}
		result.Services++
	}

	for _, t := range sampleTestimonials {
		testimonial := &entity.Testimonial{
			Name:    t.name,
			Service: util.Ptr(t.service),
			Quote:   t.quote,
			Rating:  t.rating,
		}
		if err := testimonials.Create(ctx, testimonial); err != nil {
			return result, errors.Wrapf(err, "failed to seed testimonial from %q", t.name)
		}
		// Create always stores unapproved. Seeds are published through moderation
		// so the public testimonials list is not empty on a fresh store.
		if _, err := testimonials.SetApproved(ctx, testimonial.ID, true); err != nil {
			return result, errors.Wrapf(err, "failed to approve testimonial %d", testimonial.ID)
		}
		result.Testimonials++
	}

	return result, nil
}

// Params holds the dependencies of the seeding start hook.
type Params struct {
	fx.In

	Lc           fx.Lifecycle
	Config       *config.Config
	Services     repository.ServiceRepository
	Testimonials repository.TestimonialRepository
	Logger       *slog.Logger
}

// Register seeds the store on start when seeding is enabled.
func Register(params Params) {
	if !params.Config.Seed.Enabled {
		return
	}

	params.Lc.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			result, err := Seed(ctx, params.Services, params.Testimonials)
			if err != nil {
				return err
			}
			if result.Skipped {
				params.Logger.Info("Seed skipped, services already exist")

				return nil
			}

			params.Logger.Info("Seed data loaded",
				slog.Int("services", result.Services),
				slog.Int("testimonials", result.Testimonials),
			)

			return nil
		},
	})
}
