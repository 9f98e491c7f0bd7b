package testimonial

import (
	"context"

	"github.com/SOHAMSUPEKAR24/travle1/internal/models"
	"github.com/SOHAMSUPEKAR24/travle1/internal/store"
)

type Service struct {
	store *store.DataStore
}

func NewService(ds *store.DataStore) *Service {
	return &Service{store: ds}
}

func (s *Service) List(ctx context.Context, featuredOnly bool) []models.Testimonial {
	testimonials := s.store.Testimonials(ctx)
	if !featuredOnly {
		return testimonials
	}
	out := testimonials[:0:0]
	for _, testimonial := range testimonials {
		if testimonial.Featured {
			out = append(out, testimonial)
		}
	}
	return out
}

func (s *Service) Create(ctx context.Context, testimonial models.Testimonial) (models.Testimonial, error) {
	return s.store.AddTestimonial(ctx, testimonial)
}

func (s *Service) Update(ctx context.Context, id string, updates map[string]any) (models.Testimonial, error) {
	return s.store.UpdateTestimonial(ctx, id, updates)
}

func (s *Service) Delete(ctx context.Context, id string) (bool, error) {
	return s.store.DeleteTestimonial(ctx, id)
}
