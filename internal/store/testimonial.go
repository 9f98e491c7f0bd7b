package store

import (
	"context"

	"github.com/SOHAMSUPEKAR24/travle1/internal/models"
)

func (s *DataStore) Testimonials(ctx context.Context) []models.Testimonial {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load(ctx).Testimonials
}

// AddTestimonial is unvalidated, matching the admin form it serves.
func (s *DataStore) AddTestimonial(ctx context.Context, testimonial models.Testimonial) (models.Testimonial, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc := s.load(ctx)
	testimonial.ID = newID("TEST")
	testimonial.CreatedAt = s.timestamp()
	doc.Testimonials = append(doc.Testimonials, testimonial)

	if err := s.save(ctx, doc); err != nil {
		return models.Testimonial{}, err
	}
	return testimonial, nil
}

func (s *DataStore) UpdateTestimonial(ctx context.Context, id string, updates map[string]any) (models.Testimonial, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc := s.load(ctx)
	for i, testimonial := range doc.Testimonials {
		if testimonial.ID != id {
			continue
		}
		merged, err := mergeEntity(testimonial, updates)
		if err != nil {
			return models.Testimonial{}, err
		}
		doc.Testimonials[i] = merged

		if err := s.save(ctx, doc); err != nil {
			return models.Testimonial{}, err
		}
		return merged, nil
	}
	return models.Testimonial{}, ErrNotFound
}

func (s *DataStore) DeleteTestimonial(ctx context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc := s.load(ctx)
	kept := doc.Testimonials[:0:0]
	for _, testimonial := range doc.Testimonials {
		if testimonial.ID != id {
			kept = append(kept, testimonial)
		}
	}
	if len(kept) == len(doc.Testimonials) {
		return false, nil
	}
	doc.Testimonials = kept

	if err := s.save(ctx, doc); err != nil {
		return false, err
	}
	return true, nil
}

func (s *DataStore) Settings(ctx context.Context) models.Settings {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load(ctx).Settings
}

// UpdateSettings persists the singleton settings record wholesale.
func (s *DataStore) UpdateSettings(ctx context.Context, settings models.Settings) (models.Settings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc := s.load(ctx)
	doc.Settings = settings
	if err := s.save(ctx, doc); err != nil {
		return models.Settings{}, err
	}
	return settings, nil
}
