package trip

import (
	"context"

	"github.com/SOHAMSUPEKAR24/travle1/internal/models"
	"github.com/SOHAMSUPEKAR24/travle1/internal/store"
)

// Filter narrows the public trip listing. Zero values mean no
// constraint.
type Filter struct {
	Featured bool
	Category string
}

type Service struct {
	store *store.DataStore
}

func NewService(ds *store.DataStore) *Service {
	return &Service{store: ds}
}

func (s *Service) List(ctx context.Context, filter Filter) []models.Trip {
	trips := s.store.Trips(ctx)
	out := trips[:0:0]
	for _, trip := range trips {
		if filter.Featured && !trip.Featured {
			continue
		}
		if filter.Category != "" && !hasCategory(trip.Categories, filter.Category) {
			continue
		}
		out = append(out, trip)
	}
	return out
}

func (s *Service) Get(ctx context.Context, id string) (models.Trip, error) {
	return s.store.TripByID(ctx, id)
}

func (s *Service) Create(ctx context.Context, trip models.Trip) (models.Trip, error) {
	return s.store.AddTrip(ctx, trip)
}

func (s *Service) Update(ctx context.Context, id string, updates map[string]any) (models.Trip, error) {
	return s.store.UpdateTrip(ctx, id, updates)
}

func (s *Service) Delete(ctx context.Context, id string) (bool, error) {
	return s.store.DeleteTrip(ctx, id)
}

func hasCategory(categories []string, want string) bool {
	for _, c := range categories {
		if c == want {
			return true
		}
	}
	return false
}
