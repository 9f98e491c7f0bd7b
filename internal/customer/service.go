package customer

import (
	"context"
	"time"

	"github.com/SOHAMSUPEKAR24/travle1/internal/models"
	"github.com/SOHAMSUPEKAR24/travle1/internal/store"
)

// Profile is a customer joined with its derived segment.
type Profile struct {
	models.Customer
	Segment string `json:"segment"`
}

type Service struct {
	store *store.DataStore
	now   func() time.Time
}

func NewService(ds *store.DataStore) *Service {
	return &Service{store: ds, now: time.Now}
}

func (s *Service) List(ctx context.Context) []Profile {
	customers := s.store.Customers(ctx)
	bookings := s.store.Bookings(ctx)
	now := s.now()

	profiles := make([]Profile, 0, len(customers))
	for _, c := range customers {
		profiles = append(profiles, Profile{Customer: c, Segment: Segment(c, bookings, now)})
	}
	return profiles
}

func (s *Service) Get(ctx context.Context, id string) (Profile, error) {
	c, err := s.store.CustomerByID(ctx, id)
	if err != nil {
		return Profile{}, err
	}
	return Profile{Customer: c, Segment: Segment(c, s.store.Bookings(ctx), s.now())}, nil
}

func (s *Service) Update(ctx context.Context, id string, updates map[string]any) (models.Customer, error) {
	return s.store.UpdateCustomer(ctx, id, updates)
}

func (s *Service) Analytics(ctx context.Context) Analytics {
	return Analyze(s.store.Customers(ctx), s.store.Bookings(ctx), s.now())
}
