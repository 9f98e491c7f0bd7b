package store

import (
	"context"

	"github.com/SOHAMSUPEKAR24/travle1/internal/models"
	"github.com/SOHAMSUPEKAR24/travle1/internal/monitor"
	"github.com/SOHAMSUPEKAR24/travle1/internal/validate"
)

func (s *DataStore) Trips(ctx context.Context) []models.Trip {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load(ctx).Trips
}

func (s *DataStore) TripByID(ctx context.Context, id string) (models.Trip, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, trip := range s.load(ctx).Trips {
		if trip.ID == id {
			return trip, nil
		}
	}
	return models.Trip{}, ErrNotFound
}

func (s *DataStore) AddTrip(ctx context.Context, trip models.Trip) (models.Trip, error) {
	stop := s.mon.StartTiming("addTrip")
	defer stop()

	if res := validate.Trip(trip, s.now()); !res.Valid {
		verr := &ValidationError{Entity: "Trip", Violations: res.Errors}
		s.mon.Log(monitor.LevelError, "DataStore", verr.Error(), map[string]any{"errors": res.Errors})
		return models.Trip{}, verr
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	doc := s.load(ctx)
	trip.ID = newID("TRIP")
	trip.CreatedAt = s.timestamp()
	trip.UpdatedAt = trip.CreatedAt
	doc.Trips = append(doc.Trips, trip)

	if err := s.save(ctx, doc); err != nil {
		return models.Trip{}, err
	}

	s.mon.Log(monitor.LevelInfo, "DataStore", "Trip created: "+trip.Title, map[string]any{"tripId": trip.ID})
	return trip, nil
}

func (s *DataStore) UpdateTrip(ctx context.Context, id string, updates map[string]any) (models.Trip, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc := s.load(ctx)
	for i, trip := range doc.Trips {
		if trip.ID != id {
			continue
		}
		merged, err := mergeEntity(trip, updates)
		if err != nil {
			return models.Trip{}, err
		}
		merged.UpdatedAt = s.timestamp()
		doc.Trips[i] = merged

		if err := s.save(ctx, doc); err != nil {
			return models.Trip{}, err
		}
		return merged, nil
	}
	return models.Trip{}, ErrNotFound
}

func (s *DataStore) DeleteTrip(ctx context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc := s.load(ctx)
	kept := doc.Trips[:0:0]
	for _, trip := range doc.Trips {
		if trip.ID != id {
			kept = append(kept, trip)
		}
	}
	if len(kept) == len(doc.Trips) {
		return false, nil
	}
	doc.Trips = kept

	if err := s.save(ctx, doc); err != nil {
		return false, err
	}
	return true, nil
}
