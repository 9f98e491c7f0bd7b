package store

import (
	"context"

	"github.com/SOHAMSUPEKAR24/travle1/internal/models"
	"github.com/SOHAMSUPEKAR24/travle1/internal/monitor"
	"github.com/SOHAMSUPEKAR24/travle1/internal/validate"
)

func (s *DataStore) Bookings(ctx context.Context) []models.Booking {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load(ctx).Bookings
}

func (s *DataStore) BookingByID(ctx context.Context, id string) (models.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, booking := range s.load(ctx).Bookings {
		if booking.ID == id {
			return booking, nil
		}
	}
	return models.Booking{}, ErrNotFound
}

// AddBooking validates the payload but deliberately does not check that the
// referenced trip exists; the booking flow is the strict layer.
func (s *DataStore) AddBooking(ctx context.Context, booking models.Booking) (models.Booking, error) {
	stop := s.mon.StartTiming("addBooking")
	defer stop()

	if res := validate.Booking(booking); !res.Valid {
		verr := &ValidationError{Entity: "Booking", Violations: res.Errors}
		s.mon.Log(monitor.LevelError, "DataStore", verr.Error(), map[string]any{"errors": res.Errors})
		return models.Booking{}, verr
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	doc := s.load(ctx)
	booking.ID = newID("BOOK")
	if booking.BookingDate == "" {
		booking.BookingDate = s.timestamp()
	}
	doc.Bookings = append(doc.Bookings, booking)

	if err := s.save(ctx, doc); err != nil {
		return models.Booking{}, err
	}

	s.mon.Log(monitor.LevelInfo, "DataStore", "Booking created for "+booking.CustomerName, map[string]any{
		"bookingId": booking.ID,
		"tripId":    booking.TripID,
	})
	return booking, nil
}

func (s *DataStore) UpdateBooking(ctx context.Context, id string, updates map[string]any) (models.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc := s.load(ctx)
	for i, booking := range doc.Bookings {
		if booking.ID != id {
			continue
		}
		merged, err := mergeEntity(booking, updates)
		if err != nil {
			return models.Booking{}, err
		}
		doc.Bookings[i] = merged

		if err := s.save(ctx, doc); err != nil {
			return models.Booking{}, err
		}
		return merged, nil
	}
	return models.Booking{}, ErrNotFound
}
