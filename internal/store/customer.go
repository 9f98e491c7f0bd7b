package store

import (
	"context"

	"github.com/SOHAMSUPEKAR24/travle1/internal/models"
	"github.com/SOHAMSUPEKAR24/travle1/internal/monitor"
)

func (s *DataStore) Customers(ctx context.Context) []models.Customer {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load(ctx).Customers
}

func (s *DataStore) CustomerByID(ctx context.Context, id string) (models.Customer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, customer := range s.load(ctx).Customers {
		if customer.ID == id {
			return customer, nil
		}
	}
	return models.Customer{}, ErrNotFound
}

// CustomerByEmail matches by exact, case-sensitive equality; customers with
// case-variant emails are distinct records.
func (s *DataStore) CustomerByEmail(ctx context.Context, email string) (models.Customer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, customer := range s.load(ctx).Customers {
		if customer.Email == email {
			return customer, nil
		}
	}
	return models.Customer{}, ErrNotFound
}

// AddCustomer is unvalidated; customers are normally created through the
// booking flow, this exists for the admin surface.
func (s *DataStore) AddCustomer(ctx context.Context, customer models.Customer) (models.Customer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc := s.load(ctx)
	customer.ID = newID("CUST")
	customer.CreatedAt = s.timestamp()
	doc.Customers = append(doc.Customers, customer)

	if err := s.save(ctx, doc); err != nil {
		return models.Customer{}, err
	}
	return customer, nil
}

func (s *DataStore) UpdateCustomer(ctx context.Context, id string, updates map[string]any) (models.Customer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc := s.load(ctx)
	for i, customer := range doc.Customers {
		if customer.ID != id {
			continue
		}
		merged, err := mergeEntity(customer, updates)
		if err != nil {
			return models.Customer{}, err
		}
		doc.Customers[i] = merged

		if err := s.save(ctx, doc); err != nil {
			return models.Customer{}, err
		}
		return merged, nil
	}
	return models.Customer{}, ErrNotFound
}

// UpsertCustomerForBooking records booking ownership at successful-payment
// time: an existing customer (by email) gains the booking id and amount, a
// new one is created with the trip categories as preferences.
func (s *DataStore) UpsertCustomerForBooking(ctx context.Context, booking models.Booking, preferences []string) (models.Customer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc := s.load(ctx)
	for i, customer := range doc.Customers {
		if customer.Email != booking.CustomerEmail {
			continue
		}
		customer.Bookings = append(customer.Bookings, booking.ID)
		customer.TotalSpent += booking.TotalAmount
		doc.Customers[i] = customer

		if err := s.save(ctx, doc); err != nil {
			return models.Customer{}, err
		}
		return customer, nil
	}

	customer := models.Customer{
		ID:          newID("CUST"),
		Name:        booking.CustomerName,
		Email:       booking.CustomerEmail,
		Phone:       booking.CustomerPhone,
		Bookings:    []string{booking.ID},
		TotalSpent:  booking.TotalAmount,
		CreatedAt:   s.timestamp(),
		Preferences: preferences,
	}
	doc.Customers = append(doc.Customers, customer)

	if err := s.save(ctx, doc); err != nil {
		return models.Customer{}, err
	}

	s.mon.Log(monitor.LevelInfo, "DataStore", "Customer created for "+customer.Email, map[string]any{"customerId": customer.ID})
	return customer, nil
}
