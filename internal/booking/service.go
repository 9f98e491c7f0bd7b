package booking

import (
	"context"
	"fmt"

	"github.com/SOHAMSUPEKAR24/travle1/internal/models"
	"github.com/SOHAMSUPEKAR24/travle1/internal/monitor"
	"github.com/SOHAMSUPEKAR24/travle1/internal/payment"
	"github.com/SOHAMSUPEKAR24/travle1/internal/store"
	"github.com/SOHAMSUPEKAR24/travle1/internal/validate"
)

// NotEnoughSeatsError reports a booking that asks for more seats than
// the trip has left.
type NotEnoughSeatsError struct {
	Available int
	Requested int
}

func (e *NotEnoughSeatsError) Error() string {
	return fmt.Sprintf("only %d seats available, %d requested", e.Available, e.Requested)
}

// PaymentDeclinedError carries the gateway's decline message. Nothing
// is persisted when a payment is declined.
type PaymentDeclinedError struct {
	Gateway string
	Reason  string
}

func (e *PaymentDeclinedError) Error() string { return e.Reason }

type Request struct {
	TripID          string            `json:"tripId"`
	CustomerName    string            `json:"customerName"`
	CustomerEmail   string            `json:"customerEmail"`
	CustomerPhone   string            `json:"customerPhone"`
	Travelers       []models.Traveler `json:"travelers"`
	SpecialRequests string            `json:"specialRequests,omitempty"`
	Gateway         string            `json:"gateway,omitempty"`
	PaymentMethod   string            `json:"paymentMethod,omitempty"`
}

type Result struct {
	Booking models.Booking   `json:"booking"`
	Receipt *payment.Receipt `json:"receipt,omitempty"`
}

// Service runs the strict booking pipeline: trip lookup, seat check,
// validation, payment, then the persistence fan-out. The store stays
// lenient about trip references; the checks all live here.
type Service struct {
	store    *store.DataStore
	payments *payment.Registry
	mon      *monitor.Monitor
}

func NewService(ds *store.DataStore, payments *payment.Registry, mon *monitor.Monitor) *Service {
	return &Service{store: ds, payments: payments, mon: mon}
}

func (s *Service) Book(ctx context.Context, req Request) (Result, error) {
	trip, err := s.store.TripByID(ctx, req.TripID)
	if err != nil {
		return Result{}, err
	}
	if trip.AvailableSeats < len(req.Travelers) {
		return Result{}, &NotEnoughSeatsError{Available: trip.AvailableSeats, Requested: len(req.Travelers)}
	}

	booking := models.Booking{
		TripID:            req.TripID,
		CustomerName:      req.CustomerName,
		CustomerEmail:     req.CustomerEmail,
		CustomerPhone:     req.CustomerPhone,
		NumberOfTravelers: len(req.Travelers),
		TotalAmount:       trip.Price * float64(len(req.Travelers)),
		PaymentStatus:     models.PaymentPending,
		Travelers:         req.Travelers,
		SpecialRequests:   req.SpecialRequests,
	}
	if res := validate.Booking(booking); !res.Valid {
		return Result{}, &store.ValidationError{Entity: "Booking", Violations: res.Errors}
	}

	gateway, err := s.payments.Get(req.Gateway)
	if err != nil {
		return Result{}, err
	}

	intent, err := gateway.CreateIntent(ctx, booking.TotalAmount, trip.Currency, payment.Metadata{
		CustomerName:  booking.CustomerName,
		CustomerEmail: booking.CustomerEmail,
		TripTitle:     trip.Title,
		Travelers:     booking.NumberOfTravelers,
	})
	if err != nil {
		return Result{}, err
	}

	outcome, err := gateway.Process(ctx, intent, req.PaymentMethod)
	if err != nil {
		return Result{}, err
	}
	if !outcome.Success {
		s.mon.Log(monitor.LevelWarning, "BookingService", "Payment declined for "+booking.CustomerEmail, map[string]any{
			"gateway": gateway.Name(),
			"tripId":  trip.ID,
			"error":   outcome.Error,
		})
		return Result{}, &PaymentDeclinedError{Gateway: gateway.Name(), Reason: outcome.Error}
	}

	booking.PaymentStatus = models.PaymentCompleted
	booking.PaymentID = outcome.PaymentID
	booking.PaymentMethod = gateway.Name()

	stored, err := s.store.AddBooking(ctx, booking)
	if err != nil {
		return Result{}, err
	}
	if _, err := s.store.UpdateTrip(ctx, trip.ID, map[string]any{"availableSeats": trip.AvailableSeats - booking.NumberOfTravelers}); err != nil {
		return Result{}, err
	}
	if _, err := s.store.UpsertCustomerForBooking(ctx, stored, trip.Categories); err != nil {
		return Result{}, err
	}

	s.mon.Log(monitor.LevelInfo, "BookingService", "Booking confirmed for "+stored.CustomerName, map[string]any{
		"bookingId": stored.ID,
		"tripId":    trip.ID,
		"paymentId": stored.PaymentID,
	})
	return Result{Booking: stored, Receipt: outcome.Receipt}, nil
}
