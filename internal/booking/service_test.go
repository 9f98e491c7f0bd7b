package booking

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/SOHAMSUPEKAR24/travle1/internal/kv"
	"github.com/SOHAMSUPEKAR24/travle1/internal/models"
	"github.com/SOHAMSUPEKAR24/travle1/internal/monitor"
	"github.com/SOHAMSUPEKAR24/travle1/internal/payment"
	"github.com/SOHAMSUPEKAR24/travle1/internal/store"
)

func instantGateway(build func(func() float64) *payment.StubGateway, roll func() float64) *payment.StubGateway {
	gw := build(roll)
	gw.InitDelay = 0
	gw.ProcessDelay = 0
	_ = gw.Initialize(context.Background())
	return gw
}

func newTestService(t *testing.T, roll func() float64) (*Service, *store.DataStore) {
	t.Helper()
	backend, err := kv.NewFile(t.TempDir())
	if err != nil {
		t.Fatalf("file backend: %v", err)
	}
	mon := monitor.New(nil)
	ds := store.New(backend, mon)

	reg := payment.NewRegistry(1)
	reg.Register("razorpay", instantGateway(payment.NewRazorpay, roll))
	reg.Register("stripe", instantGateway(payment.NewStripe, roll))

	return NewService(ds, reg, mon), ds
}

func bookRequest(travelers int) Request {
	req := Request{
		TripID:        "TRIP_001",
		CustomerName:  "Aarav Shah",
		CustomerEmail: "aarav@example.com",
		CustomerPhone: "9876543210",
	}
	for i := 0; i < travelers; i++ {
		req.Travelers = append(req.Travelers, models.Traveler{Name: "Traveler", Age: 30, Gender: "male"})
	}
	return req
}

func TestBookSuccessFanOut(t *testing.T) {
	svc, ds := newTestService(t, func() float64 { return 1.0 })
	ctx := context.Background()

	result, err := svc.Book(ctx, bookRequest(2))
	if err != nil {
		t.Fatalf("book: %v", err)
	}

	booking := result.Booking
	if booking.PaymentStatus != models.PaymentCompleted {
		t.Fatalf("expected completed payment, got %s", booking.PaymentStatus)
	}
	if booking.PaymentID == "" || booking.PaymentMethod != "Razorpay" {
		t.Fatalf("payment fields missing: %+v", booking)
	}
	if booking.TotalAmount != 34999*2 {
		t.Fatalf("unexpected total %v", booking.TotalAmount)
	}
	if result.Receipt == nil || result.Receipt.PaymentID != booking.PaymentID {
		t.Fatalf("expected receipt tied to payment")
	}

	trip, err := ds.TripByID(ctx, "TRIP_001")
	if err != nil {
		t.Fatalf("trip: %v", err)
	}
	if trip.AvailableSeats != 10 {
		t.Fatalf("seats not decremented: %d", trip.AvailableSeats)
	}

	customers := ds.Customers(ctx)
	if len(customers) != 1 {
		t.Fatalf("expected one customer, got %d", len(customers))
	}
	if customers[0].TotalSpent != booking.TotalAmount {
		t.Fatalf("customer totalSpent %v != %v", customers[0].TotalSpent, booking.TotalAmount)
	}
	if len(customers[0].Bookings) != 1 || customers[0].Bookings[0] != booking.ID {
		t.Fatalf("booking not linked to customer: %+v", customers[0])
	}
	if len(customers[0].Preferences) == 0 {
		t.Fatalf("expected trip categories as preferences")
	}
}

func TestBookDeclinedPersistsNothing(t *testing.T) {
	svc, ds := newTestService(t, func() float64 { return 0.0 })
	ctx := context.Background()

	_, err := svc.Book(ctx, bookRequest(2))
	var declined *PaymentDeclinedError
	if !errors.As(err, &declined) {
		t.Fatalf("expected decline, got %v", err)
	}
	if declined.Reason != "Payment declined by bank" {
		t.Fatalf("unexpected reason %q", declined.Reason)
	}

	if len(ds.Bookings(ctx)) != 0 || len(ds.Customers(ctx)) != 0 {
		t.Fatalf("declined payment must persist nothing")
	}
	trip, _ := ds.TripByID(ctx, "TRIP_001")
	if trip.AvailableSeats != 12 {
		t.Fatalf("seats changed on decline: %d", trip.AvailableSeats)
	}
}

func TestBookStripeDecline(t *testing.T) {
	svc, _ := newTestService(t, func() float64 { return 0.0 })

	req := bookRequest(1)
	req.Gateway = "stripe"
	_, err := svc.Book(context.Background(), req)
	var declined *PaymentDeclinedError
	if !errors.As(err, &declined) || declined.Reason != "Your card was declined" {
		t.Fatalf("expected stripe decline message, got %v", err)
	}
}

func TestBookUnknownTrip(t *testing.T) {
	svc, _ := newTestService(t, func() float64 { return 1.0 })

	req := bookRequest(1)
	req.TripID = "TRIP_missing"
	if _, err := svc.Book(context.Background(), req); !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestBookNotEnoughSeats(t *testing.T) {
	svc, ds := newTestService(t, func() float64 { return 1.0 })
	ctx := context.Background()

	_, err := svc.Book(ctx, bookRequest(13))
	var seats *NotEnoughSeatsError
	if !errors.As(err, &seats) {
		t.Fatalf("expected seats error, got %v", err)
	}
	if seats.Available != 12 || seats.Requested != 13 {
		t.Fatalf("unexpected counts %+v", seats)
	}
	if len(ds.Bookings(ctx)) != 0 {
		t.Fatalf("oversized booking must not persist")
	}
}

func TestBookValidationBeforePayment(t *testing.T) {
	called := false
	svc, _ := newTestService(t, func() float64 { called = true; return 1.0 })

	req := bookRequest(1)
	req.CustomerEmail = "not-an-email"
	_, err := svc.Book(context.Background(), req)
	var verr *store.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected validation error, got %v", err)
	}
	hasEmailRule := false
	for _, v := range verr.Violations {
		if strings.Contains(v, "Valid customer email is required") {
			hasEmailRule = true
		}
	}
	if !hasEmailRule {
		t.Fatalf("expected email rule, got %v", verr.Violations)
	}
	if called {
		t.Fatalf("gateway must not run for invalid bookings")
	}
}

func TestBookUnknownGateway(t *testing.T) {
	svc, _ := newTestService(t, func() float64 { return 1.0 })

	req := bookRequest(1)
	req.Gateway = "paypal"
	if _, err := svc.Book(context.Background(), req); err == nil {
		t.Fatalf("expected unknown gateway error")
	}
}
