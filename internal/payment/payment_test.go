package payment

import (
	"context"
	"errors"
	"strings"
	"testing"
)

func testGateway(t *testing.T, gw *StubGateway) *StubGateway {
	t.Helper()
	gw.InitDelay = 0
	gw.ProcessDelay = 0
	if err := gw.Initialize(context.Background()); err != nil {
		t.Fatalf("initialize: %v", err)
	}
	return gw
}

func TestCreateIntentRequiresInitialization(t *testing.T) {
	gw := NewRazorpay(func() float64 { return 1 })
	gw.InitDelay = 0

	_, err := gw.CreateIntent(context.Background(), 100, "INR", Metadata{})
	if !errors.Is(err, ErrNotInitialized) {
		t.Fatalf("expected ErrNotInitialized, got %v", err)
	}
}

func TestRazorpayIntentScaling(t *testing.T) {
	gw := testGateway(t, NewRazorpay(func() float64 { return 1 }))

	intent, err := gw.CreateIntent(context.Background(), 34999, "inr", Metadata{TripTitle: "Konkan"})
	if err != nil {
		t.Fatalf("create intent: %v", err)
	}
	if intent.Amount != 3499900 {
		t.Fatalf("expected paise scaling, got %d", intent.Amount)
	}
	if intent.Currency != "INR" {
		t.Fatalf("expected uppercase currency, got %s", intent.Currency)
	}
	if !strings.HasPrefix(intent.ID, "rzp_") {
		t.Fatalf("unexpected intent id %s", intent.ID)
	}
	if intent.Status != StatusCreated {
		t.Fatalf("unexpected status %s", intent.Status)
	}
}

func TestStripeIntentShape(t *testing.T) {
	gw := testGateway(t, NewStripe(func() float64 { return 1 }))

	intent, err := gw.CreateIntent(context.Background(), 100, "INR", Metadata{})
	if err != nil {
		t.Fatalf("create intent: %v", err)
	}
	if intent.Currency != "inr" {
		t.Fatalf("expected lowercase currency, got %s", intent.Currency)
	}
	if intent.ClientSecret == "" {
		t.Fatalf("expected client secret")
	}
}

func TestProcessForcedSuccess(t *testing.T) {
	gw := testGateway(t, NewRazorpay(func() float64 { return 1 }))

	intent, _ := gw.CreateIntent(context.Background(), 69998, "INR", Metadata{
		CustomerName:  "Aarav Shah",
		CustomerEmail: "aarav@example.com",
		TripTitle:     "Konkan–Goa",
		Travelers:     2,
	})

	result, err := gw.Process(context.Background(), intent, "card")
	if err != nil {
		t.Fatalf("process: %v", err)
	}
	if !result.Success || result.Status != StatusSucceeded {
		t.Fatalf("expected success, got %+v", result)
	}
	if result.Receipt == nil {
		t.Fatalf("expected receipt")
	}
	if result.Receipt.Amount != 69998 {
		t.Fatalf("expected major-unit amount on receipt, got %v", result.Receipt.Amount)
	}
	if result.Receipt.CustomerName != "Aarav Shah" || result.Receipt.Travelers != 2 {
		t.Fatalf("metadata not echoed: %+v", result.Receipt)
	}
	if result.Receipt.PaymentMethod != "Razorpay" {
		t.Fatalf("unexpected method %s", result.Receipt.PaymentMethod)
	}
}

func TestProcessForcedFailure(t *testing.T) {
	gw := testGateway(t, NewStripe(func() float64 { return 0 }))

	intent, _ := gw.CreateIntent(context.Background(), 100, "INR", Metadata{})
	result, err := gw.Process(context.Background(), intent, "card")
	if err != nil {
		t.Fatalf("process: %v", err)
	}
	if result.Success || result.Status != StatusFailed {
		t.Fatalf("expected failure, got %+v", result)
	}
	if result.Error != "Your card was declined" {
		t.Fatalf("unexpected decline message %q", result.Error)
	}
	if result.Receipt != nil {
		t.Fatalf("expected no receipt on failure")
	}
}

func TestRegistryLookup(t *testing.T) {
	r := NewRegistry(1)

	if got := r.Available(); len(got) != 2 {
		t.Fatalf("expected 2 gateways, got %v", got)
	}

	gw, err := r.Get("")
	if err != nil || gw.Name() != "Razorpay" {
		t.Fatalf("expected default razorpay, got %v %v", gw, err)
	}

	if _, err := r.Get("paypal"); err == nil {
		t.Fatalf("expected unknown gateway error")
	}
	if _, err := r.Get("stripe"); err != nil {
		t.Fatalf("stripe lookup: %v", err)
	}
}

func TestRegistrySeededRollsAreReproducible(t *testing.T) {
	outcomes := func(seed int64) []bool {
		r := NewRegistry(seed)
		gw, _ := r.Get("razorpay")
		stub := gw.(*StubGateway)
		stub.InitDelay = 0
		stub.ProcessDelay = 0
		_ = stub.Initialize(context.Background())

		var out []bool
		for i := 0; i < 10; i++ {
			intent, _ := stub.CreateIntent(context.Background(), 100, "INR", Metadata{})
			res, _ := stub.Process(context.Background(), intent, "card")
			out = append(out, res.Success)
		}
		return out
	}

	a, b := outcomes(42), outcomes(42)
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("expected identical outcome sequences for same seed")
		}
	}
}
