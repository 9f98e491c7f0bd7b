// Package payment is a simulation harness, not a payment integration. The
// gateways fabricate outcomes locally; no external call is ever made. Any
// replacement must keep that property or swap the whole package for a real
// client end to end.
package payment

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	StatusCreated   = "created"
	StatusSucceeded = "succeeded"
	StatusFailed    = "failed"
)

type Metadata struct {
	CustomerName  string `json:"customerName"`
	CustomerEmail string `json:"customerEmail"`
	TripTitle     string `json:"tripTitle"`
	Travelers     int    `json:"travelers"`
}

// Intent carries amounts in minor currency units (paise/cents).
type Intent struct {
	ID           string   `json:"id"`
	Amount       int64    `json:"amount"`
	Currency     string   `json:"currency"`
	Status       string   `json:"status"`
	ClientSecret string   `json:"clientSecret,omitempty"`
	Metadata     Metadata `json:"metadata"`
}

type Receipt struct {
	ID            string  `json:"id"`
	PaymentID     string  `json:"paymentId"`
	Amount        float64 `json:"amount"`
	Currency      string  `json:"currency"`
	Date          string  `json:"date"`
	CustomerName  string  `json:"customerName"`
	CustomerEmail string  `json:"customerEmail"`
	TripTitle     string  `json:"tripTitle"`
	Travelers     int     `json:"travelers"`
	PaymentMethod string  `json:"paymentMethod"`
}

type Result struct {
	Success   bool     `json:"success"`
	PaymentID string   `json:"paymentId"`
	Status    string   `json:"status"`
	Error     string   `json:"error,omitempty"`
	Receipt   *Receipt `json:"receipt,omitempty"`
}

type Gateway interface {
	Name() string
	Initialize(ctx context.Context) error
	CreateIntent(ctx context.Context, amount float64, currency string, metadata Metadata) (Intent, error)
	Process(ctx context.Context, intent Intent, method string) (Result, error)
}

var ErrNotInitialized = errors.New("payment: gateway not initialized")

// StubGateway fabricates payment outcomes with a fixed success probability.
// Roll is injectable so scenario tests can force either outcome.
type StubGateway struct {
	name        string
	idPrefix    string
	successRate float64
	declineMsg  string
	upperCase   bool
	withSecret  bool

	InitDelay    time.Duration
	ProcessDelay time.Duration
	Roll         func() float64

	initialized bool
}

func NewRazorpay(roll func() float64) *StubGateway {
	return &StubGateway{
		name:         "Razorpay",
		idPrefix:     "rzp",
		successRate:  0.90,
		declineMsg:   "Payment declined by bank",
		upperCase:    true,
		InitDelay:    time.Second,
		ProcessDelay: 2 * time.Second,
		Roll:         roll,
	}
}

func NewStripe(roll func() float64) *StubGateway {
	return &StubGateway{
		name:         "Stripe",
		idPrefix:     "pi",
		successRate:  0.95,
		declineMsg:   "Your card was declined",
		withSecret:   true,
		InitDelay:    time.Second,
		ProcessDelay: 2 * time.Second,
		Roll:         roll,
	}
}

func (g *StubGateway) Name() string { return g.name }

// Initialize simulates SDK bootstrap with a fixed delay.
func (g *StubGateway) Initialize(_ context.Context) error {
	time.Sleep(g.InitDelay)
	g.initialized = true
	return nil
}

func (g *StubGateway) CreateIntent(_ context.Context, amount float64, currency string, metadata Metadata) (Intent, error) {
	if !g.initialized {
		return Intent{}, fmt.Errorf("%s: %w", g.name, ErrNotInitialized)
	}

	if g.upperCase {
		currency = strings.ToUpper(currency)
	} else {
		currency = strings.ToLower(currency)
	}

	intent := Intent{
		ID:       fmt.Sprintf("%s_%d_%s", g.idPrefix, time.Now().UnixMilli(), shortID()),
		Amount:   int64(amount * 100), // minor currency units
		Currency: currency,
		Status:   StatusCreated,
		Metadata: metadata,
	}
	if g.withSecret {
		intent.ClientSecret = fmt.Sprintf("%s_secret_%s", intent.ID, shortID())
	}
	return intent, nil
}

// Process simulates network latency, then decides the outcome from a pure
// random draw; input validity plays no part. A pending payment cannot be
// aborted once started.
func (g *StubGateway) Process(_ context.Context, intent Intent, _ string) (Result, error) {
	time.Sleep(g.ProcessDelay)

	if g.Roll() > 1-g.successRate {
		receipt := &Receipt{
			ID:            "rcpt_" + shortID(),
			PaymentID:     intent.ID,
			Amount:        float64(intent.Amount) / 100,
			Currency:      intent.Currency,
			Date:          time.Now().UTC().Format(time.RFC3339),
			CustomerName:  intent.Metadata.CustomerName,
			CustomerEmail: intent.Metadata.CustomerEmail,
			TripTitle:     intent.Metadata.TripTitle,
			Travelers:     intent.Metadata.Travelers,
			PaymentMethod: g.name,
		}
		return Result{Success: true, PaymentID: intent.ID, Status: StatusSucceeded, Receipt: receipt}, nil
	}

	return Result{Success: false, PaymentID: intent.ID, Status: StatusFailed, Error: g.declineMsg}, nil
}

func shortID() string {
	return strings.SplitN(uuid.NewString(), "-", 2)[0]
}
