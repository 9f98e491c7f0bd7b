package payment

import (
	"context"
	"fmt"
	"math/rand"
	"sync"
	"time"
)

const DefaultGateway = "razorpay"

// Registry holds the interchangeable gateways by name.
type Registry struct {
	mu       sync.Mutex
	gateways map[string]Gateway
	order    []string
}

// NewRegistry builds the standard registry with both stub gateways sharing
// one seeded random source. Seed 0 falls back to wall-clock seeding.
func NewRegistry(seed int64) *Registry {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))
	var rngMu sync.Mutex
	roll := func() float64 {
		rngMu.Lock()
		defer rngMu.Unlock()
		return rng.Float64()
	}

	r := &Registry{gateways: map[string]Gateway{}}
	r.Register("razorpay", NewRazorpay(roll))
	r.Register("stripe", NewStripe(roll))
	return r
}

func (r *Registry) Register(name string, g Gateway) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.gateways[name]; !exists {
		r.order = append(r.order, name)
	}
	r.gateways[name] = g
}

// Get resolves a gateway by name; an empty name selects the default.
func (r *Registry) Get(name string) (Gateway, error) {
	if name == "" {
		name = DefaultGateway
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	g, ok := r.gateways[name]
	if !ok {
		return nil, fmt.Errorf("payment gateway %s not found", name)
	}
	return g, nil
}

func (r *Registry) Available() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

// InitializeAll bootstraps every gateway; the stubs only sleep, so this is
// called from a goroutine at startup.
func (r *Registry) InitializeAll(ctx context.Context) error {
	for _, name := range r.Available() {
		g, err := r.Get(name)
		if err != nil {
			return err
		}
		if err := g.Initialize(ctx); err != nil {
			return fmt.Errorf("initialize %s: %w", name, err)
		}
	}
	return nil
}
