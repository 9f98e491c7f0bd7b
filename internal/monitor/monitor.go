// Package monitor keeps the diagnostics the admin dashboard reads: a ring
// buffer of recent log entries, periodic health snapshots and per-operation
// timing samples. Losing it loses only diagnostics.
package monitor

import (
	stdcontext "context"
	"encoding/json"
	"log"
	"runtime"
	"sync"
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/google/uuid"

	"github.com/SOHAMSUPEKAR24/travle1/internal/kv"
)

type Level string

const (
	LevelInfo     Level = "info"
	LevelWarning  Level = "warning"
	LevelError    Level = "error"
	LevelCritical Level = "critical"
)

const (
	maxEntries       = 100
	persistedEntries = 20
	errorsKey        = "system_errors"
	healthKey        = "system_health"
	checkInterval    = 30 * time.Second
)

type Entry struct {
	ID        string         `json:"id"`
	Timestamp string         `json:"timestamp"`
	Level     Level          `json:"level"`
	Component string         `json:"component"`
	Message   string         `json:"message"`
	Context   map[string]any `json:"context,omitempty"`
}

type Checks struct {
	DataStore      bool    `json:"dataStore"`
	Backend        bool    `json:"backend"`
	PaymentService bool    `json:"paymentService"`
	MemoryUsageMB  float64 `json:"memoryUsage"`
	ErrorCount     int     `json:"errorCount"`
}

// Metrics are the entity counts reported by the store probe.
type Metrics struct {
	TotalTrips     int `json:"totalTrips"`
	TotalBookings  int `json:"totalBookings"`
	TotalCustomers int `json:"totalCustomers"`
	TotalBlogs     int `json:"totalBlogs"`
	DataSizeBytes  int `json:"dataSize"`
}

type Health struct {
	Status    string  `json:"status"`
	Timestamp string  `json:"timestamp"`
	Checks    Checks  `json:"checks"`
	Metrics   Metrics `json:"metrics"`
}

// StoreProbe answers whether the data store can be read, and with what.
type StoreProbe func(ctx stdcontext.Context) (Metrics, error)

type Monitor struct {
	backend kv.Store

	mu      sync.Mutex
	entries []Entry // newest first

	storeProbe   StoreProbe
	gatewayCount func() int
	broadcast    func(Entry)

	perf          map[string][]float64 // duration samples in ms, per operation
	slowThreshold time.Duration

	sched gocron.Scheduler
}

func New(backend kv.Store) *Monitor {
	return &Monitor{
		backend:       backend,
		perf:          map[string][]float64{},
		slowThreshold: time.Second,
	}
}

// SetProbes wires the health-check dependencies after construction; the
// store and payment registry are built after the monitor they log through.
func (m *Monitor) SetProbes(store StoreProbe, gateways func() int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.storeProbe = store
	m.gatewayCount = gateways
}

// SetBroadcast attaches a fan-out hook invoked for every log entry.
func (m *Monitor) SetBroadcast(fn func(Entry)) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.broadcast = fn
}

// Log records an entry in the ring buffer and mirrors the newest entries to
// the backend best-effort. Safe on a nil receiver so components can run
// without diagnostics wired.
func (m *Monitor) Log(level Level, component, message string, context map[string]any) {
	if m == nil {
		return
	}

	entry := Entry{
		ID:        "ERR_" + uuid.NewString(),
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Level:     level,
		Component: component,
		Message:   message,
		Context:   context,
	}

	m.mu.Lock()
	m.entries = append([]Entry{entry}, m.entries...)
	if len(m.entries) > maxEntries {
		m.entries = m.entries[:maxEntries]
	}
	persisted := make([]Entry, 0, persistedEntries)
	persisted = append(persisted, m.entries[:min(len(m.entries), persistedEntries)]...)
	fn := m.broadcast
	m.mu.Unlock()

	if m.backend != nil {
		payload, err := json.Marshal(persisted)
		if err == nil {
			if err := m.backend.Set(stdcontext.Background(), errorsKey, string(payload)); err != nil {
				log.Printf("monitor: failed to persist error log: %v", err)
			}
		}
	}

	if fn != nil {
		fn(entry)
	}
}

// Errors returns the buffered entries, newest first, optionally filtered by
// level. Pass an empty level for everything.
func (m *Monitor) Errors(level Level) []Entry {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]Entry, 0, len(m.entries))
	for _, e := range m.entries {
		if level == "" || e.Level == level {
			out = append(out, e)
		}
	}
	return out
}

func (m *Monitor) ClearErrors(ctx stdcontext.Context) {
	m.mu.Lock()
	m.entries = nil
	m.mu.Unlock()

	if m.backend != nil {
		if err := m.backend.Delete(ctx, errorsKey); err != nil {
			log.Printf("monitor: failed to clear persisted errors: %v", err)
		}
	}
}

// CheckHealth probes the store, the key-value backend and the payment
// registry, computes the overall status and persists the snapshot.
func (m *Monitor) CheckHealth(ctx stdcontext.Context) Health {
	var (
		metrics        Metrics
		storeHealthy   bool
		backendHealthy bool
		paymentHealthy bool
	)

	m.mu.Lock()
	storeProbe := m.storeProbe
	gatewayCount := m.gatewayCount
	m.mu.Unlock()

	if storeProbe != nil {
		probed, err := storeProbe(ctx)
		if err != nil {
			m.Log(LevelError, "DataStore", "Data store health check failed", map[string]any{"error": err.Error()})
		} else {
			metrics = probed
			storeHealthy = true
		}
	}

	if m.backend != nil {
		const testKey = "health_check_test"
		err := m.backend.Set(ctx, testKey, "test")
		if err == nil {
			err = m.backend.Delete(ctx, testKey)
		}
		if err != nil {
			m.Log(LevelWarning, "Backend", "Key-value backend not available", map[string]any{"error": err.Error()})
		} else {
			backendHealthy = true
		}
	}

	if gatewayCount != nil && gatewayCount() > 0 {
		paymentHealthy = true
	} else {
		m.Log(LevelWarning, "PaymentService", "Payment service check failed", nil)
	}

	var mem runtime.MemStats
	runtime.ReadMemStats(&mem)
	memoryMB := float64(mem.HeapAlloc) / 1024 / 1024

	errorCount := 0
	m.mu.Lock()
	for _, e := range m.entries {
		if e.Level == LevelError || e.Level == LevelCritical {
			errorCount++
		}
	}
	m.mu.Unlock()

	checks := Checks{
		DataStore:      storeHealthy,
		Backend:        backendHealthy,
		PaymentService: paymentHealthy,
		MemoryUsageMB:  memoryMB,
		ErrorCount:     errorCount,
	}

	status := "healthy"
	switch {
	case !checks.DataStore || !checks.Backend || checks.ErrorCount > 10:
		status = "critical"
	case !checks.PaymentService || checks.MemoryUsageMB > 100 || checks.ErrorCount > 5:
		status = "warning"
	}

	health := Health{
		Status:    status,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Checks:    checks,
		Metrics:   metrics,
	}

	if m.backend != nil {
		if payload, err := json.Marshal(health); err == nil {
			if err := m.backend.Set(ctx, healthKey, string(payload)); err != nil {
				log.Printf("monitor: failed to persist health snapshot: %v", err)
			}
		}
	}

	return health
}

// LastHealth returns the most recently persisted snapshot, if any.
func (m *Monitor) LastHealth(ctx stdcontext.Context) (Health, bool) {
	if m.backend == nil {
		return Health{}, false
	}
	raw, err := m.backend.Get(ctx, healthKey)
	if err != nil {
		return Health{}, false
	}
	var health Health
	if err := json.Unmarshal([]byte(raw), &health); err != nil {
		return Health{}, false
	}
	return health, true
}

// Start schedules the periodic health check.
func (m *Monitor) Start() error {
	sched, err := gocron.NewScheduler()
	if err != nil {
		return err
	}
	_, err = sched.NewJob(
		gocron.DurationJob(checkInterval),
		gocron.NewTask(func() {
			m.CheckHealth(stdcontext.Background())
		}),
	)
	if err != nil {
		return err
	}
	sched.Start()
	m.sched = sched
	return nil
}

func (m *Monitor) Stop() {
	if m.sched != nil {
		if err := m.sched.Shutdown(); err != nil {
			log.Printf("monitor: scheduler shutdown: %v", err)
		}
		m.sched = nil
	}
}
