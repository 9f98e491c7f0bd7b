// Package store owns the root document and every mutation of it. All
// operations are whole-document read-modify-write under a single mutex;
// there is one writer by design, and the last write wins.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/SOHAMSUPEKAR24/travle1/internal/kv"
	"github.com/SOHAMSUPEKAR24/travle1/internal/models"
	"github.com/SOHAMSUPEKAR24/travle1/internal/monitor"
)

const (
	rootKey      = "travelbaba_data"
	backupPrefix = rootKey + "_backup_"
)

type DataStore struct {
	backend kv.Store
	mon     *monitor.Monitor

	mu  sync.Mutex
	now func() time.Time
}

func New(backend kv.Store, mon *monitor.Monitor) *DataStore {
	return &DataStore{
		backend: backend,
		mon:     mon,
		now:     time.Now,
	}
}

// load reads the whole root document, falling back to the compiled-in
// defaults when nothing is persisted or the stored blob cannot be parsed.
func (s *DataStore) load(ctx context.Context) models.Document {
	doc := models.DefaultDocument(s.now())

	raw, err := s.backend.Get(ctx, rootKey)
	if errors.Is(err, kv.ErrNotFound) {
		return doc
	}
	if err != nil {
		s.mon.Log(monitor.LevelError, "DataStore", "Error loading data from backend", map[string]any{"error": err.Error()})
		return doc
	}

	if err := json.Unmarshal([]byte(raw), &doc); err != nil {
		s.mon.Log(monitor.LevelError, "DataStore", "Error parsing stored data", map[string]any{"error": err.Error()})
		return models.DefaultDocument(s.now())
	}
	return doc
}

func (s *DataStore) save(ctx context.Context, doc models.Document) error {
	payload, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("marshal document: %w", err)
	}
	if err := s.backend.Set(ctx, rootKey, string(payload)); err != nil {
		s.mon.Log(monitor.LevelError, "DataStore", "Error saving data to backend", map[string]any{"error": err.Error()})
		return fmt.Errorf("persist document: %w", err)
	}
	return nil
}

// Seed persists the default document once, on first boot only.
func (s *DataStore) Seed(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.backend.Get(ctx, rootKey); !errors.Is(err, kv.ErrNotFound) {
		return err
	}
	return s.save(ctx, models.DefaultDocument(s.now()))
}

// HealthMetrics is the store probe handed to the monitor: it fails when the
// backend cannot be read and otherwise reports entity counts and data size.
func (s *DataStore) HealthMetrics(ctx context.Context) (monitor.Metrics, error) {
	raw, err := s.backend.Get(ctx, rootKey)
	if err != nil && !errors.Is(err, kv.ErrNotFound) {
		return monitor.Metrics{}, err
	}

	doc := s.load(ctx)
	size := len(raw)
	if size == 0 {
		if payload, err := json.Marshal(doc); err == nil {
			size = len(payload)
		}
	}

	return monitor.Metrics{
		TotalTrips:     len(doc.Trips),
		TotalBookings:  len(doc.Bookings),
		TotalCustomers: len(doc.Customers),
		TotalBlogs:     len(doc.Blogs),
		DataSizeBytes:  size,
	}, nil
}

func (s *DataStore) timestamp() string {
	return s.now().UTC().Format(time.RFC3339)
}

func newID(prefix string) string {
	return prefix + "_" + uuid.NewString()
}

// mergeEntity applies a shallow JSON merge of partial fields onto an
// existing record; the identifier is not patchable.
func mergeEntity[T any](entity T, updates map[string]any) (T, error) {
	var out T

	base, err := json.Marshal(entity)
	if err != nil {
		return out, err
	}
	fields := map[string]any{}
	if err := json.Unmarshal(base, &fields); err != nil {
		return out, err
	}
	for k, v := range updates {
		if k == "id" {
			continue
		}
		fields[k] = v
	}
	merged, err := json.Marshal(fields)
	if err != nil {
		return out, err
	}
	if err := json.Unmarshal(merged, &out); err != nil {
		return out, fmt.Errorf("invalid update fields: %w", err)
	}
	return out, nil
}
