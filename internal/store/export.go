package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/tidwall/gjson"

	"github.com/SOHAMSUPEKAR24/travle1/internal/models"
	"github.com/SOHAMSUPEKAR24/travle1/internal/monitor"
)

const exportVersion = "1.0"

type exportDocument struct {
	models.Document
	ExportedAt string `json:"exportedAt"`
	Version    string `json:"version"`
}

var importedCollections = []string{"trips", "bookings", "customers", "blogs"}

// Export serializes the whole root document plus an export stamp.
func (s *DataStore) Export(ctx context.Context) (string, error) {
	stop := s.mon.StartTiming("exportData")
	defer stop()

	s.mu.Lock()
	doc := s.load(ctx)
	s.mu.Unlock()

	payload, err := json.MarshalIndent(exportDocument{
		Document:   doc,
		ExportedAt: s.timestamp(),
		Version:    exportVersion,
	}, "", "  ")
	if err != nil {
		s.mon.Log(monitor.LevelError, "DataStore", "Failed to export data", map[string]any{"error": err.Error()})
		return "", err
	}

	s.mon.Log(monitor.LevelInfo, "DataStore", "Data exported successfully", map[string]any{
		"trips":     len(doc.Trips),
		"bookings":  len(doc.Bookings),
		"customers": len(doc.Customers),
		"blogs":     len(doc.Blogs),
	})
	return string(payload), nil
}

// Import replaces the root document with the given JSON payload. The prior
// document is snapshotted under a timestamped backup key first. A payload
// whose top-level collections are missing or not arrays is rejected as a
// whole and the existing data is left untouched.
func (s *DataStore) Import(ctx context.Context, jsonData string) bool {
	stop := s.mon.StartTiming("importData")
	defer stop()

	if !gjson.Valid(jsonData) {
		s.mon.Log(monitor.LevelError, "DataStore", "Failed to import data", map[string]any{"error": "invalid JSON"})
		return false
	}
	for _, field := range importedCollections {
		if !gjson.Get(jsonData, field).IsArray() {
			s.mon.Log(monitor.LevelError, "DataStore", "Failed to import data", map[string]any{
				"error": fmt.Sprintf("invalid data structure: %s is not an array", field),
			})
			return false
		}
	}

	incoming := models.DefaultDocument(s.now())
	if err := json.Unmarshal([]byte(jsonData), &incoming); err != nil {
		s.mon.Log(monitor.LevelError, "DataStore", "Failed to import data", map[string]any{"error": err.Error()})
		return false
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	current := s.load(ctx)
	backupKey := fmt.Sprintf("%s%d", backupPrefix, s.now().UnixMilli())
	snapshot, err := json.Marshal(current)
	if err == nil {
		err = s.backend.Set(ctx, backupKey, string(snapshot))
	}
	if err != nil {
		s.mon.Log(monitor.LevelError, "DataStore", "Failed to back up data before import", map[string]any{"error": err.Error()})
		return false
	}

	if err := s.save(ctx, incoming); err != nil {
		return false
	}

	s.mon.Log(monitor.LevelInfo, "DataStore", "Data imported successfully", map[string]any{
		"trips":     len(incoming.Trips),
		"bookings":  len(incoming.Bookings),
		"customers": len(incoming.Customers),
		"blogs":     len(incoming.Blogs),
		"backupKey": backupKey,
	})
	return true
}

// BackupKeys lists the snapshot keys accumulated by imports. Backups are
// never pruned automatically.
func (s *DataStore) BackupKeys(ctx context.Context) ([]string, error) {
	return s.backend.Keys(ctx, backupPrefix)
}
