package trip

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"

	"github.com/SOHAMSUPEKAR24/travle1/internal/kv"
	"github.com/SOHAMSUPEKAR24/travle1/internal/models"
	"github.com/SOHAMSUPEKAR24/travle1/internal/monitor"
	"github.com/SOHAMSUPEKAR24/travle1/internal/store"
)

func allowAll(c *fiber.Ctx) error { return c.Next() }

func newTestApp(t *testing.T) (*fiber.App, *Service) {
	t.Helper()
	backend, err := kv.NewFile(t.TempDir())
	if err != nil {
		t.Fatalf("file backend: %v", err)
	}
	svc := NewService(store.New(backend, monitor.New(nil)))
	app := fiber.New()
	RegisterRoutes(app.Group("/api/trips"), svc, allowAll)
	return app, svc
}

func sampleTrip() models.Trip {
	return models.Trip{
		Title:          "Spiti Valley Circuit",
		Location:       "Himachal Pradesh, India",
		StartDate:      "2027-07-01",
		EndDate:        "2027-07-09",
		Price:          42999,
		Currency:       "INR",
		Capacity:       16,
		AvailableSeats: 16,
		Categories:     []string{"Mountain", "Adventure"},
		Featured:       true,
	}
}

func TestTripListAndFilters(t *testing.T) {
	app, svc := newTestApp(t)
	ctx := context.Background()

	if _, err := svc.Create(ctx, sampleTrip()); err != nil {
		t.Fatalf("create: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/trips/", nil)
	resp, err := app.Test(req)
	if err != nil || resp.StatusCode != http.StatusOK {
		t.Fatalf("list: %v %d", err, resp.StatusCode)
	}
	var trips []models.Trip
	if err := json.NewDecoder(resp.Body).Decode(&trips); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(trips) != 2 {
		t.Fatalf("expected seeded plus created, got %d", len(trips))
	}

	req = httptest.NewRequest(http.MethodGet, "/api/trips/?featured=true", nil)
	resp, _ = app.Test(req)
	trips = nil
	_ = json.NewDecoder(resp.Body).Decode(&trips)
	for _, trip := range trips {
		if !trip.Featured {
			t.Fatalf("featured filter leaked %+v", trip)
		}
	}

	req = httptest.NewRequest(http.MethodGet, "/api/trips/?category=Mountain", nil)
	resp, _ = app.Test(req)
	trips = nil
	_ = json.NewDecoder(resp.Body).Decode(&trips)
	if len(trips) != 1 || trips[0].Title != "Spiti Valley Circuit" {
		t.Fatalf("category filter wrong: %+v", trips)
	}
}

func TestTripGetByID(t *testing.T) {
	app, _ := newTestApp(t)

	req := httptest.NewRequest(http.MethodGet, "/api/trips/TRIP_001", nil)
	resp, err := app.Test(req)
	if err != nil || resp.StatusCode != http.StatusOK {
		t.Fatalf("get: %v %d", err, resp.StatusCode)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/trips/TRIP_missing", nil)
	resp, _ = app.Test(req)
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.StatusCode)
	}
}

func TestTripCreateEndpoint(t *testing.T) {
	app, _ := newTestApp(t)

	body, _ := json.Marshal(sampleTrip())
	req := httptest.NewRequest(http.MethodPost, "/api/trips/", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	if err != nil || resp.StatusCode != http.StatusCreated {
		t.Fatalf("create: %v %d", err, resp.StatusCode)
	}

	invalid := sampleTrip()
	invalid.Title = ""
	invalid.StartDate = "2027-07-09"
	invalid.EndDate = "2027-07-01"
	body, _ = json.Marshal(invalid)
	req = httptest.NewRequest(http.MethodPost, "/api/trips/", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, _ = app.Test(req)
	if resp.StatusCode != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", resp.StatusCode)
	}
	var payload struct {
		Errors []string `json:"errors"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil || len(payload.Errors) < 2 {
		t.Fatalf("expected collected violations, got %v %v", payload, err)
	}
}

func TestTripUpdateAndDeleteEndpoints(t *testing.T) {
	app, svc := newTestApp(t)
	created, err := svc.Create(context.Background(), sampleTrip())
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	body := []byte(`{"availableSeats": 5}`)
	req := httptest.NewRequest(http.MethodPut, "/api/trips/"+created.ID, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	if err != nil || resp.StatusCode != http.StatusOK {
		t.Fatalf("update: %v %d", err, resp.StatusCode)
	}
	var updated models.Trip
	_ = json.NewDecoder(resp.Body).Decode(&updated)
	if updated.AvailableSeats != 5 {
		t.Fatalf("merge not applied: %+v", updated)
	}

	req = httptest.NewRequest(http.MethodDelete, "/api/trips/"+created.ID, nil)
	resp, _ = app.Test(req)
	if resp.StatusCode != http.StatusNoContent {
		t.Fatalf("delete: %d", resp.StatusCode)
	}

	req = httptest.NewRequest(http.MethodDelete, "/api/trips/"+created.ID, nil)
	resp, _ = app.Test(req)
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("second delete must 404, got %d", resp.StatusCode)
	}
}
