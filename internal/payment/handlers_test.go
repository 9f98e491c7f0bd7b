package payment

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
)

func TestGatewaysEndpoint(t *testing.T) {
	app := fiber.New()
	RegisterRoutes(app.Group("/api/payments"), NewRegistry(1))

	req := httptest.NewRequest(http.MethodGet, "/api/payments/gateways", nil)
	resp, err := app.Test(req)
	if err != nil || resp.StatusCode != http.StatusOK {
		t.Fatalf("gateways: %v %d", err, resp.StatusCode)
	}

	var payload struct {
		Gateways []string `json:"gateways"`
		Default  string   `json:"default"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(payload.Gateways) != 2 || payload.Default != "razorpay" {
		t.Fatalf("unexpected payload %+v", payload)
	}
}
