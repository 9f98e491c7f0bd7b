package auth

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
)

func newTestApp(t *testing.T) (*fiber.App, *Service) {
	t.Helper()
	svc := newTestService(t)
	app := fiber.New()
	RegisterRoutes(app.Group("/api/auth"), svc)
	app.Get("/api/admin/ping", Middleware(svc), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"username": c.Locals("username")})
	})
	return app, svc
}

func TestLoginEndpoint(t *testing.T) {
	app, _ := newTestApp(t)

	body, _ := json.Marshal(loginRequest{Username: "akvin", Password: "242005"})
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	if err != nil || resp.StatusCode != http.StatusOK {
		t.Fatalf("login status: %v %d", err, resp.StatusCode)
	}

	var payload struct {
		Token   string `json:"token"`
		Session State  `json:"session"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if payload.Token == "" || !payload.Session.IsAuthenticated {
		t.Fatalf("unexpected payload %+v", payload)
	}
}

func TestLoginEndpointRejectsBadCredentials(t *testing.T) {
	app, _ := newTestApp(t)

	body := []byte(`{"username":"akvin","password":"nope"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	if err != nil || resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected unauthorized, got %v %d", err, resp.StatusCode)
	}
}

func TestMiddlewareGuardsAdminRoutes(t *testing.T) {
	app, svc := newTestApp(t)

	req := httptest.NewRequest(http.MethodGet, "/api/admin/ping", nil)
	resp, err := app.Test(req)
	if err != nil || resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("missing token must be unauthorized, got %v %d", err, resp.StatusCode)
	}

	token, ok := svc.Login(context.Background(), "akvin", "242005")
	if !ok {
		t.Fatalf("login failed")
	}

	req = httptest.NewRequest(http.MethodGet, "/api/admin/ping", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err = app.Test(req)
	if err != nil || resp.StatusCode != http.StatusOK {
		t.Fatalf("valid token rejected: %v %d", err, resp.StatusCode)
	}

	// token stops working once the session is closed
	svc.Logout(context.Background())
	req = httptest.NewRequest(http.MethodGet, "/api/admin/ping", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err = app.Test(req)
	if err != nil || resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("token must die with the session, got %v %d", err, resp.StatusCode)
	}
}

func TestLogoutEndpoint(t *testing.T) {
	app, svc := newTestApp(t)

	token, _ := svc.Login(context.Background(), "akvin", "242005")
	req := httptest.NewRequest(http.MethodPost, "/api/auth/logout", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	if err != nil || resp.StatusCode != http.StatusOK {
		t.Fatalf("logout status: %v %d", err, resp.StatusCode)
	}
	if svc.State().IsAuthenticated {
		t.Fatalf("session still open after logout")
	}
}

func TestSessionEndpoint(t *testing.T) {
	app, _ := newTestApp(t)

	req := httptest.NewRequest(http.MethodGet, "/api/auth/session", nil)
	resp, err := app.Test(req)
	if err != nil || resp.StatusCode != http.StatusOK {
		t.Fatalf("session status: %v %d", err, resp.StatusCode)
	}

	var state State
	if err := json.NewDecoder(resp.Body).Decode(&state); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if state.IsAuthenticated {
		t.Fatalf("anonymous session must not be authenticated")
	}
}
