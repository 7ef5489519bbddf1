package middleware

import (
	"net/http/httptest"
	"testing"

	"github.com/ahmetcoskunkizilkaya/uikit-market/internal/config"
	"github.com/gofiber/fiber/v2"
)

func TestAdminTokenBypass(t *testing.T) {
	cfg := &config.Config{AdminToken: "op-secret"}

	// Stand-in for the JWT guard: rejects everything, so any 200 proves the
	// token short-circuited it.
	deny := func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusUnauthorized)
	}

	app := fiber.New()
	app.Get("/admin/ping", AdminTokenBypass(cfg, deny), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	req := httptest.NewRequest("GET", "/admin/ping", nil)
	req.Header.Set("X-Admin-Token", "op-secret")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Errorf("with token: status = %d, want 200", resp.StatusCode)
	}

	resp, err = app.Test(httptest.NewRequest("GET", "/admin/ping", nil))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusUnauthorized {
		t.Errorf("without token: status = %d, want 401", resp.StatusCode)
	}

	req = httptest.NewRequest("GET", "/admin/ping", nil)
	req.Header.Set("X-Admin-Token", "wrong")
	resp, err = app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusUnauthorized {
		t.Errorf("wrong token: status = %d, want 401", resp.StatusCode)
	}
}

func TestAdminTokenBypassDisabledWhenUnset(t *testing.T) {
	cfg := &config.Config{}

	deny := func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusUnauthorized)
	}

	app := fiber.New()
	app.Get("/admin/ping", AdminTokenBypass(cfg, deny), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	// No configured token means no bypass, even for an empty header match.
	resp, err := app.Test(httptest.NewRequest("GET", "/admin/ping", nil))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusUnauthorized {
		t.Errorf("status = %d, want 401", resp.StatusCode)
	}
}
