package middlewares

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
)

// Handler di belakang middleware harus dapat UserContext ber-deadline,
// supaya WithContext(c.UserContext()) di controller benar-benar kena timeout.
func TestRequestContextMiddlewareMemasangDeadline(t *testing.T) {
	app := fiber.New()
	app.Use(RequestContextMiddleware())

	var gotDeadline bool
	var remaining time.Duration
	app.Get("/ping", func(c *fiber.Ctx) error {
		deadline, ok := c.UserContext().Deadline()
		gotDeadline = ok
		if ok {
			remaining = time.Until(deadline)
		}
		return c.SendStatus(fiber.StatusOK)
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/ping", nil))
	if err != nil {
		t.Fatalf("app.Test error: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("status = %d, ingin 200", resp.StatusCode)
	}
	if !gotDeadline {
		t.Fatal("UserContext tidak punya deadline, timeout request tidak akan sampai ke DB")
	}
	if remaining <= 0 || remaining > requestTimeout {
		t.Errorf("sisa deadline %s di luar rentang (0, %s]", remaining, requestTimeout)
	}
}

func TestRequestContextMiddlewareRequestID(t *testing.T) {
	app := fiber.New()
	app.Use(RequestContextMiddleware())
	app.Get("/ping", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	t.Run("generate kalau kosong", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest("GET", "/ping", nil))
		if err != nil {
			t.Fatalf("app.Test error: %v", err)
		}
		if resp.Header.Get("X-Request-ID") == "" {
			t.Error("X-Request-ID kosong, harusnya di-generate")
		}
	})

	t.Run("pakai ID bawaan client", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/ping", nil)
		req.Header.Set("X-Request-ID", "req-abc-123")
		resp, err := app.Test(req)
		if err != nil {
			t.Fatalf("app.Test error: %v", err)
		}
		if got := resp.Header.Get("X-Request-ID"); got != "req-abc-123" {
			t.Errorf("X-Request-ID = %q, ingin %q", got, "req-abc-123")
		}
	})
}
