package auth

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
)

// app kecil: middleware pertama menanam role ke Locals, lalu role gate, lalu handler
func newRoleTestApp(role string, allowed []string) *fiber.App {
	app := fiber.New()
	app.Get("/guarded",
		func(c *fiber.Ctx) error {
			if role != "" {
				c.Locals("userRole", role)
			}
			return c.Next()
		},
		OnlyRolesSlice("akses ditolak", allowed),
		func(c *fiber.Ctx) error {
			return c.SendString("ok")
		},
	)
	return app
}

func TestRoleMiddleware(t *testing.T) {
	tests := []struct {
		name       string
		role       string
		allowed    []string
		wantStatus int
	}{
		{"admin boleh masuk rute admin", "admin", []string{"admin"}, fiber.StatusOK},
		{"player ditolak di rute admin", "player", []string{"admin"}, fiber.StatusForbidden},
		{"admin boleh masuk rute player", "admin", []string{"player", "admin"}, fiber.StatusOK},
		{"player boleh masuk rute player", "player", []string{"player", "admin"}, fiber.StatusOK},
		{"tanpa role = unauthorized", "", []string{"admin"}, fiber.StatusUnauthorized},
		{"role tak dikenal ditolak", "superuser", []string{"player", "admin"}, fiber.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := newRoleTestApp(tt.role, tt.allowed)
			req := httptest.NewRequest("GET", "/guarded", nil)

			resp, err := app.Test(req)
			if err != nil {
				t.Fatalf("app.Test error: %v", err)
			}
			defer resp.Body.Close()

			if resp.StatusCode != tt.wantStatus {
				t.Errorf("status = %d, want %d", resp.StatusCode, tt.wantStatus)
			}
		})
	}
}

func TestOnlyRolesVariadic(t *testing.T) {
	app := fiber.New()
	app.Get("/x",
		func(c *fiber.Ctx) error {
			c.Locals("userRole", "player")
			return c.Next()
		},
		OnlyRoles("", "admin"),
		func(c *fiber.Ctx) error { return c.SendString("ok") },
	)

	resp, err := app.Test(httptest.NewRequest("GET", "/x", nil))
	if err != nil {
		t.Fatalf("app.Test error: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != fiber.StatusForbidden {
		t.Errorf("status = %d, want %d", resp.StatusCode, fiber.StatusForbidden)
	}
}
