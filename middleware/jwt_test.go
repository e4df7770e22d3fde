package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"barasho/config"
	"barasho/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
)

func withJWTConfig(t *testing.T) {
	t.Helper()
	prev := config.AppConfig
	config.AppConfig = &config.Config{JWTKey: "test-secret"}
	t.Cleanup(func() { config.AppConfig = prev })
}

func identityApp() *fiber.App {
	app := fiber.New()
	app.Get("/me", JWTMiddleware, func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"userId": c.Locals("userId"),
			"role":   c.Locals("role"),
		})
	})
	app.Get("/admin", JWTMiddleware, AdminOnly, func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})
	app.Get("/public", OptionalJWT, func(c *fiber.Ctx) error {
		if _, ok := c.Locals("userId").(uint); ok {
			return c.SendString("signed-in")
		}
		return c.SendString("anonymous")
	})
	return app
}

func TestJWTRoundtrip(t *testing.T) {
	withJWTConfig(t)
	app := identityApp()

	token, err := GenerateJWT(42, "Ayaan", "admin", "ayaan@example.com")
	require.NoError(t, err)

	req := httptest.NewRequest(fiber.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestJWTRejectsMissingAndMangledTokens(t *testing.T) {
	withJWTConfig(t)
	app := identityApp()

	// No header at all
	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/me", nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	// Wrong scheme
	req := httptest.NewRequest(fiber.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Basic abcdef")
	resp, err = app.Test(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	// Garbage token
	req = httptest.NewRequest(fiber.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer not.a.token")
	resp, err = app.Test(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAdminOnly(t *testing.T) {
	withJWTConfig(t)
	app := identityApp()

	adminToken, err := GenerateJWT(1, "Admin", "ADMIN", "admin@example.com")
	require.NoError(t, err)
	userToken, err := GenerateJWT(2, "User", "user", "user@example.com")
	require.NoError(t, err)

	req := httptest.NewRequest(fiber.MethodGet, "/admin", nil)
	req.Header.Set("Authorization", "Bearer "+adminToken)
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	req = httptest.NewRequest(fiber.MethodGet, "/admin", nil)
	req.Header.Set("Authorization", "Bearer "+userToken)
	resp, err = app.Test(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestOptionalJWT(t *testing.T) {
	withJWTConfig(t)
	app := identityApp()

	// Anonymous passes through
	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/public", nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	// Invalid token is treated as anonymous, not rejected
	req := httptest.NewRequest(fiber.MethodGet, "/public", nil)
	req.Header.Set("Authorization", "Bearer broken")
	resp, err = app.Test(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	// Valid token populates the identity
	token, err := GenerateJWT(3, "User", models.RoleUser, "user@example.com")
	require.NoError(t, err)
	req = httptest.NewRequest(fiber.MethodGet, "/public", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err = app.Test(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestNormalizeRole(t *testing.T) {
	require.Equal(t, models.RoleAdmin, models.NormalizeRole("admin"))
	require.Equal(t, models.RoleAdmin, models.NormalizeRole(" ADMIN "))
	require.Equal(t, models.RoleUser, models.NormalizeRole("user"))
	require.Equal(t, models.RoleUser, models.NormalizeRole(""))
	require.Equal(t, models.RoleUser, models.NormalizeRole("something-else"))
}
