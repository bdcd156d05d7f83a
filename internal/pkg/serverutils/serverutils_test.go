package serverutils

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signTestToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(jwtSecret())
	require.NoError(t, err)
	return signed
}

func decodeErrorBody(t *testing.T, body io.Reader) ErrorBody {
	t.Helper()
	var out ErrorBody
	require.NoError(t, json.NewDecoder(body).Decode(&out))
	return out
}

func TestErrorHandlerMiddleware(t *testing.T) {
	app := fiber.New()
	app.Use(ErrorHandlerMiddleware())
	app.Get("/bad", func(c *fiber.Ctx) error { return BadRequest("bad input") })
	app.Get("/missing", func(c *fiber.Ctx) error { return NotFound("Session not found") })
	app.Get("/boom", func(c *fiber.Ctx) error { return Internal("upstream exploded") })
	app.Get("/fiber", func(c *fiber.Ctx) error { return fiber.NewError(fiber.StatusForbidden, "nope") })

	tests := []struct {
		path     string
		wantCode int
		wantMsg  string
	}{
		{"/bad", 400, "bad input"},
		{"/missing", 404, "Session not found"},
		{"/boom", 500, "upstream exploded"},
		{"/fiber", 403, "nope"},
	}

	for _, tt := range tests {
		resp, err := app.Test(httptest.NewRequest("GET", tt.path, nil))
		require.NoError(t, err)
		assert.Equal(t, tt.wantCode, resp.StatusCode, tt.path)
		assert.Equal(t, tt.wantMsg, decodeErrorBody(t, resp.Body).Error, tt.path)
	}
}

func TestValidateRequest(t *testing.T) {
	type payload struct {
		Email string `validate:"required,email"`
		Name  string `validate:"required,min=3"`
	}

	t.Run("valid", func(t *testing.T) {
		err := ValidateRequest(payload{Email: "a@b.co", Name: "abc"})
		assert.NoError(t, err)
	})

	t.Run("invalid fields folded into message", func(t *testing.T) {
		err := ValidateRequest(payload{Email: "not-an-email"})
		require.Error(t, err)

		httpErr, ok := err.(*HTTPError)
		require.True(t, ok)
		assert.Equal(t, fiber.StatusBadRequest, httpErr.Code)
		assert.Contains(t, httpErr.Message, "Email is email")
		assert.Contains(t, httpErr.Message, "Name is required")
	})
}

func TestJwtMiddleware(t *testing.T) {
	app := fiber.New()
	app.Get("/protected", JwtMiddleware, func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"user_id": c.Locals("user_id"),
			"role":    c.Locals("role"),
		})
	})

	t.Run("missing header", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest("GET", "/protected", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("garbage token", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/protected", nil)
		req.Header.Set("Authorization", "Bearer not.a.token")
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("expired token", func(t *testing.T) {
		token := signTestToken(t, jwt.MapClaims{
			"user_id": "uid-1",
			"role":    "user",
			"exp":     time.Now().Add(-time.Hour).Unix(),
		})
		req := httptest.NewRequest("GET", "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("valid token sets locals", func(t *testing.T) {
		token := signTestToken(t, jwt.MapClaims{
			"user_id": "uid-1",
			"role":    "user",
			"exp":     time.Now().Add(time.Hour).Unix(),
		})
		req := httptest.NewRequest("GET", "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)

		var body map[string]string
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Equal(t, "uid-1", body["user_id"])
		assert.Equal(t, "user", body["role"])
	})
}

func TestAdminMiddleware(t *testing.T) {
	app := fiber.New()
	app.Get("/admin", AdminMiddleware, func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})

	t.Run("non-admin rejected", func(t *testing.T) {
		token := signTestToken(t, jwt.MapClaims{
			"user_id": "uid-1",
			"role":    "user",
			"exp":     time.Now().Add(time.Hour).Unix(),
		})
		req := httptest.NewRequest("GET", "/admin", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
	})

	t.Run("admin allowed", func(t *testing.T) {
		token := signTestToken(t, jwt.MapClaims{
			"user_id": "uid-admin",
			"role":    "admin",
			"exp":     time.Now().Add(time.Hour).Unix(),
		})
		req := httptest.NewRequest("GET", "/admin", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	})
}

func TestConfigureJWTSecret(t *testing.T) {
	ConfigureJWTSecret("configured-secret")
	defer ConfigureJWTSecret("")

	app := fiber.New()
	app.Get("/protected", JwtMiddleware, func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})

	t.Run("token signed with configured secret accepted", func(t *testing.T) {
		assert.Equal(t, []byte("configured-secret"), JWTSecret())

		token := signTestToken(t, jwt.MapClaims{
			"user_id": "uid-1",
			"role":    "user",
			"exp":     time.Now().Add(time.Hour).Unix(),
		})
		req := httptest.NewRequest("GET", "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	})

	t.Run("token signed with fallback secret rejected", func(t *testing.T) {
		token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
			"user_id": "uid-1",
			"exp":     time.Now().Add(time.Hour).Unix(),
		})
		signed, err := token.SignedString([]byte("default_secret"))
		require.NoError(t, err)

		req := httptest.NewRequest("GET", "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+signed)
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	})
}
