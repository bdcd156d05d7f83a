package serverutils

import (
	"fmt"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

var configuredSecret []byte

// ConfigureJWTSecret sets the process-wide signing secret, normally from
// config at startup. An empty value falls back to the JWT_SECRET env var.
func ConfigureJWTSecret(secret string) {
	configuredSecret = []byte(secret)
}

// JWTSecret returns the active signing secret.
func JWTSecret() []byte {
	return jwtSecret()
}

func jwtSecret() []byte {
	if len(configuredSecret) > 0 {
		return configuredSecret
	}
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = "default_secret"
	}
	return []byte(secret)
}

func parseToken(tokenStr string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
		// Reject tokens signed with anything other than our HMAC secret.
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return jwtSecret(), nil
	})
	if err != nil || token == nil || !token.Valid {
		return nil, fmt.Errorf("invalid or expired token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, fmt.Errorf("invalid token claims")
	}
	return claims, nil
}

// JwtMiddleware authenticates a Bearer token, verifying signature and expiry,
// and stores user_id and role in the request locals.
func JwtMiddleware(ctx *fiber.Ctx) error {
	authHeader := ctx.Get("Authorization")
	if len(authHeader) < 7 || authHeader[:7] != "Bearer " {
		return ctx.Status(fiber.StatusUnauthorized).JSON(ErrorBody{Error: "Missing or invalid authorization header"})
	}

	claims, err := parseToken(authHeader[7:])
	if err != nil {
		return ctx.Status(fiber.StatusUnauthorized).JSON(ErrorBody{Error: err.Error()})
	}

	ctx.Locals("user_id", claims["user_id"])
	if role, exists := claims["role"]; exists {
		ctx.Locals("role", role)
	}
	return ctx.Next()
}

// AdminMiddleware is JwtMiddleware plus an admin role check.
func AdminMiddleware(ctx *fiber.Ctx) error {
	authHeader := ctx.Get("Authorization")
	if len(authHeader) < 7 || authHeader[:7] != "Bearer " {
		return ctx.Status(fiber.StatusUnauthorized).JSON(ErrorBody{Error: "Missing or invalid authorization header"})
	}

	claims, err := parseToken(authHeader[7:])
	if err != nil {
		return ctx.Status(fiber.StatusUnauthorized).JSON(ErrorBody{Error: err.Error()})
	}

	role, ok := claims["role"].(string)
	if !ok {
		return ctx.Status(fiber.StatusForbidden).JSON(ErrorBody{Error: "Access denied: Role missing"})
	}
	if role != "admin" {
		return ctx.Status(fiber.StatusForbidden).JSON(ErrorBody{Error: "Access denied: Admins only"})
	}

	if userId, exists := claims["user_id"]; exists {
		ctx.Locals("user_id", userId)
	}
	return ctx.Next()
}

// UserIDFromLocals returns the authenticated subject id set by JwtMiddleware.
func UserIDFromLocals(ctx *fiber.Ctx) (string, error) {
	uid, ok := ctx.Locals("user_id").(string)
	if !ok || uid == "" {
		return "", fiber.NewError(fiber.StatusUnauthorized, "Missing token subject")
	}
	return uid, nil
}
