package auth

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"

	"photograph_backend/internals/configs"
	"photograph_backend/internals/constants"
	helper "photograph_backend/internals/helpers"
)

// AuthMiddleware verifies the bearer token and stores the actor's identity
// on the request: user_id, user_name and userRole locals. Everything behind
// /api/u and /api/r goes through here.
func AuthMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString, err := extractBearerToken(c)
		if err != nil {
			return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
		}

		secret := configs.JWTSecret
		if secret == "" {
			return helper.JsonError(c, fiber.StatusInternalServerError, "missing JWT secret")
		}

		claims := jwt.MapClaims{}
		if _, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, errors.New("unexpected signing method")
			}
			return []byte(secret), nil
		}); err != nil {
			return helper.JsonError(c, fiber.StatusUnauthorized, "invalid or expired token")
		}

		userID, _ := claims["user_id"].(string)
		if userID == "" {
			return helper.JsonError(c, fiber.StatusUnauthorized, "token is missing user identity")
		}

		role, _ := claims["role"].(string)
		if role == "" {
			role = constants.RoleUser
		}

		c.Locals("user_id", userID)
		c.Locals("userRole", role)
		if name, ok := claims["user_name"].(string); ok {
			c.Locals("user_name", name)
		}
		return c.Next()
	}
}

func extractBearerToken(c *fiber.Ctx) (string, error) {
	auth := c.Get(fiber.HeaderAuthorization)
	if strings.HasPrefix(auth, "Bearer ") {
		if token := strings.TrimSpace(strings.TrimPrefix(auth, "Bearer ")); token != "" {
			return token, nil
		}
	}
	// cookie fallback for the web frontend
	if token := c.Cookies("access_token"); token != "" {
		return token, nil
	}
	return "", errors.New("missing or malformed Authorization header")
}
