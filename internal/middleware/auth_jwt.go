package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"

	"ripple/dto"
)

type UserClaims struct {
	ID string `json:"_id"`
	jwt.RegisteredClaims
}

// bearerMissing catches the header shapes a client sends when its stored
// token is empty.
func bearerMissing(header string) bool {
	switch strings.TrimSpace(header) {
	case "", "Bearer", "Bearer null", "Bearer undefined":
		return true
	}
	return false
}

// BearerAuth resolves the viewer from an Authorization: Bearer <token>
// header into c.Locals("user_id"). With guardMissing a request without a
// token is rejected; without it the request passes through anonymously.
// A token that is present but invalid or expired is always rejected.
func BearerAuth(secret string, guardMissing bool) fiber.Handler {
	return func(c *fiber.Ctx) error {
		auth := c.Get("Authorization")
		if bearerMissing(auth) {
			if !guardMissing {
				return c.Next()
			}
			return c.Status(fiber.StatusForbidden).
				JSON(dto.Errors("bearer token is undefined"))
		}

		parts := strings.SplitN(auth, " ", 2)
		if len(parts) != 2 {
			return c.Status(fiber.StatusForbidden).JSON(dto.Errors("malformed authorization header"))
		}
		tokenStr := strings.TrimSpace(parts[1])

		var claims UserClaims
		token, err := jwt.ParseWithClaims(
			tokenStr,
			&claims,
			func(t *jwt.Token) (any, error) {
				if t.Method != jwt.SigningMethodHS256 {
					return nil, fiber.ErrForbidden
				}
				return []byte(secret), nil
			},
			jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		)
		if err != nil || !token.Valid {
			return c.Status(fiber.StatusForbidden).JSON(dto.Errors("invalid or expired token"))
		}
		if claims.ID == "" {
			return c.Status(fiber.StatusForbidden).JSON(dto.Errors("missing user id in token"))
		}

		c.Locals("user_id", claims.ID)
		return c.Next()
	}
}
