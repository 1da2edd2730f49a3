package middleware

import (
	"errors"
	"os"
	"strings"

	"hotel_manager/helper"
	"hotel_manager/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

func Protected() fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := c.Cookies("access_token")

		if token == "" {
			auth := c.Get("Authorization")
			if strings.HasPrefix(auth, "Bearer ") {
				token = strings.TrimPrefix(auth, "Bearer ")
			}
		}

		if token == "" {
			return utils.ErrorResponse(c, 401, "Missing token", errors.New("no token"))
		}

		jwtToken, err := jwt.Parse(token, func(t *jwt.Token) (interface{}, error) {
			return []byte(os.Getenv("JWT_SECRET")), nil
		})
		if err != nil || !jwtToken.Valid {
			return utils.ErrorResponse(c, 401, "Invalid token", err)
		}

		c.Locals("user", jwtToken)
		return c.Next()
	}
}

func OptionalJWT() fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString := c.Cookies("access_token")
		if tokenString == "" {
			auth := c.Get("Authorization")
			if strings.HasPrefix(auth, "Bearer ") {
				tokenString = strings.TrimPrefix(auth, "Bearer ")
			}
		}
		if tokenString == "" {
			c.Locals("user", nil)
			return c.Next()
		}

		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, errors.New("unexpected signing method")
			}
			return []byte(os.Getenv("JWT_SECRET")), nil
		})

		if err != nil || !token.Valid {
			c.Locals("user", nil)
			return c.Next()
		}

		c.Locals("user", token)
		return c.Next()
	}
}

// OptionalAuth resolves the client profile behind an optional token. Guests
// get clientId 0.
func OptionalAuth() fiber.Handler {
	return func(c *fiber.Ctx) error {
		claim, client := helper.GetInfoClientFromToken(c)

		if claim.ClientId == 0 {
			c.Locals("clientId", uint(0))
			return c.Next()
		}

		c.Locals("clientId", claim.ClientId)
		if client.ID > 0 {
			c.Locals("client", &client)
		}

		return c.Next()
	}
}

// CartSession guarantees an anonymous cart identity: a server-issued session
// key cookie for requests without an authenticated client.
func CartSession() fiber.Handler {
	return func(c *fiber.Ctx) error {
		sessionKey := c.Cookies("cart_session")
		if sessionKey == "" {
			sessionKey = uuid.NewString()
			c.Cookie(&fiber.Cookie{
				Name:     "cart_session",
				Value:    sessionKey,
				HTTPOnly: true,
				SameSite: "Lax",
				Path:     "/",
			})
		}
		c.Locals("sessionKey", sessionKey)
		return c.Next()
	}
}
