package middleware

import (
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"

	"weighttracker/internal/models"
)

// TokenResolver resolves a bearer credential to the user it identifies. The
// default implementation treats the credential as the user's ID; a signed
// token scheme can be swapped in here without touching handlers or services.
type TokenResolver interface {
	ResolveToken(token string) (*models.User, error)
}

// UserKey is the Fiber locals key under which AuthRequired stores the
// resolved user.
const UserKey = "user"

// AuthRequired is a Fiber middleware that checks the Authorization header.
// A missing credential answers 401; a credential that resolves to no user
// answers 403.
func AuthRequired(resolver TokenResolver) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Access token is missing",
			})
		}

		// Expected format: "Bearer <token>"
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Access token is missing",
			})
		}

		user, err := resolver.ResolveToken(parts[1])
		if err != nil {
			log.Printf("Token resolution failed: %v", err)
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"error": "Invalid access token",
			})
		}

		c.Locals(UserKey, user)
		return c.Next()
	}
}

// CurrentUser returns the authenticated user attached by AuthRequired, or
// nil on routes that skipped the middleware.
func CurrentUser(c *fiber.Ctx) *models.User {
	user, _ := c.Locals(UserKey).(*models.User)
	return user
}
