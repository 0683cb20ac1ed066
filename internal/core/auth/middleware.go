package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/MuhamadAgungGumelar/bizdesk-be/internal/shared/apperror"
)

// AuthMiddleware validates the bearer token and loads the owner into the request context.
// 401 for a missing or bad token, 404 when the owner no longer exists.
func AuthMiddleware(authService *Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Missing authorization header",
			})
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Invalid authorization header format. Use: Bearer <token>",
			})
		}

		owner, err := authService.ResolveOwner(c.UserContext(), parts[1])
		if err != nil {
			if apperror.KindOf(err) == apperror.KindPersistence {
				log.Error().Err(err).Msg("❌ Owner lookup failed")
			}
			return c.Status(apperror.StatusCode(err)).JSON(fiber.Map{
				"error": apperror.PublicMessage(err),
			})
		}

		c.Locals(LocalOwnerID, owner.ID)
		c.Locals(LocalOwner, owner)

		return c.Next()
	}
}

// OwnerID returns the authenticated owner's ID, or false when the middleware did not run.
func OwnerID(c *fiber.Ctx) (uuid.UUID, bool) {
	id, ok := c.Locals(LocalOwnerID).(uuid.UUID)
	return id, ok && id != uuid.Nil
}

// CurrentOwner returns the authenticated owner record.
func CurrentOwner(c *fiber.Ctx) (*Owner, bool) {
	owner, ok := c.Locals(LocalOwner).(*Owner)
	return owner, ok && owner != nil
}
