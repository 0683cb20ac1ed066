package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/MuhamadAgungGumelar/bizdesk-be/internal/core/audit"
)

// AuditContext attaches request metadata to the user context so audit entries record who did what from where
func AuditContext() fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx := audit.WithRequest(c.UserContext(), audit.Request{
			IPAddress: c.IP(),
			Method:    c.Method(),
			Endpoint:  c.Path(),
		})
		c.SetUserContext(ctx)
		return c.Next()
	}
}
