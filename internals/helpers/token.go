package helper

import (
	"github.com/gofiber/fiber/v2"
)

// GetUserIDFromLocals reads the authenticated user id the auth middleware
// stored on the request. Empty means the route was mounted without auth.
func GetUserIDFromLocals(c *fiber.Ctx) (string, error) {
	id, ok := c.Locals("user_id").(string)
	if !ok || id == "" {
		return "", fiber.NewError(fiber.StatusUnauthorized, "user is not logged in")
	}
	return id, nil
}

func GetUserNameFromLocals(c *fiber.Ctx) string {
	name, _ := c.Locals("user_name").(string)
	return name
}

func GetUserRoleFromLocals(c *fiber.Ctx) string {
	role, _ := c.Locals("userRole").(string)
	return role
}
