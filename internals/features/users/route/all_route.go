package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"photograph_backend/internals/features/users/controller"
)

// Public (read-only)
func UserPublicRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := controller.NewUserProfileController(db)

	users := router.Group("/users")
	users.Get("/:slug", ctrl.GetProfileBySlug)
}
