package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"photograph_backend/internals/features/reports/controller"
)

// Reviewer-only: review cases and escalation. The caller mounts this group
// behind the reviewer role middleware.
func ModerationReviewerRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := controller.NewModerationController(db)

	postReports := router.Group("/post-reports")
	postReports.Get("/:id/case", ctrl.GetPostReportCase)

	userReports := router.Group("/user-reports")
	userReports.Get("/:id/case", ctrl.GetUserReportCase)

	posts := router.Group("/posts")
	posts.Delete("/:id", ctrl.RemovePostTarget)

	users := router.Group("/users")
	users.Delete("/:id", ctrl.RemoveUserTarget)
}
