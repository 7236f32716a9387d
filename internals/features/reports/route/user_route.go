package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"photograph_backend/internals/features/reports/controller"
	middlewares "photograph_backend/internals/middlewares"
)

// Authenticated users: filing reports.
func ReportUserRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := controller.NewReportController(db)

	postReports := router.Group("/post-reports", middlewares.ReportRateLimiter())
	postReports.Post("/", ctrl.CreatePostReport)

	userReports := router.Group("/user-reports", middlewares.ReportRateLimiter())
	userReports.Post("/", ctrl.CreateUserReport)
}
