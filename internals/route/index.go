package routes

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"photograph_backend/internals/constants"
	postRoute "photograph_backend/internals/features/posts/route"
	reportRoute "photograph_backend/internals/features/reports/route"
	userRoute "photograph_backend/internals/features/users/route"
	authMiddleware "photograph_backend/internals/middlewares/auth"
)

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	BaseRoutes(app, db)

	// ===================== GROUPS =====================

	// PUBLIC → no auth
	log.Println("[INFO] Setting up PUBLIC group...")
	public := app.Group("/api/public")

	// PRIVATE (USER) → JWT
	log.Println("[INFO] Setting up PRIVATE group...")
	private := app.Group("/api/u",
		authMiddleware.AuthMiddleware(),
	)

	// REVIEWER → JWT + role check, enforced before any handler runs
	log.Println("[INFO] Setting up REVIEWER group...")
	reviewer := app.Group("/api/r",
		authMiddleware.AuthMiddleware(),
		authMiddleware.OnlyRoles(
			constants.RoleErrorReviewer("moderation"),
			constants.ReviewerAndAbove...,
		),
	)

	// ===================== MOUNT ROUTES =====================

	log.Println("[INFO] Mounting Post routes...")
	postRoute.PostPublicRoutes(public, db)
	postRoute.PostUserRoutes(private, db)

	log.Println("[INFO] Mounting User routes...")
	userRoute.UserPublicRoutes(public, db)

	log.Println("[INFO] Mounting Report routes...")
	reportRoute.ReportUserRoutes(private, db)
	reportRoute.ModerationReviewerRoutes(reviewer, db)
}
