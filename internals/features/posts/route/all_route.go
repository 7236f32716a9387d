package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"photograph_backend/internals/features/posts/controller"
)

// Public (read-only)
func PostPublicRoutes(router fiber.Router, db *gorm.DB) {
	postCtrl := controller.NewPostController(db)
	mapCtrl := controller.NewMapController(db)

	posts := router.Group("/posts")
	posts.Get("/:slug", postCtrl.GetPostBySlug)

	mapGroup := router.Group("/map")
	mapGroup.Get("/posts", mapCtrl.GetMapPosts)
}
