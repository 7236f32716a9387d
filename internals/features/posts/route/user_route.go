package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"photograph_backend/internals/features/posts/controller"
)

// Authenticated users
func PostUserRoutes(router fiber.Router, db *gorm.DB) {
	postCtrl := controller.NewPostController(db)
	commentCtrl := controller.NewCommentController(db)
	likeCtrl := controller.NewPostLikeController(db)

	posts := router.Group("/posts")
	posts.Post("/", postCtrl.CreatePost)
	posts.Put("/:slug", postCtrl.UpdatePost)
	posts.Delete("/:slug", postCtrl.DeletePost)
	posts.Post("/:slug/comments", commentCtrl.CreateComment)

	comments := router.Group("/comments")
	comments.Delete("/:id", commentCtrl.DeleteComment)

	likes := router.Group("/post-likes")
	likes.Post("/toggle", likeCtrl.ToggleLike)
}
