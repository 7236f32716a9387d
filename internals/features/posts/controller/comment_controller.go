package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"photograph_backend/internals/features/posts/dto"
	"photograph_backend/internals/features/posts/model"
	helper "photograph_backend/internals/helpers"
)

type CommentController struct {
	DB *gorm.DB
}

func NewCommentController(db *gorm.DB) *CommentController {
	return &CommentController{DB: db}
}

func (ctrl *CommentController) CreateComment(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromLocals(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	slug := c.Params("slug")

	var post model.PostModel
	if err := ctrl.DB.First(&post, "post_slug = ?", slug).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "post does not exist")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to fetch post")
	}

	var req dto.CreateCommentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if err := helper.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorsToMap(err))
	}

	comment := model.CommentModel{
		CommentUserID: userID,
		CommentPostID: post.PostID,
		CommentText:   req.CommentText,
	}
	if err := ctrl.DB.Create(&comment).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to create comment")
	}
	return helper.JsonCreated(c, "comment created", dto.ToCommentDTO(comment))
}

func (ctrl *CommentController) DeleteComment(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromLocals(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	id := c.Params("id")

	var comment model.CommentModel
	if err := ctrl.DB.First(&comment, "comment_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "comment does not exist")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to fetch comment")
	}
	if comment.CommentUserID != userID {
		return helper.JsonError(c, fiber.StatusForbidden, "only the author may delete this comment")
	}

	if err := ctrl.DB.Delete(&model.CommentModel{}, "comment_id = ?", comment.CommentID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to delete comment")
	}
	return helper.JsonDeleted(c, "comment deleted", fiber.Map{"comment_id": comment.CommentID})
}
