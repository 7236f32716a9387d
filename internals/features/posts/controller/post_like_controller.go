package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"photograph_backend/internals/features/posts/dto"
	"photograph_backend/internals/features/posts/model"
	helper "photograph_backend/internals/helpers"
)

type PostLikeController struct {
	DB *gorm.DB
}

func NewPostLikeController(db *gorm.DB) *PostLikeController {
	return &PostLikeController{DB: db}
}

// ToggleLike likes the post if the user has not liked it yet, otherwise
// removes the like. The denormalized counter never drops below zero.
func (ctrl *PostLikeController) ToggleLike(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromLocals(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req dto.TogglePostLikeRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if err := helper.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorsToMap(err))
	}

	var post model.PostModel
	if err := ctrl.DB.First(&post, "post_id = ?", req.PostID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "post does not exist")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to fetch post")
	}

	liked := false
	err = ctrl.DB.Transaction(func(tx *gorm.DB) error {
		var existing model.PostLikeModel
		findErr := tx.First(&existing, "post_like_post_id = ? AND post_like_user_id = ?", post.PostID, userID).Error

		switch {
		case findErr == nil:
			if err := tx.Delete(&model.PostLikeModel{}, "post_like_id = ?", existing.PostLikeID).Error; err != nil {
				return err
			}
			return tx.Model(&model.PostModel{}).
				Where("post_id = ?", post.PostID).
				Update("post_like_count", gorm.Expr("CASE WHEN post_like_count > 0 THEN post_like_count - 1 ELSE 0 END")).Error

		case errors.Is(findErr, gorm.ErrRecordNotFound):
			liked = true
			like := model.PostLikeModel{
				PostLikePostID: post.PostID,
				PostLikeUserID: userID,
			}
			if err := tx.Create(&like).Error; err != nil {
				return err
			}
			return tx.Model(&model.PostModel{}).
				Where("post_id = ?", post.PostID).
				Update("post_like_count", gorm.Expr("post_like_count + 1")).Error

		default:
			return findErr
		}
	})
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to toggle like")
	}

	var count int64
	if err := ctrl.DB.Model(&model.PostModel{}).
		Select("post_like_count").
		Where("post_id = ?", post.PostID).
		Scan(&count).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to read like count")
	}

	return helper.JsonOK(c, "like toggled", fiber.Map{
		"post_id":         post.PostID,
		"liked":           liked,
		"post_like_count": count,
	})
}
