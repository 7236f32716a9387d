package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	postModel "photograph_backend/internals/features/posts/model"
	"photograph_backend/internals/features/reports/dto"
	"photograph_backend/internals/features/reports/model"
	userModel "photograph_backend/internals/features/users/model"
	helper "photograph_backend/internals/helpers"
)

// ModerationController serves the reviewer workflow: open a review case for a
// reported target, and execute the removal. Reviewer privilege is enforced by
// the route-group middleware before these handlers run.
type ModerationController struct {
	DB *gorm.DB
}

func NewModerationController(db *gorm.DB) *ModerationController {
	return &ModerationController{DB: db}
}

// GetPostReportCase aggregates every report against the anchor report's post
// into one case. Read-only: opening a case changes nothing.
func (ctrl *ModerationController) GetPostReportCase(c *fiber.Ctx) error {
	id := c.Params("id")

	var anchor model.PostReportModel
	if err := ctrl.DB.Preload("Reporter").First(&anchor, "post_report_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "report does not exist")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to fetch report")
	}

	var siblings []model.PostReportModel
	if err := ctrl.DB.Preload("Reporter").
		Where("post_report_post_id = ? AND post_report_id <> ?", anchor.PostReportPostID, anchor.PostReportID).
		Order("post_report_created_at ASC").
		Find(&siblings).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to fetch reports")
	}

	return helper.JsonOK(c, "", dto.ToPostReviewCase(anchor, siblings))
}

func (ctrl *ModerationController) GetUserReportCase(c *fiber.Ctx) error {
	id := c.Params("id")

	var anchor model.UserReportModel
	if err := ctrl.DB.Preload("Reporter").First(&anchor, "user_report_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "report does not exist")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to fetch report")
	}

	var siblings []model.UserReportModel
	if err := ctrl.DB.Preload("Reporter").
		Where("user_report_user_id = ? AND user_report_id <> ?", anchor.UserReportUserID, anchor.UserReportID).
		Order("user_report_created_at ASC").
		Find(&siblings).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to fetch reports")
	}

	return helper.JsonOK(c, "", dto.ToUserReviewCase(anchor, siblings))
}

// RemovePostTarget executes the escalation on a reported post: reports go
// first, then comments and likes, then the post, all in one transaction so
// no report can outlive its target. Removing an already-removed post is a
// no-op, not an error.
func (ctrl *ModerationController) RemovePostTarget(c *fiber.Ctx) error {
	id := c.Params("id")

	var post postModel.PostModel
	if err := ctrl.DB.First(&post, "post_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonOK(c, "already removed", fiber.Map{"post_id": id})
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to fetch post")
	}

	err := ctrl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("post_report_post_id = ?", post.PostID).Delete(&model.PostReportModel{}).Error; err != nil {
			return err
		}
		if err := tx.Where("comment_post_id = ?", post.PostID).Delete(&postModel.CommentModel{}).Error; err != nil {
			return err
		}
		if err := tx.Where("post_like_post_id = ?", post.PostID).Delete(&postModel.PostLikeModel{}).Error; err != nil {
			return err
		}
		return tx.Delete(&postModel.PostModel{}, "post_id = ?", post.PostID).Error
	})
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonDeleted(c, "post removed", fiber.Map{"post_id": post.PostID})
}

// RemoveUserTarget removes a reported user and everything that depends on
// them: reports they filed or that target them, their comments and likes,
// and their posts with those posts' dependents.
func (ctrl *ModerationController) RemoveUserTarget(c *fiber.Ctx) error {
	id := c.Params("id")

	var target userModel.UserProfileModel
	if err := ctrl.DB.First(&target, "user_profile_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonOK(c, "already removed", fiber.Map{"user_profile_id": id})
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to fetch user")
	}

	err := ctrl.DB.Transaction(func(tx *gorm.DB) error {
		userID := target.UserProfileID

		// Reports targeting the user, and reports the user filed.
		if err := tx.Where("user_report_user_id = ? OR user_report_reporter_id = ?", userID, userID).
			Delete(&model.UserReportModel{}).Error; err != nil {
			return err
		}

		postIDs := tx.Model(&postModel.PostModel{}).
			Select("post_id").
			Where("post_user_id = ?", userID)

		// Post reports filed by the user or aimed at the user's posts.
		if err := tx.Where("post_report_reporter_id = ?", userID).
			Or("post_report_post_id IN (?)", postIDs).
			Delete(&model.PostReportModel{}).Error; err != nil {
			return err
		}

		// Likes the user gave to surviving posts still count against their
		// denormalized counters.
		likedPostIDs := tx.Model(&postModel.PostLikeModel{}).
			Select("post_like_post_id").
			Where("post_like_user_id = ?", userID)
		if err := tx.Model(&postModel.PostModel{}).
			Where("post_id IN (?) AND post_user_id <> ?", likedPostIDs, userID).
			Update("post_like_count", gorm.Expr("CASE WHEN post_like_count > 0 THEN post_like_count - 1 ELSE 0 END")).Error; err != nil {
			return err
		}

		if err := tx.Where("post_like_user_id = ?", userID).
			Or("post_like_post_id IN (?)", postIDs).
			Delete(&postModel.PostLikeModel{}).Error; err != nil {
			return err
		}
		if err := tx.Where("comment_user_id = ?", userID).
			Or("comment_post_id IN (?)", postIDs).
			Delete(&postModel.CommentModel{}).Error; err != nil {
			return err
		}
		if err := tx.Where("post_user_id = ?", userID).Delete(&postModel.PostModel{}).Error; err != nil {
			return err
		}
		return tx.Delete(&userModel.UserProfileModel{}, "user_profile_id = ?", userID).Error
	})
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonDeleted(c, "user removed", fiber.Map{"user_profile_id": target.UserProfileID})
}
