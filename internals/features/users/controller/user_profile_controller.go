package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/samber/lo"
	"gorm.io/gorm"

	postDTO "photograph_backend/internals/features/posts/dto"
	postModel "photograph_backend/internals/features/posts/model"
	"photograph_backend/internals/features/users/dto"
	"photograph_backend/internals/features/users/model"
	helper "photograph_backend/internals/helpers"
)

type UserProfileController struct {
	DB *gorm.DB
}

func NewUserProfileController(db *gorm.DB) *UserProfileController {
	return &UserProfileController{DB: db}
}

// GetProfileBySlug returns a profile with the user's posts, newest first.
func (ctrl *UserProfileController) GetProfileBySlug(c *fiber.Ctx) error {
	slug := c.Params("slug")

	var profile model.UserProfileModel
	if err := ctrl.DB.First(&profile, "user_profile_slug = ?", slug).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "user does not exist")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to fetch user")
	}

	var posts []postModel.PostModel
	if err := ctrl.DB.Preload("User").
		Where("post_user_id = ?", profile.UserProfileID).
		Order("post_created_at DESC").
		Find(&posts).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to fetch posts")
	}

	return helper.JsonOK(c, "", fiber.Map{
		"profile": dto.ToUserProfileDTO(profile),
		"posts": lo.Map(posts, func(p postModel.PostModel, _ int) postDTO.PostDTO {
			return postDTO.ToPostDTO(p)
		}),
	})
}
