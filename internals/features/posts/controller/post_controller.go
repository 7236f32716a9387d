package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"photograph_backend/internals/configs"
	geocoding "photograph_backend/internals/features/geocoding/service"
	"photograph_backend/internals/features/posts/dto"
	"photograph_backend/internals/features/posts/model"
	reportModel "photograph_backend/internals/features/reports/model"
	helper "photograph_backend/internals/helpers"
)

type PostController struct {
	DB       *gorm.DB
	Resolver geocoding.Resolver
}

func NewPostController(db *gorm.DB) *PostController {
	baseURL := configs.NominatimBaseURL
	if baseURL == "" {
		baseURL = configs.DefaultNominatimBaseURL
	}
	userAgent := configs.NominatimUserAgent
	if userAgent == "" {
		userAgent = configs.DefaultNominatimUserAgent
	}
	return NewPostControllerWithResolver(db, geocoding.NewNominatimResolver(baseURL, userAgent))
}

// NewPostControllerWithResolver injects the geocoding capability; tests swap
// in a stub without touching the pipeline.
func NewPostControllerWithResolver(db *gorm.DB, resolver geocoding.Resolver) *PostController {
	return &PostController{DB: db, Resolver: resolver}
}

// CreatePost validates the input, resolves the location name and persists the
// post. The resolver always completes (success or fallback) before the
// insert, so a persisted post never lacks a location name.
func (ctrl *PostController) CreatePost(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromLocals(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req dto.CreatePostRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if err := helper.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorsToMap(err))
	}

	// External lookup failures degrade to a coordinate string and never fail
	// the request.
	locationName := ctrl.Resolver.ResolveLocationName(c.UserContext(), *req.PostLatitude, *req.PostLongitude)

	post := dto.ToPostModel(req, userID)
	post.PostLocationName = locationName

	if err := ctrl.DB.Create(&post).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to create post")
	}

	if err := ctrl.DB.Preload("User").First(&post, "post_id = ?", post.PostID).Error; err == nil {
		return helper.JsonCreated(c, "post created", dto.ToPostDTO(post))
	}
	return helper.JsonCreated(c, "post created", dto.ToPostDTO(post))
}

func (ctrl *PostController) GetPostBySlug(c *fiber.Ctx) error {
	slug := c.Params("slug")

	var post model.PostModel
	err := ctrl.DB.
		Preload("User").
		Preload("Comments", func(db *gorm.DB) *gorm.DB {
			return db.Order("comment_created_at ASC")
		}).
		Preload("Comments.User").
		First(&post, "post_slug = ?", slug).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "post does not exist")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to fetch post")
	}

	return helper.JsonOK(c, "", dto.ToPostDTO(post))
}

// UpdatePost edits the caption. Slug and location name are immutable once the
// post exists.
func (ctrl *PostController) UpdatePost(c *fiber.Ctx) error {
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
	if post.PostUserID != userID {
		return helper.JsonError(c, fiber.StatusForbidden, "only the owner may edit this post")
	}

	var req dto.UpdatePostRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if err := helper.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorsToMap(err))
	}

	post.PostCaption = req.PostCaption
	if err := ctrl.DB.Model(&post).Update("post_caption", req.PostCaption).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to update post")
	}
	return helper.JsonUpdated(c, "post updated", dto.ToPostDTO(post))
}

// DeletePost removes the owner's post. Reports, comments and likes that hang
// off the post go first so nothing dangles.
func (ctrl *PostController) DeletePost(c *fiber.Ctx) error {
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
	if post.PostUserID != userID {
		return helper.JsonError(c, fiber.StatusForbidden, "only the owner may delete this post")
	}

	err = ctrl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("post_report_post_id = ?", post.PostID).Delete(&reportModel.PostReportModel{}).Error; err != nil {
			return err
		}
		if err := tx.Where("comment_post_id = ?", post.PostID).Delete(&model.CommentModel{}).Error; err != nil {
			return err
		}
		if err := tx.Where("post_like_post_id = ?", post.PostID).Delete(&model.PostLikeModel{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.PostModel{}, "post_id = ?", post.PostID).Error
	})
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonDeleted(c, "post deleted", fiber.Map{"post_id": post.PostID})
}
