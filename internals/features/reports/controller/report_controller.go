package controller

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	postModel "photograph_backend/internals/features/posts/model"
	"photograph_backend/internals/features/reports/dto"
	"photograph_backend/internals/features/reports/model"
	userModel "photograph_backend/internals/features/users/model"
	helper "photograph_backend/internals/helpers"
)

type ReportController struct {
	DB *gorm.DB
}

func NewReportController(db *gorm.DB) *ReportController {
	return &ReportController{DB: db}
}

// CreatePostReport files a report against a post. Reports are append-only:
// the same reporter may file against the same post more than once and every
// row is kept for the review case.
func (ctrl *ReportController) CreatePostReport(c *fiber.Ctx) error {
	reporterID, err := helper.GetUserIDFromLocals(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req dto.CreatePostReportRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if err := helper.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorsToMap(err))
	}
	if strings.TrimSpace(req.Reason) == "" {
		return helper.JsonValidationError(c, map[string][]string{"reason": {"must not be empty"}})
	}

	var post postModel.PostModel
	if err := ctrl.DB.First(&post, "post_id = ?", req.PostID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "post does not exist")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to fetch post")
	}
	if post.PostUserID == reporterID {
		return helper.JsonError(c, fiber.StatusForbidden, "you cannot report your own post")
	}

	report := model.PostReportModel{
		PostReportReporterID: reporterID,
		PostReportPostID:     post.PostID,
		PostReportReason:     strings.TrimSpace(req.Reason),
	}
	if err := ctrl.DB.Create(&report).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to create report")
	}
	return helper.JsonCreated(c, "report filed", dto.ToPostReportDTO(report))
}

// CreateUserReport files a report against a user profile. Self-reports are
// rejected.
func (ctrl *ReportController) CreateUserReport(c *fiber.Ctx) error {
	reporterID, err := helper.GetUserIDFromLocals(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req dto.CreateUserReportRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if err := helper.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorsToMap(err))
	}
	if strings.TrimSpace(req.Reason) == "" {
		return helper.JsonValidationError(c, map[string][]string{"reason": {"must not be empty"}})
	}
	if req.UserID == reporterID {
		return helper.JsonError(c, fiber.StatusForbidden, "you cannot report yourself")
	}

	var target userModel.UserProfileModel
	if err := ctrl.DB.First(&target, "user_profile_id = ?", req.UserID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "user does not exist")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to fetch user")
	}

	report := model.UserReportModel{
		UserReportReporterID: reporterID,
		UserReportUserID:     target.UserProfileID,
		UserReportReason:     strings.TrimSpace(req.Reason),
	}
	if err := ctrl.DB.Create(&report).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to create report")
	}
	return helper.JsonCreated(c, "report filed", dto.ToUserReportDTO(report))
}
