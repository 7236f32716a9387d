package dto

import (
	"time"

	"github.com/samber/lo"

	"photograph_backend/internals/features/reports/model"
)

// ============================
// Request DTOs
// ============================
type CreatePostReportRequest struct {
	PostID string `json:"post_id" validate:"required,uuid4"`
	Reason string `json:"reason" validate:"required"`
}

type CreateUserReportRequest struct {
	UserID string `json:"user_id" validate:"required,uuid4"`
	Reason string `json:"reason" validate:"required"`
}

// ============================
// Response DTOs
// ============================
type PostReportDTO struct {
	PostReportID         string    `json:"post_report_id"`
	PostReportReporterID string    `json:"post_report_reporter_id"`
	ReporterName         string    `json:"reporter_name"`
	PostReportPostID     string    `json:"post_report_post_id"`
	PostReportReason     string    `json:"post_report_reason"`
	PostReportCreatedAt  time.Time `json:"post_report_created_at"`
}

type UserReportDTO struct {
	UserReportID         string    `json:"user_report_id"`
	UserReportReporterID string    `json:"user_report_reporter_id"`
	ReporterName         string    `json:"reporter_name"`
	UserReportUserID     string    `json:"user_report_user_id"`
	UserReportReason     string    `json:"user_report_reason"`
	UserReportCreatedAt  time.Time `json:"user_report_created_at"`
}

// ReviewCase pulls every report against one target into a single reviewable
// view. Derived at read time, never persisted. The anchor report's reason
// leads the list; the rest follow in creation order.
type PostReviewCaseDTO struct {
	AnchorReportID string          `json:"anchor_report_id"`
	TargetPostID   string          `json:"target_post_id"`
	ReportCount    int             `json:"report_count"`
	Reasons        []string        `json:"reasons"`
	Reports        []PostReportDTO `json:"reports"`
}

type UserReviewCaseDTO struct {
	AnchorReportID string          `json:"anchor_report_id"`
	TargetUserID   string          `json:"target_user_id"`
	ReportCount    int             `json:"report_count"`
	Reasons        []string        `json:"reasons"`
	Reports        []UserReportDTO `json:"reports"`
}

// ============================
// Converters
// ============================
func ToPostReportDTO(m model.PostReportModel) PostReportDTO {
	out := PostReportDTO{
		PostReportID:         m.PostReportID,
		PostReportReporterID: m.PostReportReporterID,
		PostReportPostID:     m.PostReportPostID,
		PostReportReason:     m.PostReportReason,
		PostReportCreatedAt:  m.PostReportCreatedAt,
	}
	if m.Reporter != nil {
		out.ReporterName = m.Reporter.UserProfileName
	}
	return out
}

func ToUserReportDTO(m model.UserReportModel) UserReportDTO {
	out := UserReportDTO{
		UserReportID:         m.UserReportID,
		UserReportReporterID: m.UserReportReporterID,
		UserReportUserID:     m.UserReportUserID,
		UserReportReason:     m.UserReportReason,
		UserReportCreatedAt:  m.UserReportCreatedAt,
	}
	if m.Reporter != nil {
		out.ReporterName = m.Reporter.UserProfileName
	}
	return out
}

// ToPostReviewCase builds the case with the anchor first, then the sibling
// reports in their creation order.
func ToPostReviewCase(anchor model.PostReportModel, siblings []model.PostReportModel) PostReviewCaseDTO {
	all := append([]model.PostReportModel{anchor}, siblings...)
	return PostReviewCaseDTO{
		AnchorReportID: anchor.PostReportID,
		TargetPostID:   anchor.PostReportPostID,
		ReportCount:    len(all),
		Reasons: lo.Map(all, func(m model.PostReportModel, _ int) string {
			return m.PostReportReason
		}),
		Reports: lo.Map(all, func(m model.PostReportModel, _ int) PostReportDTO {
			return ToPostReportDTO(m)
		}),
	}
}

func ToUserReviewCase(anchor model.UserReportModel, siblings []model.UserReportModel) UserReviewCaseDTO {
	all := append([]model.UserReportModel{anchor}, siblings...)
	return UserReviewCaseDTO{
		AnchorReportID: anchor.UserReportID,
		TargetUserID:   anchor.UserReportUserID,
		ReportCount:    len(all),
		Reasons: lo.Map(all, func(m model.UserReportModel, _ int) string {
			return m.UserReportReason
		}),
		Reports: lo.Map(all, func(m model.UserReportModel, _ int) UserReportDTO {
			return ToUserReportDTO(m)
		}),
	}
}
