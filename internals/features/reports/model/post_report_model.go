package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	UserModel "photograph_backend/internals/features/users/model"
)

// PostReportModel is append-only: duplicate reports from the same reporter are
// kept as separate rows and only brought together at review time.
type PostReportModel struct {
	PostReportID         string    `gorm:"column:post_report_id;primaryKey;type:uuid" json:"post_report_id"`
	PostReportReporterID string    `gorm:"column:post_report_reporter_id;type:uuid;not null" json:"post_report_reporter_id"`
	PostReportPostID     string    `gorm:"column:post_report_post_id;type:uuid;not null;index" json:"post_report_post_id"`
	PostReportReason     string    `gorm:"column:post_report_reason;type:text;not null" json:"post_report_reason"`
	PostReportCreatedAt  time.Time `gorm:"column:post_report_created_at;autoCreateTime" json:"post_report_created_at"`

	Reporter *UserModel.UserProfileModel `gorm:"foreignKey:PostReportReporterID" json:"reporter,omitempty"`
}

func (PostReportModel) TableName() string {
	return "post_reports"
}

func (m *PostReportModel) BeforeCreate(tx *gorm.DB) error {
	if m.PostReportID == "" {
		m.PostReportID = uuid.NewString()
	}
	return nil
}
