package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	UserModel "photograph_backend/internals/features/users/model"
)

type UserReportModel struct {
	UserReportID         string    `gorm:"column:user_report_id;primaryKey;type:uuid" json:"user_report_id"`
	UserReportReporterID string    `gorm:"column:user_report_reporter_id;type:uuid;not null" json:"user_report_reporter_id"`
	UserReportUserID     string    `gorm:"column:user_report_user_id;type:uuid;not null;index" json:"user_report_user_id"`
	UserReportReason     string    `gorm:"column:user_report_reason;type:text;not null" json:"user_report_reason"`
	UserReportCreatedAt  time.Time `gorm:"column:user_report_created_at;autoCreateTime" json:"user_report_created_at"`

	Reporter *UserModel.UserProfileModel `gorm:"foreignKey:UserReportReporterID" json:"reporter,omitempty"`
}

func (UserReportModel) TableName() string {
	return "user_reports"
}

func (m *UserReportModel) BeforeCreate(tx *gorm.DB) error {
	if m.UserReportID == "" {
		m.UserReportID = uuid.NewString()
	}
	return nil
}
