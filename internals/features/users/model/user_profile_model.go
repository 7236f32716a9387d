package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	helper "photograph_backend/internals/helpers"
)

type UserProfileModel struct {
	UserProfileID         string    `gorm:"column:user_profile_id;primaryKey;type:uuid" json:"user_profile_id"`
	UserProfileName       string    `gorm:"column:user_profile_name;type:varchar(50);not null;uniqueIndex" json:"user_profile_name"`
	UserProfileSlug       string    `gorm:"column:user_profile_slug;type:varchar(80);uniqueIndex" json:"user_profile_slug"`
	UserProfileBiography  string    `gorm:"column:user_profile_biography;type:varchar(100)" json:"user_profile_biography"`
	UserProfilePictureURL *string   `gorm:"column:user_profile_picture_url;type:text" json:"user_profile_picture_url"`
	UserProfileCreatedAt  time.Time `gorm:"column:user_profile_created_at;autoCreateTime" json:"user_profile_created_at"`
}

func (UserProfileModel) TableName() string {
	return "user_profiles"
}

func (m *UserProfileModel) BeforeCreate(tx *gorm.DB) error {
	if m.UserProfileID == "" {
		m.UserProfileID = uuid.NewString()
	}
	if m.UserProfileSlug == "" {
		slug, err := helper.EnsureUniqueSlug(tx, helper.GenerateSlug(m.UserProfileName), "user_profiles", "user_profile_slug")
		if err != nil {
			return err
		}
		m.UserProfileSlug = slug
	}
	return nil
}
