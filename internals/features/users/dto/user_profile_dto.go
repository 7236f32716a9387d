package dto

import (
	"time"

	"photograph_backend/internals/features/users/model"
)

type UserProfileDTO struct {
	UserProfileID         string    `json:"user_profile_id"`
	UserProfileName       string    `json:"user_profile_name"`
	UserProfileSlug       string    `json:"user_profile_slug"`
	UserProfileBiography  string    `json:"user_profile_biography"`
	UserProfilePictureURL *string   `json:"user_profile_picture_url"`
	UserProfileCreatedAt  time.Time `json:"user_profile_created_at"`
}

func ToUserProfileDTO(m model.UserProfileModel) UserProfileDTO {
	return UserProfileDTO{
		UserProfileID:         m.UserProfileID,
		UserProfileName:       m.UserProfileName,
		UserProfileSlug:       m.UserProfileSlug,
		UserProfileBiography:  m.UserProfileBiography,
		UserProfilePictureURL: m.UserProfilePictureURL,
		UserProfileCreatedAt:  m.UserProfileCreatedAt,
	}
}
