package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	UserModel "photograph_backend/internals/features/users/model"
)

type PostModel struct {
	PostID     string `gorm:"column:post_id;primaryKey;type:uuid" json:"post_id"`
	PostUserID string `gorm:"column:post_user_id;type:uuid;not null;index" json:"post_user_id"`

	// Slug comes from a generated token, never from user-controlled fields,
	// so it stays immutable and cannot be enumerated.
	PostSlug     string  `gorm:"column:post_slug;type:varchar(80);uniqueIndex;not null" json:"post_slug"`
	PostCaption  *string `gorm:"column:post_caption;type:varchar(100)" json:"post_caption"`
	PostPhotoURL string  `gorm:"column:post_photo_url;type:text;not null" json:"post_photo_url"`

	PostLatitude  float64 `gorm:"column:post_latitude;not null;index" json:"post_latitude"`
	PostLongitude float64 `gorm:"column:post_longitude;not null;index" json:"post_longitude"`

	// Set once at creation from the reverse-geocoding resolver, never refreshed.
	PostLocationName string `gorm:"column:post_location_name;type:varchar(255);not null;default:'Unknown'" json:"post_location_name"`

	PostLikeCount int64     `gorm:"column:post_like_count;not null;default:0" json:"post_like_count"`
	PostCreatedAt time.Time `gorm:"column:post_created_at;autoCreateTime" json:"post_created_at"`

	// Relations
	User     *UserModel.UserProfileModel `gorm:"foreignKey:PostUserID" json:"user,omitempty"`
	Comments []CommentModel              `gorm:"foreignKey:CommentPostID;constraint:OnDelete:CASCADE" json:"comments,omitempty"`
	Likes    []PostLikeModel             `gorm:"foreignKey:PostLikePostID;constraint:OnDelete:CASCADE" json:"-"`
}

func (PostModel) TableName() string {
	return "posts"
}

func (m *PostModel) BeforeCreate(tx *gorm.DB) error {
	if m.PostID == "" {
		m.PostID = uuid.NewString()
	}
	if m.PostSlug == "" {
		m.PostSlug = uuid.NewString()
	}
	return nil
}
