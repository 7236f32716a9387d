package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PostLikeModel struct {
	PostLikeID        string    `gorm:"column:post_like_id;primaryKey;type:uuid" json:"post_like_id"`
	PostLikePostID    string    `gorm:"column:post_like_post_id;type:uuid;not null;uniqueIndex:idx_post_like_once" json:"post_like_post_id"`
	PostLikeUserID    string    `gorm:"column:post_like_user_id;type:uuid;not null;uniqueIndex:idx_post_like_once" json:"post_like_user_id"`
	PostLikeCreatedAt time.Time `gorm:"column:post_like_created_at;autoCreateTime" json:"post_like_created_at"`
}

func (PostLikeModel) TableName() string {
	return "post_likes"
}

func (m *PostLikeModel) BeforeCreate(tx *gorm.DB) error {
	if m.PostLikeID == "" {
		m.PostLikeID = uuid.NewString()
	}
	return nil
}
