package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	UserModel "photograph_backend/internals/features/users/model"
)

type CommentModel struct {
	CommentID        string    `gorm:"column:comment_id;primaryKey;type:uuid" json:"comment_id"`
	CommentUserID    string    `gorm:"column:comment_user_id;type:uuid;not null" json:"comment_user_id"`
	CommentPostID    string    `gorm:"column:comment_post_id;type:uuid;not null;index" json:"comment_post_id"`
	CommentText      string    `gorm:"column:comment_text;type:varchar(100);not null" json:"comment_text"`
	CommentCreatedAt time.Time `gorm:"column:comment_created_at;autoCreateTime" json:"comment_created_at"`

	User *UserModel.UserProfileModel `gorm:"foreignKey:CommentUserID" json:"user,omitempty"`
}

func (CommentModel) TableName() string {
	return "comments"
}

func (m *CommentModel) BeforeCreate(tx *gorm.DB) error {
	if m.CommentID == "" {
		m.CommentID = uuid.NewString()
	}
	return nil
}
