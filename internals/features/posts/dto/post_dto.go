package dto

import (
	"time"

	"github.com/samber/lo"

	"photograph_backend/internals/features/posts/model"
)

// ============================
// Response DTOs
// ============================
type PostDTO struct {
	PostID           string       `json:"post_id"`
	PostSlug         string       `json:"post_slug"`
	PostUserID       string       `json:"post_user_id"`
	UserName         string       `json:"user_name"`
	PostCaption      *string      `json:"post_caption"`
	PostPhotoURL     string       `json:"post_photo_url"`
	PostLatitude     float64      `json:"post_latitude"`
	PostLongitude    float64      `json:"post_longitude"`
	PostLocationName string       `json:"post_location_name"`
	PostLikeCount    int64        `json:"post_like_count"`
	PostCreatedAt    time.Time    `json:"post_created_at"`
	Comments         []CommentDTO `json:"comments,omitempty"`
}

type CommentDTO struct {
	CommentID        string    `json:"comment_id"`
	CommentUserID    string    `json:"comment_user_id"`
	UserName         string    `json:"user_name"`
	CommentText      string    `json:"comment_text"`
	CommentCreatedAt time.Time `json:"comment_created_at"`
}

// ============================
// Request DTOs
// ============================

// Coordinates are pointers so that 0 still counts as "present"; validator's
// required tag only rejects the missing field, not the zero value.
type CreatePostRequest struct {
	PostLatitude  *float64 `json:"post_latitude" validate:"required,gte=-90,lte=90"`
	PostLongitude *float64 `json:"post_longitude" validate:"required,gte=-180,lte=180"`
	PostCaption   *string  `json:"post_caption" validate:"omitempty,max=100"`
	PostPhotoURL  string   `json:"post_photo_url" validate:"required"`
}

type UpdatePostRequest struct {
	PostCaption *string `json:"post_caption" validate:"omitempty,max=100"`
}

type CreateCommentRequest struct {
	CommentText string `json:"comment_text" validate:"required,max=100"`
}

type TogglePostLikeRequest struct {
	PostID string `json:"post_id" validate:"required,uuid4"`
}

// ============================
// Converters
// ============================
func ToPostDTO(m model.PostModel) PostDTO {
	out := PostDTO{
		PostID:           m.PostID,
		PostSlug:         m.PostSlug,
		PostUserID:       m.PostUserID,
		PostCaption:      m.PostCaption,
		PostPhotoURL:     m.PostPhotoURL,
		PostLatitude:     m.PostLatitude,
		PostLongitude:    m.PostLongitude,
		PostLocationName: m.PostLocationName,
		PostLikeCount:    m.PostLikeCount,
		PostCreatedAt:    m.PostCreatedAt,
	}
	if m.User != nil {
		out.UserName = m.User.UserProfileName
	}
	if len(m.Comments) > 0 {
		out.Comments = lo.Map(m.Comments, func(cm model.CommentModel, _ int) CommentDTO {
			return ToCommentDTO(cm)
		})
	}
	return out
}

func ToCommentDTO(m model.CommentModel) CommentDTO {
	out := CommentDTO{
		CommentID:        m.CommentID,
		CommentUserID:    m.CommentUserID,
		CommentText:      m.CommentText,
		CommentCreatedAt: m.CommentCreatedAt,
	}
	if m.User != nil {
		out.UserName = m.User.UserProfileName
	}
	return out
}

func ToPostModel(req CreatePostRequest, userID string) model.PostModel {
	return model.PostModel{
		PostUserID:    userID,
		PostCaption:   req.PostCaption,
		PostPhotoURL:  req.PostPhotoURL,
		PostLatitude:  *req.PostLatitude,
		PostLongitude: *req.PostLongitude,
	}
}
