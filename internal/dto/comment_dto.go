package dto

import (
	"time"

	"movielist/internal/models"
)

// CreateCommentDTO for creating a comment or a reply
type CreateCommentDTO struct {
	CommentText string `json:"comment_text" binding:"required,min=2,max=5000"`
}

// CommentResponse for returning a comment with its nested replies
type CommentResponse struct {
	ID          int64             `json:"id"`
	CommentText string            `json:"comment_text"`
	MovieID     int64             `json:"movie_id"`
	UserID      string            `json:"user_id"`
	ParentID    *int64            `json:"parent_comment_id"`
	Replies     []CommentResponse `json:"replies"`
	CreatedAt   time.Time         `json:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at"`
}

// FromModelToCommentResponse converts a Comment model to a CommentResponse
// without descending into replies.
func FromModelToCommentResponse(comment *models.Comment) *CommentResponse {
	return &CommentResponse{
		ID:          comment.ID,
		CommentText: comment.CommentText,
		MovieID:     comment.MovieID,
		UserID:      comment.UserID,
		ParentID:    comment.ParentID,
		Replies:     []CommentResponse{},
		CreatedAt:   comment.CreatedAt,
		UpdatedAt:   comment.UpdatedAt,
	}
}

// BuildCommentTree assembles the adjacency list into nested responses.
// roots carries the top-level comments to embed; all must contain every
// comment of the movie so reply chains resolve to arbitrary depth.
func BuildCommentTree(roots []models.Comment, all []models.Comment) []CommentResponse {
	children := make(map[int64][]models.Comment)
	for _, c := range all {
		if c.ParentID != nil {
			children[*c.ParentID] = append(children[*c.ParentID], c)
		}
	}

	var attach func(c *models.Comment) CommentResponse
	attach = func(c *models.Comment) CommentResponse {
		resp := *FromModelToCommentResponse(c)
		for i := range children[c.ID] {
			resp.Replies = append(resp.Replies, attach(&children[c.ID][i]))
		}
		return resp
	}

	tree := make([]CommentResponse, 0, len(roots))
	for i := range roots {
		tree = append(tree, attach(&roots[i]))
	}
	return tree
}
