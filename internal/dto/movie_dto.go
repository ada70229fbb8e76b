package dto

import (
	"time"

	"movielist/internal/models"
)

const releaseDateLayout = "2006-01-02"

// CreateMovieDTO for creating a movie listing
type CreateMovieDTO struct {
	Title       string `json:"title" binding:"required,min=1,max=100"`
	Description string `json:"description" binding:"omitempty"`
	ReleaseDate string `json:"release_date" binding:"omitempty,datetime=2006-01-02"`
}

func (in *CreateMovieDTO) ToModel(userID string) models.Movie {
	m := models.Movie{
		Title:       in.Title,
		Description: in.Description,
		UserID:      userID,
	}
	if in.ReleaseDate != "" {
		// already validated by the datetime binding tag
		d, _ := time.Parse(releaseDateLayout, in.ReleaseDate)
		m.ReleaseDate = &d
	}
	return m
}

// UpdateMovieDTO for partial updates, absent fields keep their value
type UpdateMovieDTO struct {
	Title       *string `json:"title" binding:"omitempty,min=1,max=100"`
	Description *string `json:"description" binding:"omitempty"`
	ReleaseDate *string `json:"release_date" binding:"omitempty,datetime=2006-01-02"`
}

// MovieResponse: listing view of a movie
type MovieResponse struct {
	ID          int64      `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	ReleaseDate *time.Time `json:"release_date,omitempty"`
	UserID      string     `json:"user_id"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

func FromModelToMovieResponse(m *models.Movie) *MovieResponse {
	return &MovieResponse{
		ID:          m.ID,
		Title:       m.Title,
		Description: m.Description,
		ReleaseDate: m.ReleaseDate,
		UserID:      m.UserID,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

// MovieDetailResponse: full view with the comment tree, the flat rating
// list and the average rating computed from current rows.
type MovieDetailResponse struct {
	MovieResponse
	Comments      []CommentResponse `json:"comments"`
	Ratings       []RatingResponse  `json:"ratings"`
	AverageRating float64           `json:"average_rating"`
}

// MovieDeleteResponse: original listing data of the removed movie
type MovieDeleteResponse struct {
	Message string         `json:"message"`
	Data    *MovieResponse `json:"data"`
}
