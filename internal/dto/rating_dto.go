package dto

import (
	"time"

	"movielist/internal/models"
)

// CreateRatingDTO for rating a movie on the 1-10 scale
type CreateRatingDTO struct {
	Rating int `json:"rating" binding:"required,gte=1,lte=10"`
}

// RatingResponse for returning a single rating row
type RatingResponse struct {
	ID        int64     `json:"id"`
	Rating    int       `json:"rating"`
	MovieID   int64     `json:"movie_id"`
	UserID    string    `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}

func FromModelToRatingResponse(rating *models.Rating) *RatingResponse {
	return &RatingResponse{
		ID:        rating.ID,
		Rating:    rating.Rating,
		MovieID:   rating.MovieID,
		UserID:    rating.UserID,
		CreatedAt: rating.CreatedAt,
	}
}

// AverageRatingResponse: arithmetic mean over all rating rows, 0 when unrated
type AverageRatingResponse struct {
	AverageRating float64 `json:"average_rating"`
}
