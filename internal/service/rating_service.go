package service

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"movielist/internal/models"
	"movielist/internal/repository"
)

type RatingService interface {
	CreateRating(ctx context.Context, userID string, movieID int64, value int) (*models.Rating, error)
	ListByMovie(ctx context.Context, movieID int64, offset, limit int) ([]models.Rating, int64, error)
	AverageByMovie(ctx context.Context, movieID int64) (float64, error)
}

type ratingService struct {
	ratingRepo repository.RatingRepository
	movieRepo  repository.MovieRepository
}

func NewRatingService(ratingRepo repository.RatingRepository, movieRepo repository.MovieRepository) RatingService {
	return &ratingService{
		ratingRepo: ratingRepo,
		movieRepo:  movieRepo,
	}
}

// CreateRating inserts a new rating row. Repeated ratings by the same user
// accumulate; each row counts toward the average.
func (s *ratingService) CreateRating(ctx context.Context, userID string, movieID int64, value int) (*models.Rating, error) {
	if _, err := s.movieRepo.FindByID(ctx, movieID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMovieNotFound
		}
		return nil, err
	}

	rating := &models.Rating{
		Rating:  value,
		MovieID: movieID,
		UserID:  userID,
	}

	if err := s.ratingRepo.Create(ctx, rating); err != nil {
		return nil, err
	}

	return rating, nil
}

func (s *ratingService) ListByMovie(ctx context.Context, movieID int64, offset, limit int) ([]models.Rating, int64, error) {
	return s.ratingRepo.ListByMovie(ctx, movieID, offset, limit)
}

// AverageByMovie returns the arithmetic mean over all rating rows for the
// movie; 0 when the movie has no ratings yet.
func (s *ratingService) AverageByMovie(ctx context.Context, movieID int64) (float64, error) {
	return s.ratingRepo.AverageByMovie(ctx, movieID)
}
