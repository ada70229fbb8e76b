package repository

import (
	"context"

	"gorm.io/gorm"

	"movielist/internal/models"
)

// RatingRepository defines the interface for rating data operations.
type RatingRepository interface {
	Create(ctx context.Context, rating *models.Rating) error
	ListByMovie(ctx context.Context, movieID int64, offset, limit int) ([]models.Rating, int64, error)
	ListAllByMovie(ctx context.Context, movieID int64) ([]models.Rating, error)
	AverageByMovie(ctx context.Context, movieID int64) (float64, error)
}

type ratingRepository struct {
	db *gorm.DB
}

func NewRatingRepository(db *gorm.DB) RatingRepository {
	return &ratingRepository{db: db}
}

func (r *ratingRepository) Create(ctx context.Context, rating *models.Rating) error {
	return r.db.WithContext(ctx).Create(rating).Error
}

func (r *ratingRepository) ListByMovie(ctx context.Context, movieID int64, offset, limit int) ([]models.Rating, int64, error) {
	var ratings []models.Rating
	var total int64

	if err := r.db.WithContext(ctx).Model(&models.Rating{}).Where("movie_id = ?", movieID).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.WithContext(ctx).
		Where("movie_id = ?", movieID).
		Order("id ASC").
		Offset(offset).
		Limit(limit).
		Find(&ratings).Error
	if err != nil {
		return nil, 0, err
	}

	return ratings, total, nil
}

func (r *ratingRepository) ListAllByMovie(ctx context.Context, movieID int64) ([]models.Rating, error) {
	var ratings []models.Rating
	err := r.db.WithContext(ctx).
		Where("movie_id = ?", movieID).
		Order("id ASC").
		Find(&ratings).Error
	if err != nil {
		return nil, err
	}
	return ratings, nil
}

// AverageByMovie computes the arithmetic mean on read; 0 when no rows exist.
func (r *ratingRepository) AverageByMovie(ctx context.Context, movieID int64) (float64, error) {
	var average float64
	err := r.db.WithContext(ctx).
		Model(&models.Rating{}).
		Where("movie_id = ?", movieID).
		Select("COALESCE(AVG(rating), 0)").
		Scan(&average).Error
	if err != nil {
		return 0, err
	}
	return average, nil
}
