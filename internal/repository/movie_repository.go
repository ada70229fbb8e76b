package repository

import (
	"context"

	"gorm.io/gorm"

	"movielist/internal/models"
)

// MovieRepository defines the interface for movie data operations.
type MovieRepository interface {
	Create(ctx context.Context, movie *models.Movie) error
	FindByID(ctx context.Context, id int64) (*models.Movie, error)
	List(ctx context.Context, offset, limit int) ([]models.Movie, int64, error)
	ListByUser(ctx context.Context, userID string, offset, limit int) ([]models.Movie, int64, error)
	Update(ctx context.Context, movie *models.Movie) error
	Delete(ctx context.Context, id int64) error
}

type movieRepository struct {
	db *gorm.DB
}

func NewMovieRepository(db *gorm.DB) MovieRepository {
	return &movieRepository{db: db}
}

func (r *movieRepository) Create(ctx context.Context, movie *models.Movie) error {
	return r.db.WithContext(ctx).Create(movie).Error
}

func (r *movieRepository) FindByID(ctx context.Context, id int64) (*models.Movie, error) {
	var movie models.Movie
	if err := r.db.WithContext(ctx).First(&movie, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &movie, nil
}

// List returns movies in insertion order. Ordering by id keeps consecutive
// offset/limit pages free of skips and duplicates while data is static.
func (r *movieRepository) List(ctx context.Context, offset, limit int) ([]models.Movie, int64, error) {
	var movies []models.Movie
	var total int64

	if err := r.db.WithContext(ctx).Model(&models.Movie{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.WithContext(ctx).
		Order("id ASC").
		Offset(offset).
		Limit(limit).
		Find(&movies).Error
	if err != nil {
		return nil, 0, err
	}

	return movies, total, nil
}

func (r *movieRepository) ListByUser(ctx context.Context, userID string, offset, limit int) ([]models.Movie, int64, error) {
	var movies []models.Movie
	var total int64

	if err := r.db.WithContext(ctx).Model(&models.Movie{}).Where("user_id = ?", userID).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("id ASC").
		Offset(offset).
		Limit(limit).
		Find(&movies).Error
	if err != nil {
		return nil, 0, err
	}

	return movies, total, nil
}

func (r *movieRepository) Update(ctx context.Context, movie *models.Movie) error {
	return r.db.WithContext(ctx).Save(movie).Error
}

// Delete removes the movie row. Its comments and ratings go with it through
// the ON DELETE CASCADE constraints.
func (r *movieRepository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&models.Movie{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
