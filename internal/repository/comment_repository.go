package repository

import (
	"context"

	"gorm.io/gorm"

	"movielist/internal/models"
)

// CommentRepository defines the interface for comment data operations.
type CommentRepository interface {
	Create(ctx context.Context, comment *models.Comment) error
	FindByID(ctx context.Context, id int64) (*models.Comment, error)
	ListRootsByMovie(ctx context.Context, movieID int64, offset, limit int) ([]models.Comment, int64, error)
	ListByMovie(ctx context.Context, movieID int64) ([]models.Comment, error)
	Delete(ctx context.Context, id int64) error
}

type commentRepository struct {
	db *gorm.DB
}

func NewCommentRepository(db *gorm.DB) CommentRepository {
	return &commentRepository{db: db}
}

func (r *commentRepository) Create(ctx context.Context, comment *models.Comment) error {
	return r.db.WithContext(ctx).Create(comment).Error
}

func (r *commentRepository) FindByID(ctx context.Context, id int64) (*models.Comment, error) {
	var comment models.Comment
	if err := r.db.WithContext(ctx).First(&comment, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &comment, nil
}

// ListRootsByMovie pages over top-level comments only; replies are attached
// by the service from a ListByMovie fetch. Total counts root comments.
func (r *commentRepository) ListRootsByMovie(ctx context.Context, movieID int64, offset, limit int) ([]models.Comment, int64, error) {
	var comments []models.Comment
	var total int64

	if err := r.db.WithContext(ctx).
		Model(&models.Comment{}).
		Where("movie_id = ? AND parent_id IS NULL", movieID).
		Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.WithContext(ctx).
		Where("movie_id = ? AND parent_id IS NULL", movieID).
		Order("id ASC").
		Offset(offset).
		Limit(limit).
		Find(&comments).Error
	if err != nil {
		return nil, 0, err
	}

	return comments, total, nil
}

// ListByMovie returns every comment of a movie in one query, roots and
// replies alike, for application-level tree assembly.
func (r *commentRepository) ListByMovie(ctx context.Context, movieID int64) ([]models.Comment, error) {
	var comments []models.Comment
	err := r.db.WithContext(ctx).
		Where("movie_id = ?", movieID).
		Order("id ASC").
		Find(&comments).Error
	if err != nil {
		return nil, err
	}
	return comments, nil
}

// Delete removes a comment; its replies cascade through the self FK.
func (r *commentRepository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&models.Comment{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
