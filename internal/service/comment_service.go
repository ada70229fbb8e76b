package service

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"movielist/internal/dto"
	"movielist/internal/models"
	"movielist/internal/repository"
)

var (
	ErrCommentNotFound = errors.New("comment not found")
	ErrParentNotFound  = errors.New("parent comment not found")
)

type CommentService interface {
	CreateComment(ctx context.Context, userID string, movieID int64, text string) (*models.Comment, error)
	CreateReply(ctx context.Context, userID string, parentID int64, text string) (*models.Comment, error)
	ListByMovie(ctx context.Context, movieID int64, offset, limit int) ([]dto.CommentResponse, int64, error)
	DeleteComment(ctx context.Context, commentID int64, userID string) error
}

type commentService struct {
	commentRepo repository.CommentRepository
	movieRepo   repository.MovieRepository
}

func NewCommentService(commentRepo repository.CommentRepository, movieRepo repository.MovieRepository) CommentService {
	return &commentService{
		commentRepo: commentRepo,
		movieRepo:   movieRepo,
	}
}

// CreateComment adds a top-level comment to an existing movie.
func (s *commentService) CreateComment(ctx context.Context, userID string, movieID int64, text string) (*models.Comment, error) {
	if _, err := s.movieRepo.FindByID(ctx, movieID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMovieNotFound
		}
		return nil, err
	}

	comment := &models.Comment{
		CommentText: text,
		MovieID:     movieID,
		UserID:      userID,
	}

	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, err
	}

	return comment, nil
}

// CreateReply attaches a reply beneath an existing comment. The reply's
// movie is taken from the parent row, which keeps a reply on the same
// movie as its parent by construction.
func (s *commentService) CreateReply(ctx context.Context, userID string, parentID int64, text string) (*models.Comment, error) {
	parent, err := s.commentRepo.FindByID(ctx, parentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrParentNotFound
		}
		return nil, err
	}

	comment := &models.Comment{
		CommentText: text,
		MovieID:     parent.MovieID,
		UserID:      userID,
		ParentID:    &parent.ID,
	}

	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, err
	}

	return comment, nil
}

// ListByMovie pages over root comments and embeds each one's reply chain.
func (s *commentService) ListByMovie(ctx context.Context, movieID int64, offset, limit int) ([]dto.CommentResponse, int64, error) {
	if _, err := s.movieRepo.FindByID(ctx, movieID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, 0, ErrMovieNotFound
		}
		return nil, 0, err
	}

	roots, total, err := s.commentRepo.ListRootsByMovie(ctx, movieID, offset, limit)
	if err != nil {
		return nil, 0, err
	}

	all, err := s.commentRepo.ListByMovie(ctx, movieID)
	if err != nil {
		return nil, 0, err
	}

	return dto.BuildCommentTree(roots, all), total, nil
}

// DeleteComment removes a comment after re-checking authorship. Replies
// cascade with the parent.
func (s *commentService) DeleteComment(ctx context.Context, commentID int64, userID string) error {
	comment, err := s.commentRepo.FindByID(ctx, commentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrCommentNotFound
		}
		return err
	}

	if comment.UserID != userID {
		return ErrNotOwner
	}

	return s.commentRepo.Delete(ctx, commentID)
}
