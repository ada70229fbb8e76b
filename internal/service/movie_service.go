package service

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"movielist/internal/dto"
	"movielist/internal/models"
	"movielist/internal/repository"
)

var (
	ErrMovieNotFound = errors.New("movie not found")
	ErrNotOwner      = errors.New("resource does not belong to the caller")
)

type MovieService interface {
	Create(ctx context.Context, userID string, in dto.CreateMovieDTO) (*models.Movie, error)
	GetDetail(ctx context.Context, id int64) (*dto.MovieDetailResponse, error)
	List(ctx context.Context, offset, limit int) ([]models.Movie, int64, error)
	ListByUser(ctx context.Context, userID string, offset, limit int) ([]models.Movie, int64, error)
	Update(ctx context.Context, id int64, callerID string, in dto.UpdateMovieDTO) (*models.Movie, error)
	Delete(ctx context.Context, id int64, callerID string) (*models.Movie, error)
}

type movieService struct {
	movieRepo   repository.MovieRepository
	commentRepo repository.CommentRepository
	ratingRepo  repository.RatingRepository
}

func NewMovieService(
	movieRepo repository.MovieRepository,
	commentRepo repository.CommentRepository,
	ratingRepo repository.RatingRepository,
) MovieService {
	return &movieService{
		movieRepo:   movieRepo,
		commentRepo: commentRepo,
		ratingRepo:  ratingRepo,
	}
}

func (s *movieService) Create(ctx context.Context, userID string, in dto.CreateMovieDTO) (*models.Movie, error) {
	movie := in.ToModel(userID)
	if err := s.movieRepo.Create(ctx, &movie); err != nil {
		return nil, err
	}
	return &movie, nil
}

// GetDetail loads a movie together with its comment tree, flat rating list
// and the average rating computed from current rows.
func (s *movieService) GetDetail(ctx context.Context, id int64) (*dto.MovieDetailResponse, error) {
	movie, err := s.movieRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMovieNotFound
		}
		return nil, err
	}

	comments, err := s.commentRepo.ListByMovie(ctx, id)
	if err != nil {
		return nil, err
	}
	roots := make([]models.Comment, 0, len(comments))
	for _, c := range comments {
		if c.ParentID == nil {
			roots = append(roots, c)
		}
	}

	ratings, err := s.ratingRepo.ListAllByMovie(ctx, id)
	if err != nil {
		return nil, err
	}
	average, err := s.ratingRepo.AverageByMovie(ctx, id)
	if err != nil {
		return nil, err
	}

	ratingResponses := make([]dto.RatingResponse, 0, len(ratings))
	for i := range ratings {
		ratingResponses = append(ratingResponses, *dto.FromModelToRatingResponse(&ratings[i]))
	}

	return &dto.MovieDetailResponse{
		MovieResponse: *dto.FromModelToMovieResponse(movie),
		Comments:      dto.BuildCommentTree(roots, comments),
		Ratings:       ratingResponses,
		AverageRating: average,
	}, nil
}

func (s *movieService) List(ctx context.Context, offset, limit int) ([]models.Movie, int64, error) {
	return s.movieRepo.List(ctx, offset, limit)
}

func (s *movieService) ListByUser(ctx context.Context, userID string, offset, limit int) ([]models.Movie, int64, error) {
	return s.movieRepo.ListByUser(ctx, userID, offset, limit)
}

// Update applies a partial update after re-checking ownership. A missing
// movie is not-found; someone else's movie is forbidden.
func (s *movieService) Update(ctx context.Context, id int64, callerID string, in dto.UpdateMovieDTO) (*models.Movie, error) {
	movie, err := s.movieRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMovieNotFound
		}
		return nil, err
	}

	if movie.UserID != callerID {
		return nil, ErrNotOwner
	}

	if in.Title != nil {
		movie.Title = *in.Title
	}
	if in.Description != nil {
		movie.Description = *in.Description
	}
	if in.ReleaseDate != nil {
		// format already validated by the datetime binding tag
		d, err := time.Parse("2006-01-02", *in.ReleaseDate)
		if err != nil {
			return nil, err
		}
		movie.ReleaseDate = &d
	}

	if err := s.movieRepo.Update(ctx, movie); err != nil {
		return nil, err
	}

	return movie, nil
}

// Delete removes the movie and, through the cascade constraints, its
// comments and ratings. The removed row is returned to the caller.
func (s *movieService) Delete(ctx context.Context, id int64, callerID string) (*models.Movie, error) {
	movie, err := s.movieRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMovieNotFound
		}
		return nil, err
	}

	if movie.UserID != callerID {
		return nil, ErrNotOwner
	}

	if err := s.movieRepo.Delete(ctx, id); err != nil {
		return nil, err
	}

	return movie, nil
}
