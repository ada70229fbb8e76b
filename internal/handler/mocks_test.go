package handler

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"

	"movielist/internal/dto"
	"movielist/internal/middleware"
	"movielist/internal/models"
	"movielist/internal/service"
)

// MockAuthService mocks the AuthService interface
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Signup(ctx context.Context, req dto.SignupRequest) (*models.User, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockAuthService) Login(ctx context.Context, username, password string) (string, *models.User, error) {
	args := m.Called(ctx, username, password)
	if args.Get(1) == nil {
		return args.String(0), nil, args.Error(2)
	}
	return args.String(0), args.Get(1).(*models.User), args.Error(2)
}

func (m *MockAuthService) ValidateToken(tokenString string) (*service.Claims, error) {
	args := m.Called(tokenString)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.Claims), args.Error(1)
}

func (m *MockAuthService) GetUser(ctx context.Context, id string) (*models.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockAuthService) UpdateProfile(ctx context.Context, userID string, req dto.UpdateProfileRequest) (*models.User, error) {
	args := m.Called(ctx, userID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockAuthService) TokenTTL() time.Duration {
	args := m.Called()
	return args.Get(0).(time.Duration)
}

// MockMovieService mocks the MovieService interface
type MockMovieService struct {
	mock.Mock
}

func (m *MockMovieService) Create(ctx context.Context, userID string, in dto.CreateMovieDTO) (*models.Movie, error) {
	args := m.Called(ctx, userID, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Movie), args.Error(1)
}

func (m *MockMovieService) GetDetail(ctx context.Context, id int64) (*dto.MovieDetailResponse, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.MovieDetailResponse), args.Error(1)
}

func (m *MockMovieService) List(ctx context.Context, offset, limit int) ([]models.Movie, int64, error) {
	args := m.Called(ctx, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]models.Movie), args.Get(1).(int64), args.Error(2)
}

func (m *MockMovieService) ListByUser(ctx context.Context, userID string, offset, limit int) ([]models.Movie, int64, error) {
	args := m.Called(ctx, userID, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]models.Movie), args.Get(1).(int64), args.Error(2)
}

func (m *MockMovieService) Update(ctx context.Context, id int64, callerID string, in dto.UpdateMovieDTO) (*models.Movie, error) {
	args := m.Called(ctx, id, callerID, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Movie), args.Error(1)
}

func (m *MockMovieService) Delete(ctx context.Context, id int64, callerID string) (*models.Movie, error) {
	args := m.Called(ctx, id, callerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Movie), args.Error(1)
}

// MockCommentService mocks the CommentService interface
type MockCommentService struct {
	mock.Mock
}

func (m *MockCommentService) CreateComment(ctx context.Context, userID string, movieID int64, text string) (*models.Comment, error) {
	args := m.Called(ctx, userID, movieID, text)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Comment), args.Error(1)
}

func (m *MockCommentService) CreateReply(ctx context.Context, userID string, parentID int64, text string) (*models.Comment, error) {
	args := m.Called(ctx, userID, parentID, text)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Comment), args.Error(1)
}

func (m *MockCommentService) ListByMovie(ctx context.Context, movieID int64, offset, limit int) ([]dto.CommentResponse, int64, error) {
	args := m.Called(ctx, movieID, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]dto.CommentResponse), args.Get(1).(int64), args.Error(2)
}

func (m *MockCommentService) DeleteComment(ctx context.Context, commentID int64, userID string) error {
	args := m.Called(ctx, commentID, userID)
	return args.Error(0)
}

// MockRatingService mocks the RatingService interface
type MockRatingService struct {
	mock.Mock
}

func (m *MockRatingService) CreateRating(ctx context.Context, userID string, movieID int64, value int) (*models.Rating, error) {
	args := m.Called(ctx, userID, movieID, value)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Rating), args.Error(1)
}

func (m *MockRatingService) ListByMovie(ctx context.Context, movieID int64, offset, limit int) ([]models.Rating, int64, error) {
	args := m.Called(ctx, movieID, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]models.Rating), args.Get(1).(int64), args.Error(2)
}

func (m *MockRatingService) AverageByMovie(ctx context.Context, movieID int64) (float64, error) {
	args := m.Called(ctx, movieID)
	return args.Get(0).(float64), args.Error(1)
}

func setupRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

// authAs stands in for the auth middleware in tests.
func authAs(userID string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(middleware.ContextUserIDKey, userID)
		c.Next()
	}
}
