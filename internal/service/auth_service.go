package service

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"movielist/internal/auth"
	"movielist/internal/config"
	"movielist/internal/dto"
	"movielist/internal/models"
	"movielist/internal/repository"

	"gorm.io/gorm"
)

var (
	ErrUsernameTaken      = errors.New("username already in use")
	ErrEmailTaken         = errors.New("email already in use")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid token")
	ErrExpiredToken       = errors.New("token has expired")
	ErrUserNotFound       = errors.New("user not found")
)

const tokenIssuer = "movielist"

// Claims carried by every issued bearer token.
type Claims struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
	jwt.RegisteredClaims
}

type AuthService interface {
	Signup(ctx context.Context, req dto.SignupRequest) (*models.User, error)
	Login(ctx context.Context, username, password string) (accessToken string, user *models.User, err error)
	ValidateToken(tokenString string) (*Claims, error)
	GetUser(ctx context.Context, id string) (*models.User, error)
	UpdateProfile(ctx context.Context, userID string, req dto.UpdateProfileRequest) (*models.User, error)
	TokenTTL() time.Duration
}

type authService struct {
	userRepo      repository.UserRepository
	jwtSecret     string
	signingMethod jwt.SigningMethod
	tokenTTL      time.Duration
}

func NewAuthService(userRepo repository.UserRepository, cfg *config.Config) AuthService {
	return &authService{
		userRepo:      userRepo,
		jwtSecret:     cfg.JWTSecret,
		signingMethod: signingMethodFor(cfg.JWTAlgorithm),
		tokenTTL:      cfg.JWTExpiry,
	}
}

func signingMethodFor(algorithm string) jwt.SigningMethod {
	switch algorithm {
	case "HS384":
		return jwt.SigningMethodHS384
	case "HS512":
		return jwt.SigningMethodHS512
	default:
		return jwt.SigningMethodHS256
	}
}

// Signup registers a new user. Uniqueness of username and email is checked
// before the password is hashed and the row inserted.
func (s *authService) Signup(ctx context.Context, req dto.SignupRequest) (*models.User, error) {
	if _, err := s.userRepo.FindByUsername(ctx, req.Username); err == nil {
		return nil, ErrUsernameTaken
	}

	if _, err := s.userRepo.FindByEmail(ctx, req.Email); err == nil {
		return nil, ErrEmailTaken
	}

	hashedPassword, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Username:    req.Username,
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		PhoneNumber: req.PhoneNumber,
		Email:       req.Email,
		Password:    hashedPassword,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, translateDuplicateErr(err)
	}

	return user, nil
}

// translateDuplicateErr maps constraint violations raised when a
// concurrent signup slips past the existence checks.
func translateDuplicateErr(err error) error {
	switch {
	case errors.Is(err, repository.ErrDuplicateUsername):
		return ErrUsernameTaken
	case errors.Is(err, repository.ErrDuplicateEmail):
		return ErrEmailTaken
	}
	return err
}

// Login authenticates a user and issues a signed bearer token. Unknown user
// and wrong password are indistinguishable to the caller.
func (s *authService) Login(ctx context.Context, username, password string) (string, *models.User, error) {
	user, err := s.userRepo.FindByUsername(ctx, username)
	if err != nil {
		// dummy compare to mitigate timing attacks (always take same time)
		auth.VerifyPassword("$2a$10$7EqJtq98hPqEX7fNZaFWoOHi6VbU5h6K9v8u5rO0m3j0h6dX5r8e", password)
		return "", nil, ErrInvalidCredentials
	}

	if err := auth.VerifyPassword(user.Password, password); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	token, err := s.generateAccessToken(user)
	if err != nil {
		return "", nil, err
	}

	return token, user, nil
}

func (s *authService) generateAccessToken(user *models.User) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID:   user.ID,
		Username: user.Username,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    tokenIssuer,
			Subject:   user.ID,
		},
	}

	token := jwt.NewWithClaims(s.signingMethod, claims)
	return token.SignedString([]byte(s.jwtSecret))
}

// ValidateToken verifies signature, expiry and issuer, and returns the
// identity claims embedded in the token.
func (s *authService) ValidateToken(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if token.Method.Alg() != s.signingMethod.Alg() {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(s.jwtSecret), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}

	if !token.Valid {
		return nil, ErrInvalidToken
	}
	if claims.Issuer != tokenIssuer || claims.Subject == "" {
		return nil, ErrInvalidToken
	}

	return claims, nil
}

// GetUser resolves a live user record for an already-validated identity.
func (s *authService) GetUser(ctx context.Context, id string) (*models.User, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

// UpdateProfile applies a partial update to the caller's own record.
// Untouched fields keep their current values.
func (s *authService) UpdateProfile(ctx context.Context, userID string, req dto.UpdateProfileRequest) (*models.User, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	if req.Username != nil && *req.Username != user.Username {
		if _, err := s.userRepo.FindByUsername(ctx, *req.Username); err == nil {
			return nil, ErrUsernameTaken
		}
		user.Username = *req.Username
	}
	if req.Email != nil && *req.Email != user.Email {
		if _, err := s.userRepo.FindByEmail(ctx, *req.Email); err == nil {
			return nil, ErrEmailTaken
		}
		user.Email = *req.Email
	}
	if req.FirstName != nil {
		user.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		user.LastName = *req.LastName
	}
	if req.PhoneNumber != nil {
		user.PhoneNumber = *req.PhoneNumber
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, translateDuplicateErr(err)
	}

	return user, nil
}

func (s *authService) TokenTTL() time.Duration {
	return s.tokenTTL
}
