package dto

import (
	"time"

	"movielist/internal/models"
)

// SignupRequest: payload for user registration. Phone numbers use E.164 format.
type SignupRequest struct {
	Username    string `json:"username" binding:"required,min=1,max=50"`
	FirstName   string `json:"first_name" binding:"required,min=1,max=50"`
	LastName    string `json:"last_name" binding:"required,min=1,max=50"`
	PhoneNumber string `json:"phone_number" binding:"required,e164"`
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password" binding:"required,min=8"`
}

// LoginRequest: payload for user login
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// UpdateProfileRequest: partial profile update, absent fields keep their value
type UpdateProfileRequest struct {
	Username    *string `json:"username" binding:"omitempty,min=1,max=50"`
	FirstName   *string `json:"first_name" binding:"omitempty,min=1,max=50"`
	LastName    *string `json:"last_name" binding:"omitempty,min=1,max=50"`
	PhoneNumber *string `json:"phone_number" binding:"omitempty,e164"`
	Email       *string `json:"email" binding:"omitempty,email"`
}

// TokenResponse: response payload after successful login
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"` // seconds
}

// UserResponse: public view of a user account, never carries the password hash
type UserResponse struct {
	ID          string    `json:"id"`
	Username    string    `json:"username"`
	FirstName   string    `json:"first_name"`
	LastName    string    `json:"last_name"`
	PhoneNumber string    `json:"phone_number"`
	Email       string    `json:"email"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func FromModelToUserResponse(user *models.User) *UserResponse {
	return &UserResponse{
		ID:          user.ID,
		Username:    user.Username,
		FirstName:   user.FirstName,
		LastName:    user.LastName,
		PhoneNumber: user.PhoneNumber,
		Email:       user.Email,
		CreatedAt:   user.CreatedAt,
		UpdatedAt:   user.UpdatedAt,
	}
}
