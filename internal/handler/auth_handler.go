package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"movielist/internal/dto"
	"movielist/internal/service"
	"movielist/internal/validation"
)

type AuthHandler struct {
	authService service.AuthService
}

func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

func (h *AuthHandler) RegisterRoutes(r gin.IRouter, requireAuth gin.HandlerFunc) {
	r.POST("/signup", h.Signup)
	r.POST("/login", h.Login)
	r.GET("/users/me", requireAuth, h.Me)
	r.PUT("/users/me", requireAuth, h.UpdateProfile)
}

func (h *AuthHandler) Signup(c *gin.Context) {
	var req dto.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"errors": validation.FieldErrors(err)})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
	defer cancel()

	user, err := h.authService.Signup(ctx, req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUsernameTaken):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"errors": map[string]string{"username": "username is already in use"},
			})
		case errors.Is(err, service.ErrEmailTaken):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"errors": map[string]string{"email": "email is already in use"},
			})
		default:
			internalError(c, err)
		}
		return
	}

	c.JSON(http.StatusOK, dto.FromModelToUserResponse(user))
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"errors": validation.FieldErrors(err)})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
	defer cancel()

	token, _, err := h.authService.Login(ctx, req.Username, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid username or password"})
			return
		}
		internalError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.TokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
		ExpiresIn:   int64(h.authService.TokenTTL().Seconds()),
	})
}

func (h *AuthHandler) Me(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
	defer cancel()

	user, err := h.authService.GetUser(ctx, userID)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
			return
		}
		internalError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.FromModelToUserResponse(user))
}

func (h *AuthHandler) UpdateProfile(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"errors": validation.FieldErrors(err)})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
	defer cancel()

	user, err := h.authService.UpdateProfile(ctx, userID, req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUserNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		case errors.Is(err, service.ErrUsernameTaken):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"errors": map[string]string{"username": "username is already in use"},
			})
		case errors.Is(err, service.ErrEmailTaken):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"errors": map[string]string{"email": "email is already in use"},
			})
		default:
			internalError(c, err)
		}
		return
	}

	c.JSON(http.StatusOK, dto.FromModelToUserResponse(user))
}
