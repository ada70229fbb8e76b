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

type RatingHandler struct {
	ratingService service.RatingService
}

func NewRatingHandler(ratingService service.RatingService) *RatingHandler {
	return &RatingHandler{ratingService: ratingService}
}

func (h *RatingHandler) RegisterRoutes(r gin.IRouter, requireAuth gin.HandlerFunc) {
	r.POST("/movies/:movie_id/ratings/", requireAuth, h.Create)
	r.GET("/movies/:movie_id/ratings/", h.ListByMovie)
	r.GET("/movies/:movie_id/ratings/average", h.Average)
}

func (h *RatingHandler) Create(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	movieID, ok := parseIDParam(c, "movie_id")
	if !ok {
		return
	}

	var in dto.CreateRatingDTO
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"errors": validation.FieldErrors(err)})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
	defer cancel()

	rating, err := h.ratingService.CreateRating(ctx, userID, movieID, in.Rating)
	if err != nil {
		if errors.Is(err, service.ErrMovieNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "movie not found"})
			return
		}
		internalError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.FromModelToRatingResponse(rating))
}

func (h *RatingHandler) ListByMovie(c *gin.Context) {
	movieID, ok := parseIDParam(c, "movie_id")
	if !ok {
		return
	}
	offset, limit := parsePagination(c)

	ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
	defer cancel()

	ratings, total, err := h.ratingService.ListByMovie(ctx, movieID, offset, limit)
	if err != nil {
		internalError(c, err)
		return
	}

	out := make([]dto.RatingResponse, 0, len(ratings))
	for i := range ratings {
		out = append(out, *dto.FromModelToRatingResponse(&ratings[i]))
	}
	c.JSON(http.StatusOK, dto.NewPaginatedResponse(out, offset, limit, total))
}

func (h *RatingHandler) Average(c *gin.Context) {
	movieID, ok := parseIDParam(c, "movie_id")
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
	defer cancel()

	avg, err := h.ratingService.AverageByMovie(ctx, movieID)
	if err != nil {
		internalError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.AverageRatingResponse{AverageRating: avg})
}
