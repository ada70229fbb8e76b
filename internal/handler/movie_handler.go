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

type MovieHandler struct {
	movieService service.MovieService
}

func NewMovieHandler(movieService service.MovieService) *MovieHandler {
	return &MovieHandler{movieService: movieService}
}

func (h *MovieHandler) RegisterRoutes(r gin.IRouter, requireAuth, optionalAuth gin.HandlerFunc) {
	r.GET("/movies/", optionalAuth, h.List)
	r.GET("/movies/user", requireAuth, h.ListMine)
	r.GET("/movie/:movie_id", h.Get)
	r.POST("/new_movies", requireAuth, h.Create)
	r.PUT("/movie_update/:movie_id", requireAuth, h.Update)
	r.DELETE("/movie_delete/:movie_id", requireAuth, h.Delete)
}

func (h *MovieHandler) List(c *gin.Context) {
	offset, limit := parsePagination(c)

	ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
	defer cancel()

	movies, total, err := h.movieService.List(ctx, offset, limit)
	if err != nil {
		internalError(c, err)
		return
	}

	out := make([]dto.MovieResponse, 0, len(movies))
	for i := range movies {
		out = append(out, *dto.FromModelToMovieResponse(&movies[i]))
	}
	c.JSON(http.StatusOK, dto.NewPaginatedResponse(out, offset, limit, total))
}

func (h *MovieHandler) ListMine(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	offset, limit := parsePagination(c)

	ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
	defer cancel()

	movies, total, err := h.movieService.ListByUser(ctx, userID, offset, limit)
	if err != nil {
		internalError(c, err)
		return
	}

	out := make([]dto.MovieResponse, 0, len(movies))
	for i := range movies {
		out = append(out, *dto.FromModelToMovieResponse(&movies[i]))
	}
	c.JSON(http.StatusOK, dto.NewPaginatedResponse(out, offset, limit, total))
}

func (h *MovieHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "movie_id")
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
	defer cancel()

	detail, err := h.movieService.GetDetail(ctx, id)
	if err != nil {
		if errors.Is(err, service.ErrMovieNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "movie not found"})
			return
		}
		internalError(c, err)
		return
	}

	c.JSON(http.StatusOK, detail)
}

func (h *MovieHandler) Create(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var in dto.CreateMovieDTO
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"errors": validation.FieldErrors(err)})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
	defer cancel()

	movie, err := h.movieService.Create(ctx, userID, in)
	if err != nil {
		internalError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.FromModelToMovieResponse(movie))
}

func (h *MovieHandler) Update(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "movie_id")
	if !ok {
		return
	}

	var in dto.UpdateMovieDTO
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"errors": validation.FieldErrors(err)})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
	defer cancel()

	movie, err := h.movieService.Update(ctx, id, userID, in)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrMovieNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "movie not found"})
		case errors.Is(err, service.ErrNotOwner):
			c.JSON(http.StatusForbidden, gin.H{"error": "you do not own this movie"})
		default:
			internalError(c, err)
		}
		return
	}

	c.JSON(http.StatusOK, dto.FromModelToMovieResponse(movie))
}

func (h *MovieHandler) Delete(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "movie_id")
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
	defer cancel()

	movie, err := h.movieService.Delete(ctx, id, userID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrMovieNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "movie not found"})
		case errors.Is(err, service.ErrNotOwner):
			c.JSON(http.StatusForbidden, gin.H{"error": "you do not own this movie"})
		default:
			internalError(c, err)
		}
		return
	}

	c.JSON(http.StatusOK, dto.MovieDeleteResponse{
		Message: "success",
		Data:    dto.FromModelToMovieResponse(movie),
	})
}
