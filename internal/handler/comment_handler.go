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

type CommentHandler struct {
	commentService service.CommentService
}

func NewCommentHandler(commentService service.CommentService) *CommentHandler {
	return &CommentHandler{commentService: commentService}
}

func (h *CommentHandler) RegisterRoutes(r gin.IRouter, requireAuth gin.HandlerFunc) {
	r.POST("/movies/:movie_id/comments/", requireAuth, h.Create)
	r.GET("/movies/:movie_id/comments/", h.ListByMovie)
	r.POST("/comments/:comment_id/replies/", requireAuth, h.Reply)
	r.DELETE("/comments/:comment_id/", requireAuth, h.Delete)
}

func (h *CommentHandler) Create(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	movieID, ok := parseIDParam(c, "movie_id")
	if !ok {
		return
	}

	var in dto.CreateCommentDTO
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"errors": validation.FieldErrors(err)})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
	defer cancel()

	comment, err := h.commentService.CreateComment(ctx, userID, movieID, in.CommentText)
	if err != nil {
		if errors.Is(err, service.ErrMovieNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "movie not found"})
			return
		}
		internalError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.FromModelToCommentResponse(comment))
}

func (h *CommentHandler) ListByMovie(c *gin.Context) {
	movieID, ok := parseIDParam(c, "movie_id")
	if !ok {
		return
	}
	offset, limit := parsePagination(c)

	ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
	defer cancel()

	comments, total, err := h.commentService.ListByMovie(ctx, movieID, offset, limit)
	if err != nil {
		if errors.Is(err, service.ErrMovieNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "movie not found"})
			return
		}
		internalError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewPaginatedResponse(comments, offset, limit, total))
}

func (h *CommentHandler) Reply(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	parentID, ok := parseIDParam(c, "comment_id")
	if !ok {
		return
	}

	var in dto.CreateCommentDTO
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"errors": validation.FieldErrors(err)})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
	defer cancel()

	reply, err := h.commentService.CreateReply(ctx, userID, parentID, in.CommentText)
	if err != nil {
		if errors.Is(err, service.ErrParentNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "comment not found"})
			return
		}
		internalError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.FromModelToCommentResponse(reply))
}

func (h *CommentHandler) Delete(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	commentID, ok := parseIDParam(c, "comment_id")
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
	defer cancel()

	if err := h.commentService.DeleteComment(ctx, commentID, userID); err != nil {
		switch {
		case errors.Is(err, service.ErrCommentNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "comment not found"})
		case errors.Is(err, service.ErrNotOwner):
			c.JSON(http.StatusForbidden, gin.H{"error": "you do not own this comment"})
		default:
			internalError(c, err)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "success"})
}
