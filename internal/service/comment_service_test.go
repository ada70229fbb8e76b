package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"movielist/internal/models"
)

func newCommentServiceWithMocks() (CommentService, *MockCommentRepository, *MockMovieRepository) {
	commentRepo := new(MockCommentRepository)
	movieRepo := new(MockMovieRepository)
	return NewCommentService(commentRepo, movieRepo), commentRepo, movieRepo
}

func TestCreateComment_Success(t *testing.T) {
	svc, commentRepo, movieRepo := newCommentServiceWithMocks()

	movieRepo.On("FindByID", mock.Anything, int64(7)).Return(&models.Movie{ID: 7}, nil)
	commentRepo.On("Create", mock.Anything, mock.AnythingOfType("*models.Comment")).Return(nil)

	comment, err := svc.CreateComment(context.Background(), "user-id", 7, "great movie")

	assert.NoError(t, err)
	assert.Equal(t, "great movie", comment.CommentText)
	assert.Equal(t, int64(7), comment.MovieID)
	assert.Equal(t, "user-id", comment.UserID)
	assert.Nil(t, comment.ParentID)
	commentRepo.AssertExpectations(t)
	movieRepo.AssertExpectations(t)
}

func TestCreateComment_MovieMissing(t *testing.T) {
	svc, commentRepo, movieRepo := newCommentServiceWithMocks()

	movieRepo.On("FindByID", mock.Anything, int64(7)).Return(nil, gorm.ErrRecordNotFound)

	comment, err := svc.CreateComment(context.Background(), "user-id", 7, "great movie")

	assert.ErrorIs(t, err, ErrMovieNotFound)
	assert.Nil(t, comment)
	commentRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	movieRepo.AssertExpectations(t)
}

func TestCreateReply_InheritsMovieFromParent(t *testing.T) {
	svc, commentRepo, _ := newCommentServiceWithMocks()

	commentRepo.On("FindByID", mock.Anything, int64(3)).Return(&models.Comment{
		ID:      3,
		MovieID: 7,
		UserID:  "author",
	}, nil)
	commentRepo.On("Create", mock.Anything, mock.AnythingOfType("*models.Comment")).Return(nil)

	reply, err := svc.CreateReply(context.Background(), "user-id", 3, "I agree")

	assert.NoError(t, err)
	assert.Equal(t, int64(7), reply.MovieID)
	assert.NotNil(t, reply.ParentID)
	assert.Equal(t, int64(3), *reply.ParentID)
	commentRepo.AssertExpectations(t)
}

func TestCreateReply_ParentMissing(t *testing.T) {
	svc, commentRepo, _ := newCommentServiceWithMocks()

	commentRepo.On("FindByID", mock.Anything, int64(3)).Return(nil, gorm.ErrRecordNotFound)

	reply, err := svc.CreateReply(context.Background(), "user-id", 3, "I agree")

	assert.ErrorIs(t, err, ErrParentNotFound)
	assert.Nil(t, reply)
	commentRepo.AssertExpectations(t)
}

func TestListComments_BuildsNestedReplies(t *testing.T) {
	svc, commentRepo, movieRepo := newCommentServiceWithMocks()

	rootID := int64(1)
	replyID := int64(2)
	movieRepo.On("FindByID", mock.Anything, int64(7)).Return(&models.Movie{ID: 7}, nil)
	commentRepo.On("ListRootsByMovie", mock.Anything, int64(7), 0, 10).Return([]models.Comment{
		{ID: rootID, CommentText: "root", MovieID: 7},
	}, int64(1), nil)
	commentRepo.On("ListByMovie", mock.Anything, int64(7)).Return([]models.Comment{
		{ID: rootID, CommentText: "root", MovieID: 7},
		{ID: replyID, CommentText: "reply", MovieID: 7, ParentID: &rootID},
		{ID: 3, CommentText: "nested", MovieID: 7, ParentID: &replyID},
	}, nil)

	comments, total, err := svc.ListByMovie(context.Background(), 7, 0, 10)

	assert.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Len(t, comments, 1)
	assert.Len(t, comments[0].Replies, 1)
	assert.Len(t, comments[0].Replies[0].Replies, 1)
	assert.Equal(t, "nested", comments[0].Replies[0].Replies[0].CommentText)
	commentRepo.AssertExpectations(t)
	movieRepo.AssertExpectations(t)
}

func TestListComments_MovieMissing(t *testing.T) {
	svc, _, movieRepo := newCommentServiceWithMocks()

	movieRepo.On("FindByID", mock.Anything, int64(7)).Return(nil, gorm.ErrRecordNotFound)

	comments, total, err := svc.ListByMovie(context.Background(), 7, 0, 10)

	assert.ErrorIs(t, err, ErrMovieNotFound)
	assert.Nil(t, comments)
	assert.Zero(t, total)
	movieRepo.AssertExpectations(t)
}

func TestDeleteComment_Success(t *testing.T) {
	svc, commentRepo, _ := newCommentServiceWithMocks()

	commentRepo.On("FindByID", mock.Anything, int64(3)).Return(&models.Comment{ID: 3, UserID: "author"}, nil)
	commentRepo.On("Delete", mock.Anything, int64(3)).Return(nil)

	err := svc.DeleteComment(context.Background(), 3, "author")

	assert.NoError(t, err)
	commentRepo.AssertExpectations(t)
}

func TestDeleteComment_NotAuthor(t *testing.T) {
	svc, commentRepo, _ := newCommentServiceWithMocks()

	commentRepo.On("FindByID", mock.Anything, int64(3)).Return(&models.Comment{ID: 3, UserID: "author"}, nil)

	err := svc.DeleteComment(context.Background(), 3, "someone-else")

	assert.ErrorIs(t, err, ErrNotOwner)
	commentRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	commentRepo.AssertExpectations(t)
}

func TestDeleteComment_NotFound(t *testing.T) {
	svc, commentRepo, _ := newCommentServiceWithMocks()

	commentRepo.On("FindByID", mock.Anything, int64(3)).Return(nil, gorm.ErrRecordNotFound)

	err := svc.DeleteComment(context.Background(), 3, "author")

	assert.ErrorIs(t, err, ErrCommentNotFound)
	commentRepo.AssertExpectations(t)
}
