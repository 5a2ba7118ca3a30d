package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"youtube-lite/domain/model"
	"youtube-lite/usecase"
)

func TestPost_BroadcastsFullOrderedList(t *testing.T) {
	commentRepo := new(MockCommentRepo)
	videoRepo := new(MockVideoRepo)

	var broadcasted []model.Comment
	uc := usecase.NewCommentUsecase(commentRepo, videoRepo).
		WithBroadcaster(func(videoID string, comments []model.Comment) {
			broadcasted = comments
		})

	videoRepo.On("GetByID", mock.Anything, "v1").Return(&model.Video{ID: "v1"}, nil)
	commentRepo.On("Add", mock.Anything, mock.MatchedBy(func(c *model.Comment) bool {
		return c.Text == "nice!" && c.AuthorName == "Alice" && !c.Timestamp.IsZero()
	})).Return("c2", nil)
	// Repository returns newest first.
	ordered := []model.Comment{
		{ID: "c2", Text: "nice!", AuthorName: "Alice"},
		{ID: "c1", Text: "first", AuthorName: "Bob"},
	}
	commentRepo.On("ListByVideo", mock.Anything, "v1").Return(ordered, nil)

	comments, err := uc.Post(context.Background(), "u1", "Alice", "a.png", "v1", "nice!")
	assert.NoError(t, err)
	assert.Equal(t, "nice!", comments[0].Text)
	assert.Equal(t, "Alice", comments[0].AuthorName)
	assert.Equal(t, ordered, broadcasted)
}

func TestPost_RejectsBlankText(t *testing.T) {
	uc := usecase.NewCommentUsecase(new(MockCommentRepo), new(MockVideoRepo))
	_, err := uc.Post(context.Background(), "u1", "Alice", "", "v1", "   ")
	assert.ErrorIs(t, err, usecase.ErrInvalidInput)
}

func TestList_NeverNilComments(t *testing.T) {
	commentRepo := new(MockCommentRepo)
	uc := usecase.NewCommentUsecase(commentRepo, new(MockVideoRepo))
	commentRepo.On("ListByVideo", mock.Anything, "v1").Return(nil, nil)

	comments, err := uc.List(context.Background(), "v1")
	assert.NoError(t, err)
	assert.NotNil(t, comments)
	assert.Empty(t, comments)
}
