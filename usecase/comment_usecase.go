package usecase

import (
	"context"
	"fmt"
	"strings"

	"youtube-lite/domain/model"
	"youtube-lite/domain/repository"
	"youtube-lite/infrastructure/utils"
)

// Broadcaster pushes the full ordered comment list to live subscribers.
type Broadcaster func(videoID string, comments []model.Comment)

// ICommentUsecase posts and lists comments. Posting re-reads the list and
// hands it to the broadcaster so stream subscribers see the new state.
type ICommentUsecase interface {
	Post(ctx context.Context, userID, userName, userPhoto, videoID, text string) ([]model.Comment, error)
	List(ctx context.Context, videoID string) ([]model.Comment, error)
}

type commentUsecase struct {
	commentRepo repository.IComment
	videoRepo   repository.IVideo
	broadcast   Broadcaster
}

func NewCommentUsecase(commentRepo repository.IComment, videoRepo repository.IVideo) *commentUsecase {
	return &commentUsecase{commentRepo: commentRepo, videoRepo: videoRepo}
}

// WithBroadcaster attaches the live hub; without it posting still works.
func (u *commentUsecase) WithBroadcaster(b Broadcaster) *commentUsecase {
	u.broadcast = b
	return u
}

func (u *commentUsecase) Post(ctx context.Context, userID, userName, userPhoto, videoID, text string) ([]model.Comment, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, fmt.Errorf("%w: comment text is empty", ErrInvalidInput)
	}

	if _, err := u.videoRepo.GetByID(ctx, videoID); err != nil {
		return nil, err
	}

	_, err := u.commentRepo.Add(ctx, &model.Comment{
		VideoID:     videoID,
		AuthorUID:   userID,
		AuthorName:  userName,
		AuthorPhoto: userPhoto,
		Text:        text,
		Timestamp:   utils.GetCurrentTime(),
	})
	if err != nil {
		return nil, err
	}

	comments, err := u.commentRepo.ListByVideo(ctx, videoID)
	if err != nil {
		return nil, err
	}
	if comments == nil {
		comments = []model.Comment{}
	}
	if u.broadcast != nil {
		u.broadcast(videoID, comments)
	}
	return comments, nil
}

func (u *commentUsecase) List(ctx context.Context, videoID string) ([]model.Comment, error) {
	comments, err := u.commentRepo.ListByVideo(ctx, videoID)
	if err != nil {
		return nil, err
	}
	if comments == nil {
		comments = []model.Comment{}
	}
	return comments, nil
}
