package repository

import (
	"context"

	"youtube-lite/domain/dto"
	"youtube-lite/domain/model"
)

// ErrNotFound is returned by point lookups when no document matches.
// Defined here so use cases don't depend on driver error types.
type notFoundError struct{}

func (notFoundError) Error() string { return "not found" }

var ErrNotFound error = notFoundError{}

// IVideo defines access to the videos collection.
type IVideo interface {
	List(ctx context.Context) ([]model.Video, error)
	GetByID(ctx context.Context, videoID string) (*model.Video, error)
	ListByChannel(ctx context.Context, channelUID string) ([]model.Video, error)
	Search(ctx context.Context, term string, limit int) ([]model.Video, error)
	Create(ctx context.Context, video *model.Video) (string, error)
	Update(ctx context.Context, videoID string, updates *dto.VideoUpdateRequest) error
	Delete(ctx context.Context, videoID string) error

	// IncrementViews/ApplyVoteDelta adjust counters via atomic increments only.
	IncrementViews(ctx context.Context, videoID string, delta int64) error
	ApplyVoteDelta(ctx context.Context, videoID string, likes, dislikes int64) error
}

// IVote manages the per-(user, video) vote records.
type IVote interface {
	Get(ctx context.Context, userID, videoID string) (*model.VideoVote, error)
	Set(ctx context.Context, vote *model.VideoVote) error
	Delete(ctx context.Context, userID, videoID string) error
}
