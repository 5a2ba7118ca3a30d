package repository

import (
	"context"

	"youtube-lite/domain/model"
)

// IComment stores per-video comments, listed newest first.
type IComment interface {
	Add(ctx context.Context, comment *model.Comment) (string, error)
	ListByVideo(ctx context.Context, videoID string) ([]model.Comment, error)
}
