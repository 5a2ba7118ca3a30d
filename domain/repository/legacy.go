package repository

import (
	"context"

	"youtube-lite/domain/model"
)

// ILegacyVideo is the alternate SQL read path duplicated from the old API.
// Callers fall back to the fixed mock catalog on any error.
type ILegacyVideo interface {
	List(ctx context.Context) ([]model.LegacyVideo, error)
	GetByID(ctx context.Context, id string) (*model.LegacyVideo, error)
	Search(ctx context.Context, term string, limit int) ([]model.LegacyVideo, error)
}
