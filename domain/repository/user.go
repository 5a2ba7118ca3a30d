package repository

import (
	"context"

	"youtube-lite/domain/model"
)

// IUser stores channel profiles. Upsert is used on first sign-in and on
// customization saves (merge semantics: counters are preserved).
type IUser interface {
	GetByUID(ctx context.Context, uid string) (*model.UserProfile, error)
	Upsert(ctx context.Context, profile *model.UserProfile) error
	// IncrementSubscribers adjusts the counter directly, clamped at zero.
	IncrementSubscribers(ctx context.Context, uid string, delta int64) error
}
