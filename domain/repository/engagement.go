package repository

import (
	"context"

	"youtube-lite/domain/model"
)

// IEngagement covers the per-user history, liked and watch-later lists.
// Record is an upsert by (uid, videoId); recording twice bumps the timestamp.
type IEngagement interface {
	Record(ctx context.Context, kind model.EngagementKind, entry *model.EngagementEntry) error
	Remove(ctx context.Context, kind model.EngagementKind, userID, videoID string) error
	List(ctx context.Context, kind model.EngagementKind, userID string) ([]model.EngagementEntry, error)
	// ListKeys returns video ids only, for the bounded clear-all batch.
	ListKeys(ctx context.Context, kind model.EngagementKind, userID string) ([]string, error)
}

// ISubscription manages subscription documents plus the coupled subscriber
// counter. Subscribe and Unsubscribe run both writes in one transaction so a
// crash cannot leave the counter and the document inconsistent.
type ISubscription interface {
	Subscribe(ctx context.Context, sub *model.Subscription) error
	Unsubscribe(ctx context.Context, subscriberUID, channelUID string) error
	Get(ctx context.Context, subscriberUID, channelUID string) (*model.Subscription, error)
	List(ctx context.Context, subscriberUID string) ([]model.Subscription, error)
}
