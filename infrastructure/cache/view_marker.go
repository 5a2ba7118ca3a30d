package cache

import (
	"context"
	"fmt"
	"time"

	"youtube-lite/infrastructure/logger"

	"github.com/redis/go-redis/v9"
)

// Sessions are browser-scoped; the marker outliving the tab is acceptable,
// the marker being lost early just counts an extra view.
const viewMarkerTTL = 24 * time.Hour

// IViewMarker implements the session-scoped "already viewed" flag that
// suppresses duplicate view counting. Best effort by design: a cleared
// marker or a fresh session produces an extra counted view.
type IViewMarker interface {
	// MarkViewed returns true if this (session, video) pair was not marked
	// yet, i.e. the view should be counted.
	MarkViewed(ctx context.Context, sessionID, videoID string) (bool, error)
}

type ViewMarker struct {
	client *redis.Client
}

func NewViewMarker(client *redis.Client) IViewMarker {
	return &ViewMarker{client: client}
}

func (m *ViewMarker) MarkViewed(ctx context.Context, sessionID, videoID string) (bool, error) {
	if m.client == nil {
		// No marker store: count every view rather than dropping them.
		return true, nil
	}
	key := fmt.Sprintf("view:%s:%s", sessionID, videoID)
	ok, err := m.client.SetNX(ctx, key, 1, viewMarkerTTL).Result()
	if err != nil {
		logger.GetLogger().WithField("error", err).Warn("View marker unavailable - counting view")
		return true, nil
	}
	return ok, nil
}
