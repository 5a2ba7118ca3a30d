package pubsub

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"cloud.google.com/go/pubsub"

	"youtube-lite/infrastructure/logger"
)

// NewPubSub creates the Pub/Sub client for engagement analytics events.
func NewPubSub(ctx context.Context, projectID string) (*pubsub.Client, error) {
	if projectID == "" {
		return nil, fmt.Errorf("pubsub project id is empty")
	}
	return pubsub.NewClient(ctx, projectID)
}

// EngagementEvent is the analytics payload for view/vote/subscribe actions.
type EngagementEvent struct {
	Type       string    `json:"type"` // video_viewed | video_vote | channel_subscribed
	VideoID    string    `json:"video_id,omitempty"`
	ChannelUID string    `json:"channel_uid,omitempty"`
	UserID     string    `json:"user_id,omitempty"`
	Action     string    `json:"action,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

type IEngagementPublisher interface {
	Publish(ctx context.Context, event EngagementEvent)
}

type EngagementPublisher struct {
	client *pubsub.Client
	topic  string
}

func NewEngagementPublisher(client *pubsub.Client, topic string) IEngagementPublisher {
	return &EngagementPublisher{client: client, topic: topic}
}

// Publish is best effort: analytics must never fail a user action, so errors
// are logged and swallowed.
func (p *EngagementPublisher) Publish(ctx context.Context, event EngagementEvent) {
	if p.client == nil {
		return
	}
	if event.OccurredAt.IsZero() {
		event.OccurredAt = time.Now().UTC()
	}
	payload, err := json.Marshal(event)
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("Error while marshalling engagement event")
		return
	}

	topic := p.client.Topic(p.topic)
	exists, err := topic.Exists(ctx)
	if err != nil {
		logger.GetLogger().WithField("error", err).Warn("Unable to check engagement topic")
		return
	}
	if !exists {
		if _, err := p.client.CreateTopic(ctx, p.topic); err != nil {
			logger.GetLogger().WithField("error", err).Warn("Unable to create engagement topic")
			return
		}
	}

	serverID, err := topic.Publish(ctx, &pubsub.Message{Data: payload}).Get(ctx)
	if err != nil {
		logger.GetLogger().WithField("error", err).Warn("Engagement event publish failed")
		return
	}
	logger.GetLogger().WithField("server ID", serverID).Debug("Engagement event published")
}
