package usecase

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"

	"youtube-lite/domain/dto"
	"youtube-lite/domain/model"
	"youtube-lite/domain/repository"
	"youtube-lite/infrastructure/pubsub"
	"youtube-lite/infrastructure/utils"
)

const clearAllConcurrency = 8

// IEngagementUsecase manages the per-user lists (history, liked, watch-later)
// and channel subscriptions.
type IEngagementUsecase interface {
	Record(ctx context.Context, kind model.EngagementKind, userID, videoID string) error
	Remove(ctx context.Context, kind model.EngagementKind, userID, videoID string) error
	List(ctx context.Context, kind model.EngagementKind, userID string) ([]model.EngagementEntry, error)
	ClearAll(ctx context.Context, kind model.EngagementKind, userID string) error

	Subscribe(ctx context.Context, subscriberUID, channelUID string) error
	Unsubscribe(ctx context.Context, subscriberUID, channelUID string) error
	SubscriptionStatus(ctx context.Context, subscriberUID, channelUID string) (*dto.SubscriptionStatusResponse, error)
	ListSubscriptions(ctx context.Context, subscriberUID string) ([]model.Subscription, error)
}

type engagementUsecase struct {
	engagementRepo   repository.IEngagement
	subscriptionRepo repository.ISubscription
	videoRepo        repository.IVideo
	userRepo         repository.IUser
	publisher        pubsub.IEngagementPublisher
}

func NewEngagementUsecase(
	engagementRepo repository.IEngagement,
	subscriptionRepo repository.ISubscription,
	videoRepo repository.IVideo,
	userRepo repository.IUser,
	publisher pubsub.IEngagementPublisher,
) IEngagementUsecase {
	return &engagementUsecase{
		engagementRepo:   engagementRepo,
		subscriptionRepo: subscriptionRepo,
		videoRepo:        videoRepo,
		userRepo:         userRepo,
		publisher:        publisher,
	}
}

func (u *engagementUsecase) Record(ctx context.Context, kind model.EngagementKind, userID, videoID string) error {
	video, err := u.videoRepo.GetByID(ctx, videoID)
	if err != nil {
		return err
	}
	return u.engagementRepo.Record(ctx, kind, engagementEntryFromVideo(userID, video))
}

func (u *engagementUsecase) Remove(ctx context.Context, kind model.EngagementKind, userID, videoID string) error {
	return u.engagementRepo.Remove(ctx, kind, userID, videoID)
}

func (u *engagementUsecase) List(ctx context.Context, kind model.EngagementKind, userID string) ([]model.EngagementEntry, error) {
	entries, err := u.engagementRepo.List(ctx, kind, userID)
	if err != nil {
		return nil, err
	}
	if entries == nil {
		entries = []model.EngagementEntry{}
	}
	return entries, nil
}

// ClearAll removes every entry of the list with bounded concurrency so a long
// history cannot fan out into thousands of simultaneous deletes.
func (u *engagementUsecase) ClearAll(ctx context.Context, kind model.EngagementKind, userID string) error {
	keys, err := u.engagementRepo.ListKeys(ctx, kind, userID)
	if err != nil {
		return err
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(clearAllConcurrency)
	for _, videoID := range keys {
		videoID := videoID
		g.Go(func() error {
			return u.engagementRepo.Remove(gctx, kind, userID, videoID)
		})
	}
	return g.Wait()
}

func (u *engagementUsecase) Subscribe(ctx context.Context, subscriberUID, channelUID string) error {
	if subscriberUID == channelUID {
		return fmt.Errorf("%w: cannot subscribe to own channel", ErrInvalidInput)
	}

	channel, err := u.userRepo.GetByUID(ctx, channelUID)
	if err != nil {
		return err
	}

	err = u.subscriptionRepo.Subscribe(ctx, &model.Subscription{
		SubscriberUID: subscriberUID,
		ChannelUID:    channelUID,
		ChannelName:   channel.DisplayName,
		ChannelPhoto:  channel.PhotoURL,
		SubscribedAt:  utils.GetCurrentTime(),
	})
	if err != nil {
		return err
	}

	if u.publisher != nil {
		u.publisher.Publish(ctx, pubsub.EngagementEvent{Type: "channel_subscribed", ChannelUID: channelUID, UserID: subscriberUID})
	}
	return nil
}

func (u *engagementUsecase) Unsubscribe(ctx context.Context, subscriberUID, channelUID string) error {
	if err := u.subscriptionRepo.Unsubscribe(ctx, subscriberUID, channelUID); err != nil {
		return err
	}
	if u.publisher != nil {
		u.publisher.Publish(ctx, pubsub.EngagementEvent{Type: "channel_unsubscribed", ChannelUID: channelUID, UserID: subscriberUID})
	}
	return nil
}

func (u *engagementUsecase) SubscriptionStatus(ctx context.Context, subscriberUID, channelUID string) (*dto.SubscriptionStatusResponse, error) {
	res := &dto.SubscriptionStatusResponse{ChannelUID: channelUID}

	if channel, err := u.userRepo.GetByUID(ctx, channelUID); err == nil {
		res.ChannelName = channel.DisplayName
		res.Subscribers = channel.Subscribers
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	if _, err := u.subscriptionRepo.Get(ctx, subscriberUID, channelUID); err == nil {
		res.IsSubscribed = true
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}
	return res, nil
}

func (u *engagementUsecase) ListSubscriptions(ctx context.Context, subscriberUID string) ([]model.Subscription, error) {
	subs, err := u.subscriptionRepo.List(ctx, subscriberUID)
	if err != nil {
		return nil, err
	}
	if subs == nil {
		subs = []model.Subscription{}
	}
	return subs, nil
}
