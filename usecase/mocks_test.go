package usecase_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"youtube-lite/domain/dto"
	"youtube-lite/domain/model"
	"youtube-lite/infrastructure/pubsub"
)

// Mock implementations shared by the usecase tests.

type MockVideoRepo struct {
	mock.Mock
}

func (m *MockVideoRepo) List(ctx context.Context) ([]model.Video, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Video), args.Error(1)
}

func (m *MockVideoRepo) GetByID(ctx context.Context, videoID string) (*model.Video, error) {
	args := m.Called(ctx, videoID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Video), args.Error(1)
}

func (m *MockVideoRepo) ListByChannel(ctx context.Context, channelUID string) ([]model.Video, error) {
	args := m.Called(ctx, channelUID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Video), args.Error(1)
}

func (m *MockVideoRepo) Search(ctx context.Context, term string, limit int) ([]model.Video, error) {
	args := m.Called(ctx, term, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Video), args.Error(1)
}

func (m *MockVideoRepo) Create(ctx context.Context, video *model.Video) (string, error) {
	args := m.Called(ctx, video)
	return args.String(0), args.Error(1)
}

func (m *MockVideoRepo) Update(ctx context.Context, videoID string, updates *dto.VideoUpdateRequest) error {
	args := m.Called(ctx, videoID, updates)
	return args.Error(0)
}

func (m *MockVideoRepo) Delete(ctx context.Context, videoID string) error {
	args := m.Called(ctx, videoID)
	return args.Error(0)
}

func (m *MockVideoRepo) IncrementViews(ctx context.Context, videoID string, delta int64) error {
	args := m.Called(ctx, videoID, delta)
	return args.Error(0)
}

func (m *MockVideoRepo) ApplyVoteDelta(ctx context.Context, videoID string, likes, dislikes int64) error {
	args := m.Called(ctx, videoID, likes, dislikes)
	return args.Error(0)
}

type MockVoteRepo struct {
	mock.Mock
}

func (m *MockVoteRepo) Get(ctx context.Context, userID, videoID string) (*model.VideoVote, error) {
	args := m.Called(ctx, userID, videoID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.VideoVote), args.Error(1)
}

func (m *MockVoteRepo) Set(ctx context.Context, vote *model.VideoVote) error {
	args := m.Called(ctx, vote)
	return args.Error(0)
}

func (m *MockVoteRepo) Delete(ctx context.Context, userID, videoID string) error {
	args := m.Called(ctx, userID, videoID)
	return args.Error(0)
}

type MockEngagementRepo struct {
	mock.Mock
}

func (m *MockEngagementRepo) Record(ctx context.Context, kind model.EngagementKind, entry *model.EngagementEntry) error {
	args := m.Called(ctx, kind, entry)
	return args.Error(0)
}

func (m *MockEngagementRepo) Remove(ctx context.Context, kind model.EngagementKind, userID, videoID string) error {
	args := m.Called(ctx, kind, userID, videoID)
	return args.Error(0)
}

func (m *MockEngagementRepo) List(ctx context.Context, kind model.EngagementKind, userID string) ([]model.EngagementEntry, error) {
	args := m.Called(ctx, kind, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.EngagementEntry), args.Error(1)
}

func (m *MockEngagementRepo) ListKeys(ctx context.Context, kind model.EngagementKind, userID string) ([]string, error) {
	args := m.Called(ctx, kind, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

type MockSubscriptionRepo struct {
	mock.Mock
}

func (m *MockSubscriptionRepo) Subscribe(ctx context.Context, sub *model.Subscription) error {
	args := m.Called(ctx, sub)
	return args.Error(0)
}

func (m *MockSubscriptionRepo) Unsubscribe(ctx context.Context, subscriberUID, channelUID string) error {
	args := m.Called(ctx, subscriberUID, channelUID)
	return args.Error(0)
}

func (m *MockSubscriptionRepo) Get(ctx context.Context, subscriberUID, channelUID string) (*model.Subscription, error) {
	args := m.Called(ctx, subscriberUID, channelUID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Subscription), args.Error(1)
}

func (m *MockSubscriptionRepo) List(ctx context.Context, subscriberUID string) ([]model.Subscription, error) {
	args := m.Called(ctx, subscriberUID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Subscription), args.Error(1)
}

type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) GetByUID(ctx context.Context, uid string) (*model.UserProfile, error) {
	args := m.Called(ctx, uid)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.UserProfile), args.Error(1)
}

func (m *MockUserRepo) Upsert(ctx context.Context, profile *model.UserProfile) error {
	args := m.Called(ctx, profile)
	return args.Error(0)
}

func (m *MockUserRepo) IncrementSubscribers(ctx context.Context, uid string, delta int64) error {
	args := m.Called(ctx, uid, delta)
	return args.Error(0)
}

type MockCommentRepo struct {
	mock.Mock
}

func (m *MockCommentRepo) Add(ctx context.Context, comment *model.Comment) (string, error) {
	args := m.Called(ctx, comment)
	return args.String(0), args.Error(1)
}

func (m *MockCommentRepo) ListByVideo(ctx context.Context, videoID string) ([]model.Comment, error) {
	args := m.Called(ctx, videoID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Comment), args.Error(1)
}

type MockLegacyRepo struct {
	mock.Mock
}

func (m *MockLegacyRepo) List(ctx context.Context) ([]model.LegacyVideo, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.LegacyVideo), args.Error(1)
}

func (m *MockLegacyRepo) GetByID(ctx context.Context, id string) (*model.LegacyVideo, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.LegacyVideo), args.Error(1)
}

func (m *MockLegacyRepo) Search(ctx context.Context, term string, limit int) ([]model.LegacyVideo, error) {
	args := m.Called(ctx, term, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.LegacyVideo), args.Error(1)
}

type MockViewMarker struct {
	mock.Mock
}

func (m *MockViewMarker) MarkViewed(ctx context.Context, sessionID, videoID string) (bool, error) {
	args := m.Called(ctx, sessionID, videoID)
	return args.Bool(0), args.Error(1)
}

type MockPublisher struct {
	mock.Mock
}

func (m *MockPublisher) Publish(ctx context.Context, event pubsub.EngagementEvent) {
	m.Called(ctx, event)
}
