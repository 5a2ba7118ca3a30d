package usecase

import (
	"context"
	"errors"
	"fmt"

	"youtube-lite/domain/dto"
	"youtube-lite/domain/model"
	"youtube-lite/domain/repository"
	"youtube-lite/infrastructure/cache"
	"youtube-lite/infrastructure/logger"
	"youtube-lite/infrastructure/pubsub"
	"youtube-lite/infrastructure/utils"
)

// ICounterUsecase covers view counting and the per-user vote state machine.
type ICounterUsecase interface {
	// RegisterView counts at most one view per (session, video). userID may
	// be empty for anonymous viewers; signed-in viewers also get a history
	// entry.
	RegisterView(ctx context.Context, sessionID, userID, videoID string) (*dto.ViewResponse, error)
	// Vote moves the caller's tri-state vote and adjusts both counters.
	Vote(ctx context.Context, userID, videoID, action string) (*dto.VoteResponse, error)
}

type counterUsecase struct {
	videoRepo      repository.IVideo
	voteRepo       repository.IVote
	engagementRepo repository.IEngagement
	viewMarker     cache.IViewMarker
	publisher      pubsub.IEngagementPublisher
}

func NewCounterUsecase(
	videoRepo repository.IVideo,
	voteRepo repository.IVote,
	engagementRepo repository.IEngagement,
	viewMarker cache.IViewMarker,
	publisher pubsub.IEngagementPublisher,
) ICounterUsecase {
	return &counterUsecase{
		videoRepo:      videoRepo,
		voteRepo:       voteRepo,
		engagementRepo: engagementRepo,
		viewMarker:     viewMarker,
		publisher:      publisher,
	}
}

func (u *counterUsecase) RegisterView(ctx context.Context, sessionID, userID, videoID string) (*dto.ViewResponse, error) {
	video, err := u.videoRepo.GetByID(ctx, videoID)
	if err != nil {
		return nil, err
	}

	count := true
	if sessionID != "" {
		count, err = u.viewMarker.MarkViewed(ctx, sessionID, videoID)
		if err != nil {
			// Best-effort de-dup only; never drop the view on marker failure.
			count = true
		}
	}

	views := video.Views
	if count {
		if err := u.videoRepo.IncrementViews(ctx, videoID, 1); err != nil {
			return nil, err
		}
		views++
		if u.publisher != nil {
			u.publisher.Publish(ctx, pubsub.EngagementEvent{Type: "video_viewed", VideoID: videoID, UserID: userID})
		}
	}

	if userID != "" {
		entry := engagementEntryFromVideo(userID, video)
		if err := u.engagementRepo.Record(ctx, model.KindHistory, entry); err != nil {
			logger.GetLogger().WithField("error", err).Warn("Failed to record history entry")
		}
	}

	return &dto.ViewResponse{Counted: count, Views: views}, nil
}

func (u *counterUsecase) Vote(ctx context.Context, userID, videoID, action string) (*dto.VoteResponse, error) {
	switch action {
	case model.VoteLike, model.VoteDislike, model.VoteNone:
	default:
		return nil, fmt.Errorf("%w: vote action %q", ErrInvalidInput, action)
	}

	video, err := u.videoRepo.GetByID(ctx, videoID)
	if err != nil {
		return nil, err
	}

	current := model.VoteNone
	if existing, err := u.voteRepo.Get(ctx, userID, videoID); err == nil {
		current = existing.Action
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	if current == action {
		return &dto.VoteResponse{Action: current, Likes: video.Likes, Dislikes: video.Dislikes}, nil
	}

	likesDelta := voteWeight(action, model.VoteLike) - voteWeight(current, model.VoteLike)
	dislikesDelta := voteWeight(action, model.VoteDislike) - voteWeight(current, model.VoteDislike)
	if err := u.videoRepo.ApplyVoteDelta(ctx, videoID, likesDelta, dislikesDelta); err != nil {
		return nil, err
	}

	if action == model.VoteNone {
		err = u.voteRepo.Delete(ctx, userID, videoID)
	} else {
		err = u.voteRepo.Set(ctx, &model.VideoVote{
			UserID:    userID,
			VideoID:   videoID,
			Action:    action,
			UpdatedAt: utils.GetCurrentTime(),
		})
	}
	if err != nil {
		// The counters must stay consistent with the vote records they
		// summarize; undo the delta before reporting the failure.
		if cerr := u.videoRepo.ApplyVoteDelta(ctx, videoID, -likesDelta, -dislikesDelta); cerr != nil {
			logger.GetLogger().WithField("error", cerr).WithField("videoId", videoID).Error("Failed to roll back vote counters")
		}
		return nil, err
	}

	// The liked-videos list tracks the like state.
	if action == model.VoteLike {
		if err := u.engagementRepo.Record(ctx, model.KindLikedVideos, engagementEntryFromVideo(userID, video)); err != nil {
			logger.GetLogger().WithField("error", err).Warn("Failed to record liked entry")
		}
	} else if current == model.VoteLike {
		if err := u.engagementRepo.Remove(ctx, model.KindLikedVideos, userID, videoID); err != nil {
			logger.GetLogger().WithField("error", err).Warn("Failed to remove liked entry")
		}
	}

	if u.publisher != nil {
		u.publisher.Publish(ctx, pubsub.EngagementEvent{Type: "video_vote", VideoID: videoID, UserID: userID, Action: action})
	}

	return &dto.VoteResponse{
		Action:   action,
		Likes:    clampZero(video.Likes + likesDelta),
		Dislikes: clampZero(video.Dislikes + dislikesDelta),
	}, nil
}

func voteWeight(action, want string) int64 {
	if action == want {
		return 1
	}
	return 0
}

func clampZero(v int64) int64 {
	if v < 0 {
		return 0
	}
	return v
}

func engagementEntryFromVideo(userID string, video *model.Video) *model.EngagementEntry {
	return &model.EngagementEntry{
		UserID:       userID,
		VideoID:      video.ID,
		Title:        video.Title,
		ThumbnailURL: video.ThumbnailURL,
		UploaderName: video.UploaderName,
		Duration:     video.Duration,
		Views:        video.Views,
		Timestamp:    utils.GetCurrentTime(),
	}
}
