package usecase

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"golang.org/x/sync/errgroup"

	"youtube-lite/domain/dto"
	"youtube-lite/domain/model"
	"youtube-lite/domain/repository"
	"youtube-lite/infrastructure/logger"
	"youtube-lite/infrastructure/utils"
)

// Partner-program thresholds shown on the monetization card.
const (
	monetizationSubscribersGoal = 1000
	monetizationWatchHoursGoal  = 4000
)

// placeholderThumbnailURL stands in when no thumbnail was provided or its
// upload failed; publishing never blocks on the thumbnail.
const placeholderThumbnailURL = "https://picsum.photos/400/225"

// MediaFile is one incoming multipart asset.
type MediaFile struct {
	Name   string
	Size   int64
	Reader io.Reader
}

// UploadRequest carries the metadata and assets of a studio publish.
type UploadRequest struct {
	Title       string
	Description string
	Category    string
	Visibility  string
	Duration    string
	Video       *MediaFile
	Thumbnail   *MediaFile // optional
}

// IStudioUsecase backs the creator studio: content listing, publishing,
// monetization progress and channel customization.
type IStudioUsecase interface {
	Content(ctx context.Context, userID string) ([]model.Video, error)
	Upload(ctx context.Context, userID, userName string, req *UploadRequest, onProgress repository.ProgressFunc) (*dto.UploadResponse, error)
	Monetization(ctx context.Context, userID string) (*dto.MonetizationResponse, error)
	Customize(ctx context.Context, userID string, req *dto.ChannelCustomizationRequest) (*model.UserProfile, error)
}

type studioUsecase struct {
	videoRepo    repository.IVideo
	userRepo     repository.IUser
	mediaStorage repository.IMediaStorage
	videoUsecase IVideoUsecase
}

func NewStudioUsecase(
	videoRepo repository.IVideo,
	userRepo repository.IUser,
	mediaStorage repository.IMediaStorage,
	videoUsecase IVideoUsecase,
) IStudioUsecase {
	return &studioUsecase{
		videoRepo:    videoRepo,
		userRepo:     userRepo,
		mediaStorage: mediaStorage,
		videoUsecase: videoUsecase,
	}
}

func (u *studioUsecase) Content(ctx context.Context, userID string) ([]model.Video, error) {
	videos, err := u.videoRepo.ListByChannel(ctx, userID)
	if err != nil {
		return nil, err
	}
	if videos == nil {
		videos = []model.Video{}
	}
	return videos, nil
}

// Upload pushes both assets to object storage in parallel, then writes the
// video document. A failed thumbnail degrades to the placeholder; a failed
// video upload fails the publish.
func (u *studioUsecase) Upload(ctx context.Context, userID, userName string, req *UploadRequest, onProgress repository.ProgressFunc) (*dto.UploadResponse, error) {
	if req.Video == nil {
		return nil, fmt.Errorf("%w: video file is required", ErrInvalidInput)
	}
	if u.mediaStorage == nil {
		return nil, fmt.Errorf("media storage is not configured")
	}

	var videoURL, thumbnailURL string
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		url, err := u.mediaStorage.UploadAsset(gctx, assetObjectName(userID, req.Video.Name), repository.AssetVideo, req.Video.Reader, req.Video.Size, onProgress)
		if err != nil {
			return fmt.Errorf("video upload failed: %w", err)
		}
		videoURL = url
		return nil
	})
	if req.Thumbnail != nil {
		g.Go(func() error {
			url, err := u.mediaStorage.UploadAsset(gctx, assetObjectName(userID, req.Thumbnail.Name), repository.AssetImage, req.Thumbnail.Reader, req.Thumbnail.Size, nil)
			if err != nil {
				logger.GetLogger().WithField("error", err).Warn("Thumbnail upload failed, using placeholder")
				return nil
			}
			thumbnailURL = url
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if thumbnailURL == "" {
		thumbnailURL = placeholderThumbnailURL
	}

	videoID, err := u.videoUsecase.Create(ctx, userID, userName, &dto.VideoCreateRequest{
		Title:        req.Title,
		Description:  req.Description,
		Category:     req.Category,
		Visibility:   req.Visibility,
		VideoURL:     videoURL,
		ThumbnailURL: thumbnailURL,
		Duration:     req.Duration,
	})
	if err != nil {
		return nil, err
	}
	return &dto.UploadResponse{VideoID: videoID, VideoURL: videoURL, ThumbnailURL: thumbnailURL}, nil
}

// Monetization estimates watch hours from views times duration; with no
// per-second playback telemetry a full watch per view is assumed.
func (u *studioUsecase) Monetization(ctx context.Context, userID string) (*dto.MonetizationResponse, error) {
	profile, err := u.userRepo.GetByUID(ctx, userID)
	if err != nil {
		return nil, err
	}
	videos, err := u.videoRepo.ListByChannel(ctx, userID)
	if err != nil {
		return nil, err
	}

	var watchSeconds int64
	for _, v := range videos {
		watchSeconds += v.Views * utils.ParseDurationSeconds(v.Duration)
	}
	watchHours := watchSeconds / 3600

	res := &dto.MonetizationResponse{
		Subscribers:     profile.Subscribers,
		SubscribersGoal: monetizationSubscribersGoal,
		WatchHours:      watchHours,
		WatchHoursGoal:  monetizationWatchHoursGoal,
		SubscriberPct:   progressPct(profile.Subscribers, monetizationSubscribersGoal),
		WatchHoursPct:   progressPct(watchHours, monetizationWatchHoursGoal),
	}
	res.Eligible = res.Subscribers >= monetizationSubscribersGoal && res.WatchHours >= monetizationWatchHoursGoal
	return res, nil
}

func (u *studioUsecase) Customize(ctx context.Context, userID string, req *dto.ChannelCustomizationRequest) (*model.UserProfile, error) {
	current, err := u.userRepo.GetByUID(ctx, userID)
	if err != nil {
		return nil, err
	}

	current.DisplayName = strings.TrimSpace(req.DisplayName)
	current.Description = req.Description
	if req.PhotoURL != "" {
		current.PhotoURL = req.PhotoURL
	}
	if req.BannerURL != "" {
		current.BannerURL = req.BannerURL
	}
	if err := u.userRepo.Upsert(ctx, current); err != nil {
		return nil, err
	}
	return current, nil
}

func progressPct(value, goal int64) float64 {
	pct := float64(value) * 100 / float64(goal)
	if pct > 100 {
		pct = 100
	}
	return pct
}

func assetObjectName(userID, filename string) string {
	base := filepath.Base(filename)
	return fmt.Sprintf("%s/%s-%s", userID, utils.GetCurrentTime().Format("20060102150405"), base)
}
