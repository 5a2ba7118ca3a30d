package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"youtube-lite/domain/dto"
	"youtube-lite/domain/model"
	"youtube-lite/domain/repository"
	"youtube-lite/infrastructure/utils"
)

// ErrForbidden marks an owner-only operation attempted by another user.
// Ownership is enforced here, not left to UI convention.
var ErrForbidden = errors.New("forbidden")

// ErrInvalidInput marks request payloads the usecase layer rejects; handlers
// render it as 400.
var ErrInvalidInput = errors.New("invalid input")

// IVideoUsecase defines the video repository operations
type IVideoUsecase interface {
	List(ctx context.Context) ([]model.Video, error)
	Get(ctx context.Context, videoID string) (*model.Video, error)
	ListByChannel(ctx context.Context, channelUID string) ([]model.Video, error)
	Search(ctx context.Context, req *dto.VideoSearchRequest) ([]model.Video, error)
	Create(ctx context.Context, userID, userName string, req *dto.VideoCreateRequest) (string, error)
	Update(ctx context.Context, userID, videoID string, req *dto.VideoUpdateRequest) error
	Delete(ctx context.Context, userID, videoID string) error
}

type videoUsecase struct {
	videoRepo repository.IVideo
}

func NewVideoUsecase(videoRepo repository.IVideo) IVideoUsecase {
	return &videoUsecase{videoRepo: videoRepo}
}

func (u *videoUsecase) List(ctx context.Context) ([]model.Video, error) {
	return u.videoRepo.List(ctx)
}

func (u *videoUsecase) Get(ctx context.Context, videoID string) (*model.Video, error) {
	return u.videoRepo.GetByID(ctx, videoID)
}

func (u *videoUsecase) ListByChannel(ctx context.Context, channelUID string) ([]model.Video, error) {
	return u.videoRepo.ListByChannel(ctx, channelUID)
}

func (u *videoUsecase) Search(ctx context.Context, req *dto.VideoSearchRequest) ([]model.Video, error) {
	term := strings.TrimSpace(req.Q)
	if term == "" {
		return []model.Video{}, nil
	}
	return u.videoRepo.Search(ctx, term, req.Limit)
}

func (u *videoUsecase) Create(ctx context.Context, userID, userName string, req *dto.VideoCreateRequest) (string, error) {
	visibility := req.Visibility
	switch visibility {
	case model.VisibilityPublic, model.VisibilityUnlisted, model.VisibilityPrivate:
	case "":
		visibility = model.VisibilityPublic
	default:
		return "", fmt.Errorf("%w: visibility %q", ErrInvalidInput, visibility)
	}

	video := &model.Video{
		Title:        req.Title,
		Description:  req.Description,
		Category:     req.Category,
		Visibility:   visibility,
		VideoURL:     req.VideoURL,
		ThumbnailURL: req.ThumbnailURL,
		UploaderID:   userID,
		UploaderName: userName,
		UploadDate:   utils.GetCurrentTime(),
		Duration:     req.Duration,
	}
	return u.videoRepo.Create(ctx, video)
}

func (u *videoUsecase) Update(ctx context.Context, userID, videoID string, req *dto.VideoUpdateRequest) error {
	if err := u.requireOwner(ctx, userID, videoID); err != nil {
		return err
	}
	return u.videoRepo.Update(ctx, videoID, req)
}

func (u *videoUsecase) Delete(ctx context.Context, userID, videoID string) error {
	if err := u.requireOwner(ctx, userID, videoID); err != nil {
		return err
	}
	return u.videoRepo.Delete(ctx, videoID)
}

func (u *videoUsecase) requireOwner(ctx context.Context, userID, videoID string) error {
	video, err := u.videoRepo.GetByID(ctx, videoID)
	if err != nil {
		return err
	}
	if video.UploaderID != userID {
		return ErrForbidden
	}
	return nil
}
