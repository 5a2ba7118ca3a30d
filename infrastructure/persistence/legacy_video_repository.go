package persistence

import (
	"context"
	"errors"
	"fmt"

	"youtube-lite/domain/model"
	"youtube-lite/domain/repository"

	"gorm.io/gorm"
)

// LegacyVideoRepository duplicates the video read path against MySQL. It only
// serves the old /api/videos surface; the primary client never touches it.
type LegacyVideoRepository struct {
	db *gorm.DB
}

func NewLegacyVideoRepository(db *gorm.DB) repository.ILegacyVideo {
	return &LegacyVideoRepository{db: db}
}

func (r *LegacyVideoRepository) List(ctx context.Context) ([]model.LegacyVideo, error) {
	if r.db == nil {
		return nil, errors.New("legacy database not configured")
	}
	var videos []model.LegacyVideo
	err := r.db.WithContext(ctx).Order("upload_date DESC").Find(&videos).Error
	if err != nil {
		return nil, err
	}
	return videos, nil
}

func (r *LegacyVideoRepository) GetByID(ctx context.Context, id string) (*model.LegacyVideo, error) {
	if r.db == nil {
		return nil, errors.New("legacy database not configured")
	}
	var video model.LegacyVideo
	err := r.db.WithContext(ctx).First(&video, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &video, nil
}

func (r *LegacyVideoRepository) Search(ctx context.Context, term string, limit int) ([]model.LegacyVideo, error) {
	if r.db == nil {
		return nil, errors.New("legacy database not configured")
	}
	if limit <= 0 {
		limit = 20
	}
	var videos []model.LegacyVideo
	pattern := fmt.Sprintf("%%%s%%", term)
	err := r.db.WithContext(ctx).Where("LOWER(title) LIKE LOWER(?)", pattern).Limit(limit).Find(&videos).Error
	if err != nil {
		return nil, err
	}
	return videos, nil
}
