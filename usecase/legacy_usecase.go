package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"youtube-lite/domain/model"
	"youtube-lite/domain/repository"
	"youtube-lite/infrastructure/logger"
)

// ILegacyUsecase serves the old API surface. Every operation degrades to the
// fixed mock catalog on a backing-store failure so legacy clients never see a
// 5xx from this path. Get returns nil when the id matches neither the store
// nor the catalog.
type ILegacyUsecase interface {
	List(ctx context.Context) []model.LegacyVideo
	Get(ctx context.Context, id string) *model.LegacyVideo
	Search(ctx context.Context, term string) []model.LegacyVideo
}

type legacyUsecase struct {
	legacyRepo repository.ILegacyVideo
}

func NewLegacyUsecase(legacyRepo repository.ILegacyVideo) ILegacyUsecase {
	return &legacyUsecase{legacyRepo: legacyRepo}
}

func (u *legacyUsecase) List(ctx context.Context) []model.LegacyVideo {
	videos, err := u.legacyRepo.List(ctx)
	if err != nil {
		logger.GetLogger().WithField("error", err).Warn("Legacy store unavailable, serving mock catalog")
		return mockCatalog()
	}
	if videos == nil {
		// A healthy-but-empty store stays empty; only failures fall back.
		videos = []model.LegacyVideo{}
	}
	return videos
}

func (u *legacyUsecase) Get(ctx context.Context, id string) *model.LegacyVideo {
	video, err := u.legacyRepo.GetByID(ctx, id)
	if err == nil {
		return video
	}

	catalog := mockCatalog()
	if errors.Is(err, repository.ErrNotFound) {
		// The store is healthy; only an exact catalog match rescues the id.
		for i := range catalog {
			if catalog[i].ID == id {
				return &catalog[i]
			}
		}
		return nil
	}

	logger.GetLogger().WithField("error", err).WithField("id", id).Warn("Legacy lookup failed, serving mock catalog")
	for i := range catalog {
		if catalog[i].ID == id {
			return &catalog[i]
		}
	}
	// Any id resolves during an outage so demo clients keep rendering.
	return &catalog[0]
}

func (u *legacyUsecase) Search(ctx context.Context, term string) []model.LegacyVideo {
	term = strings.TrimSpace(term)
	if term == "" {
		return []model.LegacyVideo{}
	}
	videos, err := u.legacyRepo.Search(ctx, term, 20)
	if err == nil {
		if videos == nil {
			videos = []model.LegacyVideo{}
		}
		return videos
	}
	logger.GetLogger().WithField("error", err).Warn("Legacy search failed, filtering mock catalog")

	lower := strings.ToLower(term)
	matched := []model.LegacyVideo{}
	for _, v := range mockCatalog() {
		if strings.Contains(strings.ToLower(v.Title), lower) {
			matched = append(matched, v)
		}
	}
	return matched
}

// mockCatalog is the deterministic 8-item fallback catalog the legacy clients
// were built against. IDs and ordering are fixed.
func mockCatalog() []model.LegacyVideo {
	base := time.Date(2023, time.January, 1, 0, 0, 0, 0, time.UTC)
	return []model.LegacyVideo{
		{ID: "1", Title: "Building a Full-Stack App in One Weekend", Description: "From empty repo to deployed product in 48 hours.", ThumbnailURL: "https://picsum.photos/seed/1/400/225", VideoURL: "https://example.com/videos/1.mp4", Views: 15423, Uploader: "DevDiaries", UploadDate: base, Duration: "18:32"},
		{ID: "2", Title: "Chill Lofi Beats to Code/Relax To", Description: "Two hours of mellow beats for deep focus.", ThumbnailURL: "https://picsum.photos/seed/2/400/225", VideoURL: "https://example.com/videos/2.mp4", Views: 982340, Uploader: "LofiLounge", UploadDate: base.AddDate(0, 0, 7), Duration: "2:01:15"},
		{ID: "3", Title: "Top 10 Hiking Trails in the Rockies", Description: "Trailheads, maps and the views that make the climb worth it.", ThumbnailURL: "https://picsum.photos/seed/3/400/225", VideoURL: "https://example.com/videos/3.mp4", Views: 48210, Uploader: "TrailTime", UploadDate: base.AddDate(0, 0, 14), Duration: "12:04"},
		{ID: "4", Title: "Homemade Ramen From Scratch", Description: "Broth, noodles and toppings, the long way.", ThumbnailURL: "https://picsum.photos/seed/4/400/225", VideoURL: "https://example.com/videos/4.mp4", Views: 120034, Uploader: "KitchenCraft", UploadDate: base.AddDate(0, 0, 21), Duration: "24:48"},
		{ID: "5", Title: "Understanding Black Holes in 15 Minutes", Description: "Event horizons explained without the math.", ThumbnailURL: "https://picsum.photos/seed/5/400/225", VideoURL: "https://example.com/videos/5.mp4", Views: 350912, Uploader: "CosmosDaily", UploadDate: base.AddDate(0, 1, 0), Duration: "15:00"},
		{ID: "6", Title: "Beginner's Guide to Film Photography", Description: "Loading film, metering light and embracing the grain.", ThumbnailURL: "https://picsum.photos/seed/6/400/225", VideoURL: "https://example.com/videos/6.mp4", Views: 27801, Uploader: "ShutterStories", UploadDate: base.AddDate(0, 1, 7), Duration: "19:27"},
		{ID: "7", Title: "Morning Yoga for Desk Workers", Description: "Twenty minutes to undo eight hours of sitting.", ThumbnailURL: "https://picsum.photos/seed/7/400/225", VideoURL: "https://example.com/videos/7.mp4", Views: 88450, Uploader: "FlowState", UploadDate: base.AddDate(0, 1, 14), Duration: "21:10"},
		{ID: "8", Title: "Restoring a 1970s Turntable", Description: "Belt swap, cartridge alignment and a fresh finish.", ThumbnailURL: "https://picsum.photos/seed/8/400/225", VideoURL: "https://example.com/videos/8.mp4", Views: 19327, Uploader: "AnalogWorkshop", UploadDate: base.AddDate(0, 1, 21), Duration: "27:53"},
	}
}
