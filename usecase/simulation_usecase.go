package usecase

import (
	"context"
	"time"

	"youtube-lite/domain/repository"
	"youtube-lite/infrastructure/configuration"
	"youtube-lite/infrastructure/logger"
)

// Simulator drips synthetic views and subscribers into the store so demo
// environments show movement. Disabled by default; Run exits immediately
// unless configuration enables it.
type Simulator struct {
	videoRepo repository.IVideo
	userRepo  repository.IUser
	cfg       configuration.Simulation
}

func NewSimulator(videoRepo repository.IVideo, userRepo repository.IUser, cfg configuration.Simulation) *Simulator {
	return &Simulator{videoRepo: videoRepo, userRepo: userRepo, cfg: cfg}
}

// Run blocks until ctx is canceled. Each tick touches real documents through
// the same repositories the API uses, so simulated growth is indistinguishable
// from organic traffic downstream.
func (s *Simulator) Run(ctx context.Context) error {
	if !s.cfg.Enabled {
		return nil
	}

	viewInterval := intervalOrDefault(s.cfg.ViewIntervalSec, 15)
	subInterval := intervalOrDefault(s.cfg.SubIntervalSec, 60)
	logger.GetLogger().
		WithField("viewInterval", viewInterval.String()).
		WithField("subInterval", subInterval.String()).
		Info("Growth simulation enabled")

	viewTicker := time.NewTicker(viewInterval)
	defer viewTicker.Stop()
	subTicker := time.NewTicker(subInterval)
	defer subTicker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-viewTicker.C:
			s.tickViews(ctx)
		case <-subTicker.C:
			s.tickSubscribers(ctx)
		}
	}
}

func (s *Simulator) tickViews(ctx context.Context) {
	videos, err := s.videoRepo.List(ctx)
	if err != nil || len(videos) == 0 {
		return
	}
	for _, v := range videos {
		if err := s.videoRepo.IncrementViews(ctx, v.ID, 1); err != nil {
			logger.GetLogger().WithField("error", err).WithField("videoId", v.ID).Warn("Simulated view increment failed")
		}
	}
}

func (s *Simulator) tickSubscribers(ctx context.Context) {
	uid := s.cfg.TargetChannelUID
	if uid == "" {
		return
	}
	if err := s.userRepo.IncrementSubscribers(ctx, uid, 1); err != nil {
		logger.GetLogger().WithField("error", err).Warn("Simulated subscriber increment failed")
	}
}

func intervalOrDefault(sec, def int) time.Duration {
	if sec <= 0 {
		sec = def
	}
	return time.Duration(sec) * time.Second
}
