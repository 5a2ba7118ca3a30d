package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"youtube-lite/infrastructure/cache"
	"youtube-lite/infrastructure/clients/googleauth"
	"youtube-lite/infrastructure/clients/storage"
	"youtube-lite/infrastructure/configuration"
	"youtube-lite/infrastructure/logger"
	"youtube-lite/infrastructure/persistence"
	"youtube-lite/infrastructure/pubsub"
	"youtube-lite/infrastructure/realtime"
	httpHandler "youtube-lite/interfaces/http"
	"youtube-lite/server"
	"youtube-lite/usecase"

	"github.com/gin-gonic/gin"
)

var httpServer *http.Server

func recoverPanic() {
	if err := recover(); err != nil {
		logger.GetLogger().WithField("error", err).Error("Application panic recovered")
	}
}

func main() {
	defer recoverPanic()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(interrupt)

	g, ctx := errgroup.WithContext(ctx)

	// Load env from files (non-destructive; OS env still has precedence)
	configuration.LoadEnvFromFile("config.env", ".env")

	app := configuration.C.App
	missingConfig := configuration.C.Validate()
	if len(missingConfig) > 0 {
		logger.GetLogger().WithField("missing", missingConfig).Error("Configuration incomplete - data routes will return CONFIG_ERROR")
	}

	mongoDb, err := persistence.NewMongoDb(
		configuration.C.Database.Mongo.Host,
		configuration.C.Database.Mongo.Port,
		configuration.C.Database.Mongo.User,
		configuration.C.Database.Mongo.Password,
		configuration.C.Database.Mongo.Name,
	)
	if err != nil {
		logger.GetLogger().WithField("error", err).Warn("MongoDB not available - data routes will fail until it returns")
		mongoDb = nil
	} else {
		if err := mongoDb.Ping(ctx, nil); err != nil {
			logger.GetLogger().WithField("error", err).Warn("MongoDB ping failed")
		} else {
			logger.GetLogger().Info("MongoDB connected successfully")
		}
	}

	redisClient, err := cache.NewCache(
		ctx,
		fmt.Sprintf("%s:%s", configuration.C.RedisClient.Host, configuration.C.RedisClient.Port),
		configuration.C.RedisClient.Username,
		configuration.C.RedisClient.Password,
	)
	if err != nil {
		logger.GetLogger().WithField("error", err).Warn("Redis not available - every view will be counted")
		redisClient = nil
	}

	pubSubClient, err := pubsub.NewPubSub(ctx, configuration.C.Pubsub.ProjectID)
	if err != nil {
		logger.GetLogger().WithField("error", err).Warn("Pub/Sub not available - engagement events disabled")
		pubSubClient = nil
	}

	legacyDb, err := persistence.NewLegacyDb()
	if err != nil {
		logger.GetLogger().WithField("error", err).Warn("Legacy MySQL not available - legacy routes serve the mock catalog")
		legacyDb = nil
	}

	googleClient, err := googleauth.NewGoogleClient(&googleauth.Config{
		ClientID:     configuration.C.Google.ClientID,
		ClientSecret: configuration.C.Google.ClientSecret,
		RedirectURL:  configuration.C.Google.RedirectURI,
	})
	if err != nil {
		logger.GetLogger().WithField("error", err).Warn("Google OAuth not configured - sign-in disabled")
		googleClient = nil
	}

	mediaStorage, err := storage.NewStorageClient(&storage.Config{
		BaseURL:   configuration.C.Storage.BaseURL,
		Bucket:    configuration.C.Storage.Bucket,
		APIKey:    configuration.C.Storage.APIKey,
		ChunkSize: configuration.C.Storage.ChunkSize,
	})
	if err != nil {
		logger.GetLogger().WithField("error", err).Warn("Object storage not configured - uploads disabled")
		mediaStorage = nil
	}

	dbName := configuration.C.Database.Mongo.Name
	videoRepository := persistence.NewVideoRepository(mongoDb, dbName)
	voteRepository := persistence.NewVoteRepository(mongoDb, dbName)
	engagementRepository := persistence.NewEngagementRepository(mongoDb, dbName)
	subscriptionRepository := persistence.NewSubscriptionRepository(mongoDb, dbName)
	commentRepository := persistence.NewCommentRepository(mongoDb, dbName)
	userRepository := persistence.NewUserRepository(mongoDb, dbName)
	legacyRepository := persistence.NewLegacyVideoRepository(legacyDb)

	viewMarker := cache.NewViewMarker(redisClient)
	publisher := pubsub.NewEngagementPublisher(pubSubClient, configuration.C.Pubsub.Topic)
	commentHub := realtime.NewCommentHub()

	videoUsecase := usecase.NewVideoUsecase(videoRepository)
	counterUsecase := usecase.NewCounterUsecase(videoRepository, voteRepository, engagementRepository, viewMarker, publisher)
	engagementUsecase := usecase.NewEngagementUsecase(engagementRepository, subscriptionRepository, videoRepository, userRepository, publisher)
	commentUsecase := usecase.NewCommentUsecase(commentRepository, videoRepository).
		WithBroadcaster(commentHub.Broadcast)
	authUsecase := usecase.NewAuthUsecase(googleClient, userRepository, app.SecretKey)
	studioUsecase := usecase.NewStudioUsecase(videoRepository, userRepository, mediaStorage, videoUsecase)
	legacyUsecase := usecase.NewLegacyUsecase(legacyRepository)

	commentHandler := httpHandler.NewCommentHandler(commentUsecase, func(c *gin.Context, videoID string) {
		initial, err := commentUsecase.List(c.Request.Context(), videoID)
		if err != nil {
			logger.GetLogger().WithField("error", err).Error("Failed to load initial comment snapshot")
		}
		commentHub.Serve(c, videoID, initial)
	})

	router := server.InitiateRouter(server.Handlers{
		Video:      httpHandler.NewVideoHandler(videoUsecase, counterUsecase),
		Engagement: httpHandler.NewEngagementHandler(engagementUsecase),
		Comment:    commentHandler,
		Auth:       httpHandler.NewAuthHandler(authUsecase),
		Studio:     httpHandler.NewStudioHandler(studioUsecase, authUsecase),
		Legacy:     httpHandler.NewLegacyVideoHandler(legacyUsecase),
	}, app.SecretKey, missingConfig)

	// Growth simulation ticker (no-op unless enabled in configuration). It
	// writes through the mongo repositories, so it cannot run without the store.
	simCfg := configuration.C.Simulation
	if simCfg.Enabled && mongoDb == nil {
		logger.GetLogger().Warn("Growth simulation disabled - MongoDB unavailable")
		simCfg.Enabled = false
	}
	simulator := usecase.NewSimulator(videoRepository, userRepository, simCfg)
	g.Go(func() error {
		err := simulator.Run(ctx)
		if errors.Is(err, context.Canceled) {
			return nil
		}
		return err
	})

	port := app.Port
	logger.GetLogger().WithField("port", port).Info("Starting application")
	g.Go(func() error {
		httpServer = &http.Server{
			Addr:    fmt.Sprintf(":%d", port),
			Handler: router,
		}
		if err := httpServer.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	select {
	case <-interrupt:
		logger.GetLogger().Info("Application shutdown requested")
	case <-ctx.Done():
	}

	cancel()
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if httpServer != nil {
		_ = httpServer.Shutdown(shutdownCtx)
	}
	if mongoDb != nil {
		_ = mongoDb.Disconnect(shutdownCtx)
	}
	if redisClient != nil {
		_ = redisClient.Close()
	}
	if pubSubClient != nil {
		_ = pubSubClient.Close()
	}

	if err := g.Wait(); err != nil {
		logger.GetLogger().WithField("error", err).Error("Server returned an error")
		os.Exit(2)
	}
}
