package server

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"youtube-lite/domain/dto"
	"youtube-lite/domain/model"
	httpHandler "youtube-lite/interfaces/http"
	"youtube-lite/interfaces/middleware"
)

// Handlers groups everything the router mounts.
type Handlers struct {
	Video      httpHandler.IVideoHandler
	Engagement httpHandler.IEngagementHandler
	Comment    httpHandler.ICommentHandler
	Auth       httpHandler.IAuthHandler
	Studio     httpHandler.IStudioHandler
	Legacy     httpHandler.ILegacyVideoHandler
}

// InitiateRouter mounts the versioned API, the auth gateway and the legacy
// stub. missingConfig non-empty puts every data route behind the CONFIG_ERROR
// guard; the legacy stub and healthz stay reachable.
func InitiateRouter(h Handlers, secretKey string, missingConfig []string) *gin.Engine {
	router := gin.New()
	// A panic renders a diagnostic JSON body instead of an empty reply.
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		c.AbortWithStatusJSON(http.StatusInternalServerError, dto.Res{
			ResponseCode:    dto.CodeServerError,
			ResponseMessage: "Unexpected failure; the request was aborted",
			Data:            gin.H{"path": c.Request.URL.Path},
		})
	}))
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:5173", "https://localhost:3000", "https://localhost:5173"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With", "X-Session-Id"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "config_missing": missingConfig})
	})

	// Auth gateway (no token required).
	router.GET("/auth/google", h.Auth.GetAuthURL)
	router.GET("/auth/google/callback", h.Auth.HandleCallback)

	// Legacy surface: original paths, original shapes, never behind the
	// config guard since it degrades to the mock catalog on its own.
	legacy := router.Group("/api")
	{
		legacy.GET("/videos", h.Legacy.List)
		legacy.GET("/videos/search", h.Legacy.Search)
		legacy.GET("/videos/:id", h.Legacy.Get)
	}

	v1 := router.Group("/api/v1")
	v1.Use(middleware.ConfigGuard(missingConfig))

	// Public reads.
	v1.GET("/videos", h.Video.List)
	v1.GET("/videos/search", h.Video.Search)
	v1.GET("/videos/:videoId", h.Video.Get)
	v1.GET("/videos/:videoId/comments", h.Comment.List)
	v1.GET("/videos/:videoId/comments/stream", h.Comment.Stream)
	v1.GET("/channels/:channelId", h.Studio.Channel)
	v1.GET("/channels/:channelId/videos", h.Video.ChannelVideos)

	// Views accept anonymous sessions; a valid token adds the history entry.
	v1.POST("/videos/:videoId/view", middleware.OptionalAuth(secretKey), h.Video.RegisterView)

	authed := v1.Group("")
	authed.Use(middleware.Auth(secretKey))
	{
		authed.GET("/me", h.Auth.Me)

		authed.POST("/videos", h.Video.Create)
		authed.PATCH("/videos/:videoId", h.Video.Update)
		authed.DELETE("/videos/:videoId", h.Video.Delete)
		authed.PUT("/videos/:videoId/vote", h.Video.Vote)
		authed.POST("/videos/:videoId/comments", h.Comment.Post)
		authed.POST("/videos/upload", h.Studio.Upload)

		mountEngagement(authed.Group("/me/history"), h.Engagement, model.KindHistory)
		mountEngagement(authed.Group("/me/liked"), h.Engagement, model.KindLikedVideos)
		mountEngagement(authed.Group("/me/watchlater"), h.Engagement, model.KindWatchLater)
		authed.GET("/me/subscriptions", h.Engagement.ListSubscriptions)

		authed.PUT("/channels/:channelId/subscription", h.Engagement.Subscribe)
		authed.DELETE("/channels/:channelId/subscription", h.Engagement.Unsubscribe)
		authed.GET("/channels/:channelId/subscription", h.Engagement.SubscriptionStatus)

		studio := authed.Group("/studio")
		{
			studio.GET("/content", h.Studio.Content)
			studio.GET("/monetization", h.Studio.Monetization)
			studio.PUT("/channel", h.Studio.Customize)
		}
	}

	return router
}

func mountEngagement(g *gin.RouterGroup, h httpHandler.IEngagementHandler, kind model.EngagementKind) {
	g.GET("", h.List(kind))
	g.POST("", h.Record(kind))
	g.DELETE("/:videoId", h.Remove(kind))
	g.DELETE("", h.Clear(kind))
}
