package http

import (
	"github.com/gin-gonic/gin"

	"youtube-lite/domain/dto"
	"youtube-lite/domain/model"
	"youtube-lite/usecase"
)

type IEngagementHandler interface {
	List(kind model.EngagementKind) gin.HandlerFunc
	Record(kind model.EngagementKind) gin.HandlerFunc
	Remove(kind model.EngagementKind) gin.HandlerFunc
	Clear(kind model.EngagementKind) gin.HandlerFunc
	Subscribe(c *gin.Context)
	Unsubscribe(c *gin.Context)
	SubscriptionStatus(c *gin.Context)
	ListSubscriptions(c *gin.Context)
}

type EngagementHandler struct {
	engagementUsecase usecase.IEngagementUsecase
}

func NewEngagementHandler(engagementUsecase usecase.IEngagementUsecase) IEngagementHandler {
	return &EngagementHandler{engagementUsecase: engagementUsecase}
}

func (h *EngagementHandler) List(kind model.EngagementKind) gin.HandlerFunc {
	return func(c *gin.Context) {
		entries, err := h.engagementUsecase.List(c.Request.Context(), kind, userID(c))
		if err != nil {
			respondError(c, err)
			return
		}
		respondOK(c, entries)
	}
}

func (h *EngagementHandler) Record(kind model.EngagementKind) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req dto.EngagementRecordRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondBadRequest(c, err)
			return
		}
		if err := h.engagementUsecase.Record(c.Request.Context(), kind, userID(c), req.VideoID); err != nil {
			respondError(c, err)
			return
		}
		respondOK(c, nil)
	}
}

func (h *EngagementHandler) Remove(kind model.EngagementKind) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := h.engagementUsecase.Remove(c.Request.Context(), kind, userID(c), c.Param("videoId")); err != nil {
			respondError(c, err)
			return
		}
		respondOK(c, nil)
	}
}

func (h *EngagementHandler) Clear(kind model.EngagementKind) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := h.engagementUsecase.ClearAll(c.Request.Context(), kind, userID(c)); err != nil {
			respondError(c, err)
			return
		}
		respondOK(c, nil)
	}
}

func (h *EngagementHandler) Subscribe(c *gin.Context) {
	if err := h.engagementUsecase.Subscribe(c.Request.Context(), userID(c), c.Param("channelId")); err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, nil)
}

func (h *EngagementHandler) Unsubscribe(c *gin.Context) {
	if err := h.engagementUsecase.Unsubscribe(c.Request.Context(), userID(c), c.Param("channelId")); err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, nil)
}

func (h *EngagementHandler) SubscriptionStatus(c *gin.Context) {
	status, err := h.engagementUsecase.SubscriptionStatus(c.Request.Context(), userID(c), c.Param("channelId"))
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, status)
}

func (h *EngagementHandler) ListSubscriptions(c *gin.Context) {
	subs, err := h.engagementUsecase.ListSubscriptions(c.Request.Context(), userID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, subs)
}
