package http

import (
	"github.com/gin-gonic/gin"

	"youtube-lite/domain/dto"
	"youtube-lite/usecase"
)

type IVideoHandler interface {
	List(c *gin.Context)
	Get(c *gin.Context)
	Search(c *gin.Context)
	ChannelVideos(c *gin.Context)
	Create(c *gin.Context)
	Update(c *gin.Context)
	Delete(c *gin.Context)
	RegisterView(c *gin.Context)
	Vote(c *gin.Context)
}

type VideoHandler struct {
	videoUsecase   usecase.IVideoUsecase
	counterUsecase usecase.ICounterUsecase
}

func NewVideoHandler(videoUsecase usecase.IVideoUsecase, counterUsecase usecase.ICounterUsecase) IVideoHandler {
	return &VideoHandler{videoUsecase: videoUsecase, counterUsecase: counterUsecase}
}

func (h *VideoHandler) List(c *gin.Context) {
	videos, err := h.videoUsecase.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, videos)
}

func (h *VideoHandler) Get(c *gin.Context) {
	video, err := h.videoUsecase.Get(c.Request.Context(), c.Param("videoId"))
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, video)
}

func (h *VideoHandler) Search(c *gin.Context) {
	var req dto.VideoSearchRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		respondBadRequest(c, err)
		return
	}
	videos, err := h.videoUsecase.Search(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, videos)
}

func (h *VideoHandler) ChannelVideos(c *gin.Context) {
	videos, err := h.videoUsecase.ListByChannel(c.Request.Context(), c.Param("channelId"))
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, videos)
}

func (h *VideoHandler) Create(c *gin.Context) {
	var req dto.VideoCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}
	id, err := h.videoUsecase.Create(c.Request.Context(), userID(c), c.GetString("display_name"), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	respondCreated(c, gin.H{"id": id})
}

func (h *VideoHandler) Update(c *gin.Context) {
	var req dto.VideoUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}
	if err := h.videoUsecase.Update(c.Request.Context(), userID(c), c.Param("videoId"), &req); err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, nil)
}

func (h *VideoHandler) Delete(c *gin.Context) {
	if err := h.videoUsecase.Delete(c.Request.Context(), userID(c), c.Param("videoId")); err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, nil)
}

// RegisterView counts a view at most once per session. The session travels in
// X-Session-Id with a cookie fallback; anonymous views are allowed.
func (h *VideoHandler) RegisterView(c *gin.Context) {
	res, err := h.counterUsecase.RegisterView(c.Request.Context(), sessionID(c), userID(c), c.Param("videoId"))
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, res)
}

func (h *VideoHandler) Vote(c *gin.Context) {
	var req dto.VoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}
	res, err := h.counterUsecase.Vote(c.Request.Context(), userID(c), c.Param("videoId"), req.Action)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, res)
}

func sessionID(c *gin.Context) string {
	if sid := c.GetHeader("X-Session-Id"); sid != "" {
		return sid
	}
	if sid, err := c.Cookie("session_id"); err == nil {
		return sid
	}
	return ""
}
