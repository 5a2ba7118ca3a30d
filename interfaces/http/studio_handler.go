package http

import (
	"github.com/gin-gonic/gin"

	"youtube-lite/domain/dto"
	"youtube-lite/infrastructure/logger"
	"youtube-lite/usecase"
)

type IStudioHandler interface {
	Content(c *gin.Context)
	Upload(c *gin.Context)
	Monetization(c *gin.Context)
	Customize(c *gin.Context)
	Channel(c *gin.Context)
}

type StudioHandler struct {
	studioUsecase usecase.IStudioUsecase
	authUsecase   usecase.IAuthUsecase
}

func NewStudioHandler(studioUsecase usecase.IStudioUsecase, authUsecase usecase.IAuthUsecase) IStudioHandler {
	return &StudioHandler{studioUsecase: studioUsecase, authUsecase: authUsecase}
}

func (h *StudioHandler) Content(c *gin.Context) {
	videos, err := h.studioUsecase.Content(c.Request.Context(), userID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, videos)
}

// Upload accepts a multipart publish: the "video" part is required, the
// "thumbnail" part optional, metadata travels as form fields.
func (h *StudioHandler) Upload(c *gin.Context) {
	videoHeader, err := c.FormFile("video")
	if err != nil {
		respondBadRequest(c, err)
		return
	}
	videoFile, err := videoHeader.Open()
	if err != nil {
		respondError(c, err)
		return
	}
	defer videoFile.Close()

	req := &usecase.UploadRequest{
		Title:       c.PostForm("title"),
		Description: c.PostForm("description"),
		Category:    c.PostForm("category"),
		Visibility:  c.PostForm("visibility"),
		Duration:    c.PostForm("duration"),
		Video: &usecase.MediaFile{
			Name:   videoHeader.Filename,
			Size:   videoHeader.Size,
			Reader: videoFile,
		},
	}

	if thumbHeader, err := c.FormFile("thumbnail"); err == nil {
		thumbFile, err := thumbHeader.Open()
		if err != nil {
			respondError(c, err)
			return
		}
		defer thumbFile.Close()
		req.Thumbnail = &usecase.MediaFile{
			Name:   thumbHeader.Filename,
			Size:   thumbHeader.Size,
			Reader: thumbFile,
		}
	}

	res, err := h.studioUsecase.Upload(c.Request.Context(), userID(c), c.GetString("display_name"), req, func(percent int) {
		logger.GetLogger().WithField("percent", percent).Debug("Upload progress")
	})
	if err != nil {
		respondError(c, err)
		return
	}
	respondCreated(c, res)
}

func (h *StudioHandler) Monetization(c *gin.Context) {
	res, err := h.studioUsecase.Monetization(c.Request.Context(), userID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, res)
}

func (h *StudioHandler) Customize(c *gin.Context) {
	var req dto.ChannelCustomizationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}
	profile, err := h.studioUsecase.Customize(c.Request.Context(), userID(c), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, profile)
}

// Channel is the public profile lookup; missing channels 404 explicitly.
func (h *StudioHandler) Channel(c *gin.Context) {
	profile, err := h.authUsecase.GetProfile(c.Request.Context(), c.Param("channelId"))
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, profile)
}
