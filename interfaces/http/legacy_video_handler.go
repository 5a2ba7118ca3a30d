package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"youtube-lite/usecase"
)

// LegacyVideoHandler serves the old API surface with its original response
// shapes (bare arrays/objects, legacy field names, a bare 404 body for an
// unknown id). It never returns a 5xx; the usecase degrades to the mock
// catalog instead.
type ILegacyVideoHandler interface {
	List(c *gin.Context)
	Get(c *gin.Context)
	Search(c *gin.Context)
}

type LegacyVideoHandler struct {
	legacyUsecase usecase.ILegacyUsecase
}

func NewLegacyVideoHandler(legacyUsecase usecase.ILegacyUsecase) ILegacyVideoHandler {
	return &LegacyVideoHandler{legacyUsecase: legacyUsecase}
}

func (h *LegacyVideoHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, h.legacyUsecase.List(c.Request.Context()))
}

func (h *LegacyVideoHandler) Get(c *gin.Context) {
	video := h.legacyUsecase.Get(c.Request.Context(), c.Param("id"))
	if video == nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Video not found"})
		return
	}
	c.JSON(http.StatusOK, video)
}

func (h *LegacyVideoHandler) Search(c *gin.Context) {
	c.JSON(http.StatusOK, h.legacyUsecase.Search(c.Request.Context(), c.Query("q")))
}
