package http

import (
	"github.com/gin-gonic/gin"

	"youtube-lite/domain/dto"
	"youtube-lite/usecase"
)

type ICommentHandler interface {
	Post(c *gin.Context)
	List(c *gin.Context)
	Stream(c *gin.Context)
}

type CommentHandler struct {
	commentUsecase usecase.ICommentUsecase
	serveStream    func(c *gin.Context, videoID string)
}

// NewCommentHandler wires the usecase plus the SSE serve function provided by
// the realtime hub.
func NewCommentHandler(commentUsecase usecase.ICommentUsecase, serveStream func(c *gin.Context, videoID string)) ICommentHandler {
	return &CommentHandler{commentUsecase: commentUsecase, serveStream: serveStream}
}

func (h *CommentHandler) Post(c *gin.Context) {
	var req dto.CommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}
	comments, err := h.commentUsecase.Post(
		c.Request.Context(),
		userID(c),
		c.GetString("display_name"),
		c.GetString("photo_url"),
		c.Param("videoId"),
		req.Text,
	)
	if err != nil {
		respondError(c, err)
		return
	}
	respondCreated(c, comments)
}

func (h *CommentHandler) List(c *gin.Context) {
	comments, err := h.commentUsecase.List(c.Request.Context(), c.Param("videoId"))
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, comments)
}

// Stream hands the connection to the SSE hub; the subscription lives until
// the request context is done.
func (h *CommentHandler) Stream(c *gin.Context) {
	h.serveStream(c, c.Param("videoId"))
}
