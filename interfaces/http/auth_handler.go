package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"youtube-lite/domain/dto"
	"youtube-lite/usecase"
)

type IAuthHandler interface {
	GetAuthURL(c *gin.Context)
	HandleCallback(c *gin.Context)
	Me(c *gin.Context)
}

type AuthHandler struct {
	authUsecase usecase.IAuthUsecase
}

func NewAuthHandler(authUsecase usecase.IAuthUsecase) IAuthHandler {
	return &AuthHandler{authUsecase: authUsecase}
}

// GetAuthURL sends the client to the provider's consent page.
func (h *AuthHandler) GetAuthURL(c *gin.Context) {
	state := c.Query("state")
	if state == "" {
		state = "state"
	}
	url, err := h.authUsecase.AuthCodeURL(state)
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, dto.Res{ResponseCode: dto.CodeConfigError, ResponseMessage: err.Error()})
		return
	}
	c.Redirect(http.StatusTemporaryRedirect, url)
}

// HandleCallback exchanges the provider code and returns the session token
// plus the (upserted) profile.
func (h *AuthHandler) HandleCallback(c *gin.Context) {
	code := c.Query("code")
	if code == "" {
		c.JSON(http.StatusBadRequest, dto.Res{ResponseCode: dto.CodeBadRequest, ResponseMessage: "missing authorization code"})
		return
	}
	token, profile, err := h.authUsecase.Login(c.Request.Context(), code)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, gin.H{"token": token, "user": profile})
}

func (h *AuthHandler) Me(c *gin.Context) {
	profile, err := h.authUsecase.GetProfile(c.Request.Context(), userID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, profile)
}
