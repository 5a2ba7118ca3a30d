package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"youtube-lite/domain/dto"
	"youtube-lite/domain/repository"
	"youtube-lite/infrastructure/logger"
	"youtube-lite/usecase"
)

func respondOK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, dto.Res{ResponseCode: dto.CodeOK, ResponseMessage: "Success", Data: data})
}

func respondCreated(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, dto.Res{ResponseCode: dto.CodeOK, ResponseMessage: "Created", Data: data})
}

func respondBadRequest(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, dto.Res{ResponseCode: dto.CodeBadRequest, ResponseMessage: err.Error()})
}

// respondError maps usecase errors onto the response taxonomy. NOT_FOUND is
// always rendered explicitly, never as an empty 200.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		c.JSON(http.StatusNotFound, dto.Res{ResponseCode: dto.CodeNotFound, ResponseMessage: "NOT_FOUND"})
	case errors.Is(err, usecase.ErrForbidden):
		c.JSON(http.StatusForbidden, dto.Res{ResponseCode: dto.CodeForbidden, ResponseMessage: "Forbidden"})
	case errors.Is(err, usecase.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, dto.Res{ResponseCode: dto.CodeBadRequest, ResponseMessage: err.Error()})
	case errors.Is(err, usecase.ErrIdentityUnavailable):
		c.JSON(http.StatusServiceUnavailable, dto.Res{ResponseCode: dto.CodeConfigError, ResponseMessage: err.Error()})
	default:
		logger.GetLogger().WithField("error", err).WithField("path", c.FullPath()).Error("Request failed")
		c.JSON(http.StatusInternalServerError, dto.Res{ResponseCode: dto.CodeServerError, ResponseMessage: "Internal server error"})
	}
}

func userID(c *gin.Context) string {
	return c.GetString("user_id")
}
