package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"youtube-lite/domain/dto"
)

// ConfigGuard blocks data routes while required configuration is missing.
// Nothing data-dependent is served in this state; clients get a structured
// payload naming the missing settings and a retry hint instead of opaque
// failures downstream.
func ConfigGuard(missing []string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		if len(missing) == 0 {
			ctx.Next()
			return
		}
		ctx.AbortWithStatusJSON(http.StatusServiceUnavailable, dto.Res{
			ResponseCode:    dto.CodeConfigError,
			ResponseMessage: "CONFIG_ERROR: missing " + strings.Join(missing, ", ") + "; fix configuration and restart",
		})
	}
}
