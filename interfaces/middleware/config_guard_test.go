package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"youtube-lite/interfaces/middleware"
)

func newGuardedRouter(missing []string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/data", middleware.ConfigGuard(missing), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	return router
}

func TestConfigGuard_BlocksWhenConfigMissing(t *testing.T) {
	router := newGuardedRouter([]string{"database.mongo.host"})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/data", nil))

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Contains(t, w.Body.String(), "CONFIG_ERROR")
	assert.Contains(t, w.Body.String(), "database.mongo.host")
}

func TestConfigGuard_PassThroughWhenComplete(t *testing.T) {
	router := newGuardedRouter(nil)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/data", nil))

	assert.Equal(t, http.StatusOK, w.Code)
}
