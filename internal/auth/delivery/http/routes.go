package http

import (
	"github.com/gin-gonic/gin"

	"voice-task-uploader/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	rg.POST("/auth/login", mw.LoginRateLimit(), h.Login)
	rg.POST("/auth/logout", mw.Auth(), h.Logout)
	rg.GET("/page", mw.Auth(), h.Page)
	rg.POST("/language", mw.Auth(), h.SetLanguage)
}
