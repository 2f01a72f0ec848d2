package http

import (
	"github.com/gin-gonic/gin"

	"voice-task-uploader/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	rg.POST("/dictations", mw.Auth(), h.Process)
}
