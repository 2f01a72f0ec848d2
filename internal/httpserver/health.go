package httpserver

import (
	"github.com/gin-gonic/gin"

	"voice-task-uploader/pkg/response"
)

// Health response constants (single source for version and service identity).
const (
	HealthMessage = "From Voice Task Uploader With Love"
	HealthVersion = "1.0.0"
	ServiceName   = "voice-task-uploader"
)

// healthCheck handles health check requests
// @Summary Health Check
// @Description Check if the API is healthy
// @Tags Health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "API is healthy"
// @Router /health [get]
func (srv HTTPServer) healthCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "healthy",
		"message": HealthMessage,
		"version": HealthVersion,
		"service": ServiceName,
	})
}

// readyCheck handles readiness check — returns ready if server is up.
// @Summary Readiness Check
// @Description Check if the API is ready to serve traffic
// @Tags Health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "API is ready"
// @Router /ready [get]
func (srv HTTPServer) readyCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "ready",
		"message": HealthMessage,
		"version": HealthVersion,
		"service": ServiceName,
	})
}

// liveCheck handles liveness check — returns alive if process is running.
// @Summary Liveness Check
// @Description Check if the API process is alive
// @Tags Health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "API is alive"
// @Router /live [get]
func (srv HTTPServer) liveCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "alive",
		"message": HealthMessage,
		"version": HealthVersion,
		"service": ServiceName,
	})
}
