package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"voice-task-uploader/internal/middleware"
)

func (srv HTTPServer) mapHandlers() error {
	srv.registerMiddlewares()
	srv.registerSystemRoutes()

	if err := srv.registerDomainRoutes(); err != nil {
		return err
	}

	return nil
}

func (srv HTTPServer) registerMiddlewares() {
	srv.gin.Use(gin.Recovery())
}

func (srv HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
}

// registerDomainRoutes registers all domain routes under /api/v1.
func (srv HTTPServer) registerDomainRoutes() error {
	ctx := context.Background()

	mw := middleware.New(srv.l, srv.sessions, srv.loginRatePerMin)
	api := srv.gin.Group("/api/v1")

	srv.setupAuthDomain(ctx, api, mw)
	srv.setupDictationDomain(ctx, api, mw)
	srv.setupTaskDomain(ctx, api, mw)

	return nil
}
