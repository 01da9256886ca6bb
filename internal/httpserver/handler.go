package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	credentialHTTP "notion-gcal-sync/internal/credential/delivery/http"
	"notion-gcal-sync/internal/middleware"
	"notion-gcal-sync/internal/model"
	syncHTTP "notion-gcal-sync/internal/sync/delivery/http"
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

	ctx := context.Background()
	if srv.environment == string(model.EnvironmentProduction) {
		srv.l.Infof(ctx, "Environment: production")
	} else {
		srv.gin.Use(gin.Logger())
		srv.l.Infof(ctx, "Environment: %s (request logging on)", srv.environment)
	}
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

// registerDomainRoutes registers all domain routes.
func (srv HTTPServer) registerDomainRoutes() error {
	ctx := context.Background()
	mw := middleware.New(srv.l, srv.middleware)

	syncHTTP.RegisterRoutes(srv.gin, syncHTTP.New(srv.l, srv.syncUC, srv.runTimeout), mw)
	srv.l.Infof(ctx, "Notion webhook route registered at POST /webhook/notion")

	credentialHTTP.RegisterRoutes(srv.gin, credentialHTTP.New(srv.l, srv.credUC, srv.identity), mw)
	srv.l.Infof(ctx, "Authorization routes registered at GET /api/auth-url and GET /oauth2callback")

	return nil
}
