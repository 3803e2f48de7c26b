package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	channelHTTP "call-audio-control/internal/channel/delivery/http"
	routingHTTP "call-audio-control/internal/routing/delivery/http"
	windowHTTP "call-audio-control/internal/securewindow/delivery/http"
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
	srv.gin.Use(srv.mw.RequestID())
	if srv.mode != gin.ReleaseMode {
		srv.gin.Use(gin.Logger())
	}

	srv.l.Infof(context.Background(), "httpserver.registerMiddlewares: gin mode %s, environment %s", srv.mode, srv.environment)
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
//
// Pattern to follow when adding a new domain:
//  1. Create UseCase:      uc := mydomainUC.New(l, ...)
//  2. Create HTTP Handler: h := mydomainHTTP.New(srv.l, uc)
//  3. Register Routes:     mydomainHTTP.RegisterRoutes(api, h, srv.mw)
func (srv HTTPServer) registerDomainRoutes() error {
	ctx := context.Background()
	api := srv.gin.Group("/api/v1")

	routingHTTP.RegisterRoutes(api, routingHTTP.New(srv.l, srv.routingUC), srv.mw)
	srv.l.Infof(ctx, "Audio routing routes registered at /api/v1/audio")

	if srv.secureWindowUC != nil {
		windowHTTP.RegisterRoutes(api, windowHTTP.New(srv.l, srv.secureWindowUC), srv.mw)
		srv.l.Infof(ctx, "Secure window routes registered at /api/v1/window")
	} else {
		srv.l.Infof(ctx, "Secure window not configured, skipping window routes")
	}

	channelHTTP.RegisterRoutes(srv.gin.Group("/channels"), channelHTTP.New(srv.l, srv.channels, srv.mw), srv.mw, srv.websocketEnabled)
	srv.l.Infof(ctx, "Method channels registered: %v (websocket=%v)", srv.channels.Names(), srv.websocketEnabled)

	return nil
}
