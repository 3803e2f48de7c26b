package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	"call-audio-control/internal/channel"
	"call-audio-control/internal/middleware"
	"call-audio-control/internal/routing"
	"call-audio-control/internal/securewindow"
	"call-audio-control/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string
	mw          middleware.Middleware

	// Domains
	routingUC        routing.UseCase
	secureWindowUC   securewindow.UseCase
	channels         *channel.Registry
	websocketEnabled bool
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string
	RateLimit   int

	RoutingUseCase      routing.UseCase
	SecureWindowUseCase securewindow.UseCase
	Channels            *channel.Registry
	WebsocketEnabled    bool
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:                logger,
		gin:              gin.New(),
		port:             cfg.Port,
		mode:             cfg.Mode,
		environment:      cfg.Environment,
		mw:               middleware.New(logger, cfg.RateLimit),
		routingUC:        cfg.RoutingUseCase,
		secureWindowUC:   cfg.SecureWindowUseCase,
		channels:         cfg.Channels,
		websocketEnabled: cfg.WebsocketEnabled,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.routingUC == nil {
		return errors.New("routing usecase is required")
	}
	if srv.channels == nil {
		return errors.New("channel registry is required")
	}
	return nil
}

// Handler exposes the gin engine, mainly for tests.
func (srv *HTTPServer) Handler() *gin.Engine {
	return srv.gin
}
