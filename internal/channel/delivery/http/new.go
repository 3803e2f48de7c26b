package http

import (
	"net/http"

	"github.com/gorilla/websocket"

	"call-audio-control/internal/channel"
	"call-audio-control/internal/middleware"
	"call-audio-control/pkg/log"
)

type handler struct {
	l        log.Logger
	registry *channel.Registry
	mw       middleware.Middleware
	upgrader websocket.Upgrader
}

// New creates the HTTP and websocket transport for the channel registry.
// Websocket frames draw from the same per-client budget as mw.RateLimit.
func New(l log.Logger, registry *channel.Registry, mw middleware.Middleware) *handler {
	return &handler{
		l:        l,
		registry: registry,
		mw:       mw,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// The host UI bridge connects from a local webview origin.
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}
