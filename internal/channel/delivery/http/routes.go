package http

import (
	"call-audio-control/internal/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts the channel transports on rg. Every route is rate
// limited; the websocket additionally spends a token per frame.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware, websocketEnabled bool) {
	rg.Use(mw.RateLimit())
	rg.GET("", h.List)
	rg.POST("/:name", h.Invoke)
	if websocketEnabled {
		rg.GET("/ws", h.Stream)
	}
}
