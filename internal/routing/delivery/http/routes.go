package http

import (
	"call-audio-control/internal/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps the routing commands under rg. Every route is rate limited.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	audio := rg.Group("/audio", mw.RateLimit())
	{
		audio.PUT("/speakerphone", h.SetSpeakerphone)
		audio.GET("/speakerphone", h.GetSpeakerphone)
		audio.PUT("/mode", h.SetMode)
		audio.GET("/state", h.State)
	}
}
