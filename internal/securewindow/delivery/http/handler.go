package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"call-audio-control/internal/middleware"
	"call-audio-control/internal/securewindow"
	pkgErrors "call-audio-control/pkg/errors"
	"call-audio-control/pkg/log"
	"call-audio-control/pkg/response"
)

type handler struct {
	l  log.Logger
	uc securewindow.UseCase
}

func New(l log.Logger, uc securewindow.UseCase) *handler {
	return &handler{l: l, uc: uc}
}

func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	rg.PUT("/window/secure", mw.RateLimit(), h.SetSecure)
	rg.GET("/window/secure", mw.RateLimit(), h.GetSecure)
}

type secureReq struct {
	Secure *bool `json:"secure" binding:"required"`
}

type secureResp struct {
	Secure bool `json:"secure"`
}

// SetSecure godoc
// @Summary     Mark the window non-capturable
// @Tags        Window
// @Accept      json
// @Produce     json
// @Param       body body secureReq true "Secure flag"
// @Success     200  {object} secureResp
// @Failure     400  {object} response.Resp "Invalid arguments"
// @Failure     500  {object} response.Resp "Window error"
// @Router      /api/v1/window/secure [PUT]
func (h *handler) SetSecure(c *gin.Context) {
	ctx := c.Request.Context()

	var req secureReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err, nil)
		return
	}

	if err := h.uc.SetSecure(ctx, *req.Secure); err != nil {
		response.Error(c, pkgErrors.NewHTTPError(http.StatusInternalServerError, err.Error()), nil)
		return
	}

	response.OK(c, secureResp{Secure: *req.Secure})
}

// GetSecure godoc
// @Summary     Window secure flag
// @Tags        Window
// @Produce     json
// @Success     200 {object} secureResp
// @Router      /api/v1/window/secure [GET]
func (h *handler) GetSecure(c *gin.Context) {
	response.OK(c, secureResp{Secure: h.uc.IsSecure(c.Request.Context())})
}
