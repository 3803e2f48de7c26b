package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"call-audio-control/internal/channel"
	pkgErrors "call-audio-control/pkg/errors"
	"call-audio-control/pkg/response"
)

// List godoc
// @Summary     Registered channels
// @Tags        Channel
// @Produce     json
// @Success     200 {object} listResp
// @Router      /channels [GET]
func (h *handler) List(c *gin.Context) {
	response.OK(c, listResp{Channels: h.registry.Names()})
}

// Invoke godoc
// @Summary     Invoke a channel method
// @Description Delivers a method call to the named channel and returns its result, error or not-implemented marker.
// @Tags        Channel
// @Accept      json
// @Produce     json
// @Param       name path string             true "Channel name"
// @Param       body body channel.MethodCall true "Method call"
// @Success     200  {object} channel.Response
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     404  {object} response.Resp "Channel not found"
// @Router      /channels/{name} [POST]
func (h *handler) Invoke(c *gin.Context) {
	ctx := c.Request.Context()

	var call channel.MethodCall
	if err := c.ShouldBindJSON(&call); err != nil {
		response.Error(c, err, nil)
		return
	}

	resp, err := h.registry.Invoke(ctx, c.Param("name"), call)
	if err != nil {
		if errors.Is(err, channel.ErrChannelNotFound) {
			response.Error(c, pkgErrors.NewHTTPError(http.StatusNotFound, err.Error()), nil)
			return
		}
		h.l.Errorf(ctx, "channel.http.Invoke: %v", err)
		response.InternalError(c, err)
		return
	}

	response.OK(c, resp)
}

// Stream upgrades to a websocket and answers method-call frames until the
// client disconnects. Frames are handled in arrival order; a frame over the
// client's rate budget is answered with RATE_LIMITED and not dispatched.
func (h *handler) Stream(c *gin.Context) {
	ctx := c.Request.Context()

	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.l.Warnf(ctx, "channel.http.Stream: upgrade: %v", err)
		return
	}
	defer conn.Close()

	connID := uuid.NewString()
	clientIP := c.ClientIP()
	h.l.Infof(ctx, "channel.http.Stream: connection %s opened", connID)

	for {
		var req streamReq
		if err := conn.ReadJSON(&req); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				h.l.Warnf(ctx, "channel.http.Stream: connection %s: %v", connID, err)
			}
			break
		}

		var resp channel.Response
		if err := h.mw.Allow(clientIP); err != nil {
			h.l.Warnf(ctx, "channel.http.Stream: connection %s: %v", connID, err)
			resp = channel.Failure(codeRateLimited, err.Error(), nil)
		} else if resp, err = h.registry.Invoke(ctx, req.Channel, req.toCall()); err != nil {
			resp = channel.Failure(codeChannelNotFound, err.Error(), nil)
		}

		if err := conn.WriteJSON(streamResp{ID: req.ID, Response: resp}); err != nil {
			h.l.Warnf(ctx, "channel.http.Stream: connection %s write: %v", connID, err)
			break
		}
	}

	h.l.Infof(ctx, "channel.http.Stream: connection %s closed", connID)
}
