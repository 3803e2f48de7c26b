package http

import (
	"github.com/gin-gonic/gin"

	"call-audio-control/pkg/response"
)

// SetSpeakerphone godoc
// @Summary     Turn the speakerphone on or off
// @Description On routes the call to the speaker, off routes it to the earpiece.
// @Tags        Audio
// @Accept      json
// @Produce     json
// @Param       body body speakerphoneReq true "Speakerphone flag"
// @Success     200  {object} successResp
// @Failure     400  {object} response.Resp "Invalid arguments"
// @Failure     500  {object} response.Resp "Audio error"
// @Router      /api/v1/audio/speakerphone [PUT]
func (h *handler) SetSpeakerphone(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processSpeakerphoneReq(c)
	if err != nil {
		h.l.Warnf(ctx, "routing.http.SetSpeakerphone: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	if err := h.uc.SetSpeakerphoneOn(ctx, *req.On); err != nil {
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, successResp{Success: true})
}

// GetSpeakerphone godoc
// @Summary     Speakerphone state
// @Description Reports whether the speakerphone is on and where the answer came from.
// @Tags        Audio
// @Produce     json
// @Success     200 {object} speakerphoneResp
// @Failure     500 {object} response.Resp "Audio error"
// @Router      /api/v1/audio/speakerphone [GET]
func (h *handler) GetSpeakerphone(c *gin.Context) {
	ctx := c.Request.Context()

	st, err := h.uc.IsSpeakerphoneOn(ctx)
	if err != nil {
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newSpeakerphoneResp(st))
}

// SetMode godoc
// @Summary     Set the audio mode
// @Description Applies speaker, earpiece, bluetooth or normal. Unknown modes are treated as normal.
// @Tags        Audio
// @Accept      json
// @Produce     json
// @Param       body body modeReq true "Audio mode"
// @Success     200  {object} modeResp
// @Failure     400  {object} response.Resp "Invalid arguments"
// @Failure     500  {object} response.Resp "Audio error"
// @Router      /api/v1/audio/mode [PUT]
func (h *handler) SetMode(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processModeReq(c)
	if err != nil {
		h.l.Warnf(ctx, "routing.http.SetMode: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	d, err := h.uc.SetAudioMode(ctx, *req.Mode)
	if err != nil {
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, modeResp{Success: true, Decision: newDecisionResp(d)})
}

// State godoc
// @Summary     Current routing decision
// @Tags        Audio
// @Produce     json
// @Success     200 {object} stateResp
// @Router      /api/v1/audio/state [GET]
func (h *handler) State(c *gin.Context) {
	response.OK(c, stateResp{Decision: newDecisionResp(h.uc.State(c.Request.Context()))})
}
