package http

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"call-audio-control/internal/routing"
)

// processSpeakerphoneReq binds the speakerphone body. A missing or non-boolean on is invalid.
func (h *handler) processSpeakerphoneReq(c *gin.Context) (speakerphoneReq, error) {
	var req speakerphoneReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, fmt.Errorf("%w: %v", routing.ErrInvalidArgument, err)
	}
	return req, nil
}

// processModeReq binds the mode body. The mode string itself is not validated here.
func (h *handler) processModeReq(c *gin.Context) (modeReq, error) {
	var req modeReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, fmt.Errorf("%w: %v", routing.ErrInvalidArgument, err)
	}
	return req, nil
}
