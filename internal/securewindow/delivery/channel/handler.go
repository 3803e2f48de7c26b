package channel

import (
	"context"

	"call-audio-control/internal/channel"
	"call-audio-control/internal/securewindow"
	"call-audio-control/pkg/log"
)

const (
	Name = "mimu/secure_window"

	MethodSetSecure = "setSecure"

	CodeWindowError = "WINDOW_ERROR"
)

type handler struct {
	l  log.Logger
	uc securewindow.UseCase
}

func New(l log.Logger, uc securewindow.UseCase) channel.Handler {
	return &handler{l: l, uc: uc}
}

// HandleMethodCall answers setSecure with a nil result. A missing flag clears it.
func (h *handler) HandleMethodCall(ctx context.Context, call channel.MethodCall) channel.Response {
	if call.Method != MethodSetSecure {
		return channel.NotImplemented()
	}

	secure, _ := call.Bool("secure")
	if err := h.uc.SetSecure(ctx, secure); err != nil {
		h.l.Warnf(ctx, "securewindow.delivery.channel.setSecure: %v", err)
		return channel.Failure(CodeWindowError, err.Error(), nil)
	}
	return channel.Success(nil)
}
