package channel

import (
	"context"
	"errors"

	"call-audio-control/internal/channel"
	"call-audio-control/internal/routing"
	"call-audio-control/pkg/log"
)

const (
	Name = "mimu.audio"

	MethodSetSpeakerphoneOn = "setSpeakerphoneOn"
	MethodIsSpeakerphoneOn  = "isSpeakerphoneOn"
	MethodSetAudioMode      = "setAudioMode"

	CodeAudioError = "AUDIO_ERROR"
)

type handler struct {
	l  log.Logger
	uc routing.UseCase
}

// New creates the method-channel handler for the audio commands.
func New(l log.Logger, uc routing.UseCase) channel.Handler {
	return &handler{l: l, uc: uc}
}

func (h *handler) HandleMethodCall(ctx context.Context, call channel.MethodCall) channel.Response {
	switch call.Method {
	case MethodSetSpeakerphoneOn:
		on, ok := call.Bool("on")
		if !ok {
			return invalidArgs()
		}
		if err := h.uc.SetSpeakerphoneOn(ctx, on); err != nil {
			return h.failure(ctx, call.Method, err)
		}
		return channel.Success(true)

	case MethodIsSpeakerphoneOn:
		st, err := h.uc.IsSpeakerphoneOn(ctx)
		if err != nil {
			return h.failure(ctx, call.Method, err)
		}
		return channel.Success(st.On)

	case MethodSetAudioMode:
		mode, ok := call.String("mode")
		if !ok {
			return invalidArgs()
		}
		if _, err := h.uc.SetAudioMode(ctx, mode); err != nil {
			return h.failure(ctx, call.Method, err)
		}
		return channel.Success(true)

	default:
		return channel.NotImplemented()
	}
}

func invalidArgs() channel.Response {
	return channel.Failure(channel.CodeInvalidArgs, "Invalid arguments", nil)
}

func (h *handler) failure(ctx context.Context, method string, err error) channel.Response {
	h.l.Warnf(ctx, "routing.delivery.channel.%s: %v", method, err)
	if errors.Is(err, routing.ErrInvalidArgument) {
		return invalidArgs()
	}
	return channel.Failure(CodeAudioError, err.Error(), nil)
}
