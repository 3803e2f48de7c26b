package usecase

import (
	"sync"

	"call-audio-control/internal/routing"
	"call-audio-control/internal/routing/platform"
	pkgLog "call-audio-control/pkg/log"
)

// Options tunes how the usecase answers state queries.
type Options struct {
	// LiveSpeakerphone answers IsSpeakerphoneOn from the platform when the
	// adapter supports it. Otherwise tracked intent is authoritative.
	LiveSpeakerphone bool
}

// implUseCase is the private implementation of routing.UseCase.
// mu serializes every command around the controller.
type implUseCase struct {
	mu      sync.Mutex
	l       pkgLog.Logger
	ctrl    *routing.Controller
	adapter platform.Adapter
	opts    Options
}

// New creates a routing UseCase driving adapter.
func New(l pkgLog.Logger, adapter platform.Adapter, opts Options) *implUseCase {
	return &implUseCase{
		l:       l,
		ctrl:    routing.NewController(),
		adapter: adapter,
		opts:    opts,
	}
}
