package platform

import (
	"context"

	"call-audio-control/internal/routing"
)

// Adapter applies a routing decision to a platform audio subsystem.
type Adapter interface {
	Name() string
	// Apply performs the native calls for d. Errors describe what the platform rejected.
	Apply(ctx context.Context, d routing.Decision) error
}

// LiveReader is implemented by adapters that can read the speakerphone
// state back from the platform instead of trusting tracked intent.
type LiveReader interface {
	SpeakerphoneOn(ctx context.Context) (bool, error)
}
