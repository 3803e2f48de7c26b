package android

import (
	"context"
	"fmt"

	"call-audio-control/internal/routing"
)

const Name = "android"

// Adapter translates decisions into audio manager mode + speakerphone calls.
type Adapter struct {
	am AudioManager
}

func New(am AudioManager) *Adapter {
	return &Adapter{am: am}
}

func (a *Adapter) Name() string { return Name }

// Apply sets the communication mode first, then the speakerphone flag.
func (a *Adapter) Apply(ctx context.Context, d routing.Decision) error {
	mode := ModeFor(d.Category)
	if err := a.am.SetMode(mode); err != nil {
		return fmt.Errorf("set mode %d: %w", mode, err)
	}
	if err := a.am.SetSpeakerphoneOn(d.SpeakerphoneEnabled); err != nil {
		return fmt.Errorf("set speakerphone %v: %w", d.SpeakerphoneEnabled, err)
	}
	return nil
}

// SpeakerphoneOn reads the audio manager's own flag.
func (a *Adapter) SpeakerphoneOn(ctx context.Context) (bool, error) {
	return a.am.IsSpeakerphoneOn(), nil
}

// ModeFor maps a category to an audio manager mode. Bluetooth shares the
// communication mode with speaker; the speakerphone flag tells them apart.
func ModeFor(c routing.Category) int {
	switch c {
	case routing.CategoryVoiceChatSpeaker, routing.CategoryVoiceChatBluetooth:
		return ModeInCommunication
	case routing.CategoryVoiceChatEarpiece:
		return ModeInCall
	default:
		return ModeNormal
	}
}
