package ios

import (
	"context"
	"fmt"
	"slices"

	"call-audio-control/internal/routing"
)

const Name = "ios"

// Adapter translates decisions into session category + activation calls.
type Adapter struct {
	session AudioSession
}

func New(session AudioSession) *Adapter {
	return &Adapter{session: session}
}

func (a *Adapter) Name() string { return Name }

// Apply sets the category and activates the session. Idle switches to the
// ambient category and deactivates.
func (a *Adapter) Apply(ctx context.Context, d routing.Decision) error {
	if d.Category == routing.CategoryIdle {
		if err := a.session.SetCategory(CategorySoloAmbient, ModeDefault, 0); err != nil {
			return fmt.Errorf("set category: %w", err)
		}
		if err := a.session.SetActive(false); err != nil {
			return fmt.Errorf("deactivate session: %w", err)
		}
		return nil
	}

	if err := a.session.SetCategory(CategoryPlayAndRecord, ModeVoiceChat, OptionsFor(d.Options)); err != nil {
		return fmt.Errorf("set category: %w", err)
	}
	if err := a.session.SetActive(true); err != nil {
		return fmt.Errorf("activate session: %w", err)
	}
	return nil
}

// SpeakerphoneOn inspects the active route for the built-in speaker.
func (a *Adapter) SpeakerphoneOn(ctx context.Context) (bool, error) {
	return slices.Contains(a.session.CurrentOutputs(), PortBuiltInSpeaker), nil
}

func OptionsFor(o routing.Option) CategoryOptions {
	var out CategoryOptions
	if o.Has(routing.OptionDefaultToSpeaker) {
		out |= OptionDefaultToSpeaker
	}
	if o.Has(routing.OptionAllowBluetooth) {
		out |= OptionAllowBluetooth
	}
	return out
}
