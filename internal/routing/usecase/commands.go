package usecase

import (
	"context"
	"fmt"

	"call-audio-control/internal/routing"
	"call-audio-control/internal/routing/platform"
)

// SetSpeakerphoneOn routes to the speaker when on, otherwise to the earpiece.
func (uc *implUseCase) SetSpeakerphoneOn(ctx context.Context, on bool) error {
	intent := routing.IntentEarpiece
	if on {
		intent = routing.IntentSpeaker
	}
	_, err := uc.apply(ctx, intent)
	return err
}

// SetAudioMode normalizes mode and applies it.
func (uc *implUseCase) SetAudioMode(ctx context.Context, mode string) (routing.Decision, error) {
	intent := routing.ParseIntent(mode)
	if intent == routing.IntentNormal && mode != routing.ModeNormal {
		uc.l.Debugf(ctx, "routing.usecase.SetAudioMode: unrecognized mode %q treated as normal", mode)
	}
	return uc.apply(ctx, intent)
}

// IsSpeakerphoneOn reads the platform when live reads are enabled and supported.
func (uc *implUseCase) IsSpeakerphoneOn(ctx context.Context) (routing.SpeakerphoneState, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	if uc.opts.LiveSpeakerphone {
		if reader, ok := uc.adapter.(platform.LiveReader); ok {
			on, err := reader.SpeakerphoneOn(ctx)
			if err != nil {
				uc.l.Errorf(ctx, "routing.usecase.IsSpeakerphoneOn: %s live read: %v", uc.adapter.Name(), err)
				return routing.SpeakerphoneState{}, fmt.Errorf("%w: %w", routing.ErrPlatformRouting, err)
			}
			return routing.SpeakerphoneState{On: on, Live: true}, nil
		}
	}

	return routing.SpeakerphoneState{On: uc.ctrl.CurrentSpeakerphoneState()}, nil
}

// State returns the last applied decision.
func (uc *implUseCase) State(ctx context.Context) routing.Decision {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return uc.ctrl.State()
}

// Teardown resets tracked state and returns the platform to idle.
// A platform failure is logged, never returned.
func (uc *implUseCase) Teardown(ctx context.Context) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	uc.ctrl.Reset()
	if err := uc.adapter.Apply(ctx, routing.IdleDecision); err != nil {
		uc.l.Warnf(ctx, "routing.usecase.Teardown: %s failed to return to idle: %v", uc.adapter.Name(), err)
		return
	}
	uc.l.Infof(ctx, "routing.usecase.Teardown: %s returned to idle", uc.adapter.Name())
}

// apply records the decision before the platform call. A platform failure
// does not roll the tracked state back.
func (uc *implUseCase) apply(ctx context.Context, intent routing.Intent) (routing.Decision, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	d := uc.ctrl.ApplyIntent(intent)
	if err := uc.adapter.Apply(ctx, d); err != nil {
		uc.l.Errorf(ctx, "routing.usecase.apply: %s rejected %s: %v", uc.adapter.Name(), d.Category, err)
		return d, fmt.Errorf("%w: %w", routing.ErrPlatformRouting, err)
	}

	uc.l.Infof(ctx, "routing.usecase.apply: intent=%s category=%s speakerphone=%v options=%v",
		intent, d.Category, d.SpeakerphoneEnabled, d.Options.Strings())
	return d, nil
}
