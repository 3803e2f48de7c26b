package routing

import "context"

// UseCase is the command interface exposed to every transport.
type UseCase interface {
	// SetSpeakerphoneOn routes to the speaker when on, otherwise to the earpiece.
	SetSpeakerphoneOn(ctx context.Context, on bool) error
	// IsSpeakerphoneOn answers from tracked state or from the platform, per configuration.
	IsSpeakerphoneOn(ctx context.Context) (SpeakerphoneState, error)
	// SetAudioMode applies a boundary mode string. Unknown modes become normal.
	SetAudioMode(ctx context.Context, mode string) (Decision, error)
	// State returns the last applied decision.
	State(ctx context.Context) Decision
	// Teardown resets tracked state and returns the platform to idle.
	Teardown(ctx context.Context)
}
