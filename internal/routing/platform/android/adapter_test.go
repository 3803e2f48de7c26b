package android_test

import (
	"context"
	"errors"
	"testing"

	"call-audio-control/internal/routing"
	"call-audio-control/internal/routing/platform/android"
)

type failingAudioManager struct {
	*android.MemoryAudioManager
	modeErr    error
	speakerErr error
}

func (f *failingAudioManager) SetMode(mode int) error {
	if f.modeErr != nil {
		return f.modeErr
	}
	return f.MemoryAudioManager.SetMode(mode)
}

func (f *failingAudioManager) SetSpeakerphoneOn(on bool) error {
	if f.speakerErr != nil {
		return f.speakerErr
	}
	return f.MemoryAudioManager.SetSpeakerphoneOn(on)
}

func TestApply(t *testing.T) {
	tests := []struct {
		intent      routing.Intent
		wantMode    int
		wantSpeaker bool
	}{
		{routing.IntentSpeaker, android.ModeInCommunication, true},
		{routing.IntentEarpiece, android.ModeInCall, false},
		{routing.IntentBluetooth, android.ModeInCommunication, false},
		{routing.IntentNormal, android.ModeNormal, false},
	}

	for _, tt := range tests {
		t.Run(tt.intent.String(), func(t *testing.T) {
			am := android.NewMemoryAudioManager()
			a := android.New(am)

			if err := a.Apply(context.Background(), routing.Decide(tt.intent)); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if am.Mode() != tt.wantMode {
				t.Errorf("expected mode %d, got %d", tt.wantMode, am.Mode())
			}
			on, _ := a.SpeakerphoneOn(context.Background())
			if on != tt.wantSpeaker {
				t.Errorf("expected speakerphone %v, got %v", tt.wantSpeaker, on)
			}
		})
	}
}

func TestApplyErrors(t *testing.T) {
	denied := errors.New("permission denied")

	t.Run("Mode Rejected", func(t *testing.T) {
		am := &failingAudioManager{MemoryAudioManager: android.NewMemoryAudioManager(), modeErr: denied}
		err := android.New(am).Apply(context.Background(), routing.Decide(routing.IntentSpeaker))
		if !errors.Is(err, denied) {
			t.Errorf("expected wrapped permission error, got %v", err)
		}
		if am.IsSpeakerphoneOn() {
			t.Error("speakerphone must not be touched after mode failure")
		}
	})

	t.Run("Speakerphone Rejected", func(t *testing.T) {
		am := &failingAudioManager{MemoryAudioManager: android.NewMemoryAudioManager(), speakerErr: denied}
		err := android.New(am).Apply(context.Background(), routing.Decide(routing.IntentSpeaker))
		if !errors.Is(err, denied) {
			t.Errorf("expected wrapped permission error, got %v", err)
		}
	})
}
