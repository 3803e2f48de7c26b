package routing_test

import (
	"testing"

	"call-audio-control/internal/routing"
)

func TestApplyIntentMapping(t *testing.T) {
	tests := []struct {
		name   string
		intent routing.Intent
		want   routing.Decision
	}{
		{
			name:   "speaker",
			intent: routing.IntentSpeaker,
			want: routing.Decision{
				Category:            routing.CategoryVoiceChatSpeaker,
				SpeakerphoneEnabled: true,
				Options:             routing.OptionDefaultToSpeaker,
			},
		},
		{
			name:   "earpiece",
			intent: routing.IntentEarpiece,
			want:   routing.Decision{Category: routing.CategoryVoiceChatEarpiece},
		},
		{
			name:   "bluetooth",
			intent: routing.IntentBluetooth,
			want: routing.Decision{
				Category: routing.CategoryVoiceChatBluetooth,
				Options:  routing.OptionAllowBluetooth,
			},
		},
		{
			name:   "normal",
			intent: routing.IntentNormal,
			want:   routing.Decision{Category: routing.CategoryIdle},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := routing.NewController()
			got := c.ApplyIntent(tt.intent)
			if got != tt.want {
				t.Errorf("ApplyIntent(%s) = %+v, want %+v", tt.intent, got, tt.want)
			}
			if c.State() != tt.want {
				t.Errorf("state = %+v, want %+v", c.State(), tt.want)
			}
		})
	}
}

func TestDecisionInvariants(t *testing.T) {
	for _, intent := range []routing.Intent{
		routing.IntentSpeaker, routing.IntentEarpiece, routing.IntentBluetooth, routing.IntentNormal,
	} {
		d := routing.Decide(intent)
		isSpeaker := d.Category == routing.CategoryVoiceChatSpeaker
		if d.SpeakerphoneEnabled != isSpeaker {
			t.Errorf("%s: speakerphone %v with category %s", intent, d.SpeakerphoneEnabled, d.Category)
		}
		if d.Options.Has(routing.OptionDefaultToSpeaker) != isSpeaker {
			t.Errorf("%s: DefaultToSpeaker mismatch", intent)
		}
		if d.Options.Has(routing.OptionAllowBluetooth) != (d.Category == routing.CategoryVoiceChatBluetooth) {
			t.Errorf("%s: AllowBluetooth mismatch", intent)
		}
	}
}

func TestApplyIntentIdempotent(t *testing.T) {
	c := routing.NewController()
	first := c.ApplyIntent(routing.IntentSpeaker)
	second := c.ApplyIntent(routing.IntentSpeaker)
	if first != second {
		t.Errorf("expected identical decisions, got %+v and %+v", first, second)
	}
	if c.State().Category != routing.CategoryVoiceChatSpeaker {
		t.Errorf("expected VoiceChatSpeaker, got %s", c.State().Category)
	}
}

func TestLastWriteWins(t *testing.T) {
	c := routing.NewController()
	c.ApplyIntent(routing.IntentSpeaker)
	c.ApplyIntent(routing.IntentBluetooth)
	c.ApplyIntent(routing.IntentNormal)
	c.ApplyIntent(routing.IntentEarpiece)

	if c.State().Category != routing.CategoryVoiceChatEarpiece {
		t.Errorf("expected VoiceChatEarpiece, got %s", c.State().Category)
	}
}

func TestCurrentSpeakerphoneState(t *testing.T) {
	c := routing.NewController()
	if c.CurrentSpeakerphoneState() {
		t.Error("expected false before any intent")
	}

	c.ApplyIntent(routing.IntentSpeaker)
	if !c.CurrentSpeakerphoneState() {
		t.Error("expected true after Speaker")
	}

	c.ApplyIntent(routing.IntentEarpiece)
	if c.CurrentSpeakerphoneState() {
		t.Error("expected false after Earpiece")
	}

	c.ApplyIntent(routing.IntentSpeaker)
	c.ApplyIntent(routing.IntentNormal)
	if c.CurrentSpeakerphoneState() {
		t.Error("expected false after Normal")
	}
}

func TestReset(t *testing.T) {
	for _, intent := range []routing.Intent{
		routing.IntentSpeaker, routing.IntentEarpiece, routing.IntentBluetooth, routing.IntentNormal,
	} {
		c := routing.NewController()
		c.ApplyIntent(intent)
		c.Reset()
		if c.State() != routing.IdleDecision || c.CurrentSpeakerphoneState() {
			t.Errorf("reset after %s left state %+v", intent, c.State())
		}
	}
}

func TestDecideOutOfRange(t *testing.T) {
	if got := routing.Decide(routing.Intent(42)); got != routing.IdleDecision {
		t.Errorf("expected idle decision, got %+v", got)
	}
}
