package routing

// decisions is the routing policy shared by every platform adapter.
var decisions = map[Intent]Decision{
	IntentSpeaker: {
		Category:            CategoryVoiceChatSpeaker,
		SpeakerphoneEnabled: true,
		Options:             OptionDefaultToSpeaker,
	},
	IntentEarpiece: {
		Category: CategoryVoiceChatEarpiece,
	},
	IntentBluetooth: {
		Category: CategoryVoiceChatBluetooth,
		Options:  OptionAllowBluetooth,
	},
	IntentNormal: IdleDecision,
}

// Decide maps an intent to its decision without touching any state.
// Out-of-range intents are treated as Normal.
func Decide(intent Intent) Decision {
	if d, ok := decisions[intent]; ok {
		return d
	}
	return IdleDecision
}

// Controller tracks the last applied decision.
// It is not safe for concurrent use; callers serialize access.
type Controller struct {
	state Decision
}

// NewController returns a Controller in the idle state.
func NewController() *Controller {
	return &Controller{state: IdleDecision}
}

// ApplyIntent records and returns the decision for intent. Last write wins.
func (c *Controller) ApplyIntent(intent Intent) Decision {
	d := Decide(intent)
	c.state = d
	return d
}

// CurrentSpeakerphoneState reports the tracked speakerphone flag.
// It never consults hardware.
func (c *Controller) CurrentSpeakerphoneState() bool {
	return c.state.SpeakerphoneEnabled
}

// State returns the last applied decision.
func (c *Controller) State() Decision {
	return c.state
}

// Reset puts the controller back to idle.
func (c *Controller) Reset() {
	c.state = IdleDecision
}
