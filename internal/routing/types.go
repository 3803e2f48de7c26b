package routing

// --- Intent ---

// Intent is the caller's desired audio output target.
type Intent int

const (
	IntentNormal Intent = iota
	IntentSpeaker
	IntentEarpiece
	IntentBluetooth
)

// Mode strings accepted at the command boundary.
const (
	ModeSpeaker   = "speaker"
	ModeEarpiece  = "earpiece"
	ModeBluetooth = "bluetooth"
	ModeNormal    = "normal"
)

func (i Intent) String() string {
	switch i {
	case IntentSpeaker:
		return ModeSpeaker
	case IntentEarpiece:
		return ModeEarpiece
	case IntentBluetooth:
		return ModeBluetooth
	default:
		return ModeNormal
	}
}

// ParseIntent normalizes a boundary mode string. Matching is exact; anything
// else, including other casings or padding, is Normal.
func ParseIntent(mode string) Intent {
	switch mode {
	case ModeSpeaker:
		return IntentSpeaker
	case ModeEarpiece:
		return IntentEarpiece
	case ModeBluetooth:
		return IntentBluetooth
	default:
		return IntentNormal
	}
}

// --- Decision ---

// Category is the platform-neutral audio session category.
type Category int

const (
	CategoryIdle Category = iota
	CategoryVoiceChatSpeaker
	CategoryVoiceChatEarpiece
	CategoryVoiceChatBluetooth
)

func (c Category) String() string {
	switch c {
	case CategoryVoiceChatSpeaker:
		return "voice_chat_speaker"
	case CategoryVoiceChatEarpiece:
		return "voice_chat_earpiece"
	case CategoryVoiceChatBluetooth:
		return "voice_chat_bluetooth"
	default:
		return "idle"
	}
}

// Option is a routing hint. Options combine as a bit set.
type Option uint8

const (
	OptionDefaultToSpeaker Option = 1 << iota
	OptionAllowBluetooth
)

// Has reports whether every bit of o is set.
func (s Option) Has(o Option) bool {
	return s&o == o
}

// Strings lists the set members in a stable order.
func (s Option) Strings() []string {
	out := []string{}
	if s.Has(OptionDefaultToSpeaker) {
		out = append(out, "default_to_speaker")
	}
	if s.Has(OptionAllowBluetooth) {
		out = append(out, "allow_bluetooth")
	}
	return out
}

// Decision is the normalized configuration derived from an Intent.
type Decision struct {
	Category            Category
	SpeakerphoneEnabled bool
	Options             Option
}

// IdleDecision is the state before any intent has been applied.
var IdleDecision = Decision{Category: CategoryIdle}

// --- UseCase Outputs ---

type SpeakerphoneState struct {
	On bool
	// Live is true when the value came from the platform instead of tracked state.
	Live bool
}
