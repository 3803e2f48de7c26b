package ios

import "sync"

const (
	CategoryPlayAndRecord = "playAndRecord"
	CategorySoloAmbient   = "soloAmbient"

	ModeVoiceChat = "voiceChat"
	ModeDefault   = "default"
)

// CategoryOptions mirrors the session category option bits.
type CategoryOptions uint

const (
	OptionAllowBluetooth   CategoryOptions = 0x4
	OptionDefaultToSpeaker CategoryOptions = 0x8
)

// Output port types.
const (
	PortBuiltInSpeaker  = "Speaker"
	PortBuiltInReceiver = "Receiver"
	PortBluetoothHFP    = "BluetoothHFP"
)

// AudioSession is the slice of the shared audio session the adapter drives.
type AudioSession interface {
	SetCategory(category, mode string, options CategoryOptions) error
	SetActive(active bool) error
	CurrentOutputs() []string
}

// MemorySession keeps the audio session state in process and derives the
// current route from it the way the system would.
type MemorySession struct {
	mu        sync.Mutex
	category  string
	mode      string
	options   CategoryOptions
	active    bool
	bluetooth bool
}

func NewMemorySession() *MemorySession {
	return &MemorySession{category: CategorySoloAmbient, mode: ModeDefault}
}

func (s *MemorySession) SetCategory(category, mode string, options CategoryOptions) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.category, s.mode, s.options = category, mode, options
	return nil
}

func (s *MemorySession) SetActive(active bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.active = active
	return nil
}

// SetBluetoothConnected simulates a hands-free headset appearing or going away.
func (s *MemorySession) SetBluetoothConnected(connected bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.bluetooth = connected
}

func (s *MemorySession) CurrentOutputs() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.category != CategoryPlayAndRecord {
		return []string{PortBuiltInSpeaker}
	}
	switch {
	case s.options&OptionAllowBluetooth != 0 && s.bluetooth:
		return []string{PortBluetoothHFP}
	case s.options&OptionDefaultToSpeaker != 0:
		return []string{PortBuiltInSpeaker}
	default:
		return []string{PortBuiltInReceiver}
	}
}
