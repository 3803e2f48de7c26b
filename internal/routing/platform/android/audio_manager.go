package android

import "sync"

// Audio modes, numbered as android.media.AudioManager numbers them.
const (
	ModeNormal          = 0
	ModeInCall          = 2
	ModeInCommunication = 3
)

// AudioManager is the slice of the native audio manager the adapter drives.
type AudioManager interface {
	SetMode(mode int) error
	Mode() int
	SetSpeakerphoneOn(on bool) error
	IsSpeakerphoneOn() bool
}

// MemoryAudioManager keeps the audio manager state in process.
type MemoryAudioManager struct {
	mu      sync.Mutex
	mode    int
	speaker bool
}

func NewMemoryAudioManager() *MemoryAudioManager {
	return &MemoryAudioManager{mode: ModeNormal}
}

func (m *MemoryAudioManager) SetMode(mode int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.mode = mode
	return nil
}

func (m *MemoryAudioManager) Mode() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.mode
}

func (m *MemoryAudioManager) SetSpeakerphoneOn(on bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.speaker = on
	return nil
}

func (m *MemoryAudioManager) IsSpeakerphoneOn() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.speaker
}
