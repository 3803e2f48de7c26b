package platform

import (
	"fmt"

	"call-audio-control/internal/routing/platform/android"
	"call-audio-control/internal/routing/platform/ios"
)

const (
	NameAndroid = "android"
	NameIOS     = "ios"
)

// New returns the adapter registered under name, backed by an in-process
// audio subsystem. Hosts with a native binding construct adapters directly.
func New(name string) (Adapter, error) {
	switch name {
	case NameAndroid:
		return android.New(android.NewMemoryAudioManager()), nil
	case NameIOS:
		return ios.New(ios.NewMemorySession()), nil
	default:
		return nil, fmt.Errorf("unknown audio platform %q", name)
	}
}
