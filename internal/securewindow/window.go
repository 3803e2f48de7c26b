package securewindow

import "sync"

// MemoryWindow holds the secure flag in process.
type MemoryWindow struct {
	mu     sync.Mutex
	secure bool
}

func NewMemoryWindow() *MemoryWindow {
	return &MemoryWindow{}
}

func (w *MemoryWindow) SetSecure(secure bool) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.secure = secure
	return nil
}

func (w *MemoryWindow) IsSecure() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.secure
}
