package channel

import (
	"context"
	"fmt"
	"sort"
	"sync"

	pkgLog "call-audio-control/pkg/log"
)

// Registry routes method calls to channel handlers. Invocations run one at
// a time across all channels.
type Registry struct {
	l        pkgLog.Logger
	mu       sync.RWMutex
	invokeMu sync.Mutex
	handlers map[string]Handler
}

func NewRegistry(l pkgLog.Logger) *Registry {
	return &Registry{
		l:        l,
		handlers: make(map[string]Handler),
	}
}

// Register attaches h to name.
func (r *Registry) Register(name string, h Handler) error {
	if name == "" {
		return ErrEmptyName
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.handlers[name]; ok {
		return fmt.Errorf("%w: %s", ErrChannelExists, name)
	}
	r.handlers[name] = h
	return nil
}

// Unregister detaches name. Unknown names are ignored.
func (r *Registry) Unregister(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.handlers, name)
}

// Names lists registered channels in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.handlers))
	for name := range r.handlers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Invoke delivers call to the handler registered under name.
func (r *Registry) Invoke(ctx context.Context, name string, call MethodCall) (Response, error) {
	r.mu.RLock()
	h, ok := r.handlers[name]
	r.mu.RUnlock()
	if !ok {
		return Response{}, fmt.Errorf("%w: %s", ErrChannelNotFound, name)
	}

	r.invokeMu.Lock()
	defer r.invokeMu.Unlock()

	resp := h.HandleMethodCall(ctx, call)
	switch {
	case resp.NotImplemented:
		r.l.Warnf(ctx, "channel.Invoke: %s.%s not implemented", name, call.Method)
	case resp.Error != nil:
		r.l.Warnf(ctx, "channel.Invoke: %s.%s failed: %s %s", name, call.Method, resp.Error.Code, resp.Error.Message)
	default:
		r.l.Debugf(ctx, "channel.Invoke: %s.%s ok", name, call.Method)
	}
	return resp, nil
}
