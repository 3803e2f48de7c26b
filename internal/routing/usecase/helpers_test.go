package usecase_test

import (
	"context"
	"errors"

	"call-audio-control/internal/routing"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

// mockAdapter records applied decisions and optionally fails.
type mockAdapter struct {
	applied []routing.Decision
	err     error
}

func (m *mockAdapter) Name() string { return "mock" }

func (m *mockAdapter) Apply(ctx context.Context, d routing.Decision) error {
	m.applied = append(m.applied, d)
	return m.err
}

func (m *mockAdapter) last() routing.Decision {
	if len(m.applied) == 0 {
		return routing.Decision{}
	}
	return m.applied[len(m.applied)-1]
}

// liveAdapter also answers live speakerphone reads.
type liveAdapter struct {
	mockAdapter
	live    bool
	readErr error
}

func (m *liveAdapter) SpeakerphoneOn(ctx context.Context) (bool, error) {
	return m.live, m.readErr
}

var errHardwareBusy = errors.New("hardware busy")
