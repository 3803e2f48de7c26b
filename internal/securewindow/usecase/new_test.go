package usecase_test

import (
	"context"
	"errors"
	"testing"

	"call-audio-control/internal/securewindow"
	"call-audio-control/internal/securewindow/usecase"
	"call-audio-control/pkg/log"
)

type lockedWindow struct{}

func (lockedWindow) SetSecure(bool) error { return errors.New("no window attached") }
func (lockedWindow) IsSecure() bool       { return false }

func TestSetSecure(t *testing.T) {
	ctx := context.Background()

	t.Run("Toggle", func(t *testing.T) {
		w := securewindow.NewMemoryWindow()
		uc := usecase.New(log.NewNop(), w)

		if err := uc.SetSecure(ctx, true); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !uc.IsSecure(ctx) {
			t.Error("expected secure")
		}
		if err := uc.SetSecure(ctx, false); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if w.IsSecure() {
			t.Error("expected flag cleared")
		}
	})

	t.Run("Window Error", func(t *testing.T) {
		uc := usecase.New(log.NewNop(), lockedWindow{})
		if err := uc.SetSecure(ctx, true); !errors.Is(err, securewindow.ErrWindowUnavailable) {
			t.Errorf("expected ErrWindowUnavailable, got %v", err)
		}
	})

	t.Run("No Window", func(t *testing.T) {
		uc := usecase.New(log.NewNop(), nil)
		if err := uc.SetSecure(ctx, true); !errors.Is(err, securewindow.ErrWindowUnavailable) {
			t.Errorf("expected ErrWindowUnavailable, got %v", err)
		}
		if uc.IsSecure(ctx) {
			t.Error("expected false without a window")
		}
	})
}
