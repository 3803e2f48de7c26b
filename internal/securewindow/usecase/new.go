package usecase

import (
	"context"
	"fmt"

	"call-audio-control/internal/securewindow"
	pkgLog "call-audio-control/pkg/log"
)

type implUseCase struct {
	l      pkgLog.Logger
	window securewindow.Window
}

// New creates the secure-window UseCase. A nil window makes every call fail.
func New(l pkgLog.Logger, window securewindow.Window) *implUseCase {
	return &implUseCase{l: l, window: window}
}

func (uc *implUseCase) SetSecure(ctx context.Context, secure bool) error {
	if uc.window == nil {
		return securewindow.ErrWindowUnavailable
	}
	if err := uc.window.SetSecure(secure); err != nil {
		uc.l.Errorf(ctx, "securewindow.usecase.SetSecure: %v", err)
		return fmt.Errorf("%w: %w", securewindow.ErrWindowUnavailable, err)
	}
	uc.l.Infof(ctx, "securewindow.usecase.SetSecure: secure=%v", secure)
	return nil
}

func (uc *implUseCase) IsSecure(ctx context.Context) bool {
	if uc.window == nil {
		return false
	}
	return uc.window.IsSecure()
}
