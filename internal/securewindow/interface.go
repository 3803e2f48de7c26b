package securewindow

import "context"

// Window is the host UI surface that can be marked non-capturable.
type Window interface {
	SetSecure(secure bool) error
	IsSecure() bool
}

// UseCase toggles the window secure flag. It carries no policy.
type UseCase interface {
	SetSecure(ctx context.Context, secure bool) error
	IsSecure(ctx context.Context) bool
}
