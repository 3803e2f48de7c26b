package http

import (
	"call-audio-control/internal/routing"
	"call-audio-control/pkg/log"
)

type handler struct {
	l  log.Logger
	uc routing.UseCase
}

// New creates a new HTTP handler for the routing domain.
func New(l log.Logger, uc routing.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
