package channel

import "errors"

var (
	ErrChannelNotFound = errors.New("channel not found")
	ErrChannelExists   = errors.New("channel already registered")
	ErrEmptyName       = errors.New("channel name is empty")
)
