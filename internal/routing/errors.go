package routing

import "errors"

var (
	ErrInvalidArgument = errors.New("invalid arguments")
	ErrPlatformRouting = errors.New("platform audio routing failed")
)
