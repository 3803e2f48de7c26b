package http

import (
	"errors"
	"net/http"

	"call-audio-control/internal/routing"
	pkgErrors "call-audio-control/pkg/errors"
)

const (
	codeInvalidArgs = 40001
	codeAudioError  = 50001
)

var errInvalidArgs = pkgErrors.NewHTTPErrorWithCode(http.StatusBadRequest, codeInvalidArgs, "Invalid arguments")

// mapError translates routing errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, routing.ErrInvalidArgument):
		return errInvalidArgs
	case errors.Is(err, routing.ErrPlatformRouting):
		return pkgErrors.NewHTTPErrorWithCode(http.StatusInternalServerError, codeAudioError, err.Error())
	default:
		return pkgErrors.NewHTTPError(http.StatusInternalServerError, "Something went wrong")
	}
}
