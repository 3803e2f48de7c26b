package securewindow

import "errors"

var ErrWindowUnavailable = errors.New("window unavailable")
