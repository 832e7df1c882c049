// Package process terminates browser process trees left behind by a renderer.
package process

import "errors"

// ErrInvalidPID is returned for pids that would target the caller's own group.
var ErrInvalidPID = errors.New("invalid pid")
