package boxplay

import (
	"errors"
	"fmt"
)

// Sentinel errors for the boxplay package.
var (
	// ErrStopped is returned by Frame after a quit event was processed.
	ErrStopped = errors.New("boxplay: sandbox stopped")

	// ErrInvalidConfig is wrapped by StartupError for rejected settings.
	ErrInvalidConfig = errors.New("boxplay: invalid config")

	// ErrNoPlayable is returned when the world has no playable entity.
	ErrNoPlayable = errors.New("boxplay: no playable entity")
)

// Startup resources named by StartupError.
const (
	ResourceConfig   = "config"
	ResourceWorld    = "world"
	ResourceFontFace = "font face"
	ResourceTexture  = "texture"
	ResourceRenderer = "renderer"
	ResourceWindow   = "window"
	ResourceTerminal = "terminal"
)

// StartupError reports a fatal failure before the frame loop started.
// Startup errors are never retried.
type StartupError struct {
	// Resource names what could not be created, e.g. "font face".
	Resource string
	Err      error
}

func (e *StartupError) Error() string {
	return fmt.Sprintf("boxplay: %s: %v", e.Resource, e.Err)
}

func (e *StartupError) Unwrap() error {
	return e.Err
}

func startupError(resource string, err error) error {
	return &StartupError{Resource: resource, Err: err}
}
