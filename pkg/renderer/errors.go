package renderer

import (
	"errors"
	"fmt"
)

var (
	ErrNoCameraFound        = errors.New("no camera found")
	ErrMultipleCamerasFound = errors.New("multiple cameras found")
	ErrInvalidResolution    = errors.New("invalid output resolution")
)

// ConfigurationError reports a scene that cannot be rendered as given
type ConfigurationError struct {
	Kind    error // ErrNoCameraFound or ErrMultipleCamerasFound
	Cameras int   // Number of cameras in the scene
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("%v: scene must contain exactly one camera, found %d", e.Kind, e.Cameras)
}

func (e *ConfigurationError) Unwrap() error {
	return e.Kind
}
