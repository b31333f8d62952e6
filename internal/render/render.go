package render

import (
	"errors"

	"github.com/ace2884/OR/internal/geo"
)

// ErrNoStops is returned when there is nothing to draw. Callers must surface
// this as a failure instead of returning an empty artifact.
var ErrNoStops = errors.New("no stops with coordinates to render")

// Stop is one routed location with its resolved coordinate.
type Stop struct {
	Location string
	Point    geo.Point
}

// Renderer turns an ordered route into an opaque drawable artifact.
type Renderer interface {
	RenderRoute(stops []Stop) (string, error)
}
