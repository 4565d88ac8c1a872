package estimate

import "errors"

// Estimation failures. They are returned wrapped; use errors.Is.
var (
	// ErrDegenerateGeometry means an angle was taken between coincident
	// points, so the result would have been NaN.
	ErrDegenerateGeometry = errors.New("degenerate geometry")

	// ErrAmbiguousBearing means no look direction survived the field of
	// regard of every visible sensor.
	ErrAmbiguousBearing = errors.New("ambiguous bearing: no direction samples remain")

	// ErrInsufficientBaseline means fewer than two visible sensors are
	// angularly separated as seen from the base.
	ErrInsufficientBaseline = errors.New("insufficient baseline between visible sensors")
)
