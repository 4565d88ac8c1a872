// Package chart draws the per-sensor az/el scatter of an observation as an
// HTML page or a PNG image.
package chart

import (
	"errors"

	"github.com/Faultbox/basefinder/internal/estimate"
)

// Series names.
const (
	SeriesSensors = "Sensors"
	SeriesRight   = "Right"
	SeriesLeft    = "Left"
)

// ErrBounds is returned for axis bounds that are inverted or empty.
var ErrBounds = errors.New("invalid chart bounds")

// Marker sensors that get their own series.
var (
	rightMarkers = map[int]bool{1: true, 9: true}
	leftMarkers  = map[int]bool{22: true, 30: true}
)

// Options controls titles and axis bounds in degrees.
type Options struct {
	Title string
	AzMin float64
	AzMax float64
	ElMin float64
	ElMax float64
}

// DefaultOptions returns ±20° on both axes.
func DefaultOptions() Options {
	return Options{
		Title: "Sensor bearings",
		AzMin: -20,
		AzMax: 20,
		ElMin: -20,
		ElMax: 20,
	}
}

func (o Options) validate() error {
	if !(o.AzMin < o.AzMax) || !(o.ElMin < o.ElMax) {
		return ErrBounds
	}
	return nil
}

// Series is one named group of visible sensors.
type Series struct {
	Name   string
	Points []estimate.ChartPoint
}

// Group splits the visible points into the Sensors, Right and Left series,
// in that order. Sensors is always present; Right and Left only when one of
// their markers is visible. Hidden points are dropped.
func Group(points []estimate.ChartPoint) []Series {
	sensors := Series{Name: SeriesSensors}
	right := Series{Name: SeriesRight}
	left := Series{Name: SeriesLeft}
	for _, p := range points {
		if !p.Visible {
			continue
		}
		switch {
		case rightMarkers[p.Index]:
			right.Points = append(right.Points, p)
		case leftMarkers[p.Index]:
			left.Points = append(left.Points, p)
		default:
			sensors.Points = append(sensors.Points, p)
		}
	}

	out := []Series{sensors}
	if len(right.Points) > 0 {
		out = append(out, right)
	}
	if len(left.Points) > 0 {
		out = append(out, left)
	}
	return out
}
