// Package estimate infers where the base is from which cluster sensors it
// lights: per-sensor visibility, a coarse bearing from intersecting the
// sensors' fields of regard, and a range calibrated on the widest angular
// baseline.
package estimate

import (
	"github.com/Faultbox/basefinder/pkg/math"
	"github.com/Faultbox/basefinder/pkg/sensor"
)

// Thresholds are the fixed angular and radial constants of the estimator.
type Thresholds struct {
	// FieldOfRegardDeg is the widest angle off a sensor's normal at which a
	// look direction is still considered seen.
	FieldOfRegardDeg float64
	// VisibleAoIDeg is the angle of incidence below which a sensor is lit.
	VisibleAoIDeg float64
	// SampleRadius is the radius in meters of the direction sphere around
	// the cluster origin.
	SampleRadius float64
}

// DefaultThresholds returns the reference constants.
func DefaultThresholds() Thresholds {
	return Thresholds{
		FieldOfRegardDeg: 75,
		VisibleAoIDeg:    80,
		SampleRadius:     0.5,
	}
}

// Visible reports whether a sensor at the given angle of incidence (radians)
// is lit. The threshold itself is not visible.
func (th Thresholds) Visible(aoi float64) bool {
	return math.Deg(aoi) < th.VisibleAoIDeg
}

// Photodiode response constants.
const (
	maxAoIDeg        = 90.0
	relPowerPerDeg   = 1 / maxAoIDeg
	maxDistance      = 20.0
	relPowerPerMeter = 1 / maxDistance
	minRelativePower = 0.05
)

// RelativePower approximates the photodiode response as linear falloff in
// both angle of incidence and distance. Responses under 5% read as zero, as
// does an undefined (NaN) angle.
func RelativePower(aoi, distance float64) float64 {
	angular := 1 - math.Deg(aoi)*relPowerPerDeg
	radial := 1 - distance*relPowerPerMeter
	if !(angular > 0) || !(radial > 0) {
		return 0
	}
	p := angular * radial
	if p < minRelativePower {
		return 0
	}
	return p
}

// VisibilityRecord is one sensor's view of the base. BaseVector is
// base + Position, which is the base-to-sensor vector only while the base
// sits at the frame origin; Spherical is derived from it.
type VisibilityRecord struct {
	Index         int
	Position      math.Vec3 // base frame
	NormalTip     math.Vec3 // base frame
	BaseVector    math.Vec3
	Spherical     math.Spherical
	AoI           float64 // radians
	Visible       bool
	RelativePower float64
}

// Observation is a full evaluation of the cluster against one base.
type Observation struct {
	Base    math.Vec3
	Pose    sensor.Pose
	Records [sensor.ClusterSize]VisibilityRecord
}

// Evaluate computes every sensor's angle of incidence and visibility for a
// cluster at pose seen from base. It is total: degenerate sensors come back
// with a NaN AoI and are never visible.
func Evaluate(c sensor.Cluster, pose sensor.Pose, base math.Vec3, th Thresholds) Observation {
	obs := Observation{Base: base, Pose: pose}
	for i, s := range c.Place(pose) {
		bv := base.Add(s.Position)
		aoi := math.Angle3(base, s.Position, s.NormalTip)
		obs.Records[i] = VisibilityRecord{
			Index:         s.Index,
			Position:      s.Position,
			NormalTip:     s.NormalTip,
			BaseVector:    bv,
			Spherical:     math.SphericalFromVec3(bv),
			AoI:           aoi,
			Visible:       th.Visible(aoi),
			RelativePower: RelativePower(aoi, s.Position.Distance(base)),
		}
	}
	return obs
}

// VisibleCount returns the number of lit sensors.
func (o Observation) VisibleCount() int {
	n := 0
	for _, r := range o.Records {
		if r.Visible {
			n++
		}
	}
	return n
}

// ChartPoint is the per-sensor tuple handed to plotting.
type ChartPoint struct {
	Index   int
	Visible bool
	AzDeg   float64
	ElDeg   float64
}

// Points returns the chart tuples for every sensor in index order.
func (o Observation) Points() []ChartPoint {
	pts := make([]ChartPoint, len(o.Records))
	for i, r := range o.Records {
		pts[i] = ChartPoint{
			Index:   r.Index,
			Visible: r.Visible,
			AzDeg:   r.Spherical.AzimuthDeg(),
			ElDeg:   r.Spherical.ElevationDeg(),
		}
	}
	return pts
}
