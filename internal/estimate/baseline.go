package estimate

import (
	"fmt"
	gomath "math"

	"github.com/Faultbox/basefinder/pkg/math"
)

// Baseline is the most angularly separated pair of visible sensors as seen
// from the base. MeasuredAngle is the (az, el) plane distance in radians.
type Baseline struct {
	A, B          int
	MeasuredAngle float64
}

// WidestBaseline scans every unordered pair of visible sensors. Ties keep the
// first pair in ascending (A, B) order.
func WidestBaseline(obs Observation) (Baseline, error) {
	var best Baseline
	for i := 0; i < len(obs.Records); i++ {
		ri := obs.Records[i]
		if !ri.Visible {
			continue
		}
		for j := i + 1; j < len(obs.Records); j++ {
			rj := obs.Records[j]
			if !rj.Visible {
				continue
			}
			sep := ri.Spherical.AzEl().Distance(rj.Spherical.AzEl())
			if sep > best.MeasuredAngle {
				best = Baseline{A: i, B: j, MeasuredAngle: sep}
			}
		}
	}
	if best.MeasuredAngle == 0 {
		return Baseline{}, fmt.Errorf("%w (%d visible sensors)", ErrInsufficientBaseline, obs.VisibleCount())
	}
	return best, nil
}

// Range is the bearing rescaled to metric distance. Offset is relative to the
// cluster origin; its length is the range estimate.
type Range struct {
	Baseline       Baseline
	EstimatedAngle float64 // radians, subtended at the bearing position
	Factor         float64
	Offset         math.Vec3
	Position       math.Vec3
}

// Distance returns the estimated range in meters.
func (r Range) Distance() float64 {
	return r.Offset.Length()
}

// EstimateRange scales the bearing offset so that the angle the widest
// baseline subtends at the estimate matches the measured one. It applies a
// single proportional correction.
func EstimateRange(obs Observation, b Bearing) (Range, error) {
	bl, err := WidestBaseline(obs)
	if err != nil {
		return Range{}, err
	}

	pa := obs.Records[bl.A].Position
	pb := obs.Records[bl.B].Position
	est := math.Angle3(pa, b.Position, pb)
	if gomath.IsNaN(est) {
		return Range{}, fmt.Errorf("%w: bearing estimate coincides with sensor %d or %d", ErrDegenerateGeometry, bl.A, bl.B)
	}

	origin := obs.Pose.Origin
	factor := math.Deg(est) / math.Deg(bl.MeasuredAngle)
	offset := b.Position.Sub(origin).Scale(factor)
	return Range{
		Baseline:       bl,
		EstimatedAngle: est,
		Factor:         factor,
		Offset:         offset,
		Position:       origin.Add(offset),
	}, nil
}
