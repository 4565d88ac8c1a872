package estimate

import (
	"fmt"
	gomath "math"

	"gonum.org/v1/gonum/stat"

	"github.com/Faultbox/basefinder/pkg/math"
	"github.com/Faultbox/basefinder/pkg/sensor"
)

// Mask marks which look directions are still consistent with the sensors
// processed so far.
type Mask [sensor.DirectionCount]bool

// NewMask returns a mask with every direction lit.
func NewMask() Mask {
	var m Mask
	for i := range m {
		m[i] = true
	}
	return m
}

// Count returns the number of lit directions.
func (m *Mask) Count() int {
	n := 0
	for _, lit := range m {
		if lit {
			n++
		}
	}
	return n
}

// Narrow clears every lit direction that falls outside the field of regard
// of the sensor in r. Direction d is tested at origin + d*SampleRadius.
// Directions already cleared are not retested.
func (m *Mask) Narrow(r VisibilityRecord, dirs *[sensor.DirectionCount]math.Vec3, origin math.Vec3, th Thresholds) error {
	for k, lit := range m {
		if !lit {
			continue
		}
		sample := origin.Add(dirs[k].Scale(th.SampleRadius))
		angle := math.Angle3(r.NormalTip, r.Position, sample)
		if gomath.IsNaN(angle) {
			return fmt.Errorf("%w: sensor %d coincides with direction sample %d", ErrDegenerateGeometry, r.Index, k)
		}
		m[k] = math.Deg(angle) < th.FieldOfRegardDeg
	}
	return nil
}

// Bearing is the coarse direction estimate. Mean is the arithmetic mean of
// the lit unit directions and is not renormalized, so its length shrinks as
// the lit set spreads. Position is the cluster origin minus Mean.
type Bearing struct {
	Mean     math.Vec3
	Position math.Vec3
	Lit      int
}

// EstimateBearing intersects the field of regard of every visible sensor
// against dirs, in sensor order, and averages what is left. With no visible
// sensor nothing constrains the mask and the bearing is ambiguous.
func EstimateBearing(obs Observation, dirs [sensor.DirectionCount]math.Vec3, th Thresholds) (Bearing, error) {
	if obs.VisibleCount() == 0 {
		return Bearing{}, fmt.Errorf("%w (no visible sensors)", ErrAmbiguousBearing)
	}

	origin := obs.Pose.Origin
	mask := NewMask()
	for _, r := range obs.Records {
		if !r.Visible {
			continue
		}
		if err := mask.Narrow(r, &dirs, origin, th); err != nil {
			return Bearing{}, err
		}
	}

	lit := mask.Count()
	if lit == 0 {
		return Bearing{}, fmt.Errorf("%w (%d visible sensors)", ErrAmbiguousBearing, obs.VisibleCount())
	}

	xs := make([]float64, 0, lit)
	ys := make([]float64, 0, lit)
	zs := make([]float64, 0, lit)
	for k, on := range mask {
		if !on {
			continue
		}
		xs = append(xs, dirs[k].X)
		ys = append(ys, dirs[k].Y)
		zs = append(zs, dirs[k].Z)
	}

	mean := math.Vec3{X: stat.Mean(xs, nil), Y: stat.Mean(ys, nil), Z: stat.Mean(zs, nil)}
	return Bearing{
		Mean:     mean,
		Position: origin.Sub(mean),
		Lit:      lit,
	}, nil
}
