package estimate

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/basefinder/pkg/math"
	"github.com/Faultbox/basefinder/pkg/sensor"
)

func TestEstimateBearingReferenceScene(t *testing.T) {
	obs := Evaluate(sensor.Default(), refScene.pose, refScene.base, DefaultThresholds())
	b, err := EstimateBearing(obs, sensor.Directions(), DefaultThresholds())
	require.NoError(t, err)

	assert.Equal(t, 8, b.Lit)
	assert.InDelta(t, -0.9720802152189686, b.Mean.X, 1e-12)
	assert.InDelta(t, 0, b.Mean.Y, 1e-12)
	assert.InDelta(t, 0, b.Mean.Z, 1e-12)
	assert.True(t, b.Position.EqualWithTolerance(refScene.pose.Origin.Sub(b.Mean), 1e-15))
}

// The mean of lit unit directions is kept as is; its length pins that no
// renormalization is applied.
func TestEstimateBearingMeanNotRenormalized(t *testing.T) {
	obs := Evaluate(sensor.Default(), refScene.pose, refScene.base, DefaultThresholds())
	b, err := EstimateBearing(obs, sensor.Directions(), DefaultThresholds())
	require.NoError(t, err)

	assert.Less(t, b.Mean.Length(), 1.0)
	assert.InDelta(t, 0.9720802152189686, b.Mean.Length(), 1e-12)
}

func TestEstimateBearingNoVisibleSensors(t *testing.T) {
	th := DefaultThresholds()
	th.VisibleAoIDeg = 0
	obs := Evaluate(sensor.Default(), refScene.pose, refScene.base, th)
	require.Zero(t, obs.VisibleCount())

	_, err := EstimateBearing(obs, sensor.Directions(), th)
	assert.ErrorIs(t, err, ErrAmbiguousBearing)
}

func TestEstimateBearingContradictory(t *testing.T) {
	var obs Observation
	for i := range obs.Records {
		obs.Records[i].Index = i
	}
	// Two lit sensors at the origin facing opposite ways share no direction
	// within 75° of both normals.
	obs.Records[0] = VisibilityRecord{Index: 0, NormalTip: math.Vec3{X: 1}, Visible: true}
	obs.Records[1] = VisibilityRecord{Index: 1, NormalTip: math.Vec3{X: -1}, Visible: true}

	_, err := EstimateBearing(obs, sensor.Directions(), DefaultThresholds())
	assert.ErrorIs(t, err, ErrAmbiguousBearing)
}

func TestEstimateBearingDegenerateSample(t *testing.T) {
	dirs := sensor.Directions()
	th := DefaultThresholds()

	var obs Observation
	// A sensor sitting exactly on a direction sample.
	pos := dirs[17].Scale(th.SampleRadius)
	obs.Records[0] = VisibilityRecord{Position: pos, NormalTip: pos.Add(dirs[17]), Visible: true}

	_, err := EstimateBearing(obs, dirs, th)
	assert.ErrorIs(t, err, ErrDegenerateGeometry)
}

func TestMaskNarrowingIsMonotone(t *testing.T) {
	th := DefaultThresholds()
	dirs := sensor.Directions()
	obs := Evaluate(sensor.Default(), refScene.pose, refScene.base, th)

	mask := NewMask()
	require.Equal(t, sensor.DirectionCount, mask.Count())

	for _, r := range obs.Records {
		if !r.Visible {
			continue
		}
		before := mask
		require.NoError(t, mask.Narrow(r, &dirs, obs.Pose.Origin, th))
		for k := range mask {
			if mask[k] {
				assert.True(t, before[k], "sensor %d relit direction %d", r.Index, k)
			}
		}
		assert.LessOrEqual(t, mask.Count(), before.Count())
	}
	assert.Equal(t, 8, mask.Count())
}

func TestMaskOrderIndependent(t *testing.T) {
	th := DefaultThresholds()
	dirs := sensor.Directions()
	obs := Evaluate(sensor.Default(), refScene.pose, refScene.base, th)

	forward := NewMask()
	reverse := NewMask()
	for i := range obs.Records {
		if r := obs.Records[i]; r.Visible {
			require.NoError(t, forward.Narrow(r, &dirs, obs.Pose.Origin, th))
		}
		if r := obs.Records[len(obs.Records)-1-i]; r.Visible {
			require.NoError(t, reverse.Narrow(r, &dirs, obs.Pose.Origin, th))
		}
	}
	assert.Equal(t, forward, reverse)
}

func TestEstimateBearingWrapsSentinel(t *testing.T) {
	var obs Observation
	_, err := EstimateBearing(obs, sensor.Directions(), DefaultThresholds())
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrAmbiguousBearing))
	assert.Contains(t, err.Error(), "no visible sensors")
}
