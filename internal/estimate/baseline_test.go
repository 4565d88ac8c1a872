package estimate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/basefinder/pkg/math"
	"github.com/Faultbox/basefinder/pkg/sensor"
)

// observationAt builds an observation whose visible records carry only the
// angular coordinates the baseline search looks at.
func observationAt(coords ...math.Vec2) Observation {
	var obs Observation
	for i := range obs.Records {
		obs.Records[i].Index = i
	}
	for i, c := range coords {
		obs.Records[i].Visible = true
		obs.Records[i].Spherical = math.Spherical{Az: c.X, El: c.Y, R: 1}
	}
	return obs
}

func TestWidestBaselineReferenceScene(t *testing.T) {
	obs := Evaluate(sensor.Default(), refScene.pose, refScene.base, DefaultThresholds())
	bl, err := WidestBaseline(obs)
	require.NoError(t, err)

	assert.Equal(t, 15, bl.A)
	assert.Equal(t, 23, bl.B)
	assert.InDelta(t, 0.08907486063198196, bl.MeasuredAngle, 1e-12)
}

func TestWidestBaselinePicksLargestSeparation(t *testing.T) {
	obs := observationAt(
		math.Vec2{X: 0, Y: 0},
		math.Vec2{X: 0.1, Y: 0},
		math.Vec2{X: -0.1, Y: 0},
	)
	bl, err := WidestBaseline(obs)
	require.NoError(t, err)
	assert.Equal(t, 1, bl.A)
	assert.Equal(t, 2, bl.B)
	assert.InDelta(t, 0.2, bl.MeasuredAngle, 1e-15)
}

func TestWidestBaselineTieKeepsFirstPair(t *testing.T) {
	obs := observationAt(
		math.Vec2{X: 0, Y: 0},
		math.Vec2{X: 0.1, Y: 0},
		math.Vec2{X: 0, Y: 0},
	)
	bl, err := WidestBaseline(obs)
	require.NoError(t, err)
	assert.Equal(t, 0, bl.A)
	assert.Equal(t, 1, bl.B)
}

func TestWidestBaselineIgnoresHiddenSensors(t *testing.T) {
	obs := observationAt(
		math.Vec2{X: 0, Y: 0},
		math.Vec2{X: 0.05, Y: 0},
	)
	obs.Records[5].Spherical = math.Spherical{Az: 1.2, El: -0.4, R: 1}

	bl, err := WidestBaseline(obs)
	require.NoError(t, err)
	assert.Equal(t, 0, bl.A)
	assert.Equal(t, 1, bl.B)
}

func TestWidestBaselineInsufficient(t *testing.T) {
	tests := []struct {
		name string
		obs  Observation
	}{
		{"no visible sensors", observationAt()},
		{"single visible sensor", observationAt(math.Vec2{X: 0.3, Y: 0.1})},
		{"coincident directions", observationAt(math.Vec2{X: 0.3, Y: 0.1}, math.Vec2{X: 0.3, Y: 0.1})},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := WidestBaseline(tt.obs)
			assert.ErrorIs(t, err, ErrInsufficientBaseline)
		})
	}
}

func TestEstimateRangeReferenceScene(t *testing.T) {
	th := DefaultThresholds()
	obs := Evaluate(sensor.Default(), refScene.pose, refScene.base, th)
	b, err := EstimateBearing(obs, sensor.Directions(), th)
	require.NoError(t, err)

	r, err := EstimateRange(obs, b)
	require.NoError(t, err)

	assert.Equal(t, 15, r.Baseline.A)
	assert.Equal(t, 23, r.Baseline.B)
	assert.InDelta(t, 0.1705596143675208, r.EstimatedAngle, 1e-9)
	assert.InDelta(t, 1.9147895731456475, r.Factor, 1e-9)
	assert.InDelta(t, 1.8613290603624577, r.Offset.X, 1e-9)
	assert.InDelta(t, 0, r.Offset.Y, 1e-9)
	assert.InDelta(t, 0, r.Offset.Z, 1e-9)
	assert.InDelta(t, 3.8613290603624577, r.Position.X, 1e-9)
	assert.InDelta(t, 1.8613290603624577, r.Distance(), 1e-9)
}

func TestEstimateRangeFactorRelation(t *testing.T) {
	th := DefaultThresholds()
	pose := sensor.IdentityPose(math.Vec3{X: 1.0852, Y: 0.0171, Z: 0.0464})
	obs := Evaluate(sensor.Default(), pose, math.Vec3{}, th)
	b, err := EstimateBearing(obs, sensor.Directions(), th)
	require.NoError(t, err)

	r, err := EstimateRange(obs, b)
	require.NoError(t, err)

	assert.InDelta(t, r.EstimatedAngle/r.Baseline.MeasuredAngle, r.Factor, 1e-12)
	assert.True(t, r.Offset.EqualWithTolerance(b.Position.Sub(pose.Origin).Scale(r.Factor), 1e-12))
	assert.True(t, r.Position.EqualWithTolerance(pose.Origin.Add(r.Offset), 1e-12))
	assert.InDelta(t, 0.9928109849436221, r.Distance(), 1e-9)
}

func TestEstimateRangeNearCluster(t *testing.T) {
	th := DefaultThresholds()
	pose := sensor.IdentityPose(math.Vec3{X: 0.5})
	obs := Evaluate(sensor.Default(), pose, math.Vec3{}, th)
	b, err := EstimateBearing(obs, sensor.Directions(), th)
	require.NoError(t, err)

	r, err := EstimateRange(obs, b)
	require.NoError(t, err)
	assert.InDelta(t, 0.43705887891987716, r.Distance(), 1e-9)
}

func TestEstimateRangeDegenerate(t *testing.T) {
	obs := observationAt(math.Vec2{X: 0}, math.Vec2{X: 0.2})
	obs.Records[0].Position = math.Vec3{X: 1}
	obs.Records[1].Position = math.Vec3{Y: 1}

	// A bearing estimate on top of a baseline sensor subtends no angle.
	b := Bearing{Position: obs.Records[0].Position}
	_, err := EstimateRange(obs, b)
	assert.ErrorIs(t, err, ErrDegenerateGeometry)
}

func TestEstimateRangePropagatesInsufficientBaseline(t *testing.T) {
	obs := observationAt(math.Vec2{X: 0.1})
	_, err := EstimateRange(obs, Bearing{Position: math.Vec3{X: 3}})
	assert.ErrorIs(t, err, ErrInsufficientBaseline)
}
