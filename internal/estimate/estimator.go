package estimate

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/Faultbox/basefinder/pkg/math"
	"github.com/Faultbox/basefinder/pkg/sensor"
)

// Estimator runs visibility, bearing and range estimation for one cluster
// model. The zero value is not usable; call New.
type Estimator struct {
	cluster    sensor.Cluster
	directions [sensor.DirectionCount]math.Vec3
	thresholds Thresholds
	log        *zap.Logger
}

// Option configures an Estimator.
type Option func(*Estimator)

// WithCluster replaces the built-in sensor cluster.
func WithCluster(c sensor.Cluster) Option {
	return func(e *Estimator) { e.cluster = c }
}

// WithThresholds replaces the reference thresholds.
func WithThresholds(th Thresholds) Option {
	return func(e *Estimator) { e.thresholds = th }
}

// WithLogger sets the logger used for per-stage debug output.
func WithLogger(l *zap.Logger) Option {
	return func(e *Estimator) {
		if l != nil {
			e.log = l
		}
	}
}

// New creates an Estimator over the built-in cluster and direction sphere.
func New(opts ...Option) *Estimator {
	e := &Estimator{
		cluster:    sensor.Default(),
		directions: sensor.Directions(),
		thresholds: DefaultThresholds(),
		log:        zap.NewNop(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Thresholds returns the thresholds in use.
func (e *Estimator) Thresholds() Thresholds {
	return e.thresholds
}

// Result holds every stage of a successful run.
type Result struct {
	Observation Observation
	Bearing     Bearing
	Range       Range
}

// Observe evaluates visibility only. It never fails.
func (e *Estimator) Observe(pose sensor.Pose, base math.Vec3) Observation {
	obs := Evaluate(e.cluster, pose, base, e.thresholds)
	e.log.Debug("evaluated visibility",
		zap.Int("visible", obs.VisibleCount()),
		zap.Float64("base_x", base.X), zap.Float64("base_y", base.Y), zap.Float64("base_z", base.Z))
	return obs
}

// Run evaluates the cluster at pose against base and estimates the base
// position. On failure the partial result up to the failing stage is
// returned alongside the error.
func (e *Estimator) Run(pose sensor.Pose, base math.Vec3) (Result, error) {
	var res Result
	res.Observation = e.Observe(pose, base)

	b, err := EstimateBearing(res.Observation, e.directions, e.thresholds)
	if err != nil {
		return res, fmt.Errorf("estimating bearing: %w", err)
	}
	res.Bearing = b
	e.log.Debug("estimated bearing",
		zap.Int("lit_directions", b.Lit),
		zap.Float64("mean_x", b.Mean.X), zap.Float64("mean_y", b.Mean.Y), zap.Float64("mean_z", b.Mean.Z),
		zap.Float64("mean_length", b.Mean.Length()))

	r, err := EstimateRange(res.Observation, b)
	if err != nil {
		return res, fmt.Errorf("estimating range: %w", err)
	}
	res.Range = r
	e.log.Debug("calibrated range",
		zap.Int("sensor_a", r.Baseline.A), zap.Int("sensor_b", r.Baseline.B),
		zap.Float64("measured_deg", math.Deg(r.Baseline.MeasuredAngle)),
		zap.Float64("estimated_deg", math.Deg(r.EstimatedAngle)),
		zap.Float64("factor", r.Factor),
		zap.Float64("distance_m", r.Distance()))

	return res, nil
}
