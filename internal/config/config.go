// Package config handles run configuration loading and management.
package config

import (
	"errors"
	"fmt"

	"github.com/Faultbox/basefinder/internal/chart"
	"github.com/Faultbox/basefinder/internal/estimate"
	"github.com/Faultbox/basefinder/pkg/math"
	"github.com/Faultbox/basefinder/pkg/sensor"
)

// ErrInvalid is wrapped by every Validate failure.
var ErrInvalid = errors.New("invalid config")

// Config holds all run settings.
type Config struct {
	Geometry   GeometryConfig   `yaml:"geometry"`
	Thresholds ThresholdsConfig `yaml:"thresholds"`
	Chart      ChartConfig      `yaml:"chart"`
	Logging    LoggingConfig    `yaml:"logging"`
}

// GeometryConfig places the base and the cluster in the base frame.
type GeometryConfig struct {
	Base            [3]float64     `yaml:"base,flow"`
	ClusterOrigin   [3]float64     `yaml:"cluster_origin,flow"`
	Attitude        AttitudeConfig `yaml:"attitude"`
	CalibrationFile string         `yaml:"calibration_file"` // empty uses the built-in table
}

// AttitudeConfig holds accelerometer pitch and roll for the cluster.
type AttitudeConfig struct {
	Enabled  bool    `yaml:"enabled"`
	PitchDeg float64 `yaml:"pitch_deg"`
	RollDeg  float64 `yaml:"roll_deg"`
}

// ThresholdsConfig mirrors estimate.Thresholds.
type ThresholdsConfig struct {
	FieldOfRegardDeg float64 `yaml:"field_of_regard_deg"`
	VisibleAoIDeg    float64 `yaml:"visible_aoi_deg"`
	SampleRadius     float64 `yaml:"sample_radius"`
}

// ChartConfig holds chart output paths and axis bounds in degrees.
type ChartConfig struct {
	HTMLPath string  `yaml:"html_path"`
	PNGPath  string  `yaml:"png_path"`
	AzMin    float64 `yaml:"az_min"`
	AzMax    float64 `yaml:"az_max"`
	ElMin    float64 `yaml:"el_min"`
	ElMax    float64 `yaml:"el_max"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with the reference scenario: base at the origin,
// cluster two meters down +x, level attitude.
func Default() *Config {
	th := estimate.DefaultThresholds()
	ch := chart.DefaultOptions()
	return &Config{
		Geometry: GeometryConfig{
			ClusterOrigin: [3]float64{2, 0, 0},
		},
		Thresholds: ThresholdsConfig{
			FieldOfRegardDeg: th.FieldOfRegardDeg,
			VisibleAoIDeg:    th.VisibleAoIDeg,
			SampleRadius:     th.SampleRadius,
		},
		Chart: ChartConfig{
			HTMLPath: "bearings.html",
			AzMin:    ch.AzMin,
			AzMax:    ch.AzMax,
			ElMin:    ch.ElMin,
			ElMax:    ch.ElMax,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Validate rejects non-positive thresholds and inverted chart bounds.
func (c *Config) Validate() error {
	t := c.Thresholds
	switch {
	case !(t.FieldOfRegardDeg > 0):
		return fmt.Errorf("%w: thresholds.field_of_regard_deg must be positive, got %g", ErrInvalid, t.FieldOfRegardDeg)
	case !(t.VisibleAoIDeg > 0):
		return fmt.Errorf("%w: thresholds.visible_aoi_deg must be positive, got %g", ErrInvalid, t.VisibleAoIDeg)
	case !(t.SampleRadius > 0):
		return fmt.Errorf("%w: thresholds.sample_radius must be positive, got %g", ErrInvalid, t.SampleRadius)
	}
	if !(c.Chart.AzMin < c.Chart.AzMax) {
		return fmt.Errorf("%w: chart.az_min %g must be below az_max %g", ErrInvalid, c.Chart.AzMin, c.Chart.AzMax)
	}
	if !(c.Chart.ElMin < c.Chart.ElMax) {
		return fmt.Errorf("%w: chart.el_min %g must be below el_max %g", ErrInvalid, c.Chart.ElMin, c.Chart.ElMax)
	}
	return nil
}

// BaseVec returns the base position.
func (g GeometryConfig) BaseVec() math.Vec3 {
	return vec(g.Base)
}

// Pose returns the cluster pose. A disabled attitude leaves it unrotated.
func (g GeometryConfig) Pose() sensor.Pose {
	p := sensor.IdentityPose(vec(g.ClusterOrigin))
	if g.Attitude.Enabled {
		p.Orientation = math.QuatFromAttitude(g.Attitude.PitchDeg, g.Attitude.RollDeg)
	}
	return p
}

// EstimateThresholds converts to the estimator's thresholds.
func (t ThresholdsConfig) EstimateThresholds() estimate.Thresholds {
	return estimate.Thresholds{
		FieldOfRegardDeg: t.FieldOfRegardDeg,
		VisibleAoIDeg:    t.VisibleAoIDeg,
		SampleRadius:     t.SampleRadius,
	}
}

// Options converts to chart options.
func (c ChartConfig) Options() chart.Options {
	o := chart.DefaultOptions()
	o.AzMin, o.AzMax = c.AzMin, c.AzMax
	o.ElMin, o.ElMax = c.ElMin, c.ElMax
	return o
}

func vec(a [3]float64) math.Vec3 {
	return math.Vec3{X: a[0], Y: a[1], Z: a[2]}
}

// Cluster returns the sensor cluster, loading the calibration file when one
// is configured.
func (g GeometryConfig) Cluster() (sensor.Cluster, error) {
	if g.CalibrationFile == "" {
		return sensor.Default(), nil
	}
	cal, err := sensor.LoadCalibration(g.CalibrationFile)
	if err != nil {
		return sensor.Cluster{}, err
	}
	return sensor.NewCluster(cal), nil
}
