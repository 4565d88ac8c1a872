// Package sensor describes the photodiode cluster: where each sensor sits on
// the rig, which way it faces, and the fixed set of look directions used to
// search for the base.
package sensor

import (
	"github.com/Faultbox/basefinder/pkg/math"
)

// ClusterSize is the number of photodiodes on the rig.
const ClusterSize = 32

// Sensor is one photodiode in the cluster frame. NormalTip is the point one
// unit along the outward normal from Position.
type Sensor struct {
	Index     int
	Position  math.Vec3
	NormalTip math.Vec3
}

// Normal returns the outward unit normal.
func (s Sensor) Normal() math.Vec3 {
	return s.NormalTip.Sub(s.Position)
}

// Cluster is the full set of sensors, indexed by sensor number.
// It is an array so copies never alias.
type Cluster [ClusterSize]Sensor

// Calibration is a device-frame sensor table: positions in meters and
// outward normals, both indexed by sensor number.
type Calibration struct {
	Positions [ClusterSize]math.Vec3
	Normals   [ClusterSize]math.Vec3
}

var (
	defaultCalibration = buildDefaultCalibration()
	defaultCluster     = NewCluster(defaultCalibration)
)

func buildDefaultCalibration() Calibration {
	var cal Calibration
	for i := 0; i < ClusterSize; i++ {
		p, n := devicePositions[i], deviceNormals[i]
		cal.Positions[i] = math.Vec3{X: p[0], Y: p[1], Z: p[2]}
		cal.Normals[i] = math.Vec3{X: n[0], Y: n[1], Z: n[2]}
	}
	return cal
}

// DefaultCalibration returns the built-in device-frame table.
func DefaultCalibration() Calibration {
	return defaultCalibration
}

// Default returns the built-in cluster in the cluster frame.
func Default() Cluster {
	return defaultCluster
}

// NewCluster mounts a device-frame calibration onto the rig.
func NewCluster(cal Calibration) Cluster {
	var c Cluster
	for i := 0; i < ClusterSize; i++ {
		pos := cal.Positions[i]
		c[i] = Sensor{
			Index:     i,
			Position:  mountToCluster(pos),
			NormalTip: mountToCluster(pos.Add(cal.Normals[i])),
		}
	}
	return c
}

// mountToCluster maps the CAD device axes onto the cluster axes.
// The device's z axis points along cluster -x and its x axis along cluster -y.
func mountToCluster(d math.Vec3) math.Vec3 {
	return math.Vec3{X: -d.Z, Y: -d.X, Z: d.Y}
}
