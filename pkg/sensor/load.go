package sensor

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/Faultbox/basefinder/pkg/math"
)

// Calibration file errors.
var (
	ErrSensorCount = errors.New("calibration must list exactly 32 sensors")
	ErrZeroNormal  = errors.New("sensor normal has zero length")
)

// calibrationFile is the on-disk layout of a device-frame calibration.
type calibrationFile struct {
	Sensors []calibrationEntry `yaml:"sensors"`
}

type calibrationEntry struct {
	Position [3]float64 `yaml:"position,flow"`
	Normal   [3]float64 `yaml:"normal,flow"`
}

// LoadCalibration reads a YAML calibration table from path.
func LoadCalibration(path string) (Calibration, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Calibration{}, fmt.Errorf("reading calibration: %w", err)
	}
	return ParseCalibration(data)
}

// ParseCalibration decodes a YAML calibration table. Normals are normalized.
func ParseCalibration(data []byte) (Calibration, error) {
	var f calibrationFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return Calibration{}, fmt.Errorf("decoding calibration: %w", err)
	}
	if len(f.Sensors) != ClusterSize {
		return Calibration{}, fmt.Errorf("%w: got %d", ErrSensorCount, len(f.Sensors))
	}

	var cal Calibration
	for i, e := range f.Sensors {
		n := math.Vec3{X: e.Normal[0], Y: e.Normal[1], Z: e.Normal[2]}
		if n.IsZero() {
			return Calibration{}, fmt.Errorf("%w: sensor %d", ErrZeroNormal, i)
		}
		cal.Positions[i] = math.Vec3{X: e.Position[0], Y: e.Position[1], Z: e.Position[2]}
		cal.Normals[i] = n.Normalize()
	}
	return cal, nil
}

// MarshalCalibration encodes cal in the format read by ParseCalibration.
func MarshalCalibration(cal Calibration) ([]byte, error) {
	f := calibrationFile{Sensors: make([]calibrationEntry, ClusterSize)}
	for i := 0; i < ClusterSize; i++ {
		p, n := cal.Positions[i], cal.Normals[i]
		f.Sensors[i] = calibrationEntry{
			Position: [3]float64{p.X, p.Y, p.Z},
			Normal:   [3]float64{n.X, n.Y, n.Z},
		}
	}
	return yaml.Marshal(f)
}
