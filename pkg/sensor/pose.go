package sensor

import (
	"github.com/Faultbox/basefinder/pkg/math"
)

// Pose places the cluster in the base frame. A zero Orientation is treated as
// no rotation, so Pose{Origin: o} is the reference configuration.
type Pose struct {
	Origin      math.Vec3
	Orientation math.Quat
}

// IdentityPose returns a pose at origin with no rotation.
func IdentityPose(origin math.Vec3) Pose {
	return Pose{Origin: origin, Orientation: math.QuatIdentity()}
}

// Rotated reports whether the pose applies a rotation.
func (p Pose) Rotated() bool {
	return p.Orientation != (math.Quat{}) && !p.Orientation.IsIdentity()
}

// Place returns the cluster in base-frame coordinates: each position and
// normal tip is rotated about the cluster origin, then translated.
func (c Cluster) Place(pose Pose) Cluster {
	rotate := pose.Rotated()
	var out Cluster
	for i, s := range c {
		pos, tip := s.Position, s.NormalTip
		if rotate {
			pos = pose.Orientation.Transform(pos)
			tip = pose.Orientation.Transform(tip)
		}
		out[i] = Sensor{
			Index:     s.Index,
			Position:  pos.Add(pose.Origin),
			NormalTip: tip.Add(pose.Origin),
		}
	}
	return out
}
