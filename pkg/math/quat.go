package math

import "math"

// Quat represents a quaternion for 3D rotations.
// Components are stored as X, Y, Z, W where W is the scalar part.
type Quat struct {
	X, Y, Z, W float64
}

// QuatIdentity returns an identity quaternion (no rotation).
func QuatIdentity() Quat {
	return Quat{X: 0, Y: 0, Z: 0, W: 1}
}

// QuatFromAxisRad creates a quaternion from an axis and an angle in radians.
// The axis does not need to be normalized. An axis shorter than Epsilon
// yields the identity.
//
// The angle is folded into [0, π) before halving, so turns past half a
// revolution wrap around.
func QuatFromAxisRad(axis Vec3, radians float64) Quat {
	d := axis.Length()
	if d < Epsilon {
		return QuatIdentity()
	}
	d = 1 / d

	var ang float64
	if radians < 0 {
		ang = math.Pi - math.Mod(-radians, math.Pi)
	} else {
		ang = math.Mod(radians, math.Pi)
	}
	s, c := math.Sincos(ang / 2)

	return Quat{
		X: d * axis.X * s,
		Y: d * axis.Y * s,
		Z: d * axis.Z * s,
		W: c,
	}.Normalize()
}

// QuatFromAxisDeg creates a quaternion from an axis and an angle in degrees.
func QuatFromAxisDeg(axis Vec3, degrees float64) Quat {
	return QuatFromAxisRad(axis, Rad(degrees))
}

// QuatFromCross creates the rotation taking v1 towards v2 about their common
// normal. The angle comes from the clamped dot product of the inputs.
func QuatFromCross(v1, v2 Vec3) Quat {
	angle := math.Acos(Clamp(v1.Dot(v2), -1, 1))
	return QuatFromAxisRad(v1.Cross(v2), angle)
}

// QuatFromAttitude creates an orientation from accelerometer pitch and roll in
// degrees, rotating the down vector onto the measured gravity direction.
// Level attitude is special cased because down × down has no axis.
func QuatFromAttitude(pitchDeg, rollDeg float64) Quat {
	if pitchDeg == 0 && rollDeg == 0 {
		return Quat{X: 0, Y: 0, Z: -1, W: 0}
	}
	sp, cp := math.Sincos(Rad(pitchDeg))
	sr, cr := math.Sincos(Rad(rollDeg))
	down := Vec3{0, 0, -1}
	att := Vec3{sp, sr, cr * cp}
	return QuatFromCross(down, att)
}

// Normalize returns a normalized quaternion. Quaternions with squared
// magnitude at or below Epsilon are returned unchanged.
func (q Quat) Normalize() Quat {
	magSq := q.X*q.X + q.Y*q.Y + q.Z*q.Z + q.W*q.W
	if magSq <= Epsilon {
		return q
	}
	inv := 1 / math.Sqrt(magSq)
	return Quat{
		X: q.X * inv,
		Y: q.Y * inv,
		Z: q.Z * inv,
		W: q.W * inv,
	}
}

// Invert returns the conjugate. For unit quaternions this is the inverse rotation.
func (q Quat) Invert() Quat {
	return Quat{X: -q.X, Y: -q.Y, Z: -q.Z, W: q.W}
}

// Mul returns q * other (apply other, then q).
func (q Quat) Mul(other Quat) Quat {
	return Quat{
		X: q.W*other.X + q.X*other.W + q.Y*other.Z - q.Z*other.Y,
		Y: q.W*other.Y + q.Y*other.W + q.Z*other.X - q.X*other.Z,
		Z: q.W*other.Z + q.Z*other.W + q.X*other.Y - q.Y*other.X,
		W: q.W*other.W - q.X*other.X - q.Y*other.Y - q.Z*other.Z,
	}
}

// MulLeft returns other * q.
func (q Quat) MulLeft(other Quat) Quat {
	return other.Mul(q)
}

// Transform rotates v by q, computing q·[v,0]·q⁻¹.
func (q Quat) Transform(v Vec3) Vec3 {
	r := q.Invert().MulLeft(Quat{X: v.X, Y: v.Y, Z: v.Z, W: 0}).MulLeft(q)
	return Vec3{r.X, r.Y, r.Z}
}

// Add returns the component-wise sum.
func (q Quat) Add(other Quat) Quat {
	return Quat{q.X + other.X, q.Y + other.Y, q.Z + other.Z, q.W + other.W}
}

// ScaleBy multiplies every component by s.
func (q Quat) ScaleBy(s float64) Quat {
	return Quat{q.X * s, q.Y * s, q.Z * s, q.W * s}
}

// Dot returns the dot product of two quaternions.
func (q Quat) Dot(other Quat) float64 {
	return q.X*other.X + q.Y*other.Y + q.Z*other.Z + q.W*other.W
}

// IsIdentity reports whether q is the identity within Epsilon.
func (q Quat) IsIdentity() bool {
	return q.IsIdentityWithTol(Epsilon)
}

// IsIdentityWithTol reports whether q is the identity within tol.
func (q Quat) IsIdentityWithTol(tol float64) bool {
	return math.Abs(q.X) <= tol && math.Abs(q.Y) <= tol &&
		math.Abs(q.Z) <= tol && math.Abs(q.W-1) <= tol
}

// Equal compares per component within Epsilon.
func (q Quat) Equal(other Quat) bool {
	return math.Abs(q.X-other.X) <= Epsilon && math.Abs(q.Y-other.Y) <= Epsilon &&
		math.Abs(q.Z-other.Z) <= Epsilon && math.Abs(q.W-other.W) <= Epsilon
}
