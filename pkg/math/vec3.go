// Package math provides the vector, spherical and quaternion value types used
// to place sensors and reason about look directions.
package math

import (
	"math"

	"gonum.org/v1/gonum/floats/scalar"
)

// Epsilon is the absolute tolerance used by the unit, zero and equality checks.
const Epsilon = 1e-15

// Vec3 is a 3D vector in meters.
type Vec3 struct {
	X, Y, Z float64
}

// Vec3FromSpherical converts az/el/range to a vector.
// This is not the inverse of SphericalFromVec3: the forward conversion takes
// elevation from atan(z/x) while this one treats el as a true polar angle.
func Vec3FromSpherical(s Spherical) Vec3 {
	cosEl, sinEl := math.Cos(s.El), math.Sin(s.El)
	cosAz, sinAz := math.Cos(s.Az), math.Sin(s.Az)
	return Vec3{
		X: s.R * cosEl * cosAz,
		Y: s.R * sinAz * cosEl,
		Z: s.R * sinEl,
	}
}

// Add returns v + other.
func (v Vec3) Add(other Vec3) Vec3 {
	return Vec3{v.X + other.X, v.Y + other.Y, v.Z + other.Z}
}

// Sub returns v - other.
func (v Vec3) Sub(other Vec3) Vec3 {
	return Vec3{v.X - other.X, v.Y - other.Y, v.Z - other.Z}
}

// Scale returns v * scalar.
func (v Vec3) Scale(s float64) Vec3 {
	return Vec3{v.X * s, v.Y * s, v.Z * s}
}

// ScaleVec scales each axis independently.
func (v Vec3) ScaleVec(s Vec3) Vec3 {
	return Vec3{v.X * s.X, v.Y * s.Y, v.Z * s.Z}
}

// Dot returns the dot product.
func (v Vec3) Dot(other Vec3) float64 {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z
}

// Cross returns the cross product.
func (v Vec3) Cross(other Vec3) Vec3 {
	return Vec3{
		v.Y*other.Z - v.Z*other.Y,
		v.Z*other.X - v.X*other.Z,
		v.X*other.Y - v.Y*other.X,
	}
}

// Length returns the magnitude.
func (v Vec3) Length() float64 {
	return math.Sqrt(v.LengthSq())
}

// LengthSq returns the squared magnitude.
func (v Vec3) LengthSq() float64 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

// Distance returns the distance to another point.
func (v Vec3) Distance(other Vec3) float64 {
	return v.Sub(other).Length()
}

// Normalize returns a unit vector. Zero vectors and vectors that are already
// unit length are returned unchanged.
func (v Vec3) Normalize() Vec3 {
	lsq := v.LengthSq()
	if math.Abs(lsq) < Epsilon || math.Abs(lsq-1) < Epsilon {
		return v
	}
	return v.Scale(1 / math.Sqrt(lsq))
}

// SetLength returns v rescaled to the given length. Zero vectors are unchanged.
func (v Vec3) SetLength(length float64) Vec3 {
	l := v.Length()
	if l < Epsilon || math.Abs(length-l) < Epsilon {
		return v
	}
	return v.Scale(length / l)
}

// Limit caps the length of v at limit.
func (v Vec3) Limit(limit float64) Vec3 {
	if l := v.Length(); l > limit {
		return v.Scale(limit / l)
	}
	return v
}

// Clamp rescales v so its length lies within [min, max].
func (v Vec3) Clamp(min, max float64) Vec3 {
	lsq := v.LengthSq()
	if lsq < Epsilon {
		return v
	}
	if maxSq := max * max; lsq > maxSq {
		return v.Scale(math.Sqrt(maxSq / lsq))
	}
	if minSq := min * min; lsq < minSq {
		return v.Scale(math.Sqrt(minSq / lsq))
	}
	return v
}

// IsUnit reports whether v has unit length.
func (v Vec3) IsUnit() bool {
	return v.IsUnitWithTol(Epsilon)
}

// IsUnitWithTol reports whether |v|² is within tol of 1.
func (v Vec3) IsUnitWithTol(tol float64) bool {
	return math.Abs(v.LengthSq()-1) < tol
}

// IsZero reports whether v is the zero vector.
func (v Vec3) IsZero() bool {
	return v.IsZeroWithTol(Epsilon)
}

// IsZeroWithTol reports whether |v|² is below tol.
func (v Vec3) IsZeroWithTol(tol float64) bool {
	return v.LengthSq() < tol
}

// Equal compares per component within Epsilon.
func (v Vec3) Equal(other Vec3) bool {
	return v.EqualWithTolerance(other, Epsilon)
}

// EqualWithTolerance compares per component within tol.
func (v Vec3) EqualWithTolerance(other Vec3, tol float64) bool {
	return scalar.EqualWithinAbs(v.X, other.X, tol) &&
		scalar.EqualWithinAbs(v.Y, other.Y, tol) &&
		scalar.EqualWithinAbs(v.Z, other.Z, tol)
}

// Angle3 returns the angle in radians at centre between the rays to start and
// end. A point coinciding with centre yields NaN.
func Angle3(start, centre, end Vec3) float64 {
	a := start.Sub(centre)
	b := end.Sub(centre)
	a = a.Scale(1 / a.Length())
	b = b.Scale(1 / b.Length())
	// Clamp keeps collinear rays out of acos' NaN range; NaN passes through.
	return math.Acos(Clamp(a.Dot(b), -1, 1))
}

// Clamp limits value to [lo, hi].
func Clamp(value, lo, hi float64) float64 {
	if value < lo {
		return lo
	}
	if value > hi {
		return hi
	}
	return value
}

// Deg converts radians to degrees.
func Deg(rad float64) float64 {
	return rad * 180 / math.Pi
}

// Rad converts degrees to radians.
func Rad(deg float64) float64 {
	return deg * math.Pi / 180
}
