package math

import "math"

// Spherical holds azimuth and elevation in radians and range in meters as
// seen from an observer.
type Spherical struct {
	Az, El, R float64
}

// SphericalFromVec3 derives az/el/range from a vector:
// R = |v|, El = atan(z/x), Az = asin(y/R).
//
// El carries atan's half-plane ambiguity (x < 0 folds onto x > 0). When x and z
// are both zero El is 0; when only x is zero El is ±π/2. A zero vector has Az 0.
func SphericalFromVec3(v Vec3) Spherical {
	r := v.Length()

	var el float64
	if v.X == 0 && v.Z == 0 {
		el = 0
	} else {
		el = math.Atan(v.Z / v.X)
	}

	var az float64
	if r > 0 {
		az = math.Asin(Clamp(v.Y/r, -1, 1))
	}

	return Spherical{Az: az, El: el, R: r}
}

// AzEl returns the angular position as a Vec2 (X = azimuth, Y = elevation).
func (s Spherical) AzEl() Vec2 {
	return Vec2{s.Az, s.El}
}

// AzimuthDeg returns the azimuth in degrees.
func (s Spherical) AzimuthDeg() float64 {
	return Deg(s.Az)
}

// ElevationDeg returns the elevation in degrees.
func (s Spherical) ElevationDeg() float64 {
	return Deg(s.El)
}
