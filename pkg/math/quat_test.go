package math

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/num/quat"
)

func toNumber(q Quat) quat.Number {
	return quat.Number{Real: q.W, Imag: q.X, Jmag: q.Y, Kmag: q.Z}
}

func TestQuatIdentity(t *testing.T) {
	q := QuatIdentity()
	if q.X != 0 || q.Y != 0 || q.Z != 0 || q.W != 1 {
		t.Errorf("Identity quaternion should be (0,0,0,1), got (%v,%v,%v,%v)", q.X, q.Y, q.Z, q.W)
	}
	if !q.IsIdentity() {
		t.Error("QuatIdentity().IsIdentity() should be true")
	}
}

func TestQuatNormalize(t *testing.T) {
	q := Quat{X: 1, Y: 2, Z: 3, W: 4}
	n := q.Normalize()

	length := math.Sqrt(n.Dot(n))
	if math.Abs(length-1.0) > 1e-12 {
		t.Errorf("Normalized quaternion length should be 1, got %v", length)
	}

	tiny := Quat{X: 1e-9}
	if got := tiny.Normalize(); got != tiny {
		t.Errorf("Normalize below tolerance should be a no-op, got %v", got)
	}
}

func TestQuatFromAxisAngle(t *testing.T) {
	// 90 degrees around Y axis
	q := QuatFromAxisRad(Vec3{X: 0, Y: 1, Z: 0}, math.Pi/2)

	// Should have Y component and W = cos(45deg)
	expectedW := math.Cos(math.Pi / 4)
	expectedY := math.Sin(math.Pi / 4)

	if math.Abs(q.W-expectedW) > 1e-12 {
		t.Errorf("QuatFromAxisRad W: expected %v, got %v", expectedW, q.W)
	}
	if math.Abs(q.Y-expectedY) > 1e-12 {
		t.Errorf("QuatFromAxisRad Y: expected %v, got %v", expectedY, q.Y)
	}

	deg := QuatFromAxisDeg(Vec3{X: 0, Y: 5, Z: 0}, 90)
	if math.Abs(deg.W-q.W) > 1e-12 || math.Abs(deg.Y-q.Y) > 1e-12 {
		t.Errorf("QuatFromAxisDeg with unnormalized axis = %v, want %v", deg, q)
	}
}

func TestQuatFromAxisZeroAxis(t *testing.T) {
	q := QuatFromAxisRad(Vec3{}, 1.2)
	if !q.IsIdentity() {
		t.Errorf("zero axis should give identity, got %v", q)
	}
}

func TestQuatFromAxisNegativeAngle(t *testing.T) {
	// -π/2 folds to π - π/2 = π/2.
	neg := QuatFromAxisRad(Vec3{Z: 1}, -math.Pi/2)
	pos := QuatFromAxisRad(Vec3{Z: 1}, math.Pi/2)
	if math.Abs(neg.W-pos.W) > 1e-12 || math.Abs(neg.Z-pos.Z) > 1e-12 {
		t.Errorf("negative angle fold: got %v, want %v", neg, pos)
	}
}

func TestQuatMulMatchesHamilton(t *testing.T) {
	a := QuatFromAxisDeg(Vec3{1, 2, 3}, 40)
	b := QuatFromAxisDeg(Vec3{-1, 0, 2}, 75)

	want := quat.Mul(toNumber(a), toNumber(b))
	got := toNumber(a.Mul(b))
	if quat.Abs(quat.Sub(got, want)) > 1e-12 {
		t.Errorf("Mul = %v, want %v", got, want)
	}

	wantLeft := quat.Mul(toNumber(b), toNumber(a))
	gotLeft := toNumber(a.MulLeft(b))
	if quat.Abs(quat.Sub(gotLeft, wantLeft)) > 1e-12 {
		t.Errorf("MulLeft = %v, want %v", gotLeft, wantLeft)
	}

	if quat.Abs(quat.Sub(got, gotLeft)) < 1e-6 {
		t.Error("Mul and MulLeft should differ for non-commuting rotations")
	}
}

func TestQuatInvert(t *testing.T) {
	q := QuatFromAxisDeg(Vec3{0, 1, 1}, 30)
	inv := q.Invert()
	if inv.X != -q.X || inv.Y != -q.Y || inv.Z != -q.Z || inv.W != q.W {
		t.Errorf("Invert = %v, want conjugate of %v", inv, q)
	}
	if p := q.Mul(inv); !p.IsIdentityWithTol(1e-12) {
		t.Errorf("q * q⁻¹ = %v, want identity", p)
	}
}

func TestQuatTransformIdentity(t *testing.T) {
	vectors := []Vec3{{1, 0, 0}, {0.3, -2, 5}, {0.0435, -0.0929, 0.0002}}
	for _, v := range vectors {
		got := QuatIdentity().Transform(v)
		if !got.EqualWithTolerance(v, 1e-15) {
			t.Errorf("identity Transform(%v) = %v", v, got)
		}
	}
}

func TestQuatTransformRotates(t *testing.T) {
	q := QuatFromAxisDeg(Vec3{Z: 1}, 90)
	got := q.Transform(Vec3{1, 0, 0})
	want := Vec3{0, 1, 0}
	if !got.EqualWithTolerance(want, 1e-12) {
		t.Errorf("90° about z: Transform(x) = %v, want %v", got, want)
	}
}

func TestQuatFromCross(t *testing.T) {
	q := QuatFromCross(Vec3{1, 0, 0}, Vec3{0, 1, 0})
	got := q.Transform(Vec3{1, 0, 0})
	if !got.EqualWithTolerance(Vec3{0, 1, 0}, 1e-12) {
		t.Errorf("FromCross(x,y) maps x to %v, want y", got)
	}
}

func TestQuatFromAttitude(t *testing.T) {
	level := QuatFromAttitude(0, 0)
	if level != (Quat{X: 0, Y: 0, Z: -1, W: 0}) {
		t.Errorf("level attitude = %v, want (0,0,-1,0)", level)
	}

	// Rotating down by the attitude should land on the measured gravity vector.
	q := QuatFromAttitude(10, 0)
	got := q.Transform(Vec3{0, 0, -1})
	want := Vec3{math.Sin(Rad(10)), 0, math.Cos(Rad(10))}
	if !got.EqualWithTolerance(want, 1e-9) {
		t.Errorf("attitude Transform(down) = %v, want %v", got, want)
	}
}

func TestQuatAddScaleEqual(t *testing.T) {
	a := Quat{1, 2, 3, 4}
	if got := a.Add(a); !got.Equal(a.ScaleBy(2)) {
		t.Errorf("a+a = %v, want 2a = %v", got, a.ScaleBy(2))
	}
	if a.Equal(Quat{1, 2, 3, 4.1}) {
		t.Error("different quaternions should not be equal")
	}
}
