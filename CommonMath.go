package collide2d

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

///////////////////////////////////////////////////////////////////////////////
///////////////////////////////////////////////////////////////////////////////
///////////////////////////////////////////////////////////////////////////////
// Math
///////////////////////////////////////////////////////////////////////////////
///////////////////////////////////////////////////////////////////////////////
///////////////////////////////////////////////////////////////////////////////

/// This function is used to ensure that a floating point number is not a NaN or infinity.
func IsValid(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

///////////////////////////////////////////////////////////////////////////////
/// A 2D column vector.
///////////////////////////////////////////////////////////////////////////////
type Vec2 struct {
	X, Y float64
}

func MakeVec2(xIn, yIn float64) Vec2 {
	return Vec2{
		X: xIn,
		Y: yIn,
	}
}

/// Set this vector to some specified coordinates.
func (v *Vec2) Set(x, y float64) {
	v.X = x
	v.Y = y
}

/// Negate this vector.
func (v Vec2) OperatorNegate() Vec2 {
	return MakeVec2(
		-v.X,
		-v.Y,
	)
}

/// Add a vector to this vector.
func (v *Vec2) OperatorPlusInplace(other Vec2) {
	v.X += other.X
	v.Y += other.Y
}

/// Multiply this vector by a scalar.
func (v *Vec2) OperatorScalarMulInplace(a float64) {
	v.X *= a
	v.Y *= a
}

/// Get the length of this vector (the norm).
func (v Vec2) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

/// Get the length squared. For performance, use this instead of
/// Vec2.Length (if possible).
func (v Vec2) LengthSquared() float64 {
	return v.X*v.X + v.Y*v.Y
}

/// Convert this vector into a unit vector. Returns the length.
/// A zero vector is left untouched and 0 is returned.
func (v *Vec2) Normalize() float64 {

	length := v.Length()

	if length < Epsilon {
		return 0.0
	}

	invLength := 1.0 / length
	v.X *= invLength
	v.Y *= invLength

	return length
}

/// Does this vector contain finite coordinates?
func (v Vec2) IsValid() bool {
	return IsValid(v.X) && IsValid(v.Y)
}

/// Get the skew vector such that dot(skew_vec, other) == cross(vec, other).
/// This is the vector rotated a quarter turn counter-clockwise.
func (v Vec2) Skew() Vec2 {
	return MakeVec2(-v.Y, v.X)
}

/// Perform the dot product on two vectors.
func Vec2Dot(a, b Vec2) float64 {
	return a.X*b.X + a.Y*b.Y
}

/// Perform the cross product on two vectors. In 2D this produces a scalar.
func Vec2Cross(a, b Vec2) float64 {
	return a.X*b.Y - a.Y*b.X
}

/// Add two vectors component-wise.
func Vec2Add(a, b Vec2) Vec2 {
	return MakeVec2(a.X+b.X, a.Y+b.Y)
}

/// Subtract two vectors component-wise.
func Vec2Sub(a, b Vec2) Vec2 {
	return MakeVec2(a.X-b.X, a.Y-b.Y)
}

func Vec2MulScalar(s float64, a Vec2) Vec2 {
	return MakeVec2(s*a.X, s*a.Y)
}

func Vec2Equals(a, b Vec2) bool {
	return a.X == b.X && a.Y == b.Y
}

func Vec2NotEquals(a, b Vec2) bool {
	return a.X != b.X || a.Y != b.Y
}

func Vec2Distance(a, b Vec2) float64 {
	return Vec2Sub(a, b).Length()
}

func Vec2DistanceSquared(a, b Vec2) float64 {
	c := Vec2Sub(a, b)
	return Vec2Dot(c, c)
}

func Vec2Min(a, b Vec2) Vec2 {
	return MakeVec2(
		math.Min(a.X, b.X),
		math.Min(a.Y, b.Y),
	)
}

func Vec2Max(a, b Vec2) Vec2 {
	return MakeVec2(
		math.Max(a.X, b.X),
		math.Max(a.Y, b.Y),
	)
}

func Vec2Midpoint(a, b Vec2) Vec2 {
	return MakeVec2((a.X+b.X)*0.5, (a.Y+b.Y)*0.5)
}

/// Return a unit vector in the direction of a, or the zero vector when a is
/// too short to normalize.
func Vec2Normalize(a Vec2) Vec2 {
	res := a
	res.Normalize()
	return res
}

///////////////////////////////////////////////////////////////////////////////
/// Rotation
///////////////////////////////////////////////////////////////////////////////

func DegreesToRadians(degrees float64) float64 {
	return mgl64.DegToRad(degrees)
}

func RadiansToDegrees(radians float64) float64 {
	return mgl64.RadToDeg(radians)
}

/// Build the counter-clockwise rotation matrix for an angle in degrees.
/// Quarter turns use exact sine and cosine values so that rotating an
/// axis-aligned vector by a multiple of 90 degrees stays axis-aligned.
func rotationMatrix(degrees float64) mgl64.Mat2 {
	turn := math.Mod(degrees, 360.0)
	if turn < 0 {
		turn += 360.0
	}

	switch turn {
	case 0:
		return mgl64.Ident2()
	case 90:
		return mgl64.Mat2{0, 1, -1, 0}
	case 180:
		return mgl64.Mat2{-1, 0, 0, -1}
	case 270:
		return mgl64.Mat2{0, -1, 1, 0}
	}

	return mgl64.Rotate2D(DegreesToRadians(degrees))
}

/// Rotate point counter-clockwise by degrees about origin.
func RotateVector(point Vec2, degrees float64, origin Vec2) Vec2 {
	rel := Vec2Sub(point, origin)
	rotated := rotationMatrix(degrees).Mul2x1(mgl64.Vec2{rel.X, rel.Y})
	return MakeVec2(rotated[0]+origin.X, rotated[1]+origin.Y)
}
