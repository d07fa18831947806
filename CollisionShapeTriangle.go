package collide2d

import (
	"fmt"
	"math"
)

/// A triangle shape. The winding of the vertices is not fixed.
type Triangle struct {
	A, B, C Vec2
}

func MakeTriangle(a, b, c Vec2) Triangle {
	return Triangle{
		A: a,
		B: b,
		C: c,
	}
}

func NewTriangle(a, b, c Vec2) *Triangle {
	res := MakeTriangle(a, b, c)
	return &res
}

///////////////////////////////////////////////////////////////////////////////

func (shape Triangle) Clone() Shape {
	return NewTriangle(shape.A, shape.B, shape.C)
}

func (shape Triangle) GetType() uint8 {
	return Shape_Type.E_triangle
}

func (shape *Triangle) Rotate(degrees float64, origin Vec2) {
	shape.A = RotateVector(shape.A, degrees, origin)
	shape.B = RotateVector(shape.B, degrees, origin)
	shape.C = RotateVector(shape.C, degrees, origin)
}

func (shape *Triangle) Translate(delta Vec2) {
	shape.A.OperatorPlusInplace(delta)
	shape.B.OperatorPlusInplace(delta)
	shape.C.OperatorPlusInplace(delta)
}

func (shape Triangle) GetCentroid() Vec2 {
	return MakeVec2(
		(shape.A.X+shape.B.X+shape.C.X)/3.0,
		(shape.A.Y+shape.B.Y+shape.C.Y)/3.0,
	)
}

/// Vertices in A, B, C order.
func (shape Triangle) GetVertices() [3]Vec2 {
	return [3]Vec2{shape.A, shape.B, shape.C}
}

/// Edges in AB, BC, CA order; edge i starts at vertex i.
func (shape Triangle) GetEdges() [3]Line {
	return [3]Line{
		MakeLine(shape.A, shape.B),
		MakeLine(shape.B, shape.C),
		MakeLine(shape.C, shape.A),
	}
}

/// Strict containment: points on the boundary are outside.
func (shape Triangle) TestPoint(p Vec2) bool {
	localisation := Localise(shape)
	return PointInLocalisedTriangle(localisation.ToLocal(p), localisation.Triangle)
}

func (shape Triangle) ComputeAABB(aabb *AABB) {
	*aabb = MakeAABBFromPoints(shape.A, shape.B, shape.C)
}

/// Twice the signed area; positive for counter-clockwise winding.
func (shape Triangle) SignedDoubleArea() float64 {
	return Vec2Cross(Vec2Sub(shape.B, shape.A), Vec2Sub(shape.C, shape.A))
}

func (shape Triangle) Validate() error {
	if !shape.A.IsValid() || !shape.B.IsValid() || !shape.C.IsValid() {
		return fmt.Errorf("%w: triangle has non-finite values", ErrDegenerateShape)
	}

	longest := math.Max(
		Vec2Distance(shape.A, shape.B),
		math.Max(Vec2Distance(shape.B, shape.C), Vec2Distance(shape.C, shape.A)),
	)

	// The height over the longest edge must be measurable.
	if longest == 0.0 || math.Abs(shape.SignedDoubleArea()) <= LinearTolerance*longest {
		return fmt.Errorf("%w: triangle has zero area", ErrDegenerateShape)
	}

	return nil
}
