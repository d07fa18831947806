package collide2d

import (
	"fmt"
	"math"
)

/// A line segment. Lines are used both as a shape and as the edges of a
/// triangle.
type Line struct {
	Start Vec2
	End   Vec2
}

func MakeLine(start, end Vec2) Line {
	return Line{
		Start: start,
		End:   end,
	}
}

func NewLine(start, end Vec2) *Line {
	res := MakeLine(start, end)
	return &res
}

///////////////////////////////////////////////////////////////////////////////

func (shape Line) Clone() Shape {
	return NewLine(shape.Start, shape.End)
}

func (shape Line) GetType() uint8 {
	return Shape_Type.E_line
}

func (shape *Line) Set(start, end Vec2) {
	shape.Start = start
	shape.End = end
}

func (shape *Line) Rotate(degrees float64, origin Vec2) {
	shape.Start = RotateVector(shape.Start, degrees, origin)
	shape.End = RotateVector(shape.End, degrees, origin)
}

func (shape *Line) Translate(delta Vec2) {
	shape.Start.OperatorPlusInplace(delta)
	shape.End.OperatorPlusInplace(delta)
}

func (shape Line) GetCentroid() Vec2 {
	return shape.Midpoint()
}

func (shape Line) Midpoint() Vec2 {
	return Vec2Midpoint(shape.Start, shape.End)
}

func (shape Line) Length() float64 {
	return Vec2Distance(shape.Start, shape.End)
}

/// Get the component-wise minimum of the two end points.
func (shape Line) GetMin() Vec2 {
	return Vec2Min(shape.Start, shape.End)
}

/// Get the component-wise maximum of the two end points.
func (shape Line) GetMax() Vec2 {
	return Vec2Max(shape.Start, shape.End)
}

func (shape Line) IsVertical() bool {
	return shape.Start.X == shape.End.X
}

func (shape Line) IsHorizontal() bool {
	return shape.Start.Y == shape.End.Y
}

/// The slope of the infinite line. Vertical lines report +Inf or -Inf
/// (NaN for a zero-length line); test IsVertical first.
func (shape Line) GetGradient() float64 {
	dx := shape.End.X - shape.Start.X
	dy := shape.End.Y - shape.Start.Y
	if dx == 0.0 {
		if dy == 0.0 {
			return math.NaN()
		}
		return math.Inf(int(math.Copysign(1, dy)))
	}

	return dy / dx
}

/// The y value where the infinite line crosses x = 0. Undefined (NaN) for
/// vertical lines.
func (shape Line) GetIntercept() float64 {
	if shape.IsVertical() {
		return math.NaN()
	}

	return shape.Start.Y - shape.GetGradient()*shape.Start.X
}

/// A point is on the segment when it is within LinearTolerance of it.
func (shape Line) TestPoint(p Vec2) bool {
	return pointOnSegment(p, shape.Start, shape.End)
}

func (shape Line) ComputeAABB(aabb *AABB) {
	aabb.LowerBound = shape.GetMin()
	aabb.UpperBound = shape.GetMax()
}

func (shape Line) Validate() error {
	if !shape.Start.IsValid() || !shape.End.IsValid() {
		return fmt.Errorf("%w: line has non-finite values", ErrDegenerateShape)
	}

	if Vec2Equals(shape.Start, shape.End) {
		return fmt.Errorf("%w: line has zero length", ErrDegenerateShape)
	}

	return nil
}
