package collide2d

import "fmt"

/// A circle shape.
type Circle struct {
	/// Position
	Centre Vec2
	Radius float64
}

func MakeCircle(radius float64, centre Vec2) Circle {
	return Circle{
		Centre: centre,
		Radius: radius,
	}
}

func NewCircle(radius float64, centre Vec2) *Circle {
	res := MakeCircle(radius, centre)
	return &res
}

///////////////////////////////////////////////////////////////////////////////

func (shape Circle) Clone() Shape {
	clone := NewCircle(shape.Radius, shape.Centre)
	return clone
}

func (shape Circle) GetType() uint8 {
	return Shape_Type.E_circle
}

/// Only the centre moves; the radius is unaffected by rotation.
func (shape *Circle) Rotate(degrees float64, origin Vec2) {
	shape.Centre = RotateVector(shape.Centre, degrees, origin)
}

func (shape *Circle) Translate(delta Vec2) {
	shape.Centre.OperatorPlusInplace(delta)
}

func (shape Circle) GetCentroid() Vec2 {
	return shape.Centre
}

func (shape Circle) TestPoint(p Vec2) bool {
	d := Vec2Sub(p, shape.Centre)
	return Vec2Dot(d, d) <= shape.Radius*shape.Radius
}

func (shape Circle) ComputeAABB(aabb *AABB) {
	p := shape.Centre
	aabb.LowerBound.Set(p.X-shape.Radius, p.Y-shape.Radius)
	aabb.UpperBound.Set(p.X+shape.Radius, p.Y+shape.Radius)
}

func (shape Circle) Validate() error {
	if !shape.Centre.IsValid() || !IsValid(shape.Radius) {
		return fmt.Errorf("%w: circle has non-finite values", ErrDegenerateShape)
	}

	if shape.Radius <= 0.0 {
		return fmt.Errorf("%w: circle radius %v is not positive", ErrDegenerateShape, shape.Radius)
	}

	return nil
}
