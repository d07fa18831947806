package collide2d

import "errors"

/// Returned (wrapped) by Shape.Validate when a shape cannot produce a
/// meaningful contact: a non-positive radius, a zero-area triangle, a
/// zero-length line or non-finite coordinates.
var ErrDegenerateShape = errors.New("degenerate shape")

/// A shape is used for collision detection. Shapes are small value types;
/// Rotate and Translate mutate the receiver in place, every collision
/// routine works on copies.

var Shape_Type = struct {
	E_circle    uint8
	E_triangle  uint8
	E_line      uint8
	E_typeCount uint8
}{
	E_circle:    0,
	E_triangle:  1,
	E_line:      2,
	E_typeCount: 3,
}

func ShapeTypeName(shapeType uint8) string {
	switch shapeType {
	case Shape_Type.E_circle:
		return "circle"
	case Shape_Type.E_triangle:
		return "triangle"
	case Shape_Type.E_line:
		return "line"
	}

	return "unknown"
}

type Shape interface {
	/// Clone the concrete shape.
	Clone() Shape

	/// Get the type of this shape. You can use this to down cast to the concrete shape.
	/// @return the shape type.
	GetType() uint8

	/// Rotate every point of the shape counter-clockwise by degrees about origin.
	Rotate(degrees float64, origin Vec2)

	/// Add delta to every point of the shape.
	Translate(delta Vec2)

	/// Get the centroid of the shape in world coordinates.
	GetCentroid() Vec2

	/// Test a point for containment in this shape.
	/// @param p a point in world coordinates.
	TestPoint(p Vec2) bool

	/// Compute the axis aligned bounding box of the shape.
	/// @param aabb returns the axis aligned box.
	ComputeAABB(aabb *AABB)

	/// Report whether the shape is usable for collision detection.
	Validate() error
}
