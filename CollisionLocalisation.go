package collide2d

import "math"

/// A triangle moved into its canonical frame: the longest edge AB lies on
/// the positive x axis with A at the origin and C on or above it. Rotation
/// (degrees, about the world origin) is applied first, then Translation.
type TriangleLocalisation struct {
	Triangle    Triangle
	Rotation    float64
	Translation Vec2
}

/// Move the triangle into its canonical frame and record how.
func Localise(t Triangle) TriangleLocalisation {

	origin := MakeVec2(0, 0)
	rotation := 0.0

	// Make AB the longest edge.
	ab2 := Vec2DistanceSquared(t.B, t.A)
	ac2 := Vec2DistanceSquared(t.C, t.A)
	bc2 := Vec2DistanceSquared(t.C, t.B)
	longest := math.Max(math.Max(ab2, ac2), bc2)

	if ab2 != longest {
		if ac2 == longest {
			t.B, t.C = t.C, t.B
		} else {
			t.A, t.B, t.C = t.B, t.C, t.A
		}
	}

	// A vertical AB has no finite slope, turn it a quarter first.
	ab := Vec2Sub(t.B, t.A)
	if ab.X == 0.0 {
		t.Rotate(90.0, origin)
		rotation += 90.0
	}

	// Make AB horizontal. A zero-length AB has no direction to align.
	ab = Vec2Sub(t.B, t.A)
	if ab.X != 0.0 {
		angle := RadiansToDegrees(math.Atan(ab.Y / ab.X))
		t.Rotate(-angle, origin)
		rotation -= angle
	}

	// C goes above AB.
	if t.C.Y-t.A.Y < 0.0 {
		t.Rotate(180.0, origin)
		rotation += 180.0
	}

	// AB runs left to right.
	if t.B.X < t.A.X {
		t.A, t.B = t.B, t.A
	}

	translation := t.A.OperatorNegate()
	t.Translate(translation)

	return TriangleLocalisation{
		Triangle:    t,
		Rotation:    rotation,
		Translation: translation,
	}
}

/// Map a world point into the canonical frame.
func (l TriangleLocalisation) ToLocal(p Vec2) Vec2 {
	return Vec2Add(RotateVector(p, l.Rotation, MakeVec2(0, 0)), l.Translation)
}

/// Map a canonical-frame point back to world space.
func (l TriangleLocalisation) ToWorld(p Vec2) Vec2 {
	return RotateVector(Vec2Sub(p, l.Translation), -l.Rotation, MakeVec2(0, 0))
}

/// Map a world direction into the canonical frame. Directions only rotate.
func (l TriangleLocalisation) DirectionToLocal(d Vec2) Vec2 {
	return RotateVector(d, l.Rotation, MakeVec2(0, 0))
}

func (l TriangleLocalisation) DirectionToWorld(d Vec2) Vec2 {
	return RotateVector(d, -l.Rotation, MakeVec2(0, 0))
}

/// Map a whole triangle into the canonical frame.
func (l TriangleLocalisation) TriangleToLocal(t Triangle) Triangle {
	t.Rotate(l.Rotation, MakeVec2(0, 0))
	t.Translate(l.Translation)
	return t
}

func (l TriangleLocalisation) TriangleToWorld(t Triangle) Triangle {
	t.Translate(l.Translation.OperatorNegate())
	t.Rotate(-l.Rotation, MakeVec2(0, 0))
	return t
}

/// Signed distance of point above the infinite line through start and end,
/// measured perpendicular to the line. When the line is vertical, the
/// point's height over start is used.
func heightAbove(point, start, end Vec2) float64 {
	if start.X == end.X {
		return point.Y - start.Y
	}

	m := (end.Y - start.Y) / (end.X - start.X)
	lineY := m*(point.X-start.X) + start.Y
	return (point.Y - lineY) / math.Sqrt(1.0+m*m)
}

func above(point, start, end Vec2) bool {
	return heightAbove(point, start, end) > LinearTolerance
}

func below(point, start, end Vec2) bool {
	return heightAbove(point, start, end) < -LinearTolerance
}

/// Strict containment test for a point and a triangle that are both in the
/// triangle's canonical frame (see Localise). The point has to be more than
/// LinearTolerance inside every edge, so a vertex shared with a neighbouring
/// triangle never counts as inside it.
func PointInLocalisedTriangle(point Vec2, localised Triangle) bool {
	return above(point, localised.A, localised.B) &&
		below(point, localised.A, localised.C) &&
		below(point, localised.C, localised.B)
}
