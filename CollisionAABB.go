package collide2d

/// An axis aligned bounding box.
type AABB struct {
	LowerBound Vec2 ///< the lower vertex
	UpperBound Vec2 ///< the upper vertex
}

func MakeAABB() AABB {
	return AABB{
		LowerBound: MakeVec2(0, 0),
		UpperBound: MakeVec2(0, 0),
	}
}

/// Build the smallest AABB holding every point.
func MakeAABBFromPoints(points ...Vec2) AABB {
	if len(points) == 0 {
		return MakeAABB()
	}

	bb := AABB{
		LowerBound: points[0],
		UpperBound: points[0],
	}

	for _, p := range points[1:] {
		bb.LowerBound = Vec2Min(bb.LowerBound, p)
		bb.UpperBound = Vec2Max(bb.UpperBound, p)
	}

	return bb
}

/// Get the center of the AABB.
func (bb AABB) GetCenter() Vec2 {
	return Vec2MulScalar(
		0.5,
		Vec2Add(bb.LowerBound, bb.UpperBound),
	)
}

/// Get the extents of the AABB (half-widths).
func (bb AABB) GetExtents() Vec2 {
	return Vec2MulScalar(
		0.5,
		Vec2Sub(bb.UpperBound, bb.LowerBound),
	)
}

/// Get the perimeter length
func (bb AABB) GetPerimeter() float64 {
	wx := bb.UpperBound.X - bb.LowerBound.X
	wy := bb.UpperBound.Y - bb.LowerBound.Y
	return 2.0 * (wx + wy)
}

/// Grow the box by r on every side.
func (bb AABB) Expand(r float64) AABB {
	return AABB{
		LowerBound: MakeVec2(bb.LowerBound.X-r, bb.LowerBound.Y-r),
		UpperBound: MakeVec2(bb.UpperBound.X+r, bb.UpperBound.Y+r),
	}
}

/// Combine an AABB into this one.
func (bb *AABB) CombineInPlace(aabb AABB) {
	bb.LowerBound = Vec2Min(bb.LowerBound, aabb.LowerBound)
	bb.UpperBound = Vec2Max(bb.UpperBound, aabb.UpperBound)
}

/// Does this aabb contain the provided AABB.
func (bb AABB) Contains(aabb AABB) bool {

	return (bb.LowerBound.X <= aabb.LowerBound.X &&
		bb.LowerBound.Y <= aabb.LowerBound.Y &&
		aabb.UpperBound.X <= bb.UpperBound.X &&
		aabb.UpperBound.Y <= bb.UpperBound.Y)
}

/// Does this aabb contain the point, boundary included.
func (bb AABB) ContainsPoint(p Vec2) bool {
	return p.X >= bb.LowerBound.X && p.X <= bb.UpperBound.X &&
		p.Y >= bb.LowerBound.Y && p.Y <= bb.UpperBound.Y
}

func (bb AABB) IsValid() bool {
	d := Vec2Sub(bb.UpperBound, bb.LowerBound)
	valid := d.X >= 0.0 && d.Y >= 0.0
	valid = valid && bb.LowerBound.IsValid() && bb.UpperBound.IsValid()
	return valid
}

/// Boxes that merely touch overlap.
func TestOverlapBoundingBoxes(a, b AABB) bool {

	d1 := Vec2Sub(b.LowerBound, a.UpperBound)
	d2 := Vec2Sub(a.LowerBound, b.UpperBound)

	if d1.X > 0.0 || d1.Y > 0.0 {
		return false
	}

	if d2.X > 0.0 || d2.Y > 0.0 {
		return false
	}

	return true
}

/// Boxes must share interior area to overlap; touching is not enough.
func TestOverlapBoundingBoxesStrict(a, b AABB) bool {

	d1 := Vec2Sub(b.LowerBound, a.UpperBound)
	d2 := Vec2Sub(a.LowerBound, b.UpperBound)

	if d1.X >= 0.0 || d1.Y >= 0.0 {
		return false
	}

	if d2.X >= 0.0 || d2.Y >= 0.0 {
		return false
	}

	return true
}
