package collide2d

import "math"

/// Segment/segment intersection. Every segment test in the package goes
/// through the orientation test below: the sign of the cross product of an
/// edge with the vector to a point tells which side of the edge the point is
/// on, so no slopes are ever divided.

type IntersectionResult struct {
	Intersecting bool
	Point        Vec2
}

/// Signed, scaled distance of p from the infinite line through start and
/// end. Values within LinearTolerance of the line are snapped to zero.
func orientation(start, end, p Vec2) float64 {
	d := Vec2Sub(end, start)
	o := Vec2Cross(d, Vec2Sub(p, start))

	if math.Abs(o) <= LinearTolerance*d.Length() {
		return 0.0
	}

	return o
}

func pointOnSegment(p, start, end Vec2) bool {
	d := Vec2Sub(end, start)
	lengthSqr := Vec2Dot(d, d)

	if lengthSqr == 0.0 {
		return Vec2Distance(p, start) <= LinearTolerance
	}

	if orientation(start, end, p) != 0.0 {
		return false
	}

	t := Vec2Dot(Vec2Sub(p, start), d)
	return t >= 0.0 && t <= lengthSqr
}

/// Both segments lie on the same line; they intersect where their
/// projections onto it overlap.
func collinearIntersection(aStart, aEnd, bStart, bEnd Vec2) IntersectionResult {
	d := Vec2Sub(aEnd, aStart)
	lengthSqr := Vec2Dot(d, d)

	t0 := Vec2Dot(Vec2Sub(bStart, aStart), d) / lengthSqr
	t1 := Vec2Dot(Vec2Sub(bEnd, aStart), d) / lengthSqr

	lo := math.Max(0.0, math.Min(t0, t1))
	hi := math.Min(1.0, math.Max(t0, t1))

	if lo > hi {
		return IntersectionResult{}
	}

	return IntersectionResult{
		Intersecting: true,
		Point:        Vec2Add(aStart, Vec2MulScalar((lo+hi)*0.5, d)),
	}
}

func segmentIntersection(aStart, aEnd, bStart, bEnd Vec2) IntersectionResult {

	// Zero-length segments are points.
	aPoint := Vec2Equals(aStart, aEnd)
	bPoint := Vec2Equals(bStart, bEnd)

	if aPoint && bPoint {
		if Vec2Distance(aStart, bStart) <= LinearTolerance {
			return IntersectionResult{Intersecting: true, Point: aStart}
		}
		return IntersectionResult{}
	}

	if aPoint {
		if pointOnSegment(aStart, bStart, bEnd) {
			return IntersectionResult{Intersecting: true, Point: aStart}
		}
		return IntersectionResult{}
	}

	if bPoint {
		if pointOnSegment(bStart, aStart, aEnd) {
			return IntersectionResult{Intersecting: true, Point: bStart}
		}
		return IntersectionResult{}
	}

	// Which side of B are A's end points on, and vice versa.
	d1 := orientation(bStart, bEnd, aStart)
	d2 := orientation(bStart, bEnd, aEnd)
	d3 := orientation(aStart, aEnd, bStart)
	d4 := orientation(aStart, aEnd, bEnd)

	if d1 == 0.0 && d2 == 0.0 {
		return collinearIntersection(aStart, aEnd, bStart, bEnd)
	}

	if d1*d2 > 0.0 || d3*d4 > 0.0 {
		return IntersectionResult{}
	}

	// d1 and d2 differ here, so A crosses B's line at fraction t.
	t := d1 / (d1 - d2)

	return IntersectionResult{
		Intersecting: true,
		Point:        Vec2Add(aStart, Vec2MulScalar(t, Vec2Sub(aEnd, aStart))),
	}
}

/// Report whether segment a intersects segment b. End points count.
func Intersects(aStart, aEnd, bStart, bEnd Vec2) bool {
	return segmentIntersection(aStart, aEnd, bStart, bEnd).Intersecting
}

/// Intersect two segments. For overlapping collinear segments the point is
/// the middle of the shared part. The point is zero when they do not meet.
func GetIntersection(l1, l2 Line) IntersectionResult {
	return segmentIntersection(l1.Start, l1.End, l2.Start, l2.End)
}

func IsIntersecting(l1, l2 Line) IntersectionResult {
	return GetIntersection(l1, l2)
}
