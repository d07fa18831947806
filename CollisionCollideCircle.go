package collide2d

import "math"

/// Compute the contact between two circles. Circles that exactly touch
/// collide with zero depth.
func CollideCircles(circleA, circleB Circle) CollisionResult {

	rA := circleA.Radius
	rB := circleB.Radius
	radius := rA + rB

	d := Vec2Sub(circleA.Centre, circleB.Centre)
	distSqr := d.LengthSquared()
	if distSqr > radius*radius {
		return noCollision()
	}

	distance := math.Sqrt(distSqr)
	depth := math.Abs(distance-radius) * DepthScale

	normal := MakeVec2(0.0, 1.0)
	if distance > 0.0 {
		normal = Vec2MulScalar(1.0/distance, d)
	}

	// Middle of the overlap, on the line between the centres.
	point := Vec2Sub(circleA.Centre, Vec2MulScalar(rA-depth, normal))

	return MakeCollisionResult(normal, point, depth)
}

/// Compute the contact between a circle and a single point, e.g. a
/// triangle corner.
func CollideCircleAndPoint(circle Circle, p Vec2) CollisionResult {

	difference := Vec2Sub(circle.Centre, p)
	if difference.LengthSquared() >= circle.Radius*circle.Radius {
		return noCollision()
	}

	normal := Vec2Normalize(difference)
	if Vec2Equals(normal, MakeVec2(0, 0)) {
		normal = MakeVec2(0.0, 1.0)
	}

	depthVector := Vec2MulScalar(DepthScale, Vec2Sub(Vec2MulScalar(circle.Radius, normal), difference))
	depth := depthVector.Length()
	point := Vec2Sub(p, depthVector)

	return MakeCollisionResult(normal, point, depth)
}

/// Test a circle against one side of a segment. The segment is moved so
/// that start is at the origin and end on the positive x axis; only a
/// circle centre on the +y side (left of start→end) whose perpendicular
/// foot lands on the segment can hit. The other side and the end points
/// are left to the caller.
func collideCircleAndSegment(centre Vec2, radius float64, start, end Vec2) CollisionResult {

	origin := MakeVec2(0, 0)
	d := Vec2Sub(end, start)

	rotation := -90.0
	if d.X != 0.0 {
		rotation = -RadiansToDegrees(math.Atan(d.Y / d.X))
	}

	localEnd := RotateVector(d, rotation, origin)
	if localEnd.X < 0.0 {
		rotation += 180.0
		localEnd = RotateVector(d, rotation, origin)
	}

	local := RotateVector(Vec2Sub(centre, start), rotation, origin)

	if local.X < 0.0 || local.X > localEnd.X {
		return noCollision()
	}

	if local.Y < 0.0 || local.Y >= radius {
		return noCollision()
	}

	depth := (radius - local.Y) * DepthScale
	normal := RotateVector(MakeVec2(0.0, 1.0), -rotation, origin)
	point := Vec2Add(RotateVector(MakeVec2(local.X, -depth), -rotation, origin), start)

	return MakeCollisionResult(normal, point, depth)
}

/// Compute the contact between a circle and a triangle. The normal points
/// from the triangle towards the circle.
/// Only edges whose outer side holds the centre and corners within radius
/// can hit. A centre inside the triangle that is more than a radius from
/// every corner is reported as not colliding.
func CollideCircleAndTriangle(circle Circle, triangle Triangle) CollisionResult {

	// The circle centre has to be within radius of the triangle's box.
	var aabb AABB
	triangle.ComputeAABB(&aabb)
	if !aabb.Expand(circle.Radius).ContainsPoint(circle.Centre) {
		return noCollision()
	}

	localisation := Localise(triangle)
	lt := localisation.Triangle
	centre := localisation.ToLocal(circle.Centre)

	// In the canonical frame the triangle winds B→A→C→B clockwise, so the
	// outside of each of these edges is on its +y side.
	edges := [3]Line{
		MakeLine(lt.B, lt.A),
		MakeLine(lt.A, lt.C),
		MakeLine(lt.C, lt.B),
	}

	for _, edge := range edges {
		result := collideCircleAndSegment(centre, circle.Radius, edge.Start, edge.End)
		if result.Colliding {
			result.Normal = localisation.DirectionToWorld(result.Normal)
			result.Point = localisation.ToWorld(result.Point)
			return result
		}
	}

	for _, corner := range triangle.GetVertices() {
		result := CollideCircleAndPoint(circle, corner)
		if result.Colliding {
			return result
		}
	}

	return noCollision()
}

/// Same as CollideCircleAndTriangle with the normal pointing from the
/// circle towards the triangle.
func CollideTriangleAndCircle(triangle Triangle, circle Circle) CollisionResult {
	return CollideCircleAndTriangle(circle, triangle).Flipped()
}
