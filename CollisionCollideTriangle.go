package collide2d

import "math"

/// Perpendicular distance from p to the infinite line through start and end.
func perpendicularDistance(p, start, end Vec2) float64 {
	d := Vec2Sub(end, start)
	length := d.Length()
	if length == 0.0 {
		return Vec2Distance(p, start)
	}

	return math.Abs(Vec2Cross(d, Vec2Sub(p, start))) / length
}

/// Unit normal of the edge start→end facing away from centroid.
func outwardNormal(start, end, centroid Vec2) Vec2 {
	normal := Vec2Normalize(Vec2Sub(end, start).Skew())
	if Vec2Dot(normal, Vec2Sub(centroid, start)) > 0.0 {
		normal = normal.OperatorNegate()
	}

	return normal
}

/// Indices of the vertices of t that lie strictly inside the localised
/// triangle.
func verticesInside(t Triangle, localisation TriangleLocalisation) []int {
	inside := make([]int, 0, 3)
	for i, v := range t.GetVertices() {
		if PointInLocalisedTriangle(localisation.ToLocal(v), localisation.Triangle) {
			inside = append(inside, i)
		}
	}

	return inside
}

func meanVertex(vertices [3]Vec2, indices []int) Vec2 {
	sum := MakeVec2(0, 0)
	for _, i := range indices {
		sum.OperatorPlusInplace(vertices[i])
	}

	sum.OperatorScalarMulInplace(1.0 / float64(len(indices)))
	return sum
}

/// Pick the host edge the intruder's vertices came through.
/// The candidates are the host edges crossed by an intruder edge leaving one
/// of the inside vertices (every host edge when none is crossed). The chosen
/// edge is the candidate with the smallest worst-case penetration over all
/// inside vertices. Returns the edge's outward normal, which is the direction
/// the intruder has to move, and half that penetration.
func tightestEdge(host, intruder Triangle, inside []int) (Vec2, float64) {

	hv := host.GetVertices()
	iv := intruder.GetVertices()
	centroid := host.GetCentroid()

	var candidates [3]bool
	crossed := false

	for _, i := range inside {
		v := iv[i]
		next := iv[(i+1)%3]
		prev := iv[(i+2)%3]

		for e := 0; e < 3; e++ {
			start := hv[e]
			end := hv[(e+1)%3]
			if Intersects(v, next, start, end) || Intersects(v, prev, start, end) {
				candidates[e] = true
				crossed = true
			}
		}
	}

	bestNormal := MakeVec2(0, 0)
	bestDepth := MaxFloat

	for e := 0; e < 3; e++ {
		if crossed && !candidates[e] {
			continue
		}

		start := hv[e]
		end := hv[(e+1)%3]

		penetration := 0.0
		for _, i := range inside {
			penetration = math.Max(penetration, perpendicularDistance(iv[i], start, end))
		}

		if penetration < bestDepth {
			bestDepth = penetration
			bestNormal = outwardNormal(start, end, centroid)
		}
	}

	return bestNormal, bestDepth * DepthScale
}

/// Build the contact for an intruder with at least as many vertices inside
/// the host as the host has inside the intruder. The normal is the
/// direction in which the intruder has to move.
func resolveTriangles(host, intruder Triangle, intruderInside, hostInside []int) CollisionResult {

	normal, depth := tightestEdge(host, intruder, intruderInside)
	v := meanVertex(intruder.GetVertices(), intruderInside)

	if len(hostInside) == 0 {
		var point Vec2
		if len(intruderInside) == 1 {
			toCentroid := Vec2Normalize(Vec2Sub(host.GetCentroid(), v))
			point = Vec2Add(v, Vec2MulScalar(depth, toCentroid))
		} else {
			point = Vec2Sub(v, Vec2MulScalar(depth, normal))
		}

		return MakeCollisionResult(normal, point, depth)
	}

	// Both triangles poke into each other: pair the two (mean) vertices.
	w := meanVertex(host.GetVertices(), hostInside)
	point := Vec2Midpoint(v, w)

	between := Vec2Sub(w, v)
	vertexDepth := between.Length() * DepthScale

	if between.Normalize() > 0.0 && vertexDepth <= depth {
		normal = between
		depth = vertexDepth
	}

	// Edge estimate for the host's vertices in the intruder. That edge's
	// outward normal moves the host, so the intruder moves the other way.
	reverseNormal, reverseDepth := tightestEdge(intruder, host, hostInside)
	if reverseDepth < depth {
		normal = reverseNormal.OperatorNegate()
		depth = reverseDepth
	}

	return MakeCollisionResult(normal, point, depth)
}

/// Compute the contact between two triangles. The normal points from b
/// towards a.
/// A triangle entirely inside the other is reported as not colliding.
func CollideTriangles(a, b Triangle) CollisionResult {

	var aabbA, aabbB AABB
	a.ComputeAABB(&aabbA)
	b.ComputeAABB(&aabbB)
	if !TestOverlapBoundingBoxesStrict(aabbA, aabbB) {
		return noCollision()
	}

	localisationA := Localise(a)
	localisationB := Localise(b)

	inA := verticesInside(b, localisationA)
	inB := verticesInside(a, localisationB)

	// Full containment is not handled.
	if len(inA) == 3 || len(inB) == 3 {
		return noCollision()
	}

	if len(inA) == 0 && len(inB) == 0 {
		return noCollision()
	}

	if len(inA) >= len(inB) {
		// b intrudes into a; a moves the opposite way.
		return resolveTriangles(a, b, inA, inB).Flipped()
	}

	return resolveTriangles(b, a, inB, inA)
}
