package collide2d

/// The contact between two shapes.
/// Normal is the unit direction in which the first shape has to move to
/// separate from the second one, i.e. it points from the second shape's
/// surface towards the first. Point is the contact point in world
/// coordinates and Depth is half the overlap along Normal.
/// When Colliding is false every other field is zero.
type CollisionResult struct {
	Colliding bool
	Normal    Vec2
	Point     Vec2
	Depth     float64
}

func MakeCollisionResult(normal, point Vec2, depth float64) CollisionResult {
	return CollisionResult{
		Colliding: true,
		Normal:    normal,
		Point:     point,
		Depth:     depth,
	}
}

func noCollision() CollisionResult {
	return CollisionResult{}
}

/// The same contact seen from the other shape.
func (r CollisionResult) Flipped() CollisionResult {
	if !r.Colliding {
		return r
	}

	r.Normal = r.Normal.OperatorNegate()
	return r
}
