package collide2d

import "sync"

/// Collision routine for a pair of shape types. It receives the shapes in
/// the order the routine was registered with.
type CollideFcn func(shapeA Shape, shapeB Shape) CollisionResult

type CollisionRegister struct {
	Fcn     CollideFcn
	Primary bool
}

var s_registers [][]CollisionRegister
var s_registersOnce sync.Once

func collideCircleShapes(shapeA Shape, shapeB Shape) CollisionResult {
	return CollideCircles(*shapeA.(*Circle), *shapeB.(*Circle))
}

func collideCircleAndTriangleShapes(shapeA Shape, shapeB Shape) CollisionResult {
	return CollideCircleAndTriangle(*shapeA.(*Circle), *shapeB.(*Triangle))
}

func collideTriangleShapes(shapeA Shape, shapeB Shape) CollisionResult {
	return CollideTriangles(*shapeA.(*Triangle), *shapeB.(*Triangle))
}

func initializeRegisters() {
	s_registers = make([][]CollisionRegister, Shape_Type.E_typeCount)
	for i := 0; i < int(Shape_Type.E_typeCount); i++ {
		s_registers[i] = make([]CollisionRegister, Shape_Type.E_typeCount)
	}

	addType(collideCircleShapes, Shape_Type.E_circle, Shape_Type.E_circle)
	addType(collideCircleAndTriangleShapes, Shape_Type.E_circle, Shape_Type.E_triangle)
	addType(collideTriangleShapes, Shape_Type.E_triangle, Shape_Type.E_triangle)
}

func addType(fcn CollideFcn, type1 uint8, type2 uint8) {
	s_registers[type1][type2].Fcn = fcn
	s_registers[type1][type2].Primary = true

	if type1 != type2 {
		s_registers[type2][type1].Fcn = fcn
		s_registers[type2][type1].Primary = false
	}
}

func lookupRegister(type1 uint8, type2 uint8) CollisionRegister {
	s_registersOnce.Do(initializeRegisters)

	if type1 >= Shape_Type.E_typeCount || type2 >= Shape_Type.E_typeCount {
		return CollisionRegister{}
	}

	return s_registers[type1][type2]
}

/// Report whether Collide has a routine for this pair of shapes.
func CanCollide(shapeA Shape, shapeB Shape) bool {
	return lookupRegister(shapeA.GetType(), shapeB.GetType()).Fcn != nil
}

/// Compute the contact between any two shapes. The normal points from
/// shapeB towards shapeA. Pairs without a routine (anything involving a
/// Line) never collide.
func Collide(shapeA Shape, shapeB Shape) CollisionResult {
	register := lookupRegister(shapeA.GetType(), shapeB.GetType())
	if register.Fcn == nil {
		return noCollision()
	}

	if register.Primary {
		return register.Fcn(shapeA, shapeB)
	}

	return register.Fcn(shapeB, shapeA).Flipped()
}
