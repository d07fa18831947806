package collide2d

import "math"

const MaxFloat = math.MaxFloat64
const Epsilon = math.SmallestNonzeroFloat64

/// @file
/// Global tuning constants. Lengths are in whatever consistent unit the
/// caller works in (usually meters).
///

/// A small length used when deciding whether a point lies on a line. It is
/// compared against perpendicular distances, so it is in length units.
const LinearTolerance = 1e-9

/// Penetration depth reported by every routine is the raw overlap scaled by
/// this factor: each of the two shapes is expected to be pushed out by half.
const DepthScale = 0.5
