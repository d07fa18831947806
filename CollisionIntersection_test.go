package collide2d

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSegmentIntersection(t *testing.T) {
	cases := []struct {
		name  string
		a, b  Line
		hit   bool
		point Vec2
	}{
		{
			name:  "crossing",
			a:     MakeLine(MakeVec2(0, 0), MakeVec2(2, 2)),
			b:     MakeLine(MakeVec2(0, 2), MakeVec2(2, 0)),
			hit:   true,
			point: MakeVec2(1, 1),
		},
		{
			name:  "vertical against horizontal",
			a:     MakeLine(MakeVec2(1, -1), MakeVec2(1, 1)),
			b:     MakeLine(MakeVec2(0, 0), MakeVec2(2, 0)),
			hit:   true,
			point: MakeVec2(1, 0),
		},
		{
			name: "parallel verticals",
			a:    MakeLine(MakeVec2(0, 0), MakeVec2(0, 1)),
			b:    MakeLine(MakeVec2(1, 0), MakeVec2(1, 1)),
		},
		{
			name: "parallel horizontals",
			a:    MakeLine(MakeVec2(0, 0), MakeVec2(2, 0)),
			b:    MakeLine(MakeVec2(0, 1), MakeVec2(2, 1)),
		},
		{
			name:  "shared end point",
			a:     MakeLine(MakeVec2(0, 0), MakeVec2(1, 1)),
			b:     MakeLine(MakeVec2(1, 1), MakeVec2(2, 0)),
			hit:   true,
			point: MakeVec2(1, 1),
		},
		{
			name:  "collinear overlap",
			a:     MakeLine(MakeVec2(0, 0), MakeVec2(4, 0)),
			b:     MakeLine(MakeVec2(2, 0), MakeVec2(6, 0)),
			hit:   true,
			point: MakeVec2(3, 0),
		},
		{
			name: "collinear apart",
			a:    MakeLine(MakeVec2(0, 0), MakeVec2(1, 0)),
			b:    MakeLine(MakeVec2(2, 0), MakeVec2(3, 0)),
		},
		{
			name: "lines would cross beyond the segments",
			a:    MakeLine(MakeVec2(0, 0), MakeVec2(1, 1)),
			b:    MakeLine(MakeVec2(3, 0), MakeVec2(2, 1)),
		},
		{
			name:  "point on segment",
			a:     MakeLine(MakeVec2(1, 0), MakeVec2(1, 0)),
			b:     MakeLine(MakeVec2(0, 0), MakeVec2(2, 0)),
			hit:   true,
			point: MakeVec2(1, 0),
		},
		{
			name: "point off segment",
			a:    MakeLine(MakeVec2(1, 0.5), MakeVec2(1, 0.5)),
			b:    MakeLine(MakeVec2(0, 0), MakeVec2(2, 0)),
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			result := IsIntersecting(c.a, c.b)
			assert.Equal(t, c.hit, result.Intersecting)
			assertVecInDelta(t, c.point, result.Point, 1e-12)

			// The answer does not depend on the order of the segments.
			assert.Equal(t, c.hit, Intersects(c.b.Start, c.b.End, c.a.Start, c.a.End))
		})
	}
}

func TestSegmentIntersectionMissHasZeroPoint(t *testing.T) {
	result := GetIntersection(
		MakeLine(MakeVec2(5, 5), MakeVec2(6, 6)),
		MakeLine(MakeVec2(0, 1), MakeVec2(1, 0)),
	)

	assert.False(t, result.Intersecting)
	assert.Equal(t, MakeVec2(0, 0), result.Point)
}

func TestLineProperties(t *testing.T) {
	line := MakeLine(MakeVec2(0, 1), MakeVec2(2, 5))
	assert.Equal(t, 2.0, line.GetGradient())
	assert.Equal(t, 1.0, line.GetIntercept())
	assert.Equal(t, MakeVec2(1, 3), line.Midpoint())
	assert.True(t, line.TestPoint(MakeVec2(1, 3)))
	assert.False(t, line.TestPoint(MakeVec2(3, 7)))
	assert.NoError(t, line.Validate())

	vertical := MakeLine(MakeVec2(1, 0), MakeVec2(1, 3))
	assert.True(t, vertical.IsVertical())
	assert.False(t, vertical.IsHorizontal())
	assert.True(t, vertical.GetGradient() > 1e300)

	var aabb AABB
	vertical.ComputeAABB(&aabb)
	assert.Equal(t, MakeVec2(1, 0), aabb.LowerBound)
	assert.Equal(t, MakeVec2(1, 3), aabb.UpperBound)

	vertical.Rotate(90, MakeVec2(1, 0))
	assert.True(t, vertical.IsHorizontal())
	assertVecInDelta(t, MakeVec2(-2, 0), vertical.End, 1e-12)

	vertical.Translate(MakeVec2(2, 1))
	assertVecInDelta(t, MakeVec2(3, 1), vertical.Start, 1e-12)
}
