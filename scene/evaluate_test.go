package scene

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"testing"

	"github.com/ByteArena/collide2d"
	"github.com/ByteArena/collide2d/internal/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vmihailenco/msgpack/v5"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

const demoContacts = `ball/ramp: normal=(-0.8321, 0.5547) point=(3.1506, 1.7996) depth=0.0978
ball/floor: normal=(0.4961, -0.8682) point=(1.9519, 3.0841) depth=0.0969
ramp/floor: normal=(0.8321, 0.5547) point=(2.1533, 1.0000) depth=0.3467
spike/floor: normal=(0.0000, -1.0000) point=(2.0000, 0.7500) depth=0.2500
`

func evaluateDemo(t *testing.T, opts Options) *Report {
	t.Helper()

	s, err := LoadFile("testdata/demo.yaml")
	require.NoError(t, err)

	report, err := s.Evaluate(context.Background(), opts)
	require.NoError(t, err)

	return report
}

// A grid of overlapping circles and triangles with a line in the middle.
func gridShapes(t *testing.T) []NamedShape {
	t.Helper()

	shapes := make([]NamedShape, 0)
	for i := 0; i < 6; i++ {
		for j := 0; j < 6; j++ {
			x := float64(i) * 1.5
			y := float64(j) * 1.5

			var shape collide2d.Shape
			if (i+j)%2 == 0 {
				shape = collide2d.NewCircle(1.0, collide2d.MakeVec2(x, y))
			} else {
				shape = collide2d.NewTriangle(
					collide2d.MakeVec2(x-1.0, y-0.8),
					collide2d.MakeVec2(x+1.1, y-0.7),
					collide2d.MakeVec2(x+0.1, y+1.2),
				)
			}

			shapes = append(shapes, NamedShape{Name: fmt.Sprintf("s%d-%d", i, j), Shape: shape})
		}
	}

	line := collide2d.NewLine(collide2d.MakeVec2(0, 0), collide2d.MakeVec2(9, 9))
	shapes = append(shapes, NamedShape{Name: "diagonal", Shape: line})

	for _, s := range shapes {
		require.NoError(t, s.Shape.Validate(), s.Name)
	}

	return shapes
}

func TestEvaluateDemo(t *testing.T) {
	report := evaluateDemo(t, Options{Workers: 2})

	assert.Equal(t, "demo", report.Scene)
	assert.Equal(t, 6, report.Shapes)
	// 15 pairs, minus the 5 involving the line.
	assert.Equal(t, 10, report.Pairs)
	require.Len(t, report.Contacts, 4)
	assert.Len(t, report.Digest, 16)

	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, report, FormatText))

	header := fmt.Sprintf("scene demo: 6 shapes, 10 pairs, 4 contacts, digest %s\n", report.Digest)
	assert.Equal(t, header+demoContacts, buf.String())
}

func TestEvaluateMatchesCollide(t *testing.T) {
	shapes := gridShapes(t)
	report, err := Evaluate(context.Background(), shapes, Options{Workers: 4})
	require.NoError(t, err)

	index := make(map[string]collide2d.Shape, len(shapes))
	for _, s := range shapes {
		index[s.Name] = s.Shape
	}

	require.NotEmpty(t, report.Contacts)
	for _, c := range report.Contacts {
		assert.NotEqual(t, "diagonal", c.A)
		assert.NotEqual(t, "diagonal", c.B)

		result := collide2d.Collide(index[c.A], index[c.B])
		require.True(t, result.Colliding, "%s/%s", c.A, c.B)
		assert.Equal(t, result.Normal, c.Normal)
		assert.Equal(t, result.Point, c.Point)
		assert.Equal(t, result.Depth, c.Depth)
	}
}

func TestEvaluateIsDeterministicAcrossWorkers(t *testing.T) {
	shapes := gridShapes(t)

	reference, err := Evaluate(context.Background(), shapes, Options{Workers: 1})
	require.NoError(t, err)

	for _, workers := range []int{0, 2, 3, 8, 64} {
		report, err := Evaluate(context.Background(), shapes, Options{Workers: workers})
		require.NoError(t, err)
		assert.Equal(t, reference, report, "workers=%d", workers)
	}
}

func TestEvaluateCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Evaluate(ctx, gridShapes(t), Options{Workers: 2})
	require.ErrorIs(t, err, context.Canceled)
}

func TestEvaluateEmpty(t *testing.T) {
	report, err := Evaluate(context.Background(), nil, Options{})
	require.NoError(t, err)

	assert.Equal(t, 0, report.Pairs)
	assert.NotNil(t, report.Contacts)
	assert.Empty(t, report.Contacts)
}

func TestEvaluateLogs(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)

	evaluateDemo(t, Options{Workers: 3, Logger: log.NewWithCore(core)})

	assert.Equal(t, 4, logs.FilterMessage("contact").Len())

	summary := logs.FilterMessage("pairs evaluated").All()
	require.Len(t, summary, 1)
	fields := summary[0].ContextMap()
	assert.Equal(t, int64(10), fields["pairs"])
	assert.Equal(t, int64(4), fields["contacts"])
	assert.Equal(t, int64(3), fields["workers"])
}

func TestDigest(t *testing.T) {
	report := evaluateDemo(t, Options{Workers: 1})

	again, err := Digest(report.Contacts)
	require.NoError(t, err)
	assert.Equal(t, report.Digest, again)

	shifted := append([]Contact(nil), report.Contacts...)
	shifted[0].Depth += 1e-9
	changed, err := Digest(shifted)
	require.NoError(t, err)
	assert.NotEqual(t, report.Digest, changed)
}

func TestEncodeJSON(t *testing.T) {
	report := evaluateDemo(t, Options{Workers: 1})

	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, report, FormatJSON))

	var decoded Report
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, *report, decoded)
}

func TestEncodeMsgpack(t *testing.T) {
	report := evaluateDemo(t, Options{Workers: 1})

	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, report, FormatMsgpack))

	var decoded Report
	require.NoError(t, msgpack.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, *report, decoded)
}

func TestEncodeUnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	err := Encode(&buf, &Report{}, "xml")
	require.ErrorIs(t, err, ErrUnknownFormat)
	assert.Zero(t, buf.Len())
}
