// Package scene loads a set of named shapes from YAML or JSON and reports the
// contacts between every pair of them.
package scene

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ByteArena/collide2d"
	"gopkg.in/yaml.v3"
)

var (
	ErrUnknownKind    = errors.New("unknown shape kind")
	ErrDuplicateShape = errors.New("duplicate shape name")
	ErrMalformedShape = errors.New("malformed shape")
)

const (
	KindCircle   = "circle"
	KindTriangle = "triangle"
	KindLine     = "line"
)

// Scene is a named list of shapes as found in a scene file.
type Scene struct {
	Name   string      `json:"name" yaml:"name"`
	Shapes []ShapeSpec `json:"shapes" yaml:"shapes"`
}

type Rotation struct {
	Degrees float64 `json:"degrees" yaml:"degrees"`
	// Origin defaults to the shape's centroid.
	Origin []float64 `json:"origin,omitempty" yaml:"origin,omitempty"`
}

// ShapeSpec describes one shape. Points are [x, y] pairs: a triangle takes
// three of them, a line two. The optional rotation is applied before the
// translation.
type ShapeSpec struct {
	Name      string      `json:"name" yaml:"name"`
	Kind      string      `json:"kind" yaml:"kind"`
	Centre    []float64   `json:"centre,omitempty" yaml:"centre,omitempty"`
	Radius    float64     `json:"radius,omitempty" yaml:"radius,omitempty"`
	Points    [][]float64 `json:"points,omitempty" yaml:"points,omitempty"`
	Rotate    *Rotation   `json:"rotate,omitempty" yaml:"rotate,omitempty"`
	Translate []float64   `json:"translate,omitempty" yaml:"translate,omitempty"`
}

// NamedShape is a built shape together with the name it was declared under.
type NamedShape struct {
	Name  string
	Shape collide2d.Shape
}

// LoadJSON loads a scene from a JSON reader.
func LoadJSON(r io.Reader) (*Scene, error) {
	var s Scene
	dec := json.NewDecoder(r)
	if err := dec.Decode(&s); err != nil {
		return nil, err
	}
	return &s, nil
}

// LoadYAML loads a scene from a YAML reader.
func LoadYAML(r io.Reader) (*Scene, error) {
	var s Scene
	dec := yaml.NewDecoder(r)
	if err := dec.Decode(&s); err != nil {
		return nil, err
	}
	return &s, nil
}

// LoadFile picks the decoder from the file extension; anything but .json is
// read as YAML. A scene without a name is named after the file.
func LoadFile(path string) (*Scene, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var s *Scene
	ext := strings.ToLower(filepath.Ext(path))
	if ext == ".json" {
		s, err = LoadJSON(f)
	} else {
		s, err = LoadYAML(f)
	}
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}

	if s.Name == "" {
		s.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}

	return s, nil
}

func toVec2(field string, values []float64) (collide2d.Vec2, error) {
	if len(values) != 2 {
		return collide2d.Vec2{}, fmt.Errorf("%w: %s needs 2 coordinates, got %d", ErrMalformedShape, field, len(values))
	}
	return collide2d.MakeVec2(values[0], values[1]), nil
}

func (ss ShapeSpec) points(count int) ([]collide2d.Vec2, error) {
	if len(ss.Points) != count {
		return nil, fmt.Errorf("%w: %s needs %d points, got %d", ErrMalformedShape, ss.Kind, count, len(ss.Points))
	}

	points := make([]collide2d.Vec2, count)
	for i, raw := range ss.Points {
		p, err := toVec2(fmt.Sprintf("point %d", i), raw)
		if err != nil {
			return nil, err
		}
		points[i] = p
	}

	return points, nil
}

// Build constructs and validates the shape.
func (ss ShapeSpec) Build() (collide2d.Shape, error) {

	var shape collide2d.Shape

	switch strings.ToLower(ss.Kind) {
	case KindCircle:
		centre, err := toVec2("centre", ss.Centre)
		if err != nil {
			return nil, err
		}
		shape = collide2d.NewCircle(ss.Radius, centre)

	case KindTriangle:
		p, err := ss.points(3)
		if err != nil {
			return nil, err
		}
		shape = collide2d.NewTriangle(p[0], p[1], p[2])

	case KindLine:
		p, err := ss.points(2)
		if err != nil {
			return nil, err
		}
		shape = collide2d.NewLine(p[0], p[1])

	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, ss.Kind)
	}

	if ss.Rotate != nil {
		origin := shape.GetCentroid()
		if ss.Rotate.Origin != nil {
			o, err := toVec2("rotate.origin", ss.Rotate.Origin)
			if err != nil {
				return nil, err
			}
			origin = o
		}
		shape.Rotate(ss.Rotate.Degrees, origin)
	}

	if ss.Translate != nil {
		delta, err := toVec2("translate", ss.Translate)
		if err != nil {
			return nil, err
		}
		shape.Translate(delta)
	}

	if err := shape.Validate(); err != nil {
		return nil, err
	}

	return shape, nil
}

// Build constructs every shape of the scene in declaration order. Shapes
// without a name are called <kind>-<index>.
func (s *Scene) Build() ([]NamedShape, error) {

	shapes := make([]NamedShape, 0, len(s.Shapes))
	seen := make(map[string]struct{}, len(s.Shapes))

	for i, ss := range s.Shapes {
		name := ss.Name
		if name == "" {
			name = fmt.Sprintf("%s-%d", strings.ToLower(ss.Kind), i)
		}

		if _, ok := seen[name]; ok {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateShape, name)
		}
		seen[name] = struct{}{}

		shape, err := ss.Build()
		if err != nil {
			return nil, fmt.Errorf("shape %q: %w", name, err)
		}

		shapes = append(shapes, NamedShape{Name: name, Shape: shape})
	}

	return shapes, nil
}
