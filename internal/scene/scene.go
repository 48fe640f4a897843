// Package scene describes the geometry debug scenes shown by geomview.
// Scenes are YAML files layered over DefaultConfig.
package scene

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"chosenoffset.com/platformer/internal/core/geom"
)

// Vec is an [x, y] pair in YAML.
type Vec [2]float32

func (v Vec) point() geom.P2 { return geom.P2{X: v[0], Y: v[1]} }
func (v Vec) vec() geom.V2 { return geom.V2{X: v[0], Y: v[1]} }

// LineConfig is an anchor and a direction; used for lines, rays and the probe.
type LineConfig struct {
	From Vec `yaml:"from"`
	Dir  Vec `yaml:"dir"`
}

// SegmentConfig is a segment between two endpoints.
type SegmentConfig struct {
	From Vec `yaml:"from"`
	To   Vec `yaml:"to"`
}

// ShapeConfig is a shape template and where to place it.
type ShapeConfig struct {
	Name  string `yaml:"name"`
	At    Vec    `yaml:"at"`
	Verts []Vec  `yaml:"verts"`
	// Rect, when set, is [x, y, w, h] and replaces Verts.
	Rect *[4]float32 `yaml:"rect"`
}

// WindowConfig sets the viewer window.
type WindowConfig struct {
	Width  int     `yaml:"width"`
	Height int     `yaml:"height"`
	Scale  float32 `yaml:"scale"` // Screen pixels per world unit
}

// Config holds a whole debug scene
type Config struct {
	Window   WindowConfig    `yaml:"window"`
	Map      string          `yaml:"map"` // Optional tile map, relative to the scene file
	Probe    LineConfig      `yaml:"probe"`
	Lines    []LineConfig    `yaml:"lines"`
	Rays     []LineConfig    `yaml:"rays"`
	Segments []SegmentConfig `yaml:"segments"`
	Shapes   []ShapeConfig   `yaml:"shapes"`
}

// DefaultConfig returns an empty scene with a horizontal probe through the
// origin.
func DefaultConfig() *Config {
	return &Config{
		Window: WindowConfig{
			Width:  1024,
			Height: 768,
			Scale:  4,
		},
		Probe: LineConfig{
			From: Vec{0, 0},
			Dir:  Vec{1, 0},
		},
	}
}

// LoadConfig loads a scene from a YAML file. A missing file yields the
// defaults.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("failed to read scene %s: %w", path, err)
	}

	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse scene %s: %w", path, err)
	}

	if config.Window.Width <= 0 || config.Window.Height <= 0 {
		return nil, fmt.Errorf("invalid window size in %s: %dx%d", path, config.Window.Width, config.Window.Height)
	}
	if config.Window.Scale <= 0 {
		return nil, fmt.Errorf("invalid window scale in %s: %v", path, config.Window.Scale)
	}

	return config, nil
}

// PlacedShape is a shape template with its placement point.
type PlacedShape struct {
	Name  string
	At    geom.P2
	Shape geom.Shape
}

// Scene is a Config resolved into geometry.
type Scene struct {
	Probe    geom.Line
	Lines    []geom.Line
	Rays     []geom.Ray
	Segments []geom.Segment
	Shapes   []PlacedShape
}

// Build resolves c into geometry. Zero directions and zero-length segments
// are rejected since they have no direction to normalize.
func (c *Config) Build() (*Scene, error) {
	probe, err := c.Probe.line()
	if err != nil {
		return nil, fmt.Errorf("probe: %w", err)
	}
	s := &Scene{Probe: probe}

	for i, lc := range c.Lines {
		l, err := lc.line()
		if err != nil {
			return nil, fmt.Errorf("lines[%d]: %w", i, err)
		}
		s.Lines = append(s.Lines, l)
	}

	for i, rc := range c.Rays {
		l, err := rc.line()
		if err != nil {
			return nil, fmt.Errorf("rays[%d]: %w", i, err)
		}
		s.Rays = append(s.Rays, geom.NewRay(l.Anchor(), l.Direction()))
	}

	for i, sc := range c.Segments {
		if sc.From == sc.To {
			return nil, fmt.Errorf("segments[%d]: endpoints coincide at %v", i, sc.From)
		}
		s.Segments = append(s.Segments, geom.NewSegmentFromPoints(sc.From.point(), sc.To.point()))
	}

	for i, sh := range c.Shapes {
		var shape geom.Shape
		if sh.Rect != nil {
			r := *sh.Rect
			shape = geom.NewRectShape(r[0], r[1], r[2], r[3])
		} else {
			verts := make([]geom.V2, len(sh.Verts))
			for j, v := range sh.Verts {
				verts[j] = v.vec()
			}
			shape = geom.NewShape(verts)
		}
		if shape.Len() == 0 {
			return nil, fmt.Errorf("shapes[%d]: no vertices", i)
		}
		name := sh.Name
		if name == "" {
			name = fmt.Sprintf("shape%d", i)
		}
		s.Shapes = append(s.Shapes, PlacedShape{Name: name, At: sh.At.point(), Shape: shape})
	}

	return s, nil
}

func (lc LineConfig) line() (geom.Line, error) {
	if lc.Dir == (Vec{}) {
		return geom.Line{}, errors.New("zero direction")
	}
	return geom.NewLine(lc.From.point(), lc.Dir.vec().Unit()), nil
}

// Linears returns every line, ray and segment in the scene, probe excluded.
func (s *Scene) Linears() []geom.Linear {
	out := make([]geom.Linear, 0, len(s.Lines)+len(s.Rays)+len(s.Segments))
	for _, l := range s.Lines {
		out = append(out, l)
	}
	for _, r := range s.Rays {
		out = append(out, r)
	}
	for _, seg := range s.Segments {
		out = append(out, seg)
	}
	return out
}

// Intersections returns every pairwise crossing between the scene's
// primitives and of each primitive with the probe.
func (s *Scene) Intersections() []geom.P2 {
	all := append([]geom.Linear{s.Probe}, s.Linears()...)

	var points []geom.P2
	for i := range all {
		for j := i + 1; j < len(all); j++ {
			if p, ok := geom.Intersect(all[i], all[j]); ok {
				points = append(points, p)
			}
		}
	}
	return points
}

// ShapeSides classifies every shape against the probe, in scene order.
func (s *Scene) ShapeSides() []geom.Side {
	sides := make([]geom.Side, len(s.Shapes))
	for i, sh := range s.Shapes {
		sides[i] = geom.ShapeSideOfLine(s.Probe, sh.At, sh.Shape)
	}
	return sides
}

// WithProbe returns a copy of s with the probe replaced.
func (s *Scene) WithProbe(probe geom.Line) *Scene {
	cp := *s
	cp.Probe = probe
	return &cp
}
