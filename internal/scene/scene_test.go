package scene

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chosenoffset.com/platformer/internal/core/geom"
)

const sceneYAML = `
window:
  width: 800
  scale: 2
map: cave.json
probe:
  from: [0, 5]
  dir: [1, 0]
lines:
  - from: [0, 0]
    dir: [0, 1]
rays:
  - from: [10, 0]
    dir: [1, 0]
segments:
  - from: [5, -5]
    to: [5, 5]
shapes:
  - name: below
    at: [0, 0]
    verts: [[-1, -1], [1, -1], [1, 1], [-1, 1]]
  - at: [0, 5]
    rect: [-1, -1, 2, 2]
`

func writeScene(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scene.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadConfigOverlaysDefaults(t *testing.T) {
	cfg, err := LoadConfig(writeScene(t, sceneYAML))
	require.NoError(t, err)

	assert.Equal(t, 800, cfg.Window.Width)
	assert.Equal(t, 768, cfg.Window.Height, "height keeps its default")
	assert.Equal(t, float32(2), cfg.Window.Scale)
	assert.Equal(t, "cave.json", cfg.Map)
	assert.Equal(t, Vec{0, 5}, cfg.Probe.From)
	require.Len(t, cfg.Shapes, 2)
	require.NotNil(t, cfg.Shapes[1].Rect)
}

func TestLoadConfigMissingFile(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadConfigRejectsBadWindow(t *testing.T) {
	_, err := LoadConfig(writeScene(t, "window:\n  scale: 0\n"))
	assert.Error(t, err)

	_, err = LoadConfig(writeScene(t, "window: [1, 2"))
	assert.Error(t, err)
}

func TestBuild(t *testing.T) {
	cfg, err := LoadConfig(writeScene(t, sceneYAML))
	require.NoError(t, err)

	s, err := cfg.Build()
	require.NoError(t, err)

	assert.Len(t, s.Lines, 1)
	assert.Len(t, s.Rays, 1)
	assert.Len(t, s.Segments, 1)
	assert.Len(t, s.Linears(), 3)
	assert.Equal(t, "shape1", s.Shapes[1].Name)
	assert.InDelta(t, 10, s.Segments[0].Dist(), 1e-5)

	assert.Equal(t, []geom.Side{geom.Right, geom.On}, s.ShapeSides())
}

func TestIntersections(t *testing.T) {
	cfg, err := LoadConfig(writeScene(t, sceneYAML))
	require.NoError(t, err)
	s, err := cfg.Build()
	require.NoError(t, err)

	// probe x line (0,5), probe x segment (5,5), line x segment: none
	// (parallel), line x ray: behind the ray, ray x segment: behind the ray,
	// probe x ray: parallel.
	points := s.Intersections()
	require.Len(t, points, 2)
	assert.InDelta(t, 0, points[0].X, 1e-5)
	assert.InDelta(t, 5, points[0].Y, 1e-5)
	assert.InDelta(t, 5, points[1].X, 1e-5)
	assert.InDelta(t, 5, points[1].Y, 1e-5)

	moved := s.WithProbe(geom.NewLine(geom.P2{X: 0, Y: 10}, geom.V2{X: 1, Y: 0}.Unit()))
	assert.Equal(t, []geom.Side{geom.Right, geom.Right}, moved.ShapeSides())
	assert.Equal(t, geom.P2{X: 0, Y: 5}, s.Probe.Anchor(), "source scene keeps its probe")
}

func TestBuildRejectsDegenerateInput(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Lines = []LineConfig{{From: Vec{1, 1}}}
	_, err := cfg.Build()
	assert.Error(t, err)

	cfg = DefaultConfig()
	cfg.Segments = []SegmentConfig{{From: Vec{2, 2}, To: Vec{2, 2}}}
	_, err = cfg.Build()
	assert.Error(t, err)

	cfg = DefaultConfig()
	cfg.Shapes = []ShapeConfig{{Name: "empty"}}
	_, err = cfg.Build()
	assert.Error(t, err)

	cfg = DefaultConfig()
	cfg.Probe.Dir = Vec{}
	_, err = cfg.Build()
	assert.Error(t, err)
}
