package viewer

import (
	"context"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chosenoffset.com/platformer/internal/core/geom"
	"chosenoffset.com/platformer/internal/render"
)

const testScene = `
window:
  width: 200
  height: 100
  scale: 1
map: room.json
probe:
  from: [0, 0]
  dir: [1, 0]
segments:
  - from: [10, -10]
    to: [10, 10]
`

const testMap = `{
  "name": "room",
  "columns": 2,
  "rows": 1,
  "tile_size": 16,
  "tilesets": [{"inline": {
    "name": "blocks",
    "first_gid": 1,
    "tile_width": 16,
    "tile_height": 16,
    "tiles": [{"id": 0, "colliders": [{"type": "rect", "width": 16, "height": 16}]}]
  }}],
  "layers": [{"name": "main", "tiles": [0, 1]}]
}`

type fakeInput struct {
	x, y    int
	held    bool
	pressed map[render.Key]bool
	just    map[render.Key]bool
}

func newFakeInput() *fakeInput {
	return &fakeInput{pressed: map[render.Key]bool{}, just: map[render.Key]bool{}}
}

func (f *fakeInput) IsKeyPressed(k render.Key) bool { return f.pressed[k] }
func (f *fakeInput) IsKeyJustPressed(k render.Key) bool { return f.just[k] }
func (f *fakeInput) GetCursorPosition() (int, int) { return f.x, f.y }
func (f *fakeInput) IsMouseButtonPressed(b render.MouseButton) bool {
	return f.held && b == render.MouseButtonLeft
}

type countingCanvas struct {
	lines, rings int
	text         []string
}

func (c *countingCanvas) Size() (int, int) { return 200, 100 }
func (c *countingCanvas) Fill(color.Color) {}
func (c *countingCanvas) StrokeLine(_, _, _, _, _ float32, _ color.Color) { c.lines++ }
func (c *countingCanvas) FillCircle(_, _, _ float32, _ color.Color) {}
func (c *countingCanvas) StrokeCircle(_, _, _, _ float32, _ color.Color) { c.rings++ }
func (c *countingCanvas) DebugText(s string, _, _ int) { c.text = append(c.text, s) }

func writeAssets(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "scene.yaml"), []byte(testScene), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "room.json"), []byte(testMap), 0o644))
	return dir
}

func TestLoadResolvesSceneMap(t *testing.T) {
	dir := writeAssets(t)

	a, err := Load(context.Background(), filepath.Join(dir, "scene.yaml"), "", nil)
	require.NoError(t, err)
	require.NotNil(t, a.Map)
	assert.Equal(t, "room", a.Map.Data.Name)
	assert.Len(t, a.Scene.Segments, 1)
}

func TestLoadMapOverride(t *testing.T) {
	dir := writeAssets(t)

	_, err := Load(context.Background(), filepath.Join(dir, "scene.yaml"), filepath.Join(dir, "missing.json"), nil)
	assert.Error(t, err)

	a, err := Load(context.Background(), filepath.Join(dir, "scene.yaml"), filepath.Join(dir, "room.json"), nil)
	require.NoError(t, err)
	assert.NotNil(t, a.Map)
}

func TestLoadWithoutMap(t *testing.T) {
	a, err := Load(context.Background(), filepath.Join(t.TempDir(), "none.yaml"), "", nil)
	require.NoError(t, err)
	assert.Nil(t, a.Map)
	assert.NotNil(t, a.Scene)
}

func loadViewer(t *testing.T, in *fakeInput) *Viewer {
	t.Helper()
	a, err := Load(context.Background(), filepath.Join(writeAssets(t), "scene.yaml"), "", nil)
	require.NoError(t, err)
	return New(a, in, nil)
}

func TestViewerFollowsCursor(t *testing.T) {
	in := newFakeInput()
	v := loadViewer(t, in)

	// The view is centred on the probe anchor at (0, 0); pixel (100, 50) is
	// the world origin and y grows upward.
	in.x, in.y = 120, 40
	require.NoError(t, v.Update())

	a := v.Probe().Anchor()
	assert.InDelta(t, 20, a.X, 1e-4)
	assert.InDelta(t, 10, a.Y, 1e-4)
	assert.Equal(t, 1, v.hits, "probe still crosses the segment at its top end")
	assert.True(t, v.hasHit, "probe ray reaches the solid tile")
	assert.InDelta(t, 10, v.mapHit.Point.Y, 1e-4)
}

func TestViewerRotates(t *testing.T) {
	in := newFakeInput()
	v := loadViewer(t, in)
	in.x, in.y = 100, 50

	in.pressed[render.KeyQ] = true
	for i := 0; i < 90; i++ {
		require.NoError(t, v.Update())
	}

	d := v.Probe().Direction()
	assert.InDelta(t, 0, d.X(), 1e-3)
	assert.InDelta(t, 1, d.Y(), 1e-3)
	assert.Equal(t, 0, v.hits, "a vertical probe through the origin misses the segment")
}

func TestViewerKeys(t *testing.T) {
	in := newFakeInput()
	v := loadViewer(t, in)
	assert.True(t, v.showMap)

	in.just[render.KeyM] = true
	in.just[render.KeyV] = true
	require.NoError(t, v.Update())
	assert.False(t, v.showMap)
	assert.True(t, v.showVisibility)

	in.just = map[render.Key]bool{render.KeyEscape: true}
	assert.ErrorIs(t, v.Update(), render.ErrQuit)
}

func TestViewerDraw(t *testing.T) {
	in := newFakeInput()
	v := loadViewer(t, in)
	in.just[render.KeyV] = true
	in.x, in.y = 100, 42
	require.NoError(t, v.Update())

	c := &countingCanvas{}
	v.Draw(c)

	assert.Greater(t, c.lines, 0)
	assert.GreaterOrEqual(t, c.rings, 2, "segment crossing and map hit are ringed")
	require.Len(t, c.text, 1)

	w, h := v.Layout(640, 480)
	assert.Equal(t, 200, w)
	assert.Equal(t, 100, h)
	assert.Equal(t, geom.P2{X: 0, Y: 8}, v.Probe().Anchor())
}

func TestViewerPans(t *testing.T) {
	in := newFakeInput()
	v := loadViewer(t, in)
	in.x, in.y = 100, 50

	in.pressed[render.KeyD] = true
	in.pressed[render.KeyW] = true
	for i := 0; i < 10; i++ {
		require.NoError(t, v.Update())
	}

	// Scale is 1, so each tick scrolls panStep world units.
	assert.InDelta(t, 10*panStep, v.view.Centre.X, 1e-4)
	assert.InDelta(t, 10*panStep, v.view.Centre.Y, 1e-4)
	a := v.Probe().Anchor()
	assert.InDelta(t, 10*panStep, a.X, 1e-4, "anchor stays under the cursor")
	assert.InDelta(t, 10*panStep, a.Y, 1e-4)
}

func TestViewerPinsAnchorWhileHeld(t *testing.T) {
	in := newFakeInput()
	v := loadViewer(t, in)
	in.x, in.y = 120, 40
	require.NoError(t, v.Update())

	in.held = true
	in.x, in.y = 150, 90
	require.NoError(t, v.Update())
	assert.Equal(t, geom.P2{X: 20, Y: 10}, v.Probe().Anchor())

	in.just[render.KeySpace] = true
	require.NoError(t, v.Update())
	assert.Equal(t, geom.P2{X: 20, Y: 10}, v.view.Centre, "space centres the view on the anchor")
	assert.Equal(t, geom.P2{X: 20, Y: 10}, v.Probe().Anchor())

	in.held = false
	in.just = map[render.Key]bool{}
	in.x, in.y = 100, 50
	require.NoError(t, v.Update())
	assert.Equal(t, geom.P2{X: 20, Y: 10}, v.Probe().Anchor(), "cursor at the centre maps to the new centre")
}
