package debugdraw

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chosenoffset.com/platformer/internal/core/geom"
	"chosenoffset.com/platformer/internal/scene"
	"chosenoffset.com/platformer/internal/world/tilemap"
)

type stroke struct {
	x0, y0, x1, y1 float32
	clr            color.Color
}

type recorder struct {
	w, h    int
	strokes []stroke
	dots    int
	rings   int
	text    []string
}

func (r *recorder) Size() (int, int) { return r.w, r.h }
func (r *recorder) Fill(color.Color) {}
func (r *recorder) DebugText(s string, _, _ int) { r.text = append(r.text, s) }
func (r *recorder) StrokeLine(x0, y0, x1, y1, _ float32, clr color.Color) {
	r.strokes = append(r.strokes, stroke{x0, y0, x1, y1, clr})
}
func (r *recorder) FillCircle(_, _, _ float32, _ color.Color) { r.dots++ }
func (r *recorder) StrokeCircle(_, _, _, _ float32, _ color.Color) { r.rings++ }

func testView() View {
	return View{Centre: geom.P2{X: 0, Y: 0}, Scale: 10, Width: 200, Height: 100}
}

func TestViewRoundTrip(t *testing.T) {
	v := testView()

	x, y := v.ToScreen(geom.P2{X: 0, Y: 0})
	assert.Equal(t, float32(100), x)
	assert.Equal(t, float32(50), y)

	x, y = v.ToScreen(geom.P2{X: 1, Y: 1})
	assert.Equal(t, float32(110), x)
	assert.Equal(t, float32(40), y, "world y points up")

	p := v.ToWorld(120, 70)
	assert.InDelta(t, 2, p.X, 1e-5)
	assert.InDelta(t, -2, p.Y, 1e-5)
}

func TestViewFrustum(t *testing.T) {
	f := testView().Frustum()
	assert.InDelta(t, 10, f.HalfDims.X, 1e-5)
	assert.InDelta(t, 5, f.HalfDims.Y, 1e-5)
}

func TestExtent(t *testing.T) {
	v := testView()
	p := geom.P2{X: 1, Y: 0}
	d := geom.V2{X: 0, Y: 1}.Unit()

	lo, hi := v.Extent(geom.NewSegmentFromPoints(p, geom.P2{X: 1, Y: 3}))
	assert.Equal(t, float32(0), lo)
	assert.InDelta(t, 3, hi, 1e-5)

	lo, hi = v.Extent(geom.NewRay(p, d))
	assert.Equal(t, float32(0), lo)
	assert.Greater(t, hi, float32(10))

	lo, hi = v.Extent(geom.NewLine(p, d))
	assert.Less(t, lo, float32(-10))
	assert.Equal(t, -lo, hi)
}

func TestLinearLeavesView(t *testing.T) {
	r := &recorder{w: 200, h: 100}
	Linear(r, testView(), geom.NewLine(geom.P2{}, geom.V2{X: 1, Y: 0}.Unit()), LinearColour)

	require.Len(t, r.strokes, 1)
	s := r.strokes[0]
	assert.Less(t, s.x0, float32(0))
	assert.Greater(t, s.x1, float32(200))
	assert.Equal(t, 0, r.dots, "lines have no endpoints")
}

func TestShapeOutline(t *testing.T) {
	r := &recorder{w: 200, h: 100}
	Shape(r, testView(), geom.P2{}, geom.NewRectShape(0, 0, 1, 1), ProbeColour)
	assert.Len(t, r.strokes, 4)

	r = &recorder{w: 200, h: 100}
	Shape(r, testView(), geom.P2{}, geom.NewShape([]geom.V2{{X: 1, Y: 1}}), ProbeColour)
	assert.Empty(t, r.strokes)
	assert.Equal(t, 1, r.dots)
}

func TestSceneColoursShapesBySide(t *testing.T) {
	cfg := scene.DefaultConfig()
	cfg.Probe = scene.LineConfig{From: scene.Vec{0, 0}, Dir: scene.Vec{1, 0}}
	cfg.Segments = []scene.SegmentConfig{{From: scene.Vec{2, -2}, To: scene.Vec{2, 2}}}
	cfg.Shapes = []scene.ShapeConfig{{At: scene.Vec{0, 3}, Rect: &[4]float32{-1, -1, 2, 2}}}
	s, err := cfg.Build()
	require.NoError(t, err)

	r := &recorder{w: 200, h: 100}
	Scene(r, testView(), s)

	assert.Equal(t, 1, r.rings, "one intersection between probe and segment")
	left := 0
	for _, st := range r.strokes {
		if st.clr == SideColour(geom.Left) {
			left++
		}
	}
	assert.Equal(t, 4, left, "shape above the probe is drawn as left")
}

func TestMapDrawsTilesInView(t *testing.T) {
	ts, err := tilemap.NewTileset(&tilemap.TilesetConfig{
		Name:       "blocks",
		FirstGID:   1,
		TileWidth:  1,
		TileHeight: 1,
		Tiles: []tilemap.TileDefinition{{
			ID:        0,
			Colliders: []tilemap.ColliderObject{{Type: "rect", Width: 1, Height: 1}},
		}},
	}, nil)
	require.NoError(t, err)

	m, err := tilemap.NewMap(&tilemap.MapData{
		Columns:  3,
		Rows:     2,
		TileSize: 1,
		Layers: []tilemap.LayerData{{
			Name:  tilemap.MainLayer,
			Tiles: []uint32{1, 0, 1, 0, 1, 0},
		}},
	}, ts)
	require.NoError(t, err)

	r := &recorder{w: 200, h: 100}
	probe := geom.NewLine(geom.P2{X: 0, Y: 0.5}, geom.V2{X: 1, Y: 0}.Unit())
	drawn := Map(r, testView(), m, probe)

	assert.Equal(t, 3, drawn)
	assert.Len(t, r.strokes, 12)
}

func TestStatus(t *testing.T) {
	r := &recorder{}
	Status(r, geom.NewLine(geom.P2{X: 1, Y: 2}, geom.V2{X: 0, Y: 1}.Unit()), 3)
	require.Len(t, r.text, 1)
	assert.Equal(t, "probe (1.0, 2.0) 90 deg  hits: 3", r.text[0])
}
