// Package viewer is the interactive geometry debug view: a probe line
// follows the cursor and everything in the scene is classified against it.
package viewer

import (
	"github.com/chewxy/math32"
	"go.uber.org/zap"

	"chosenoffset.com/platformer/internal/core/collision"
	"chosenoffset.com/platformer/internal/core/geom"
	"chosenoffset.com/platformer/internal/core/shadows"
	"chosenoffset.com/platformer/internal/logging"
	"chosenoffset.com/platformer/internal/render"
	"chosenoffset.com/platformer/internal/render/debugdraw"
	"chosenoffset.com/platformer/internal/scene"
	"chosenoffset.com/platformer/internal/world/tilemap"
)

// rotateStep is how far Q and E turn the probe per tick, in radians.
const rotateStep = math32.Pi / 180

// panStep is how far WASD scroll the view per tick, in screen pixels.
const panStep = 4

// visionRange bounds the visibility polygon, in world units.
const visionRange = 256

// Viewer implements render.Game.
type Viewer struct {
	input render.InputManager
	log   *zap.Logger

	scene *scene.Scene
	tiles *tilemap.Map
	walls []shadows.Wall
	view  debugdraw.View

	anchor         geom.P2
	angle          float32
	showMap        bool
	showVisibility bool

	hits    int
	mapHit  collision.Hit
	hasHit  bool
	lastPos [2]int
}

// New creates a viewer over the loaded assets. The view starts centred on
// the scene's probe anchor.
func New(a *Assets, input render.InputManager, log *zap.Logger) *Viewer {
	d := a.Scene.Probe.Direction()
	v := &Viewer{
		input: input,
		log:   logging.OrNop(log),
		scene: a.Scene,
		tiles: a.Map,
		view: debugdraw.View{
			Centre: a.Scene.Probe.Anchor(),
			Scale:  a.Config.Window.Scale,
			Width:  a.Config.Window.Width,
			Height: a.Config.Window.Height,
		},
		anchor:  a.Scene.Probe.Anchor(),
		angle:   math32.Atan2(d.Y(), d.X()),
		showMap: a.Map != nil,
		lastPos: [2]int{-1, -1},
	}
	if a.Map != nil {
		v.walls = shadows.WallsFromMap(a.Map)
		v.log.Info("walls extracted", zap.Int("walls", len(v.walls)))
	}
	v.refresh()
	return v
}

// Probe returns the current probe line.
func (v *Viewer) Probe() geom.Line {
	return v.scene.Probe
}

// Update moves the probe to the cursor and applies key presses. Holding the
// left mouse button pins the probe anchor where it is.
func (v *Viewer) Update() error {
	if v.input.IsKeyJustPressed(render.KeyEscape) {
		return render.ErrQuit
	}

	moved := false
	if x, y := v.input.GetCursorPosition(); [2]int{x, y} != v.lastPos {
		v.lastPos = [2]int{x, y}
		moved = true
	}
	if v.pan() {
		moved = true
	}
	if moved && !v.input.IsMouseButtonPressed(render.MouseButtonLeft) {
		v.anchor = v.view.ToWorld(v.lastPos[0], v.lastPos[1])
	}
	if v.input.IsKeyJustPressed(render.KeySpace) {
		v.view.Centre = v.anchor
		moved = true
	}
	if v.input.IsKeyPressed(render.KeyQ) {
		v.angle += rotateStep
		moved = true
	}
	if v.input.IsKeyPressed(render.KeyE) {
		v.angle -= rotateStep
		moved = true
	}

	if v.input.IsKeyJustPressed(render.KeyM) && v.tiles != nil {
		v.showMap = !v.showMap
		v.log.Debug("map overlay toggled", zap.Bool("on", v.showMap))
	}
	if v.input.IsKeyJustPressed(render.KeyV) {
		v.showVisibility = !v.showVisibility
		v.log.Debug("visibility toggled", zap.Bool("on", v.showVisibility))
	}

	if moved {
		v.refresh()
	}
	return nil
}

// pan scrolls the view with WASD and reports whether it moved.
func (v *Viewer) pan() bool {
	var d geom.V2
	if v.input.IsKeyPressed(render.KeyW) {
		d.Y++
	}
	if v.input.IsKeyPressed(render.KeyS) {
		d.Y--
	}
	if v.input.IsKeyPressed(render.KeyA) {
		d.X--
	}
	if v.input.IsKeyPressed(render.KeyD) {
		d.X++
	}
	if d == (geom.V2{}) {
		return false
	}
	v.view.Centre = v.view.Centre.Add(d.Scale(panStep / v.view.Scale))
	return true
}

// refresh rebuilds the probe from the anchor and angle and recomputes hits.
func (v *Viewer) refresh() {
	anchor := v.anchor
	dir := geom.V2{X: math32.Cos(v.angle), Y: math32.Sin(v.angle)}.Unit()
	v.scene = v.scene.WithProbe(geom.NewLine(anchor, dir))
	v.hits = len(v.scene.Intersections())

	v.hasHit = false
	if v.tiles != nil {
		cast := geom.NewRay(anchor, dir)
		bounds := v.view.Frustum().IntBounds(1 / v.tiles.TileSize())
		v.mapHit, v.hasHit = collision.FirstHit(v.tiles, cast, bounds)
	}
}

// Draw renders the scene, the optional map overlay and the status line.
func (v *Viewer) Draw(screen render.Canvas) {
	screen.Fill(debugdraw.Background)

	if v.tiles != nil && v.showMap {
		debugdraw.Map(screen, v.view, v.tiles, v.scene.Probe)
	}
	if v.showVisibility {
		poly := shadows.VisibilityPolygon(v.scene.Probe.Anchor(), v.walls, visionRange)
		debugdraw.Polygon(screen, v.view, poly, debugdraw.ShadowColour)
	}

	debugdraw.Scene(screen, v.view, v.scene)
	if v.hasHit {
		debugdraw.Marker(screen, v.view, v.mapHit.Point, debugdraw.ProbeColour)
	}
	debugdraw.Status(screen, v.scene.Probe, v.hits)
}

// Layout keeps the logical screen at the configured window size.
func (v *Viewer) Layout(outsideWidth, outsideHeight int) (int, int) {
	return v.view.Width, v.view.Height
}
