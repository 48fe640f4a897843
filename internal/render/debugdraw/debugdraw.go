// Package debugdraw renders geometry onto a render.Canvas for inspection.
package debugdraw

import (
	"fmt"
	"image/color"

	"github.com/chewxy/math32"

	"chosenoffset.com/platformer/internal/core/collision"
	"chosenoffset.com/platformer/internal/core/geom"
	"chosenoffset.com/platformer/internal/render"
	"chosenoffset.com/platformer/internal/scene"
	"chosenoffset.com/platformer/internal/world/tilemap"
)

// Colours used by the viewer
var (
	Background   = color.RGBA{0x10, 0x10, 0x18, 0xff}
	ProbeColour  = color.RGBA{0xff, 0xd0, 0x40, 0xff}
	LinearColour = color.RGBA{0xa0, 0xa0, 0xc0, 0xff}
	HitColour    = color.RGBA{0xff, 0x40, 0x40, 0xff}
	ShadowColour = color.RGBA{0x40, 0x80, 0xff, 0xff}
)

const (
	lineWidth    = 1.5
	markerRadius = 4
)

// SideColour returns the colour a shape is drawn in for its side of the probe.
func SideColour(s geom.Side) color.RGBA {
	switch s {
	case geom.Left:
		return color.RGBA{0x40, 0xe0, 0x60, 0xff}
	case geom.Right:
		return color.RGBA{0xe0, 0x60, 0xe0, 0xff}
	default:
		return color.RGBA{0xff, 0xff, 0xff, 0xff}
	}
}

// View maps world space (y up) onto a canvas (y down). Centre is the world
// point at the middle of the canvas and Scale is pixels per world unit.
type View struct {
	Centre        geom.P2
	Scale         float32
	Width, Height int
}

// ToScreen converts a world point to canvas pixels.
func (v View) ToScreen(p geom.P2) (x, y float32) {
	x = float32(v.Width)/2 + (p.X-v.Centre.X)*v.Scale
	y = float32(v.Height)/2 - (p.Y-v.Centre.Y)*v.Scale
	return x, y
}

// ToWorld converts canvas pixels to a world point.
func (v View) ToWorld(x, y int) geom.P2 {
	return geom.P2{
		X: v.Centre.X + (float32(x)-float32(v.Width)/2)/v.Scale,
		Y: v.Centre.Y - (float32(y)-float32(v.Height)/2)/v.Scale,
	}
}

// Frustum returns the world-space box the view shows.
func (v View) Frustum() collision.Frustum {
	return collision.NewFrustum(v.Centre, geom.V2{X: float32(v.Width), Y: float32(v.Height)}, 1/v.Scale)
}

// reach is a distance along any line through anchor that is guaranteed to
// leave the view.
func (v View) reach(anchor geom.P2) float32 {
	half := v.Frustum().HalfDims
	return anchor.Sub(v.Centre).Norm() + half.Norm()
}

// Extent returns the parameter range of l to draw in v: the whole segment,
// a ray from its origin, or a line in both directions.
func (v View) Extent(l geom.Linear) (lo, hi float32) {
	switch l := l.(type) {
	case geom.Segment:
		return 0, l.Dist()
	case geom.Ray:
		return 0, v.reach(l.Origin())
	default:
		r := v.reach(l.WholeLine().Anchor())
		return -r, r
	}
}

// Linear draws l clipped to the view.
func Linear(c render.Canvas, v View, l geom.Linear, clr color.Color) {
	lo, hi := v.Extent(l)
	line := l.WholeLine()
	x0, y0 := v.ToScreen(line.At(lo))
	x1, y1 := v.ToScreen(line.At(hi))
	c.StrokeLine(x0, y0, x1, y1, lineWidth, clr)

	switch l.(type) {
	case geom.Segment:
		c.FillCircle(x0, y0, lineWidth*1.5, clr)
		c.FillCircle(x1, y1, lineWidth*1.5, clr)
	case geom.Ray:
		c.FillCircle(x0, y0, lineWidth*1.5, clr)
	}
}

// Shape draws the outline of s placed at p.
func Shape(c render.Canvas, v View, p geom.P2, s geom.Shape, clr color.Color) {
	if s.Len() == 1 {
		x, y := v.ToScreen(s.At(p)[0])
		c.FillCircle(x, y, lineWidth, clr)
		return
	}
	for _, edge := range s.Edges(p) {
		x0, y0 := v.ToScreen(edge.Start())
		x1, y1 := v.ToScreen(edge.End())
		c.StrokeLine(x0, y0, x1, y1, lineWidth, clr)
	}
}

// Polygon draws a closed outline through points.
func Polygon(c render.Canvas, v View, points []geom.P2, clr color.Color) {
	for i := range points {
		x0, y0 := v.ToScreen(points[i])
		x1, y1 := v.ToScreen(points[(i+1)%len(points)])
		c.StrokeLine(x0, y0, x1, y1, 1, clr)
	}
}

// Marker draws a ring around p.
func Marker(c render.Canvas, v View, p geom.P2, clr color.Color) {
	x, y := v.ToScreen(p)
	c.StrokeCircle(x, y, markerRadius, lineWidth, clr)
}

// Scene draws every primitive in s, each shape coloured by its side of the
// probe, and rings every intersection.
func Scene(c render.Canvas, v View, s *scene.Scene) {
	for _, l := range s.Linears() {
		Linear(c, v, l, LinearColour)
	}
	sides := s.ShapeSides()
	for i, sh := range s.Shapes {
		Shape(c, v, sh.At, sh.Shape, SideColour(sides[i]))
	}
	Linear(c, v, s.Probe, ProbeColour)
	for _, p := range s.Intersections() {
		Marker(c, v, p, HitColour)
	}
}

// Map draws the colliders of every tile in view, coloured by side of probe.
// It returns the number of tiles drawn.
func Map(c render.Canvas, v View, m *tilemap.Map, probe geom.Line) int {
	size := m.TileSize()
	bounds := v.Frustum().IntBounds(1 / size)
	drawn := 0
	for _, side := range []geom.Side{geom.On, geom.Left, geom.Right} {
		clr := SideColour(side)
		for _, cell := range collision.TilesOnSide(m, probe, bounds, side) {
			origin := m.TileOrigin(cell.X, cell.Y)
			for _, part := range cell.Ref.Tile.Parts {
				Shape(c, v, origin, part, clr)
			}
			drawn++
		}
	}
	return drawn
}

// Status writes a one-line probe summary in the top-left corner.
func Status(c render.Canvas, probe geom.Line, hits int) {
	a := probe.Anchor()
	d := probe.Direction()
	angle := math32.Atan2(d.Y(), d.X()) * 180 / math32.Pi
	c.DebugText(fmt.Sprintf("probe (%.1f, %.1f) %.0f deg  hits: %d", a.X, a.Y, angle, hits), 4, 4)
}
