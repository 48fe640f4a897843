// Package collision answers broad-phase questions about tile colliders and
// actor footprints by reducing them to line queries from geom.
package collision

import (
	"github.com/chewxy/math32"

	"chosenoffset.com/platformer/internal/core/geom"
)

// IntRect is a half-open range of tile coordinates: Left <= x < Right,
// Bottom <= y < Top.
type IntRect struct {
	Left, Bottom, Right, Top int
}

// Empty reports whether r contains no tiles.
func (r IntRect) Empty() bool {
	return r.Left >= r.Right || r.Bottom >= r.Top
}

// Frustum is the world-space box a camera sees.
type Frustum struct {
	Centre   geom.P2
	HalfDims geom.V2
}

// NewFrustum returns the frustum of a camera at centre showing a screen of
// the given size at scale world units per pixel.
func NewFrustum(centre geom.P2, screen geom.V2, scale float32) Frustum {
	return Frustum{Centre: centre, HalfDims: screen.Scale(0.5 * scale)}
}

// IntBounds returns the smallest tile range covering f when one tile spans
// 1/scale world units.
func (f Frustum) IntBounds(scale float32) IntRect {
	bl := f.Centre.Add(f.HalfDims.Neg())
	tr := f.Centre.Add(f.HalfDims)
	return IntRect{
		Left:   int(math32.Floor(bl.X * scale)),
		Bottom: int(math32.Floor(bl.Y * scale)),
		Right:  int(math32.Ceil(tr.X * scale)),
		Top:    int(math32.Ceil(tr.Y * scale)),
	}
}

// Player footprint, anchored at the bottom centre of a 16x16 box.
const (
	PlayerWidth  = 16
	PlayerHeight = 16
)

// PlayerBounds returns the player's collider template.
func PlayerBounds() geom.Shape {
	return geom.NewRectShape(-PlayerWidth/2, 0, PlayerWidth, PlayerHeight)
}

// PlayerSide classifies the player standing at pos against l.
func PlayerSide(l geom.Line, pos geom.P2) geom.Side {
	return geom.ShapeSideOfLine(l, pos, PlayerBounds())
}
