package collision

import (
	"chosenoffset.com/platformer/internal/core/geom"
	"chosenoffset.com/platformer/internal/world/tilemap"
)

// Cell is a non-empty map tile at grid position (X, Y).
type Cell struct {
	X, Y int
	Ref  tilemap.TileRef
}

// Hit is where a cast first meets a tile collider.
type Hit struct {
	Cell  Cell
	Point geom.P2
	// Param is the hit's parameter along the cast direction.
	Param float32
}

// eachCollider calls fn for every tile in bounds that has a collider.
func eachCollider(m *tilemap.Map, bounds IntRect, fn func(c Cell, origin geom.P2)) {
	for y := bounds.Bottom; y < bounds.Top; y++ {
		for x := bounds.Left; x < bounds.Right; x++ {
			ref, ok := m.TileAt(x, y)
			if !ok || ref.Tile.Collider.Len() == 0 {
				continue
			}
			fn(Cell{X: x, Y: y, Ref: ref}, m.TileOrigin(x, y))
		}
	}
}

// TilesOnSide returns the tiles in bounds whose collider classifies as side
// against l. Passing geom.On selects tiles that straddle or lie along l.
func TilesOnSide(m *tilemap.Map, l geom.Line, bounds IntRect, side geom.Side) []Cell {
	var cells []Cell
	eachCollider(m, bounds, func(c Cell, origin geom.P2) {
		if geom.ShapeSideOfLine(l, origin, c.Ref.Tile.Collider) == side {
			cells = append(cells, c)
		}
	})
	return cells
}

// TilesStraddling returns the tiles in bounds whose collider is not entirely
// on one side of l.
func TilesStraddling(m *tilemap.Map, l geom.Line, bounds IntRect) []Cell {
	return TilesOnSide(m, l, bounds, geom.On)
}

// SideCounts tallies the vertices of s placed at p by their side of l,
// indexed by geom.Side.Index. It separates the two meanings of a geom.On
// shape result: straddling has both Left and Right counts non-zero.
func SideCounts(l geom.Line, p geom.P2, s geom.Shape) [3]int {
	var counts [3]int
	for i := 0; i < s.Len(); i++ {
		counts[geom.PointSideOfLine(l, p.Add(s.Vert(i))).Index()]++
	}
	return counts
}

// Straddles reports whether s placed at p has vertices strictly on both
// sides of l.
func Straddles(l geom.Line, p geom.P2, s geom.Shape) bool {
	counts := SideCounts(l, p, s)
	return counts[geom.Left.Index()] > 0 && counts[geom.Right.Index()] > 0
}

// FirstHit returns the collider edge crossing of cast with the smallest
// parameter along cast, looking only at tiles in bounds.
func FirstHit(m *tilemap.Map, cast geom.Linear, bounds IntRect) (Hit, bool) {
	var best Hit
	found := false
	eachCollider(m, bounds, func(c Cell, origin geom.P2) {
		for _, part := range c.Ref.Tile.Parts {
			for _, edge := range part.Edges(origin) {
				p, ok := geom.Intersect(cast, edge)
				if !ok {
					continue
				}
				param := geom.Project(cast, p)
				if !found || param < best.Param {
					best = Hit{Cell: c, Point: p, Param: param}
					found = true
				}
			}
		}
	})
	return best, found
}
