package shadows

import (
	"github.com/chewxy/math32"

	"chosenoffset.com/platformer/internal/core/geom"
	"chosenoffset.com/platformer/internal/world/tilemap"
)

// mergeEpsilon is the endpoint tolerance for treating two walls as touching.
const mergeEpsilon = 0.001

// WallsFromMap generates occluding walls from every collider edge of the
// map's main layer. Edges shared by two touching colliders face each other
// and are dropped, then colinear walls that meet end to start are merged.
func WallsFromMap(m *tilemap.Map) []Wall {
	var walls []Wall

	for y := 0; y < m.Data.Rows; y++ {
		for x := 0; x < m.Data.Columns; x++ {
			ref, ok := m.TileAt(x, y)
			if !ok {
				continue
			}
			origin := m.TileOrigin(x, y)
			for _, part := range ref.Tile.Parts {
				for _, edge := range part.Edges(origin) {
					walls = append(walls, Wall{
						Segment:      edge,
						TilesCovered: []Coord{{X: x, Y: y}},
					})
				}
			}
		}
	}

	return mergeColinearWalls(dropInteriorWalls(walls))
}

// dropInteriorWalls removes pairs of walls that are each other's reverse.
func dropInteriorWalls(walls []Wall) []Wall {
	removed := make([]bool, len(walls))
	for i := range walls {
		if removed[i] {
			continue
		}
		for j := i + 1; j < len(walls); j++ {
			if removed[j] {
				continue
			}
			if near(walls[i].A(), walls[j].B()) && near(walls[i].B(), walls[j].A()) {
				removed[i], removed[j] = true, true
				break
			}
		}
	}

	var result []Wall
	for i, w := range walls {
		if !removed[i] {
			result = append(result, w)
		}
	}
	return result
}

// mergeColinearWalls combines walls that share a direction and meet end to
// start into longer walls
func mergeColinearWalls(walls []Wall) []Wall {
	if len(walls) == 0 {
		return walls
	}

	merged := make([]bool, len(walls))
	var result []Wall

	for i := range walls {
		if merged[i] {
			continue
		}

		current := walls[i]
		merged[i] = true

		// Keep extending until nothing else attaches
		extended := true
		for extended {
			extended = false

			for j := range walls {
				if merged[j] {
					continue
				}

				if next, ok := mergeWalls(current, walls[j]); ok {
					current = next
					merged[j] = true
					extended = true
					break
				}
			}
		}

		result = append(result, current)
	}

	return result
}

// mergeWalls joins a and b into one wall if they run the same way and one
// ends where the other starts.
func mergeWalls(a, b Wall) (Wall, bool) {
	da, db := a.Segment.Direction(), b.Segment.Direction()
	if da.V2().Dot(db.V2()) < 1-geom.Epsilon {
		return Wall{}, false
	}

	var start, end geom.P2
	switch {
	case near(a.B(), b.A()):
		start, end = a.A(), b.B()
	case near(b.B(), a.A()):
		start, end = b.A(), a.B()
	default:
		return Wall{}, false
	}

	tiles := make([]Coord, 0, len(a.TilesCovered)+len(b.TilesCovered))
	tiles = append(tiles, a.TilesCovered...)
	tiles = append(tiles, b.TilesCovered...)

	return Wall{
		Segment:      geom.NewSegmentFromPoints(start, end),
		TilesCovered: tiles,
	}, true
}

func near(p, q geom.P2) bool {
	return math32.Abs(p.X-q.X) < mergeEpsilon && math32.Abs(p.Y-q.Y) < mergeEpsilon
}
