package shadows

import (
	"sort"

	"github.com/chewxy/math32"

	"chosenoffset.com/platformer/internal/core/geom"
)

// angleOffset nudges rays either side of each wall vertex so they slip past
// corners.
const angleOffset = 0.0001

// ringRays is the number of evenly spaced rays always cast so open space
// without nearby walls still gets a bounded outline.
const ringRays = 8

// VisibilityPolygon calculates what the viewer can see from their position.
// It returns the polygon of visible area, counterclockwise by angle;
// everything outside it is in shadow.
func VisibilityPolygon(viewer geom.P2, walls []Wall, maxDistance float32) []geom.P2 {
	angles := castAngles(viewer, collectVertices(walls))

	visible := make([]geom.P2, 0, len(angles))
	for _, angle := range angles {
		dir := geom.V2{X: math32.Cos(angle), Y: math32.Sin(angle)}.Unit()
		ray := geom.NewRay(viewer, dir)

		closestDist := maxDistance
		closest := ray.WholeLine().At(maxDistance)

		for _, w := range walls {
			p, ok := geom.Intersect(ray, w.Segment)
			if !ok {
				continue
			}
			if d := geom.Project(ray, p); d < closestDist {
				closestDist = d
				closest = p
			}
		}

		visible = append(visible, closest)
	}

	return visible
}

// castAngles returns the sorted, de-duplicated ray angles in [0, 2π): the
// fixed ring plus every vertex direction with a slightly smaller and larger
// neighbour.
func castAngles(viewer geom.P2, vertices []geom.P2) []float32 {
	seen := make(map[float32]bool)
	var angles []float32

	for i := 0; i < ringRays; i++ {
		a := float32(i) * 2 * math32.Pi / ringRays
		seen[a] = true
		angles = append(angles, a)
	}

	for _, v := range vertices {
		base := math32.Atan2(v.Y-viewer.Y, v.X-viewer.X)
		for _, a := range []float32{base - angleOffset, base, base + angleOffset} {
			a = math32.Mod(a, 2*math32.Pi)
			if a < 0 {
				a += 2 * math32.Pi
			}
			if !seen[a] {
				seen[a] = true
				angles = append(angles, a)
			}
		}
	}

	sort.Slice(angles, func(i, j int) bool { return angles[i] < angles[j] })
	return angles
}

// collectVertices extracts all unique endpoints of walls
func collectVertices(walls []Wall) []geom.P2 {
	seen := make(map[geom.P2]bool)
	var vertices []geom.P2

	for _, w := range walls {
		for _, p := range []geom.P2{w.A(), w.B()} {
			if !seen[p] {
				seen[p] = true
				vertices = append(vertices, p)
			}
		}
	}

	return vertices
}
