package shadows

import "chosenoffset.com/platformer/internal/core/geom"

// IsFacingPoint reports whether point is in front of w. Collider outlines run
// counterclockwise, so a wall faces the right-hand side of its direction.
func IsFacingPoint(w Wall, point geom.P2) bool {
	return geom.PointSideOfLine(w.Segment.WholeLine(), point) == geom.Right
}

// PointInPolygon tests if a point is inside a polygon using ray casting
func PointInPolygon(point geom.P2, polygon []geom.P2) bool {
	inside := false
	j := len(polygon) - 1

	for i := 0; i < len(polygon); i++ {
		pi, pj := polygon[i], polygon[j]
		if (pi.Y > point.Y) != (pj.Y > point.Y) &&
			point.X < (pj.X-pi.X)*(point.Y-pi.Y)/(pj.Y-pi.Y)+pi.X {
			inside = !inside
		}
		j = i
	}

	return inside
}

// InShadow reports whether point lies outside the viewer's visibility polygon.
func InShadow(viewer, point geom.P2, walls []Wall, maxDistance float32) bool {
	return !PointInPolygon(point, VisibilityPolygon(viewer, walls, maxDistance))
}
