// Package shadows turns tile colliders into occluding walls and computes what
// a viewer can see past them.
package shadows

import "chosenoffset.com/platformer/internal/core/geom"

// Coord represents a tile coordinate
type Coord struct {
	X, Y int
}

// Wall is an occluding collider edge in world space
type Wall struct {
	Segment      geom.Segment
	TilesCovered []Coord // All tiles this wall runs along (for merged walls)
}

// A returns the wall's first endpoint.
func (w Wall) A() geom.P2 { return w.Segment.Start() }

// B returns the wall's second endpoint.
func (w Wall) B() geom.P2 { return w.Segment.End() }
