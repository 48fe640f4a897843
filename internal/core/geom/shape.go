package geom

// Shape is a rigid polygon template: vertex offsets from an origin that the
// caller supplies at query time.
type Shape struct {
	verts []V2
}

// NewShape creates a shape from a copy of verts.
func NewShape(verts []V2) Shape {
	cp := make([]V2, len(verts))
	copy(cp, verts)
	return Shape{verts: cp}
}

// NewRectShape creates the axis-aligned rectangle with corner (x, y) and the
// given size. Vertices run (x,y), (x+w,y), (x+w,y+h), (x,y+h).
func NewRectShape(x, y, w, h float32) Shape {
	return Shape{verts: []V2{
		{x, y},
		{x + w, y},
		{x + w, y + h},
		{x, y + h},
	}}
}

// Len returns the number of vertices.
func (s Shape) Len() int { return len(s.verts) }

// Vert returns vertex i.
func (s Shape) Vert(i int) V2 { return s.verts[i] }

// Verts returns a copy of the vertex offsets.
func (s Shape) Verts() []V2 {
	cp := make([]V2, len(s.verts))
	copy(cp, s.verts)
	return cp
}

// At returns the world-space vertices of s placed at p.
func (s Shape) At(p P2) []P2 {
	pts := make([]P2, len(s.verts))
	for i, v := range s.verts {
		pts[i] = p.Add(v)
	}
	return pts
}

// Translate returns a new shape with every offset moved by d.
func (s Shape) Translate(d V2) Shape {
	verts := make([]V2, len(s.verts))
	for i, v := range s.verts {
		verts[i] = v.Add(d)
	}
	return Shape{verts: verts}
}

// Append returns a new shape holding the vertices of s followed by those of o.
func (s Shape) Append(o Shape) Shape {
	verts := make([]V2, 0, len(s.verts)+len(o.verts))
	verts = append(verts, s.verts...)
	verts = append(verts, o.verts...)
	return Shape{verts: verts}
}

// Edges returns the closed outline of s placed at p as segments, skipping
// zero-length edges. Shapes with fewer than two vertices have no edges.
func (s Shape) Edges(p P2) []Segment {
	if len(s.verts) < 2 {
		return nil
	}
	pts := s.At(p)
	n := len(pts)
	if n == 2 {
		n = 1
	}
	edges := make([]Segment, 0, n)
	for i := 0; i < n; i++ {
		a, b := pts[i], pts[(i+1)%len(pts)]
		if a == b {
			continue
		}
		edges = append(edges, NewSegmentFromPoints(a, b))
	}
	return edges
}
