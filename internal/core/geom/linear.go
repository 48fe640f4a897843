package geom

// Linear is anything made of an anchor and a unit direction whose valid
// parameters form some subset of the reals.
type Linear interface {
	// WholeLine returns the infinite line through the primitive.
	WholeLine() Line
	// ParameterOn reports whether lambda is inside the primitive's domain.
	ParameterOn(lambda float32) bool
	// Direction returns the primitive's unit direction.
	Direction() Unit
}

// Project returns the parameter of the point on l's underlying infinite line
// closest to p. The result is not clamped to l's domain.
func Project(l Linear, p P2) float32 {
	line := l.WholeLine()
	return p.Sub(line.p).Dot(line.d.v)
}

// Line is the full line { p + lambda*d : lambda in R }.
type Line struct {
	p P2
	d Unit
}

// NewLine creates a line through p heading along d.
func NewLine(p P2, d Unit) Line {
	return Line{p: p, d: d}
}

// Anchor returns the point the line is parameterized from.
func (l Line) Anchor() P2 { return l.p }

// At returns the point at parameter lambda.
func (l Line) At(lambda float32) P2 {
	return l.p.Add(l.d.v.Scale(lambda))
}

// WholeLine, ParameterOn and Direction implement Linear; every lambda is on a
// line.
func (l Line) WholeLine() Line { return l }
func (l Line) ParameterOn(float32) bool { return true }
func (l Line) Direction() Unit { return l.d }

// Ray is a line restricted to lambda >= 0.
type Ray struct {
	line Line
}

// NewRay creates a ray starting at p heading along d.
func NewRay(p P2, d Unit) Ray {
	return Ray{line: NewLine(p, d)}
}

// Origin returns the ray's starting point.
func (r Ray) Origin() P2 { return r.line.p }

// WholeLine, ParameterOn and Direction implement Linear for lambda >= 0.
func (r Ray) WholeLine() Line { return r.line }
func (r Ray) ParameterOn(lambda float32) bool { return lambda >= 0 }
func (r Ray) Direction() Unit { return r.line.d }

// Segment is a ray restricted to 0 <= lambda <= dist.
type Segment struct {
	ray  Ray
	dist float32
}

// NewSegmentFromRay cuts ray off after dist.
func NewSegmentFromRay(ray Ray, dist float32) Segment {
	return Segment{ray: ray, dist: dist}
}

// NewSegmentFromPoints creates the segment running from a to b. a and b must
// be distinct.
func NewSegmentFromPoints(a, b P2) Segment {
	dir, dist := b.Sub(a).UnitAndNorm()
	return Segment{ray: NewRay(a, dir), dist: dist}
}

// NewSegmentFromDisplacement creates the segment running from p to p+d. d
// must be non-zero.
func NewSegmentFromDisplacement(p P2, d V2) Segment {
	dir, dist := d.UnitAndNorm()
	return Segment{ray: NewRay(p, dir), dist: dist}
}

// Ray returns the segment with its upper bound dropped.
func (s Segment) Ray() Ray { return s.ray }

// Dist returns the segment's length.
func (s Segment) Dist() float32 { return s.dist }

// Start returns the segment's first endpoint.
func (s Segment) Start() P2 { return s.ray.line.p }

// End returns the segment's second endpoint.
func (s Segment) End() P2 { return s.ray.line.At(s.dist) }

// WholeLine, ParameterOn and Direction implement Linear for
// 0 <= lambda <= Dist, endpoints included.
func (s Segment) WholeLine() Line { return s.ray.WholeLine() }
func (s Segment) ParameterOn(lambda float32) bool { return lambda >= 0 && lambda <= s.dist }
func (s Segment) Direction() Unit { return s.ray.Direction() }
