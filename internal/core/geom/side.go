package geom

// Side says where something sits relative to an oriented line. Left is the
// side the line's left-hand normal points toward.
type Side int

const (
	// On means on the line for a point. For a shape it also means the shape
	// straddles the line.
	On Side = iota
	Left
	Right
)

// Index returns a stable small integer for s, usable as a table index.
func (s Side) Index() int {
	switch s {
	case Left:
		return 1
	case Right:
		return 2
	default:
		return 0
	}
}

func (s Side) String() string {
	switch s {
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "on"
	}
}

// PointSideOfLine classifies p against l. Points within Epsilon of the line
// are On.
func PointSideOfLine(l Line, p P2) Side {
	off := p.Sub(l.p)
	n := l.d.v.Left().Unit()
	dp := n.v.Dot(off)
	switch {
	case dp > Epsilon:
		return Left
	case dp < -Epsilon:
		return Right
	default:
		return On
	}
}

// ShapeSideOfLine classifies every vertex of s placed at p. Vertices on the
// line are ignored; if the rest agree their side is returned, otherwise On.
// A shape with no vertices, or with every vertex on the line, is On.
func ShapeSideOfLine(l Line, p P2, s Shape) Side {
	prev := On
	for _, v := range s.verts {
		side := PointSideOfLine(l, p.Add(v))
		switch {
		case side == On:
			continue
		case prev == On:
			prev = side
		case prev != side:
			return On
		}
	}
	return prev
}
