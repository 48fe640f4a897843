// Package geom holds the 2D line algebra every collision query reduces to:
// vectors and points, oriented lines, rays and segments, their intersections,
// and which side of a line a point or a rigid shape sits on.
//
// Every value is immutable and allocation-free to copy. Nothing here logs or
// returns errors; degenerate inputs map onto a defined result instead.
package geom

import "github.com/chewxy/math32"

// Epsilon is the tolerance used for parallel-line detection and for the
// "on the line" band in side classification.
const Epsilon float32 = 1e-5

// V2 is a 2D displacement.
type V2 struct {
	X, Y float32
}

// P2 is a 2D position. Points subtract to vectors and vectors add to points.
type P2 struct {
	X, Y float32
}

// Add returns v + o.
func (v V2) Add(o V2) V2 { return V2{v.X + o.X, v.Y + o.Y} }

// Sub returns v - o.
func (v V2) Sub(o V2) V2 { return V2{v.X - o.X, v.Y - o.Y} }

// Scale returns v * s.
func (v V2) Scale(s float32) V2 { return V2{v.X * s, v.Y * s} }

// Neg returns -v.
func (v V2) Neg() V2 { return V2{-v.X, -v.Y} }

// Dot returns the dot product of v and o.
func (v V2) Dot(o V2) float32 { return v.X*o.X + v.Y*o.Y }

// Norm returns the Euclidean length of v.
func (v V2) Norm() float32 { return math32.Sqrt(v.Dot(v)) }

// Left returns v rotated 90 degrees counterclockwise.
func (v V2) Left() V2 { return V2{-v.Y, v.X} }

// Unit returns the direction of v. v must not be the zero vector; if it is,
// the components of the result are NaN.
func (v V2) Unit() Unit {
	u, _ := v.UnitAndNorm()
	return u
}

// UnitAndNorm returns the direction of v together with its length, sharing
// the square root between the two.
func (v V2) UnitAndNorm() (Unit, float32) {
	n := v.Norm()
	return Unit{v: V2{v.X / n, v.Y / n}}, n
}

// Add returns the point p displaced by v.
func (p P2) Add(v V2) P2 { return P2{p.X + v.X, p.Y + v.Y} }

// Sub returns the displacement from q to p.
func (p P2) Sub(q P2) V2 { return V2{p.X - q.X, p.Y - q.Y} }

// Coords returns p as a displacement from the origin.
func (p P2) Coords() V2 { return V2{p.X, p.Y} }

// Unit is a vector of length one. The only way to obtain one is by
// normalizing a V2, so holders never need to re-check its length.
type Unit struct {
	v V2
}

// V2 returns the underlying vector.
func (u Unit) V2() V2 { return u.v }

// X returns the x component.
func (u Unit) X() float32 { return u.v.X }

// Y returns the y component.
func (u Unit) Y() float32 { return u.v.Y }
