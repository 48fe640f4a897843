package geom

import "github.com/chewxy/math32"

// Intersect returns the point where a and b cross. It reports false when the
// directions are parallel within Epsilon, coincident lines included, or when
// the crossing lies outside either primitive's domain.
//
// The point is evaluated along a.
func Intersect(a, b Linear) (P2, bool) {
	lambda, mu, ok := solve(a.WholeLine(), b.WholeLine())
	if !ok {
		return P2{}, false
	}
	if !a.ParameterOn(lambda) || !b.ParameterOn(mu) {
		return P2{}, false
	}
	return a.WholeLine().At(lambda), true
}

// solve finds lambda and mu with la.At(lambda) == lb.At(mu).
//
//	la.p + lambda*la.d = lb.p + mu*lb.d
func solve(la, lb Line) (lambda, mu float32, ok bool) {
	da, db := la.d.v, lb.d.v
	offset := la.p.Sub(lb.p)

	denom := db.Y*da.X - db.X*da.Y
	if math32.Abs(denom) < Epsilon {
		return 0, 0, false
	}

	lambda = (db.X*offset.Y - db.Y*offset.X) / denom
	mu = (da.X*offset.Y - da.Y*offset.X) / denom
	return lambda, mu, true
}
