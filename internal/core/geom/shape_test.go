package geom

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewShapeCopiesVertices(t *testing.T) {
	verts := []V2{{0, 0}, {1, 0}, {1, 1}}
	s := NewShape(verts)
	verts[0] = V2{99, 99}

	assert.Equal(t, V2{0, 0}, s.Vert(0))

	out := s.Verts()
	out[1] = V2{-5, -5}
	assert.Equal(t, V2{1, 0}, s.Vert(1))
	assert.Equal(t, 3, s.Len())
}

func TestNewRectShape(t *testing.T) {
	r := NewRectShape(2, 3, 4, 5)

	assert.Equal(t, []V2{{2, 3}, {6, 3}, {6, 8}, {2, 8}}, r.Verts())
}

func TestShapePlacement(t *testing.T) {
	s := square()

	pts := s.At(P2{10, 20})
	assert.Equal(t, []P2{{9, 19}, {11, 19}, {11, 21}, {9, 21}}, pts)

	moved := s.Translate(V2{1, 1})
	assert.Equal(t, V2{0, 0}, moved.Vert(0))
	assert.Equal(t, V2{-1, -1}, s.Vert(0), "translate must not touch the receiver")

	both := s.Append(NewShape([]V2{{5, 5}}))
	assert.Equal(t, 5, both.Len())
	assert.Equal(t, V2{5, 5}, both.Vert(4))
}

func TestShapeEdges(t *testing.T) {
	edges := square().Edges(P2{0, 0})
	require.Len(t, edges, 4)
	for _, e := range edges {
		assert.InDelta(t, 2, e.Dist(), 1e-6)
	}
	assert.Equal(t, P2{-1, -1}, edges[0].Start())
	assert.Equal(t, P2{-1, 1}, edges[3].Start())

	two := NewShape([]V2{{0, 0}, {3, 4}})
	require.Len(t, two.Edges(P2{0, 0}), 1)
	assert.InDelta(t, 5, two.Edges(P2{0, 0})[0].Dist(), 1e-6)

	assert.Empty(t, NewShape([]V2{{1, 1}}).Edges(P2{0, 0}))

	// Repeated vertices produce no zero-length edges.
	dup := NewShape([]V2{{0, 0}, {0, 0}, {2, 0}, {2, 2}})
	assert.Len(t, dup.Edges(P2{0, 0}), 3)
}
