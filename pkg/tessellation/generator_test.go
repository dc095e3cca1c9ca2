package tessellation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/mundimonium/pkg/isometric"
)

// assertAdjacencySymmetric checks every ordered pair of faces.
func assertAdjacencySymmetric(t *testing.T, tess *Tessellation) {
	t.Helper()
	faces := tess.Faces()
	for _, f := range faces {
		for _, g := range faces {
			fg, gf := f.IsAdjacentToFace(g.ID()), g.IsAdjacentToFace(f.ID())
			require.Equal(t, fg, gf, "%v/%v", f, g)
			if !fg {
				continue
			}
			d, err := f.DirectionOppositeFace(g.ID())
			require.NoError(t, err)
			got, ok := f.FaceOnEdge(d)
			require.True(t, ok)
			assert.Equal(t, g.ID(), got)

			// The slot points across the side opposite the unshared corner.
			corner, err := f.VertexAt(d)
			require.NoError(t, err)
			_, err = g.DirectionToward(corner)
			assert.ErrorIs(t, err, isometric.ErrNotAdjacent)
		}
	}
}

func TestLattice(t *testing.T) {
	tests := []struct {
		rows, cols int
	}{
		{2, 2},
		{2, 3},
		{3, 3},
		{5, 4},
	}
	for _, tt := range tests {
		tess, err := Build(Lattice{Rows: tt.rows, Cols: tt.cols, SideLength: 2})
		require.NoError(t, err)

		assert.Equal(t, tt.rows*tt.cols, tess.NumVertices())
		assert.Equal(t, 2*(tt.rows-1)*(tt.cols-1), tess.NumFaces())
		for _, f := range tess.Faces() {
			assert.InDelta(t, 2, f.SideLength(), tolerance, "%v", f)
		}
		assertAdjacencySymmetric(t, tess)
		assert.Equal(t, Plane{}, tess.Surface())
	}
}

func TestLatticeInvalid(t *testing.T) {
	_, err := Build(Lattice{Rows: 1, Cols: 5, SideLength: 1})
	assert.Error(t, err)
	_, err = Build(Lattice{Rows: 3, Cols: 3, SideLength: 0})
	assert.Error(t, err)
}

func TestLatticeInteriorFacesHaveThreeNeighbors(t *testing.T) {
	tess, err := Build(Lattice{Rows: 4, Cols: 4, SideLength: 1})
	require.NoError(t, err)

	full := 0
	for _, f := range tess.Faces() {
		n := 0
		for _, d := range isometric.Directions {
			if _, ok := f.FaceOnEdge(d); ok {
				n++
			}
		}
		assert.GreaterOrEqual(t, n, 1)
		if n == 3 {
			full++
		}
	}
	assert.Positive(t, full)
}

func TestIcosphere(t *testing.T) {
	for n := 0; n <= 2; n++ {
		tess, err := Build(Icosphere{Radius: 3, Subdivisions: n})
		require.NoError(t, err)

		scale := 1 << (2 * n)
		assert.Equal(t, 10*scale+2, tess.NumVertices())
		assert.Equal(t, 20*scale, tess.NumFaces())

		for _, v := range tess.Vertices() {
			assert.InDelta(t, 3, v.Position().Norm(), 1e-9)
		}
		for _, f := range tess.Faces() {
			for _, d := range isometric.Directions {
				_, ok := f.FaceOnEdge(d)
				assert.True(t, ok, "closed surface: %v side %v", f, d)
			}
		}
		if n <= 1 {
			assertAdjacencySymmetric(t, tess)
		}
	}
}

func TestIcosphereInvalid(t *testing.T) {
	_, err := Build(Icosphere{Radius: 0})
	assert.Error(t, err)
	_, err = Build(Icosphere{Radius: 1, Subdivisions: -1})
	assert.Error(t, err)
}

func TestIcosphereDistanceAcrossEveryEdge(t *testing.T) {
	tess, err := Build(Icosphere{Radius: 1, Subdivisions: 1})
	require.NoError(t, err)

	for _, f := range tess.Faces() {
		for _, d := range isometric.Directions {
			id, ok := f.FaceOnEdge(d)
			require.True(t, ok)
			g, err := tess.Face(id)
			require.NoError(t, err)

			fg, err := f.Center().DistanceFrom(g.Center())
			require.NoError(t, err)
			gf, err := g.Center().DistanceFrom(f.Center())
			require.NoError(t, err)
			assert.InDelta(t, fg, gf, 1e-9)
			assert.Positive(t, fg)

			p, err := f.Center().ProjectOntoAdjacentGrid(g)
			require.NoError(t, err)
			back, err := p.ProjectOntoAdjacentGrid(f)
			require.NoError(t, err)
			assert.InDelta(t, f.Apothem(), back.B(), 1e-9)
			assert.InDelta(t, f.Apothem(), back.S(), 1e-9)
		}
	}
}
