package tessellation

import (
	"testing"

	"github.com/golang/geo/r3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/mundimonium/pkg/isometric"
)

func assertChain(t *testing.T, tess *Tessellation, path []FaceID) {
	t.Helper()
	for i := 1; i < len(path); i++ {
		f, err := tess.Face(path[i-1])
		require.NoError(t, err)
		assert.True(t, f.IsAdjacentToFace(path[i]), "step %d: %d -> %d", i, path[i-1], path[i])
	}
}

func TestFacePathSimple(t *testing.T) {
	tess, err := Build(Lattice{Rows: 5, Cols: 6, SideLength: 1})
	require.NoError(t, err)

	start := FaceID(0)
	goal := FaceID(tess.NumFaces() - 1)
	path, cost, err := tess.FacePath(start, goal, nil)
	require.NoError(t, err)

	require.NotEmpty(t, path)
	assert.Equal(t, start, path[0])
	assert.Equal(t, goal, path[len(path)-1])
	assertChain(t, tess, path)

	s, _ := tess.Face(start)
	g, _ := tess.Face(goal)
	assert.GreaterOrEqual(t, cost, s.Centroid().Distance(g.Centroid())-tolerance)
}

func TestFacePathSameStartGoal(t *testing.T) {
	tess, err := Build(Lattice{Rows: 3, Cols: 3, SideLength: 1})
	require.NoError(t, err)

	path, cost, err := tess.FacePath(2, 2, nil)
	require.NoError(t, err)
	assert.Equal(t, []FaceID{2}, path)
	assert.Zero(t, cost)
}

func TestFacePathNoPath(t *testing.T) {
	tess := New()
	var ids []VertexID
	for _, p := range []r3.Vector{{X: 0}, {X: 1}, {X: 0.5, Y: 1}, {X: 5}, {X: 6}, {X: 5.5, Y: 1}} {
		id, err := tess.AddVertex(p)
		require.NoError(t, err)
		ids = append(ids, id)
	}
	a, err := tess.AddFace(ids[0], ids[1], ids[2])
	require.NoError(t, err)
	b, err := tess.AddFace(ids[3], ids[4], ids[5])
	require.NoError(t, err)

	_, _, err = tess.FacePath(a, b, nil)
	assert.ErrorIs(t, err, ErrNoPath)

	_, _, err = tess.FacePath(a, FaceID(10), nil)
	assert.ErrorIs(t, err, ErrUnknownFace)
	_, _, err = tess.FacePath(FaceID(-2), a, nil)
	assert.ErrorIs(t, err, ErrUnknownFace)
}

func TestFacePathAvoidsSlope(t *testing.T) {
	const cols = 8
	tess, err := Build(Lattice{Rows: 5, Cols: cols, SideLength: 1})
	require.NoError(t, err)

	h := isometric.Altitude(1)
	start, err := tess.NearestFace(r3.Vector{X: 0.6, Y: 1.8 * h})
	require.NoError(t, err)
	goal, err := tess.NearestFace(r3.Vector{X: 6.4, Y: 1.8 * h})
	require.NoError(t, err)

	_, flatCost, err := tess.FacePath(start, goal, CentroidDistance)
	require.NoError(t, err)

	// Raise a peak at row 2, column 3, between the two faces.
	peak, err := tess.Vertex(VertexID(2*cols + 3))
	require.NoError(t, err)
	peak.SetZ(5)

	path, cost, err := tess.FacePath(start, goal, SlopeWeighted(10, tess.Surface()))
	require.NoError(t, err)
	assertChain(t, tess, path)
	assert.GreaterOrEqual(t, cost, flatCost-tolerance)
	for _, fid := range path {
		assert.False(t, peak.IsAdjacentToFace(fid), "path crosses the peak at face %d", fid)
	}
}

func TestSlopeWeighted(t *testing.T) {
	cost := SlopeWeighted(2, Plane{})
	from := r3.Vector{X: 0, Y: 0, Z: 0}
	to := r3.Vector{X: 3, Y: 4, Z: 0}
	assert.InDelta(t, 5, cost(from, to), tolerance)

	up := r3.Vector{X: 0, Y: 0, Z: 1}
	assert.InDelta(t, 1+2, cost(from, up), tolerance)

	sphere := SlopeWeighted(1, Sphere{Radius: 1})
	assert.InDelta(t, 1+1, sphere(r3.Vector{X: 1}, r3.Vector{X: 2}), tolerance)

	negative := SlopeWeighted(-4, Plane{})
	assert.InDelta(t, 1, negative(from, up), tolerance)
}
