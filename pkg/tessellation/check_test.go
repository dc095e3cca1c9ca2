package tessellation

import (
	"testing"

	"github.com/golang/geo/r3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckPassesOnGeneratedMeshes(t *testing.T) {
	lattice, err := Build(Lattice{Rows: 5, Cols: 6, SideLength: 2})
	require.NoError(t, err)
	assert.NoError(t, lattice.Check())

	sphere, err := Build(Icosphere{Radius: 1, Subdivisions: 2})
	require.NoError(t, err)
	assert.NoError(t, sphere.Check())
}

func TestCheckReportsCorruption(t *testing.T) {
	tess, f, g := unitRhombus(t)

	// Corrupt directly, bypassing the fan-out.
	tess.vertices[0].pos = r3.Vector{X: 10}
	tess.faces[g.ID()].neighbors = [3]FaceID{NoFace, NoFace, NoFace}

	err := tess.Check()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInconsistent)
	assert.Contains(t, err.Error(), "centroid is stale")
	assert.Contains(t, err.Error(), f.String())
}

func TestStats(t *testing.T) {
	tess, err := Build(Lattice{Rows: 3, Cols: 3, SideLength: 1})
	require.NoError(t, err)

	s := tess.Stats()
	assert.Equal(t, 9, s.Vertices)
	assert.Equal(t, 8, s.Faces)
	assert.Equal(t, 16, s.Edges)
	assert.Equal(t, 8, s.BorderEdges)
	assert.InDelta(t, 1.0, s.MeanSide, 1e-12)
	assert.InDelta(t, 1.0, s.MinSide, 1e-12)
	assert.InDelta(t, 1.0, s.MaxSide, 1e-12)

	sphere, err := Build(Icosphere{Radius: 1})
	require.NoError(t, err)
	s = sphere.Stats()
	assert.Equal(t, 30, s.Edges)
	assert.Zero(t, s.BorderEdges)
}
