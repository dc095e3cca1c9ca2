package tessellation

import (
	"fmt"

	"github.com/golang/geo/r3"
	"go.uber.org/zap"

	"github.com/Faultbox/mundimonium/pkg/isometric"
)

// Face is a triangular cell bounded by three vertices. It is an
// isometric.Grid: points on a face are measured in its own b/s/d frame.
//
// Both per-face tables are indexed by the opposite direction: the vertex at
// direction d is the corner opposite side d, and the neighbour at d is the
// face across side d.
type Face struct {
	t         *Tessellation
	id        FaceID
	vertices  [isometric.NumDirections]VertexID
	neighbors [isometric.NumDirections]FaceID
	centroid  r3.Vector
	side      float64
}

var _ isometric.Grid = (*Face)(nil)

// ID returns the face handle.
func (f *Face) ID() FaceID { return f.id }

// Vertices returns the corners in direction order.
func (f *Face) Vertices() [isometric.NumDirections]VertexID { return f.vertices }

// Neighbors returns the adjacency table in direction order.
func (f *Face) Neighbors() [isometric.NumDirections]FaceID { return f.neighbors }

// Centroid returns the mean of the three corner positions.
func (f *Face) Centroid() r3.Vector { return f.centroid }

// SideLength returns the mean embedded edge length.
func (f *Face) SideLength() float64 { return f.side }

// Apothem returns the distance from the centroid to each side.
func (f *Face) Apothem() float64 { return isometric.Apothem(f.side) }

// Altitude returns the height of the face over any side.
func (f *Face) Altitude() float64 { return isometric.Altitude(f.side) }

// Center returns a new point at the centroid of f.
func (f *Face) Center() *isometric.Point { return isometric.Center(f) }

// Embed returns the embedding position of p. Points on a neighbouring face
// are projected onto f first.
func (f *Face) Embed(p *isometric.Point) (r3.Vector, error) {
	q, err := p.ProjectOntoAdjacentGrid(f)
	if err != nil {
		return r3.Vector{}, err
	}
	h := f.Altitude()
	var pos r3.Vector
	for _, d := range isometric.Directions {
		w, _ := q.Get(d)
		pos = pos.Add(f.t.vertices[f.vertices[d]].pos.Mul(w / h))
	}
	return pos, nil
}

// VertexAt returns the corner opposite side d.
func (f *Face) VertexAt(d isometric.Direction) (VertexID, error) {
	if !d.Valid() {
		return 0, fmt.Errorf("%w: %v", isometric.ErrInvalidKey, d)
	}
	return f.vertices[d], nil
}

// FaceOnEdge returns the face across side d, if any.
func (f *Face) FaceOnEdge(d isometric.Direction) (FaceID, bool) {
	if !d.Valid() || f.neighbors[d] == NoFace {
		return NoFace, false
	}
	return f.neighbors[d], true
}

// DirectionToward returns the direction whose opposite corner is v.
func (f *Face) DirectionToward(v VertexID) (isometric.Direction, error) {
	for _, d := range isometric.Directions {
		if f.vertices[d] == v {
			return d, nil
		}
	}
	return 0, fmt.Errorf("%w: vertex %d is not a corner of face %d", isometric.ErrNotAdjacent, v, f.id)
}

// DirectionOppositeFace returns the side of f shared with face id.
func (f *Face) DirectionOppositeFace(id FaceID) (isometric.Direction, error) {
	if id != NoFace {
		for _, d := range isometric.Directions {
			if f.neighbors[d] == id {
				return d, nil
			}
		}
	}
	return 0, fmt.Errorf("%w: faces %d and %d", isometric.ErrNotAdjacent, f.id, id)
}

// IsAdjacentToFace reports whether face id shares a side with f.
func (f *Face) IsAdjacentToFace(id FaceID) bool {
	_, err := f.DirectionOppositeFace(id)
	return err == nil
}

// VertexKey implements isometric.Grid.
func (f *Face) VertexKey(d isometric.Direction) int {
	if !d.Valid() {
		return -1
	}
	return int(f.vertices[d])
}

// DirectionTowardVertex implements isometric.Grid.
func (f *Face) DirectionTowardVertex(key int) (isometric.Direction, error) {
	return f.DirectionToward(VertexID(key))
}

// DirectionOppositeGrid implements isometric.Grid.
func (f *Face) DirectionOppositeGrid(other isometric.Grid) (isometric.Direction, error) {
	o, ok := other.(*Face)
	if !ok || o == nil || o.t != f.t {
		return 0, fmt.Errorf("%w: face %d and %v", isometric.ErrNotAdjacent, f.id, other)
	}
	return f.DirectionOppositeFace(o.id)
}

// RecalculateAdjacencyTo updates the adjacency between f and other. With
// bilateral set, other's table is updated as well.
func (f *Face) RecalculateAdjacencyTo(other FaceID, bilateral bool) error {
	f.t.mu.Lock()
	defer f.t.mu.Unlock()

	if !f.t.hasFace(other) {
		return fmt.Errorf("%w: %d", ErrUnknownFace, other)
	}
	f.recalculateAdjacencyTo(f.t.faces[other], bilateral)
	return nil
}

// recalculateAdjacencyTo requires the write lock. Two faces are adjacent
// iff they share exactly two corners; the slot opposite the unshared corner
// points at the neighbour.
func (f *Face) recalculateAdjacencyTo(other *Face, bilateral bool) {
	if other == f {
		return
	}

	var shared [isometric.NumDirections]bool
	count := 0
	for _, d := range isometric.Directions {
		if other.hasVertex(f.vertices[d]) {
			shared[d] = true
			count++
		}
	}
	adjacent := count == 2

	for _, d := range isometric.Directions {
		switch {
		case adjacent && !shared[d]:
			if prev := f.neighbors[d]; prev != NoFace && prev != other.id {
				f.t.log.Warn("edge shared by more than two faces",
					zap.Int("face", int(f.id)),
					zap.Int("replaced", int(prev)),
					zap.Int("neighbor", int(other.id)))
			}
			f.neighbors[d] = other.id
		case f.neighbors[d] == other.id:
			f.neighbors[d] = NoFace
		}
	}

	if bilateral {
		other.recalculateAdjacencyTo(f, false)
	}
}

// RecalculateCentroid refreshes the centroid and side length from the
// current corner positions.
func (f *Face) RecalculateCentroid() {
	f.t.mu.Lock()
	defer f.t.mu.Unlock()

	before := f.centroid
	f.recalculateShape()
	f.t.spatial.moveFace(f.id, before, f.centroid)
}

// recalculateShape requires the write lock.
func (f *Face) recalculateShape() {
	var p [isometric.NumDirections]r3.Vector
	for i, v := range f.vertices {
		p[i] = f.t.vertices[v].pos
	}
	f.centroid = p[0].Add(p[1]).Add(p[2]).Mul(1.0 / 3)
	f.side = (p[0].Distance(p[1]) + p[1].Distance(p[2]) + p[2].Distance(p[0])) / 3
}

func (f *Face) hasVertex(v VertexID) bool {
	for _, fv := range f.vertices {
		if fv == v {
			return true
		}
	}
	return false
}

// String returns "face N".
func (f *Face) String() string {
	return fmt.Sprintf("face %d", f.id)
}
