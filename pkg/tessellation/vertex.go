package tessellation

import (
	"fmt"

	"github.com/golang/geo/r3"
	"go.uber.org/zap"

	"github.com/Faultbox/mundimonium/pkg/isometric"
)

// Vertex is a corner shared by faces, embedded in 3D space.
type Vertex struct {
	t     *Tessellation
	id    VertexID
	pos   r3.Vector
	faces []FaceID
}

// ID returns the vertex handle.
func (v *Vertex) ID() VertexID { return v.id }

// Position returns the embedding coordinates.
func (v *Vertex) Position() r3.Vector { return v.pos }

// X returns the x coordinate.
func (v *Vertex) X() float64 { return v.pos.X }

// Y returns the y coordinate.
func (v *Vertex) Y() float64 { return v.pos.Y }

// Z returns the z coordinate.
func (v *Vertex) Z() float64 { return v.pos.Z }

// SetX moves the vertex along x, refreshing adjacent faces.
func (v *Vertex) SetX(x float64) { v.set(func(p *r3.Vector) { p.X = x }) }

// SetY moves the vertex along y, refreshing adjacent faces.
func (v *Vertex) SetY(y float64) { v.set(func(p *r3.Vector) { p.Y = y }) }

// SetZ moves the vertex along z, refreshing adjacent faces.
func (v *Vertex) SetZ(z float64) { v.set(func(p *r3.Vector) { p.Z = z }) }

func (v *Vertex) set(edit func(*r3.Vector)) {
	v.t.mu.Lock()
	defer v.t.mu.Unlock()

	pos := v.pos
	edit(&pos)
	v.t.moveVertex(v, pos)
}

// AdjacentFaces returns the faces that have v as a corner.
func (v *Vertex) AdjacentFaces() []FaceID {
	out := make([]FaceID, len(v.faces))
	copy(out, v.faces)
	return out
}

// IsAdjacentToFace reports whether face id has v as a corner.
func (v *Vertex) IsAdjacentToFace(id FaceID) bool {
	for _, f := range v.faces {
		if f == id {
			return true
		}
	}
	return false
}

// IsAdjacentToVertex reports whether some face has both v and other as
// corners.
func (v *Vertex) IsAdjacentToVertex(other VertexID) bool {
	if other == v.id {
		return false
	}
	for _, fid := range v.faces {
		if v.t.faces[fid].hasVertex(other) {
			return true
		}
	}
	return false
}

// AddAdjacentFace registers face id with v. The face must have v as a
// corner. It reports whether the face was newly added.
func (v *Vertex) AddAdjacentFace(id FaceID) (bool, error) {
	v.t.mu.Lock()
	defer v.t.mu.Unlock()

	if !v.t.hasFace(id) {
		return false, fmt.Errorf("%w: %d", ErrUnknownFace, id)
	}
	f := v.t.faces[id]
	if !f.hasVertex(v.id) {
		return false, fmt.Errorf("%w: vertex %d is not a corner of face %d", isometric.ErrNotAdjacent, v.id, id)
	}
	return v.addAdjacentFace(f), nil
}

// addAdjacentFace requires the write lock. A new face is wired to every
// face already registered here.
func (v *Vertex) addAdjacentFace(f *Face) bool {
	if v.IsAdjacentToFace(f.id) {
		return false
	}
	for _, other := range v.faces {
		f.recalculateAdjacencyTo(v.t.faces[other], true)
	}
	v.faces = append(v.faces, f.id)

	v.t.log.Debug("face registered with vertex",
		zap.Int("vertex", int(v.id)),
		zap.Int("face", int(f.id)))
	return true
}

// String returns "vertex N".
func (v *Vertex) String() string {
	return fmt.Sprintf("vertex %d", v.id)
}
