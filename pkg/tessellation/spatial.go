package tessellation

import (
	"fmt"
	"math"

	"github.com/golang/geo/r3"
	"github.com/peterstace/simplefeatures/rtree"
)

// spatialIndex keeps vertices and face centroids in planar r-trees keyed on
// their x/y projection. Distance in x/y never exceeds distance in 3D, so a
// priority search in x/y order can stop once the planar distance passes the
// best 3D distance found.
type spatialIndex struct {
	vertices rtree.RTree
	faces    rtree.RTree
}

func newSpatialIndex() *spatialIndex {
	return &spatialIndex{}
}

func pointBox(p r3.Vector) rtree.Box {
	return rtree.Box{MinX: p.X, MinY: p.Y, MaxX: p.X, MaxY: p.Y}
}

func (s *spatialIndex) insertVertex(id VertexID, pos r3.Vector) {
	s.vertices.Insert(pointBox(pos), int(id))
}

func (s *spatialIndex) moveVertex(id VertexID, from, to r3.Vector) {
	s.vertices.Delete(pointBox(from), int(id))
	s.vertices.Insert(pointBox(to), int(id))
}

func (s *spatialIndex) insertFace(id FaceID, centroid r3.Vector) {
	s.faces.Insert(pointBox(centroid), int(id))
}

func (s *spatialIndex) moveFace(id FaceID, from, to r3.Vector) {
	if from == to {
		return
	}
	s.faces.Delete(pointBox(from), int(id))
	s.faces.Insert(pointBox(to), int(id))
}

// nearest returns the record whose position is closest to q in 3D.
func nearest(tree *rtree.RTree, q r3.Vector, position func(id int) r3.Vector) (int, bool) {
	best, bestDist := -1, math.Inf(1)
	_ = tree.PrioritySearch(pointBox(q), func(id int) error {
		p := position(id)
		if math.Hypot(p.X-q.X, p.Y-q.Y) > bestDist {
			return rtree.Stop
		}
		if d := p.Distance(q); d < bestDist {
			best, bestDist = id, d
		}
		return nil
	})
	return best, best >= 0
}

// NearestVertex returns the vertex closest to pos.
func (t *Tessellation) NearestVertex(pos r3.Vector) (VertexID, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	id, ok := nearest(&t.spatial.vertices, pos, func(id int) r3.Vector {
		return t.vertices[id].pos
	})
	if !ok {
		return 0, fmt.Errorf("nearest vertex: %w", ErrEmpty)
	}
	return VertexID(id), nil
}

// NearestFace returns the face whose centroid is closest to pos.
func (t *Tessellation) NearestFace(pos r3.Vector) (FaceID, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	id, ok := nearest(&t.spatial.faces, pos, func(id int) r3.Vector {
		return t.faces[id].centroid
	})
	if !ok {
		return NoFace, fmt.Errorf("nearest face: %w", ErrEmpty)
	}
	return FaceID(id), nil
}
