// Package tessellation builds meshes of triangular faces over a surface.
//
// A Tessellation owns every vertex and face. Vertices and faces are
// addressed by stable integer handles; faces hold their three corner
// vertices and vertices keep a back-reference list of the faces they touch
// so that moving a vertex refreshes every face built on it.
//
// Concurrency: mutating methods (AddVertex, AddFace, MoveVertex, the vertex
// setters and the Recalculate* methods) take an exclusive lock for the whole
// fan-out. Query methods on Face and Vertex do not lock; readers that may
// race with a writer wrap their queries in Read. NearestVertex, NearestFace,
// FacePath and Distances take the read lock themselves and must not be
// called from inside Read.
package tessellation

import (
	"errors"
	"fmt"
	"slices"
	"sort"
	"sync"

	"github.com/golang/geo/r3"
	"go.uber.org/zap"

	"github.com/Faultbox/mundimonium/pkg/isometric"
)

// Tessellation errors.
var (
	ErrUnknownVertex  = errors.New("unknown vertex")
	ErrUnknownFace    = errors.New("unknown face")
	ErrDegenerateFace = errors.New("face needs three distinct vertices")
	ErrDuplicateFace  = errors.New("face already exists")
	ErrNoPath         = errors.New("no path between faces")
	ErrNonManifold    = errors.New("edge already shared by two faces")
	ErrEmpty          = errors.New("tessellation is empty")
)

// VertexID addresses a vertex within its tessellation.
type VertexID int

// FaceID addresses a face within its tessellation.
type FaceID int

// NoFace marks an empty adjacency slot.
const NoFace FaceID = -1

// Tessellation is a graph of vertices and triangular faces.
type Tessellation struct {
	mu sync.RWMutex

	log     *zap.Logger
	surface Surface

	vertices []*Vertex
	faces    []*Face

	// edges is the vertex neighbour graph, parallel to vertices.
	edges     [][]VertexID
	faceIndex map[[3]VertexID]FaceID

	spatial *spatialIndex
}

// Option configures a Tessellation.
type Option func(*Tessellation)

// WithLogger sets the logger used for mesh events.
func WithLogger(l *zap.Logger) Option {
	return func(t *Tessellation) {
		if l != nil {
			t.log = l
		}
	}
}

// WithSurface sets the surface the mesh is embedded on. Default is Plane.
func WithSurface(s Surface) Option {
	return func(t *Tessellation) {
		if s != nil {
			t.surface = s
		}
	}
}

// New creates an empty tessellation.
func New(opts ...Option) *Tessellation {
	t := &Tessellation{
		log:       zap.NewNop(),
		surface:   Plane{},
		faceIndex: make(map[[3]VertexID]FaceID),
		spatial:   newSpatialIndex(),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Read runs fn while holding the read lock. Queries inside fn see a mesh
// that no writer is modifying.
func (t *Tessellation) Read(fn func() error) error {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return fn()
}

// Surface returns the surface the mesh is embedded on.
func (t *Tessellation) Surface() Surface { return t.surface }

// NumVertices returns the vertex count.
func (t *Tessellation) NumVertices() int { return len(t.vertices) }

// NumFaces returns the face count.
func (t *Tessellation) NumFaces() int { return len(t.faces) }

// Vertex returns the vertex with the given handle.
func (t *Tessellation) Vertex(id VertexID) (*Vertex, error) {
	if !t.hasVertex(id) {
		return nil, fmt.Errorf("%w: %d", ErrUnknownVertex, id)
	}
	return t.vertices[id], nil
}

// Face returns the face with the given handle.
func (t *Tessellation) Face(id FaceID) (*Face, error) {
	if !t.hasFace(id) {
		return nil, fmt.Errorf("%w: %d", ErrUnknownFace, id)
	}
	return t.faces[id], nil
}

// Vertices returns every vertex in handle order.
func (t *Tessellation) Vertices() []*Vertex {
	out := make([]*Vertex, len(t.vertices))
	copy(out, t.vertices)
	return out
}

// Faces returns every face in handle order.
func (t *Tessellation) Faces() []*Face {
	out := make([]*Face, len(t.faces))
	copy(out, t.faces)
	return out
}

// Neighbors returns the vertices joined to v by an edge.
func (t *Tessellation) Neighbors(v VertexID) ([]VertexID, error) {
	if !t.hasVertex(v) {
		return nil, fmt.Errorf("%w: %d", ErrUnknownVertex, v)
	}
	out := make([]VertexID, len(t.edges[v]))
	copy(out, t.edges[v])
	return out, nil
}

// FaceWith returns the face whose corners are exactly a, b and c.
func (t *Tessellation) FaceWith(a, b, c VertexID) (FaceID, bool) {
	id, ok := t.faceIndex[faceKey(a, b, c)]
	return id, ok
}

// AddVertex adds a vertex at pos joined by edges to neighbors. A face is
// created for every pair of neighbors that are themselves joined. The
// vertex is rejected with ErrNonManifold if any edge would end up on more
// than two faces.
func (t *Tessellation) AddVertex(pos r3.Vector, neighbors ...VertexID) (VertexID, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	var ns []VertexID
	for _, n := range neighbors {
		if !t.hasVertex(n) {
			return 0, fmt.Errorf("adding vertex: %w: %d", ErrUnknownVertex, n)
		}
		if !slices.Contains(ns, n) {
			ns = append(ns, n)
		}
	}

	var pairs [][2]VertexID
	uses := make(map[VertexID]int)
	for i := 0; i < len(ns); i++ {
		for j := i + 1; j < len(ns); j++ {
			if !t.isEdge(ns[i], ns[j]) {
				continue
			}
			if t.edgeFaces(ns[i], ns[j]) >= 2 {
				return 0, fmt.Errorf("adding vertex: %w: %d-%d", ErrNonManifold, ns[i], ns[j])
			}
			pairs = append(pairs, [2]VertexID{ns[i], ns[j]})
			uses[ns[i]]++
			uses[ns[j]]++
		}
	}
	for _, n := range ns {
		if uses[n] > 2 {
			return 0, fmt.Errorf("adding vertex: %w: new edge to %d would join %d faces", ErrNonManifold, n, uses[n])
		}
	}

	id := VertexID(len(t.vertices))
	t.vertices = append(t.vertices, &Vertex{t: t, id: id, pos: pos})
	t.edges = append(t.edges, nil)
	t.spatial.insertVertex(id, pos)

	for _, n := range ns {
		t.addEdge(id, n)
	}
	for _, p := range pairs {
		t.createFace(id, p[0], p[1])
	}

	t.log.Debug("vertex added",
		zap.Int("vertex", int(id)),
		zap.Int("neighbors", len(ns)),
		zap.Int("faces", len(pairs)))
	return id, nil
}

// AddFace creates a face with corners a, b and c, joining them by edges.
func (t *Tessellation) AddFace(a, b, c VertexID) (FaceID, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	for _, v := range []VertexID{a, b, c} {
		if !t.hasVertex(v) {
			return NoFace, fmt.Errorf("adding face: %w: %d", ErrUnknownVertex, v)
		}
	}
	if a == b || b == c || a == c {
		return NoFace, fmt.Errorf("adding face (%d, %d, %d): %w", a, b, c, ErrDegenerateFace)
	}
	if id, exists := t.faceIndex[faceKey(a, b, c)]; exists {
		return id, fmt.Errorf("adding face (%d, %d, %d): %w as %d", a, b, c, ErrDuplicateFace, id)
	}
	for _, e := range [][2]VertexID{{a, b}, {b, c}, {a, c}} {
		if t.edgeFaces(e[0], e[1]) >= 2 {
			return NoFace, fmt.Errorf("adding face (%d, %d, %d): %w: %d-%d", a, b, c, ErrNonManifold, e[0], e[1])
		}
	}

	t.addEdge(a, b)
	t.addEdge(b, c)
	t.addEdge(a, c)
	return t.createFace(a, b, c), nil
}

// MoveVertex moves v to pos and refreshes every face that has v as a
// corner.
func (t *Tessellation) MoveVertex(v VertexID, pos r3.Vector) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.hasVertex(v) {
		return fmt.Errorf("moving vertex: %w: %d", ErrUnknownVertex, v)
	}
	t.moveVertex(t.vertices[v], pos)
	return nil
}

// moveVertex requires the write lock.
func (t *Tessellation) moveVertex(v *Vertex, pos r3.Vector) {
	old := v.pos
	v.pos = pos
	t.spatial.moveVertex(v.id, old, pos)

	for _, fid := range v.faces {
		f := t.faces[fid]
		before := f.centroid
		f.recalculateShape()
		t.spatial.moveFace(fid, before, f.centroid)
	}

	t.log.Debug("vertex moved",
		zap.Int("vertex", int(v.id)),
		zap.Int("faces", len(v.faces)))
}

// createFace requires the write lock and validated, distinct corners.
func (t *Tessellation) createFace(a, b, c VertexID) FaceID {
	id := FaceID(len(t.faces))
	f := &Face{
		t:         t,
		id:        id,
		vertices:  [isometric.NumDirections]VertexID{a, b, c},
		neighbors: [isometric.NumDirections]FaceID{NoFace, NoFace, NoFace},
	}
	f.recalculateShape()

	t.faces = append(t.faces, f)
	t.faceIndex[faceKey(a, b, c)] = id
	t.spatial.insertFace(id, f.centroid)

	for _, v := range f.vertices {
		t.vertices[v].addAdjacentFace(f)
	}

	t.log.Debug("face created",
		zap.Int("face", int(id)),
		zap.Reflect("vertices", f.vertices),
		zap.Float64("side", f.side))
	return id
}

func (t *Tessellation) addEdge(a, b VertexID) {
	if a == b || t.isEdge(a, b) {
		return
	}
	t.edges[a] = append(t.edges[a], b)
	t.edges[b] = append(t.edges[b], a)
}

func (t *Tessellation) isEdge(a, b VertexID) bool {
	for _, n := range t.edges[a] {
		if n == b {
			return true
		}
	}
	return false
}

// edgeFaces counts the faces with both a and b as corners.
func (t *Tessellation) edgeFaces(a, b VertexID) int {
	n := 0
	for _, fid := range t.vertices[a].faces {
		if t.faces[fid].hasVertex(b) {
			n++
		}
	}
	return n
}

func (t *Tessellation) hasVertex(id VertexID) bool {
	return id >= 0 && int(id) < len(t.vertices)
}

func (t *Tessellation) hasFace(id FaceID) bool {
	return id >= 0 && int(id) < len(t.faces)
}

// faceKey orders corners so the same triangle always maps to one key.
func faceKey(a, b, c VertexID) [3]VertexID {
	k := [3]VertexID{a, b, c}
	sort.Slice(k[:], func(i, j int) bool { return k[i] < k[j] })
	return k
}
