package tessellation

import (
	"errors"
	"fmt"

	"github.com/golang/geo/r3"

	"github.com/Faultbox/mundimonium/pkg/isometric"
)

// ErrInconsistent is wrapped by every violation Check reports.
var ErrInconsistent = errors.New("inconsistent tessellation")

const checkTolerance = 1e-9

// Check audits the whole mesh under the read lock: adjacency slots are
// symmetric and sit opposite the unshared corner, vertex back-references
// match face corners, and every centroid matches its corners. All
// violations are joined into the returned error.
func (t *Tessellation) Check() error {
	t.mu.RLock()
	defer t.mu.RUnlock()

	var errs []error
	fail := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInconsistent}, args...)...))
	}

	for _, f := range t.faces {
		for _, d := range isometric.Directions {
			n := f.neighbors[d]
			if n == NoFace {
				continue
			}
			if !t.hasFace(n) {
				fail("%v slot %v holds unknown face %d", f, d, n)
				continue
			}
			g := t.faces[n]
			if !g.IsAdjacentToFace(f.id) {
				fail("%v points at %v which does not point back", f, g)
				continue
			}
			if g.hasVertex(f.vertices[d]) {
				fail("%v slot %v shares its opposite corner with %v", f, d, g)
			}
		}

		var sum r3.Vector
		for _, v := range f.vertices {
			if !t.vertices[v].IsAdjacentToFace(f.id) {
				fail("vertex %d does not list %v", v, f)
			}
			sum = sum.Add(t.vertices[v].pos)
		}
		if f.centroid.Distance(sum.Mul(1.0/3)) > checkTolerance {
			fail("%v centroid is stale", f)
		}
	}

	for _, v := range t.vertices {
		for _, fid := range v.faces {
			if !t.hasFace(fid) || !t.faces[fid].hasVertex(v.id) {
				fail("%v lists face %d without being its corner", v, fid)
			}
		}
	}

	return errors.Join(errs...)
}

// Stats summarises a mesh.
type Stats struct {
	Vertices    int
	Faces       int
	Edges       int
	BorderEdges int
	MeanSide    float64
	MinSide     float64
	MaxSide     float64
}

// Stats counts the mesh under the read lock. Border edges are empty
// adjacency slots.
func (t *Tessellation) Stats() Stats {
	t.mu.RLock()
	defer t.mu.RUnlock()

	s := Stats{Vertices: len(t.vertices), Faces: len(t.faces)}
	for _, ns := range t.edges {
		s.Edges += len(ns)
	}
	s.Edges /= 2

	for i, f := range t.faces {
		for _, n := range f.neighbors {
			if n == NoFace {
				s.BorderEdges++
			}
		}
		s.MeanSide += f.side
		if i == 0 || f.side < s.MinSide {
			s.MinSide = f.side
		}
		if i == 0 || f.side > s.MaxSide {
			s.MaxSide = f.side
		}
	}
	if len(t.faces) > 0 {
		s.MeanSide /= float64(len(t.faces))
	}
	return s
}
