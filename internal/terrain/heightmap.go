// Package terrain provides elevation fields over tessellations.
package terrain

import (
	"fmt"

	"github.com/golang/geo/r3"

	"github.com/Faultbox/mundimonium/pkg/isometric"
	"github.com/Faultbox/mundimonium/pkg/tessellation"
)

// Heightmap holds one elevation per vertex, sampled at the vertex's base
// position.
type Heightmap struct {
	Elevations []float64   // indexed by vertex handle
	Base       []r3.Vector // position before displacement
}

// Build samples s at every vertex, scaled by amplitude.
func Build(t *tessellation.Tessellation, s Sampler, amplitude float64) *Heightmap {
	var hm Heightmap
	_ = t.Read(func() error {
		vertices := t.Vertices()
		hm.Elevations = make([]float64, len(vertices))
		hm.Base = make([]r3.Vector, len(vertices))
		for i, v := range vertices {
			hm.Base[i] = v.Position()
			hm.Elevations[i] = amplitude * s.Sample(v.Position())
		}
		return nil
	})
	return &hm
}

// Apply moves every vertex from its base position along the surface's up
// direction by its elevation. Faces refresh through the vertex fan-out.
func (hm *Heightmap) Apply(t *tessellation.Tessellation) error {
	surface := t.Surface()
	for i, base := range hm.Base {
		pos := base.Add(surface.Up(base).Mul(hm.Elevations[i]))
		if err := t.MoveVertex(tessellation.VertexID(i), pos); err != nil {
			return fmt.Errorf("applying heightmap: %w", err)
		}
	}
	return nil
}

// SampleFace interpolates elevation at p. Each corner is weighted by p's
// coordinate toward it over the face altitude.
func (hm *Heightmap) SampleFace(p *isometric.Point) (float64, error) {
	f, ok := p.Grid().(*tessellation.Face)
	if !ok {
		return 0, fmt.Errorf("sampling heightmap: point is not on a face")
	}
	h := f.Altitude()
	if h == 0 {
		return 0, fmt.Errorf("sampling heightmap: degenerate %v", f)
	}

	var elevation float64
	for _, d := range isometric.Directions {
		v, err := f.VertexAt(d)
		if err != nil {
			return 0, err
		}
		if int(v) >= len(hm.Elevations) {
			return 0, fmt.Errorf("sampling heightmap: %w: %d", tessellation.ErrUnknownVertex, v)
		}
		w, _ := p.Get(d)
		elevation += w / h * hm.Elevations[v]
	}
	return elevation, nil
}

// Range returns the lowest and highest elevation.
func (hm *Heightmap) Range() (lo, hi float64) {
	for i, e := range hm.Elevations {
		if i == 0 || e < lo {
			lo = e
		}
		if i == 0 || e > hi {
			hi = e
		}
	}
	return lo, hi
}
