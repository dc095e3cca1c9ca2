package tessellation

import (
	"fmt"

	"github.com/golang/geo/r3"
	"github.com/golang/geo/s2"
	"go.uber.org/zap"

	"github.com/Faultbox/mundimonium/pkg/isometric"
)

// Generator lays out vertices and faces on an empty tessellation.
type Generator interface {
	Surface() Surface
	Generate(t *Tessellation) error
}

// Build creates a tessellation on gen's surface and fills it.
func Build(gen Generator, opts ...Option) (*Tessellation, error) {
	t := New(append([]Option{WithSurface(gen.Surface())}, opts...)...)
	if err := gen.Generate(t); err != nil {
		return nil, fmt.Errorf("generating tessellation: %w", err)
	}
	t.log.Info("tessellation built",
		zap.String("generator", fmt.Sprintf("%T", gen)),
		zap.Int("vertices", t.NumVertices()),
		zap.Int("faces", t.NumFaces()))
	return t, nil
}

// Lattice is a planar patch of equilateral triangles. Odd rows are shifted
// by half a side, and faces are discovered from the vertex edge graph.
type Lattice struct {
	Rows       int
	Cols       int
	SideLength float64
}

// Surface returns Plane.
func (Lattice) Surface() Surface { return Plane{} }

// Generate adds Rows*Cols vertices and 2*(Rows-1)*(Cols-1) faces.
func (l Lattice) Generate(t *Tessellation) error {
	if l.Rows < 2 || l.Cols < 2 {
		return fmt.Errorf("lattice needs at least 2x2 vertices, got %dx%d", l.Rows, l.Cols)
	}
	if l.SideLength <= 0 {
		return fmt.Errorf("lattice side length must be positive, got %g", l.SideLength)
	}

	altitude := isometric.Altitude(l.SideLength)
	ids := make([][]VertexID, l.Rows)
	for r := 0; r < l.Rows; r++ {
		ids[r] = make([]VertexID, l.Cols)
		offset := float64(r%2) * l.SideLength / 2
		for c := 0; c < l.Cols; c++ {
			var neighbors []VertexID
			if c > 0 {
				neighbors = append(neighbors, ids[r][c-1])
			}
			if r > 0 {
				// Row below is shifted the other way.
				lo, hi := c-1, c
				if r%2 == 1 {
					lo, hi = c, c+1
				}
				for _, bc := range []int{lo, hi} {
					if bc >= 0 && bc < l.Cols {
						neighbors = append(neighbors, ids[r-1][bc])
					}
				}
			}

			pos := r3.Vector{X: float64(c)*l.SideLength + offset, Y: float64(r) * altitude}
			id, err := t.AddVertex(pos, neighbors...)
			if err != nil {
				return err
			}
			ids[r][c] = id
		}
	}
	return nil
}

// Icosphere is an icosahedron whose faces are split into four per
// subdivision, with every vertex pushed onto the sphere.
type Icosphere struct {
	Radius       float64
	Subdivisions int
}

// Surface returns the sphere of the configured radius.
func (g Icosphere) Surface() Surface { return Sphere{Radius: g.Radius} }

// Generate adds 10*4^n+2 vertices and 20*4^n faces.
func (g Icosphere) Generate(t *Tessellation) error {
	if g.Radius <= 0 {
		return fmt.Errorf("icosphere radius must be positive, got %g", g.Radius)
	}
	if g.Subdivisions < 0 {
		return fmt.Errorf("icosphere subdivisions must not be negative, got %d", g.Subdivisions)
	}

	points, tris := icosahedron()
	for i := 0; i < g.Subdivisions; i++ {
		points, tris = subdivide(points, tris)
	}

	ids := make([]VertexID, len(points))
	for i, p := range points {
		id, err := t.AddVertex(p.Vector.Mul(g.Radius))
		if err != nil {
			return err
		}
		ids[i] = id
	}
	for _, tri := range tris {
		if _, err := t.AddFace(ids[tri[0]], ids[tri[1]], ids[tri[2]]); err != nil {
			return err
		}
	}
	return nil
}

// icosahedron returns the 12 unit vertices and 20 faces of a regular
// icosahedron, wound counterclockwise seen from outside.
func icosahedron() ([]s2.Point, [][3]int) {
	const phi = 1.6180339887498948482045868343656381177203091798057628
	raw := [][3]float64{
		{-1, phi, 0}, {1, phi, 0}, {-1, -phi, 0}, {1, -phi, 0},
		{0, -1, phi}, {0, 1, phi}, {0, -1, -phi}, {0, 1, -phi},
		{phi, 0, -1}, {phi, 0, 1}, {-phi, 0, -1}, {-phi, 0, 1},
	}
	points := make([]s2.Point, len(raw))
	for i, c := range raw {
		points[i] = s2.PointFromCoords(c[0], c[1], c[2])
	}
	tris := [][3]int{
		{0, 11, 5}, {0, 5, 1}, {0, 1, 7}, {0, 7, 10}, {0, 10, 11},
		{1, 5, 9}, {5, 11, 4}, {11, 10, 2}, {10, 7, 6}, {7, 1, 8},
		{3, 9, 4}, {3, 4, 2}, {3, 2, 6}, {3, 6, 8}, {3, 8, 9},
		{4, 9, 5}, {2, 4, 11}, {6, 2, 10}, {8, 6, 7}, {9, 8, 1},
	}
	return points, tris
}

// subdivide splits every triangle into four, sharing edge midpoints.
func subdivide(points []s2.Point, tris [][3]int) ([]s2.Point, [][3]int) {
	midpoints := make(map[[2]int]int)
	midpoint := func(a, b int) int {
		key := [2]int{a, b}
		if b < a {
			key = [2]int{b, a}
		}
		if i, ok := midpoints[key]; ok {
			return i
		}
		m := s2.Point{Vector: points[a].Add(points[b].Vector).Normalize()}
		points = append(points, m)
		midpoints[key] = len(points) - 1
		return len(points) - 1
	}

	out := make([][3]int, 0, 4*len(tris))
	for _, tri := range tris {
		a, b, c := tri[0], tri[1], tri[2]
		ab, bc, ca := midpoint(a, b), midpoint(b, c), midpoint(c, a)
		out = append(out,
			[3]int{a, ab, ca},
			[3]int{b, bc, ab},
			[3]int{c, ca, bc},
			[3]int{ab, bc, ca},
		)
	}
	return points, out
}
