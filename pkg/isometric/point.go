package isometric

import (
	"errors"
	"fmt"
)

// Operand is either a *Point or a Vector.
type Operand interface {
	operand()
}

// Point is a position on a Grid. It stores the b and s axes; d is derived
// so that b + s + d always equals the grid's altitude.
//
// Points are compared by identity: two *Point values are the same point
// only if they are the same pointer.
type Point struct {
	grid Grid
	b, s float64
}

func (*Point) operand() {}

// NewPoint creates a point on grid from exactly two of (b, s, d).
func NewPoint(grid Grid, cs ...Component) (*Point, error) {
	p := &Point{grid: grid}
	if err := p.MoveTo(cs...); err != nil {
		return nil, err
	}
	return p, nil
}

// Center returns the centroid of grid.
func Center(grid Grid) *Point {
	return &Point{grid: grid, b: grid.Apothem(), s: grid.Apothem()}
}

// Grid returns the frame of reference of p.
func (p *Point) Grid() Grid { return p.grid }

// B returns the Primary coordinate.
func (p *Point) B() float64 { return p.b }

// S returns the Secondary coordinate.
func (p *Point) S() float64 { return p.s }

// D returns the derived Tertiary coordinate.
func (p *Point) D() float64 { return p.grid.Altitude() - p.b - p.s }

// SetB sets b and offsets s by half the change.
func (p *Point) SetB(b float64) {
	p.s -= 0.5 * (b - p.b)
	p.b = b
}

// SetS sets s and offsets b by half the change.
func (p *Point) SetS(s float64) {
	p.b -= 0.5 * (s - p.s)
	p.s = s
}

// SetD sets d and offsets b and s by half the change each.
func (p *Point) SetD(d float64) {
	delta := 0.5 * (d - p.D())
	p.b -= delta
	p.s -= delta
}

// Get returns the coordinate along dir.
func (p *Point) Get(dir Direction) (float64, error) {
	switch dir {
	case Primary:
		return p.b, nil
	case Secondary:
		return p.s, nil
	case Tertiary:
		return p.D(), nil
	default:
		return 0, fmt.Errorf("%w: %v", ErrInvalidKey, dir)
	}
}

// Set assigns the coordinate along dir through the matching setter.
func (p *Point) Set(dir Direction, v float64) error {
	switch dir {
	case Primary:
		p.SetB(v)
	case Secondary:
		p.SetS(v)
	case Tertiary:
		p.SetD(v)
	default:
		return fmt.Errorf("%w: %v", ErrInvalidKey, dir)
	}
	return nil
}

// coord is Get for directions already known to be valid.
func (p *Point) coord(dir Direction) float64 {
	v, _ := p.Get(dir)
	return v
}

// MoveTo places p at exactly two of (b, s, d).
func (p *Point) MoveTo(cs ...Component) error {
	b, s, err := resolve(p.grid.Altitude(), cs)
	if err != nil {
		return fmt.Errorf("move to: %w", err)
	}
	p.b, p.s = b, s
	return nil
}

// MoveBy shifts p by exactly two of (Δb, Δs, Δd).
func (p *Point) MoveBy(cs ...Component) error {
	db, ds, err := resolve(0, cs)
	if err != nil {
		return fmt.Errorf("move by: %w", err)
	}
	p.b += db
	p.s += ds
	return nil
}

// Add returns a new point displaced from p by v, on the same grid.
func (p *Point) Add(v Vector) *Point {
	return &Point{grid: p.grid, b: p.b + v.db, s: p.s + v.ds}
}

// Sub subtracts op from p. A *Point operand yields the Vector from op to p;
// a Vector operand yields the translated *Point.
func (p *Point) Sub(op Operand) (Operand, error) {
	switch o := op.(type) {
	case *Point:
		if o == nil {
			return nil, fmt.Errorf("%w: nil point", ErrInvalidOperand)
		}
		v, err := p.Displacement(o)
		if err != nil {
			return nil, err
		}
		return v, nil
	case Vector:
		return p.Add(o.Scale(-1)), nil
	default:
		return nil, fmt.Errorf("%w: %T", ErrInvalidOperand, op)
	}
}

// Displacement returns the vector from other to p, expressed in p's grid.
// other must lie on p's grid or on an adjacent one.
func (p *Point) Displacement(other *Point) (Vector, error) {
	o, err := other.ProjectOntoAdjacentGrid(p.grid)
	if err != nil {
		return Vector{}, err
	}
	return Vector{db: p.b - o.b, ds: p.s - o.s}, nil
}

// ProjectOntoAdjacentGrid returns p re-expressed in target's frame. target
// must be p's own grid or share an edge with it.
func (p *Point) ProjectOntoAdjacentGrid(target Grid) (*Point, error) {
	if target == nil {
		return nil, fmt.Errorf("%w: nil grid", ErrNotAdjacent)
	}
	if target == p.grid {
		return &Point{grid: target, b: p.b, s: p.s}, nil
	}

	oldBorder, err := p.grid.DirectionOppositeGrid(target)
	if err != nil {
		return nil, fmt.Errorf("projecting onto adjacent grid: %w", err)
	}
	newBorder, err := target.DirectionOppositeGrid(p.grid)
	if err != nil {
		return nil, fmt.Errorf("projecting onto adjacent grid: %w", err)
	}

	altitudeMean := (p.grid.Altitude() + target.Altitude()) / 2

	// The two non-border axes of p each name a shared-edge vertex. Reflecting
	// across the shared edge, the coordinate toward one shared vertex in the
	// target frame is the mean altitude less p's coordinate toward the other.
	cs := make([]Component, 0, 2)
	for k := 1; k < NumDirections; k++ {
		toward := oldBorder.RotatedCW(k)
		across := oldBorder.RotatedCW(NumDirections - k)
		dir, err := target.DirectionTowardVertex(p.grid.VertexKey(toward))
		if err != nil {
			return nil, fmt.Errorf("projecting onto adjacent grid: %w", err)
		}
		if dir == newBorder {
			return nil, fmt.Errorf("%w: border vertex %v is opposite the shared edge", ErrNotAdjacent, toward)
		}
		cs = append(cs, At(dir, altitudeMean-p.coord(across)))
	}
	return NewPoint(target, cs...)
}

// DistanceFrom returns the distance between p and other. Points on the same
// grid or on adjacent grids are supported; any other pair fails with
// ErrNotSupported.
func (p *Point) DistanceFrom(other *Point) (float64, error) {
	v, err := p.Displacement(other)
	if err != nil {
		if errors.Is(err, ErrNotAdjacent) {
			return 0, fmt.Errorf("%w: distance between non-adjacent grids: %w", ErrNotSupported, err)
		}
		return 0, err
	}
	return v.Length(), nil
}

// String returns "(b,s,d)".
func (p *Point) String() string {
	return fmt.Sprintf("(%g,%g,%g)", p.b, p.s, p.D())
}
