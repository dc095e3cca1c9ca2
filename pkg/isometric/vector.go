package isometric

import (
	"fmt"
	"math"
)

// Vector is a displacement with Δb + Δs + Δd = 0. It belongs to no grid.
type Vector struct {
	db, ds float64
}

func (Vector) operand() {}

// NewVector creates a vector from exactly two of (Δb, Δs, Δd).
func NewVector(cs ...Component) (Vector, error) {
	db, ds, err := resolve(0, cs)
	if err != nil {
		return Vector{}, fmt.Errorf("new vector: %w", err)
	}
	return Vector{db: db, ds: ds}, nil
}

// VectorBetween returns the displacement from start to end, expressed in
// start's grid.
func VectorBetween(start, end *Point) (Vector, error) {
	p, err := end.ProjectOntoAdjacentGrid(start.grid)
	if err != nil {
		return Vector{}, err
	}
	return Vector{db: p.b - start.b, ds: p.s - start.s}, nil
}

// DeltaB returns the Primary component.
func (v Vector) DeltaB() float64 { return v.db }

// DeltaS returns the Secondary component.
func (v Vector) DeltaS() float64 { return v.ds }

// DeltaD returns the derived Tertiary component.
func (v Vector) DeltaD() float64 { return -(v.db + v.ds) }

// Get returns the component along dir.
func (v Vector) Get(dir Direction) (float64, error) {
	switch dir {
	case Primary:
		return v.db, nil
	case Secondary:
		return v.ds, nil
	case Tertiary:
		return v.DeltaD(), nil
	default:
		return 0, fmt.Errorf("%w: %v", ErrInvalidKey, dir)
	}
}

// Add returns v + o.
func (v Vector) Add(o Vector) Vector {
	return Vector{db: v.db + o.db, ds: v.ds + o.ds}
}

// Sub returns v - o.
func (v Vector) Sub(o Vector) Vector {
	return Vector{db: v.db - o.db, ds: v.ds - o.ds}
}

// Scale returns v * k.
func (v Vector) Scale(k float64) Vector {
	return Vector{db: v.db * k, ds: v.ds * k}
}

// Div returns v / k.
func (v Vector) Div(k float64) (Vector, error) {
	if k == 0 {
		return Vector{}, fmt.Errorf("%w: division by zero", ErrInvalidOperand)
	}
	return Vector{db: v.db / k, ds: v.ds / k}, nil
}

// Length returns the planar length of v.
func (v Vector) Length() float64 {
	return isometricDistance(v.db*altitudeToAlongAxis, -v.ds*altitudeToAlongAxis)
}

// SetLength rescales v to length l, keeping its direction.
func (v *Vector) SetLength(l float64) error {
	cur := v.Length()
	if cur == 0 {
		if l == 0 {
			return nil
		}
		return fmt.Errorf("set length: %w", ErrZeroLength)
	}
	k := l / cur
	v.db *= k
	v.ds *= k
	return nil
}

// UnitVector returns v scaled to length 1.
func (v Vector) UnitVector() (Vector, error) {
	u := v
	if err := u.SetLength(1); err != nil {
		return Vector{}, fmt.Errorf("unit vector: %w", err)
	}
	return u, nil
}

// String returns "<Δb,Δs,Δd>".
func (v Vector) String() string {
	return fmt.Sprintf("<%g,%g,%g>", v.db, v.ds, v.DeltaD())
}

// isometricDistance is the law of cosines for two sides meeting at 60°.
func isometricDistance(d1, d2 float64) float64 {
	return math.Sqrt(d1*d1 + d2*d2 - d1*d2)
}
