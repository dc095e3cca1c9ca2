package isometric

import "fmt"

// Component is one of the two coordinates that pin down a point or vector.
type Component struct {
	Dir   Direction
	Value float64
}

// B returns a Primary-axis component.
func B(v float64) Component { return Component{Dir: Primary, Value: v} }

// S returns a Secondary-axis component.
func S(v float64) Component { return Component{Dir: Secondary, Value: v} }

// D returns a Tertiary-axis component.
func D(v float64) Component { return Component{Dir: Tertiary, Value: v} }

// At returns a component along dir.
func At(dir Direction, v float64) Component { return Component{Dir: dir, Value: v} }

// resolve turns exactly two distinct components into the stored (b, s)
// pair of a triple summing to total.
func resolve(total float64, cs []Component) (b, s float64, err error) {
	if len(cs) != 2 {
		return 0, 0, fmt.Errorf("%w: got %d", ErrInvalidArgumentCount, len(cs))
	}
	var (
		vals [NumDirections]float64
		seen [NumDirections]bool
	)
	for _, c := range cs {
		if !c.Dir.Valid() {
			return 0, 0, fmt.Errorf("%w: %v", ErrInvalidKey, c.Dir)
		}
		if seen[c.Dir] {
			return 0, 0, fmt.Errorf("%w: %v given twice", ErrInvalidArgumentCount, c.Dir)
		}
		seen[c.Dir] = true
		vals[c.Dir] = c.Value
	}

	switch {
	case !seen[Primary]:
		return total - vals[Secondary] - vals[Tertiary], vals[Secondary], nil
	case !seen[Secondary]:
		return vals[Primary], total - vals[Primary] - vals[Tertiary], nil
	default:
		return vals[Primary], vals[Secondary], nil
	}
}
