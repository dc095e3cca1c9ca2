// Package isometric provides three-axis coordinates over triangular grid faces.
//
// A triangular face has three symmetric axes, one per side. A point on the
// face is described by its distance from each side; the three distances
// always sum to the face's altitude, so only two of them are stored.
package isometric

import "fmt"

// Direction names one of the three axes of a triangle. The same index is
// used for the vertex opposite that axis' side and for the neighbouring
// face across that side.
type Direction int

// Directions, 120 degrees apart.
const (
	Primary   Direction = iota // B
	Secondary                  // S
	Tertiary                   // D
)

// NumDirections is the number of axes of a triangular grid.
const NumDirections = 3

// Directions lists every valid direction in index order.
var Directions = [NumDirections]Direction{Primary, Secondary, Tertiary}

// Valid reports whether d is one of the three directions.
func (d Direction) Valid() bool {
	return d >= Primary && d <= Tertiary
}

// RotatedCW returns d rotated clockwise by k steps.
func (d Direction) RotatedCW(k int) Direction {
	return Direction(mod3(int(d) + k))
}

// RotatedCCW returns d rotated counterclockwise by k steps.
func (d Direction) RotatedCCW(k int) Direction {
	return Direction(mod3(int(d) - k))
}

// String returns the short axis name.
func (d Direction) String() string {
	switch d {
	case Primary:
		return "B"
	case Secondary:
		return "S"
	case Tertiary:
		return "D"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

func mod3(x int) int {
	x %= NumDirections
	if x < 0 {
		x += NumDirections
	}
	return x
}
