package isometric

// sqrt3 is √3 to float64 precision.
const sqrt3 = 1.7320508075688772935274463415058723669428052538103806

// Fixed ratios of an equilateral triangle.
const (
	BaseToAltitude      = sqrt3 / 2
	ApothemToAltitude   = 3
	BaseToApothem       = BaseToAltitude / ApothemToAltitude
	sin60               = BaseToAltitude
	altitudeToAlongAxis = 1 / sin60
)

// Grid is a triangular face acting as a local coordinate frame.
//
// Implementations must be comparable (typically pointers): points compare
// grids with == to detect the same frame.
type Grid interface {
	SideLength() float64
	Apothem() float64
	Altitude() float64

	// VertexKey returns a stable handle for the vertex opposite side d.
	// Two grids sharing a vertex return the same key for it.
	VertexKey(d Direction) int

	// DirectionTowardVertex returns the direction whose opposite vertex has
	// the given key, or ErrNotAdjacent.
	DirectionTowardVertex(key int) (Direction, error)

	// DirectionOppositeGrid returns the direction of the side shared with
	// other, or ErrNotAdjacent.
	DirectionOppositeGrid(other Grid) (Direction, error)
}

// Altitude returns the altitude of an equilateral triangle with the given side.
func Altitude(side float64) float64 {
	return side * BaseToAltitude
}

// Apothem returns the apothem of an equilateral triangle with the given side.
func Apothem(side float64) float64 {
	return side * BaseToApothem
}
