package isometric

import "fmt"

// testGrid is an equilateral face identified by its three vertex keys.
type testGrid struct {
	name      string
	side      float64
	keys      [NumDirections]int
	neighbors map[*testGrid]Direction
}

func newTestGrid(name string, side float64, b, s, d int) *testGrid {
	return &testGrid{
		name:      name,
		side:      side,
		keys:      [NumDirections]int{b, s, d},
		neighbors: make(map[*testGrid]Direction),
	}
}

func (g *testGrid) SideLength() float64 { return g.side }
func (g *testGrid) Apothem() float64    { return Apothem(g.side) }
func (g *testGrid) Altitude() float64   { return Altitude(g.side) }

func (g *testGrid) VertexKey(d Direction) int { return g.keys[d] }

func (g *testGrid) DirectionTowardVertex(key int) (Direction, error) {
	for _, d := range Directions {
		if g.keys[d] == key {
			return d, nil
		}
	}
	return 0, fmt.Errorf("%w: vertex %d", ErrNotAdjacent, key)
}

func (g *testGrid) DirectionOppositeGrid(other Grid) (Direction, error) {
	if o, ok := other.(*testGrid); ok {
		if d, ok := g.neighbors[o]; ok {
			return d, nil
		}
	}
	return 0, fmt.Errorf("%w: grid %v", ErrNotAdjacent, other)
}

func (g *testGrid) String() string { return g.name }

// link records that f and g share every vertex except the ones opposite
// fDir and gDir.
func link(f *testGrid, fDir Direction, g *testGrid, gDir Direction) {
	f.neighbors[g] = fDir
	g.neighbors[f] = gDir
}

// rhombus returns two unit faces sharing vertices 2 and 3. F lists its
// vertices as (1, 2, 3) and G as (3, 4, 2), so their axes are not aligned.
func rhombus() (*testGrid, *testGrid) {
	f := newTestGrid("F", 1, 1, 2, 3)
	g := newTestGrid("G", 1, 3, 4, 2)
	link(f, Primary, g, Secondary)
	return f, g
}
