package tessellation

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/golang/geo/r3"
	"go.uber.org/zap"
)

// CostFunc returns the cost of stepping between neighbouring faces with the
// given centroids. Costs below the straight-line centroid distance make the
// search heuristic inadmissible and may yield a longer path.
type CostFunc func(from, to r3.Vector) float64

// CentroidDistance costs a step by the distance between centroids.
func CentroidDistance(from, to r3.Vector) float64 {
	return from.Distance(to)
}

// SlopeWeighted costs a step by centroid distance plus weight times the
// absolute change of elevation above surface.
func SlopeWeighted(weight float64, surface Surface) CostFunc {
	if weight < 0 {
		weight = 0
	}
	return func(from, to r3.Vector) float64 {
		rise := math.Abs(surface.Elevation(to) - surface.Elevation(from))
		return from.Distance(to) + weight*rise
	}
}

// pathNode is a face on the A* frontier.
type pathNode struct {
	face   FaceID
	g      float64 // cost from start
	f      float64 // g + heuristic
	parent *pathNode
	index  int // index in heap
}

// pathHeap is a min-heap of nodes by f.
type pathHeap []*pathNode

func (h pathHeap) Len() int           { return len(h) }
func (h pathHeap) Less(i, j int) bool { return h[i].f < h[j].f }
func (h pathHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].index = i
	h[j].index = j
}

func (h *pathHeap) Push(x interface{}) {
	node := x.(*pathNode)
	node.index = len(*h)
	*h = append(*h, node)
}

func (h *pathHeap) Pop() interface{} {
	old := *h
	n := len(old)
	node := old[n-1]
	old[n-1] = nil
	node.index = -1
	*h = old[0 : n-1]
	return node
}

// FacePath finds the cheapest chain of edge-adjacent faces from start to
// goal using A* with straight-line centroid distance as the heuristic. It
// returns the faces including both ends and the total cost. A nil cost uses
// CentroidDistance.
func (t *Tessellation) FacePath(start, goal FaceID, cost CostFunc) ([]FaceID, float64, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	if !t.hasFace(start) {
		return nil, 0, fmt.Errorf("face path: %w: %d", ErrUnknownFace, start)
	}
	if !t.hasFace(goal) {
		return nil, 0, fmt.Errorf("face path: %w: %d", ErrUnknownFace, goal)
	}
	if cost == nil {
		cost = CentroidDistance
	}

	target := t.faces[goal].centroid
	heuristic := func(id FaceID) float64 {
		return t.faces[id].centroid.Distance(target)
	}

	openSet := &pathHeap{}
	heap.Init(openSet)
	closed := make(map[FaceID]bool)
	nodes := make(map[FaceID]*pathNode)

	first := &pathNode{face: start, f: heuristic(start)}
	heap.Push(openSet, first)
	nodes[start] = first

	for openSet.Len() > 0 {
		current := heap.Pop(openSet).(*pathNode)
		if current.face == goal {
			path := reconstructPath(current)
			t.log.Debug("face path found",
				zap.Int("start", int(start)),
				zap.Int("goal", int(goal)),
				zap.Int("steps", len(path)-1),
				zap.Float64("cost", current.g),
				zap.Int("expanded", len(closed)))
			return path, current.g, nil
		}
		closed[current.face] = true

		from := t.faces[current.face]
		for _, next := range from.neighbors {
			if next == NoFace || closed[next] {
				continue
			}
			g := current.g + cost(from.centroid, t.faces[next].centroid)

			node, seen := nodes[next]
			if !seen {
				node = &pathNode{face: next, g: g, f: g + heuristic(next), parent: current}
				nodes[next] = node
				heap.Push(openSet, node)
			} else if g < node.g {
				node.f += g - node.g
				node.g = g
				node.parent = current
				heap.Fix(openSet, node.index)
			}
		}
	}

	return nil, 0, fmt.Errorf("%w: %d to %d", ErrNoPath, start, goal)
}

func reconstructPath(node *pathNode) []FaceID {
	var path []FaceID
	for node != nil {
		path = append(path, node.face)
		node = node.parent
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}
