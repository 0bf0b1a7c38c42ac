// Package frontier unifies Depth-First, Breadth-First, Dijkstra, and A*
// search behind a single ordered open-set interface. The outer algorithm
// (the path oracle in pathoracle, the assignment engine in assignment) never
// branches on which strategy drives it: it pushes items, supplies cost and
// heuristic hints when it has them, and pops whatever the strategy decides
// is next. Hints a strategy doesn't need are simply ignored, at zero cost.
package frontier

// Frontier stores open search nodes of payload type T and decides the order
// they are expanded in. All five realizations (NewDFS, NewBoundedDFS, NewBFS,
// NewDijkstra, NewAStar) share this shape.
type Frontier[T any] interface {
	// Push inserts item at the priority determined by whichever hints were
	// supplied since the last Push (HintLayer for BFS; HintPathCost and
	// HintHeuristic for Dijkstra/A*). DFS and bounded DFS ignore all hints.
	Push(item T)

	// PopNext removes and returns the next node per the strategy's order,
	// or the zero value and false if the frontier is empty.
	PopNext() (T, bool)

	// Peek returns the next node without removing it.
	Peek() (T, bool)

	// Len reports how many nodes are currently open.
	Len() int

	// HintLayer supplies the layer/depth of the next pushed node. Only BFS
	// uses it; other strategies ignore the call.
	HintLayer(k int)

	// HintPathCost supplies the accumulated path cost (g) of the next pushed
	// node. Dijkstra and A* use it; other strategies ignore the call.
	HintPathCost(g float64)

	// HintHeuristic supplies the estimated remaining cost (h) of the next
	// pushed node. Only A* uses it; other strategies ignore the call.
	HintHeuristic(h float64)

	// AbortOnFound reports whether the first goal popped by this strategy is
	// guaranteed optimal, so the outer search may stop at the first hit.
	// True for BFS, Dijkstra, A*; false for DFS and bounded DFS.
	AbortOnFound() bool

	// Informed reports whether this strategy consumes heuristic hints.
	// True only for A*.
	Informed() bool
}
