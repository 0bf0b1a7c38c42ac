package frontier

import "container/heap"

// pqEntry is one item in a priority frontier: the payload, its priority
// (g for Dijkstra, g+h for A*), and a monotonically increasing sequence
// number used to break priority ties in favor of the most recently pushed
// (highest-numbered) item (spec.md §4.1 and §5's documented, testable tie-break rule).
type pqEntry[T any] struct {
	item     T
	priority float64
	seq      int64
}

// priorityHeap implements heap.Interface as a min-heap over priority, with
// ties broken by the larger (i.e. more recent) seq sorting first. This is
// the same "invert the comparison" trick the teacher's Dijkstra keeps a
// max-heap-shaped container as a min-heap with; here it's generic over any
// payload instead of a single (id, dist) pair.
type priorityHeap[T any] []*pqEntry[T]

func (h priorityHeap[T]) Len() int { return len(h) }
func (h priorityHeap[T]) Less(i, j int) bool {
	if h[i].priority != h[j].priority {
		return h[i].priority < h[j].priority
	}
	return h[i].seq > h[j].seq
}
func (h priorityHeap[T]) Swap(i, j int) { h[i], h[j] = h[j], h[i] }
func (h *priorityHeap[T]) Push(x interface{}) {
	*h = append(*h, x.(*pqEntry[T]))
}
func (h *priorityHeap[T]) Pop() interface{} {
	old := *h
	n := len(old)
	e := old[n-1]
	old[n-1] = nil
	*h = old[:n-1]
	return e
}

// priorityFrontier drives Dijkstra (informed=false) and A* (informed=true).
// The only difference between the two is whether HintHeuristic contributes
// to the push priority.
type priorityFrontier[T any] struct {
	heap      priorityHeap[T]
	informed  bool
	nextSeq   int64
	pendingG  float64
	pendingH  float64
}

// NewDijkstra returns a min-priority frontier keyed by accumulated path cost.
func NewDijkstra[T any]() Frontier[T] {
	return &priorityFrontier[T]{informed: false}
}

// NewAStar returns a min-priority frontier keyed by path cost plus heuristic.
func NewAStar[T any]() Frontier[T] {
	return &priorityFrontier[T]{informed: true}
}

func (f *priorityFrontier[T]) Push(item T) {
	priority := f.pendingG
	if f.informed {
		priority += f.pendingH
	}
	f.pendingG, f.pendingH = 0, 0
	heap.Push(&f.heap, &pqEntry[T]{item: item, priority: priority, seq: f.nextSeq})
	f.nextSeq++
}

func (f *priorityFrontier[T]) PopNext() (T, bool) {
	var zero T
	if f.heap.Len() == 0 {
		return zero, false
	}
	e := heap.Pop(&f.heap).(*pqEntry[T])
	return e.item, true
}

func (f *priorityFrontier[T]) Peek() (T, bool) {
	var zero T
	if f.heap.Len() == 0 {
		return zero, false
	}
	return f.heap[0].item, true
}

func (f *priorityFrontier[T]) Len() int { return f.heap.Len() }

func (f *priorityFrontier[T]) HintLayer(int) {}

func (f *priorityFrontier[T]) HintPathCost(g float64) {
	f.pendingG = g
}

func (f *priorityFrontier[T]) HintHeuristic(h float64) {
	f.pendingH = h
}

func (f *priorityFrontier[T]) AbortOnFound() bool { return true }
func (f *priorityFrontier[T]) Informed() bool     { return f.informed }
