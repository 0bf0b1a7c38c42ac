package frontier_test

import (
	"testing"

	"github.com/kestrelquest/queentransform/frontier"
)

func TestDFSOrderIsLIFO(t *testing.T) {
	f := frontier.NewDFS[int]()
	for _, v := range []int{1, 2, 3} {
		f.Push(v)
	}
	want := []int{3, 2, 1}
	for _, w := range want {
		got, ok := f.PopNext()
		if !ok || got != w {
			t.Fatalf("PopNext() = %v,%v; want %v,true", got, ok, w)
		}
	}
	if f.Len() != 0 {
		t.Fatalf("expected empty frontier, Len() = %d", f.Len())
	}
	if f.AbortOnFound() || f.Informed() {
		t.Fatal("DFS must not abort-on-found nor be informed")
	}
}

func TestBoundedDFSEvictsOldest(t *testing.T) {
	f := frontier.NewBoundedDFS[int](2)
	f.Push(1)
	f.Push(2)
	f.Push(3) // evicts 1
	if f.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", f.Len())
	}
	got, _ := f.PopNext()
	if got != 3 {
		t.Fatalf("PopNext() = %d, want 3", got)
	}
	got, _ = f.PopNext()
	if got != 2 {
		t.Fatalf("PopNext() = %d, want 2 (1 should have been evicted)", got)
	}
}

func TestBFSOrderIsLayered(t *testing.T) {
	f := frontier.NewBFS[string]()
	f.HintLayer(0)
	f.Push("root")
	f.HintLayer(1)
	f.Push("a")
	f.HintLayer(1)
	f.Push("b")
	f.HintLayer(2)
	f.Push("c")

	want := []string{"root", "a", "b", "c"}
	for _, w := range want {
		got, ok := f.PopNext()
		if !ok || got != w {
			t.Fatalf("PopNext() = %v,%v; want %v,true", got, ok, w)
		}
	}
	if !f.AbortOnFound() {
		t.Fatal("BFS must abort-on-found")
	}
}

func TestDijkstraOrdersByPathCost(t *testing.T) {
	f := frontier.NewDijkstra[string]()
	f.HintPathCost(5)
	f.Push("far")
	f.HintPathCost(1)
	f.Push("near")
	f.HintPathCost(3)
	f.Push("mid")

	want := []string{"near", "mid", "far"}
	for _, w := range want {
		got, ok := f.PopNext()
		if !ok || got != w {
			t.Fatalf("PopNext() = %v,%v; want %v,true", got, ok, w)
		}
	}
	if f.Informed() {
		t.Fatal("Dijkstra must not be informed")
	}
}

func TestDijkstraTieBreaksNewestFirst(t *testing.T) {
	f := frontier.NewDijkstra[string]()
	f.HintPathCost(1)
	f.Push("first")
	f.HintPathCost(1)
	f.Push("second")

	got, _ := f.PopNext()
	if got != "second" {
		t.Fatalf("equal-priority tie-break: PopNext() = %q, want %q (newer first)", got, "second")
	}
}

func TestAStarOrdersByPathCostPlusHeuristic(t *testing.T) {
	f := frontier.NewAStar[string]()
	f.HintPathCost(1)
	f.HintHeuristic(10) // f=11
	f.Push("misleading-heuristic")
	f.HintPathCost(5)
	f.HintHeuristic(1) // f=6
	f.Push("better")

	got, ok := f.PopNext()
	if !ok || got != "better" {
		t.Fatalf("PopNext() = %v,%v; want %q,true", got, ok, "better")
	}
	if !f.Informed() || !f.AbortOnFound() {
		t.Fatal("A* must be informed and abort-on-found")
	}
}

// TestDeterminism covers spec.md §8.7: replaying the same push sequence
// against the same strategy produces the same pop order every time.
func TestDeterminism(t *testing.T) {
	build := func() frontier.Frontier[int] {
		f := frontier.NewAStar[int]()
		for i, g := range []float64{3, 1, 1, 2} {
			f.HintPathCost(g)
			f.HintHeuristic(0)
			f.Push(i)
		}
		return f
	}
	var first []int
	f1 := build()
	for f1.Len() > 0 {
		v, _ := f1.PopNext()
		first = append(first, v)
	}
	f2 := build()
	var second []int
	for f2.Len() > 0 {
		v, _ := f2.PopNext()
		second = append(second, v)
	}
	if len(first) != len(second) {
		t.Fatalf("length mismatch: %v vs %v", first, second)
	}
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("replay diverged at index %d: %v vs %v", i, first, second)
		}
	}
}
