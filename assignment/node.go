// Package assignment implements the outer search: discovering an optimal
// assignment and move order of queens to goal squares, and (as a second,
// goal-free variant) reconstructing a non-attacking N-queens placement from
// scratch. Both ride on the same frontier.Frontier abstraction; only the
// expansion rule and heuristic differ.
package assignment

import "github.com/kestrelquest/queentransform/square"

// Status is the three-valued state machine spec.md §4.3 names: a node is
// either proceeding normally, has set a queen aside after it failed to
// reach the current goal, or is giving previously set-aside queens one more
// attempt after the goal cursor looped back around.
type Status int

const (
	// StatusOk is normal operation: all queen indices are eligible.
	StatusOk Status = iota
	// StatusOnHold(HoldIndex) restricts eligible queen indices to
	// [0, HoldIndex) — the range shrinks by one each additional hold.
	StatusOnHold
	// StatusRetryingHold(HoldIndex) restricts eligible queen indices to
	// [HoldIndex, N) — give the set-aside queens another try.
	StatusRetryingHold
)

func (s Status) String() string {
	switch s {
	case StatusOnHold:
		return "OnHold"
	case StatusRetryingHold:
		return "RetryingHold"
	default:
		return "Ok"
	}
}

// Node is one state in the assignment search: the current positions of
// every queen, which goal index each queen is bound to (or -1), which goal
// entries already have a binding, the cursor into the goal list, the
// segments accumulated so far, and the hold status. Every field is copied
// by value into each child so nodes never alias.
type Node struct {
	Queens    []square.Square
	Assign    []int
	GoalBound []bool
	GoalIdx   int
	Segments  []square.Segment
	Status    Status
	HoldIndex int
}

// clone returns a deep copy suitable for mutating into a child node.
func (n *Node) clone() *Node {
	c := &Node{
		Queens:    append([]square.Square{}, n.Queens...),
		Assign:    append([]int{}, n.Assign...),
		GoalBound: append([]bool{}, n.GoalBound...),
		GoalIdx:   n.GoalIdx,
		Segments:  append([]square.Segment{}, n.Segments...),
		Status:    n.Status,
		HoldIndex: n.HoldIndex,
	}
	return c
}

// Len returns the number of moves (segments) accumulated so far — the cost
// the assignment search optimizes and the cutoff/pruning rule compares
// against.
func (n *Node) Len() int { return len(n.Segments) }
