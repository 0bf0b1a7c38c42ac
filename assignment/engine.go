package assignment

import (
	"github.com/kestrelquest/queentransform/frontier"
	"github.com/kestrelquest/queentransform/pathoracle"
	"github.com/kestrelquest/queentransform/square"
)

// Engine runs the assignment search for one fixed goal list over one board
// size. It carries no mutable state across Search calls; all of it lives in
// the Node values the frontier passes around.
type Engine struct {
	goals  []square.Square
	n      int
	cutoff int
}

// NewEngine validates initial and goal lists and returns an Engine plus the
// seed Node: goals already matched by an initial queen are marked bound
// up front, per spec.md §4.3's seeding rule.
func NewEngine(initial, goals []square.Square, opts ...Option) (*Engine, *Node, error) {
	n := len(initial)
	if len(goals) != n {
		return nil, nil, ErrQueenGoalCountMismatch
	}
	if hasDuplicates(initial) {
		return nil, nil, ErrDuplicateQueens
	}
	if hasDuplicates(nonNull(goals)) {
		return nil, nil, ErrDuplicateGoals
	}

	o := resolveOptions(n, opts)
	e := &Engine{goals: append([]square.Square{}, goals...), n: n, cutoff: o.Cutoff}

	seed := &Node{
		Queens:    append([]square.Square{}, initial...),
		Assign:    make([]int, n),
		GoalBound: make([]bool, n),
		Status:    StatusOk,
	}
	for i := range seed.Assign {
		seed.Assign[i] = -1
	}
	for qi, q := range initial {
		for gi, g := range e.goals {
			if !seed.GoalBound[gi] && g == q {
				seed.Assign[qi] = gi
				seed.GoalBound[gi] = true
				break
			}
		}
	}
	seed.GoalIdx = nextUnboundGoalIdx(e.goals, seed.GoalBound, -1)

	return e, seed, nil
}

// AlreadySolved reports spec.md §4.4's fast path: the initial and goal
// placements already contain the same set of queens (set equality, not
// cell-by-cell), so the empty solution is correct without ever invoking the
// path oracle.
func AlreadySolved(initial, goals []square.Square) bool {
	return square.SamePositions(initial, goals)
}

// Search runs the configured strategy to exhaustion (or first terminal hit,
// for strategies where AbortOnFound is true) and returns the optimal
// solution's segment list. ok is false only if the cutoff prevented every
// candidate from completing — a well-formed N-queens goal is always
// reachable, so in practice this only fires under an unreasonably small
// Cutoff.
func (e *Engine) Search(seed *Node, opts ...Option) ([]square.Segment, bool) {
	o := resolveOptions(e.n, append([]Option{WithCutoff(e.cutoff)}, opts...))
	strat := o.Strategy()

	best := o.Cutoff
	var bestSegs []square.Segment
	found := false

	strat.HintPathCost(float64(seed.Len()))
	strat.HintHeuristic(e.heuristic(seed))
	strat.Push(seed)

	for strat.Len() > 0 {
		node, ok := strat.PopNext()
		if !ok {
			break
		}
		if node.Len() >= best {
			continue // stale relative to a solution found via another branch
		}
		if e.isTerminal(node) {
			if node.Len() < best {
				best = node.Len()
				bestSegs = node.Segments
				found = true
			}
			if strat.AbortOnFound() {
				break
			}
			continue
		}
		for _, child := range e.expand(node) {
			if child.Len() >= best {
				continue // pruning, spec.md §4.3 step 6
			}
			strat.HintPathCost(float64(child.Len()))
			strat.HintHeuristic(e.heuristic(child))
			strat.Push(child)
		}
	}
	return bestSegs, found
}

// isTerminal reports whether node needs no further expansion: every goal is
// bound and the node is not mid-hold. A node that reaches GoalIdx==N while
// OnHold is, per the invariants each successful bind maintains, never
// actually produced by this engine (see DESIGN.md's discussion of spec.md
// §9 design note (ii)); the check is kept as the defensive branch the spec
// documents rather than relied upon.
func (e *Engine) isTerminal(node *Node) bool {
	return node.GoalIdx == e.n && node.Status != StatusOnHold
}

// expand generates node's children per spec.md §4.3's expansion rule.
func (e *Engine) expand(node *Node) []*Node {
	if node.GoalIdx == e.n {
		// Hold resolution (spec.md §4.3): a node stuck at OnHold but out of
		// goals to advance toward loops the cursor back for one more pass
		// over the set-aside queens.
		child := node.clone()
		child.Status = StatusRetryingHold
		child.GoalIdx = nextUnboundGoalIdx(e.goals, child.GoalBound, -1)
		if child.GoalIdx == e.n {
			return nil // nothing left unbound at all; genuinely terminal
		}
		return []*Node{child}
	}

	lo, hi := 0, e.n
	switch node.Status {
	case StatusOnHold:
		hi = node.HoldIndex
	case StatusRetryingHold:
		lo = node.HoldIndex
	}

	target := e.goals[node.GoalIdx]
	occ := square.NewQueenSet(e.n, node.Queens)

	var children []*Node
	for q := lo; q < hi; q++ {
		if node.Assign[q] != -1 {
			continue
		}
		segs, ok := pathoracle.Route(occ, node.Queens[q], target)
		if ok {
			child := node.clone()
			child.Queens[q] = target
			child.Assign[q] = node.GoalIdx
			child.GoalBound[node.GoalIdx] = true
			child.Segments = append(child.Segments, segs...)
			child.GoalIdx = nextUnboundGoalIdx(e.goals, child.GoalBound, node.GoalIdx)
			child.Status = StatusOk // a successful route always resolves any hold
			children = append(children, child)
			continue
		}

		switch node.Status {
		case StatusOk:
			child := node.clone()
			child.Status = StatusOnHold
			child.HoldIndex = e.n - 1
			swap(child, q, e.n-1)
			children = append(children, child)
		case StatusOnHold:
			if node.HoldIndex == 0 {
				continue // range exhausted: genuinely nobody can move, dead end
			}
			child := node.clone()
			child.HoldIndex = node.HoldIndex - 1
			swap(child, q, child.HoldIndex)
			children = append(children, child)
		case StatusRetryingHold:
			continue // a failed retry simply drops; see design note (ii)
		}
	}
	return children
}

// swap exchanges queen indices i and j's position and assignment entries —
// the "swap the stuck queen to the end of the live range" step spec.md
// §4.3 names.
func swap(n *Node, i, j int) {
	n.Queens[i], n.Queens[j] = n.Queens[j], n.Queens[i]
	n.Assign[i], n.Assign[j] = n.Assign[j], n.Assign[i]
}

// heuristic is an admissible lower bound for A*: every unbound goal needs at
// least one segment to fill, so the count of unbound non-null goals never
// overestimates the true remaining cost.
func (e *Engine) heuristic(n *Node) float64 {
	h := 0
	for i, bound := range n.GoalBound {
		if !bound && !e.goals[i].IsNull() {
			h++
		}
	}
	return float64(h)
}

func nextUnboundGoalIdx(goals []square.Square, bound []bool, from int) int {
	for i := from + 1; i < len(goals); i++ {
		if !goals[i].IsNull() && !bound[i] {
			return i
		}
	}
	return len(goals)
}

func hasDuplicates(squares []square.Square) bool {
	seen := make(map[square.Square]bool, len(squares))
	for _, s := range squares {
		if seen[s] {
			return true
		}
		seen[s] = true
	}
	return false
}

func nonNull(squares []square.Square) []square.Square {
	out := make([]square.Square, 0, len(squares))
	for _, s := range squares {
		if !s.IsNull() {
			out = append(out, s)
		}
	}
	return out
}

// compile-time assertion that frontier.Frontier[*Node] is a satisfiable
// instantiation — guards against an accidental non-comparable payload.
var _ frontier.Frontier[*Node]
