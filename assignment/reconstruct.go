package assignment

import (
	"github.com/kestrelquest/queentransform/frontier"
	"github.com/kestrelquest/queentransform/square"
	"github.com/kestrelquest/queentransform/validate"
)

// ReconNode is one state in the goal-free reconstruction search spec.md
// §4.4 names: a full placement of N queens (one per slot, slots are not
// tied to any row) and the moves taken to reach it from the starting
// placement.
type ReconNode struct {
	Queens []square.Square
	Moves  []square.Segment
}

func (n *ReconNode) clone() *ReconNode {
	return &ReconNode{
		Queens: append([]square.Square{}, n.Queens...),
		Moves:  append([]square.Segment{}, n.Moves...),
	}
}

// Len is the move count, the cost SolveReconstruction optimizes.
func (n *ReconNode) Len() int { return len(n.Moves) }

// SolveReconstruction finds a move sequence from initial to some
// non-attacking placement, moving one queen along one axis (row, column, or
// diagonal) per step. Unlike Search, there is no fixed goal square per
// queen: any non-attacking arrangement reached from initial counts as a
// solution, so the search explores the much larger space of all
// reachable placements rather than a fixed assignment. It returns the first
// non-attacking placement the A* frontier pops; since reconHeuristic can
// exceed the number of moves still needed, that sequence is not guaranteed
// to be the shortest.
func SolveReconstruction(initial []square.Square, opts ...Option) ([]square.Segment, bool) {
	n := len(initial)
	o := resolveOptions(n, opts)
	strat := frontier.NewAStar[*ReconNode]()
	cutoff := o.Cutoff

	seed := &ReconNode{Queens: append([]square.Square{}, initial...)}
	if validate.NonAttacking(seed.Queens) {
		return nil, true
	}

	strat.HintPathCost(0)
	strat.HintHeuristic(reconHeuristic(seed.Queens))
	strat.Push(seed)

	best := cutoff
	var bestMoves []square.Segment
	found := false

	for strat.Len() > 0 {
		node, ok := strat.PopNext()
		if !ok {
			break
		}
		if node.Len() >= best {
			continue
		}
		if validate.NonAttacking(node.Queens) {
			best = node.Len()
			bestMoves = node.Moves
			found = true
			if strat.AbortOnFound() {
				break
			}
			continue
		}
		for _, child := range reconExpand(node) {
			if child.Len() >= best {
				continue
			}
			strat.HintPathCost(float64(child.Len()))
			strat.HintHeuristic(reconHeuristic(child.Queens))
			strat.Push(child)
		}
	}
	return bestMoves, found
}

// reconExpand moves each queen, in turn, to every other square reachable
// along its current row, column, or either diagonal, skipping squares
// already held by another queen. This is the "per-axis move" expansion rule
// spec.md §4.4 names; it ignores the path oracle's corridor-blocking rule
// entirely; a reconstruction move is a single long leap, not a segment
// chain, since there is no moving-queen-occupies-its-own-source subtlety to
// resolve against a fixed destination.
func reconExpand(node *ReconNode) []*ReconNode {
	n := len(node.Queens)
	occupied := make(map[square.Square]bool, n)
	for _, q := range node.Queens {
		occupied[q] = true
	}

	var children []*ReconNode
	for i, from := range node.Queens {
		for _, to := range axisSquares(from, n) {
			if occupied[to] {
				continue
			}
			dr, dc := square.Direction(from, to)
			child := node.clone()
			child.Queens[i] = to
			child.Moves = append(child.Moves, square.Segment{
				Kind: square.KindFromDirection(dr, dc),
				Src:  from,
				Dest: to,
			})
			children = append(children, child)
		}
	}
	return children
}

// axisSquares lists every square on an n x n board sharing from's row,
// column, or either diagonal, excluding from itself.
func axisSquares(from square.Square, n int) []square.Square {
	var out []square.Square
	for c := 0; c < n; c++ {
		if c != from.Col {
			out = append(out, square.Square{Row: from.Row, Col: c})
		}
	}
	for r := 0; r < n; r++ {
		if r != from.Row {
			out = append(out, square.Square{Row: r, Col: from.Col})
		}
	}
	for _, d := range [2]int{-1, 1} {
		for _, e := range [2]int{-1, 1} {
			for k := 1; k < n; k++ {
				s := square.Square{Row: from.Row + d*k, Col: from.Col + e*k}
				if s.Row < 0 || s.Row >= n || s.Col < 0 || s.Col >= n {
					break
				}
				out = append(out, s)
			}
		}
	}
	return out
}

// reconHeuristic is spec.md §4.4's attack-count estimate: the sum, over
// every row, column, and diagonal family, of max(0, count-1). One move
// changes a queen's row, column, and both diagonals at once, so it can lower
// the sum by up to four; the sum is therefore not a lower bound on the moves
// still needed (on 4x4, queens b3, d2, a3, c4 score 2, yet the single move
// b3->b1 clears every conflict).
func reconHeuristic(queens []square.Square) float64 {
	n := len(queens)
	rows, cols, diag1, diag2 := validate.AttackCount(n, queens)
	h := 0
	for _, counts := range [][]int{rows, cols, diag1, diag2} {
		for _, c := range counts {
			if c > 1 {
				h += c - 1
			}
		}
	}
	return float64(h)
}
