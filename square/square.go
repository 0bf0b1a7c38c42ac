// Package square defines the board coordinate and occupancy primitives shared
// by every search package: the Square coordinate, the immutable Board
// occupancy grid, the Segment move primitive, and the small Occupancy
// interface that lets the path oracle reason about blockers without caring
// whether it is routing against a freshly parsed Board or a search node's
// in-flight queen set.
package square

import "fmt"

// Square is a board coordinate. Row 0 is rank '1'; Col 0 is file 'a'.
type Square struct {
	Row, Col int
}

// Null is the canonical "no square" sentinel used for matched goal slots.
var Null = Square{Row: -1, Col: -1}

// IsNull reports whether s is the Null sentinel.
func (s Square) IsNull() bool {
	return s == Null
}

// String renders s in file-letter + rank-digit notation, e.g. "a1".
// The Null square renders as "--"; a square outside the 26-file range the
// notation supports, or with a negative row, renders as "(row,col)".
func (s Square) String() string {
	if s.IsNull() {
		return "--"
	}
	if s.Col < 0 || s.Col > 25 || s.Row < 0 {
		return fmt.Sprintf("(%d,%d)", s.Row, s.Col)
	}
	return fmt.Sprintf("%c%d", 'a'+s.Col, s.Row+1)
}

// Occupancy is the minimal surface the path oracle needs: whether a square
// holds a queen and whether a square is on the board. Board (a parsed,
// immutable grid) and QueenSet (an in-flight search node's position set)
// both implement it.
type Occupancy interface {
	Occupied(s Square) bool
	InBounds(s Square) bool
	Size() int
}

// Board is an immutable N×N occupancy grid, constructed once from parser
// output and never mutated afterwards.
type Board struct {
	n   int
	occ [][]byte
}

// NewBoard returns an empty N×N board.
func NewBoard(n int) *Board {
	occ := make([][]byte, n)
	for i := range occ {
		occ[i] = make([]byte, n)
	}
	return &Board{n: n, occ: occ}
}

// NewBoardFromSquares builds a Board with a queen on each given square.
func NewBoardFromSquares(n int, queens []Square) *Board {
	b := NewBoard(n)
	for _, q := range queens {
		b.Set(q)
	}
	return b
}

// Size returns the board's side length N.
func (b *Board) Size() int { return b.n }

// InBounds reports whether s lies within [0,N) x [0,N).
func (b *Board) InBounds(s Square) bool {
	return s.Row >= 0 && s.Row < b.n && s.Col >= 0 && s.Col < b.n
}

// Set marks s occupied. Out-of-bounds squares are ignored.
func (b *Board) Set(s Square) {
	if b.InBounds(s) {
		b.occ[s.Row][s.Col] = 1
	}
}

// Clear marks s empty. Out-of-bounds squares are ignored.
func (b *Board) Clear(s Square) {
	if b.InBounds(s) {
		b.occ[s.Row][s.Col] = 0
	}
}

// Occupied reports whether s holds a queen. Any nonzero cell counts as
// occupied, per the occupancy semantics in the data model.
func (b *Board) Occupied(s Square) bool {
	return b.InBounds(s) && b.occ[s.Row][s.Col] != 0
}

// Clone returns a deep copy, for callers (tests, render) that need to mutate
// a working copy without touching the immutable original.
func (b *Board) Clone() *Board {
	out := NewBoard(b.n)
	for r := range b.occ {
		copy(out.occ[r], b.occ[r])
	}
	return out
}

// Queens scans the grid in row-major order and returns every occupied
// square. Used only by callers that don't already carry an ordered queen
// list (parsers hand back their own natural enumeration order instead).
func (b *Board) Queens() []Square {
	var qs []Square
	for r := 0; r < b.n; r++ {
		for c := 0; c < b.n; c++ {
			if b.occ[r][c] != 0 {
				qs = append(qs, Square{Row: r, Col: c})
			}
		}
	}
	return qs
}

// QueenSet is a lightweight Occupancy view over a search node's in-flight
// queen positions. Unlike Board it carries no grid allocation: membership is
// a map lookup, which is cheap for the handful of queens a search node
// tracks and avoids an O(N^2) grid per expanded node.
type QueenSet struct {
	n       int
	members map[Square]bool
}

// NewQueenSet builds an Occupancy view over queens on an n x n board.
func NewQueenSet(n int, queens []Square) *QueenSet {
	m := make(map[Square]bool, len(queens))
	for _, q := range queens {
		m[q] = true
	}
	return &QueenSet{n: n, members: m}
}

// Size returns N.
func (q *QueenSet) Size() int { return q.n }

// InBounds reports whether s lies within [0,N) x [0,N).
func (q *QueenSet) InBounds(s Square) bool {
	return s.Row >= 0 && s.Row < q.n && s.Col >= 0 && s.Col < q.n
}

// Occupied reports whether a queen sits on s.
func (q *QueenSet) Occupied(s Square) bool {
	return q.members[s]
}

// SamePositions reports whether a and b contain the same set of squares,
// irrespective of order — the set-equality check the fast-path idempotence
// test (spec.md §4.4) requires, as opposed to cell-by-cell comparison.
func SamePositions(a, b []Square) bool {
	if len(a) != len(b) {
		return false
	}
	seen := make(map[Square]int, len(a))
	for _, s := range a {
		seen[s]++
	}
	for _, s := range b {
		seen[s]--
		if seen[s] < 0 {
			return false
		}
	}
	return true
}
