// Package validate holds the placement-soundness checks used by the
// reconstruction search's goal test and heuristic.
package validate

import "github.com/kestrelquest/queentransform/square"

// NonAttacking reports whether queens is a valid N-queens placement: no two
// squares share a row, a column, or a diagonal (row difference equals
// absolute column difference). This is spec.md §8 property 2,
// validate_placement.
func NonAttacking(queens []square.Square) bool {
	for i := 0; i < len(queens); i++ {
		for j := i + 1; j < len(queens); j++ {
			if attacks(queens[i], queens[j]) {
				return false
			}
		}
	}
	return true
}

func attacks(a, b square.Square) bool {
	if a.Row == b.Row || a.Col == b.Col {
		return true
	}
	dr := a.Row - b.Row
	dc := a.Col - b.Col
	if dr < 0 {
		dr = -dr
	}
	if dc < 0 {
		dc = -dc
	}
	return dr == dc
}

// AttackCount returns, for each row, column, and the two diagonal families
// (indexed by row-col and row+col, offset to stay non-negative), how many
// queens occupy it. Used by the reconstruction search's heuristic.
func AttackCount(n int, queens []square.Square) (rows, cols, diag1, diag2 []int) {
	rows = make([]int, n)
	cols = make([]int, n)
	diag1 = make([]int, 2*n-1) // index row-col+n-1
	diag2 = make([]int, 2*n-1) // index row+col
	for _, q := range queens {
		rows[q.Row]++
		cols[q.Col]++
		diag1[q.Row-q.Col+n-1]++
		diag2[q.Row+q.Col]++
	}
	return
}
