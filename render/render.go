// Package render prints boards and move replays in the plain-text format
// spec.md §6 names: bordered grids with file/rank labels, queen and
// empty-square glyphs, and a move-by-move replay with the path overlaid.
package render

import (
	"fmt"
	"io"

	"github.com/kestrelquest/queentransform/square"
)

// Board writes b bordered with '+', '-', '|', file letters along the
// bottom and rank digits along the side, queens marked 'Q' and empty
// squares marked '.'.
func Board(w io.Writer, b *square.Board) {
	writeGrid(w, b, b.Size(), nil)
}

// Replay writes the initial board, then the board again after each move in
// solution, marking the move's source '#' and destination 'Q' and
// overlaying the path traveled with '-', '|', '/', '\' as appropriate. Each
// board is followed by a "Move k: Kind(src, dest)" line. The final line is
// "A solution with K move(s) found."
func Replay(w io.Writer, init *square.Board, solution []square.Segment) {
	board := init.Clone()
	n := board.Size()

	fmt.Fprintln(w, "Initial position:")
	writeGrid(w, board, n, nil)

	for k, seg := range solution {
		board.Clear(seg.Src)
		board.Set(seg.Dest)
		writeGrid(w, board, n, &seg)
		fmt.Fprintf(w, "Move %d: %s\n", k+1, seg)
	}
	fmt.Fprintf(w, "A solution with %d move(s) found.\n", len(solution))
}

func writeGrid(w io.Writer, b *square.Board, n int, moved *square.Segment) {
	border := "+" + repeat("-", n) + "+"
	fmt.Fprintln(w, border)
	for r := n - 1; r >= 0; r-- {
		fmt.Fprint(w, "|")
		for c := 0; c < n; c++ {
			s := square.Square{Row: r, Col: c}
			fmt.Fprint(w, string(glyph(b, s, moved)))
		}
		fmt.Fprintf(w, "| %d\n", r+1)
	}
	fmt.Fprintln(w, border)
	fmt.Fprint(w, " ")
	for c := 0; c < n; c++ {
		fmt.Fprint(w, string(rune('a'+c)))
	}
	fmt.Fprintln(w)
}

func glyph(b *square.Board, s square.Square, moved *square.Segment) byte {
	if moved != nil {
		if s == moved.Src {
			return '#'
		}
		if s == moved.Dest {
			return 'Q'
		}
		if onPath(*moved, s) {
			dr, dc := square.Direction(moved.Src, moved.Dest)
			return pathGlyph(moved.Kind, dr, dc)
		}
	}
	if b.Occupied(s) {
		return 'Q'
	}
	return '.'
}

func onPath(seg square.Segment, s square.Square) bool {
	dr, dc := square.Direction(seg.Src, seg.Dest)
	r, c := seg.Src.Row, seg.Src.Col
	for r != seg.Dest.Row || c != seg.Dest.Col {
		r += dr
		c += dc
		if r == s.Row && c == s.Col {
			return true
		}
	}
	return false
}

// pathGlyph picks the overlay character for a step in direction (dr, dc):
// '/' for a diagonal rising left-to-right, '\' for one falling left-to-right.
func pathGlyph(kind square.SegmentKind, dr, dc int) byte {
	switch kind {
	case square.Horizontal:
		return '-'
	case square.Vertical:
		return '|'
	case square.Diagonal:
		if dr == dc {
			return '/'
		}
		return '\\'
	default:
		return '.'
	}
}

func repeat(s string, n int) string {
	out := make([]byte, 0, n*len(s))
	for i := 0; i < n; i++ {
		out = append(out, s...)
	}
	return string(out)
}
