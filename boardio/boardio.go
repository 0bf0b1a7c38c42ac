// Package boardio parses the two board input formats spec.md §6 names —
// comma-separated coordinate lists and FEN-like rank notation — and
// auto-detects between them the way the teacher's builder package
// auto-detects its own inputs: by inspecting the data, then reporting both
// attempts' rejection reasons if neither one fits.
package boardio

import (
	"fmt"
	"strings"

	"github.com/kestrelquest/queentransform/square"
)

// DefaultGoal returns the hardcoded 8-queen default goal spec.md §6 names
// for the single-positional-argument CLI invocation. It is only valid for
// N==8; callers must supply an explicit goal file for any other size.
func DefaultGoal(n int) ([]square.Square, error) {
	if n != 8 {
		return nil, fmt.Errorf("boardio: no default goal for N=%d (only N=8 has one)", n)
	}
	return ParseCSV("b1,e2,g3,d4,a5,h6,f7,c8", false)
}

// Parse auto-detects the input format by inspecting whether the third byte
// is a comma (spec.md §6) and parses accordingly. If trust is true, both
// parsers skip validation and assume well-formed input (spec.md §6's
// --trust flag). On failure it returns an error naming both the FEN and CSV
// rejection reasons, per spec.md §7's propagation policy, so the caller can
// see which format was actually attempted.
func Parse(data string, trust bool) ([]square.Square, error) {
	data = strings.TrimSpace(data)
	if len(data) >= 3 && data[2] == ',' {
		qs, err := ParseCSV(data, trust)
		if err == nil {
			return qs, nil
		}
		_, fenErr := ParseFEN(data, trust)
		return nil, fmt.Errorf("malformed input data.\n[FEN: %v]\n[CSV: %v]", fenErr, err)
	}

	qs, err := ParseFEN(data, trust)
	if err == nil {
		return qs, nil
	}
	_, csvErr := ParseCSV(data, trust)
	return nil, fmt.Errorf("malformed input data.\n[FEN: %v]\n[CSV: %v]", err, csvErr)
}

// ParseCSV parses exactly N comma-separated two-character squares in
// file-rank notation ("a1,b2,...,h8"). With trust set, malformed tokens are
// not checked and out-of-range bytes may produce garbage coordinates rather
// than an error — the fast path spec.md §6's --trust flag names.
func ParseCSV(data string, trust bool) ([]square.Square, error) {
	tokens := strings.Split(data, ",")
	n := len(tokens)
	qs := make([]square.Square, 0, n)
	for i, tok := range tokens {
		if trust {
			qs = append(qs, square.Square{Row: int(tok[1] - '1'), Col: int(tok[0] - 'a')})
			continue
		}
		if len(tok) != 2 {
			return nil, fmt.Errorf("token %d (%q): want exactly 2 characters", i, tok)
		}
		col := tok[0]
		row := tok[1]
		if col < 'a' || col > 'z' {
			return nil, fmt.Errorf("token %d (%q): file %q out of range", i, tok, string(col))
		}
		if row < '1' || row > '9' {
			return nil, fmt.Errorf("token %d (%q): rank %q out of range", i, tok, string(row))
		}
		sq := square.Square{Row: int(row - '1'), Col: int(col - 'a')}
		if sq.Col >= n || sq.Row >= n {
			return nil, fmt.Errorf("token %d (%q): coordinate outside %dx%d board", i, tok, n, n)
		}
		qs = append(qs, sq)
	}
	if dup, has := firstDuplicate(qs); has {
		return nil, fmt.Errorf("duplicate queen at %s", dup)
	}
	return qs, nil
}

// ParseFEN parses N ranks separated by '/', top rank first, each rank a
// sequence of digits (empty-square run lengths) and the letter Q or q (a
// queen). An optional space and trailing metadata is ignored. N is taken
// to be the rank count; exactly N queens must appear, and every rank's run
// lengths plus queen count must sum to N.
func ParseFEN(data string, trust bool) ([]square.Square, error) {
	if sp := strings.IndexByte(data, ' '); sp >= 0 {
		data = data[:sp]
	}
	ranks := strings.Split(data, "/")
	n := len(ranks)

	var qs []square.Square
	for ri, rank := range ranks {
		row := n - 1 - ri // top rank first; row 0 is rank '1'
		col := 0
		run := 0
		for i := 0; i < len(rank); i++ {
			c := rank[i]
			switch {
			case c == 'Q' || c == 'q':
				if !trust && col >= n {
					return nil, fmt.Errorf("rank %d: overruns board width at %q", ri, rank)
				}
				qs = append(qs, square.Square{Row: row, Col: col})
				col++
			case c >= '0' && c <= '9':
				run = run*10 + int(c-'0')
				if i+1 >= len(rank) || rank[i+1] < '0' || rank[i+1] > '9' {
					col += run
					run = 0
				}
			default:
				if !trust {
					return nil, fmt.Errorf("rank %d: unexpected character %q", ri, string(c))
				}
			}
		}
		if !trust && col != n {
			return nil, fmt.Errorf("rank %d: width %d, want %d", ri, col, n)
		}
	}
	if !trust && len(qs) != n {
		return nil, fmt.Errorf("got %d queens, want %d", len(qs), n)
	}
	if dup, has := firstDuplicate(qs); !trust && has {
		return nil, fmt.Errorf("duplicate queen at %s", dup)
	}
	return qs, nil
}

func firstDuplicate(qs []square.Square) (square.Square, bool) {
	seen := make(map[square.Square]bool, len(qs))
	for _, q := range qs {
		if seen[q] {
			return q, true
		}
		seen[q] = true
	}
	return square.Square{}, false
}
