// Package pathoracle answers the nested shortest-path question the
// assignment search depends on for every candidate edge: given the current
// queen layout, how many straight-line segments does it take to move one
// queen from its square to a target square, routing around the other
// queens? It is an A* search over board squares, built on frontier.Frontier
// so it shares the same tie-break and ordering guarantees as every other
// search strategy in this module.
package pathoracle

import (
	"math"

	"github.com/kestrelquest/queentransform/frontier"
	"github.com/kestrelquest/queentransform/square"
)

// kingSteps are the eight king-move deltas, in a fixed order so that
// direction changes (and therefore turn penalties and segment cuts) are
// computed identically regardless of which neighbor happens to expand a
// given square first.
var kingSteps = [8][2]int{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

const stepCost = 1.0

// turnPenalty must strictly exceed the maximum possible sum of step costs on
// the board, so that any path with fewer direction changes dominates any
// path with more, regardless of raw distance (spec.md §4.2, §9). N*N bounds
// the longest possible king-move walk that visits every square at most once;
// one additional unit keeps the bound strict even at N=1.
func turnPenalty(n int) float64 {
	return float64(8*n*n + 1)
}

// state is one A* search node: the square reached, the square the current
// straight segment started from, the direction of travel used to reach this
// square (zero value before any move has been made), and the segments
// completed so far (appended to, never rewritten).
type state struct {
	sq       square.Square
	segStart square.Square
	dr, dc   int
	g        float64
	segs     []square.Segment
}

// Route returns the minimum number of straight-line segments to move a
// single queen from src to dest across occ, avoiding every other occupied
// square, along with the ordered segment list. ok is false if no corridor
// exists; the caller buffer convention from spec.md §4.2 ("leave the caller
// buffer untouched on failure") is realized here as simply returning a nil
// slice.
//
// Precondition (caller's responsibility, per spec.md §4.2's edge-case
// policy): src != dest, and dest must not be occupied by a queen other than
// the one at src. Violating this is an internal precondition error; see
// assertSearchPrecondition.
func Route(occ square.Occupancy, src, dest square.Square) ([]square.Segment, bool) {
	assertSearchPrecondition(occ, src, dest)

	n := occ.Size()
	penalty := turnPenalty(n)
	// best is keyed by square and incoming direction: the cost still to come
	// from a square depends on the direction it was entered in (continuing
	// straight pays no turn penalty), so arrivals from different directions
	// must not shadow each other.
	type visit struct {
		sq     square.Square
		dr, dc int
	}
	best := map[visit]float64{{sq: src}: 0}

	f := frontier.NewAStar[state]()
	start := state{sq: src, segStart: src}
	f.HintPathCost(0)
	f.HintHeuristic(heuristic(src, dest))
	f.Push(start)

	for f.Len() > 0 {
		cur, ok := f.PopNext()
		if !ok {
			break
		}
		if g, seen := best[visit{cur.sq, cur.dr, cur.dc}]; seen && cur.g > g {
			continue // stale entry superseded by a cheaper expansion
		}
		if cur.sq == dest {
			final := square.Segment{
				Kind: square.KindFromDirection(cur.dr, cur.dc),
				Src:  cur.segStart,
				Dest: dest,
			}
			return append(append([]square.Segment{}, cur.segs...), final), true
		}
		for _, step := range kingSteps {
			next := square.Square{Row: cur.sq.Row + step[0], Col: cur.sq.Col + step[1]}
			if !occ.InBounds(next) {
				continue
			}
			if blocked(occ, next, src, dest) {
				continue
			}
			dr, dc := step[0], step[1]
			cost := cur.g + stepCost
			segStart := cur.segStart
			segs := cur.segs
			firstMove := cur.dr == 0 && cur.dc == 0
			turned := !firstMove && (dr != cur.dr || dc != cur.dc)
			if turned {
				cost += penalty
				segs = append(append([]square.Segment{}, cur.segs...), square.Segment{
					Kind: square.KindFromDirection(cur.dr, cur.dc),
					Src:  cur.segStart,
					Dest: cur.sq,
				})
				segStart = cur.sq
			}
			if g, seen := best[visit{next, dr, dc}]; seen && g <= cost {
				continue
			}
			best[visit{next, dr, dc}] = cost
			f.HintPathCost(cost)
			f.HintHeuristic(heuristic(next, dest))
			f.Push(state{sq: next, segStart: segStart, dr: dr, dc: dc, g: cost, segs: segs})
		}
	}
	return nil, false
}

// blocked reports whether sq cannot be entered: occupied by a queen other
// than the one moving. Both src (departs immediately) and dest (the move's
// endpoint) are treated as empty for pathing purposes, per spec.md §4.2's
// edge-case policy.
func blocked(occ square.Occupancy, sq, src, dest square.Square) bool {
	if sq == src || sq == dest {
		return false
	}
	return occ.Occupied(sq)
}

// heuristic is the Manhattan distance to dest: monotone under the turn-
// penalty ordering and an acceptable stand-in for true Chebyshev distance
// per spec.md §4.2.
func heuristic(s, dest square.Square) float64 {
	dr := s.Row - dest.Row
	if dr < 0 {
		dr = -dr
	}
	dc := s.Col - dest.Col
	if dc < 0 {
		dc = -dc
	}
	return math.Abs(float64(dr)) + math.Abs(float64(dc))
}

// debugAssertEnabled gates the internal precondition checks spec.md §7
// scopes to debug builds. It is false by default and nothing in this module
// sets it.
var debugAssertEnabled = false

func assertSearchPrecondition(occ square.Occupancy, src, dest square.Square) {
	if !debugAssertEnabled {
		return
	}
	if src == dest {
		panic("pathoracle: src == dest")
	}
	if occ.Occupied(dest) {
		panic("pathoracle: dest already occupied")
	}
}
