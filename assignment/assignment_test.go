package assignment_test

import (
	"testing"

	"github.com/kestrelquest/queentransform/assignment"
	"github.com/kestrelquest/queentransform/boardio"
	"github.com/kestrelquest/queentransform/square"
	"github.com/kestrelquest/queentransform/validate"
)

func sq(row, col int) square.Square { return square.Square{Row: row, Col: col} }

// TestScenarioS1DiagonalToDefaultGoal is spec.md §8 scenario S1: init is
// the all-main-diagonal placement `a1,b2,...,h8`, goal is the default
// eight-queen solution `b1,e2,g3,d4,a5,h6,f7,c8`. Expected: a nonempty
// solution whose final board equals the goal.
func TestScenarioS1DiagonalToDefaultGoal(t *testing.T) {
	initial := []square.Square{sq(0, 0), sq(1, 1), sq(2, 2), sq(3, 3), sq(4, 4), sq(5, 5), sq(6, 6), sq(7, 7)}
	goals, err := boardio.DefaultGoal(8)
	if err != nil {
		t.Fatalf("DefaultGoal: %v", err)
	}

	eng, seed, err := assignment.NewEngine(initial, goals)
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}
	segs, ok := eng.Search(seed)
	if !ok {
		t.Fatal("expected a solution")
	}
	if len(segs) == 0 {
		t.Fatal("expected a nonempty solution (init != goal)")
	}

	final := applyMoves(initial, segs)
	if !square.SamePositions(final, goals) {
		t.Fatalf("final board %v does not equal goal %v", final, goals)
	}
	if !validate.NonAttacking(final) {
		t.Fatalf("final board %v must be non-attacking", final)
	}
}

// TestScenarioS2IdempotenceNoSearchInvoked is spec.md §8 scenario S2: init
// equals the default eight-queen goal, so the fast path alone must report
// an empty solution without ever invoking Search.
func TestScenarioS2IdempotenceNoSearchInvoked(t *testing.T) {
	goals, err := boardio.DefaultGoal(8)
	if err != nil {
		t.Fatalf("DefaultGoal: %v", err)
	}
	if !assignment.AlreadySolved(goals, goals) {
		t.Fatal("expected an init-equals-goal placement to short-circuit")
	}
}

// TestScenarioS3FourQueensInvalidStart is spec.md §8 scenario S3 (N=4):
// init `a1,b1,c1,d1` (all queens on rank 1, an invalid placement) to goal
// `b4,d3,a2,c1`. Expected: a solution of at least three moves, and the
// validator accepts the final placement.
func TestScenarioS3FourQueensInvalidStart(t *testing.T) {
	initial := []square.Square{sq(0, 0), sq(0, 1), sq(0, 2), sq(0, 3)}
	goals := []square.Square{sq(3, 1), sq(2, 3), sq(1, 0), sq(0, 2)}

	eng, seed, err := assignment.NewEngine(initial, goals)
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}
	segs, ok := eng.Search(seed)
	if !ok {
		t.Fatal("expected a solution")
	}
	if len(segs) < 3 {
		t.Fatalf("got %d moves, want at least 3", len(segs))
	}

	final := applyMoves(initial, segs)
	if !square.SamePositions(final, goals) {
		t.Fatalf("final board %v does not equal goal %v", final, goals)
	}
	if !validate.NonAttacking(final) {
		t.Fatalf("final placement %v must validate as non-attacking", final)
	}
}

// TestSearchOptimalityTwoQueensNoCollision is spec.md §8 property 5
// (assignment optimality) on a hand-computable N=2 case: two queens whose
// direct routes to their goals never cross. Each queen needs at least one
// move, so the true optimum is exactly two segments — anything else would
// mean the search missed the trivial direct route.
func TestSearchOptimalityTwoQueensNoCollision(t *testing.T) {
	initial := []square.Square{sq(0, 0), sq(1, 1)}
	goals := []square.Square{sq(0, 1), sq(1, 0)}

	eng, seed, err := assignment.NewEngine(initial, goals)
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}
	segs, ok := eng.Search(seed)
	if !ok {
		t.Fatal("expected a solution")
	}
	if len(segs) != 2 {
		t.Fatalf("got %d segments, want the hand-computable optimum of 2", len(segs))
	}
}

// TestSearchSingleQueenDirectMove: on a 2x2 board one queen already sits on
// its goal and the other has a clear rank to its own — the minimal solution
// is exactly one segment.
func TestSearchSingleQueenDirectMove(t *testing.T) {
	initial := []square.Square{sq(0, 0), sq(1, 1)}
	goals := []square.Square{sq(0, 1), sq(1, 1)}

	eng, seed, err := assignment.NewEngine(initial, goals)
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}
	segs, ok := eng.Search(seed)
	if !ok {
		t.Fatal("expected a solution")
	}
	if len(segs) != 1 {
		t.Fatalf("got %d segments, want 1", len(segs))
	}
}

// TestSearchRejectsMismatchedLengths covers the validation path.
func TestSearchRejectsMismatchedLengths(t *testing.T) {
	_, _, err := assignment.NewEngine([]square.Square{sq(0, 0)}, []square.Square{sq(0, 0), sq(1, 1)})
	if err != assignment.ErrQueenGoalCountMismatch {
		t.Fatalf("got %v, want ErrQueenGoalCountMismatch", err)
	}
}

func TestSearchRejectsDuplicateQueens(t *testing.T) {
	_, _, err := assignment.NewEngine(
		[]square.Square{sq(0, 0), sq(0, 0)},
		[]square.Square{sq(1, 1), sq(2, 2)},
	)
	if err != assignment.ErrDuplicateQueens {
		t.Fatalf("got %v, want ErrDuplicateQueens", err)
	}
}

func TestSearchRejectsDuplicateGoals(t *testing.T) {
	_, _, err := assignment.NewEngine(
		[]square.Square{sq(0, 0), sq(1, 1)},
		[]square.Square{sq(2, 2), sq(2, 2)},
	)
	if err != assignment.ErrDuplicateGoals {
		t.Fatalf("got %v, want ErrDuplicateGoals", err)
	}
}

// TestSearchNullGoalsPreBound: a goal entry coinciding with an initial
// queen position is bound during seeding and never routed.
func TestSearchNullGoalsPreBound(t *testing.T) {
	initial := []square.Square{sq(0, 0), sq(3, 3)}
	goals := []square.Square{sq(0, 0), sq(5, 5)}

	_, seed, err := assignment.NewEngine(initial, goals)
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}
	if !seed.GoalBound[0] {
		t.Fatal("goal coinciding with an initial queen must be pre-bound")
	}
	if seed.GoalIdx != 1 {
		t.Fatalf("GoalIdx = %d, want 1 (first unbound goal)", seed.GoalIdx)
	}
}

// applyMoves replays segs against initial and returns the resulting queen
// positions, matching each segment's source to whichever queen currently
// occupies it.
func applyMoves(initial []square.Square, segs []square.Segment) []square.Square {
	final := append([]square.Square{}, initial...)
	for _, m := range segs {
		for i, q := range final {
			if q == m.Src {
				final[i] = m.Dest
				break
			}
		}
	}
	return final
}
