package assignment

import "errors"

// Sentinel errors for the assignment package. Callers branch with
// errors.Is, matching the sentinel-error policy spec.md §7 carries over
// from the teacher's builder package.
var (
	// ErrQueenGoalCountMismatch indicates the initial and goal lists are not
	// both exactly length N.
	ErrQueenGoalCountMismatch = errors.New("assignment: queen and goal lists must both have length N")

	// ErrDuplicateQueens indicates the initial placement has two queens on
	// the same square — a violated data-model invariant.
	ErrDuplicateQueens = errors.New("assignment: duplicate queen positions")

	// ErrDuplicateGoals indicates the goal list has two non-null entries on
	// the same square.
	ErrDuplicateGoals = errors.New("assignment: duplicate goal positions")
)
