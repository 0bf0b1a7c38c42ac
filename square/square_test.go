package square_test

import (
	"testing"

	"github.com/kestrelquest/queentransform/square"
)

func TestSquareString(t *testing.T) {
	cases := []struct {
		s    square.Square
		want string
	}{
		{square.Square{Row: 0, Col: 0}, "a1"},
		{square.Square{Row: 7, Col: 7}, "h8"},
		{square.Square{Row: 2, Col: 1}, "b3"},
		{square.Null, "--"},
	}
	for _, c := range cases {
		if got := c.s.String(); got != c.want {
			t.Errorf("Square%+v.String() = %q, want %q", c.s, got, c.want)
		}
	}
}

func TestBoardOccupancy(t *testing.T) {
	b := square.NewBoard(8)
	a1 := square.Square{Row: 0, Col: 0}
	if b.Occupied(a1) {
		t.Fatal("fresh board should be empty")
	}
	b.Set(a1)
	if !b.Occupied(a1) {
		t.Fatal("Set should mark the square occupied")
	}
	b.Clear(a1)
	if b.Occupied(a1) {
		t.Fatal("Clear should vacate the square")
	}
}

func TestBoardCloneIsIndependent(t *testing.T) {
	b := square.NewBoard(4)
	s := square.Square{Row: 1, Col: 1}
	b.Set(s)
	clone := b.Clone()
	clone.Clear(s)
	if !b.Occupied(s) {
		t.Fatal("mutating the clone must not affect the original")
	}
}

func TestQueenSetOccupancy(t *testing.T) {
	qs := square.NewQueenSet(8, []square.Square{{Row: 0, Col: 0}, {Row: 3, Col: 4}})
	if !qs.Occupied(square.Square{Row: 3, Col: 4}) {
		t.Fatal("expected (3,4) occupied")
	}
	if qs.Occupied(square.Square{Row: 1, Col: 1}) {
		t.Fatal("expected (1,1) empty")
	}
	if !qs.InBounds(square.Square{Row: 7, Col: 7}) || qs.InBounds(square.Square{Row: 8, Col: 0}) {
		t.Fatal("InBounds disagrees with board size")
	}
}

func TestSamePositionsIgnoresOrder(t *testing.T) {
	a := []square.Square{{Row: 0, Col: 0}, {Row: 1, Col: 1}}
	b := []square.Square{{Row: 1, Col: 1}, {Row: 0, Col: 0}}
	if !square.SamePositions(a, b) {
		t.Fatal("set equality should ignore order")
	}
	c := []square.Square{{Row: 1, Col: 1}, {Row: 2, Col: 2}}
	if square.SamePositions(a, c) {
		t.Fatal("different sets must not compare equal")
	}
}

func TestKindFromDirection(t *testing.T) {
	cases := []struct {
		dr, dc int
		want   square.SegmentKind
	}{
		{0, 1, square.Horizontal},
		{1, 0, square.Vertical},
		{1, 1, square.Diagonal},
		{-1, -1, square.Diagonal},
		{0, 0, square.NoPath},
	}
	for _, c := range cases {
		if got := square.KindFromDirection(c.dr, c.dc); got != c.want {
			t.Errorf("KindFromDirection(%d,%d) = %v, want %v", c.dr, c.dc, got, c.want)
		}
	}
}
