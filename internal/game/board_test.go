package game

import (
	"errors"
	"testing"

	"taklite_poc/internal/shared"
)

func newTestBoard(t *testing.T, size int) *Board {
	t.Helper()
	b, err := NewBoard(size)
	if err != nil {
		t.Fatalf("new board: %v", err)
	}
	return b
}

func mustPlace(t *testing.T, b *Board, x, y int, color shared.Color, kind shared.StoneKind) {
	t.Helper()
	place, err := NewPlace(x, y, color, kind)
	if err != nil {
		t.Fatalf("new place: %v", err)
	}
	if err := b.Apply(place); err != nil {
		t.Fatalf("place %s %s at (%d,%d): %v", color, kind, x, y, err)
	}
}

func mustMove(t *testing.T, b *Board, x, y int, drops []int, dir shared.Direction) {
	t.Helper()
	move, err := NewMove(x, y, drops, dir)
	if err != nil {
		t.Fatalf("new move: %v", err)
	}
	if err := b.Apply(move); err != nil {
		t.Fatalf("move from (%d,%d) %s %v: %v", x, y, dir, drops, err)
	}
}

func totalStones(t *testing.T, b *Board) int {
	t.Helper()
	total := 0
	for y := 0; y < b.Size(); y++ {
		for x := 0; x < b.Size(); x++ {
			f, err := b.Field(x, y)
			if err != nil {
				t.Fatalf("field (%d,%d): %v", x, y, err)
			}
			total += f.Height()
		}
	}
	return total
}

func TestFieldBounds(t *testing.T) {
	b := newTestBoard(t, 5)
	if _, err := b.Field(4, 4); err != nil {
		t.Fatalf("corner field should be reachable: %v", err)
	}
	cases := [][2]int{{5, 0}, {0, 5}, {-1, 0}, {0, -1}}
	for _, c := range cases {
		if _, err := b.Field(c[0], c[1]); !errors.Is(err, ErrOutOfBounds) {
			t.Fatalf("expected ErrOutOfBounds for (%d,%d), got %v", c[0], c[1], err)
		}
	}
}

func TestPlaceOnEmptyCellThenOccupied(t *testing.T) {
	b := newTestBoard(t, 5)
	mustPlace(t, b, 0, 0, shared.White, shared.Flat)

	f, err := b.Field(0, 0)
	if err != nil {
		t.Fatalf("field: %v", err)
	}
	top, err := f.Top()
	if err != nil {
		t.Fatalf("top: %v", err)
	}
	if top.Color != shared.White || top.Kind != shared.Flat {
		t.Fatalf("expected white flat on top, got %s", top)
	}

	place, err := NewPlace(0, 0, shared.Black, shared.Flat)
	if err != nil {
		t.Fatalf("new place: %v", err)
	}
	if err := b.Apply(place); !errors.Is(err, ErrCellOccupied) {
		t.Fatalf("expected ErrCellOccupied, got %v", err)
	}
}

func TestMoveCapstoneFlattensWall(t *testing.T) {
	b := newTestBoard(t, 5)
	mustPlace(t, b, 0, 0, shared.White, shared.Flat)
	f, err := b.Field(0, 0)
	if err != nil {
		t.Fatalf("field: %v", err)
	}
	if err := f.AddStone(Piece{Color: shared.White, Kind: shared.Wall}); err != nil {
		t.Fatalf("seed wall: %v", err)
	}
	mustPlace(t, b, 1, 0, shared.Black, shared.Cap)

	// Carry the capstone one cell left onto the wall.
	mustMove(t, b, 1, 0, []int{1}, shared.DirLeft)

	target, err := b.Field(0, 0)
	if err != nil {
		t.Fatalf("field: %v", err)
	}
	if target.Height() != 3 {
		t.Fatalf("expected height 3, got %d", target.Height())
	}
	stones := target.Stones()
	if stones[1].Kind != shared.Flat {
		t.Fatalf("wall should be flat now, got %s", stones[1].Kind)
	}
	top := stones[2]
	if top.Color != shared.Black || !top.IsCapstone() {
		t.Fatalf("expected black capstone on top, got %s", top)
	}
	origin, err := b.Field(1, 0)
	if err != nil {
		t.Fatalf("field: %v", err)
	}
	if !origin.Empty() {
		t.Fatalf("origin should be empty after moving its only stone")
	}
}

func TestMoveSplitsStackInOrder(t *testing.T) {
	b := newTestBoard(t, 4)
	f, err := b.Field(0, 0)
	if err != nil {
		t.Fatalf("field: %v", err)
	}
	// Bottom to top: white, white, black, black.
	stack := []Piece{
		{Color: shared.White, Kind: shared.Flat},
		{Color: shared.White, Kind: shared.Flat},
		{Color: shared.Black, Kind: shared.Flat},
		{Color: shared.Black, Kind: shared.Flat},
	}
	if err := f.AddStack(stack); err != nil {
		t.Fatalf("seed stack: %v", err)
	}

	before := totalStones(t, b)
	mustMove(t, b, 0, 0, []int{2, 2}, shared.DirRight)

	origin, _ := b.Field(0, 0)
	if !origin.Empty() {
		t.Fatalf("origin should be empty, height %d", origin.Height())
	}
	first, _ := b.Field(1, 0)
	if first.Height() != 2 {
		t.Fatalf("(1,0) should hold 2 stones, got %d", first.Height())
	}
	for _, p := range first.Stones() {
		if p.Color != shared.White {
			t.Fatalf("(1,0) should hold the bottom white stones, got %v", first.Stones())
		}
	}
	second, _ := b.Field(2, 0)
	if second.Height() != 2 {
		t.Fatalf("(2,0) should hold 2 stones, got %d", second.Height())
	}
	for _, p := range second.Stones() {
		if p.Color != shared.Black {
			t.Fatalf("(2,0) should hold the top black stones, got %v", second.Stones())
		}
	}
	if after := totalStones(t, b); after != before {
		t.Fatalf("stone count changed: %d -> %d", before, after)
	}
}

func TestMoveZeroDropWaypoint(t *testing.T) {
	b := newTestBoard(t, 5)
	f, _ := b.Field(0, 0)
	if err := f.AddStack([]Piece{
		{Color: shared.White, Kind: shared.Flat},
		{Color: shared.White, Kind: shared.Flat},
	}); err != nil {
		t.Fatalf("seed: %v", err)
	}

	// Pass through (1,0) without dropping anything.
	mustMove(t, b, 0, 0, []int{0, 2}, shared.DirRight)

	skipped, _ := b.Field(1, 0)
	if !skipped.Empty() {
		t.Fatalf("waypoint cell should stay empty, height %d", skipped.Height())
	}
	dest, _ := b.Field(2, 0)
	if dest.Height() != 2 {
		t.Fatalf("destination should hold 2 stones, got %d", dest.Height())
	}
}

func TestMoveCarryLimitBoundary(t *testing.T) {
	b := newTestBoard(t, 4)
	f, _ := b.Field(0, 0)
	stones := make([]Piece, 5)
	for i := range stones {
		stones[i] = Piece{Color: shared.White, Kind: shared.Flat}
	}
	if err := f.AddStack(stones); err != nil {
		t.Fatalf("seed: %v", err)
	}

	// height == size is legal.
	mustMove(t, b, 0, 0, []int{4}, shared.DirRight)

	// height == size+1 is not, and fails before any mutation.
	tall, _ := b.Field(1, 0)
	if err := tall.AddStone(Piece{Color: shared.White, Kind: shared.Flat}); err != nil {
		t.Fatalf("grow stack: %v", err)
	}
	before := tall.Height()
	move, err := NewMove(1, 0, []int{5}, shared.DirRight)
	if err != nil {
		t.Fatalf("new move: %v", err)
	}
	if err := b.Apply(move); !errors.Is(err, ErrCarryLimitExceeded) {
		t.Fatalf("expected ErrCarryLimitExceeded, got %v", err)
	}
	if tall.Height() != before {
		t.Fatalf("failed move mutated the origin: %d -> %d", before, tall.Height())
	}
}

func TestMoveFromShortStack(t *testing.T) {
	b := newTestBoard(t, 5)
	mustPlace(t, b, 2, 2, shared.White, shared.Flat)
	move, err := NewMove(2, 2, []int{2}, shared.DirUp)
	if err != nil {
		t.Fatalf("new move: %v", err)
	}
	if err := b.Apply(move); !errors.Is(err, ErrInsufficientHeight) {
		t.Fatalf("expected ErrInsufficientHeight, got %v", err)
	}
}

func TestMoveOffTheBoardFailsWithoutMutation(t *testing.T) {
	b := newTestBoard(t, 3)
	f, _ := b.Field(2, 0)
	if err := f.AddStack([]Piece{
		{Color: shared.White, Kind: shared.Flat},
		{Color: shared.White, Kind: shared.Flat},
	}); err != nil {
		t.Fatalf("seed: %v", err)
	}

	move, err := NewMove(2, 0, []int{1, 1}, shared.DirRight)
	if err != nil {
		t.Fatalf("new move: %v", err)
	}
	if err := b.Apply(move); !errors.Is(err, ErrOutOfBounds) {
		t.Fatalf("expected ErrOutOfBounds, got %v", err)
	}
	if f.Height() != 2 {
		t.Fatalf("failed move mutated the origin, height %d", f.Height())
	}
}

func TestMoveBlockedMidPathLeavesBoardUntouched(t *testing.T) {
	b := newTestBoard(t, 5)
	origin, _ := b.Field(0, 0)
	if err := origin.AddStack([]Piece{
		{Color: shared.White, Kind: shared.Flat},
		{Color: shared.White, Kind: shared.Flat},
		{Color: shared.White, Kind: shared.Flat},
	}); err != nil {
		t.Fatalf("seed origin: %v", err)
	}
	mustPlace(t, b, 1, 0, shared.Black, shared.Flat)
	mustPlace(t, b, 2, 0, shared.Black, shared.Wall)

	before := totalStones(t, b)
	firstHeight := 1

	// The second drop lands on a wall with no capstone leading; the
	// whole move must be rejected with nothing applied.
	move, err := NewMove(0, 0, []int{1, 2}, shared.DirRight)
	if err != nil {
		t.Fatalf("new move: %v", err)
	}
	if err := b.Apply(move); !errors.Is(err, ErrIllegalStack) {
		t.Fatalf("expected ErrIllegalStack, got %v", err)
	}

	if origin.Height() != 3 {
		t.Fatalf("origin mutated by failed move, height %d", origin.Height())
	}
	first, _ := b.Field(1, 0)
	if first.Height() != firstHeight {
		t.Fatalf("intermediate cell mutated by failed move, height %d", first.Height())
	}
	if after := totalStones(t, b); after != before {
		t.Fatalf("stone count changed: %d -> %d", before, after)
	}
}

func TestFull(t *testing.T) {
	b := newTestBoard(t, 3)
	if b.Full() {
		t.Fatalf("empty board reported full")
	}
	color := shared.White
	for y := 0; y < 3; y++ {
		for x := 0; x < 3; x++ {
			mustPlace(t, b, x, y, color, shared.Flat)
			color = color.Opposite()
		}
	}
	if !b.Full() {
		t.Fatalf("covered board not reported full")
	}
}

func TestActionConstructorValidation(t *testing.T) {
	if _, err := NewPlace(-1, 0, shared.White, shared.Flat); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument for negative x, got %v", err)
	}
	if _, err := NewMove(0, -1, []int{1}, shared.DirUp); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument for negative y, got %v", err)
	}
	if _, err := NewMove(0, 0, []int{1, -1}, shared.DirUp); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument for negative drop, got %v", err)
	}
	if _, err := NewMove(0, 0, nil, shared.DirUp); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument for empty drops, got %v", err)
	}
	if _, err := NewMove(0, 0, []int{0}, shared.DirUp); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument for zero-sum drops, got %v", err)
	}
	if _, err := NewMove(0, 0, []int{0, 0, 0}, shared.DirUp); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument for zero-sum drops, got %v", err)
	}
	if _, err := NewMove(0, 0, []int{1}, shared.Direction(9)); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument for bad direction, got %v", err)
	}
}

type fakeAction struct{}

func (fakeAction) isAction() {}

func TestApplyRejectsUnknownActionKind(t *testing.T) {
	b := newTestBoard(t, 5)
	if err := b.Apply(fakeAction{}); !errors.Is(err, ErrUnsupportedAction) {
		t.Fatalf("expected ErrUnsupportedAction, got %v", err)
	}
}
