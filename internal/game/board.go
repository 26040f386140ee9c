// path: internal/game/board.go
package game

import (
	"fmt"

	"taklite_poc/internal/shared"
)

// Board is a fixed size x size grid of fields. It owns every field and
// is the only mutator of their stacks. A board must be confined to one
// logical game; Apply assumes exclusive access for its whole duration.
type Board struct {
	size   int
	fields []Field
}

func NewBoard(size int) (*Board, error) {
	if size < 1 {
		return nil, fmt.Errorf("%w: board size %d", ErrInvalidArgument, size)
	}
	return &Board{
		size:   size,
		fields: make([]Field, size*size),
	}, nil
}

func (b *Board) Size() int { return b.size }

// Field returns the cell at (x,y). Out-of-range coordinates fail
// loudly; nothing is ever clamped.
func (b *Board) Field(x, y int) (*Field, error) {
	if x < 0 || x >= b.size || y < 0 || y >= b.size {
		return nil, fmt.Errorf("%w: (%d,%d) on %dx%d board", ErrOutOfBounds, x, y, b.size, b.size)
	}
	return &b.fields[y*b.size+x], nil
}

// Full reports whether every cell holds at least one stone.
func (b *Board) Full() bool {
	for i := range b.fields {
		if b.fields[i].Empty() {
			return false
		}
	}
	return true
}

// Apply executes one action against the board. A rejected action
// leaves the board untouched: moves are evaluated on scratch copies of
// the cells they visit and committed only when every drop is legal.
func (b *Board) Apply(action Action) error {
	switch a := action.(type) {
	case Place:
		return b.applyPlace(a)
	case Move:
		return b.applyMove(a)
	default:
		return fmt.Errorf("%w: %T", ErrUnsupportedAction, action)
	}
}

func (b *Board) applyPlace(a Place) error {
	field, err := b.Field(a.X, a.Y)
	if err != nil {
		return err
	}
	if !field.Empty() {
		return fmt.Errorf("%w: %s", ErrCellOccupied, shared.SquareName(a.X, a.Y))
	}
	return field.AddStone(a.Piece)
}

// applyMove walks a straight line from the origin, dropping the front
// of the carried slice at each step. The carry limit equals the board
// size.
func (b *Board) applyMove(a Move) error {
	height := a.Height()
	if height > b.size {
		return fmt.Errorf("%w: carrying %d on a size %d board", ErrCarryLimitExceeded, height, b.size)
	}

	origin, err := b.Field(a.X, a.Y)
	if err != nil {
		return err
	}

	// One scratch cell per visited coordinate. The walk is a straight
	// line, so no cell repeats.
	type visit struct {
		target  *Field
		scratch Field
	}
	path := make([]visit, 0, len(a.Drops)+1)
	path = append(path, visit{target: origin, scratch: origin.clone()})

	dx, dy := a.Dir.Vector()
	x, y := a.X, a.Y
	for range a.Drops {
		x += dx
		y += dy
		field, err := b.Field(x, y)
		if err != nil {
			return err
		}
		path = append(path, visit{target: field, scratch: field.clone()})
	}

	carried, err := path[0].scratch.TakeStones(height)
	if err != nil {
		return err
	}
	for i, n := range a.Drops {
		if n == 0 {
			continue
		}
		if n > len(carried) {
			// Unreachable when Height derives from Drops; kept so a
			// broken caller fails instead of losing stones.
			return ErrMoveListMismatch
		}
		if err := path[i+1].scratch.AddStack(carried[:n]); err != nil {
			return err
		}
		carried = carried[n:]
	}
	if len(carried) != 0 {
		return ErrMoveListMismatch
	}

	for i := range path {
		*path[i].target = path[i].scratch
	}
	return nil
}
