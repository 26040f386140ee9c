// path: internal/game/field.go
package game

import (
	"fmt"

	"taklite_poc/internal/shared"
)

// Field is the stack of stones held by one board cell, ordered bottom
// to top. Every stone below the top is flat; walls and capstones only
// ever sit on top. That invariant is not stored anywhere, it follows
// from AddStack refusing anything else.
type Field struct {
	stones []Piece
}

func (f *Field) Empty() bool { return len(f.stones) == 0 }

func (f *Field) Height() int { return len(f.stones) }

// Top returns the topmost stone.
func (f *Field) Top() (Piece, error) {
	if len(f.stones) == 0 {
		return Piece{}, ErrEmptyStack
	}
	return f.stones[len(f.stones)-1], nil
}

// ControlledBy reports the color of the top stone. An empty field is
// controlled by nobody and the lookup fails.
func (f *Field) ControlledBy() (shared.Color, error) {
	top, err := f.Top()
	if err != nil {
		return 0, err
	}
	return top.Color, nil
}

// Stones returns a copy of the stack, bottom to top. The field keeps
// exclusive ownership of its own slice.
func (f *Field) Stones() []Piece {
	out := make([]Piece, len(f.stones))
	copy(out, f.stones)
	return out
}

func (f *Field) AddStone(p Piece) error {
	return f.AddStack([]Piece{p})
}

// AddStack appends the given stones on top of the field, preserving
// their order. If the field's top is a wall and the incoming bottom
// stone is a capstone, the wall is flattened first. Anything else that
// is not a flat top rejects the addition.
func (f *Field) AddStack(stones []Piece) error {
	if len(stones) == 0 {
		return fmt.Errorf("%w: empty stack addition", ErrInvalidArgument)
	}
	if !f.Empty() {
		top := &f.stones[len(f.stones)-1]
		if stones[0].IsCapstone() && top.Kind == shared.Wall {
			if err := top.Flatten(); err != nil {
				return err
			}
		}
		if top.Kind != shared.Flat {
			return ErrIllegalStack
		}
	}
	f.stones = append(f.stones, stones...)
	return nil
}

// TakeStones removes the top count stones and returns them, still
// ordered bottom to top. Ownership transfers to the caller; the
// returned slice never aliases the field's storage.
func (f *Field) TakeStones(count int) ([]Piece, error) {
	if count < 0 {
		return nil, fmt.Errorf("%w: negative count %d", ErrInvalidArgument, count)
	}
	if len(f.stones) < count {
		return nil, fmt.Errorf("%w: want %d, have %d", ErrInsufficientHeight, count, len(f.stones))
	}
	cut := len(f.stones) - count
	taken := make([]Piece, count)
	copy(taken, f.stones[cut:])
	f.stones = f.stones[:cut]
	return taken, nil
}

// clone deep-copies the field for scratch evaluation of a move.
func (f *Field) clone() Field {
	c := Field{stones: make([]Piece, len(f.stones))}
	copy(c.stones, f.stones)
	return c
}
