// path: internal/game/action.go
package game

import (
	"fmt"

	"taklite_poc/internal/shared"
)

// Action is a closed union of the two board mutations. Board.Apply
// switches exhaustively over the variants; a new action kind must be
// handled there or it is rejected.
type Action interface {
	isAction()
}

// Place puts one newly created stone on an empty cell.
type Place struct {
	X     int
	Y     int
	Piece Piece
}

func (Place) isAction() {}

// NewPlace validates coordinates and enumerators up front; a Place is
// immutable once constructed.
func NewPlace(x, y int, color shared.Color, kind shared.StoneKind) (Place, error) {
	if x < 0 || y < 0 {
		return Place{}, fmt.Errorf("%w: negative coordinate (%d,%d)", ErrInvalidArgument, x, y)
	}
	piece, err := NewPiece(color, kind)
	if err != nil {
		return Place{}, err
	}
	return Place{X: x, Y: y, Piece: piece}, nil
}

// Move picks up a contiguous top slice of the stack at (X,Y) and drops
// it along a straight line. Drops holds, in travel order, how many
// stones land on each successive cell starting one step beyond the
// origin. A zero entry is a legal no-drop waypoint, but the counts
// must lift at least one stone in total.
type Move struct {
	X     int
	Y     int
	Drops []int
	Dir   shared.Direction
}

func (Move) isAction() {}

func NewMove(x, y int, drops []int, dir shared.Direction) (Move, error) {
	if x < 0 || y < 0 {
		return Move{}, fmt.Errorf("%w: negative coordinate (%d,%d)", ErrInvalidArgument, x, y)
	}
	if !dir.Valid() {
		return Move{}, fmt.Errorf("%w: direction %d", ErrInvalidArgument, dir)
	}
	if len(drops) == 0 {
		return Move{}, fmt.Errorf("%w: empty drop sequence", ErrInvalidArgument)
	}
	total := 0
	for _, n := range drops {
		if n < 0 {
			return Move{}, fmt.Errorf("%w: negative drop count %d", ErrInvalidArgument, n)
		}
		total += n
	}
	if total == 0 {
		return Move{}, fmt.Errorf("%w: drop counts sum to zero", ErrInvalidArgument)
	}
	owned := make([]int, len(drops))
	copy(owned, drops)
	return Move{X: x, Y: y, Drops: owned, Dir: dir}, nil
}

// Height is the number of stones lifted off the origin cell, by
// definition the sum of the drop counts.
func (m Move) Height() int {
	total := 0
	for _, n := range m.Drops {
		total += n
	}
	return total
}
