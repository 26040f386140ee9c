// path: internal/game/engine.go
package game

import (
	"fmt"

	"taklite_poc/internal/shared"
)

// Engine owns one board plus the turn bookkeeping around it: whose
// move it is, how many stones each player still holds, and a note
// describing the last action. The engine is not synchronized; callers
// serving multiple clients must wrap it (httpx holds one mutex per
// engine).
type Engine struct {
	board    *Board
	starting shared.Color
	turn     shared.Color
	supplies [2]shared.PieceSupply
	moveNum  int
	lastNote string
}

// StoneState is a serializable representation of one stone.
type StoneState struct {
	Color     shared.Color     `json:"color"`
	ColorName string           `json:"colorName"`
	Kind      shared.StoneKind `json:"kind"`
	KindName  string           `json:"kindName"`
}

// CellState is a serializable representation of one cell's stack,
// bottom to top.
type CellState struct {
	X      int          `json:"x"`
	Y      int          `json:"y"`
	Square string       `json:"square"`
	Stones []StoneState `json:"stones,omitempty"`
}

// BoardState is a serializable snapshot of the whole game.
type BoardState struct {
	Size     int                           `json:"size"`
	Cells    []CellState                   `json:"cells"`
	Turn     shared.Color                  `json:"turn"`
	TurnName string                        `json:"turnName"`
	MoveNum  int                           `json:"moveNum"`
	Supplies map[string]shared.PieceSupply `json:"supplies"`
	Full     bool                          `json:"full"`
	LastNote string                        `json:"lastNote"`
}

// NewEngine sets up a fresh game. The size must be one the rules table
// covers; the starting color takes the first move.
func NewEngine(size int, starting shared.Color) (*Engine, error) {
	if _, ok := shared.Supply(size); !ok {
		return nil, fmt.Errorf("%w: no rules for board size %d (supported: %v)",
			ErrInvalidConfig, size, shared.BoardSizes())
	}
	if !starting.Valid() {
		return nil, fmt.Errorf("%w: starting color %d", ErrInvalidConfig, starting)
	}
	e := &Engine{starting: starting}
	board, err := NewBoard(size)
	if err != nil {
		return nil, err
	}
	e.board = board
	e.reset()
	return e, nil
}

// Reset restores the initial empty position and full supplies, keeping
// board size and starting color.
func (e *Engine) Reset() error {
	board, err := NewBoard(e.board.size)
	if err != nil {
		return err
	}
	e.board = board
	e.reset()
	return nil
}

func (e *Engine) reset() {
	supply, _ := shared.Supply(e.board.size)
	e.supplies = [2]shared.PieceSupply{supply, supply}
	e.turn = e.starting
	e.moveNum = 0
	e.lastNote = "New game"
}

func (e *Engine) Turn() shared.Color { return e.turn }

func (e *Engine) Size() int { return e.board.size }

// SupplyFor reports the stones a player still holds.
func (e *Engine) SupplyFor(color shared.Color) shared.PieceSupply {
	return e.supplies[color.Index()]
}

// Play validates an action against the turn state, applies it to the
// board, and advances the turn. A failed play changes nothing.
func (e *Engine) Play(action Action) error {
	switch a := action.(type) {
	case Place:
		if err := e.playPlace(a); err != nil {
			return err
		}
	case Move:
		if err := e.playMove(a); err != nil {
			return err
		}
	default:
		return fmt.Errorf("%w: %T", ErrUnsupportedAction, action)
	}

	e.moveNum++
	if !e.gameOver() {
		e.turn = e.turn.Opposite()
	}
	return nil
}

func (e *Engine) playPlace(a Place) error {
	if a.Piece.Color != e.turn {
		return fmt.Errorf("%w: %s to move", ErrOutOfTurn, e.turn)
	}
	supply := &e.supplies[e.turn.Index()]
	if supply.ForKind(a.Piece.Kind) <= 0 {
		return fmt.Errorf("%w: %s has no %s stones", ErrSupplyExhausted, e.turn, a.Piece.Kind)
	}
	if err := e.board.Apply(a); err != nil {
		return err
	}
	if a.Piece.Kind == shared.Cap {
		supply.Capstones--
	} else {
		supply.Flatstones--
	}
	e.lastNote = fmt.Sprintf("%s placed a %s on %s", e.turn, a.Piece.Kind, shared.SquareName(a.X, a.Y))
	return nil
}

func (e *Engine) playMove(a Move) error {
	if a.Height() == 0 {
		return fmt.Errorf("%w: move lifts no stones", ErrInvalidArgument)
	}
	origin, err := e.board.Field(a.X, a.Y)
	if err != nil {
		return err
	}
	if !origin.Empty() {
		controller, err := origin.ControlledBy()
		if err != nil {
			return err
		}
		if controller != e.turn {
			return fmt.Errorf("%w: %s does not control %s", ErrOutOfTurn, e.turn, shared.SquareName(a.X, a.Y))
		}
	}
	if err := e.board.Apply(a); err != nil {
		return err
	}
	e.lastNote = fmt.Sprintf("%s moved %d from %s %s", e.turn, a.Height(), shared.SquareName(a.X, a.Y), a.Dir)
	return nil
}

// gameOver is the termination hook the turn loop queries after every
// action. Road and flat-win evaluation live outside this core; until a
// detector is plugged in the game never ends on its own.
func (e *Engine) gameOver() bool {
	return false
}

// State snapshots the game for serialization. Cells appear row-major,
// (0,0) first.
func (e *Engine) State() BoardState {
	state := BoardState{
		Size:     e.board.size,
		Cells:    make([]CellState, 0, e.board.size*e.board.size),
		Turn:     e.turn,
		TurnName: e.turn.String(),
		MoveNum:  e.moveNum,
		Supplies: make(map[string]shared.PieceSupply, 2),
		Full:     e.board.Full(),
		LastNote: e.lastNote,
	}
	for y := 0; y < e.board.size; y++ {
		for x := 0; x < e.board.size; x++ {
			field, _ := e.board.Field(x, y)
			cell := CellState{X: x, Y: y, Square: shared.SquareName(x, y)}
			for _, p := range field.Stones() {
				cell.Stones = append(cell.Stones, StoneState{
					Color:     p.Color,
					ColorName: p.Color.String(),
					Kind:      p.Kind,
					KindName:  p.Kind.String(),
				})
			}
			state.Cells = append(state.Cells, cell)
		}
	}
	for _, color := range []shared.Color{shared.White, shared.Black} {
		state.Supplies[color.String()] = e.supplies[color.Index()]
	}
	return state
}
