// path: internal/game/errors.go
package game

import "errors"

var (
	ErrInvalidArgument    = errors.New("invalid argument")
	ErrInvalidConfig      = errors.New("invalid configuration")
	ErrOutOfBounds        = errors.New("coordinate out of bounds")
	ErrEmptyStack         = errors.New("stack is empty")
	ErrCellOccupied       = errors.New("cell is occupied")
	ErrIllegalStack       = errors.New("can only play onto flat stones")
	ErrIllegalFlatten     = errors.New("capstones cannot be flattened")
	ErrInsufficientHeight = errors.New("not enough stones in stack")
	ErrCarryLimitExceeded = errors.New("carry limit exceeded")
	ErrMoveListMismatch   = errors.New("drop counts do not match carried height")
	ErrUnsupportedAction  = errors.New("unsupported action")
	ErrSupplyExhausted    = errors.New("no stones of that kind left")
	ErrOutOfTurn          = errors.New("not this player's turn")
)
