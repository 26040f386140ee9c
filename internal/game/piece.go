// path: internal/game/piece.go
// Package game implements the board and stack mutation core of a
// Tak-style stacking game, plus the turn engine that drives it.
package game

import (
	"fmt"

	"taklite_poc/internal/shared"
)

// Piece is a single stone. A piece belongs to exactly one Field at a
// time; moving pieces between fields transfers them, never shares them.
type Piece struct {
	Color shared.Color     `json:"color"`
	Kind  shared.StoneKind `json:"kind"`
}

// NewPiece validates the enumerators before constructing a stone.
func NewPiece(color shared.Color, kind shared.StoneKind) (Piece, error) {
	if !color.Valid() {
		return Piece{}, fmt.Errorf("%w: color %d", ErrInvalidArgument, color)
	}
	if !kind.Valid() {
		return Piece{}, fmt.Errorf("%w: stone kind %d", ErrInvalidArgument, kind)
	}
	return Piece{Color: color, Kind: kind}, nil
}

// Flatten turns a wall into a flat stone. Flattening a capstone is a
// caller bug, not a game state; it fails instead of silently passing.
// Flattening a flat stone is a no-op.
func (p *Piece) Flatten() error {
	if p.Kind == shared.Cap {
		return ErrIllegalFlatten
	}
	p.Kind = shared.Flat
	return nil
}

func (p Piece) IsCapstone() bool { return p.Kind == shared.Cap }

func (p Piece) String() string {
	return fmt.Sprintf("%s %s", p.Color, p.Kind)
}
