package shared

import (
	"fmt"
	"strings"
)

type Color uint8

const (
	White Color = iota
	Black
)

func (c Color) Valid() bool { return c == White || c == Black }

func (c Color) Index() int { return int(c) }

func (c Color) Opposite() Color {
	if c == White {
		return Black
	}
	return White
}

func (c Color) String() string {
	if c == White {
		return "white"
	}
	return "black"
}

func ParseColor(s string) (Color, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "white", "w":
		return White, true
	case "black", "b":
		return Black, true
	default:
		return 0, false
	}
}

// StoneKind distinguishes the three stone shapes. Flats can be stacked
// upon, walls block stacking until a capstone flattens them, and
// capstones can neither be flattened nor covered.
type StoneKind uint8

const (
	Flat StoneKind = iota
	Wall
	Cap
)

func (k StoneKind) Valid() bool { return k == Flat || k == Wall || k == Cap }

func (k StoneKind) String() string {
	switch k {
	case Flat:
		return "flat"
	case Wall:
		return "wall"
	case Cap:
		return "cap"
	default:
		return fmt.Sprintf("stone(%d)", k)
	}
}

func ParseStoneKind(s string) (StoneKind, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "flat", "f":
		return Flat, true
	case "wall", "standing", "s":
		return Wall, true
	case "cap", "capstone", "c":
		return Cap, true
	default:
		return 0, false
	}
}

// Direction is one of the four axis-aligned travel directions of a
// stack move. Diagonal movement does not exist in this game.
type Direction uint8

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

func (d Direction) Valid() bool {
	return d == DirUp || d == DirDown || d == DirLeft || d == DirRight
}

// Vector returns the unit step the direction applies per cell. Up
// increases y, right increases x.
func (d Direction) Vector() (dx, dy int) {
	switch d {
	case DirUp:
		return 0, 1
	case DirDown:
		return 0, -1
	case DirLeft:
		return -1, 0
	case DirRight:
		return 1, 0
	default:
		return 0, 0
	}
}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "?"
	}
}

func ParseDirection(s string) (Direction, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "up", "u", "+":
		return DirUp, true
	case "down", "d", "-":
		return DirDown, true
	case "left", "l", "<":
		return DirLeft, true
	case "right", "r", ">":
		return DirRight, true
	default:
		return 0, false
	}
}

// SquareName renders zero-based board coordinates in algebraic form,
// file letter first: (0,0) is "a1".
func SquareName(x, y int) string {
	return fmt.Sprintf("%c%d", byte('a'+x), y+1)
}

// ParseSquare converts an algebraic coordinate back to zero-based x, y
// for a board of the given size.
func ParseSquare(coord string, size int) (x, y int, ok bool) {
	trimmed := strings.ToLower(strings.TrimSpace(coord))
	if len(trimmed) < 2 {
		return 0, 0, false
	}
	file := trimmed[0]
	if file < 'a' || int(file-'a') >= size {
		return 0, 0, false
	}
	rank := 0
	for _, r := range trimmed[1:] {
		if r < '0' || r > '9' {
			return 0, 0, false
		}
		rank = rank*10 + int(r-'0')
	}
	if rank < 1 || rank > size {
		return 0, 0, false
	}
	return int(file - 'a'), rank - 1, true
}
