// Package ui specifies custom tview controls for playing on a board in
// the terminal.
package ui

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"taklite_poc/internal/config"
	"taklite_poc/internal/game"
	"taklite_poc/internal/shared"
)

// carryState tracks a move being composed: the origin cell, how many
// stones to lift, the travel direction once chosen, and the drop
// counts entered so far.
type carryState struct {
	x, y   int
	count  int
	dir    shared.Direction
	hasDir bool
	drops  []int
}

func (c *carryState) dropped() int {
	total := 0
	for _, n := range c.drops {
		total += n
	}
	return total
}

// TakBoardUI renders one engine's board and lets two players take
// turns at the same keyboard.
type TakBoardUI struct {
	Box     *tview.Box
	hint    *tview.TextView
	cfg     *config.Config
	eng     *game.Engine
	state   game.BoardState
	selX    int
	selY    int
	carry   *carryState
	lastErr string
	styles  []tcell.Color
}

func NewTakBoard(c *config.Config, hint *tview.TextView) *TakBoardUI {
	board := &TakBoardUI{
		Box:  tview.NewBox(),
		hint: hint,
		selX: 0,
		selY: 0,
	}
	board.SetConfig(c)
	board.Box.SetDrawFunc(func(screen tcell.Screen, x int, y int, width int, height int) (int, int, int, int) {
		size := board.state.Size
		if size == 0 {
			return x, y, 1, 1
		}
		for boardY := 0; boardY < size; boardY++ {
			for boardX := 0; boardX < size; boardX++ {
				cell := board.state.Cells[boardY*size+boardX]
				drawRune := board.cfg.Theme.Symbols.Empty
				fg := board.styles[styleBoard]
				if (boardX+boardY)%2 == 1 {
					fg = board.styles[styleBoardAlt]
				}
				if n := len(cell.Stones); n > 0 {
					top := cell.Stones[n-1]
					drawRune = board.stoneRune(top.Kind)
					if top.Color == shared.White {
						fg = board.styles[styleWhite]
					} else {
						fg = board.styles[styleBlack]
					}
				}

				bg := tcell.ColorDefault
				if boardX == board.selX && boardY == board.selY && board.cfg.Theme.DrawCursorBackground {
					bg = board.styles[styleCursorBG]
				} else if board.carry != nil && boardX == board.carry.x && boardY == board.carry.y {
					bg = board.styles[styleCarryBG]
				}

				// Rank 1 is drawn at the bottom, like a physical board.
				screenX := x + 4 + boardX*3
				screenY := y + 1 + (size - 1 - boardY)
				style := tcell.StyleDefault.Foreground(fg).Background(bg)
				screen.SetContent(screenX, screenY, drawRune, nil, style)

				heightRune := ' '
				if board.cfg.Theme.ShowStackHeights && len(cell.Stones) > 1 {
					heightRune = heightGlyph(len(cell.Stones))
				}
				heightStyle := tcell.StyleDefault.Foreground(board.styles[styleHeight]).Background(bg)
				screen.SetContent(screenX+1, screenY, heightRune, nil, heightStyle)
			}
		}
		board.drawCoordinates(screen, x, y, size)
		return x, y, size*3 + 5, size + 3
	})
	return board
}

const (
	styleBoard = iota
	styleBoardAlt
	styleWhite
	styleBlack
	styleHeight
	styleCursorBG
	styleCarryBG
)

func (b *TakBoardUI) SetConfig(c *config.Config) {
	b.styles = []tcell.Color{
		tcell.PaletteColor(c.Theme.Colors.BoardColor),
		tcell.PaletteColor(c.Theme.Colors.BoardColorAlt),
		tcell.PaletteColor(c.Theme.Colors.WhiteColor),
		tcell.PaletteColor(c.Theme.Colors.BlackColor),
		tcell.PaletteColor(c.Theme.Colors.HeightColor),
		tcell.PaletteColor(c.Theme.Colors.CursorColorBG),
		tcell.PaletteColor(c.Theme.Colors.CarryColorBG),
	}
	b.cfg = c
}

func (b *TakBoardUI) stoneRune(kind shared.StoneKind) rune {
	switch kind {
	case shared.Wall:
		return b.cfg.Theme.Symbols.Wall
	case shared.Cap:
		return b.cfg.Theme.Symbols.Cap
	default:
		return b.cfg.Theme.Symbols.Flat
	}
}

func heightGlyph(h int) rune {
	if h > 9 {
		return '+'
	}
	return rune('0' + h)
}

func (b *TakBoardUI) drawCoordinates(screen tcell.Screen, x, y, size int) {
	coordStyle := tcell.StyleDefault.Foreground(b.styles[styleHeight])
	for file := 0; file < size; file++ {
		screen.SetContent(x+4+file*3, y+1+size, rune('a'+file), nil, coordStyle)
	}
	for rank := 0; rank < size; rank++ {
		screenY := y + 1 + (size - 1 - rank)
		screen.SetContent(x+1, screenY, rune('1'+rank), nil, coordStyle)
	}
}

// ConnectEngine attaches a fresh engine and resets all selection
// state.
func (b *TakBoardUI) ConnectEngine(e *game.Engine) {
	b.eng = e
	b.carry = nil
	b.lastErr = ""
	center := e.Size() / 2
	b.selX, b.selY = center, center
	b.refresh()
}

func (b *TakBoardUI) refresh() {
	if b.eng == nil {
		return
	}
	b.state = b.eng.State()
	b.refreshHint()
}

// MoveSelection shifts the cursor, keeping it on the board.
func (b *TakBoardUI) MoveSelection(h, v int) {
	if b.eng == nil {
		return
	}
	size := b.eng.Size()
	if b.selX+h < 0 || b.selX+h >= size || b.selY+v < 0 || b.selY+v >= size {
		return
	}
	b.selX += h
	b.selY += v
	b.refreshHint()
}

// PlaceStone places a stone of the given kind at the cursor for the
// player to move.
func (b *TakBoardUI) PlaceStone(kind shared.StoneKind) {
	if b.eng == nil || b.carry != nil {
		return
	}
	place, err := game.NewPlace(b.selX, b.selY, b.eng.Turn(), kind)
	if err != nil {
		b.fail(err)
		return
	}
	if err := b.eng.Play(place); err != nil {
		b.fail(err)
		return
	}
	b.lastErr = ""
	b.refresh()
}

// StartCarry begins composing a move from the cursor cell, lifting the
// whole stack up to the carry limit.
func (b *TakBoardUI) StartCarry() {
	if b.eng == nil || b.carry != nil {
		return
	}
	cell := b.state.Cells[b.selY*b.state.Size+b.selX]
	if len(cell.Stones) == 0 {
		b.lastErr = "nothing to pick up"
		b.refreshHint()
		return
	}
	count := len(cell.Stones)
	if count > b.state.Size {
		count = b.state.Size
	}
	b.carry = &carryState{x: b.selX, y: b.selY, count: count}
	b.lastErr = ""
	b.refreshHint()
}

// AdjustCarry changes how many stones the pending move lifts.
func (b *TakBoardUI) AdjustCarry(delta int) {
	if b.carry == nil || b.carry.hasDir {
		return
	}
	cell := b.state.Cells[b.carry.y*b.state.Size+b.carry.x]
	next := b.carry.count + delta
	limit := len(cell.Stones)
	if limit > b.state.Size {
		limit = b.state.Size
	}
	if next < 1 || next > limit {
		return
	}
	b.carry.count = next
	b.refreshHint()
}

// SetDirection fixes the travel direction of the pending move.
func (b *TakBoardUI) SetDirection(dir shared.Direction) {
	if b.carry == nil || b.carry.hasDir {
		return
	}
	b.carry.dir = dir
	b.carry.hasDir = true
	b.refreshHint()
}

// AppendDrop adds the next drop count of the pending move.
func (b *TakBoardUI) AppendDrop(n int) {
	if b.carry == nil || !b.carry.hasDir {
		return
	}
	if b.carry.dropped()+n > b.carry.count {
		b.lastErr = fmt.Sprintf("only %d stones in hand", b.carry.count-b.carry.dropped())
		b.refreshHint()
		return
	}
	b.carry.drops = append(b.carry.drops, n)
	b.lastErr = ""
	b.refreshHint()
}

// SubmitMove plays the composed move once every lifted stone has a
// drop.
func (b *TakBoardUI) SubmitMove() {
	if b.carry == nil || !b.carry.hasDir {
		return
	}
	if b.carry.dropped() != b.carry.count {
		b.lastErr = fmt.Sprintf("%d stones still in hand", b.carry.count-b.carry.dropped())
		b.refreshHint()
		return
	}
	move, err := game.NewMove(b.carry.x, b.carry.y, b.carry.drops, b.carry.dir)
	if err != nil {
		b.fail(err)
		return
	}
	if err := b.eng.Play(move); err != nil {
		b.fail(err)
		return
	}
	b.carry = nil
	b.lastErr = ""
	b.refresh()
}

// CancelCarry abandons the pending move.
func (b *TakBoardUI) CancelCarry() {
	b.carry = nil
	b.lastErr = ""
	b.refreshHint()
}

// Carrying reports whether a move is being composed.
func (b *TakBoardUI) Carrying() bool { return b.carry != nil }

func (b *TakBoardUI) fail(err error) {
	b.lastErr = err.Error()
	b.refreshHint()
}

func (b *TakBoardUI) refreshHint() {
	if b.eng == nil {
		return
	}
	var sb strings.Builder

	turn := b.eng.Turn()
	supply := b.eng.SupplyFor(turn)
	fmt.Fprintf(&sb, "  %s to move · %d flats, %d caps left\n", turn, supply.Flatstones, supply.Capstones)
	fmt.Fprintf(&sb, "  cursor %s", shared.SquareName(b.selX, b.selY))
	if b.state.Full {
		sb.WriteString(" · board full")
	}
	sb.WriteString("\n")

	if b.carry != nil {
		if b.carry.hasDir {
			fmt.Fprintf(&sb, "\n  carrying %d from %s going %s, drops %v\n",
				b.carry.count, shared.SquareName(b.carry.x, b.carry.y), b.carry.dir, b.carry.drops)
			sb.WriteString("  1-9 drop count · 0 skip cell · ⏎ play · q cancel")
		} else {
			fmt.Fprintf(&sb, "\n  carrying %d from %s\n", b.carry.count, shared.SquareName(b.carry.x, b.carry.y))
			sb.WriteString("  +/- adjust · hjkl/↑↓←→ choose direction · q cancel")
		}
	} else {
		sb.WriteString("\n  f flat · w wall · c cap · ⏎ pick up stack\n")
		sb.WriteString("  hjkl/↑↓←→ move · q quit")
	}

	if b.lastErr != "" {
		fmt.Fprintf(&sb, "\n\n  ✗ %s", b.lastErr)
	} else if b.state.LastNote != "" {
		fmt.Fprintf(&sb, "\n\n  %s", b.state.LastNote)
	}

	b.hint.SetText(sb.String())
}
