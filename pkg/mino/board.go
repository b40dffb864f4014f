package mino

import (
	"strings"
)

const (
	DefaultWidth  = 10
	DefaultHeight = 20
)

// Board is the playfield. Row 0 is the top row, where pieces spawn.
type Board struct {
	W int // Width
	H int // Height

	M []PieceType // Cells, row-major
}

func I(x int, y int, w int) int {
	return (y * w) + x
}

func NewBoard(w int, h int) *Board {
	return &Board{W: w, H: h, M: make([]PieceType, w*h)}
}

func (b *Board) Width() int  { return b.W }
func (b *Board) Height() int { return b.H }

func (b *Board) inBounds(x int, y int) bool {
	return x >= 0 && x < b.W && y >= 0 && y < b.H
}

// Block returns the tag at x,y. Out of range cells read as empty.
func (b *Board) Block(x int, y int) PieceType {
	if !b.inBounds(x, y) {
		return PieceNone
	}
	return b.M[I(x, y, b.W)]
}

func (b *Board) Empty(x int, y int) bool {
	return b.Block(x, y) == PieceNone
}

// SetBlock fills a single empty cell. It refuses cells that are out of
// range or already occupied.
func (b *Board) SetBlock(x int, y int, t PieceType) bool {
	if !b.inBounds(x, y) || !b.Empty(x, y) {
		return false
	}

	b.M[I(x, y, b.W)] = t
	return true
}

// IsValid reports whether the piece fits. Cells above the top of the
// board are allowed.
func (b *Board) IsValid(p *Piece) bool {
	for _, c := range p.Cells() {
		if c.X < 0 || c.X >= b.W || c.Y >= b.H {
			return false
		}

		if c.Y >= 0 && b.M[I(c.X, c.Y, b.W)] != PieceNone {
			return false
		}
	}

	return true
}

// Place writes the piece into the grid without validating it. Cells
// outside the grid are dropped.
func (b *Board) Place(p *Piece) {
	for _, c := range p.Cells() {
		if b.inBounds(c.X, c.Y) {
			b.M[I(c.X, c.Y, b.W)] = p.Type
		}
	}
}

func (b *Board) RowFull(y int) bool {
	for x := 0; x < b.W; x++ {
		if b.Empty(x, y) {
			return false
		}
	}

	return true
}

// ClearFullRows removes every full row, shifting the rows above it down,
// and returns the number of rows removed.
func (b *Board) ClearFullRows() int {
	cleared := 0

	for y := b.H - 1; y >= 0; {
		if !b.RowFull(y) {
			y--
			continue
		}

		b.removeRow(y)
		cleared++
	}

	return cleared
}

// removeRow drops row y and inserts an empty row at the top.
func (b *Board) removeRow(y int) {
	copy(b.M[b.W:I(0, y+1, b.W)], b.M[:I(0, y, b.W)])

	for x := 0; x < b.W; x++ {
		b.M[x] = PieceNone
	}
}

// IsGameOver reports whether the spawn row holds any block.
func (b *Board) IsGameOver() bool {
	for x := 0; x < b.W; x++ {
		if !b.Empty(x, 0) {
			return true
		}
	}

	return false
}

func (b *Board) OccupiedCount() int {
	n := 0
	for i := range b.M {
		if b.M[i] != PieceNone {
			n++
		}
	}

	return n
}

func (b *Board) Reset() {
	for i := range b.M {
		b.M[i] = PieceNone
	}
}

// Rows returns a copy of the grid, indexed [y][x].
func (b *Board) Rows() [][]PieceType {
	rows := make([][]PieceType, b.H)
	for y := range rows {
		rows[y] = make([]PieceType, b.W)
		copy(rows[y], b.M[I(0, y, b.W):I(0, y+1, b.W)])
	}

	return rows
}

func (b *Board) String() string {
	var s strings.Builder

	for y := 0; y < b.H; y++ {
		for x := 0; x < b.W; x++ {
			s.WriteRune(b.Block(x, y).Rune())
		}

		if y < b.H-1 {
			s.WriteRune('\n')
		}
	}

	return s.String()
}
