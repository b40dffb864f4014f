package mino

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func NewTestBoard() *Board {
	return NewBoard(DefaultWidth, DefaultHeight)
}

// AddTestBlocks fills the bottom three rows except for the last column and
// leaves a gap in the middle row.
func AddTestBlocks(b *Board) {
	for y := b.H - 3; y < b.H; y++ {
		for x := 0; x < b.W-1; x++ {
			if y == b.H-2 && x == 4 {
				continue
			}

			b.M[I(x, y, b.W)] = PieceJ
		}
	}
}

func TestBoardIsValid(t *testing.T) {
	b := NewTestBoard()

	p := NewPiece(PieceO)
	assert.True(t, b.IsValid(p))

	p.Y = -1
	assert.True(t, b.IsValid(p), "cells above the board are allowed")

	p.Y = b.H - 1
	assert.False(t, b.IsValid(p), "cells below the floor are rejected")

	p.Y = 0
	p.X = -1
	assert.False(t, b.IsValid(p))

	p.X = b.W - 1
	assert.False(t, b.IsValid(p))

	i := NewPiece(PieceI)
	i.X = b.W - 4
	assert.True(t, b.IsValid(i))
	i.X++
	assert.False(t, b.IsValid(i))

	require.True(t, b.SetBlock(5, 1, PieceZ))
	assert.False(t, b.IsValid(NewPiece(PieceO)), "overlap with an occupied cell")
}

func TestBoardIsValidDoesNotMutate(t *testing.T) {
	b := NewTestBoard()
	AddTestBlocks(b)

	before := b.Rows()

	for _, pt := range AllPieces {
		p := NewPiece(pt)
		for y := -2; y < b.H+1; y++ {
			p.Y = y
			snapshot := *p

			b.IsValid(p)

			assert.Equal(t, snapshot, *p)
		}
	}

	assert.Equal(t, before, b.Rows())
}

func TestBoardPlace(t *testing.T) {
	b := NewTestBoard()

	p := NewPiece(PieceT)
	p.Y = b.H - 2
	require.True(t, b.IsValid(p))

	b.Place(p)
	assert.Equal(t, 4, b.OccupiedCount())
	for _, c := range p.Cells() {
		assert.Equal(t, PieceT, b.Block(c.X, c.Y))
	}

	assert.False(t, b.IsValid(p))

	partial := NewPiece(PieceI)
	partial.RotateCW()
	partial.Y = -2
	b.Place(partial)
	assert.Equal(t, 6, b.OccupiedCount(), "cells above the board are dropped")
}

func TestBoardClearFullRows(t *testing.T) {
	b := NewTestBoard()
	AddTestBlocks(b)

	assert.Equal(t, 0, b.ClearFullRows())

	// Complete the two rows without a gap.
	require.True(t, b.SetBlock(b.W-1, b.H-1, PieceI))
	require.True(t, b.SetBlock(b.W-1, b.H-2, PieceI))
	require.True(t, b.SetBlock(b.W-1, b.H-3, PieceI))

	before := b.OccupiedCount()
	cleared := b.ClearFullRows()
	assert.Equal(t, 2, cleared)
	assert.Equal(t, before-2*b.W, b.OccupiedCount())
	assert.Equal(t, b.H, len(b.Rows()))

	// The row with the gap moved to the floor.
	assert.True(t, b.Empty(4, b.H-1))
	assert.Equal(t, PieceJ, b.Block(0, b.H-1))
	assert.Equal(t, PieceI, b.Block(b.W-1, b.H-1))

	for y := 0; y < b.H; y++ {
		assert.False(t, b.RowFull(y), "row %d still full", y)
	}
	for y := 0; y < b.H-1; y++ {
		for x := 0; x < b.W; x++ {
			assert.True(t, b.Empty(x, y), "%d,%d not empty:\n%s", x, y, b)
		}
	}
}

func TestBoardClearAdjacentRows(t *testing.T) {
	b := NewTestBoard()

	marker := Point{3, b.H - 5}
	require.True(t, b.SetBlock(marker.X, marker.Y, PieceS))

	for y := b.H - 4; y < b.H; y++ {
		for x := 0; x < b.W; x++ {
			require.True(t, b.SetBlock(x, y, PieceL))
		}
	}

	assert.Equal(t, 4, b.ClearFullRows())
	assert.Equal(t, 1, b.OccupiedCount())
	assert.Equal(t, PieceS, b.Block(marker.X, b.H-1))
}

func TestBoardGameOver(t *testing.T) {
	b := NewTestBoard()
	AddTestBlocks(b)
	assert.False(t, b.IsGameOver())

	require.True(t, b.SetBlock(7, 0, PieceO))
	assert.True(t, b.IsGameOver())

	b.Reset()
	assert.False(t, b.IsGameOver())
	assert.Equal(t, 0, b.OccupiedCount())
}

func TestBoardSetBlock(t *testing.T) {
	b := NewTestBoard()

	assert.True(t, b.SetBlock(0, 0, PieceI))
	assert.False(t, b.SetBlock(0, 0, PieceI))
	assert.False(t, b.SetBlock(-1, 0, PieceI))
	assert.False(t, b.SetBlock(0, b.H, PieceI))
	assert.Equal(t, PieceNone, b.Block(b.W, 0))
}

func TestBoardString(t *testing.T) {
	b := NewBoard(3, 2)
	require.True(t, b.SetBlock(1, 1, PieceT))

	assert.Equal(t, "...\n.T.", b.String())
}

func BenchmarkClearFullRows(b *testing.B) {
	b.ReportAllocs()
	b.ResetTimer()

	board := NewTestBoard()
	for n := 0; n < b.N; n++ {
		for y := board.H - 4; y < board.H; y++ {
			for x := 0; x < board.W; x++ {
				board.M[I(x, y, board.W)] = PieceI
			}
		}

		if board.ClearFullRows() != 4 {
			b.Fatal("failed to clear rows")
		}
	}
}
