package event

import (
	"github.com/qnkhuat/tetriz/pkg/mino"
)

// SpawnEvent is emitted when the next piece becomes the active piece.
type SpawnEvent struct {
	Piece mino.Piece
	Next  mino.PieceType
}

// LockEvent is emitted when the active piece is committed to the board.
type LockEvent struct {
	Piece  mino.Piece
	Lines  int
	Points int
}

type LevelEvent struct {
	Level int
}

type PauseEvent struct {
	Paused bool
}

// GameOverEvent is emitted when a spawned piece does not fit. TopOut
// reports whether the stack had already reached the top row.
type GameOverEvent struct {
	Score  int
	Lines  int
	Level  int
	TopOut bool
}

type RestartEvent struct {
	Auto bool
}
