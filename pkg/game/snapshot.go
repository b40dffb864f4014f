package game

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/qnkhuat/tetriz/pkg/mino"
)

type PieceSnapshot struct {
	Type     string       `json:"type"`
	X        int          `json:"x"`
	Y        int          `json:"y"`
	Rotation int          `json:"rotation"`
	Color    string       `json:"color"`
	Cells    []mino.Point `json:"cells"`
}

// Snapshot is a detached copy of everything a presentation layer needs to
// draw the game. Board rows use one rune per cell, '.' for empty.
type Snapshot struct {
	State        string         `json:"state"`
	Score        int            `json:"score"`
	HighScore    int            `json:"highScore"`
	Level        int            `json:"level"`
	Lines        int            `json:"lines"`
	DropInterval int64          `json:"dropIntervalMs"`
	Width        int            `json:"width"`
	Height       int            `json:"height"`
	Board        []string       `json:"board"`
	Current      *PieceSnapshot `json:"current,omitempty"`
	Ghost        *PieceSnapshot `json:"ghost,omitempty"`
	Next         PieceSnapshot  `json:"next"`
}

func (s Snapshot) Encode() json.RawMessage {
	data, err := json.Marshal(s)
	if err != nil {
		// Snapshot only holds plain values.
		panic(err)
	}
	return data
}

// fmtHex formats a tcell color value as #rrggbb.
func fmtHex(v int32) string {
	if v < 0 {
		return ""
	}
	return fmt.Sprintf("#%06x", v)
}

func newPieceSnapshot(p *mino.Piece) *PieceSnapshot {
	return &PieceSnapshot{
		Type:     p.Type.String(),
		X:        p.X,
		Y:        p.Y,
		Rotation: p.Rotation,
		Color:    fmtHex(p.Type.Color().Hex()),
		Cells:    p.Cells(),
	}
}

func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		State:        g.state.String(),
		Score:        g.scoring.Score(),
		HighScore:    g.highScore,
		Level:        g.scoring.Level(),
		Lines:        g.scoring.Lines(),
		DropInterval: g.scoring.DropInterval().Milliseconds(),
		Width:        g.board.W,
		Height:       g.board.H,
		Board:        strings.Split(g.board.String(), "\n"),
		Next:         *newPieceSnapshot(g.next),
	}

	if g.current != nil {
		s.Current = newPieceSnapshot(g.current)
	}
	if ghost, ok := g.Ghost(); ok {
		s.Ghost = newPieceSnapshot(&ghost)
	}

	return s
}
