package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"sort"

	"github.com/fatih/color"
	"github.com/pkg/errors"

	"github.com/qnkhuat/tetriz/pkg/game"
	"github.com/qnkhuat/tetriz/pkg/mino"
	"github.com/qnkhuat/tetriz/pkg/replay"
)

var pieceColors = map[mino.PieceType]*color.Color{
	mino.PieceI: color.New(color.FgCyan),
	mino.PieceO: color.New(color.FgYellow),
	mino.PieceT: color.New(color.FgMagenta),
	mino.PieceS: color.New(color.FgGreen),
	mino.PieceZ: color.New(color.FgRed),
	mino.PieceJ: color.New(color.FgBlue),
	mino.PieceL: color.New(color.FgHiYellow),
}

var (
	labelColor = color.New(color.Bold)
	emptyColor = color.New(color.FgHiBlack)
)

// renderBoard draws the locked cells with the active piece on top.
func renderBoard(g *game.Game) [][]mino.PieceType {
	grid := g.Grid()

	if p, ok := g.Current(); ok {
		for _, c := range p.Cells() {
			if c.Y >= 0 && c.Y < len(grid) && c.X >= 0 && c.X < len(grid[c.Y]) {
				grid[c.Y][c.X] = p.Type
			}
		}
	}

	return grid
}

func printBoard(w io.Writer, grid [][]mino.PieceType) {
	for _, row := range grid {
		for _, t := range row {
			if c, ok := pieceColors[t]; ok {
				c.Fprint(w, string(t.Rune()))
			} else {
				emptyColor.Fprint(w, string(t.Rune()))
			}
		}
		fmt.Fprintln(w)
	}
}

func countResults(steps []replay.Step) map[game.Result]int {
	counts := make(map[game.Result]int)
	for _, s := range steps {
		for _, r := range s.Results {
			counts[r]++
		}
	}
	return counts
}

func printSummary(w io.Writer, name string, g *game.Game, steps []replay.Step, improved bool) {
	printBoard(w, renderBoard(g))
	fmt.Fprintln(w)

	labelColor.Fprintf(w, "%-10s", "Session")
	fmt.Fprintln(w, name)
	labelColor.Fprintf(w, "%-10s", "State")
	fmt.Fprintln(w, g.State())
	labelColor.Fprintf(w, "%-10s", "Score")
	fmt.Fprintln(w, g.Score())
	labelColor.Fprintf(w, "%-10s", "Level")
	fmt.Fprintln(w, g.Level())
	labelColor.Fprintf(w, "%-10s", "Lines")
	fmt.Fprintln(w, g.Lines())

	labelColor.Fprintf(w, "%-10s", "Best")
	if improved {
		color.New(color.FgGreen, color.Bold).Fprintf(w, "%d (new)\n", g.HighScore())
	} else {
		fmt.Fprintln(w, g.HighScore())
	}

	labelColor.Fprintf(w, "%-10s", "Next")
	next := g.Next()
	pieceColors[next.Type].Fprintln(w, next.Type)

	counts := countResults(steps)
	results := make([]game.Result, 0, len(counts))
	for r := range counts {
		results = append(results, r)
	}
	sort.Slice(results, func(i, j int) bool { return results[i] < results[j] })

	labelColor.Fprintf(w, "%-10s", "Commands")
	for i, r := range results {
		if i > 0 {
			fmt.Fprint(w, ", ")
		}
		fmt.Fprintf(w, "%d %s", counts[r], r)
	}
	fmt.Fprintln(w)
}

// writeJSON prints the final snapshot as indented JSON.
func writeJSON(w io.Writer, g *game.Game) error {
	var buf bytes.Buffer
	if err := json.Indent(&buf, g.Snapshot().Encode(), "", "  "); err != nil {
		return errors.Wrap(err, "indent snapshot")
	}
	buf.WriteByte('\n')

	_, err := buf.WriteTo(w)
	return errors.Wrap(err, "write snapshot")
}
