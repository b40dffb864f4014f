package game

import (
	"time"

	"github.com/qnkhuat/tetriz/pkg/event"
	"github.com/qnkhuat/tetriz/pkg/mino"
	"github.com/qnkhuat/tetriz/pkg/score"
)

// Listener receives the events in pkg/event as they happen.
type Listener func(e interface{})

type Game struct {
	cfg Config

	board   *mino.Board
	scoring *score.Scoring
	rand    mino.Randomizer

	current *mino.Piece // nil between a lock and the following spawn
	next    *mino.Piece

	state State
	clock Clock

	highScore int
	listener  Listener
}

// New starts a game in the Playing state with a spawned piece. highScore
// is the best score known from earlier sessions.
func New(cfg Config, highScore int) *Game {
	return NewWithRandomizer(cfg, highScore, mino.NewRandomizer(cfg.Randomizer, cfg.Seed))
}

// NewWithRandomizer is New with an explicit piece source. cfg.Randomizer
// and cfg.Seed are ignored.
func NewWithRandomizer(cfg Config, highScore int, r mino.Randomizer) *Game {
	cfg = cfg.withDefaults()

	g := &Game{
		cfg:       cfg,
		board:     mino.NewBoard(cfg.Width, cfg.Height),
		scoring:   score.NewScoring(),
		rand:      r,
		state:     StatePlaying,
		highScore: highScore,
	}
	if g.highScore < 0 {
		g.highScore = 0
	}

	g.next = g.newPiece()
	g.spawn()

	return g
}

// SetListener replaces the event listener. A nil listener drops events.
func (g *Game) SetListener(l Listener) {
	g.listener = l
}

func (g *Game) emit(e interface{}) {
	if g.listener != nil {
		g.listener(e)
	}
}

// newPiece draws the next type. Types a Randomizer should never return
// become an O.
func (g *Game) newPiece() *mino.Piece {
	t := g.rand.Take()
	if !t.Valid() {
		t = mino.PieceO
	}
	return mino.NewPieceAt(t, g.cfg.Spawn)
}

func (g *Game) setState(s State) {
	if g.state == s {
		return
	}

	g.state = s
	if s == StateGameOver {
		g.clock.Reset()
	}
}

// spawn promotes the next piece. A piece that does not fit ends the game.
func (g *Game) spawn() {
	if g.current != nil {
		return
	}

	p := g.next
	g.next = g.newPiece()

	if !g.board.IsValid(p) {
		g.setState(StateGameOver)
		g.emit(&event.GameOverEvent{
			Score:  g.scoring.Score(),
			Lines:  g.scoring.Lines(),
			Level:  g.scoring.Level(),
			TopOut: g.board.IsGameOver(),
		})
		return
	}

	g.current = p
	g.emit(&event.SpawnEvent{Piece: *p, Next: g.next.Type})
}

func (g *Game) lock() {
	p := g.current
	level := g.scoring.Level()

	g.board.Place(p)
	lines := g.board.ClearFullRows()
	points := g.scoring.AddLineClear(lines)
	g.current = nil
	g.trackHighScore()

	g.emit(&event.LockEvent{Piece: *p, Lines: lines, Points: points})
	if g.scoring.Level() != level {
		g.emit(&event.LevelEvent{Level: g.scoring.Level()})
	}

	g.spawn()
}

func (g *Game) trackHighScore() {
	if s := g.scoring.Score(); s > g.highScore {
		g.highScore = s
	}
}

// ready reports whether piece commands are accepted.
func (g *Game) ready() bool {
	return g.state == StatePlaying && g.current != nil
}

func (g *Game) TogglePause() bool {
	switch g.state {
	case StatePlaying:
		g.setState(StatePaused)
	case StatePaused:
		g.setState(StatePlaying)
	default:
		return false
	}

	g.emit(&event.PauseEvent{Paused: g.state == StatePaused})
	return true
}

func (g *Game) MoveLeft() Result {
	return g.shift(-1)
}

func (g *Game) MoveRight() Result {
	return g.shift(1)
}

func (g *Game) shift(dx int) Result {
	if !g.ready() {
		return ResultWrongState
	}

	g.current.Translate(dx, 0)
	if !g.board.IsValid(g.current) {
		g.current.Translate(-dx, 0)
		return ResultBlocked
	}
	return ResultOK
}

// Rotate turns the piece clockwise, trying each of WallKicks when it does
// not fit in place.
func (g *Game) Rotate() Result {
	if !g.ready() {
		return ResultWrongState
	}

	p := g.current
	p.RotateCW()
	if g.board.IsValid(p) {
		return ResultOK
	}

	for _, dx := range WallKicks {
		p.Translate(dx, 0)
		if g.board.IsValid(p) {
			return ResultOK
		}
		p.Translate(-dx, 0)
	}

	p.RotateCCW()
	return ResultBlocked
}

// SoftDrop moves the piece down one row for a point, or locks it when it
// cannot move.
func (g *Game) SoftDrop() Result {
	return g.drop(true)
}

func (g *Game) drop(scored bool) Result {
	if !g.ready() {
		return ResultWrongState
	}

	g.current.Translate(0, 1)
	if !g.board.IsValid(g.current) {
		g.current.Translate(0, -1)
		g.lock()
		return ResultLocked
	}

	if scored {
		g.scoring.AddSoftDrop(1)
		g.trackHighScore()
	}
	return ResultOK
}

// HardDrop drops the piece as far as it goes and locks it. It returns the
// number of rows the piece descended.
func (g *Game) HardDrop() (int, Result) {
	if !g.ready() {
		return 0, ResultWrongState
	}

	p := g.current
	cells := 0
	for {
		p.Translate(0, 1)
		if !g.board.IsValid(p) {
			p.Translate(0, -1)
			break
		}
		cells++
	}

	g.scoring.AddHardDrop(cells)
	g.lock()

	return cells, ResultOK
}

// Tick advances the game clock. While playing the piece falls one row
// every drop interval. Game over lasts until more than
// Config.RestartDelay has passed.
func (g *Game) Tick(elapsed time.Duration) Result {
	switch g.state {
	case StatePaused:
		return ResultWrongState
	case StateGameOver:
		g.clock.Advance(elapsed)
		if g.clock.Exceeded(g.cfg.RestartDelay) {
			g.restart(true)
			return ResultOK
		}
		return ResultWrongState
	}

	g.clock.Advance(elapsed)
	if !g.clock.Reached(g.scoring.DropInterval()) {
		return ResultOK
	}

	g.clock.Reset()
	return g.drop(false)
}

// Reset starts a new game. It is accepted in every state.
func (g *Game) Reset() {
	g.restart(false)
}

func (g *Game) restart(auto bool) {
	g.board.Reset()
	g.scoring.Reset()
	g.current = nil
	g.next = g.newPiece()
	g.state = StatePlaying
	g.clock.Reset()

	g.emit(&event.RestartEvent{Auto: auto})
	g.spawn()
}

// Do applies a single command.
func (g *Game) Do(a event.Action) Result {
	switch a {
	case event.ActionMoveLeft:
		return g.MoveLeft()
	case event.ActionMoveRight:
		return g.MoveRight()
	case event.ActionRotate:
		return g.Rotate()
	case event.ActionSoftDrop:
		return g.SoftDrop()
	case event.ActionHardDrop:
		_, res := g.HardDrop()
		return res
	case event.ActionTogglePause:
		if g.TogglePause() {
			return ResultOK
		}
		return ResultWrongState
	case event.ActionReset:
		g.Reset()
		return ResultOK
	default:
		return ResultWrongState
	}
}

func (g *Game) State() State   { return g.state }
func (g *Game) Score() int     { return g.scoring.Score() }
func (g *Game) Level() int     { return g.scoring.Level() }
func (g *Game) Lines() int     { return g.scoring.Lines() }
func (g *Game) HighScore() int { return g.highScore }
func (g *Game) Width() int     { return g.board.W }
func (g *Game) Height() int    { return g.board.H }
func (g *Game) Config() Config { return g.cfg }

// Elapsed is the time accumulated toward the next drop or, in GameOver,
// toward the restart.
func (g *Game) Elapsed() time.Duration {
	return g.clock.Elapsed
}

func (g *Game) DropInterval() time.Duration {
	return g.scoring.DropInterval()
}

// Grid returns a copy of the locked cells indexed [y][x].
func (g *Game) Grid() [][]mino.PieceType {
	return g.board.Rows()
}

// Block returns the locked cell at x, y.
func (g *Game) Block(x int, y int) mino.PieceType {
	return g.board.Block(x, y)
}

// Current returns a copy of the active piece.
func (g *Game) Current() (mino.Piece, bool) {
	if g.current == nil {
		return mino.Piece{}, false
	}
	return *g.current, true
}

func (g *Game) Next() mino.Piece {
	return *g.next
}

// Ghost returns where the active piece would land if hard dropped.
func (g *Game) Ghost() (mino.Piece, bool) {
	if g.current == nil {
		return mino.Piece{}, false
	}

	p := *g.current
	for {
		p.Translate(0, 1)
		if !g.board.IsValid(&p) {
			p.Translate(0, -1)
			return p, true
		}
	}
}
