package game

import (
	"time"

	"github.com/qnkhuat/tetriz/pkg/mino"
)

const DefaultRestartDelay = 2 * time.Second

// WallKicks are the horizontal offsets tried, in order, when a rotation
// does not fit in place.
var WallKicks = []int{-1, 1, -2, 2}

// Config describes a game. Zero fields take their DefaultConfig values;
// a zero Spawn is the top row, one left of the center column.
type Config struct {
	Width  int
	Height int
	Spawn  mino.Point

	// RestartDelay is how long GameOver lasts before the game restarts
	// itself.
	RestartDelay time.Duration

	Randomizer mino.RandomizerType
	Seed       int64
}

func DefaultConfig() Config {
	return Config{
		Width:        mino.DefaultWidth,
		Height:       mino.DefaultHeight,
		Spawn:        mino.SpawnPoint,
		RestartDelay: DefaultRestartDelay,
		Randomizer:   mino.RandomizerUniform,
	}
}

func (c Config) withDefaults() Config {
	if c.Width <= 0 {
		c.Width = mino.DefaultWidth
	}
	if c.Height <= 0 {
		c.Height = mino.DefaultHeight
	}
	if c.Spawn == (mino.Point{}) {
		c.Spawn = mino.Point{X: c.Width/2 - 1, Y: 0}
	}
	if c.RestartDelay <= 0 {
		c.RestartDelay = DefaultRestartDelay
	}
	return c
}
