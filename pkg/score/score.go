// Package score tracks points, cleared lines and the level derived from
// them.
package score

import (
	"time"
)

const (
	LinesPerLevel = 10

	SoftDropPoints = 1 // Per cell
	HardDropPoints = 2 // Per cell

	MaxDropInterval  = 1000 * time.Millisecond
	MinDropInterval  = 100 * time.Millisecond
	DropIntervalStep = 100 * time.Millisecond
)

// LinePoints returns the base award for clearing lines in a single lock,
// before the level multiplier.
func LinePoints(lines int) int {
	switch lines {
	case 1:
		return 100
	case 2:
		return 300
	case 3:
		return 500
	case 4:
		return 800
	default:
		return 0
	}
}

// DropInterval is the time between automatic descents at a level.
func DropInterval(level int) time.Duration {
	if level < 1 {
		level = 1
	}

	d := MaxDropInterval - time.Duration(level-1)*DropIntervalStep
	if d < MinDropInterval {
		return MinDropInterval
	}
	return d
}

type Scoring struct {
	score int
	level int
	lines int
}

func NewScoring() *Scoring {
	return &Scoring{level: 1}
}

func (s *Scoring) Score() int { return s.score }
func (s *Scoring) Level() int { return s.level }
func (s *Scoring) Lines() int { return s.lines }

// AddLineClear awards the points for a single lock that cleared lines and
// returns them. The award uses the level held before the lines are
// counted.
func (s *Scoring) AddLineClear(lines int) int {
	if lines <= 0 {
		return 0
	}

	points := LinePoints(lines) * s.level

	s.score += points
	s.lines += lines
	s.level = s.lines/LinesPerLevel + 1

	return points
}

func (s *Scoring) AddSoftDrop(cells int) {
	if cells > 0 {
		s.score += cells * SoftDropPoints
	}
}

func (s *Scoring) AddHardDrop(cells int) {
	if cells > 0 {
		s.score += cells * HardDropPoints
	}
}

func (s *Scoring) DropInterval() time.Duration {
	return DropInterval(s.level)
}

func (s *Scoring) Reset() {
	s.score = 0
	s.level = 1
	s.lines = 0
}
