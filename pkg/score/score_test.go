package score

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAddLineClear(t *testing.T) {
	tests := []struct {
		lines  int
		points int
	}{
		{0, 0},
		{1, 100},
		{2, 300},
		{3, 500},
		{4, 800},
		{5, 0},
	}

	for _, tt := range tests {
		s := NewScoring()
		assert.Equal(t, tt.points, s.AddLineClear(tt.lines), "%d lines", tt.lines)
		assert.Equal(t, tt.points, s.Score())
		assert.Equal(t, 1, s.Level())
	}
}

func TestSingleLineAtLevelOne(t *testing.T) {
	s := NewScoring()

	s.AddLineClear(1)
	assert.Equal(t, 100, s.Score())
	assert.Equal(t, 1, s.Lines())
	assert.Equal(t, 1, s.Level())
}

func TestLevelUp(t *testing.T) {
	s := NewScoring()

	for i := 0; i < 9; i++ {
		s.AddLineClear(1)
	}
	assert.Equal(t, 1, s.Level())
	assert.Equal(t, 900, s.Score())

	// The tenth line is still scored at level 1.
	assert.Equal(t, 100, s.AddLineClear(1))
	assert.Equal(t, 10, s.Lines())
	assert.Equal(t, 2, s.Level())

	assert.Equal(t, 200, s.AddLineClear(1))
	assert.Equal(t, 1200, s.Score())
}

func TestLevelUsesPriorLevel(t *testing.T) {
	s := NewScoring()

	s.AddLineClear(4)
	s.AddLineClear(4)
	assert.Equal(t, 8, s.Lines())

	// Crosses into level 2 but scores at level 1.
	assert.Equal(t, 800, s.AddLineClear(4))
	assert.Equal(t, 12, s.Lines())
	assert.Equal(t, 2, s.Level())
}

func TestDropPoints(t *testing.T) {
	s := NewScoring()

	s.AddSoftDrop(3)
	assert.Equal(t, 3, s.Score())

	s.AddHardDrop(18)
	assert.Equal(t, 39, s.Score())

	s.AddHardDrop(-1)
	s.AddSoftDrop(0)
	assert.Equal(t, 39, s.Score())
}

func TestDropInterval(t *testing.T) {
	expected := map[int]time.Duration{
		0:  1000 * time.Millisecond,
		1:  1000 * time.Millisecond,
		2:  900 * time.Millisecond,
		5:  600 * time.Millisecond,
		9:  200 * time.Millisecond,
		10: 100 * time.Millisecond,
		11: 100 * time.Millisecond,
		50: 100 * time.Millisecond,
	}

	for level, d := range expected {
		assert.Equal(t, d, DropInterval(level), "level %d", level)
	}

	for level := 1; level < 20; level++ {
		assert.True(t, DropInterval(level+1) <= DropInterval(level))
	}

	s := NewScoring()
	assert.Equal(t, time.Second, s.DropInterval())
}

func TestReset(t *testing.T) {
	s := NewScoring()
	for i := 0; i < 5; i++ {
		s.AddLineClear(4)
	}
	s.AddSoftDrop(10)

	s.Reset()
	assert.Equal(t, 0, s.Score())
	assert.Equal(t, 0, s.Lines())
	assert.Equal(t, 1, s.Level())
}
