// Package replay drives a game from a line oriented script.
//
//	# comments run to the end of the line
//	left x3
//	rotate
//	tick 500ms
//	tick 250   # bare numbers are milliseconds
//	hard
//
// Each line holds one command, optionally followed by a repeat count
// written as xN.
package replay

import (
	"bufio"
	"fmt"
	"io"
	"math/rand"
	"strconv"
	"strings"
	"time"

	"github.com/anmitsu/go-shlex"
	log "github.com/jeanphorn/log4go"
	"github.com/pkg/errors"

	"github.com/qnkhuat/tetriz/pkg/event"
	"github.com/qnkhuat/tetriz/pkg/game"
)

const tickName = "tick"

// MaxRepeat bounds the xN repeat count of a single line.
const MaxRepeat = 10000

// Command is a single parsed script line. A command with a non-zero Tick
// advances the clock instead of applying Action.
type Command struct {
	Line   int
	Action event.Action
	Tick   time.Duration
	Repeat int
}

func (c Command) String() string {
	var s string
	if c.Tick > 0 {
		s = fmt.Sprintf("%s %s", tickName, c.Tick)
	} else {
		s = c.Action.String()
	}

	if c.Repeat > 1 {
		s += fmt.Sprintf(" x%d", c.Repeat)
	}
	return s
}

// Parse reads a script. Errors name the offending line.
func Parse(r io.Reader) ([]Command, error) {
	var cmds []Command

	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++

		cmd, ok, err := parseLine(scanner.Text())
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", line)
		} else if !ok {
			continue
		}

		cmd.Line = line
		cmds = append(cmds, cmd)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "read script")
	}

	return cmds, nil
}

func ParseString(s string) ([]Command, error) {
	return Parse(strings.NewReader(s))
}

func parseLine(text string) (Command, bool, error) {
	// No argument contains '#', so the comment starts at the first one.
	if i := strings.IndexByte(text, '#'); i >= 0 {
		text = text[:i]
	}

	fields, err := shlex.Split(text, true)
	if err != nil {
		return Command{}, false, errors.Wrap(err, "split")
	}
	if len(fields) == 0 {
		return Command{}, false, nil
	}

	cmd := Command{Repeat: 1}
	args := fields[1:]

	if len(args) > 0 && isRepeat(args[len(args)-1]) {
		n, err := strconv.Atoi(args[len(args)-1][1:])
		if err != nil || n < 1 || n > MaxRepeat {
			return Command{}, false, errors.Errorf("invalid repeat %q", args[len(args)-1])
		}
		cmd.Repeat = n
		args = args[:len(args)-1]
	}

	name := strings.ToLower(fields[0])
	if name == tickName {
		if len(args) != 1 {
			return Command{}, false, errors.Errorf("%s takes one duration, got %d arguments", tickName, len(args))
		}

		d, err := parseDuration(args[0])
		if err != nil {
			return Command{}, false, err
		}
		cmd.Tick = d
		return cmd, true, nil
	}

	if len(args) > 0 {
		return Command{}, false, errors.Errorf("%s takes no arguments", name)
	}

	a, err := event.ParseAction(name)
	if err != nil {
		return Command{}, false, err
	}
	cmd.Action = a

	return cmd, true, nil
}

func isRepeat(s string) bool {
	return len(s) > 1 && (s[0] == 'x' || s[0] == 'X') && s[1] >= '0' && s[1] <= '9'
}

// parseDuration accepts Go durations and bare milliseconds.
func parseDuration(s string) (time.Duration, error) {
	var d time.Duration
	if ms, err := strconv.Atoi(s); err == nil {
		d = time.Duration(ms) * time.Millisecond
	} else if d, err = time.ParseDuration(s); err != nil {
		return 0, errors.Wrapf(err, "invalid duration %q", s)
	}

	if d <= 0 {
		return 0, errors.Errorf("duration %q must be positive", s)
	}
	return d, nil
}

// Format writes commands back in script form.
func Format(cmds []Command) string {
	var b strings.Builder
	for _, c := range cmds {
		b.WriteString(c.String())
		b.WriteRune('\n')
	}
	return b.String()
}

// Step records the results of one command, one per repetition.
type Step struct {
	Command Command
	Results []game.Result
}

// Run applies commands to g in order.
func Run(g *game.Game, cmds []Command) []Step {
	steps := make([]Step, 0, len(cmds))

	for _, cmd := range cmds {
		step := Step{Command: cmd, Results: make([]game.Result, 0, cmd.Repeat)}

		for i := 0; i < cmd.Repeat; i++ {
			var res game.Result
			if cmd.Tick > 0 {
				res = g.Tick(cmd.Tick)
			} else {
				res = g.Do(cmd.Action)
			}
			step.Results = append(step.Results, res)
		}

		log.Debug("replay line %d: %s -> %v", cmd.Line, cmd, step.Results)
		steps = append(steps, step)
	}

	return steps
}

// Generate builds a random script that places the given number of pieces.
// Each piece is shifted, turned and given time to fall before it is hard
// dropped.
func Generate(seed int64, pieces int) []Command {
	r := rand.New(rand.NewSource(seed))

	var cmds []Command
	for i := 0; i < pieces; i++ {
		if n := r.Intn(4); n > 0 {
			cmds = append(cmds, Command{Action: event.ActionRotate, Repeat: n})
		}

		shift := event.ActionMoveLeft
		if r.Intn(2) == 0 {
			shift = event.ActionMoveRight
		}
		if n := r.Intn(6); n > 0 {
			cmds = append(cmds, Command{Action: shift, Repeat: n})
		}

		if r.Intn(3) == 0 {
			cmds = append(cmds, Command{Tick: time.Duration(100+r.Intn(900)) * time.Millisecond, Repeat: 1})
		}

		cmds = append(cmds, Command{Action: event.ActionHardDrop, Repeat: 1})
	}

	return cmds
}
