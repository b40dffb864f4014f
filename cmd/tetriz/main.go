package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/fatih/color"
	log "github.com/jeanphorn/log4go"
	"github.com/pkg/errors"
	"golang.org/x/term"

	"github.com/qnkhuat/tetriz/pkg"
	"github.com/qnkhuat/tetriz/pkg/event"
	"github.com/qnkhuat/tetriz/pkg/game"
	"github.com/qnkhuat/tetriz/pkg/highscore"
	"github.com/qnkhuat/tetriz/pkg/mino"
	"github.com/qnkhuat/tetriz/pkg/replay"
)

var (
	seed          int64
	scriptPath    string
	pieces        int
	useBag        bool
	highScorePath string
	logConfig     string
	logDebug      bool
	jsonOutput    bool
	nameFlag      string
	dumpScript    bool
)

func main() {
	flag.Int64Var(&seed, "seed", 0, "piece seed, 0 picks one from the clock")
	flag.StringVar(&scriptPath, "script", "", "replay script path, - for stdin")
	flag.IntVar(&pieces, "pieces", 50, "pieces to place with random play when no script is given")
	flag.BoolVar(&useBag, "bag", false, "deal pieces from a shuffled bag of seven")
	flag.StringVar(&highScorePath, "highscore", highscore.DefaultPath, "high score file, empty to disable")
	flag.StringVar(&logConfig, "logconfig", "", "log4go XML or JSON config")
	flag.BoolVar(&logDebug, "debug", false, "enable debug logging")
	flag.BoolVar(&jsonOutput, "json", false, "print the final snapshot as JSON")
	flag.StringVar(&nameFlag, "name", "", "session name")
	flag.BoolVar(&dumpScript, "dump", false, "print the script instead of running it")
	flag.Parse()

	pkg.InitLog(logDebug)
	if logConfig != "" {
		if err := pkg.LoadLogConfig(logConfig); err != nil {
			fatal(err)
		}
	}

	color.NoColor = color.NoColor || !term.IsTerminal(int(os.Stdout.Fd()))

	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	name := pkg.SessionName(nameFlag)

	cmds, err := loadScript()
	if err != nil {
		fatal(err)
	}

	if dumpScript {
		fmt.Print(replay.Format(cmds))
		log.Close()
		return
	}

	best := 0
	if highScorePath != "" {
		best, err = highscore.Load(highScorePath)
		if err != nil {
			log.Warn("%s: ignoring high score: %s", name, err)
			best = 0
		}
	}

	cfg := game.DefaultConfig()
	cfg.Seed = seed
	if useBag {
		cfg.Randomizer = mino.RandomizerBag
	}

	g := game.New(cfg, best)
	g.SetListener(func(e interface{}) {
		logEvent(name, e)
	})

	log.Info("%s: seed %d, %s randomizer, %d commands, high score %d", name, seed, cfg.Randomizer, len(cmds), best)

	steps := replay.Run(g, cmds)

	improved := false
	if highScorePath != "" {
		_, improved, err = highscore.Update(highScorePath, g.HighScore())
		if err != nil {
			log.Error("%s: failed to save high score: %s", name, err)
		} else if improved {
			log.Info("%s: new high score %d", name, g.HighScore())
		}
	}

	if jsonOutput {
		if err := writeJSON(os.Stdout, g); err != nil {
			fatal(err)
		}
	} else {
		printSummary(color.Output, name, g, steps, improved)
	}

	log.Close()
}

func fatal(err error) {
	log.Critical("failed to run tetriz: %s", err)
	log.Close()
	os.Exit(1)
}

func loadScript() ([]replay.Command, error) {
	if scriptPath == "" {
		if pieces < 0 {
			return nil, errors.Errorf("invalid piece count %d", pieces)
		}
		return replay.Generate(seed, pieces), nil
	}

	var r io.Reader = os.Stdin
	if scriptPath != "-" {
		f, err := os.Open(scriptPath)
		if err != nil {
			return nil, errors.Wrap(err, "open script")
		}
		defer f.Close()

		r = f
	}

	cmds, err := replay.Parse(r)
	return cmds, errors.Wrapf(err, "parse %s", scriptPath)
}

func logEvent(name string, e interface{}) {
	switch e := e.(type) {
	case *event.SpawnEvent:
		log.Debug("%s: spawned %s, next %s", name, e.Piece, e.Next)
	case *event.LockEvent:
		if e.Lines > 0 {
			log.Debug("%s: locked %s, cleared %d lines for %d points", name, e.Piece, e.Lines, e.Points)
		} else {
			log.Debug("%s: locked %s", name, e.Piece)
		}
	case *event.LevelEvent:
		log.Info("%s: level %d", name, e.Level)
	case *event.PauseEvent:
		if e.Paused {
			log.Info("%s: paused", name)
		} else {
			log.Info("%s: resumed", name)
		}
	case *event.GameOverEvent:
		log.Info("%s: game over with %d points, %d lines, level %d", name, e.Score, e.Lines, e.Level)
	case *event.RestartEvent:
		if e.Auto {
			log.Info("%s: restarted after game over", name)
		} else {
			log.Info("%s: reset", name)
		}
	}
}
