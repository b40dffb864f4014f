package pkg

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	petname "github.com/dustinkirkland/golang-petname"
	log "github.com/jeanphorn/log4go"
	"github.com/pkg/errors"
)

// stderrLogWriter writes log records synchronously to stderr so stdout
// stays free for command output.
type stderrLogWriter struct {
	w io.Writer // os.Stderr when nil
}

func (lw *stderrLogWriter) LogWrite(rec *log.LogRecord) {
	w := lw.w
	if w == nil {
		w = os.Stderr
	}
	fmt.Fprint(w, log.FormatLogRecord(log.FORMAT_DEFAULT, rec))
}

func (lw *stderrLogWriter) Close() {}

// InitLog sends the global logger to stderr at INFO, or DEBUG when debug
// is set.
func InitLog(debug bool) {
	lvl := log.INFO
	if debug {
		lvl = log.DEBUG
	}

	l := log.Logger{}
	l.AddFilter("stderr", lvl, &stderrLogWriter{})

	log.Global.Close()
	log.Global = l
}

// LoadLogConfig replaces the global logger with the filters of a log4go
// XML or JSON configuration file.
func LoadLogConfig(path string) error {
	if _, err := os.Stat(path); err != nil {
		return errors.Wrap(err, "log config")
	}

	typ := "xml"
	if strings.EqualFold(filepath.Ext(path), ".json") {
		typ = "json"
	}
	log.LoadConfiguration(path, typ)

	return nil
}

// SessionName returns name, or a generated one when it is empty.
func SessionName(name string) string {
	if name = strings.TrimSpace(name); name != "" {
		return name
	}
	return petname.Generate(2, "-")
}
