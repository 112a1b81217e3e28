package logs

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/reusee/taibf/cmds"
	slogmulti "github.com/samber/slog-multi"
)

var level = new(slog.LevelVar)

var jsonFormat = cmds.Switch("-log-json")

func init() {
	for _, l := range []slog.Level{
		slog.LevelDebug,
		slog.LevelInfo,
		slog.LevelWarn,
		slog.LevelError,
	} {
		name := strings.ToLower(l.String())
		cmds.Define("-log-"+name, cmds.Func(func() {
			level.Set(l)
		}).Desc("set log level to "+name))
	}
}

// SetLevel sets the level of all loggers. Flags parsed later override it.
func SetLevel(l slog.Level) {
	level.Set(l)
}

type Logger = *slog.Logger

// Writer receives the terminal records.
type Writer io.Writer

func (Module) Writer() Writer {
	return os.Stderr
}

// Logger writes to the terminal, and to the journal when available.
// The terminal is skipped when running as a systemd service, since the journal already captures it.
func (Module) Logger(
	writer Writer,
) Logger {
	var handlers []slog.Handler
	if !runningAsService() {
		options := &slog.HandlerOptions{
			Level: level,
		}
		if *jsonFormat {
			handlers = append(handlers, slog.NewJSONHandler(writer, options))
		} else {
			handlers = append(handlers, slog.NewTextHandler(writer, options))
		}
	}
	if h, err := newJournalHandler(); err == nil {
		handlers = append(handlers, h)
	}
	return slog.New(&spanHandler{
		Handler: slogmulti.Fanout(handlers...),
	})
}
