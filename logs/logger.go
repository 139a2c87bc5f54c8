package logs

import (
	"context"
	"log/slog"
	"os"
	"path"
	"strings"
	"time"

	"github.com/lmittmann/tint"
	"github.com/mattn/go-isatty"
	"github.com/reusee/bf/cmds"
	slogmulti "github.com/samber/slog-multi"
	slogjournal "github.com/systemd/slog-journal"
)

var level = new(slog.LevelVar)

// SetLevel changes the level of every logger; command line flags override it.
func SetLevel(l slog.Level) {
	level.Set(l)
}

func init() {
	for name, l := range map[string]slog.Level{
		"debug": slog.LevelDebug,
		"info":  slog.LevelInfo,
		"warn":  slog.LevelWarn,
		"error": slog.LevelError,
	} {
		cmds.Define("-log-"+name, cmds.Func(func() {
			level.Set(l)
		}).Desc("set log level to "+name))
	}
}

type Logger = *slog.Logger

// Logger writes to the terminal, and to the journal when it is reachable. Under a
// systemd service only the journal is used.
func (Module) Logger(
	writer Writer,
) Logger {
	var handlers []slog.Handler

	var terminal slog.Handler
	if !underSystemdService() {
		terminal = tint.NewHandler(writer, &tint.Options{
			Level:      level,
			TimeFormat: time.TimeOnly,
			NoColor:    !isTerminal(writer),
		})
		handlers = append(handlers, terminal)
	}

	journal, err := slogjournal.NewHandler(&slogjournal.Options{
		Level:        level,
		ReplaceGroup: toJournalKey,
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			a.Key = toJournalKey(a.Key)
			return a
		},
	})
	if err == nil {
		handlers = append(handlers, journal)
	} else if terminal != nil {
		ctx := context.Background()
		if terminal.Enabled(ctx, slog.LevelDebug) {
			record := slog.NewRecord(time.Now(), slog.LevelDebug, "no systemd journal", 0)
			record.AddAttrs(slog.Any("error", err))
			_ = terminal.Handle(ctx, record)
		}
	}

	return slog.New(&Handler{
		Handler: slogmulti.Fanout(handlers...),
	})
}

func isTerminal(w Writer) bool {
	f, ok := w.(*os.File)
	return ok && isatty.IsTerminal(f.Fd())
}

// toJournalKey maps a key to the journal field alphabet of upper case letters,
// digits and underscores.
func toJournalKey(str string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		case r >= 'a' && r <= 'z':
			return r - 'a' + 'A'
		}
		return '_'
	}, str)
}

func underSystemdService() bool {
	content, err := os.ReadFile("/proc/self/cgroup")
	if err != nil {
		return false
	}
	// hierarchy-ID:controller-list:cgroup-path
	parts := strings.SplitN(strings.TrimSpace(string(content)), ":", 3)
	if len(parts) < 3 {
		return false
	}
	return strings.HasSuffix(path.Dir(parts[2]), ".service")
}
