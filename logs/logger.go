// Package logs builds the structured logger used by the tautology command.
package logs

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	slogmulti "github.com/samber/slog-multi"
	slogjournal "github.com/systemd/slog-journal"

	"github.com/propcalc/tautology/config"
)

// Level is shared by all handlers, so that it can be changed after the logger was built.
var Level = new(slog.LevelVar)

// New returns a logger writing text records to w and, depending on cfg,
// JSON records to a file and records to the systemd journal.
// The returned closer releases the log file, if any.
func New(cfg config.LogConfig, w io.Writer) (*slog.Logger, io.Closer, error) {
	lvl, err := cfg.SlogLevel()
	if err != nil {
		return nil, nil, err
	}
	Level.Set(lvl)
	opts := &slog.HandlerOptions{Level: Level}
	terminal := slog.NewTextHandler(w, opts)
	handlers := []slog.Handler{terminal}
	var closer io.Closer = nopCloser{}
	if cfg.File != "" {
		f, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("could not open log file %q: %v", cfg.File, err)
		}
		handlers = append(handlers, slog.NewJSONHandler(f, opts))
		closer = f
	}
	if cfg.Journal {
		journal, err := slogjournal.NewHandler(&slogjournal.Options{
			Level: Level,
			ReplaceGroup: func(key string) string {
				return toJournalKey(key)
			},
			ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
				a.Key = toJournalKey(a.Key)
				return a
			},
		})
		if err != nil {
			record := slog.NewRecord(time.Now(), slog.LevelWarn, "new systemd journal handler", 0)
			record.Add("error", err)
			_ = terminal.Handle(context.Background(), record)
		} else {
			handlers = append(handlers, journal)
		}
	}
	return slog.New(slogmulti.Fanout(handlers...)), closer, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// toJournalKey turns key into a valid journal field name.
func toJournalKey(key string) string {
	key = strings.ToUpper(key)
	return strings.Map(func(r rune) rune {
		if r >= 'A' && r <= 'Z' || r >= '0' && r <= '9' {
			return r
		}
		return '_'
	}, key)
}
