package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/lmittmann/tint"
	"golang.org/x/term"
)

// Options configures the process-wide logger.
type Options struct {
	Level      string
	Format     string // "json" or "console"
	OutputPath string // "stdout", "stderr" or a file path
	// Verbose adds source locations to every level instead of warn/error only.
	Verbose bool
}

var (
	mu          sync.Mutex
	global      *slog.Logger
	atomicLevel = new(slog.LevelVar)
)

// ParseLevel maps a textual level to slog, defaulting to info.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Init builds the global logger from opts and installs it as slog's default.
func Init(opts Options) error {
	w, err := openWriter(opts.OutputPath)
	if err != nil {
		return err
	}
	atomicLevel.Set(ParseLevel(opts.Level))

	sourceLevels := []slog.Level{slog.LevelWarn, slog.LevelError}
	if opts.Verbose {
		sourceLevels = append(sourceLevels, slog.LevelDebug, slog.LevelInfo)
	}

	var base slog.Handler
	if strings.EqualFold(opts.Format, "json") {
		base = slog.NewJSONHandler(w, &slog.HandlerOptions{Level: atomicLevel})
	} else {
		base = newTintHandler(w, atomicLevel)
	}

	l := slog.New(NewConditionalSourceHandler(base, sourceLevels...))
	mu.Lock()
	global = l
	mu.Unlock()
	slog.SetDefault(l)
	return nil
}

func openWriter(path string) (io.Writer, error) {
	switch strings.ToLower(path) {
	case "", "stdout":
		return os.Stdout, nil
	case "stderr":
		return os.Stderr, nil
	}
	return os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
}

func newTintHandler(w io.Writer, level slog.Leveler) slog.Handler {
	return tint.NewHandler(w, &tint.Options{
		Level:      level,
		TimeFormat: time.DateTime,
		NoColor:    !isTerminal(w),
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			if a.Key == "error" && a.Value.Kind() == slog.KindAny {
				if err, ok := a.Value.Any().(error); ok {
					return tint.Err(err)
				}
			}
			return a
		},
	})
}

func isTerminal(w io.Writer) bool {
	if f, ok := w.(*os.File); ok {
		return term.IsTerminal(int(f.Fd()))
	}
	return false
}

// SetLevel changes the level of the global logger at runtime.
func SetLevel(level slog.Level) {
	atomicLevel.Set(level)
}

// Get returns the global logger, lazily creating a console logger if Init was never called.
func Get() *slog.Logger {
	mu.Lock()
	defer mu.Unlock()
	if global == nil {
		global = slog.New(NewConditionalSourceHandler(newTintHandler(os.Stdout, atomicLevel), slog.LevelWarn, slog.LevelError))
	}
	return global
}

// WithComponent returns a logger tagged with a component name.
func WithComponent(component string) Interface {
	return &slogLogger{l: Get().With("component", component)}
}

// Discard returns a logger that drops everything.
func Discard() Interface {
	return &slogLogger{l: slog.New(slog.NewTextHandler(io.Discard, nil))}
}
