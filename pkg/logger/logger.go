// Package logger wraps zerolog behind an init-once singleton. Call Setup
// early in main, then New anywhere a component wants its own tagged logger.
package logger

import (
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// Options controls log output at process start.
type Options struct {
	// Level is the minimum level: debug, info, warn, error. Unrecognised
	// values fall back to info.
	Level string
	// Pretty switches to the human console writer; leave false in
	// production for plain JSON.
	Pretty bool
	// Output defaults to os.Stdout.
	Output io.Writer
}

var (
	root zerolog.Logger
	once sync.Once
	set  bool
)

// Setup initialises the root logger. Only the first call takes effect.
func Setup(opts Options) zerolog.Logger {
	once.Do(func() {
		zerolog.TimeFieldFormat = time.RFC3339

		out := opts.Output
		if out == nil {
			out = os.Stdout
		}
		if opts.Pretty {
			out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.Kitchen}
		}

		level := parseLevel(opts.Level)
		zerolog.SetGlobalLevel(level)

		root = zerolog.New(out).Level(level).With().Timestamp().Logger()
		set = true
	})
	return root
}

// New returns the root logger tagged with a component name. Panics when
// Setup has not run.
func New(component string) zerolog.Logger {
	if !set {
		panic("logger: New called before Setup")
	}
	return root.With().Str("component", component).Logger()
}

func parseLevel(s string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return zerolog.DebugLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}
