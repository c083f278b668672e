// Package logger owns the process-wide zerolog logger.
//
// Call Init once during startup and Get from anywhere after that.
package logger

import (
	"io"
	"os"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// Options configures the logger at initialisation time.
type Options struct {
	// Level is the minimum level to emit: trace, debug, info, warn or
	// error. Anything unrecognised (including "") falls back to info.
	Level string
	// Pretty switches to zerolog's console writer for local development.
	// Leave false in production so the output stays machine-readable JSON.
	Pretty bool
	// Output defaults to os.Stdout when nil.
	Output io.Writer
}

var (
	mu   sync.Mutex
	inst *zerolog.Logger
)

// Init builds the shared logger. The first call wins; later calls return
// the already-built instance unchanged.
func Init(opts Options) zerolog.Logger {
	mu.Lock()
	defer mu.Unlock()
	if inst != nil {
		return *inst
	}

	zerolog.TimeFieldFormat = time.RFC3339Nano

	out := opts.Output
	if out == nil {
		out = os.Stdout
	}
	if opts.Pretty {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}
	}

	lvl, err := zerolog.ParseLevel(opts.Level)
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(lvl)

	l := zerolog.New(out).Level(lvl).With().Timestamp().Caller().Logger()
	inst = &l
	return l
}

// Get returns the shared logger. Panics when Init has not run yet, which
// always indicates a wiring mistake in main.
func Get() zerolog.Logger {
	mu.Lock()
	defer mu.Unlock()
	if inst == nil {
		panic("logger: Get called before Init")
	}
	return *inst
}

// Reset discards the shared logger so the next Init rebuilds it. Test
// helper only.
func Reset() {
	mu.Lock()
	defer mu.Unlock()
	inst = nil
}
