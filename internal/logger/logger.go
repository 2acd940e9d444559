// Package logger configures the process-wide zerolog logger.
package logger

import (
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

var (
	mu     sync.RWMutex
	global = zerolog.New(os.Stdout).With().Timestamp().Logger()
)

// Init sets the global log level and output format.
// Unknown levels fall back to info. When pretty is true a human-readable console
// writer is used instead of JSON.
func Init(level string, pretty bool) {
	var out io.Writer = os.Stdout
	if pretty {
		out = zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}
	}
	InitWithWriter(level, out)
}

// InitWithWriter is Init with an explicit writer. Used by tests to capture output.
func InitWithWriter(level string, out io.Writer) {
	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}

	zerolog.SetGlobalLevel(lvl)
	zerolog.TimeFieldFormat = time.RFC3339Nano

	l := zerolog.New(out).With().Timestamp().Str("service", "delivery").Logger()

	mu.Lock()
	global = l
	mu.Unlock()

	log.Logger = l
}

// Logger returns the configured logger.
func Logger() *zerolog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	l := global
	return &l
}
