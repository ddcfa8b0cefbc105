package logging

import (
	"context"
	"os"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/term"
)

// ZerologLogger implements Logger on top of a zerolog.Logger.
type ZerologLogger struct {
	l zerolog.Logger
}

// NewZerologLogger wraps an existing zerolog.Logger.
func NewZerologLogger(l zerolog.Logger) *ZerologLogger {
	return &ZerologLogger{l: l}
}

// NewDefault builds the standard application logger. Output is JSON on
// stderr; when stderr is an interactive terminal the human-readable console
// writer is used instead so REPL output stays legible.
func NewDefault(debug bool) *ZerologLogger {
	level := zerolog.InfoLevel
	if debug {
		level = zerolog.DebugLevel
	}

	logger := zerolog.New(os.Stderr).Level(level).With().Timestamp().Logger()

	if term.IsTerminal(int(os.Stderr.Fd())) {
		logger = logger.Output(zerolog.ConsoleWriter{
			Out:        os.Stderr,
			TimeFormat: time.RFC3339,
		})
	}

	return &ZerologLogger{l: logger}
}

// NewNop returns a logger that discards everything. Intended for tests.
func NewNop() *ZerologLogger {
	return &ZerologLogger{l: zerolog.Nop()}
}

func (z *ZerologLogger) Debug(ctx context.Context, msg string, args ...any) {
	z.l.Debug().Fields(fields(args)).Msg(msg)
}

func (z *ZerologLogger) Info(ctx context.Context, msg string, args ...any) {
	z.l.Info().Fields(fields(args)).Msg(msg)
}

func (z *ZerologLogger) Warn(ctx context.Context, msg string, args ...any) {
	z.l.Warn().Fields(fields(args)).Msg(msg)
}

func (z *ZerologLogger) Error(ctx context.Context, msg string, args ...any) {
	z.l.Error().Fields(fields(args)).Msg(msg)
}

func (z *ZerologLogger) With(args ...any) Logger {
	return &ZerologLogger{l: z.l.With().Fields(fields(args)).Logger()}
}

// fields drops a trailing unpaired value so zerolog never panics on an odd
// key–value list.
func fields(args []any) []any {
	if len(args)%2 != 0 {
		return args[:len(args)-1]
	}
	return args
}
