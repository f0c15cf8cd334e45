package guard

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime"
	"sync/atomic"
	"time"

	"go.uber.org/zap/zapcore"
)

// DefaultMessage is reported by guards created without a message.
const DefaultMessage = "cannot unwind past stack frame"

// writeTimeout bounds how long a tripped guard spends on the diagnostic
// and the log record before killing the process anyway.
const writeTimeout = 100 * time.Millisecond

var (
	logger atomic.Pointer[slog.Logger]

	// Replaced only by tests.
	stderr    io.Writer = os.Stderr
	terminate           = abort
)

// SetLogger sets the logger that receives a record for every tripped
// guard. A nil logger disables logging, which is the default.
func SetLogger(l *slog.Logger) {
	logger.Store(l)
}

// Guard marks a region of code that must not be left by a panic.
type Guard struct {
	message string
	caller  zapcore.EntryCaller
}

// New creates a guard with the default message.
func New() *Guard {
	return newGuard("", 2)
}

// WithMessage creates a guard that reports message instead of the
// default one. An empty message is treated as no message at all and
// reports DefaultMessage, so a guard never prints a bare location.
func WithMessage(message string) *Guard {
	return newGuard(message, 2)
}

func newGuard(message string, skip int) *Guard {
	_, file, line, ok := runtime.Caller(skip)
	return &Guard{
		message: message,
		caller:  zapcore.EntryCaller{Defined: ok, File: file, Line: line},
	}
}

// Message returns the text reported when the guard trips.
func (g *Guard) Message() string {
	if g.message == "" {
		return DefaultMessage
	}
	return g.message
}

// Location returns where the guard was created as package-dir/file:line.
func (g *Guard) Location() string {
	return g.caller.TrimmedPath()
}

// Release ends the guarded region. It must be the deferred function
// itself (defer g.Release()); recover only reports a panic to a function
// called directly by the deferral. If the goroutine is panicking, Release
// reports the guard and kills the process. Otherwise it does nothing.
func (g *Guard) Release() {
	if r := recover(); r != nil {
		g.trip(r)
	}
}

// trip never returns. The stderr line is written first; the log record
// only gets whatever time is left.
func (g *Guard) trip(reason any) {
	out, l := stderr, logger.Load()
	line := fmt.Sprintf("%s at %s\n", g.Message(), g.Location())

	ctx, cancel := context.WithTimeout(context.Background(), writeTimeout)
	defer cancel()

	bestEffort(ctx, func() {
		_, _ = io.WriteString(out, line)
	})
	if l != nil && ctx.Err() == nil {
		bestEffort(ctx, func() {
			l.ErrorContext(ctx, "Guard tripped by panic",
				"message", g.Message(),
				"location", g.Location(),
				"panic", fmt.Sprint(reason),
			)
		})
	}

	terminate()
}

// bestEffort runs fn on its own goroutine and waits until it finishes or
// ctx is done. A panic in fn is dropped.
func bestEffort(ctx context.Context, fn func()) {
	done := make(chan struct{})
	go func() {
		defer close(done)
		defer func() { _ = recover() }()
		fn()
	}()

	select {
	case <-done:
	case <-ctx.Done():
	}
}
