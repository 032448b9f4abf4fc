package cli

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/charmbracelet/log"
)

// newLogger creates a charm logger with short timestamps
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// progress counts finished and failed cells of a batch and reports both
// with the elapsed time once the batch ends
type progress struct {
	logger *log.Logger
	start  time.Time
	total  int
	ok     int
	failed int
}

func newProgress(l *log.Logger, total int) *progress {
	return &progress{logger: l, start: time.Now(), total: total}
}

func (p *progress) succeeded() {
	p.ok++
}

func (p *progress) fail(what string, err error) {
	p.failed++
	p.logger.Error("Failed", "item", what, "position", p.ok+p.failed, "of", p.total, "err", err)
}

func (p *progress) done(msg string, keyvals ...any) {
	fields := []any{"elapsed", time.Since(p.start).Round(time.Millisecond)}
	if p.total > 1 {
		fields = append(fields, "ok", p.ok, "failed", p.failed, "total", p.total)
	}
	p.logger.Info(msg, append(fields, keyvals...)...)
}

type ctxKey int

const loggerKey ctxKey = 0

func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// loggerFromContext falls back to log.Default() when none is attached
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return l
	}
	return log.Default()
}

// slogFromContext adapts the charm logger for the services, which log through slog
func slogFromContext(ctx context.Context) *slog.Logger {
	return slog.New(loggerFromContext(ctx))
}
