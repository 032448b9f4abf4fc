// Package eventloop runs posted closures one at a time on a single goroutine.
//
// State owned by the loop (gallery cursor, generator signature, caches) needs
// no locking as long as it is only touched from posted work.
package eventloop

import (
	"context"
	"errors"
	"log/slog"
	"sync"
)

// ErrStopped is returned when work is posted after Stop
var ErrStopped = errors.New("event loop stopped")

// Loop is a cooperative single-threaded executor.
// Post never blocks, so tasks may freely post follow-up work.
type Loop struct {
	wake   chan struct{}
	done   chan struct{}
	stop   sync.Once
	logger *slog.Logger

	mu      sync.Mutex
	pending []func()
	stopped bool
}

// New creates and starts a loop
func New(logger *slog.Logger) *Loop {
	l := &Loop{
		wake:   make(chan struct{}, 1),
		done:   make(chan struct{}),
		logger: logger,
	}
	go l.run()
	return l
}

func (l *Loop) run() {
	defer close(l.done)
	for {
		l.mu.Lock()
		batch := l.pending
		l.pending = nil
		stopped := l.stopped
		l.mu.Unlock()

		if len(batch) == 0 {
			if stopped {
				return
			}
			<-l.wake
			continue
		}
		for _, fn := range batch {
			l.exec(fn)
		}
	}
}

func (l *Loop) exec(fn func()) {
	defer func() {
		if r := recover(); r != nil && l.logger != nil {
			l.logger.Error("Recovered panic in event loop task", "panic", r)
		}
	}()
	fn()
}

func (l *Loop) signal() {
	select {
	case l.wake <- struct{}{}:
	default:
	}
}

// Post queues fn to run after everything already queued
func (l *Loop) Post(fn func()) error {
	l.mu.Lock()
	if l.stopped {
		l.mu.Unlock()
		return ErrStopped
	}
	l.pending = append(l.pending, fn)
	l.mu.Unlock()

	l.signal()
	return nil
}

// Len reports how many tasks are waiting to run
func (l *Loop) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.pending)
}

// Do runs fn on the loop and waits for it to finish.
// It must not be called from a task already running on the loop.
func (l *Loop) Do(ctx context.Context, fn func()) error {
	finished := make(chan struct{})
	if err := l.Post(func() {
		defer close(finished)
		fn()
	}); err != nil {
		return err
	}

	select {
	case <-finished:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Stop runs already queued work and waits for the loop goroutine to exit
func (l *Loop) Stop() {
	l.stop.Do(func() {
		l.mu.Lock()
		l.stopped = true
		l.mu.Unlock()
		l.signal()
	})
	<-l.done
}
