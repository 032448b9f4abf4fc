package concurrency

import (
	"context"
	"fmt"
	"image"
	"log/slog"

	"qrstudio/internal/common"
	"qrstudio/internal/domain/render"

	"github.com/panjf2000/ants/v2"
)

// RenderResult is delivered once per submitted request
type RenderResult struct {
	Image *image.NRGBA
	Err   error
}

// RenderPool runs full-resolution renders off the event loop
type RenderPool struct {
	pool     *ants.Pool
	renderer render.Renderer
	logger   *slog.Logger
}

// NewRenderPool creates a pool with size workers
func NewRenderPool(size int, renderer render.Renderer, logger *slog.Logger) (*RenderPool, error) {
	if size <= 0 {
		size = common.DefaultRenderWorker
	}
	if size > common.MaxConcurrencyLimit {
		size = common.MaxConcurrencyLimit
	}

	pool, err := ants.NewPool(size, ants.WithPreAlloc(true))
	if err != nil {
		return nil, fmt.Errorf("failed to create worker pool: %w", err)
	}

	return &RenderPool{
		pool:     pool,
		renderer: renderer,
		logger:   logger,
	}, nil
}

// Submit renders req on a worker and passes the outcome to done on that worker.
// done is called exactly once, including when submission fails.
func (p *RenderPool) Submit(ctx context.Context, req render.Request, done func(RenderResult)) {
	err := p.pool.Submit(func() {
		defer func() {
			if r := recover(); r != nil {
				p.logger.Error("Render worker panicked", "panic", r)
				done(RenderResult{Err: common.NewRenderError("render", fmt.Errorf("%w: panic: %v", common.ErrRenderFailure, r))})
			}
		}()
		img, err := p.renderer.Render(ctx, req)
		done(RenderResult{Image: img, Err: err})
	})
	if err != nil {
		p.logger.Error("Failed to submit render", "error", err)
		done(RenderResult{Err: common.NewRenderError("submit", fmt.Errorf("%w: %v", common.ErrRenderFailure, err))})
	}
}

// Running reports the number of busy workers
func (p *RenderPool) Running() int {
	return p.pool.Running()
}

// Release stops the workers
func (p *RenderPool) Release() {
	p.pool.Release()
}
