// Package generator coalesces setting changes into full-resolution renders.
//
// Every change restarts a quiet-period timer. When it fires, the current
// settings are validated and compared with the last successful signature;
// only a new signature starts a render. Renders run on the pool and their
// results are applied on the event loop only if no newer render has started.
package generator

import (
	"context"
	"errors"
	"image"
	"log/slog"
	"time"

	"qrstudio/internal/catalog"
	"qrstudio/internal/common"
	"qrstudio/internal/concurrency"
	"qrstudio/internal/domain/generation"
	"qrstudio/internal/domain/render"
	"qrstudio/internal/eventloop"

	"github.com/bep/debounce"
)

// Submitter runs a render away from the event loop
type Submitter interface {
	Submit(ctx context.Context, req render.Request, done func(concurrency.RenderResult))
}

// Snapshot is a consistent view of generator state
type Snapshot struct {
	Settings  generation.Settings
	State     generation.State
	Image     *image.NRGBA
	Signature *generation.Signature
}

// Generator is the debounced full-resolution generator
type Generator struct {
	ctx       context.Context
	loop      *eventloop.Loop
	pool      Submitter
	validator generation.Validator
	listener  generation.Listener
	logger    *slog.Logger
	debounced func(func())

	// Owned by the loop goroutine.
	settings    generation.Settings
	state       generation.State
	seq         uint64
	timerArmed  bool
	token       uint64
	inflight    bool
	inflightSig generation.Signature
	last        *generation.Signature
	image       *image.NRGBA
}

// New creates a generator in the Idle state with default settings
func New(ctx context.Context, loop *eventloop.Loop, pool Submitter, validator generation.Validator,
	listener generation.Listener, quiet time.Duration, logger *slog.Logger) *Generator {
	return &Generator{
		ctx:       ctx,
		loop:      loop,
		pool:      pool,
		validator: validator,
		listener:  listener,
		logger:    logger,
		debounced: debounce.New(quiet),
		settings:  generation.DefaultSettings(),
		state:     generation.StateIdle,
	}
}

// Change replaces the settings and restarts the quiet period
func (g *Generator) Change(s generation.Settings) error {
	return g.loop.Post(func() {
		g.settings = s
		g.changed()
	})
}

// Update applies mutate to the current settings and restarts the quiet period
func (g *Generator) Update(mutate func(*generation.Settings)) error {
	return g.loop.Post(func() {
		mutate(&g.settings)
		g.changed()
	})
}

// SetInput sets the text and its type
func (g *Generator) SetInput(text string, kind generation.InputType) error {
	return g.Update(func(s *generation.Settings) {
		s.Input = text
		s.Type = kind
	})
}

// SetColors sets manual colors and drops any preset gradient
func (g *Generator) SetColors(fg, bg string) error {
	return g.Update(func(s *generation.Settings) {
		s.Foreground = fg
		s.Background = bg
		s.Gradient = nil
	})
}

// SetShape sets the module shape
func (g *Generator) SetShape(shape render.ShapeKey) error {
	return g.Update(func(s *generation.Settings) { s.Shape = shape })
}

// SetTransparent toggles the transparent off-module area
func (g *Generator) SetTransparent(on bool) error {
	return g.Update(func(s *generation.Settings) { s.Transparent = on })
}

// SetLevel sets the error-correction level
func (g *Generator) SetLevel(level render.ECLevel) error {
	return g.Update(func(s *generation.Settings) { s.Level = level })
}

// SetBoxSize sets pixels per module, clamped to the supported range
func (g *Generator) SetBoxSize(box int) error {
	return g.Update(func(s *generation.Settings) {
		s.BoxSize = common.Clamp(box, common.MinBoxSize, common.MaxBoxSize)
	})
}

// SetBorder sets the quiet zone in modules, clamped to the supported range
func (g *Generator) SetBorder(border int) error {
	return g.Update(func(s *generation.Settings) {
		s.Border = common.Clamp(border, common.MinBorder, common.MaxBorder)
	})
}

// SelectPreset applies a gallery style to the current settings
func (g *Generator) SelectPreset(p catalog.StylePreset, shape render.ShapeKey) error {
	return g.Update(func(s *generation.Settings) { ApplyPreset(s, p, shape) })
}

// ApplyPreset copies a gallery style into s. Transparency is always turned on;
// the preset background only seeds the background color for later opaque use.
func ApplyPreset(s *generation.Settings, p catalog.StylePreset, shape render.ShapeKey) {
	s.Foreground = p.Foreground
	s.Background = p.Background
	if s.Background == "" {
		s.Background = common.DefaultBackground
	}
	s.Transparent = true
	s.Shape = shape
	s.Gradient = nil
	if p.Mask.IsGradient() && p.Gradient != nil {
		s.Gradient = &generation.GradientConfig{Mask: p.Mask, Colors: *p.Gradient}
	}
}

// Reset starts a new QR: default settings, no image, nothing pending
func (g *Generator) Reset() error {
	return g.loop.Post(func() {
		g.seq++
		g.token++
		g.debounced(func() {})
		g.timerArmed = false
		g.inflight = false
		g.settings = generation.DefaultSettings()
		g.last = nil
		g.image = nil
		g.logger.Info("Generator reset")
		g.setState()
	})
}

// Snapshot returns the current state
func (g *Generator) Snapshot(ctx context.Context) (Snapshot, error) {
	var snap Snapshot
	err := g.loop.Do(ctx, func() {
		snap = Snapshot{
			Settings: g.settings,
			State:    g.state,
			Image:    g.image,
		}
		if g.last != nil {
			sig := *g.last
			snap.Signature = &sig
		}
	})
	return snap, err
}

// Payload returns the formatted payload of the current input
func (g *Generator) Payload(ctx context.Context) (string, error) {
	var payload string
	var perr error
	if err := g.loop.Do(ctx, func() {
		payload, perr = g.validator.Payload(g.settings.Input, g.settings.Type)
	}); err != nil {
		return "", err
	}
	return payload, perr
}

// changed runs on the loop after any settings edit
func (g *Generator) changed() {
	g.seq++
	seq := g.seq

	if err := g.validator.Validate(g.settings.Input, g.settings.Type); err != nil {
		g.debounced(func() {})
		g.timerArmed = false
		g.logger.Debug("Input not valid, generation not scheduled", "reason", err)
		g.setState()
		return
	}

	g.timerArmed = true
	g.debounced(func() {
		g.loop.Post(func() { g.fire(seq) })
	})
	g.setState()
}

// fire runs on the loop when the quiet period for change seq ends
func (g *Generator) fire(seq uint64) {
	if seq != g.seq {
		return
	}
	g.timerArmed = false
	defer g.setState()

	payload, err := g.validator.Payload(g.settings.Input, g.settings.Type)
	if err != nil {
		g.logger.Debug("Input not valid at fire time", "reason", err)
		return
	}

	sig := g.settings.Signature()
	if g.last != nil && *g.last == sig {
		// The settings are back to what is displayed; a render for anything
		// else must not land on top of them.
		g.supersede(sig)
		g.logger.Debug("Signature unchanged, skipping generation")
		return
	}
	if g.inflight && g.inflightSig == sig {
		g.logger.Debug("Identical generation already running")
		return
	}

	g.token++
	token := g.token
	g.inflight = true
	g.inflightSig = sig

	req := render.Request{
		Payload: payload,
		Level:   g.settings.Level,
		Shape:   g.settings.Shape,
		BoxSize: g.settings.BoxSize,
		Border:  g.settings.Border,
		Color:   g.settings.ColorSpec(),
	}

	g.logger.Debug("Starting generation", "token", token, "shape", req.Shape, "box_size", req.BoxSize)
	g.pool.Submit(g.ctx, req, func(res concurrency.RenderResult) {
		if err := g.loop.Post(func() { g.finish(token, sig, res) }); err != nil {
			g.logger.Warn("Dropping render result", "token", token, "error", err)
		}
	})
}

// supersede invalidates a running render whose signature differs from sig
func (g *Generator) supersede(sig generation.Signature) {
	if !g.inflight || g.inflightSig == sig {
		return
	}
	g.logger.Debug("Superseding running generation", "token", g.token)
	g.token++
	g.inflight = false
}

// finish applies a render result if it belongs to the latest generation
func (g *Generator) finish(token uint64, sig generation.Signature, res concurrency.RenderResult) {
	if token != g.token {
		g.logger.Debug("Discarding stale generation", "token", token, "latest", g.token)
		return
	}
	g.inflight = false
	defer g.setState()

	if res.Err != nil {
		if errors.Is(res.Err, common.ErrCapacityExceeded) {
			g.logger.Warn("Payload too long for error correction level", "level", sig.Level, "error", res.Err)
		} else {
			g.logger.Error("Generation failed", "error", res.Err)
		}
		g.listener.OnGenerationFailed(res.Err)
		return
	}

	g.last = &sig
	g.image = res.Image
	g.logger.Info("QR code generated", "width", res.Image.Bounds().Dx(), "shape", sig.Shape)
	g.listener.OnGenerationComplete(res.Image, sig)
}

func (g *Generator) setState() {
	next := generation.StateIdle
	switch {
	case g.timerArmed:
		next = generation.StatePendingTimer
	case g.inflight:
		next = generation.StateGenerating
	}
	if next == g.state {
		return
	}
	g.state = next
	g.listener.OnGenerationState(next)
}
