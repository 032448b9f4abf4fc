package generator

import (
	"context"
	"errors"
	"image"
	"log/slog"
	"sync"
	"testing"
	"time"

	"qrstudio/internal/catalog"
	"qrstudio/internal/common"
	"qrstudio/internal/concurrency"
	"qrstudio/internal/domain/generation"
	"qrstudio/internal/domain/render"
	"qrstudio/internal/eventloop"
	"qrstudio/internal/services"
)

const quiet = 20 * time.Millisecond

type fakePool struct {
	auto      bool
	fail      error
	mu        sync.Mutex
	reqs      []render.Request
	dones     []func(concurrency.RenderResult)
	submitted chan render.Request
}

func newFakePool(auto bool) *fakePool {
	return &fakePool{auto: auto, submitted: make(chan render.Request, 32)}
}

// imageFor encodes the payload length in the width so tests can tell results apart.
func imageFor(req render.Request) *image.NRGBA {
	return image.NewNRGBA(image.Rect(0, 0, len(req.Payload), 1))
}

func (p *fakePool) Submit(ctx context.Context, req render.Request, done func(concurrency.RenderResult)) {
	p.mu.Lock()
	p.reqs = append(p.reqs, req)
	p.dones = append(p.dones, done)
	fail := p.fail
	p.mu.Unlock()

	p.submitted <- req
	if p.auto {
		go func() {
			if fail != nil {
				done(concurrency.RenderResult{Err: fail})
				return
			}
			done(concurrency.RenderResult{Image: imageFor(req)})
		}()
	}
}

func (p *fakePool) count() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.reqs)
}

func (p *fakePool) setFail(err error) {
	p.mu.Lock()
	p.fail = err
	p.mu.Unlock()
}

func (p *fakePool) complete(i int) {
	p.mu.Lock()
	req, done := p.reqs[i], p.dones[i]
	p.mu.Unlock()
	done(concurrency.RenderResult{Image: imageFor(req)})
}

type completion struct {
	img *image.NRGBA
	sig generation.Signature
}

type fakeListener struct {
	completed chan completion
	failed    chan error
	mu        sync.Mutex
	states    []generation.State
}

func newFakeListener() *fakeListener {
	return &fakeListener{
		completed: make(chan completion, 16),
		failed:    make(chan error, 16),
	}
}

func (l *fakeListener) OnGenerationState(s generation.State) {
	l.mu.Lock()
	l.states = append(l.states, s)
	l.mu.Unlock()
}

func (l *fakeListener) OnGenerationComplete(img *image.NRGBA, sig generation.Signature) {
	l.completed <- completion{img: img, sig: sig}
}

func (l *fakeListener) OnGenerationFailed(reason error) {
	l.failed <- reason
}

func (l *fakeListener) sawState(s generation.State) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, got := range l.states {
		if got == s {
			return true
		}
	}
	return false
}

func setup(t *testing.T, pool *fakePool) (*Generator, *fakeListener) {
	t.Helper()
	loop := eventloop.New(nil)
	t.Cleanup(loop.Stop)

	listener := newFakeListener()
	logger := slog.New(slog.DiscardHandler)
	g := New(context.Background(), loop, pool, services.NewInputValidator(), listener, quiet, logger)
	return g, listener
}

func waitCompletion(t *testing.T, l *fakeListener) completion {
	t.Helper()
	select {
	case c := <-l.completed:
		return c
	case <-time.After(2 * time.Second):
		t.Fatal("Timed out waiting for generation")
		return completion{}
	}
}

func waitSubmit(t *testing.T, p *fakePool) render.Request {
	t.Helper()
	select {
	case req := <-p.submitted:
		return req
	case <-time.After(2 * time.Second):
		t.Fatal("Timed out waiting for render submission")
		return render.Request{}
	}
}

// settle waits long enough for any pending quiet period to fire.
func settle() {
	time.Sleep(quiet * 6)
}

func TestBurstOfChangesRendersOnlyTheLast(t *testing.T) {
	pool := newFakePool(true)
	g, l := setup(t, pool)

	for _, url := range []string{"https://a.io/1", "https://a.io/12", "https://a.io/123", "https://a.io/1234"} {
		if err := g.SetInput(url, generation.InputURL); err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}
	}

	c := waitCompletion(t, l)
	settle()

	if got := pool.count(); got != 1 {
		t.Fatalf("Expected exactly 1 render, got %d", got)
	}
	if c.sig.Input != "https://a.io/1234" {
		t.Errorf("Expected last input to be rendered, got %q", c.sig.Input)
	}
	if !l.sawState(generation.StatePendingTimer) || !l.sawState(generation.StateGenerating) {
		t.Error("Expected generator to pass through pending and generating states")
	}
}

func TestUnchangedSignatureSkipsRender(t *testing.T) {
	pool := newFakePool(true)
	g, l := setup(t, pool)

	g.SetInput("https://example.com", generation.InputURL)
	waitCompletion(t, l)

	g.SetInput("https://example.com", generation.InputURL)
	settle()
	if got := pool.count(); got != 1 {
		t.Errorf("Expected unchanged signature to skip rendering, got %d renders", got)
	}

	// Toggle away and back: the intermediate state never renders.
	g.SetShape(render.ShapeCircle)
	g.SetShape(render.ShapeSquare)
	settle()
	if got := pool.count(); got != 1 {
		t.Errorf("Expected toggling back to skip rendering, got %d renders", got)
	}

	g.SetShape(render.ShapeCircle)
	c := waitCompletion(t, l)
	if c.sig.Shape != render.ShapeCircle || pool.count() != 2 {
		t.Errorf("Expected a second render for the new shape, got %d renders", pool.count())
	}

	snap, err := g.Snapshot(context.Background())
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if snap.State != generation.StateIdle {
		t.Errorf("Expected Idle after completion, got %s", snap.State)
	}
}

func TestInvalidInputSchedulesNothing(t *testing.T) {
	tests := []struct {
		name  string
		input string
		kind  generation.InputType
	}{
		{"bare word url", "abc", generation.InputURL},
		{"empty url", "", generation.InputURL},
		{"empty text", "", generation.InputText},
		{"short phone", "123", generation.InputPhone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pool := newFakePool(true)
			g, l := setup(t, pool)

			g.SetInput(tt.input, tt.kind)
			settle()

			if got := pool.count(); got != 0 {
				t.Errorf("Expected no renders, got %d", got)
			}
			if l.sawState(generation.StatePendingTimer) {
				t.Error("Expected no quiet-period timer for invalid input")
			}
		})
	}
}

func TestInvalidInputCancelsPendingTimer(t *testing.T) {
	pool := newFakePool(true)
	g, _ := setup(t, pool)

	g.SetInput("https://example.com", generation.InputURL)
	g.SetInput("https://", generation.InputURL)
	settle()

	if got := pool.count(); got != 0 {
		t.Errorf("Expected pending generation to be cancelled, got %d renders", got)
	}
}

func TestStaleResultsAreDiscarded(t *testing.T) {
	pool := newFakePool(false)
	g, l := setup(t, pool)

	g.SetInput("https://first.example", generation.InputURL)
	waitSubmit(t, pool)

	g.SetInput("https://second.example.org", generation.InputURL)
	waitSubmit(t, pool)

	// The older render finishes first; it must never be shown.
	pool.complete(0)
	pool.complete(1)

	c := waitCompletion(t, l)
	if c.sig.Input != "https://second.example.org" {
		t.Errorf("Expected newest generation to win, got %q", c.sig.Input)
	}

	select {
	case extra := <-l.completed:
		t.Errorf("Expected stale result to be discarded, got %q", extra.sig.Input)
	case <-time.After(quiet * 3):
	}

	snap, _ := g.Snapshot(context.Background())
	if snap.Image == nil || snap.Image.Bounds().Dx() != len("https://second.example.org") {
		t.Error("Expected current image to be the newest render")
	}
}

func TestReturningToDisplayedSettingsDropsRunningRender(t *testing.T) {
	pool := newFakePool(false)
	g, l := setup(t, pool)

	const first = "https://a.example"
	const second = "https://bbbbbbbb.example"

	g.SetInput(first, generation.InputURL)
	waitSubmit(t, pool)
	pool.complete(0)
	waitCompletion(t, l)

	g.SetInput(second, generation.InputURL)
	waitSubmit(t, pool)

	// Back to the displayed input while the second render is still running.
	g.SetInput(first, generation.InputURL)
	settle()
	pool.complete(1)

	select {
	case extra := <-l.completed:
		t.Errorf("Expected superseded render to be discarded, got %q", extra.sig.Input)
	case <-time.After(quiet * 3):
	}

	snap, err := g.Snapshot(context.Background())
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if snap.Settings.Input != first {
		t.Errorf("Expected input %q, got %q", first, snap.Settings.Input)
	}
	if snap.Signature == nil || snap.Signature.Input != first {
		t.Errorf("Expected last signature to stay at %q, got %+v", first, snap.Signature)
	}
	if snap.Image == nil || snap.Image.Bounds().Dx() != len(first) {
		t.Error("Expected displayed image to match the current settings")
	}
	if snap.State != generation.StateIdle {
		t.Errorf("Expected Idle, got %s", snap.State)
	}
	if got := pool.count(); got != 2 {
		t.Errorf("Expected 2 renders, got %d", got)
	}
}

func TestFailureKeepsPreviousImage(t *testing.T) {
	pool := newFakePool(true)
	g, l := setup(t, pool)

	g.SetInput("https://example.com", generation.InputURL)
	first := waitCompletion(t, l)

	pool.setFail(common.NewRenderError("encode", common.ErrCapacityExceeded))
	g.SetLevel(render.ECHigh)

	select {
	case err := <-l.failed:
		if !errors.Is(err, common.ErrCapacityExceeded) {
			t.Errorf("Expected ErrCapacityExceeded, got %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Timed out waiting for failure")
	}

	snap, err := g.Snapshot(context.Background())
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if snap.Image != first.img {
		t.Error("Expected previous image to remain after a failed generation")
	}
	if snap.Signature == nil || snap.Signature.Level != render.ECMedium {
		t.Error("Expected last signature to stay at the last success")
	}
	if snap.State != generation.StateIdle {
		t.Errorf("Expected Idle after failure, got %s", snap.State)
	}

	// The same failing signature is retried on the next trigger.
	pool.setFail(nil)
	g.SetBorder(2)
	g.SetBorder(4)
	waitCompletion(t, l)
	if got := pool.count(); got != 3 {
		t.Errorf("Expected retry after failure, got %d renders", got)
	}
}

func TestPhonePayloadIsFormatted(t *testing.T) {
	pool := newFakePool(true)
	g, l := setup(t, pool)

	g.SetInput("(555) 123-4567", generation.InputPhone)
	waitCompletion(t, l)

	req := <-pool.submitted
	if req.Payload != "tel:+5551234567" {
		t.Errorf("Expected tel:+5551234567, got %q", req.Payload)
	}

	payload, err := g.Payload(context.Background())
	if err != nil || payload != "tel:+5551234567" {
		t.Errorf("Expected formatted payload, got %q, %v", payload, err)
	}
}

func TestSelectPreset(t *testing.T) {
	pool := newFakePool(true)
	g, l := setup(t, pool)

	var gradient catalog.StylePreset
	for _, p := range catalog.Default().All() {
		if p.Mask == render.MaskRadial {
			gradient = p
			break
		}
	}
	if gradient.Name == "" {
		t.Fatal("Expected at least one radial preset")
	}

	g.SetInput("https://example.com", generation.InputURL)
	g.SetTransparent(false)
	g.SelectPreset(gradient, gradient.Shapes[0])
	waitCompletion(t, l)

	req := <-pool.submitted
	if req.Color.Mask != render.MaskRadial || req.Color.Gradient != *gradient.Gradient {
		t.Errorf("Expected radial gradient colors, got %+v", req.Color)
	}
	if !req.Color.Transparent {
		t.Error("Expected selecting a preset to force transparency")
	}
	if req.Shape != gradient.Shapes[0] {
		t.Errorf("Expected shape %s, got %s", gradient.Shapes[0], req.Shape)
	}

	g.SetColors("#112233", "#FFFFFF")
	waitCompletion(t, l)
	req = <-pool.submitted
	if req.Color.Mask != render.MaskSolid || req.Color.Foreground != "#112233" {
		t.Errorf("Expected manual colors to clear the gradient, got %+v", req.Color)
	}
}

func TestBoxAndBorderAreClamped(t *testing.T) {
	pool := newFakePool(true)
	g, l := setup(t, pool)

	g.SetInput("https://example.com", generation.InputURL)
	g.SetBoxSize(99)
	g.SetBorder(-5)
	waitCompletion(t, l)

	req := <-pool.submitted
	if req.BoxSize != common.MaxBoxSize || req.Border != common.MinBorder {
		t.Errorf("Expected clamped box %d and border %d, got %d and %d",
			common.MaxBoxSize, common.MinBorder, req.BoxSize, req.Border)
	}
}

func TestReset(t *testing.T) {
	pool := newFakePool(true)
	g, l := setup(t, pool)

	g.SetInput("https://example.com", generation.InputURL)
	waitCompletion(t, l)

	if err := g.Reset(); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	snap, err := g.Snapshot(context.Background())
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if snap.Image != nil || snap.Signature != nil {
		t.Error("Expected reset to clear image and signature")
	}
	if snap.Settings != generation.DefaultSettings() {
		t.Errorf("Expected default settings, got %+v", snap.Settings)
	}

	// After reset the same input renders again.
	g.SetInput("https://example.com", generation.InputURL)
	waitCompletion(t, l)
	if got := pool.count(); got != 2 {
		t.Errorf("Expected a fresh render after reset, got %d renders", got)
	}
}
