package services

import (
	"context"
	"errors"
	"image"
	"sync/atomic"
	"testing"

	"qrstudio/internal/catalog"
	"qrstudio/internal/common"
	"qrstudio/internal/domain/gallery"
	"qrstudio/internal/domain/render"
)

type countingRenderer struct {
	inner render.Renderer
	calls atomic.Int32
	last  render.Request
}

func (c *countingRenderer) Render(ctx context.Context, req render.Request) (*image.NRGBA, error) {
	c.calls.Add(1)
	c.last = req
	return c.inner.Render(ctx, req)
}

func newThumbnailService(t *testing.T) (*ThumbnailService, *countingRenderer) {
	t.Helper()
	r := &countingRenderer{inner: NewQRRenderer(nil)}
	return NewThumbnailService(catalog.Default(), r, NewCheckerboardCache(), nil), r
}

func TestThumbnailBoxSizeMonotonic(t *testing.T) {
	prev := 0
	for zoom := common.GalleryZoomMin; zoom <= common.GalleryZoomMax; zoom += common.GalleryZoomStep {
		box := ThumbnailBoxSize(zoom)
		if box < 2 {
			t.Errorf("Zoom %d: box size %d below minimum", zoom, box)
		}
		if box < prev {
			t.Errorf("Zoom %d: box size %d shrank from %d", zoom, box, prev)
		}
		prev = box
	}
}

func TestThumbnailCachesByKey(t *testing.T) {
	svc, r := newThumbnailService(t)
	item := gallery.Item{Family: "Transparent Black", Shape: render.ShapeSquare}
	bg := gallery.Backgrounds[0]

	first, err := svc.Thumbnail(context.Background(), item, 160, bg)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	second, err := svc.Thumbnail(context.Background(), item, 160, bg)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if first != second {
		t.Error("Expected cached thumbnail on second call")
	}
	if got := r.calls.Load(); got != 1 {
		t.Errorf("Expected 1 render, got %d", got)
	}

	if _, err := svc.Thumbnail(context.Background(), item, 120, bg); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if got := r.calls.Load(); got != 2 {
		t.Errorf("Expected a new render for a new zoom, got %d renders", got)
	}

	svc.Clear()
	if svc.Len() != 0 {
		t.Errorf("Expected empty cache after Clear, got %d", svc.Len())
	}
}

func TestThumbnailRequest(t *testing.T) {
	svc, r := newThumbnailService(t)
	item := gallery.Item{Family: "Transparent Red", Shape: render.ShapeCircle}

	if _, err := svc.Thumbnail(context.Background(), item, 180, gallery.Backgrounds[0]); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	req := r.last
	if req.Payload != common.ThumbnailPayload {
		t.Errorf("Expected example payload, got %q", req.Payload)
	}
	if req.BoxSize != 6 || req.Border != 1 || req.Level != render.ECMedium {
		t.Errorf("Unexpected thumbnail request %+v", req)
	}
	if req.Color.Foreground != "#DC2626" || !req.Color.Transparent {
		t.Errorf("Expected transparent preset foreground, got %+v", req.Color)
	}
}

func TestThumbnailBackdrops(t *testing.T) {
	svc, _ := newThumbnailService(t)
	item := gallery.Item{Family: "Transparent Black", Shape: render.ShapeSquare}

	checker, err := svc.Thumbnail(context.Background(), item, 160, gallery.Background{Name: "Transparent"})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if px := checker.NRGBAAt(0, 0); px.R != 220 || px.A != 255 {
		t.Errorf("Expected checkerboard base at origin, got %v", px)
	}

	solid, err := svc.Thumbnail(context.Background(), item, 160, gallery.Background{Name: "Dark Gray", Hex: "#333333"})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if px := solid.NRGBAAt(0, 0); px.R != 0x33 || px.A != 255 {
		t.Errorf("Expected dark gray backdrop at origin, got %v", px)
	}

	if solid.Bounds().Dx() > 160 || checker.Bounds().Dx() > 160 {
		t.Error("Expected thumbnails to fit within the zoom size")
	}
}

func TestThumbnailUnknownPreset(t *testing.T) {
	svc, _ := newThumbnailService(t)
	item := gallery.Item{Family: "Missing", Shape: render.ShapeSquare}

	_, err := svc.Thumbnail(context.Background(), item, 160, gallery.Backgrounds[0])
	if !errors.Is(err, common.ErrUnknownPreset) {
		t.Errorf("Expected ErrUnknownPreset, got %v", err)
	}
}
