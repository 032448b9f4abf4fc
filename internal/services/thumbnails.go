package services

import (
	"context"
	"fmt"
	"image"
	"log/slog"
	"sync"

	"qrstudio/internal/catalog"
	"qrstudio/internal/colors"
	"qrstudio/internal/common"
	"qrstudio/internal/domain/gallery"
	"qrstudio/internal/domain/render"

	"github.com/disintegration/imaging"
)

type thumbKey struct {
	family string
	shape  render.ShapeKey
	zoom   int
	bg     string
}

// ThumbnailService renders gallery cells and keeps them until cleared
type ThumbnailService struct {
	catalog  *catalog.Catalog
	renderer render.Renderer
	checker  *CheckerboardCache
	logger   *slog.Logger

	mu      sync.Mutex
	entries map[thumbKey]*image.NRGBA
}

// NewThumbnailService creates a new thumbnail service
func NewThumbnailService(cat *catalog.Catalog, renderer render.Renderer, checker *CheckerboardCache, logger *slog.Logger) *ThumbnailService {
	return &ThumbnailService{
		catalog:  cat,
		renderer: renderer,
		checker:  checker,
		logger:   logger,
		entries:  make(map[thumbKey]*image.NRGBA),
	}
}

// ThumbnailBoxSize grows with zoom and never drops below 2 px per module
func ThumbnailBoxSize(zoomPx int) int {
	return max(2, zoomPx/30)
}

// ThumbnailCheckerSquare is the checkerboard tile used behind thumbnails
func ThumbnailCheckerSquare(zoomPx int) int {
	return max(4, zoomPx/18)
}

// Thumbnail returns the cached cell for item or renders it on a miss.
func (s *ThumbnailService) Thumbnail(ctx context.Context, item gallery.Item, zoomPx int, bg gallery.Background) (*image.NRGBA, error) {
	key := thumbKey{family: item.Family, shape: item.Shape, zoom: zoomPx, bg: bg.Hex}

	s.mu.Lock()
	cached, ok := s.entries[key]
	s.mu.Unlock()
	if ok {
		return cached, nil
	}

	preset, ok := s.catalog.Lookup(item.Family)
	if !ok {
		return nil, fmt.Errorf("%w: %s", common.ErrUnknownPreset, item.Family)
	}

	qr, err := s.renderer.Render(ctx, render.Request{
		Payload: common.ThumbnailPayload,
		Level:   render.ECMedium,
		Shape:   item.Shape,
		BoxSize: ThumbnailBoxSize(zoomPx),
		Border:  common.ThumbnailBorder,
		Color: render.ColorSpec{
			Mask:        render.MaskSolid,
			Foreground:  preset.Foreground,
			Transparent: true,
		},
	})
	if err != nil {
		return nil, err
	}

	// Fit only ever shrinks, so small symbols keep their native size.
	qr = imaging.Fit(qr, zoomPx, zoomPx, imaging.Lanczos)

	img, err := s.backdrop(qr.Bounds().Dx(), qr.Bounds().Dy(), zoomPx, bg)
	if err != nil {
		return nil, err
	}
	img = imaging.Overlay(img, qr, image.Pt(0, 0), 1.0)

	s.mu.Lock()
	s.entries[key] = img
	s.mu.Unlock()
	return img, nil
}

func (s *ThumbnailService) backdrop(w, h, zoomPx int, bg gallery.Background) (*image.NRGBA, error) {
	if bg.Transparent() {
		return s.checker.Get(w, h, ThumbnailCheckerSquare(zoomPx)), nil
	}
	c, err := colors.NRGBA(bg.Hex)
	if err != nil {
		return nil, fmt.Errorf("gallery background: %w", err)
	}
	return imaging.New(w, h, c), nil
}

// Len reports the number of cached thumbnails
func (s *ThumbnailService) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

// Clear drops cached thumbnails and checkerboards
func (s *ThumbnailService) Clear() {
	s.mu.Lock()
	s.entries = make(map[thumbKey]*image.NRGBA)
	s.mu.Unlock()
	s.checker.Clear()

	if s.logger != nil {
		s.logger.Debug("Thumbnail caches cleared")
	}
}
