package services

import (
	"image"

	"github.com/disintegration/imaging"
)

// minPreviewCanvas is the smallest canvas edge worth drawing into.
const minPreviewCanvas = 10

// PreviewService scales the generated image for the preview pane
type PreviewService struct {
	checker *CheckerboardCache
}

// NewPreviewService creates a new preview service
func NewPreviewService(checker *CheckerboardCache) *PreviewService {
	return &PreviewService{checker: checker}
}

// Scale fits img into zoomPercent of the smaller canvas edge and composites it
// onto a checkerboard. It returns nil when the canvas is too small to draw.
func (s *PreviewService) Scale(img *image.NRGBA, canvasW, canvasH, zoomPercent int) *image.NRGBA {
	if img == nil || canvasW < minPreviewCanvas || canvasH < minPreviewCanvas {
		return nil
	}

	maxSize := min(canvasW, canvasH) * zoomPercent / 100
	b := img.Bounds()
	scale := min(float64(maxSize)/float64(b.Dx()), float64(maxSize)/float64(b.Dy()))
	newW := int(float64(b.Dx()) * scale)
	newH := int(float64(b.Dy()) * scale)

	scaled := img
	if newW > 0 && newH > 0 {
		scaled = imaging.Resize(img, newW, newH, imaging.Lanczos)
	}

	sb := scaled.Bounds()
	checker := s.checker.Get(sb.Dx(), sb.Dy(), max(8, sb.Dx()/25))
	return imaging.Overlay(checker, scaled, image.Pt(0, 0), 1.0)
}
