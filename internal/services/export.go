package services

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/color"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"qrstudio/internal/common"
	"qrstudio/internal/domain/export"

	"github.com/disintegration/imaging"
	"golang.org/x/image/bmp"
)

// bmpFileHeaderLen is the BITMAPFILEHEADER size stripped to get a DIB.
const bmpFileHeaderLen = 14

var imagingFormats = map[export.Format]imaging.Format{
	export.FormatPNG:  imaging.PNG,
	export.FormatJPEG: imaging.JPEG,
	export.FormatBMP:  imaging.BMP,
	export.FormatGIF:  imaging.GIF,
	export.FormatTIFF: imaging.TIFF,
}

// Flatten composites img onto opaque white
func Flatten(img image.Image) *image.NRGBA {
	b := img.Bounds()
	white := imaging.New(b.Dx(), b.Dy(), color.White)
	return imaging.Overlay(white, img, image.Pt(0, 0), 1.0)
}

// ImageEncoder writes images, flattening for formats without alpha
type ImageEncoder struct{}

// Encode implements export.Encoder
func (ImageEncoder) Encode(w io.Writer, img image.Image, format export.Format) error {
	f, ok := imagingFormats[format]
	if !ok {
		return fmt.Errorf("%w: %q", common.ErrUnknownFormat, format)
	}
	if !format.KeepsAlpha() {
		img = Flatten(img)
	}
	return imaging.Encode(w, img, f, imaging.JPEGQuality(common.JPEGQuality))
}

// ExportService saves generated images to disk and the clipboard
type ExportService struct {
	encoder export.Encoder
	history export.HistoryRepository
	logger  *slog.Logger
	now     func() time.Time
}

// NewExportService creates a new export service. history may be nil.
func NewExportService(history export.HistoryRepository, logger *slog.Logger) *ExportService {
	return &ExportService{
		encoder: ImageEncoder{},
		history: history,
		logger:  logger,
		now:     time.Now,
	}
}

// DefaultFilename returns qrcode_<timestamp>.<ext>
func (s *ExportService) DefaultFilename(format export.Format) string {
	return common.TimestampedFilename(common.ExportFilePrefix, format.Extension(), s.now())
}

// SaveRequest describes a file export
type SaveRequest struct {
	Image   *image.NRGBA
	Path    string
	Format  export.Format
	Payload string
	Shape   string
}

// Save writes the image to req.Path. The in-memory image is never modified.
func (s *ExportService) Save(ctx context.Context, req SaveRequest) (export.Record, error) {
	if req.Image == nil {
		return export.Record{}, common.NewExportError("save", req.Path, common.ErrNoImage)
	}
	if err := ctx.Err(); err != nil {
		return export.Record{}, common.NewExportError("save", req.Path, err)
	}

	var buf bytes.Buffer
	if err := s.encoder.Encode(&buf, req.Image, req.Format); err != nil {
		return export.Record{}, common.NewExportError("encode", req.Path, err)
	}

	if err := os.MkdirAll(filepath.Dir(req.Path), common.DefaultFilePerms); err != nil {
		return export.Record{}, common.NewExportError("mkdir", req.Path, err)
	}
	if err := os.WriteFile(req.Path, buf.Bytes(), common.DefaultFileMode); err != nil {
		return export.Record{}, common.NewExportError("write", req.Path, err)
	}

	b := req.Image.Bounds()
	rec := export.Record{
		ID:        common.GenerateUUID(),
		Path:      req.Path,
		Format:    req.Format,
		Payload:   req.Payload,
		Shape:     req.Shape,
		Width:     b.Dx(),
		Height:    b.Dy(),
		CreatedAt: s.now(),
	}

	if s.history != nil {
		if err := s.history.Add(rec); err != nil {
			s.logger.Warn("Failed to record export history", "path", req.Path, "error", err)
		}
	}

	s.logger.Info("Image exported", "path", req.Path, "format", req.Format, "bytes", buf.Len())
	return rec, nil
}

// ClipboardImage returns the flattened image as PNG and as a DIB
func (s *ExportService) ClipboardImage(img *image.NRGBA) (export.ClipboardImage, error) {
	if img == nil {
		return export.ClipboardImage{}, common.NewExportError("clipboard", "", common.ErrNoImage)
	}
	flat := Flatten(img)

	var pngBuf bytes.Buffer
	if err := imaging.Encode(&pngBuf, flat, imaging.PNG); err != nil {
		return export.ClipboardImage{}, common.NewExportError("clipboard", "", err)
	}

	var bmpBuf bytes.Buffer
	if err := bmp.Encode(&bmpBuf, flat); err != nil {
		return export.ClipboardImage{}, common.NewExportError("clipboard", "", err)
	}

	return export.ClipboardImage{
		PNG: pngBuf.Bytes(),
		DIB: bmpBuf.Bytes()[bmpFileHeaderLen:],
	}, nil
}

// History returns recent exports, or nothing when history is disabled
func (s *ExportService) History(limit int) ([]export.Record, error) {
	if s.history == nil {
		return nil, nil
	}
	return s.history.Recent(limit)
}

// ClearHistory removes every recorded export
func (s *ExportService) ClearHistory() error {
	if s.history == nil {
		return nil
	}
	return s.history.Clear()
}
