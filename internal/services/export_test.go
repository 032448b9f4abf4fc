package services

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/png"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"qrstudio/internal/common"
	"qrstudio/internal/domain/export"
	"qrstudio/internal/domain/render"

	"github.com/disintegration/imaging"
)

func testLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func transparentSymbol(t *testing.T) *image.NRGBA {
	t.Helper()
	img, err := NewQRRenderer(nil).Render(context.Background(), solidRequest(render.ShapeSquare))
	if err != nil {
		t.Fatalf("Expected no error rendering, got %v", err)
	}
	return img
}

func TestDefaultFilename(t *testing.T) {
	svc := NewExportService(nil, testLogger())
	svc.now = func() time.Time { return time.Date(2025, 3, 4, 5, 6, 7, 0, time.Local) }

	tests := []struct {
		format export.Format
		want   string
	}{
		{export.FormatPNG, "qrcode_20250304_050607.png"},
		{export.FormatJPEG, "qrcode_20250304_050607.jpg"},
		{export.FormatTIFF, "qrcode_20250304_050607.tiff"},
	}

	for _, tt := range tests {
		if got := svc.DefaultFilename(tt.format); got != tt.want {
			t.Errorf("DefaultFilename(%s) = %s, want %s", tt.format, got, tt.want)
		}
	}
}

func TestSavePNGKeepsAlpha(t *testing.T) {
	svc := NewExportService(nil, testLogger())
	path := filepath.Join(t.TempDir(), "out", "qr.png")

	if _, err := svc.Save(context.Background(), SaveRequest{Image: transparentSymbol(t), Path: path, Format: export.FormatPNG}); err != nil {
		t.Fatalf("Expected no error saving, got %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("Failed to open saved file: %v", err)
	}
	defer f.Close()

	decoded, err := png.Decode(f)
	if err != nil {
		t.Fatalf("Failed to decode saved PNG: %v", err)
	}

	var sawClear, sawOpaque bool
	b := decoded.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			_, _, _, a := decoded.At(x, y).RGBA()
			switch a {
			case 0:
				sawClear = true
			case 0xffff:
				sawOpaque = true
			}
		}
	}

	if !sawClear || !sawOpaque {
		t.Errorf("Expected both transparent and opaque pixels, got clear=%v opaque=%v", sawClear, sawOpaque)
	}
}

func TestSaveFlattenedFormats(t *testing.T) {
	svc := NewExportService(nil, testLogger())
	dir := t.TempDir()

	for _, format := range []export.Format{export.FormatJPEG, export.FormatBMP, export.FormatGIF, export.FormatTIFF} {
		t.Run(string(format), func(t *testing.T) {
			path := filepath.Join(dir, "qr."+format.Extension())
			if _, err := svc.Save(context.Background(), SaveRequest{Image: transparentSymbol(t), Path: path, Format: format}); err != nil {
				t.Fatalf("Expected no error saving, got %v", err)
			}

			decoded, err := imaging.Open(path)
			if err != nil {
				t.Fatalf("Failed to reopen %s: %v", format, err)
			}

			r, g, b, a := decoded.At(0, 0).RGBA()
			if a != 0xffff || r < 0xf000 || g < 0xf000 || b < 0xf000 {
				t.Errorf("Expected white border after flattening, got %d %d %d %d", r, g, b, a)
			}
		})
	}
}

type memoryHistory struct {
	records []export.Record
}

func (m *memoryHistory) Add(rec export.Record) error {
	m.records = append(m.records, rec)
	return nil
}

func (m *memoryHistory) Recent(limit int) ([]export.Record, error) {
	return m.records, nil
}

func (m *memoryHistory) Clear() error {
	m.records = nil
	return nil
}

func TestSaveRecordsHistory(t *testing.T) {
	history := &memoryHistory{}
	svc := NewExportService(history, testLogger())
	path := filepath.Join(t.TempDir(), "qr.png")

	rec, err := svc.Save(context.Background(), SaveRequest{
		Image:   transparentSymbol(t),
		Path:    path,
		Format:  export.FormatPNG,
		Payload: "https://example.com",
		Shape:   "square",
	})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if len(history.records) != 1 || history.records[0].ID != rec.ID {
		t.Fatalf("Expected record %s in history, got %+v", rec.ID, history.records)
	}

	recent, _ := svc.History(10)
	if len(recent) != 1 {
		t.Errorf("Expected 1 recent export, got %d", len(recent))
	}
}

func TestSaveFailures(t *testing.T) {
	svc := NewExportService(nil, testLogger())
	img := transparentSymbol(t)

	blocker := filepath.Join(t.TempDir(), "file")
	if err := os.WriteFile(blocker, []byte("x"), 0644); err != nil {
		t.Fatalf("Failed to create blocker file: %v", err)
	}

	tests := []struct {
		name string
		req  SaveRequest
	}{
		{"no image", SaveRequest{Path: "/tmp/none.png", Format: export.FormatPNG}},
		{"unknown format", SaveRequest{Image: img, Path: "/tmp/x.webp", Format: "WEBP"}},
		{"unwritable path", SaveRequest{Image: img, Path: filepath.Join(blocker, "qr.png"), Format: export.FormatPNG}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Save(context.Background(), tt.req)
			if !errors.Is(err, common.ErrExportFailure) {
				t.Errorf("Expected ErrExportFailure, got %v", err)
			}
		})
	}
}

func TestClipboardImage(t *testing.T) {
	svc := NewExportService(nil, testLogger())
	img := transparentSymbol(t)

	clip, err := svc.ClipboardImage(img)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	decoded, err := png.Decode(bytes.NewReader(clip.PNG))
	if err != nil {
		t.Fatalf("Failed to decode clipboard PNG: %v", err)
	}
	if _, _, _, a := decoded.At(0, 0).RGBA(); a != 0xffff {
		t.Errorf("Expected flattened clipboard image, got alpha %d", a)
	}

	// BITMAPINFOHEADER starts the DIB and records its own size.
	if len(clip.DIB) < 40 || clip.DIB[0] != 40 {
		t.Errorf("Expected DIB to start with a 40-byte info header")
	}

	if img.NRGBAAt(0, 0).A != 0 {
		t.Error("Expected source image to stay transparent")
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in   string
		want export.Format
	}{
		{"png", export.FormatPNG},
		{".JPG", export.FormatJPEG},
		{"jpeg", export.FormatJPEG},
		{"tif", export.FormatTIFF},
		{"BMP", export.FormatBMP},
		{"gif", export.FormatGIF},
	}

	for _, tt := range tests {
		got, ok := export.ParseFormat(tt.in)
		if !ok || got != tt.want {
			t.Errorf("ParseFormat(%q) = %q, %v; want %q", tt.in, got, ok, tt.want)
		}
	}

	if _, ok := export.ParseFormat("webp"); ok {
		t.Error("Expected webp to be rejected")
	}
}
