package export

import (
	"image"
	"io"
	"strings"
	"time"
)

// Format is an output image format
type Format string

const (
	FormatPNG  Format = "PNG"
	FormatJPEG Format = "JPEG"
	FormatBMP  Format = "BMP"
	FormatGIF  Format = "GIF"
	FormatTIFF Format = "TIFF"
)

// Formats in menu order
var Formats = []Format{FormatPNG, FormatJPEG, FormatBMP, FormatGIF, FormatTIFF}

var extensions = map[Format]string{
	FormatPNG:  "png",
	FormatJPEG: "jpg",
	FormatBMP:  "bmp",
	FormatGIF:  "gif",
	FormatTIFF: "tiff",
}

// ParseFormat accepts a format name or file extension, case-insensitive
func ParseFormat(s string) (Format, bool) {
	s = strings.ToLower(strings.TrimPrefix(s, "."))
	switch s {
	case "jpeg", "jpg":
		return FormatJPEG, true
	case "tif", "tiff":
		return FormatTIFF, true
	}
	for f, ext := range extensions {
		if s == ext {
			return f, true
		}
	}
	return "", false
}

// Extension returns the file extension without a dot
func (f Format) Extension() string {
	return extensions[f]
}

// KeepsAlpha reports whether the format is written without flattening
func (f Format) KeepsAlpha() bool {
	return f == FormatPNG
}

// Encoder writes images in a given format
type Encoder interface {
	Encode(w io.Writer, img image.Image, format Format) error
}

// ClipboardImage is a flattened bitmap in the encodings clipboards accept
type ClipboardImage struct {
	PNG []byte
	DIB []byte
}

// Record describes one successful export
type Record struct {
	ID        string    `json:"id"`
	Path      string    `json:"path"`
	Format    Format    `json:"format"`
	Payload   string    `json:"payload"`
	Shape     string    `json:"shape"`
	Width     int       `json:"width"`
	Height    int       `json:"height"`
	CreatedAt time.Time `json:"created_at"`
}

// HistoryRepository stores export records
type HistoryRepository interface {
	Add(rec Record) error
	Recent(limit int) ([]Record, error)
	Clear() error
}
