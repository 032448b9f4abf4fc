package transport

import (
	"qrstudio/internal/domain/export"
	"qrstudio/internal/gallery"
)

// Transport layer types for Wails API

type ShapeOption struct {
	Key  string `json:"key"`
	Name string `json:"name"`
}

type LevelOption struct {
	Key   string `json:"key"`
	Label string `json:"label"`
}

type PresetInfo struct {
	Name        string        `json:"name"`
	Group       string        `json:"group"`
	Foreground  string        `json:"foreground"`
	Background  string        `json:"background,omitempty"`
	Transparent bool          `json:"transparent"`
	Mask        string        `json:"mask"`
	Gradient    []string      `json:"gradient,omitempty"`
	Shapes      []ShapeOption `json:"shapes"`
}

type ZoomRange struct {
	Min     int `json:"min"`
	Max     int `json:"max"`
	Default int `json:"default"`
	Step    int `json:"step"`
}

type ZoomLimits struct {
	Gallery ZoomRange `json:"gallery"`
	Preview ZoomRange `json:"preview"`
}

type ValidationResponse struct {
	Valid   bool   `json:"valid"`
	Payload string `json:"payload,omitempty"`
	Error   string `json:"error,omitempty"`
}

type GeneratorState struct {
	Input       string `json:"input"`
	Type        string `json:"type"`
	Foreground  string `json:"foreground"`
	Background  string `json:"background"`
	Transparent bool   `json:"transparent"`
	Shape       string `json:"shape"`
	BoxSize     int    `json:"box_size"`
	Border      int    `json:"border"`
	Level       string `json:"level"`
	Gradient    string `json:"gradient,omitempty"`
	State       string `json:"state"`
	HasImage    bool   `json:"has_image"`
	Width       int    `json:"width,omitempty"`
	Height      int    `json:"height,omitempty"`
}

type PreviewResponse struct {
	Image  string `json:"image"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

type GalleryState struct {
	Progress gallery.Progress   `json:"progress"`
	Items    []GalleryItemEvent `json:"items"`
}

type ExportRequest struct {
	Path   string `json:"path"`
	Format string `json:"format"`
}

type ExportResponse struct {
	Success   bool           `json:"success"`
	Cancelled bool           `json:"cancelled,omitempty"`
	Record    *export.Record `json:"record,omitempty"`
	Error     string         `json:"error,omitempty"`
}

// Event payloads

type StateEvent struct {
	State string `json:"state"`
}

type GenerationEvent struct {
	Image  string `json:"image"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
	Shape  string `json:"shape"`
	Level  string `json:"level"`
}

type FailureEvent struct {
	Kind   string `json:"kind"`
	Reason string `json:"reason"`
}

type GalleryResetEvent struct {
	Run string `json:"run"`
}

type GalleryItemEvent struct {
	Run       string `json:"run"`
	Index     int    `json:"index"`
	Family    string `json:"family"`
	Shape     string `json:"shape"`
	ShapeName string `json:"shape_name"`
	Image     string `json:"image"`
}

type GalleryCompleteEvent struct {
	Run      string `json:"run"`
	Rendered int    `json:"rendered"`
	Failed   int    `json:"failed"`
}

// Dialog interface for system dialogs
type DialogHandler interface {
	ShowSaveDialog(filename string, format export.Format) (string, error)
	OpenDirectoryDialog() (string, error)
	OpenFile(filePath string) error
}

// ClipboardHandler puts exported data on the system clipboard
type ClipboardHandler interface {
	CopyImage(img export.ClipboardImage) error
	CopyText(text string) error
	ReadText() (string, error)
}
