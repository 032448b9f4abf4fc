package render

import (
	"context"
	"image"
)

// ShapeKey selects how a single dark module is drawn
type ShapeKey string

const (
	ShapeSquare         ShapeKey = "square"
	ShapeRounded        ShapeKey = "rounded"
	ShapeCircle         ShapeKey = "circle"
	ShapeGapped         ShapeKey = "gapped"
	ShapeVerticalBars   ShapeKey = "vertical_bars"
	ShapeHorizontalBars ShapeKey = "horizontal_bars"
)

// Shapes lists every known shape in menu order
var Shapes = []ShapeKey{
	ShapeSquare,
	ShapeRounded,
	ShapeCircle,
	ShapeGapped,
	ShapeVerticalBars,
	ShapeHorizontalBars,
}

var shapeNames = map[ShapeKey]string{
	ShapeSquare:         "Square",
	ShapeRounded:        "Rounded",
	ShapeCircle:         "Circle",
	ShapeGapped:         "Gapped",
	ShapeVerticalBars:   "V-Bars",
	ShapeHorizontalBars: "H-Bars",
}

// ParseShape returns the shape for key, or false if key is unknown
func ParseShape(key string) (ShapeKey, bool) {
	s := ShapeKey(key)
	_, ok := shapeNames[s]
	return s, ok
}

// DisplayName returns the label shown in menus
func (s ShapeKey) DisplayName() string {
	if name, ok := shapeNames[s]; ok {
		return name
	}
	return string(s)
}

// MaskKind maps dark and light modules to pixel colors
type MaskKind string

const (
	MaskSolid      MaskKind = "solid"
	MaskHorizontal MaskKind = "horizontal_gradient"
	MaskVertical   MaskKind = "vertical_gradient"
	MaskRadial     MaskKind = "radial_gradient"
)

// IsGradient reports whether the mask needs a gradient color pair
func (m MaskKind) IsGradient() bool {
	return m == MaskHorizontal || m == MaskVertical || m == MaskRadial
}

// Valid reports whether m is one of the known masks
func (m MaskKind) Valid() bool {
	return m == MaskSolid || m.IsGradient()
}

// ECLevel is the error-correction level of the symbol
type ECLevel string

const (
	ECLow      ECLevel = "L"
	ECMedium   ECLevel = "M"
	ECQuartile ECLevel = "Q"
	ECHigh     ECLevel = "H"
)

// ECLevels lists levels from least to most redundant
var ECLevels = []ECLevel{ECLow, ECMedium, ECQuartile, ECHigh}

var ecLabels = map[ECLevel]string{
	ECLow:      "Low (7%)",
	ECMedium:   "Medium (15%)",
	ECQuartile: "Quartile (25%)",
	ECHigh:     "High (30%)",
}

// Label returns the menu label, e.g. "Medium (15%)"
func (l ECLevel) Label() string {
	return ecLabels[l]
}

// ParseECLevel accepts either the single letter or the menu label
func ParseECLevel(s string) (ECLevel, bool) {
	for _, l := range ECLevels {
		if s == string(l) || s == ecLabels[l] {
			return l, true
		}
	}
	return "", false
}

// GradientPair holds start and end colors of a gradient mask
type GradientPair [2]string

// ColorSpec describes how on and off modules are colored.
// Off modules are transparent when Transparent is set, otherwise Background.
type ColorSpec struct {
	Mask        MaskKind
	Foreground  string
	Background  string
	Transparent bool
	Gradient    GradientPair
}

// Request is everything the renderer needs for one image
type Request struct {
	Payload string
	Level   ECLevel
	Shape   ShapeKey
	BoxSize int
	Border  int
	Color   ColorSpec
}

// Renderer turns a request into a raster image with alpha
type Renderer interface {
	Render(ctx context.Context, req Request) (*image.NRGBA, error)
}
