package services

import (
	"context"
	"errors"
	"fmt"
	"image"
	"log/slog"

	"qrstudio/internal/colors"
	"qrstudio/internal/common"
	"qrstudio/internal/domain/render"

	"github.com/disintegration/imaging"
	"github.com/gogpu/gg"
	"github.com/skip2/go-qrcode"
)

var recoveryLevels = map[render.ECLevel]qrcode.RecoveryLevel{
	render.ECLow:      qrcode.Low,
	render.ECMedium:   qrcode.Medium,
	render.ECQuartile: qrcode.High,
	render.ECHigh:     qrcode.Highest,
}

// QRRenderer encodes payloads and rasterises the module grid
type QRRenderer struct {
	logger *slog.Logger
}

// NewQRRenderer creates a new renderer
func NewQRRenderer(logger *slog.Logger) *QRRenderer {
	return &QRRenderer{logger: logger}
}

// Render produces an image whose edge is (modules + 2*border) * box pixels.
func (r *QRRenderer) Render(ctx context.Context, req render.Request) (*image.NRGBA, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if req.Payload == "" {
		return nil, common.NewRenderError("validate", fmt.Errorf("%w: empty payload", common.ErrRenderFailure))
	}
	if req.BoxSize < 1 || req.Border < 0 {
		return nil, common.NewRenderError("validate",
			fmt.Errorf("%w: box size %d, border %d", common.ErrRenderFailure, req.BoxSize, req.Border))
	}

	modules, err := Encode(req.Payload, req.Level)
	if err != nil {
		return nil, err
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	img, err := Draw(modules, req.Shape, req.BoxSize, req.Border, req.Color)
	if err != nil {
		return nil, err
	}

	if r.logger != nil {
		r.logger.Debug("Rendered symbol",
			"modules", len(modules),
			"shape", req.Shape,
			"width", img.Bounds().Dx())
	}
	return img, nil
}

// Encode returns the module grid without a quiet zone; true means dark.
func Encode(payload string, level render.ECLevel) ([][]bool, error) {
	rl, ok := recoveryLevels[level]
	if !ok {
		return nil, common.NewRenderError("encode", fmt.Errorf("%w: unknown error correction level %q", common.ErrRenderFailure, level))
	}

	q, err := qrcode.New(payload, rl)
	if err != nil {
		// The encoder only refuses payloads that do not fit any version at this level.
		return nil, common.NewRenderError("encode", fmt.Errorf("%w: %v", common.ErrCapacityExceeded, err))
	}
	q.DisableBorder = true
	return q.Bitmap(), nil
}

// Draw rasterises modules with the given shape and colors.
func Draw(modules [][]bool, shape render.ShapeKey, box, border int, spec render.ColorSpec) (*image.NRGBA, error) {
	if _, ok := render.ParseShape(string(shape)); !ok {
		return nil, common.NewRenderError("draw", fmt.Errorf("%w: %q", common.ErrUnknownShape, shape))
	}

	n := len(modules)
	size := (n + 2*border) * box

	brush, err := moduleBrush(spec, float64(size))
	if err != nil {
		return nil, common.NewRenderError("draw", fmt.Errorf("%w: %v", common.ErrRenderFailure, err))
	}

	dc := gg.NewContext(size, size)
	defer dc.Close()

	if spec.Transparent {
		dc.ClearWithColor(gg.Transparent)
	} else {
		bg, err := ggColor(spec.Background)
		if err != nil {
			return nil, common.NewRenderError("draw", fmt.Errorf("%w: background: %v", common.ErrRenderFailure, err))
		}
		dc.ClearWithColor(bg)
	}

	dc.SetFillRule(gg.FillRuleNonZero)
	dc.SetFillBrush(brush)

	grid := moduleGrid(modules)
	drawn := 0
	for row := 0; row < n; row++ {
		for col := 0; col < n; col++ {
			if !grid.on(row, col) {
				continue
			}
			x := float64((col + border) * box)
			y := float64((row + border) * box)
			addModule(dc, grid, shape, row, col, x, y, float64(box))
			drawn++
		}
	}

	if drawn > 0 {
		if err := dc.Fill(); err != nil {
			return nil, common.NewRenderError("draw", errors.Join(common.ErrRenderFailure, err))
		}
	}

	return imaging.Clone(dc.Image()), nil
}

func ggColor(hex string) (gg.RGBA, error) {
	c, err := colors.Parse(hex)
	if err != nil {
		return gg.RGBA{}, err
	}
	return gg.RGB(c.R, c.G, c.B), nil
}

// moduleBrush picks the paint for dark modules. Gradients span the whole image.
func moduleBrush(spec render.ColorSpec, size float64) (gg.Brush, error) {
	if !spec.Mask.IsGradient() {
		fg, err := ggColor(spec.Foreground)
		if err != nil {
			return nil, fmt.Errorf("foreground: %w", err)
		}
		return gg.Solid(fg), nil
	}

	c0, err := ggColor(spec.Gradient[0])
	if err != nil {
		return nil, fmt.Errorf("gradient start: %w", err)
	}
	c1, err := ggColor(spec.Gradient[1])
	if err != nil {
		return nil, fmt.Errorf("gradient end: %w", err)
	}

	switch spec.Mask {
	case render.MaskHorizontal:
		return gg.HorizontalGradient(c0, c1, 0, size), nil
	case render.MaskVertical:
		return gg.VerticalGradient(c0, c1, 0, size), nil
	default:
		half := size / 2
		return gg.RadialGradient(c0, c1, half, half, half*1.4142135623730951), nil
	}
}
