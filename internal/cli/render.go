package cli

import (
	"context"
	"fmt"
	"path/filepath"

	"qrstudio/internal/catalog"
	"qrstudio/internal/colors"
	"qrstudio/internal/common"
	"qrstudio/internal/domain/export"
	"qrstudio/internal/domain/generation"
	"qrstudio/internal/domain/render"
	"qrstudio/internal/generator"
	"qrstudio/internal/services"

	"github.com/spf13/cobra"
)

// renderOpts holds the flags of the render command
type renderOpts struct {
	data        string
	inputType   string
	preset      string
	shape       string
	level       string
	box         int
	border      int
	fg          string
	bg          string
	transparent bool
	format      string
	output      string
}

func newRenderCmd() *cobra.Command {
	defaults := generation.DefaultSettings()
	opts := renderOpts{
		inputType:   string(defaults.Type),
		shape:       string(defaults.Shape),
		level:       string(defaults.Level),
		box:         defaults.BoxSize,
		border:      defaults.Border,
		fg:          defaults.Foreground,
		bg:          defaults.Background,
		transparent: defaults.Transparent,
		format:      string(export.FormatPNG),
	}

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render one QR code to an image file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, format, err := opts.settings(catalog.Default(), cmd.Flags().Changed("shape"))
			if err != nil {
				return err
			}
			path, err := runRender(cmd.Context(), settings, format, opts.output)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.data, "data", "d", "", "text to encode (required)")
	cmd.Flags().StringVarP(&opts.inputType, "type", "t", opts.inputType, "input type: url, phone, text")
	cmd.Flags().StringVarP(&opts.preset, "preset", "p", "", "style preset name (see 'qrgen presets')")
	cmd.Flags().StringVarP(&opts.shape, "shape", "s", opts.shape, "module shape: square, rounded, circle, gapped, vertical_bars, horizontal_bars")
	cmd.Flags().StringVar(&opts.level, "ec", opts.level, "error correction: L, M, Q, H")
	cmd.Flags().IntVar(&opts.box, "box", opts.box, "pixels per module (5-25)")
	cmd.Flags().IntVar(&opts.border, "border", opts.border, "quiet zone in modules (0-10)")
	cmd.Flags().StringVar(&opts.fg, "fg", opts.fg, "foreground color")
	cmd.Flags().StringVar(&opts.bg, "bg", opts.bg, "background color, used when not transparent")
	cmd.Flags().BoolVar(&opts.transparent, "transparent", opts.transparent, "leave the off-module area transparent")
	cmd.Flags().StringVarP(&opts.format, "format", "f", opts.format, "output format: png, jpeg, bmp, gif, tiff")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default qrcode_<timestamp>.<ext>)")
	_ = cmd.MarkFlagRequired("data")

	return cmd
}

// settings turns the flags into generator settings. A preset without an
// explicit --shape uses the preset's first shape.
func (o *renderOpts) settings(cat *catalog.Catalog, shapeSet bool) (generation.Settings, export.Format, error) {
	s := generation.DefaultSettings()

	kind, ok := generation.ParseInputType(o.inputType)
	if !ok {
		return s, "", fmt.Errorf("%w: unknown input type %q", common.ErrValidation, o.inputType)
	}
	s.Input, s.Type = o.data, kind

	shape, ok := render.ParseShape(o.shape)
	if !ok {
		return s, "", fmt.Errorf("%w: %s", common.ErrUnknownShape, o.shape)
	}
	level, ok := render.ParseECLevel(o.level)
	if !ok {
		return s, "", fmt.Errorf("%w: unknown error correction level %q", common.ErrValidation, o.level)
	}
	format, ok := export.ParseFormat(o.format)
	if !ok {
		return s, "", fmt.Errorf("%w: %s", common.ErrUnknownFormat, o.format)
	}

	s.Level = level
	s.BoxSize = common.Clamp(o.box, common.MinBoxSize, common.MaxBoxSize)
	s.Border = common.Clamp(o.border, common.MinBorder, common.MaxBorder)

	if o.preset == "" {
		for _, c := range []string{o.fg, o.bg} {
			if !colors.Valid(c) {
				return s, "", fmt.Errorf("%w: invalid color %q", common.ErrValidation, c)
			}
		}
		s.Foreground, s.Background = o.fg, o.bg
		s.Transparent = o.transparent
		s.Shape = shape
		return s, format, nil
	}

	preset, ok := cat.Lookup(o.preset)
	if !ok {
		return s, "", fmt.Errorf("%w: %s", common.ErrUnknownPreset, o.preset)
	}
	if !shapeSet {
		shape = preset.Shapes[0]
	}
	if !cat.Supports(preset.Name, shape) {
		return s, "", fmt.Errorf("%w: %s does not offer %s", common.ErrUnknownShape, preset.Name, shape)
	}
	generator.ApplyPreset(&s, preset, shape)
	return s, format, nil
}

// runRender renders settings and writes the image, returning the written path
func runRender(ctx context.Context, s generation.Settings, format export.Format, output string) (string, error) {
	logger := loggerFromContext(ctx)
	slogger := slogFromContext(ctx)
	prog := newProgress(logger, 1)

	payload, err := services.NewInputValidator().Payload(s.Input, s.Type)
	if err != nil {
		return "", err
	}

	img, err := services.NewQRRenderer(slogger).Render(ctx, render.Request{
		Payload: payload,
		Level:   s.Level,
		Shape:   s.Shape,
		BoxSize: s.BoxSize,
		Border:  s.Border,
		Color:   s.ColorSpec(),
	})
	if err != nil {
		return "", err
	}

	exports := services.NewExportService(nil, slogger)
	if output == "" {
		output = exports.DefaultFilename(format)
	}
	if filepath.Ext(output) == "" {
		output += "." + format.Extension()
	}

	if _, err := exports.Save(ctx, services.SaveRequest{
		Image:   img,
		Path:    output,
		Format:  format,
		Payload: payload,
		Shape:   string(s.Shape),
	}); err != nil {
		return "", err
	}

	prog.succeeded()
	prog.done("Rendered QR code", "width", img.Bounds().Dx(), "shape", s.Shape)
	return output, nil
}
