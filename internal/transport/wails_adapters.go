package transport

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"qrstudio/internal/catalog"
	"qrstudio/internal/colors"
	"qrstudio/internal/common"
	"qrstudio/internal/domain/export"
	galleryDomain "qrstudio/internal/domain/gallery"
	"qrstudio/internal/domain/generation"
	"qrstudio/internal/domain/render"
	"qrstudio/internal/gallery"
	"qrstudio/internal/generator"
	"qrstudio/internal/services"

	"github.com/samber/lo"
)

// Services are the core components the Wails API drives
type Services struct {
	Catalog   *catalog.Catalog
	Generator *generator.Generator
	Gallery   *gallery.Scheduler
	Preview   *services.PreviewService
	Exports   *services.ExportService
	Validator generation.Validator
	Logger    *slog.Logger
}

type WailsApp struct {
	ctx       context.Context
	catalog   *catalog.Catalog
	generator *generator.Generator
	gallery   *gallery.Scheduler
	preview   *services.PreviewService
	exports   *services.ExportService
	validator generation.Validator
	logger    *slog.Logger

	dialogsHandler   DialogHandler
	clipboardHandler ClipboardHandler
}

func NewWailsApp(ctx context.Context, svc Services) *WailsApp {
	return &WailsApp{
		ctx:              ctx,
		catalog:          svc.Catalog,
		generator:        svc.Generator,
		gallery:          svc.Gallery,
		preview:          svc.Preview,
		exports:          svc.Exports,
		validator:        svc.Validator,
		logger:           svc.Logger,
		dialogsHandler:   NewDialogsHandler(ctx),
		clipboardHandler: NewClipboardHandler(ctx),
	}
}

// Menus

func (a *WailsApp) Catalog() []PresetInfo {
	return lo.Map(a.catalog.All(), func(p catalog.StylePreset, _ int) PresetInfo {
		info := PresetInfo{
			Name:        p.Name,
			Group:       p.Group,
			Foreground:  p.Foreground,
			Background:  p.Background,
			Transparent: p.Transparent,
			Mask:        string(p.Mask),
			Shapes:      shapeOptions(p.Shapes),
		}
		if p.Gradient != nil {
			info.Gradient = []string{p.Gradient[0], p.Gradient[1]}
		}
		return info
	})
}

func (a *WailsApp) Groups() []string {
	return a.catalog.Groups()
}

func (a *WailsApp) Shapes() []ShapeOption {
	return shapeOptions(render.Shapes)
}

func (a *WailsApp) Levels() []LevelOption {
	return lo.Map(render.ECLevels, func(l render.ECLevel, _ int) LevelOption {
		return LevelOption{Key: string(l), Label: l.Label()}
	})
}

func (a *WailsApp) Formats() []string {
	return lo.Map(export.Formats, func(f export.Format, _ int) string { return string(f) })
}

func (a *WailsApp) Backgrounds() []galleryDomain.Background {
	return galleryDomain.Backgrounds
}

func (a *WailsApp) Themes() []string {
	return galleryDomain.Themes
}

func (a *WailsApp) ZoomLimits() ZoomLimits {
	return ZoomLimits{
		Gallery: ZoomRange{
			Min:     common.GalleryZoomMin,
			Max:     common.GalleryZoomMax,
			Default: common.GalleryZoomDefault,
			Step:    common.GalleryZoomStep,
		},
		Preview: ZoomRange{
			Min:     common.PreviewZoomMin,
			Max:     common.PreviewZoomMax,
			Default: common.PreviewZoomDefault,
			Step:    common.PreviewZoomStep,
		},
	}
}

// Generator settings

func (a *WailsApp) ValidateInput(text, kind string) ValidationResponse {
	inputType, ok := generation.ParseInputType(kind)
	if !ok {
		return ValidationResponse{Error: fmt.Sprintf("unknown input type %q", kind)}
	}
	payload, err := a.validator.Payload(text, inputType)
	if err != nil {
		return ValidationResponse{Error: err.Error()}
	}
	return ValidationResponse{Valid: true, Payload: payload}
}

func (a *WailsApp) SetInput(text, kind string) error {
	inputType, ok := generation.ParseInputType(kind)
	if !ok {
		return fmt.Errorf("%w: unknown input type %q", common.ErrValidation, kind)
	}
	return a.generator.SetInput(text, inputType)
}

func (a *WailsApp) PasteInput(kind string) error {
	text, err := a.clipboardHandler.ReadText()
	if err != nil {
		return err
	}
	return a.SetInput(strings.TrimSpace(text), kind)
}

func (a *WailsApp) SetColors(fg, bg string) error {
	for _, c := range []string{fg, bg} {
		if !colors.Valid(c) {
			return fmt.Errorf("%w: invalid color %q", common.ErrValidation, c)
		}
	}
	return a.generator.SetColors(strings.ToUpper(fg), strings.ToUpper(bg))
}

func (a *WailsApp) SetShape(key string) error {
	shape, ok := render.ParseShape(key)
	if !ok {
		return fmt.Errorf("%w: %s", common.ErrUnknownShape, key)
	}
	return a.generator.SetShape(shape)
}

func (a *WailsApp) SetLevel(level string) error {
	l, ok := render.ParseECLevel(level)
	if !ok {
		return fmt.Errorf("%w: unknown error correction level %q", common.ErrValidation, level)
	}
	return a.generator.SetLevel(l)
}

func (a *WailsApp) SetTransparent(on bool) error {
	return a.generator.SetTransparent(on)
}

func (a *WailsApp) SetBoxSize(box int) error {
	return a.generator.SetBoxSize(box)
}

func (a *WailsApp) SetBorder(border int) error {
	return a.generator.SetBorder(border)
}

func (a *WailsApp) SelectPreset(family, shapeKey string) error {
	preset, ok := a.catalog.Lookup(family)
	if !ok {
		return fmt.Errorf("%w: %s", common.ErrUnknownPreset, family)
	}
	shape, ok := render.ParseShape(shapeKey)
	if !ok || !a.catalog.Supports(family, shape) {
		return fmt.Errorf("%w: %s does not offer %s", common.ErrUnknownShape, family, shapeKey)
	}

	a.logger.Info("Preset selected", "family", family, "shape", shape)
	return a.generator.SelectPreset(preset, shape)
}

func (a *WailsApp) NewQR() error {
	return a.generator.Reset()
}

func (a *WailsApp) GetGeneratorState() (GeneratorState, error) {
	snap, err := a.generator.Snapshot(a.ctx)
	if err != nil {
		return GeneratorState{}, err
	}

	s := snap.Settings
	state := GeneratorState{
		Input:       s.Input,
		Type:        string(s.Type),
		Foreground:  s.Foreground,
		Background:  s.Background,
		Transparent: s.Transparent,
		Shape:       string(s.Shape),
		BoxSize:     s.BoxSize,
		Border:      s.Border,
		Level:       string(s.Level),
		State:       snap.State.String(),
		HasImage:    snap.Image != nil,
	}
	if s.Gradient != nil {
		state.Gradient = string(s.Gradient.Mask)
	}
	if snap.Image != nil {
		b := snap.Image.Bounds()
		state.Width, state.Height = b.Dx(), b.Dy()
	}
	return state, nil
}

// Preview renders the current image scaled into a canvas of the given size
func (a *WailsApp) Preview(canvasW, canvasH, zoomPercent int) (PreviewResponse, error) {
	snap, err := a.generator.Snapshot(a.ctx)
	if err != nil {
		return PreviewResponse{}, err
	}
	if snap.Image == nil {
		return PreviewResponse{}, common.ErrNoImage
	}

	zoom := common.Clamp(zoomPercent, common.PreviewZoomMin, common.PreviewZoomMax)
	scaled := a.preview.Scale(snap.Image, canvasW, canvasH, zoom)
	if scaled == nil {
		return PreviewResponse{}, nil
	}

	uri, err := DataURI(scaled)
	if err != nil {
		return PreviewResponse{}, err
	}
	b := scaled.Bounds()
	return PreviewResponse{Image: uri, Width: b.Dx(), Height: b.Dy()}, nil
}

// Gallery

func (a *WailsApp) StartGallery() error {
	return a.gallery.Start()
}

func (a *WailsApp) RegenerateGallery() error {
	return a.gallery.Regenerate()
}

func (a *WailsApp) SetGalleryZoom(px int) error {
	return a.gallery.SetZoom(px)
}

func (a *WailsApp) GalleryZoomIn() error {
	return a.gallery.ZoomIn()
}

func (a *WailsApp) GalleryZoomOut() error {
	return a.gallery.ZoomOut()
}

func (a *WailsApp) SetGalleryBackground(nameOrHex string) error {
	return a.gallery.SetBackground(nameOrHex)
}

func (a *WailsApp) SetTheme(theme string) error {
	if !lo.Contains(galleryDomain.Themes, theme) {
		return fmt.Errorf("unknown theme %q", theme)
	}
	return a.gallery.SetTheme(theme)
}

func (a *WailsApp) GetGallery() (GalleryState, error) {
	entries, progress, err := a.gallery.Snapshot(a.ctx)
	if err != nil {
		return GalleryState{}, err
	}

	items := make([]GalleryItemEvent, 0, len(entries))
	for _, e := range entries {
		ev, err := galleryItemEvent(progress.Run, e.Index, e.Item, e.Image)
		if err != nil {
			return GalleryState{}, err
		}
		items = append(items, ev)
	}
	return GalleryState{Progress: progress, Items: items}, nil
}

// Export

func (a *WailsApp) DefaultFilename(format string) string {
	f, ok := export.ParseFormat(format)
	if !ok {
		f = export.FormatPNG
	}
	return a.exports.DefaultFilename(f)
}

// Export saves the current image. An empty path asks the user for one.
func (a *WailsApp) Export(request ExportRequest) ExportResponse {
	format := export.FormatPNG
	if request.Format != "" {
		f, ok := export.ParseFormat(request.Format)
		if !ok {
			return ExportResponse{Error: fmt.Sprintf("%v: %s", common.ErrUnknownFormat, request.Format)}
		}
		format = f
	}

	snap, err := a.generator.Snapshot(a.ctx)
	if err != nil {
		return ExportResponse{Error: err.Error()}
	}
	if snap.Image == nil {
		return ExportResponse{Error: common.ErrNoImage.Error()}
	}

	path := request.Path
	if path == "" {
		path, err = a.dialogsHandler.ShowSaveDialog(a.exports.DefaultFilename(format), format)
		if err != nil {
			a.logger.Error("Save dialog failed", "error", err)
			return ExportResponse{Error: err.Error()}
		}
		if path == "" {
			return ExportResponse{Cancelled: true}
		}
	}
	if filepath.Ext(path) == "" {
		path += "." + format.Extension()
	}

	payload, _ := a.validator.Payload(snap.Settings.Input, snap.Settings.Type)
	rec, err := a.exports.Save(a.ctx, services.SaveRequest{
		Image:   snap.Image,
		Path:    path,
		Format:  format,
		Payload: payload,
		Shape:   string(snap.Settings.Shape),
	})
	if err != nil {
		a.logger.Error("Export failed", "path", path, "error", err)
		return ExportResponse{Error: err.Error()}
	}
	return ExportResponse{Success: true, Record: &rec}
}

func (a *WailsApp) CopyImage() error {
	snap, err := a.generator.Snapshot(a.ctx)
	if err != nil {
		return err
	}
	clip, err := a.exports.ClipboardImage(snap.Image)
	if err != nil {
		return err
	}
	if err := a.clipboardHandler.CopyImage(clip); err != nil {
		a.logger.Error("Copy image failed", "error", err)
		return err
	}
	a.logger.Info("Image copied to clipboard", "bytes", len(clip.PNG))
	return nil
}

func (a *WailsApp) CopyData() error {
	payload, err := a.generator.Payload(a.ctx)
	if err != nil {
		return err
	}
	return a.clipboardHandler.CopyText(payload)
}

func (a *WailsApp) GetHistory(limit int) ([]export.Record, error) {
	return a.exports.History(limit)
}

func (a *WailsApp) ClearHistory() error {
	return a.exports.ClearHistory()
}

func (a *WailsApp) OpenFile(filePath string) error {
	return a.dialogsHandler.OpenFile(filePath)
}

func shapeOptions(shapes []render.ShapeKey) []ShapeOption {
	return lo.Map(shapes, func(s render.ShapeKey, _ int) ShapeOption {
		return ShapeOption{Key: string(s), Name: s.DisplayName()}
	})
}
