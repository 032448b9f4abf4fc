package transport

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"image"
	"log/slog"

	"qrstudio/internal/common"
	galleryDomain "qrstudio/internal/domain/gallery"
	"qrstudio/internal/domain/generation"

	"github.com/disintegration/imaging"
	wailsruntime "github.com/wailsapp/wails/v2/pkg/runtime"
)

const pngDataURIPrefix = "data:image/png;base64,"

// EmitFunc matches wailsruntime.EventsEmit
type EmitFunc func(ctx context.Context, eventName string, optionalData ...interface{})

// EventEmitter forwards generator and gallery events to the frontend
type EventEmitter struct {
	ctx    context.Context
	emit   EmitFunc
	logger *slog.Logger
}

func NewEventEmitter(ctx context.Context, logger *slog.Logger) *EventEmitter {
	return newEventEmitter(ctx, wailsruntime.EventsEmit, logger)
}

func newEventEmitter(ctx context.Context, emit EmitFunc, logger *slog.Logger) *EventEmitter {
	return &EventEmitter{
		ctx:    ctx,
		emit:   emit,
		logger: logger,
	}
}

func (e *EventEmitter) OnGenerationState(state generation.State) {
	e.emit(e.ctx, common.EventGenerationState, StateEvent{State: state.String()})
}

func (e *EventEmitter) OnGenerationComplete(img *image.NRGBA, sig generation.Signature) {
	uri, err := DataURI(img)
	if err != nil {
		e.logger.Error("Failed to encode generated image", "error", err)
		e.OnGenerationFailed(err)
		return
	}

	b := img.Bounds()
	e.emit(e.ctx, common.EventGenerationComplete, GenerationEvent{
		Image:  uri,
		Width:  b.Dx(),
		Height: b.Dy(),
		Shape:  string(sig.Shape),
		Level:  string(sig.Level),
	})
}

func (e *EventEmitter) OnGenerationFailed(reason error) {
	e.emit(e.ctx, common.EventGenerationFailed, FailureEvent{
		Kind:   ErrorKind(reason),
		Reason: reason.Error(),
	})
}

func (e *EventEmitter) OnGalleryReset(run string) {
	e.emit(e.ctx, common.EventGalleryReset, GalleryResetEvent{Run: run})
}

func (e *EventEmitter) OnGalleryItemReady(run string, index int, item galleryDomain.Item, img *image.NRGBA) {
	ev, err := galleryItemEvent(run, index, item, img)
	if err != nil {
		e.logger.Error("Failed to encode thumbnail", "item", item.Key(), "error", err)
		return
	}
	e.emit(e.ctx, common.EventGalleryItem, ev)
}

func (e *EventEmitter) OnGalleryComplete(run string, rendered, failed int) {
	e.emit(e.ctx, common.EventGalleryComplete, GalleryCompleteEvent{
		Run:      run,
		Rendered: rendered,
		Failed:   failed,
	})
}

func galleryItemEvent(run string, index int, item galleryDomain.Item, img *image.NRGBA) (GalleryItemEvent, error) {
	uri, err := DataURI(img)
	if err != nil {
		return GalleryItemEvent{}, err
	}
	return GalleryItemEvent{
		Run:       run,
		Index:     index,
		Family:    item.Family,
		Shape:     string(item.Shape),
		ShapeName: item.Shape.DisplayName(),
		Image:     uri,
	}, nil
}

// DataURI encodes img as a base64 PNG data URI
func DataURI(img image.Image) (string, error) {
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.PNG); err != nil {
		return "", err
	}
	return pngDataURIPrefix + base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}

// ErrorKind names the error category shown next to a status message
func ErrorKind(err error) string {
	switch {
	case errors.Is(err, common.ErrCapacityExceeded):
		return "capacity"
	case errors.Is(err, common.ErrValidation):
		return "validation"
	case errors.Is(err, common.ErrExportFailure):
		return "export"
	case errors.Is(err, common.ErrRenderFailure):
		return "render"
	default:
		return "unknown"
	}
}
