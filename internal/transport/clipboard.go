package transport

import (
	"context"
	"encoding/base64"

	"qrstudio/internal/common"
	"qrstudio/internal/domain/export"

	wailsruntime "github.com/wailsapp/wails/v2/pkg/runtime"
)

// The Wails runtime only exposes a text clipboard, so images travel as a
// PNG data URI. The DIB bytes stay available for native integrations.
type clipboardHandler struct {
	ctx     context.Context
	setText func(ctx context.Context, text string) error
	getText func(ctx context.Context) (string, error)
}

func NewClipboardHandler(ctx context.Context) ClipboardHandler {
	return &clipboardHandler{
		ctx:     ctx,
		setText: wailsruntime.ClipboardSetText,
		getText: wailsruntime.ClipboardGetText,
	}
}

func (h *clipboardHandler) CopyImage(img export.ClipboardImage) error {
	if len(img.PNG) == 0 {
		return common.NewExportError("clipboard", "", common.ErrNoImage)
	}
	text := pngDataURIPrefix + base64.StdEncoding.EncodeToString(img.PNG)
	if err := h.setText(h.ctx, text); err != nil {
		return common.NewExportError("clipboard", "", err)
	}
	return nil
}

func (h *clipboardHandler) CopyText(text string) error {
	if err := h.setText(h.ctx, text); err != nil {
		return common.NewExportError("clipboard", "", err)
	}
	return nil
}

func (h *clipboardHandler) ReadText() (string, error) {
	return h.getText(h.ctx)
}
