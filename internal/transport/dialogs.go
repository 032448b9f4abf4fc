package transport

import (
	"context"
	"fmt"

	"qrstudio/internal/domain/export"

	wailsruntime "github.com/wailsapp/wails/v2/pkg/runtime"
)

type dialogsHandler struct {
	ctx context.Context
}

func NewDialogsHandler(ctx context.Context) DialogHandler {
	return &dialogsHandler{
		ctx: ctx,
	}
}

func (h *dialogsHandler) ShowSaveDialog(filename string, format export.Format) (string, error) {
	selection, err := wailsruntime.SaveFileDialog(h.ctx, wailsruntime.SaveDialogOptions{
		Title:                "Save QR code",
		DefaultFilename:      filename,
		Filters:              saveFilters(format),
		CanCreateDirectories: true,
	})

	if err != nil {
		return "", err
	}

	return selection, nil
}

func (h *dialogsHandler) OpenDirectoryDialog() (string, error) {
	selection, err := wailsruntime.OpenDirectoryDialog(h.ctx, wailsruntime.OpenDialogOptions{
		Title:                "Select export folder",
		CanCreateDirectories: true,
	})

	if err != nil {
		return "", err
	}

	return selection, nil
}

func (h *dialogsHandler) OpenFile(filePath string) error {
	wailsruntime.BrowserOpenURL(h.ctx, "file://"+filePath)
	return nil
}

// saveFilters lists the chosen format first, then a catch-all
func saveFilters(format export.Format) []wailsruntime.FileFilter {
	ext := format.Extension()
	return []wailsruntime.FileFilter{
		{
			DisplayName: fmt.Sprintf("%s files (*.%s)", format, ext),
			Pattern:     "*." + ext,
		},
		{
			DisplayName: "All files (*.*)",
			Pattern:     "*.*",
		},
	}
}
