package application

import (
	"context"

	"qrstudio/internal/common"
	"qrstudio/internal/config"
	"qrstudio/internal/container"
	"qrstudio/internal/database"
	"qrstudio/internal/domain/export"
	"qrstudio/internal/domain/gallery"
	"qrstudio/internal/transport"

	"gorm.io/gorm"
)

type App struct {
	ctx       context.Context
	container *container.Container
	wailsApp  *transport.WailsApp
	config    *config.Config
	db        *gorm.DB
	startErr  error
}

func NewApp() *App {
	return &App{}
}

func (a *App) OnStartup(ctx context.Context) {
	cfg := config.New()
	a.startup(ctx, cfg, transport.NewEventEmitter(ctx, cfg.Logger))
}

func (a *App) startup(ctx context.Context, cfg *config.Config, listener container.Listener) {
	a.ctx = ctx
	a.config = cfg

	// Export history is opt-in; the app runs without it
	if cfg.HistoryEnabled {
		db, err := database.Initialize(cfg.DatabasePath)
		if err != nil {
			cfg.Logger.Error("Failed to initialize database, export history disabled", "error", err)
		} else {
			a.db = db
		}
	}

	// Initialize dependency container
	c, err := container.New(ctx, cfg, a.db, listener)
	if err != nil {
		cfg.Logger.Error("Failed to initialize services", "error", err)
		a.startErr = err
		return
	}
	a.container = c

	// Initialize transport layer
	a.wailsApp = transport.NewWailsApp(ctx, transport.Services{
		Catalog:   c.GetCatalog(),
		Generator: c.GetGenerator(),
		Gallery:   c.GetGallery(),
		Preview:   c.GetPreviewService(),
		Exports:   c.GetExportService(),
		Validator: c.GetValidator(),
		Logger:    cfg.Logger,
	})

	cfg.Logger.Info("Wails app initialized successfully")
	cfg.Logger.Info("Application configuration",
		"app_data_dir", cfg.AppDataDir,
		"log_path", cfg.LogPath,
		"history", a.db != nil,
		"quiet_period", cfg.QuietPeriod)

	// The gallery fills in the background from launch
	if err := c.GetGallery().Start(); err != nil {
		cfg.Logger.Error("Failed to start gallery", "error", err)
	}
}

func (a *App) OnShutdown(ctx context.Context) {
	if a.container != nil {
		a.container.Close()
	}
	if a.db != nil {
		if err := database.Close(a.db); err != nil {
			a.config.Logger.Warn("Failed to close database", "error", err)
		}
	}
	if a.config != nil {
		a.config.Logger.Info("Shutting down")
		a.config.Close()
	}
}

// ready reports why bound calls cannot be served yet
func (a *App) ready() error {
	if a.wailsApp != nil {
		return nil
	}
	if a.startErr != nil {
		return a.startErr
	}
	return common.ErrNotReady
}

// Menus

func (a *App) GetCatalog() []transport.PresetInfo {
	if a.ready() != nil {
		return nil
	}
	return a.wailsApp.Catalog()
}

func (a *App) GetGroups() []string {
	if a.ready() != nil {
		return nil
	}
	return a.wailsApp.Groups()
}

func (a *App) GetShapes() []transport.ShapeOption {
	if a.ready() != nil {
		return nil
	}
	return a.wailsApp.Shapes()
}

func (a *App) GetLevels() []transport.LevelOption {
	if a.ready() != nil {
		return nil
	}
	return a.wailsApp.Levels()
}

func (a *App) GetFormats() []string {
	if a.ready() != nil {
		return nil
	}
	return a.wailsApp.Formats()
}

func (a *App) GetBackgrounds() []gallery.Background {
	if a.ready() != nil {
		return nil
	}
	return a.wailsApp.Backgrounds()
}

func (a *App) GetThemes() []string {
	if a.ready() != nil {
		return nil
	}
	return a.wailsApp.Themes()
}

func (a *App) GetZoomLimits() transport.ZoomLimits {
	if a.ready() != nil {
		return transport.ZoomLimits{}
	}
	return a.wailsApp.ZoomLimits()
}

// Generator

func (a *App) ValidateInput(text, kind string) transport.ValidationResponse {
	if err := a.ready(); err != nil {
		return transport.ValidationResponse{Error: err.Error()}
	}
	return a.wailsApp.ValidateInput(text, kind)
}

func (a *App) SetInput(text, kind string) error {
	if err := a.ready(); err != nil {
		return err
	}
	return a.wailsApp.SetInput(text, kind)
}

func (a *App) PasteInput(kind string) error {
	if err := a.ready(); err != nil {
		return err
	}
	return a.wailsApp.PasteInput(kind)
}

func (a *App) SetColors(fg, bg string) error {
	if err := a.ready(); err != nil {
		return err
	}
	return a.wailsApp.SetColors(fg, bg)
}

func (a *App) SetShape(shape string) error {
	if err := a.ready(); err != nil {
		return err
	}
	return a.wailsApp.SetShape(shape)
}

func (a *App) SetLevel(level string) error {
	if err := a.ready(); err != nil {
		return err
	}
	return a.wailsApp.SetLevel(level)
}

func (a *App) SetTransparent(on bool) error {
	if err := a.ready(); err != nil {
		return err
	}
	return a.wailsApp.SetTransparent(on)
}

func (a *App) SetBoxSize(box int) error {
	if err := a.ready(); err != nil {
		return err
	}
	return a.wailsApp.SetBoxSize(box)
}

func (a *App) SetBorder(border int) error {
	if err := a.ready(); err != nil {
		return err
	}
	return a.wailsApp.SetBorder(border)
}

func (a *App) SelectPreset(family, shape string) error {
	if err := a.ready(); err != nil {
		return err
	}
	return a.wailsApp.SelectPreset(family, shape)
}

func (a *App) NewQR() error {
	if err := a.ready(); err != nil {
		return err
	}
	return a.wailsApp.NewQR()
}

func (a *App) GetGeneratorState() (transport.GeneratorState, error) {
	if err := a.ready(); err != nil {
		return transport.GeneratorState{}, err
	}
	return a.wailsApp.GetGeneratorState()
}

func (a *App) GetPreview(canvasW, canvasH, zoomPercent int) (transport.PreviewResponse, error) {
	if err := a.ready(); err != nil {
		return transport.PreviewResponse{}, err
	}
	return a.wailsApp.Preview(canvasW, canvasH, zoomPercent)
}

// Gallery

func (a *App) StartGallery() error {
	if err := a.ready(); err != nil {
		return err
	}
	return a.wailsApp.StartGallery()
}

func (a *App) RegenerateGallery() error {
	if err := a.ready(); err != nil {
		return err
	}
	return a.wailsApp.RegenerateGallery()
}

func (a *App) SetGalleryZoom(px int) error {
	if err := a.ready(); err != nil {
		return err
	}
	return a.wailsApp.SetGalleryZoom(px)
}

func (a *App) GalleryZoomIn() error {
	if err := a.ready(); err != nil {
		return err
	}
	return a.wailsApp.GalleryZoomIn()
}

func (a *App) GalleryZoomOut() error {
	if err := a.ready(); err != nil {
		return err
	}
	return a.wailsApp.GalleryZoomOut()
}

func (a *App) SetGalleryBackground(nameOrHex string) error {
	if err := a.ready(); err != nil {
		return err
	}
	return a.wailsApp.SetGalleryBackground(nameOrHex)
}

func (a *App) SetTheme(theme string) error {
	if err := a.ready(); err != nil {
		return err
	}
	return a.wailsApp.SetTheme(theme)
}

func (a *App) GetGallery() (transport.GalleryState, error) {
	if err := a.ready(); err != nil {
		return transport.GalleryState{}, err
	}
	return a.wailsApp.GetGallery()
}

// Export

func (a *App) DefaultFilename(format string) string {
	if a.ready() != nil {
		return ""
	}
	return a.wailsApp.DefaultFilename(format)
}

func (a *App) Export(request transport.ExportRequest) transport.ExportResponse {
	if err := a.ready(); err != nil {
		return transport.ExportResponse{Error: err.Error()}
	}
	return a.wailsApp.Export(request)
}

func (a *App) SaveAs(format string) transport.ExportResponse {
	return a.Export(transport.ExportRequest{Format: format})
}

func (a *App) CopyImage() error {
	if err := a.ready(); err != nil {
		return err
	}
	return a.wailsApp.CopyImage()
}

func (a *App) CopyData() error {
	if err := a.ready(); err != nil {
		return err
	}
	return a.wailsApp.CopyData()
}

func (a *App) GetHistory(limit int) ([]export.Record, error) {
	if err := a.ready(); err != nil {
		return nil, err
	}
	return a.wailsApp.GetHistory(limit)
}

func (a *App) ClearHistory() error {
	if err := a.ready(); err != nil {
		return err
	}
	return a.wailsApp.ClearHistory()
}

func (a *App) OpenFile(filePath string) error {
	if err := a.ready(); err != nil {
		return err
	}
	return a.wailsApp.OpenFile(filePath)
}

func (a *App) GetAppStatus() map[string]interface{} {
	status := map[string]interface{}{
		"status":   "running",
		"app_name": common.AppName,
	}
	if a.startErr != nil {
		status["status"] = "error"
		status["error"] = a.startErr.Error()
	}
	if a.config != nil {
		status["app_data_dir"] = a.config.AppDataDir
		status["log_path"] = a.config.LogPath
		status["history_enabled"] = a.db != nil
		status["render_workers"] = a.config.RenderWorkers
	}
	if a.container != nil {
		status["renders_running"] = a.container.GetRenderPool().Running()
		status["presets"] = len(a.container.GetCatalog().All())
		status["queued_tasks"] = a.container.QueuedTasks()
	}
	return status
}
