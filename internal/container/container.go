package container

import (
	"context"
	"log/slog"

	"qrstudio/internal/catalog"
	"qrstudio/internal/concurrency"
	"qrstudio/internal/config"
	"qrstudio/internal/eventloop"
	"qrstudio/internal/gallery"
	"qrstudio/internal/generator"
	"qrstudio/internal/services"

	"gorm.io/gorm"
)

// Container holds all dependencies for the application
type Container struct {
	config *config.Config
	db     *gorm.DB
	logger *slog.Logger

	// Services
	catalog    *catalog.Catalog
	renderer   *services.QRRenderer
	checker    *services.CheckerboardCache
	thumbnails *services.ThumbnailService
	preview    *services.PreviewService
	validator  *services.InputValidator
	exports    *services.ExportService

	// Scheduling
	loop      *eventloop.Loop
	pool      *concurrency.RenderPool
	generator *generator.Generator
	gallery   *gallery.Scheduler
}

// New creates a new dependency injection container. db may be nil when
// export history is disabled; listener receives generator and gallery events.
func New(ctx context.Context, cfg *config.Config, db *gorm.DB, listener Listener) (*Container, error) {
	c := &Container{
		config: cfg,
		db:     db,
		logger: cfg.Logger,
	}

	if listener == nil {
		listener = nopListener{}
	}

	if err := c.initServices(ctx, listener); err != nil {
		return nil, err
	}
	return c, nil
}

// initServices initializes all services with their dependencies
func (c *Container) initServices(ctx context.Context, listener Listener) error {
	c.catalog = catalog.Default()
	c.renderer = services.NewQRRenderer(c.logger)
	c.checker = services.NewCheckerboardCache()
	c.thumbnails = services.NewThumbnailService(c.catalog, c.renderer, c.checker, c.logger)
	c.preview = services.NewPreviewService(c.checker)
	c.validator = services.NewInputValidator()
	c.exports = services.NewExportService(newHistoryRepository(c.db), c.logger)

	pool, err := concurrency.NewRenderPool(c.config.RenderWorkers, c.renderer, c.logger)
	if err != nil {
		return err
	}
	c.pool = pool

	c.loop = eventloop.New(c.logger)
	c.generator = generator.New(ctx, c.loop, c.pool, c.validator, listener, c.config.QuietPeriod, c.logger)
	c.gallery = gallery.New(ctx, c.loop, galleryItems(c.catalog), c.thumbnails, listener, c.logger)

	c.logger.Info("Services initialized",
		"presets", len(c.catalog.All()),
		"gallery_items", c.catalog.ItemCount(),
		"render_workers", c.config.RenderWorkers,
		"history", c.db != nil)
	return nil
}

// Close stops the event loop and releases the render pool
func (c *Container) Close() {
	c.loop.Stop()
	c.pool.Release()
}

// GetCatalog returns the preset catalog
func (c *Container) GetCatalog() *catalog.Catalog {
	return c.catalog
}

// GetGenerator returns the debounced generator
func (c *Container) GetGenerator() *generator.Generator {
	return c.generator
}

// GetGallery returns the gallery scheduler
func (c *Container) GetGallery() *gallery.Scheduler {
	return c.gallery
}

// GetPreviewService returns the preview scaler
func (c *Container) GetPreviewService() *services.PreviewService {
	return c.preview
}

// GetExportService returns the export service
func (c *Container) GetExportService() *services.ExportService {
	return c.exports
}

// GetValidator returns the input validator
func (c *Container) GetValidator() *services.InputValidator {
	return c.validator
}

// GetRenderPool returns the full-resolution render pool
func (c *Container) GetRenderPool() *concurrency.RenderPool {
	return c.pool
}

// GetConfig returns the application configuration
func (c *Container) GetConfig() *config.Config {
	return c.config
}

// QueuedTasks reports work waiting on the event loop
func (c *Container) QueuedTasks() int {
	return c.loop.Len()
}
