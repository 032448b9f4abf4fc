package common

import "time"

const (
	AppName     = "QR Studio"
	AppDataName = "QRStudio"

	// Rendering defaults
	DefaultBoxSize = 10
	MinBoxSize     = 5
	MaxBoxSize     = 25
	DefaultBorder  = 4
	MinBorder      = 0
	MaxBorder      = 10

	DefaultForeground = "#000000"
	DefaultBackground = "#FFFFFF"

	// Generator
	DefaultQuietPeriod = 250 * time.Millisecond

	// Gallery
	GalleryChunkSize    = 12
	GalleryZoomMin      = 60
	GalleryZoomMax      = 200
	GalleryZoomDefault  = 160
	GalleryZoomStep     = 20
	PreviewZoomMin      = 50
	PreviewZoomMax      = 100
	PreviewZoomDefault  = 90
	PreviewZoomStep     = 10
	ThumbnailPayload    = "https://example.com"
	ThumbnailBorder     = 1
	CheckerBase         = 220
	CheckerAlt          = 250
	MaxConcurrencyLimit = 8
	DefaultRenderWorker = 4

	// Export
	ExportFilePrefix = "qrcode"
	TimestampLayout  = "20060102_150405"
	JPEGQuality      = 95
	DefaultFilePerms = 0755
	DefaultFileMode  = 0644

	// Event names
	EventGalleryReset       = "gallery:reset"
	EventGalleryItem        = "gallery:item"
	EventGalleryComplete    = "gallery:complete"
	EventGenerationState    = "generation:state"
	EventGenerationComplete = "generation:complete"
	EventGenerationFailed   = "generation:failed"
)
