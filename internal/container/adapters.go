package container

import (
	"image"

	"qrstudio/internal/catalog"
	"qrstudio/internal/domain/export"
	galleryDomain "qrstudio/internal/domain/gallery"
	"qrstudio/internal/domain/generation"
	"qrstudio/internal/services"

	"gorm.io/gorm"
)

// Listener receives every event the core emits towards the interface
type Listener interface {
	generation.Listener
	galleryDomain.Listener
}

// newHistoryRepository returns nil, not a nil *HistoryService, when history is off,
// so the export service sees a nil interface.
func newHistoryRepository(db *gorm.DB) export.HistoryRepository {
	if db == nil {
		return nil
	}
	return services.NewHistoryService(db)
}

// galleryItems re-reads the catalog on every gallery restart
func galleryItems(cat *catalog.Catalog) func() []galleryDomain.Item {
	return cat.Items
}

type nopListener struct{}

func (nopListener) OnGenerationState(generation.State) {}
func (nopListener) OnGenerationComplete(*image.NRGBA, generation.Signature) {}
func (nopListener) OnGenerationFailed(error) {}
func (nopListener) OnGalleryReset(string) {}
func (nopListener) OnGalleryItemReady(string, int, galleryDomain.Item, *image.NRGBA) {}
func (nopListener) OnGalleryComplete(string, int, int) {}
