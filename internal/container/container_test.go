package container

import (
	"context"
	"image"
	"io"
	"path/filepath"
	"testing"
	"time"

	"qrstudio/internal/config"
	"qrstudio/internal/database"
	"qrstudio/internal/domain/export"
	galleryDomain "qrstudio/internal/domain/gallery"
	"qrstudio/internal/domain/generation"
	"qrstudio/internal/services"
)

type eventRecorder struct {
	nopListener
	generated chan *image.NRGBA
	galleries chan int
}

func (r *eventRecorder) OnGenerationComplete(img *image.NRGBA, sig generation.Signature) {
	r.generated <- img
}

func (r *eventRecorder) OnGalleryComplete(run string, rendered, failed int) {
	r.galleries <- rendered
}

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	env := map[string]string{config.EnvQuietPeriod: "10"}
	return config.NewWithWriter(io.Discard, func(k string) string { return env[k] })
}

func TestNewWithoutHistory(t *testing.T) {
	c, err := New(context.Background(), testConfig(t), nil, nil)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	defer c.Close()

	records, err := c.GetExportService().History(10)
	if err != nil {
		t.Fatalf("Expected no error with history disabled, got %v", err)
	}
	if records != nil {
		t.Errorf("Expected no history, got %v", records)
	}
	if c.GetCatalog().ItemCount() == 0 {
		t.Error("Expected catalog to be loaded")
	}
}

func TestGenerateAndExport(t *testing.T) {
	db, err := database.Initialize(filepath.Join(t.TempDir(), "history.sqlite3"))
	if err != nil {
		t.Fatalf("Failed to initialize database: %v", err)
	}
	defer database.Close(db)

	rec := &eventRecorder{generated: make(chan *image.NRGBA, 4), galleries: make(chan int, 4)}
	c, err := New(context.Background(), testConfig(t), db, rec)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	defer c.Close()

	if err := c.GetGenerator().SetInput("https://example.org", generation.InputURL); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	var img *image.NRGBA
	select {
	case img = <-rec.generated:
	case <-time.After(5 * time.Second):
		t.Fatal("Timed out waiting for generation")
	}

	path := filepath.Join(t.TempDir(), "out.png")
	if _, err := c.GetExportService().Save(context.Background(), services.SaveRequest{
		Image:  img,
		Path:   path,
		Format: export.FormatPNG,
	}); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	records, err := c.GetExportService().History(10)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(records) != 1 || records[0].Path != path {
		t.Errorf("Expected one history record for %s, got %v", path, records)
	}
}

func TestGalleryRunsThroughContainer(t *testing.T) {
	rec := &eventRecorder{generated: make(chan *image.NRGBA, 4), galleries: make(chan int, 4)}
	c, err := New(context.Background(), testConfig(t), nil, rec)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	defer c.Close()

	if err := c.GetGallery().SetBackground(galleryDomain.Backgrounds[1].Name); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	select {
	case rendered := <-rec.galleries:
		if rendered != c.GetCatalog().ItemCount() {
			t.Errorf("Expected %d thumbnails, got %d", c.GetCatalog().ItemCount(), rendered)
		}
	case <-time.After(60 * time.Second):
		t.Fatal("Timed out waiting for gallery")
	}
}
