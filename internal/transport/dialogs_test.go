package transport

import (
	"context"
	"testing"

	"qrstudio/internal/domain/export"
)

func TestNewDialogsHandler(t *testing.T) {
	ctx := context.Background()
	handler := NewDialogsHandler(ctx)

	if handler == nil {
		t.Fatal("Expected DialogHandler instance, got nil")
	}

	// Verify it implements the interface
	var _ DialogHandler = handler
}

func TestSaveFilters(t *testing.T) {
	tests := []struct {
		format  export.Format
		pattern string
	}{
		{export.FormatPNG, "*.png"},
		{export.FormatJPEG, "*.jpg"},
		{export.FormatTIFF, "*.tiff"},
	}

	for _, tt := range tests {
		t.Run(string(tt.format), func(t *testing.T) {
			filters := saveFilters(tt.format)
			if len(filters) != 2 {
				t.Fatalf("Expected 2 filters, got %d", len(filters))
			}
			if filters[0].Pattern != tt.pattern {
				t.Errorf("Expected first pattern %s, got %s", tt.pattern, filters[0].Pattern)
			}
			if filters[1].Pattern != "*.*" {
				t.Errorf("Expected catch-all filter last, got %s", filters[1].Pattern)
			}
		})
	}
}
