package services

import (
	"bytes"
	"testing"
)

func TestCheckerboardPure(t *testing.T) {
	a := Checkerboard(64, 40, 8)
	b := Checkerboard(64, 40, 8)

	if !bytes.Equal(a.Pix, b.Pix) {
		t.Error("Expected identical inputs to produce identical pixels")
	}
}

func TestCheckerboardParity(t *testing.T) {
	img := Checkerboard(32, 32, 8)
	tests := []struct {
		x, y int
		want uint8
	}{
		{0, 0, 220},
		{7, 7, 220},
		{8, 0, 250},
		{0, 8, 250},
		{8, 8, 220},
		{31, 16, 250},
	}

	for _, tt := range tests {
		px := img.NRGBAAt(tt.x, tt.y)
		if px.R != tt.want || px.G != tt.want || px.B != tt.want || px.A != 255 {
			t.Errorf("Pixel (%d,%d): expected gray %d, got %v", tt.x, tt.y, tt.want, px)
		}
	}
}

func TestCheckerboardCacheReturnsCopies(t *testing.T) {
	cache := NewCheckerboardCache()

	first := cache.Get(16, 16, 4)
	first.Pix[0] = 0

	second := cache.Get(16, 16, 4)
	if second.Pix[0] != 220 {
		t.Errorf("Expected cached pattern to be unaffected by caller edits, got %d", second.Pix[0])
	}

	if cache.Len() != 1 {
		t.Errorf("Expected 1 cached pattern, got %d", cache.Len())
	}

	cache.Get(16, 16, 8)
	if cache.Len() != 2 {
		t.Errorf("Expected 2 cached patterns, got %d", cache.Len())
	}

	cache.Clear()
	if cache.Len() != 0 {
		t.Errorf("Expected empty cache after Clear, got %d", cache.Len())
	}
}
