package services

import (
	"image"
	"image/color"
	"sync"

	"qrstudio/internal/common"

	"github.com/disintegration/imaging"
)

var (
	checkerBase = color.NRGBA{R: common.CheckerBase, G: common.CheckerBase, B: common.CheckerBase, A: 255}
	checkerAlt  = color.NRGBA{R: common.CheckerAlt, G: common.CheckerAlt, B: common.CheckerAlt, A: 255}
)

type checkerKey struct {
	w, h, sq int
}

// CheckerboardCache memoises transparency patterns by exact dimensions
type CheckerboardCache struct {
	mu      sync.Mutex
	entries map[checkerKey]*image.NRGBA
}

// NewCheckerboardCache creates an empty cache
func NewCheckerboardCache() *CheckerboardCache {
	return &CheckerboardCache{entries: make(map[checkerKey]*image.NRGBA)}
}

// Get returns a copy of the w×h pattern with sq-pixel tiles; callers may draw on it.
func (c *CheckerboardCache) Get(w, h, sq int) *image.NRGBA {
	key := checkerKey{w, h, sq}

	c.mu.Lock()
	img, ok := c.entries[key]
	if !ok {
		img = Checkerboard(w, h, sq)
		c.entries[key] = img
	}
	c.mu.Unlock()

	return imaging.Clone(img)
}

// Len reports the number of cached patterns
func (c *CheckerboardCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// Clear drops every cached pattern
func (c *CheckerboardCache) Clear() {
	c.mu.Lock()
	c.entries = make(map[checkerKey]*image.NRGBA)
	c.mu.Unlock()
}

// Checkerboard is a pure function of its inputs: tile (x/sq + y/sq) parity
// selects between two light grays.
func Checkerboard(w, h, sq int) *image.NRGBA {
	if sq < 1 {
		sq = 1
	}
	img := imaging.New(w, h, checkerBase)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if (x/sq+y/sq)%2 == 1 {
				img.SetNRGBA(x, y, checkerAlt)
			}
		}
	}
	return img
}
