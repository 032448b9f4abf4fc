package gallery

import (
	"context"
	"image"

	"qrstudio/internal/domain/render"
)

// Item is one family×shape cell of the gallery
type Item struct {
	Family string          `json:"family"`
	Shape  render.ShapeKey `json:"shape"`
}

// Key identifies an item as "family|shape"
func (i Item) Key() string {
	return i.Family + "|" + string(i.Shape)
}

// Background is a gallery backdrop choice. An empty Hex means checkerboard.
type Background struct {
	Name string `json:"name"`
	Hex  string `json:"hex"`
}

// Transparent reports whether the backdrop is the checkerboard pattern
func (b Background) Transparent() bool {
	return b.Hex == ""
}

// Backgrounds offered in the gallery menu
var Backgrounds = []Background{
	{Name: "Transparent"},
	{Name: "White", Hex: "#FFFFFF"},
	{Name: "Light Gray", Hex: "#E5E5E5"},
	{Name: "Dark Gray", Hex: "#333333"},
	{Name: "Black", Hex: "#000000"},
}

// Themes only matter to the scheduler as a restart trigger
var Themes = []string{"Dark", "Light", "Nord"}

// Thumbnailer renders and caches gallery thumbnails
type Thumbnailer interface {
	Thumbnail(ctx context.Context, item Item, zoomPx int, bg Background) (*image.NRGBA, error)
	Clear()
}

// Listener receives gallery progress. Calls arrive on the event loop goroutine.
type Listener interface {
	OnGalleryReset(run string)
	OnGalleryItemReady(run string, index int, item Item, img *image.NRGBA)
	OnGalleryComplete(run string, rendered, failed int)
}
