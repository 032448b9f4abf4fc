// Package gallery renders the preset×shape gallery in small chunks on the
// event loop so the interface keeps responding between them.
package gallery

import (
	"context"
	"fmt"
	"image"
	"log/slog"
	"strings"

	"qrstudio/internal/colors"
	"qrstudio/internal/common"
	domain "qrstudio/internal/domain/gallery"
	"qrstudio/internal/eventloop"
)

// Entry is one rendered gallery cell
type Entry struct {
	Index int
	Item  domain.Item
	Image *image.NRGBA
}

// Progress summarises the current run
type Progress struct {
	Run        string            `json:"run"`
	Total      int               `json:"total"`
	Cursor     int               `json:"cursor"`
	Rendered   int               `json:"rendered"`
	Failed     int               `json:"failed"`
	Running    bool              `json:"running"`
	Zoom       int               `json:"zoom"`
	Background domain.Background `json:"background"`
	Theme      string            `json:"theme"`
}

// Scheduler walks the gallery items one chunk per loop task
type Scheduler struct {
	ctx      context.Context
	loop     *eventloop.Loop
	source   func() []domain.Item
	thumbs   domain.Thumbnailer
	listener domain.Listener
	logger   *slog.Logger
	chunk    int

	// Owned by the loop goroutine.
	runSeq     uint64
	run        string
	items      []domain.Item
	cursor     int
	entries    []Entry
	failed     int
	running    bool
	zoom       int
	background domain.Background
	theme      string
}

// New creates an idle scheduler. source supplies items in display order.
func New(ctx context.Context, loop *eventloop.Loop, source func() []domain.Item, thumbs domain.Thumbnailer,
	listener domain.Listener, logger *slog.Logger) *Scheduler {
	return &Scheduler{
		ctx:        ctx,
		loop:       loop,
		source:     source,
		thumbs:     thumbs,
		listener:   listener,
		logger:     logger,
		chunk:      common.GalleryChunkSize,
		zoom:       common.GalleryZoomDefault,
		background: domain.Backgrounds[0],
		theme:      domain.Themes[0],
	}
}

// Start discards any current run and renders the gallery from the beginning
func (s *Scheduler) Start() error {
	return s.loop.Post(s.restart)
}

// Regenerate is Start under the name the menu uses
func (s *Scheduler) Regenerate() error {
	return s.Start()
}

// SetZoom changes the thumbnail size and restarts if it changed
func (s *Scheduler) SetZoom(px int) error {
	return s.loop.Post(func() {
		px = common.Clamp(px, common.GalleryZoomMin, common.GalleryZoomMax)
		if px == s.zoom {
			return
		}
		s.zoom = px
		s.restart()
	})
}

// ZoomIn grows thumbnails by one step
func (s *Scheduler) ZoomIn() error {
	return s.loop.Post(func() { s.stepZoom(common.GalleryZoomStep) })
}

// ZoomOut shrinks thumbnails by one step
func (s *Scheduler) ZoomOut() error {
	return s.loop.Post(func() { s.stepZoom(-common.GalleryZoomStep) })
}

func (s *Scheduler) stepZoom(delta int) {
	next := common.Clamp(s.zoom+delta, common.GalleryZoomMin, common.GalleryZoomMax)
	if next == s.zoom {
		return
	}
	s.zoom = next
	s.restart()
}

// SetBackground picks one of the named backdrops, or a custom #RRGGBB
func (s *Scheduler) SetBackground(nameOrHex string) error {
	bg, err := ResolveBackground(nameOrHex)
	if err != nil {
		return err
	}
	return s.loop.Post(func() {
		s.background = bg
		s.restart()
	})
}

// SetTheme records the theme; thumbnails are rebuilt for the new palette
func (s *Scheduler) SetTheme(theme string) error {
	return s.loop.Post(func() {
		s.theme = theme
		s.restart()
	})
}

// Snapshot returns the displayed entries and progress of the current run
func (s *Scheduler) Snapshot(ctx context.Context) ([]Entry, Progress, error) {
	var entries []Entry
	var progress Progress
	err := s.loop.Do(ctx, func() {
		entries = make([]Entry, len(s.entries))
		copy(entries, s.entries)
		progress = s.progress()
	})
	return entries, progress, err
}

// ResolveBackground maps a menu name or custom hex to a backdrop
func ResolveBackground(nameOrHex string) (domain.Background, error) {
	for _, bg := range domain.Backgrounds {
		if strings.EqualFold(bg.Name, nameOrHex) {
			return bg, nil
		}
	}
	if colors.Valid(nameOrHex) {
		return domain.Background{Name: "Custom", Hex: strings.ToUpper(nameOrHex)}, nil
	}
	return domain.Background{}, fmt.Errorf("unknown gallery background %q", nameOrHex)
}

func (s *Scheduler) progress() Progress {
	return Progress{
		Run:        s.run,
		Total:      len(s.items),
		Cursor:     s.cursor,
		Rendered:   len(s.entries),
		Failed:     s.failed,
		Running:    s.running,
		Zoom:       s.zoom,
		Background: s.background,
		Theme:      s.theme,
	}
}

// restart runs on the loop. Bumping runSeq makes any queued chunk of the
// previous run return without touching state.
func (s *Scheduler) restart() {
	s.runSeq++
	s.run = common.GenerateUUID()
	s.items = s.source()
	s.cursor = 0
	s.entries = nil
	s.failed = 0
	s.running = true
	s.thumbs.Clear()

	s.logger.Info("Gallery run started",
		"run", s.run,
		"items", len(s.items),
		"zoom", s.zoom,
		"background", s.background.Name)
	s.listener.OnGalleryReset(s.run)

	seq := s.runSeq
	s.loop.Post(func() { s.step(seq) })
}

func (s *Scheduler) step(seq uint64) {
	if seq != s.runSeq || !s.running {
		return
	}

	end := min(s.cursor+s.chunk, len(s.items))
	for i := s.cursor; i < end; i++ {
		item := s.items[i]
		img, err := s.thumbs.Thumbnail(s.ctx, item, s.zoom, s.background)
		if err != nil {
			s.failed++
			s.logger.Error("Thumbnail failed", "item", item.Key(), "error", err)
			continue
		}
		s.entries = append(s.entries, Entry{Index: i, Item: item, Image: img})
		s.listener.OnGalleryItemReady(s.run, i, item, img)
	}
	s.cursor = end

	if s.cursor >= len(s.items) {
		s.running = false
		s.logger.Info("Gallery run complete", "run", s.run, "rendered", len(s.entries), "failed", s.failed)
		s.listener.OnGalleryComplete(s.run, len(s.entries), s.failed)
		return
	}

	s.loop.Post(func() { s.step(seq) })
}
