// Package catalog holds the immutable table of gallery style presets.
package catalog

import (
	"fmt"
	"slices"
	"sync"

	"qrstudio/internal/colors"
	"qrstudio/internal/domain/gallery"
	"qrstudio/internal/domain/render"

	"github.com/samber/lo"
)

// StylePreset is a named color and shape family
type StylePreset struct {
	Name        string               `json:"name"`
	Group       string               `json:"group"`
	Foreground  string               `json:"foreground"`
	Background  string               `json:"background,omitempty"`
	Transparent bool                 `json:"transparent"`
	Mask        render.MaskKind      `json:"mask"`
	Gradient    *render.GradientPair `json:"gradient,omitempty"`
	Shapes      []render.ShapeKey    `json:"shapes"`
}

// ColorSpec returns the renderer colors for the preset as declared
func (p StylePreset) ColorSpec() render.ColorSpec {
	spec := render.ColorSpec{
		Mask:        p.Mask,
		Foreground:  p.Foreground,
		Background:  p.Background,
		Transparent: p.Transparent || p.Background == "",
	}
	if p.Gradient != nil {
		spec.Gradient = *p.Gradient
	}
	return spec
}

// clone detaches p from catalog storage
func (p StylePreset) clone() StylePreset {
	p.Shapes = slices.Clone(p.Shapes)
	if p.Gradient != nil {
		g := *p.Gradient
		p.Gradient = &g
	}
	return p
}

// familyDef is the raw table row before validation
type familyDef struct {
	Name        string
	Group       string
	FG          string
	BG          string
	Transparent bool
	Mask        render.MaskKind
	Gradient    []string
	Shapes      []string
}

// Catalog is safe for concurrent reads; it is never mutated after Load.
type Catalog struct {
	presets []StylePreset
	index   map[string]int
	items   []gallery.Item
}

// Load validates the built-in table and builds a catalog
func Load() (*Catalog, error) {
	return build(families)
}

var (
	defaultOnce    sync.Once
	defaultCatalog *Catalog
)

// Default returns the process-wide catalog. It panics if the built-in table is invalid.
func Default() *Catalog {
	defaultOnce.Do(func() {
		c, err := Load()
		if err != nil {
			panic(fmt.Sprintf("catalog: %v", err))
		}
		defaultCatalog = c
	})
	return defaultCatalog
}

func build(defs []familyDef) (*Catalog, error) {
	c := &Catalog{
		presets: make([]StylePreset, 0, len(defs)),
		index:   make(map[string]int, len(defs)),
	}

	for _, def := range defs {
		p, err := validate(def)
		if err != nil {
			return nil, err
		}
		if _, dup := c.index[p.Name]; dup {
			return nil, fmt.Errorf("duplicate preset %q", p.Name)
		}
		c.index[p.Name] = len(c.presets)
		c.presets = append(c.presets, p)
	}

	c.items = lo.FlatMap(c.presets, func(p StylePreset, _ int) []gallery.Item {
		return lo.Map(p.Shapes, func(s render.ShapeKey, _ int) gallery.Item {
			return gallery.Item{Family: p.Name, Shape: s}
		})
	})
	return c, nil
}

func validate(def familyDef) (StylePreset, error) {
	if def.Name == "" {
		return StylePreset{}, fmt.Errorf("preset with empty name")
	}
	if !colors.Valid(def.FG) {
		return StylePreset{}, fmt.Errorf("preset %q: malformed foreground %q", def.Name, def.FG)
	}
	if def.BG != "" && !colors.Valid(def.BG) {
		return StylePreset{}, fmt.Errorf("preset %q: malformed background %q", def.Name, def.BG)
	}
	if !def.Mask.Valid() {
		return StylePreset{}, fmt.Errorf("preset %q: unknown color mask %q", def.Name, def.Mask)
	}

	p := StylePreset{
		Name:        def.Name,
		Group:       def.Group,
		Foreground:  def.FG,
		Background:  def.BG,
		Transparent: def.Transparent,
		Mask:        def.Mask,
	}

	if def.Gradient != nil {
		if len(def.Gradient) != 2 {
			return StylePreset{}, fmt.Errorf("preset %q: gradient needs exactly 2 colors, got %d", def.Name, len(def.Gradient))
		}
		for _, g := range def.Gradient {
			if !colors.Valid(g) {
				return StylePreset{}, fmt.Errorf("preset %q: malformed gradient color %q", def.Name, g)
			}
		}
		p.Gradient = &render.GradientPair{def.Gradient[0], def.Gradient[1]}
	}
	if def.Mask.IsGradient() && p.Gradient == nil {
		return StylePreset{}, fmt.Errorf("preset %q: %s mask without gradient colors", def.Name, def.Mask)
	}

	if len(def.Shapes) == 0 {
		return StylePreset{}, fmt.Errorf("preset %q: no shapes", def.Name)
	}
	if dups := lo.FindDuplicates(def.Shapes); len(dups) > 0 {
		return StylePreset{}, fmt.Errorf("preset %q: duplicate shapes %v", def.Name, dups)
	}
	for _, key := range def.Shapes {
		shape, ok := render.ParseShape(key)
		if !ok {
			return StylePreset{}, fmt.Errorf("preset %q: unknown shape %q", def.Name, key)
		}
		p.Shapes = append(p.Shapes, shape)
	}

	return p, nil
}

// Lookup returns the preset named name
func (c *Catalog) Lookup(name string) (StylePreset, bool) {
	i, ok := c.index[name]
	if !ok {
		return StylePreset{}, false
	}
	return c.presets[i].clone(), true
}

// All returns copies of the presets in display order
func (c *Catalog) All() []StylePreset {
	return lo.Map(c.presets, func(p StylePreset, _ int) StylePreset { return p.clone() })
}

// Items returns every family×shape cell in catalog then shape order
func (c *Catalog) Items() []gallery.Item {
	out := make([]gallery.Item, len(c.items))
	copy(out, c.items)
	return out
}

// ItemCount is the total number of gallery cells
func (c *Catalog) ItemCount() int {
	return lo.SumBy(c.presets, func(p StylePreset) int { return len(p.Shapes) })
}

// Groups returns group names in first-seen order
func (c *Catalog) Groups() []string {
	return lo.Uniq(lo.Map(c.presets, func(p StylePreset, _ int) string { return p.Group }))
}

// InGroup returns the presets of one group in display order
func (c *Catalog) InGroup(group string) []StylePreset {
	in := lo.Filter(c.presets, func(p StylePreset, _ int) bool { return p.Group == group })
	return lo.Map(in, func(p StylePreset, _ int) StylePreset { return p.clone() })
}

// Supports reports whether the named preset declares shape
func (c *Catalog) Supports(name string, shape render.ShapeKey) bool {
	i, ok := c.index[name]
	return ok && lo.Contains(c.presets[i].Shapes, shape)
}
