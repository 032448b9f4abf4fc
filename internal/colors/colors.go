// Package colors parses the #RRGGBB strings used throughout presets and settings.
package colors

import (
	"fmt"
	"image/color"
	"regexp"

	"github.com/lucasb-eyer/go-colorful"
)

var hexPattern = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

// Valid reports whether s is a 6-hex-digit RGB string with leading '#'
func Valid(s string) bool {
	return hexPattern.MatchString(s)
}

// Parse converts a #RRGGBB string into a color. Shorthand forms are rejected.
func Parse(s string) (colorful.Color, error) {
	if !Valid(s) {
		return colorful.Color{}, fmt.Errorf("malformed color %q", s)
	}
	return colorful.Hex(s)
}

// NRGBA parses s into an opaque color.NRGBA
func NRGBA(s string) (color.NRGBA, error) {
	c, err := Parse(s)
	if err != nil {
		return color.NRGBA{}, err
	}
	r, g, b := c.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: 255}, nil
}

// MustNRGBA is NRGBA for compile-time constants
func MustNRGBA(s string) color.NRGBA {
	c, err := NRGBA(s)
	if err != nil {
		panic(err)
	}
	return c
}
