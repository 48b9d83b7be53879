package services

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
)

// Palette saturation/lightness pairs, in percent.
const (
	primarySaturation    = 70
	primaryLightness     = 55
	secondarySaturation  = 70
	secondaryLightness   = 60
	backgroundSaturation = 30
	backgroundLightness  = 95

	hueMax = 360
)

// Color is an HSL color with integer components.
type Color struct {
	// Hue [0, 360)
	Hue int `json:"hue" yaml:"hue"`
	// Saturation [0, 100]
	Saturation int `json:"saturation" yaml:"saturation"`
	// Lightness [0, 100]
	Lightness int `json:"lightness" yaml:"lightness"`
}

// String renders the color as a CSS hsl() value.
func (c Color) String() string {
	return fmt.Sprintf("hsl(%d, %d%%, %d%%)", c.Hue, c.Saturation, c.Lightness)
}

func (c Color) colorful() colorful.Color {
	return colorful.Hsl(float64(c.Hue), float64(c.Saturation)/100, float64(c.Lightness)/100).Clamped()
}

// Hex renders the color as #rrggbb.
func (c Color) Hex() string {
	return c.colorful().Hex()
}

// RGB returns the 8-bit channels of the color.
func (c Color) RGB() (r, g, b uint8) {
	return c.colorful().RGB255()
}

// Palette is the two-color scheme of an avatar plus its background.
type Palette struct {
	Background Color `json:"background" yaml:"background"`
	Primary    Color `json:"primary" yaml:"primary"`
	Secondary  Color `json:"secondary" yaml:"secondary"`
}

// DerivePalette maps a digest onto a complementary palette. The secondary hue
// sits opposite the primary on the color wheel; the background is a pale tint
// of the primary hue.
func DerivePalette(digest uint32) Palette {
	hue := int(digest % hueMax)
	return Palette{
		Background: Color{Hue: hue, Saturation: backgroundSaturation, Lightness: backgroundLightness},
		Primary:    Color{Hue: hue, Saturation: primarySaturation, Lightness: primaryLightness},
		Secondary:  Color{Hue: (hue + 180) % hueMax, Saturation: secondarySaturation, Lightness: secondaryLightness},
	}
}

// ColorFor returns the palette color used to paint a cell.
func (p Palette) ColorFor(cell Cell) Color {
	switch cell {
	case CellPrimary:
		return p.Primary
	case CellSecondary:
		return p.Secondary
	default:
		return p.Background
	}
}
