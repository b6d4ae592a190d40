// Package draw renders logical (pixel) coordinates onto a colour terminal.
package draw

import (
	colorful "github.com/lucasb-eyer/go-colorful"
)

// Point represents a 2D coordinate.
type Point struct {
	X, Y float64
}

// Block characters for drawing.
const (
	BlockFull      = '█'
	BlockEmpty     = ' '
	BlockUpperHalf = '▀'
	BlockLowerHalf = '▄'
)

// Color is a packed 24-bit RGB colour. The zero value is "no pixel".
type Color uint32

const colorSet Color = 1 << 24

// ColorNone leaves a pixel unset.
const ColorNone Color = 0

// Background is the colour faded entities blend toward.
var Background = colorful.Color{R: 0, G: 0, B: 0}

// RGB packs 8-bit channels into a Color.
func RGB(r, g, b uint8) Color {
	return colorSet | Color(r)<<16 | Color(g)<<8 | Color(b)
}

// FromColorful converts a colorful colour, clamping out-of-gamut values.
func FromColorful(c colorful.Color) Color {
	r, g, b := c.Clamped().RGB255()
	return RGB(r, g, b)
}

// HSL builds a colour from hue in degrees and saturation/lightness in [0,1].
func HSL(h, s, l float64) Color {
	return FromColorful(colorful.Hsl(h, s, l))
}

// IsSet reports whether the colour marks a drawn pixel.
func (c Color) IsSet() bool {
	return c&colorSet != 0
}

// RGB255 unpacks the channels.
func (c Color) RGB255() (r, g, b uint8) {
	return uint8(c >> 16), uint8(c >> 8), uint8(c)
}

// Colorful converts back to a colorful colour.
func (c Color) Colorful() colorful.Color {
	r, g, b := c.RGB255()
	return colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}
}

// Fade blends the colour toward Background. alpha 1 keeps it, 0 erases it.
func (c Color) Fade(alpha float64) Color {
	if !c.IsSet() || alpha <= 0 {
		return ColorNone
	}
	if alpha >= 1 {
		return c
	}
	return FromColorful(Background.BlendRgb(c.Colorful(), alpha))
}

// Palette used by the HUD and entities.
var (
	ColorLava    = RGB(0xf9, 0x41, 0x44)
	ColorPlayer  = RGB(0x80, 0x80, 0x80)
	ColorBullet  = RGB(0xf5, 0xf5, 0xf5)
	ColorSpark   = RGB(0xff, 0xa5, 0x00)
	ColorPowerUp = RGB(0xff, 0xc0, 0xcb)
	ColorHUD     = RGB(0xff, 0xf8, 0xdc)
	ColorAlert   = RGB(0xff, 0x00, 0x00)
)
