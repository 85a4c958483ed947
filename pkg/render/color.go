package render

import "image/color"

// Color is one of the 16 classic console colors.
// The low 8 are the dark variants, the high 8 their light counterparts.
type Color uint8

// Console palette, in console attribute order.
const (
	Black Color = iota
	Blue
	Green
	Aqua
	Red
	Purple
	Yellow
	White
	Gray
	LightBlue
	LightGreen
	LightAqua
	LightRed
	LightPurple
	LightYellow
	BrightWhite
)

var colorNames = [...]string{
	"black", "blue", "green", "aqua", "red", "purple", "yellow", "white",
	"gray", "lightblue", "lightgreen", "lightaqua", "lightred", "lightpurple",
	"lightyellow", "brightwhite",
}

var colorRGBA = [...]color.RGBA{
	{0, 0, 0, 255},
	{0, 55, 218, 255},
	{19, 161, 14, 255},
	{58, 150, 221, 255},
	{197, 15, 31, 255},
	{136, 23, 152, 255},
	{193, 156, 0, 255},
	{204, 204, 204, 255},
	{118, 118, 118, 255},
	{59, 120, 255, 255},
	{22, 198, 12, 255},
	{97, 214, 214, 255},
	{231, 72, 86, 255},
	{180, 0, 158, 255},
	{249, 241, 165, 255},
	{242, 242, 242, 255},
}

// ParseColor returns the palette color with the given name.
func ParseColor(name string) (Color, bool) {
	for i, n := range colorNames {
		if n == name {
			return Color(i), true
		}
	}
	return Black, false
}

// String returns the palette name of the color.
func (c Color) String() string {
	if int(c) >= len(colorNames) {
		return "invalid"
	}
	return colorNames[c]
}

// RGBA implements color.Color so a palette entry can be handed directly to
// terminal styles.
func (c Color) RGBA() (r, g, b, a uint32) {
	return c.ToRGBA().RGBA()
}

// ToRGBA returns the 8-bit RGBA value of the palette entry.
// Out-of-range values map to black.
func (c Color) ToRGBA() color.RGBA {
	if int(c) >= len(colorRGBA) {
		return colorRGBA[Black]
	}
	return colorRGBA[c]
}

// brightnessRamp maps a dark base color to four brightness steps.
var brightnessRamp = [8][4]Color{
	{Gray, Gray, White, White},
	{Gray, Blue, LightBlue, White},
	{Gray, Green, LightGreen, White},
	{Gray, Aqua, LightAqua, White},
	{Gray, Red, LightRed, White},
	{Gray, Purple, LightPurple, White},
	{Gray, Yellow, LightYellow, White},
	{Gray, White, BrightWhite, BrightWhite},
}

// Brighten returns the palette entry for base at the given brightness.
// Brightness is clamped to [0, 0.99] and quantized into four steps; light
// base colors use the ramp of their dark variant.
func Brighten(base Color, brightness float64) Color {
	b := clamp(brightness, 0, maxBrightness)
	return brightnessRamp[base&7][int(b*4)]
}
