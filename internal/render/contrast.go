package render

import "image/color"

// LuminanceThreshold separates light from dark swatches. Values strictly above it get dark text.
const LuminanceThreshold = 0.5

var (
	black = color.RGBA{A: 0xff}
	white = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
)

// Luminance returns the perceptual brightness of c in [0, 1].
func Luminance(c color.Color) float64 {
	o := Opaque(c)
	return (0.299*float64(o.R) + 0.587*float64(o.G) + 0.114*float64(o.B)) / 255
}

// ContrastColor returns black or white, whichever reads better on top of c.
func ContrastColor(c color.Color) color.Color {
	return ContrastForLuminance(Luminance(c))
}

// ContrastForLuminance returns black for luminance above LuminanceThreshold, white otherwise.
func ContrastForLuminance(luminance float64) color.Color {
	if luminance > LuminanceThreshold {
		return black
	}
	return white
}
