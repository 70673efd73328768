package model

import "image/color"

// Palette holds the two colors a QR code is painted with
type Palette struct {
	Foreground color.Color
	Background color.Color
}

// DefaultPalette returns black modules on a white background
func DefaultPalette() Palette {
	return Palette{
		Foreground: color.RGBA{A: 0xff},
		Background: color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff},
	}
}
