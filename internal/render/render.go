package render

import (
	"image"
	"image/color"

	"github.com/qrstudio/qr-studio/internal/encoder"
)

// Render maps every dark matrix pixel to fg and every light one to bg. Both colors are made
// opaque, so the result holds exactly two pixel values.
func Render(m *encoder.Matrix, fg, bg color.Color) *image.RGBA {
	dark := Opaque(fg)
	light := Opaque(bg)

	img := image.NewRGBA(image.Rect(0, 0, m.Width(), m.Height()))
	for y := 0; y < m.Height(); y++ {
		for x := 0; x < m.Width(); x++ {
			if m.Get(x, y) {
				img.SetRGBA(x, y, dark)
			} else {
				img.SetRGBA(x, y, light)
			}
		}
	}
	return img
}

// Opaque drops any transparency from c, keeping its straight (non-premultiplied) RGB.
func Opaque(c color.Color) color.RGBA {
	if c == nil {
		return color.RGBA{A: 0xff}
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return color.RGBA{R: n.R, G: n.G, B: n.B, A: 0xff}
}
