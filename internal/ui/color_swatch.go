package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/qrstudio/qr-studio/internal/render"
)

// ColorSwatch is a tappable rectangle filled with a color. Its caption is drawn in black
// or white, whichever reads better on the fill.
type ColorSwatch struct {
	widget.BaseWidget

	OnTapped func()

	fill    color.Color
	caption string
	rect    *canvas.Rectangle
	text    *canvas.Text
}

// NewColorSwatch creates a swatch showing fill with the given caption
func NewColorSwatch(caption string, fill color.Color, tapped func()) *ColorSwatch {
	s := &ColorSwatch{OnTapped: tapped, fill: fill, caption: caption}

	s.rect = canvas.NewRectangle(fill)
	s.rect.CornerRadius = SwatchCornerRad
	s.rect.StrokeColor = ColorMuted
	s.rect.StrokeWidth = 1
	s.rect.SetMinSize(fyne.NewSize(SwatchWidth, SwatchHeight))

	s.text = canvas.NewText(caption, render.ContrastColor(fill))
	s.text.TextSize = SwatchTextSize
	s.text.TextStyle = fyne.TextStyle{Bold: true}
	s.text.Alignment = fyne.TextAlignCenter

	s.ExtendBaseWidget(s)
	return s
}

// CreateRenderer implements fyne.Widget
func (s *ColorSwatch) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(container.NewStack(s.rect, container.NewCenter(s.text)))
}

// Tapped implements fyne.Tappable
func (s *ColorSwatch) Tapped(*fyne.PointEvent) {
	if s.OnTapped != nil {
		s.OnTapped()
	}
}

// Color returns the current fill
func (s *ColorSwatch) Color() color.Color {
	return s.fill
}

// CaptionColor returns the color the caption is drawn in
func (s *ColorSwatch) CaptionColor() color.Color {
	return s.text.Color
}

// SetColor changes the fill and recomputes the caption color
func (s *ColorSwatch) SetColor(c color.Color) {
	s.fill = c
	s.rect.FillColor = c
	s.text.Color = render.ContrastColor(c)
	s.Refresh()
}

// SetCaption changes the caption text
func (s *ColorSwatch) SetCaption(caption string) {
	s.caption = caption
	s.text.Text = caption
	s.Refresh()
}
