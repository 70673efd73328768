package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// Palette of the dark look
var (
	ColorAccent      = color.NRGBA{R: 76, G: 175, B: 80, A: 255}
	ColorDarkBG      = color.NRGBA{R: 30, G: 30, B: 30, A: 255}
	ColorInputBG     = color.NRGBA{R: 50, G: 50, B: 50, A: 255}
	ColorButtonBG    = color.NRGBA{R: 60, G: 60, B: 60, A: 255}
	ColorButtonHover = color.NRGBA{R: 70, G: 70, B: 70, A: 255}
	ColorWarning     = color.NRGBA{R: 255, G: 150, B: 100, A: 255}
	ColorError       = color.NRGBA{R: 255, G: 100, B: 100, A: 255}
	ColorMuted       = color.NRGBA{R: 128, G: 128, B: 128, A: 255}
)

// StudioTheme is a dark theme with a green accent, regardless of the OS variant
type StudioTheme struct{}

// NewStudioTheme creates the application theme
func NewStudioTheme() fyne.Theme {
	return &StudioTheme{}
}

// Color returns theme colors
func (t *StudioTheme) Color(name fyne.ThemeColorName, _ fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNameSuccess, theme.ColorNamePrimary, theme.ColorNameFocus:
		return ColorAccent
	case theme.ColorNameWarning:
		return ColorWarning
	case theme.ColorNameError:
		return ColorError
	case theme.ColorNameBackground, theme.ColorNameMenuBackground, theme.ColorNameOverlayBackground:
		return ColorDarkBG
	case theme.ColorNameInputBackground:
		return ColorInputBG
	case theme.ColorNameButton:
		return ColorButtonBG
	case theme.ColorNameHover:
		return ColorButtonHover
	case theme.ColorNamePlaceHolder:
		return ColorMuted
	case theme.ColorNameForeground:
		return color.White
	}

	// Everything else follows the default dark palette
	return theme.DefaultTheme().Color(name, theme.VariantDark)
}

// Font returns theme fonts
func (t *StudioTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

// Icon returns theme icons
func (t *StudioTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

// Size returns theme sizes
func (t *StudioTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNameText:
		return 13
	case theme.SizeNameHeadingText:
		return 26
	case theme.SizeNameCaptionText:
		return 11
	case theme.SizeNameInputRadius:
		return 8
	case theme.SizeNameSelectionRadius:
		return 6
	}

	return theme.DefaultTheme().Size(name)
}
