package ui

import (
	"testing"

	"fyne.io/fyne/v2/theme"
)

func TestStudioTheme_Colors(t *testing.T) {
	th := NewStudioTheme()

	tests := []struct {
		name     string
		got      any
		expected any
	}{
		{"success", th.Color(theme.ColorNameSuccess, theme.VariantLight), ColorAccent},
		{"warning", th.Color(theme.ColorNameWarning, theme.VariantLight), ColorWarning},
		{"error", th.Color(theme.ColorNameError, theme.VariantDark), ColorError},
		{"background light variant stays dark", th.Color(theme.ColorNameBackground, theme.VariantLight), ColorDarkBG},
	}

	for _, test := range tests {
		if test.got != test.expected {
			t.Errorf("%s: got %v, expected %v", test.name, test.got, test.expected)
		}
	}
}

func TestStudioTheme_Sizes(t *testing.T) {
	th := NewStudioTheme()

	if size := th.Size(theme.SizeNameHeadingText); size != 26 {
		t.Errorf("Expected heading size 26, got %v", size)
	}

	if size := th.Size(theme.SizeNamePadding); size != theme.DefaultTheme().Size(theme.SizeNamePadding) {
		t.Errorf("Expected default padding, got %v", size)
	}
}
