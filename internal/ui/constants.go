package ui

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Status icons
const (
	IconOK      = "✓"
	IconWarning = "⚠"
	IconError   = "✗"
)

// Window sizing
const (
	WindowWidth     float32 = 650
	WindowHeight    float32 = 850
	MinWindowWidth  float32 = 550
	MinWindowHeight float32 = 700
)

// Layout sizing
const (
	PreviewSize     float32 = 280
	SwatchWidth     float32 = 100
	SwatchHeight    float32 = 30
	StatusTextSize  float32 = 11
	SwatchTextSize  float32 = 10
	TitleTextSize   float32 = 26
	SwatchCornerRad float32 = 6
)

// Files
const (
	IconPath = "assets/app-icon.png"
)

// Save dialog filter
const (
	PNGFilterDescription = "PNG Images (*.png)"
	PNGFilterExtension   = "png"
)

// Text fragments
const (
	DetailSeparator = ": "
)
