package ui

// Package ui contains the Fyne-based desktop user interface for the application.
// It wires user interactions to the generator service and renders the preview, the
// color swatches, the status line and the settings dialog. All UI strings are localized
// via Localization.
